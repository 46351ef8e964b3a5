/*
Package mongotable provides a table.Source that reads tables from MongoDB
collections, one document per row.
*/
package mongotable

import (
	"context"
	"fmt"

	"github.com/Xuerui-Yang/xuerui-stat/table"
	"github.com/go-gota/gota/dataframe"
	mgo "gopkg.in/mgo.v2"
	"gopkg.in/mgo.v2/bson"
)

const (
	idField      = "_id"
	missingValue = "NaN"
)

type mongotable struct {
	session    *mgo.Session
	collection string
}

/*
New takes a MongoDB database session and a collection name and returns a
table.Source that reads the collection on the default database for that
session.

Documents are read sorted by _id. The columns of the table are the fields
of the first document in order, _id excluded; fields absent from a later
document are read as missing values and fields absent from the first one
are ignored.
*/
func New(session *mgo.Session, collection string) table.Source {
	return &mongotable{session, collection}
}

/*
Dial takes a MongoDB connection URL and returns a session on it, to be
closed by the caller, or an error if it cannot connect.
*/
func Dial(url string) (*mgo.Session, error) {
	session, err := mgo.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("connecting to MongoDB: %v", err)
	}
	return session, nil
}

func (mt *mongotable) Table(ctx context.Context) (dataframe.DataFrame, error) {
	session := mt.session.Copy()
	defer session.Close()
	iter := session.DB("").C(mt.collection).Find(nil).Sort(idField).Iter()
	var docs []bson.D
	for {
		var doc bson.D
		if !iter.Next(&doc) {
			break
		}
		docs = append(docs, doc)
		if err := ctx.Err(); err != nil {
			iter.Close()
			return dataframe.DataFrame{}, err
		}
	}
	if err := iter.Close(); err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("reading collection %s: %v", mt.collection, err)
	}
	records, err := recordsFromDocs(docs)
	if err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("reading collection %s: %w", mt.collection, err)
	}
	return table.FromRecords(records)
}

func recordsFromDocs(docs []bson.D) ([][]string, error) {
	if len(docs) == 0 {
		return nil, table.ErrNoHeader
	}
	var header []string
	for _, e := range docs[0] {
		if e.Name != idField {
			header = append(header, e.Name)
		}
	}
	records := [][]string{header}
	for _, doc := range docs {
		values := doc.Map()
		record := make([]string, len(header))
		for i, name := range header {
			v, ok := values[name]
			if !ok || v == nil {
				record[i] = missingValue
				continue
			}
			record[i] = fmt.Sprint(v)
		}
		records = append(records, record)
	}
	return records, nil
}
