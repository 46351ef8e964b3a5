/*
Package xstat grows classification trees and random forests from numeric
datasets.

A DecisionTree is grown with the CART algorithm, splitting each node on the
feature and threshold that minimise the weighted Gini impurity of the
resulting partition. A RandomForest grows many such trees, each on a
bootstrap sample of the dataset and considering a random subset of the
features at every split, predicts by majority vote and estimates its
generalisation error on the rows left out of each bootstrap sample.

Both models take a *dataset.Dataset built by the dataset package and an
optional set of Options to inject a random source and a logger:

	ds, err := dataset.New(df, "species")
	if err != nil {
		return err
	}
	rf := xstat.NewRandomForest(ds, xstat.WithSeed(42))
	err = rf.Train(100, 0, 0, 0)
	if err != nil {
		return err
	}
	fmt.Println(rf.OOBError())
*/
package xstat
