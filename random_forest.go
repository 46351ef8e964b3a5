package xstat

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/Xuerui-Yang/xuerui-stat/dataset"
	"github.com/Xuerui-Yang/xuerui-stat/tree"
	"github.com/go-gota/gota/dataframe"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/stat"
)

/*
RandomForest is a set of classification trees, each grown on a bootstrap
sample of a dataset searching every split over a random subset of the
features, that predicts by majority vote.
*/
type RandomForest struct {
	*dataset.Dataset
	options
	trees       []*tree.Tree
	subfeatures int
	oobErrors   []float64
	oobError    float64
	warnings    []EmptyOOBSetWarning
	confusion   *tree.ConfusionMatrix
}

// NewRandomForest takes a dataset and a set of options and returns an
// untrained RandomForest for the dataset.
func NewRandomForest(ds *dataset.Dataset, opts ...Option) *RandomForest {
	return &RandomForest{Dataset: ds, options: newOptions(opts), oobError: math.NaN()}
}

/*
Train grows numTree trees, replacing any previously grown forest.

Every tree is grown like a DecisionTree with the given maxDepth and minGini,
but from a bootstrap sample of the dataset's rows and searching each split
only over subfNum features drawn at random for that split. A subfNum of 0
or less stands for the square root of the number of columns in the dataset,
label included, rounded to the nearest integer.

After growing each tree, its error rate on the rows left out of its
bootstrap sample is computed. The forest's OOB error is the mean of those
rates over the trees whose out-of-bag set is not empty; trees with an empty
one are reported through Warnings instead.

ErrInvalidTreeCount is returned if numTree is below 1 and
ErrInvalidSubfeatures if subfNum exceeds the number of features.
*/
func (rf *RandomForest) Train(numTree, maxDepth int, minGini float64, subfNum int) error {
	if numTree < 1 {
		return fmt.Errorf("training forest with %d trees: %w", numTree, ErrInvalidTreeCount)
	}
	subfeatures, err := rf.subfeaturesPerSplit(subfNum)
	if err != nil {
		return err
	}
	maxDepth = defaultMaxDepth(maxDepth, rf.RowsNum())
	rf.trees = make([]*tree.Tree, 0, numTree)
	rf.oobErrors = make([]float64, 0, numTree)
	rf.warnings = nil
	rf.confusion = nil
	rf.subfeatures = subfeatures
	var included []float64
	for i := 0; i < numTree; i++ {
		r := rand.New(rand.NewSource(rf.rand.Int63()))
		b := newBootstrap(rf.RowsNum(), r)
		g := &grower{
			maxDepth: maxDepth,
			minGini:  minGini,
			features: len(rf.Features),
			sampler:  RandomFeatures(subfeatures, r),
			rand:     r,
		}
		t := tree.New(g.grow(b.samples(rf.Samples), 0))
		rf.trees = append(rf.trees, t)
		oob := b.outOfBag(rf.Samples)
		if len(oob) == 0 {
			w := EmptyOOBSetWarning{Tree: i}
			rf.warnings = append(rf.warnings, w)
			rf.oobErrors = append(rf.oobErrors, math.NaN())
			rf.logger.Warn("skipping tree in out-of-bag error", zap.Error(w))
			continue
		}
		e := t.Test(oob, rf.Categories).ErrorRate()
		rf.oobErrors = append(rf.oobErrors, e)
		included = append(included, e)
		rf.logger.Debug("grown forest tree",
			zap.Int("tree", i),
			zap.Int("depth", t.Depth()),
			zap.Int("leaves", t.Leaves()),
			zap.Int("oob", len(oob)),
			zap.Float64("oobError", e),
		)
	}
	rf.oobError = math.NaN()
	if len(included) > 0 {
		rf.oobError = stat.Mean(included, nil)
	}
	return nil
}

func (rf *RandomForest) subfeaturesPerSplit(subfNum int) (int, error) {
	features := len(rf.Features)
	if subfNum > 0 {
		if subfNum > features {
			return 0, fmt.Errorf("training forest with %d features per split out of %d: %w", subfNum, features, ErrInvalidSubfeatures)
		}
		return subfNum, nil
	}
	n := int(math.Round(math.Sqrt(float64(rf.ColumnsNum()))))
	if n > features {
		n = features
	}
	if n < 1 {
		n = 1
	}
	return n, nil
}

// Trees returns the trees in the forest, in the order they were grown.
func (rf *RandomForest) Trees() []*tree.Tree {
	return rf.trees
}

// Subfeatures returns the number of features drawn for every split by the
// last call to Train.
func (rf *RandomForest) Subfeatures() int {
	return rf.subfeatures
}

// OOBError returns the out-of-bag error estimated by the last call to Train,
// or NaN if no tree had out-of-bag rows or the forest is untrained.
func (rf *RandomForest) OOBError() float64 {
	return rf.oobError
}

// OOBErrors returns the out-of-bag error of each tree, NaN for trees whose
// out-of-bag set was empty.
func (rf *RandomForest) OOBErrors() []float64 {
	return rf.oobErrors
}

// Warnings returns the trees left out of the OOB error by the last call to Train.
func (rf *RandomForest) Warnings() []EmptyOOBSetWarning {
	return rf.warnings
}

// ConfusionMatrix returns the confusion matrix computed by the last call
// to Test or nil if it has not been called since the forest was trained.
func (rf *RandomForest) ConfusionMatrix() *tree.ConfusionMatrix {
	return rf.confusion
}

/*
Predict takes a sample with values for the dataset's features in their order
and returns the class code most trees predict for it. Ties are broken at
random among the tied classes. ErrUntrainedModel is returned if the forest
has not been grown yet.
*/
func (rf *RandomForest) Predict(x []float64) (int, error) {
	if rf.trees == nil {
		return 0, ErrUntrainedModel
	}
	if len(x) < len(rf.Features) {
		return 0, fmt.Errorf("predicting sample: %w", ErrShortSample)
	}
	predictions := make([]int, len(rf.trees))
	for i, t := range rf.trees {
		predictions[i] = t.Predict(x)
	}
	return vote(predictions, rf.rand), nil
}

// PredictAll returns the predicted class codes of the given samples, in order.
func (rf *RandomForest) PredictAll(xs []dataset.Sample) ([]int, error) {
	result := make([]int, len(xs))
	for i, x := range xs {
		c, err := rf.Predict(x)
		if err != nil {
			return nil, fmt.Errorf("sample %d: %w", i, err)
		}
		result[i] = c
	}
	return result, nil
}

/*
Test takes labelled samples, predicts them with the forest, stores the
confusion matrix of the predictions and returns the error rate. When no
samples are given the training samples are used.
*/
func (rf *RandomForest) Test(samples ...dataset.Sample) (float64, error) {
	if rf.trees == nil {
		return 0, ErrUntrainedModel
	}
	if len(samples) == 0 {
		samples = rf.Samples
	}
	cm := tree.NewConfusionMatrix(rf.Categories)
	for i, s := range samples {
		if err := checkLabelled(s, len(rf.Features), len(rf.Categories)); err != nil {
			return 0, fmt.Errorf("testing sample %d: %w", i, err)
		}
		p, err := rf.Predict(s)
		if err != nil {
			return 0, err
		}
		cm.Add(s.Label(), p)
	}
	rf.confusion = cm
	return cm.ErrorRate(), nil
}

/*
TestTable takes a table with the dataset's feature and label columns, encodes
it with the category mapping found on the training table and tests the
forest against it.
*/
func (rf *RandomForest) TestTable(df dataframe.DataFrame) (float64, error) {
	if rf.trees == nil {
		return 0, ErrUntrainedModel
	}
	samples, err := rf.Encode(df)
	if err != nil {
		return 0, err
	}
	return rf.Test(samples...)
}
