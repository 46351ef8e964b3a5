package xstat

import (
	"fmt"

	"github.com/Xuerui-Yang/xuerui-stat/dataset"
	"github.com/Xuerui-Yang/xuerui-stat/tree"
	"github.com/go-gota/gota/dataframe"
	"go.uber.org/zap"
)

/*
DecisionTree is a classification tree grown from a dataset with the CART
algorithm: every split is searched over all the features.
*/
type DecisionTree struct {
	*dataset.Dataset
	options
	tree      *tree.Tree
	confusion *tree.ConfusionMatrix
}

// NewDecisionTree takes a dataset and a set of options and returns an
// untrained DecisionTree for the dataset.
func NewDecisionTree(ds *dataset.Dataset, opts ...Option) *DecisionTree {
	return &DecisionTree{Dataset: ds, options: newOptions(opts)}
}

/*
Train grows the tree from the whole dataset, replacing any previously grown
tree. Nodes deeper than maxDepth are not split; a maxDepth of 0 or less
stands for twice the number of rows in the dataset. Nodes whose Gini
impurity is at or below minGini are not split either.
*/
func (dt *DecisionTree) Train(maxDepth int, minGini float64) {
	g := &grower{
		maxDepth: defaultMaxDepth(maxDepth, dt.RowsNum()),
		minGini:  minGini,
		features: len(dt.Features),
		sampler:  AllFeatures(),
		rand:     dt.rand,
	}
	dt.tree = tree.New(g.grow(dt.Samples, 0))
	dt.confusion = nil
	dt.logger.Debug("grown decision tree",
		zap.Int("rows", dt.RowsNum()),
		zap.Int("depth", dt.tree.Depth()),
		zap.Int("leaves", dt.tree.Leaves()),
	)
}

// Tree returns the grown tree or nil if the model has not been trained.
func (dt *DecisionTree) Tree() *tree.Tree {
	return dt.tree
}

// ConfusionMatrix returns the confusion matrix computed by the last call
// to Test or nil if it has not been called since the model was trained.
func (dt *DecisionTree) ConfusionMatrix() *tree.ConfusionMatrix {
	return dt.confusion
}

/*
Predict takes a sample with values for the dataset's features in their order
and returns the code of its predicted class. ErrUntrainedModel is returned
if the tree has not been grown yet.
*/
func (dt *DecisionTree) Predict(x []float64) (int, error) {
	if dt.tree == nil {
		return 0, ErrUntrainedModel
	}
	if len(x) < len(dt.Features) {
		return 0, fmt.Errorf("predicting sample: %w", ErrShortSample)
	}
	return dt.tree.Predict(x), nil
}

// PredictAll returns the predicted class codes of the given samples, in order.
func (dt *DecisionTree) PredictAll(xs []dataset.Sample) ([]int, error) {
	result := make([]int, len(xs))
	for i, x := range xs {
		c, err := dt.Predict(x)
		if err != nil {
			return nil, fmt.Errorf("sample %d: %w", i, err)
		}
		result[i] = c
	}
	return result, nil
}

/*
Test takes labelled samples, predicts them, stores the confusion matrix of
the predictions and returns the error rate: the proportion of samples whose
predicted class is not their label. When no samples are given the training
samples are used, so the result is the training error.
*/
func (dt *DecisionTree) Test(samples ...dataset.Sample) (float64, error) {
	if dt.tree == nil {
		return 0, ErrUntrainedModel
	}
	if len(samples) == 0 {
		samples = dt.Samples
	}
	for i, s := range samples {
		if err := checkLabelled(s, len(dt.Features), len(dt.Categories)); err != nil {
			return 0, fmt.Errorf("testing sample %d: %w", i, err)
		}
	}
	dt.confusion = dt.tree.Test(samples, dt.Categories)
	return dt.confusion.ErrorRate(), nil
}

/*
TestTable takes a table with the dataset's feature and label columns, encodes
it with the category mapping found on the training table and tests the tree
against it.
*/
func (dt *DecisionTree) TestTable(df dataframe.DataFrame) (float64, error) {
	if dt.tree == nil {
		return 0, ErrUntrainedModel
	}
	samples, err := dt.Encode(df)
	if err != nil {
		return 0, err
	}
	return dt.Test(samples...)
}
