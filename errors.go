package xstat

import (
	"fmt"
	"math"

	"github.com/Xuerui-Yang/xuerui-stat/dataset"
)

// ModelError represents an error training a model or using it.
type ModelError string

const (
	// ErrUntrainedModel is returned when a model is used to predict or test
	// before being trained.
	ErrUntrainedModel = ModelError("model has not been trained")
	// ErrInvalidTreeCount is returned when a forest is trained with less than one tree.
	ErrInvalidTreeCount = ModelError("number of trees must be positive")
	// ErrInvalidSubfeatures is returned when a forest is asked to sample more
	// features per split than the dataset has.
	ErrInvalidSubfeatures = ModelError("number of features per split exceeds the number of features")
	// ErrShortSample is returned when a sample to predict has fewer values
	// than the dataset has features.
	ErrShortSample = ModelError("sample has fewer values than features")
	// ErrInvalidLabelCode is returned when a sample to test carries a label
	// code that is not the index of one of the dataset's categories.
	ErrInvalidLabelCode = ModelError("label code is not a category index")
)

func (me ModelError) Error() string {
	return string(me)
}

/*
EmptyOOBSetWarning reports a forest tree whose bootstrap sample drew every
row of the dataset, so no rows were left to estimate its out-of-bag error.
Such trees are kept in the forest but left out of its OOB error.
*/
type EmptyOOBSetWarning struct {
	Tree int
}

func (w EmptyOOBSetWarning) Error() string {
	return fmt.Sprintf("tree %d has an empty out-of-bag set", w.Tree)
}

// checkLabelled returns an error if s cannot be tested against a model
// trained on features features and the given number of categories.
func checkLabelled(s dataset.Sample, features, categories int) error {
	if len(s) <= features {
		return ErrShortSample
	}
	code := s[len(s)-1]
	if code != math.Trunc(code) || code < 0 || code >= float64(categories) {
		return ErrInvalidLabelCode
	}
	return nil
}
