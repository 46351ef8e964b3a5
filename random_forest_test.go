package xstat

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/Xuerui-Yang/xuerui-stat/dataset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"
)

// separable returns rows whose class is given by a wide gap on feature x,
// with a constant second feature.
func separable(t *testing.T) *dataset.Dataset {
	records := [][]string{{"x", "flat", "label"}}
	for i := 0; i < 10; i++ {
		records = append(records, []string{fmt.Sprintf("%d", i), "1", "low"})
		records = append(records, []string{fmt.Sprintf("%d", 100+i), "1", "high"})
	}
	return loadDataset(t, "label", records)
}

func TestRandomForestSeparable(t *testing.T) {
	ds := separable(t)
	rf := NewRandomForest(ds, WithSeed(99), WithLogger(zaptest.NewLogger(t)))
	require.NoError(t, rf.Train(10, 0, 0, 0))

	assert.Len(t, rf.Trees(), 10)
	assert.Equal(t, 2, rf.Subfeatures())
	assert.Equal(t, 0.0, rf.OOBError())
	assert.Empty(t, rf.Warnings())

	e, err := rf.Test()
	require.NoError(t, err)
	assert.Equal(t, 0.0, e)
	assert.Equal(t, 20, rf.ConfusionMatrix().Trace())

	predictions, err := rf.PredictAll([]dataset.Sample{{-5, 0}, {500, 0}})
	require.NoError(t, err)
	assert.Equal(t, []string{"low", "high"}, []string{ds.Category(predictions[0]), ds.Category(predictions[1])})
}

func TestRandomForestSubfeatures(t *testing.T) {
	ds := loadDataset(t, "y", [][]string{
		{"a", "b", "c", "d", "y"},
		{"1", "2", "3", "4", "p"},
		{"4", "3", "2", "1", "q"},
	})
	rf := NewRandomForest(ds, WithSeed(1))

	require.NoError(t, rf.Train(2, 0, 0, 0))
	// round(sqrt(5))
	assert.Equal(t, 2, rf.Subfeatures())

	require.NoError(t, rf.Train(2, 0, 0, 4))
	assert.Equal(t, 4, rf.Subfeatures())

	err := rf.Train(2, 0, 0, 5)
	assert.True(t, errors.Is(err, ErrInvalidSubfeatures))
	err = rf.Train(0, 0, 0, 0)
	assert.True(t, errors.Is(err, ErrInvalidTreeCount))
}

func TestRandomForestSingleTreeOOBError(t *testing.T) {
	const seed = 17
	ds := randomDataset(t, 4, 40)
	rf := NewRandomForest(ds, WithSeed(seed))
	require.NoError(t, rf.Train(1, 0, 0, 0))

	master := rand.New(rand.NewSource(seed))
	b := newBootstrap(ds.RowsNum(), rand.New(rand.NewSource(master.Int63())))
	oob := b.outOfBag(ds.Samples)
	require.NotEmpty(t, oob)

	direct := rf.Trees()[0].Test(oob, ds.Categories).ErrorRate()
	assert.Equal(t, direct, rf.OOBError())
	assert.Equal(t, []float64{direct}, rf.OOBErrors())
}

func TestRandomForestTrainIsDeterministicWithSeed(t *testing.T) {
	ds := randomDataset(t, 6, 50)
	first := NewRandomForest(ds, WithSeed(123))
	require.NoError(t, first.Train(5, 4, 0, 1))
	second := NewRandomForest(ds, WithSeed(123))
	require.NoError(t, second.Train(5, 4, 0, 1))

	assert.Equal(t, first.Trees(), second.Trees())
	assert.Equal(t, first.OOBError(), second.OOBError())
	assert.Equal(t, first.OOBErrors(), second.OOBErrors())
}

func TestRandomForestEmptyOOBSet(t *testing.T) {
	ds := loadDataset(t, "y", [][]string{
		{"x", "y"},
		{"1", "A"},
	})
	core, logs := observer.New(zapcore.WarnLevel)
	rf := NewRandomForest(ds, WithSeed(2), WithLogger(zap.New(core)))
	require.NoError(t, rf.Train(3, 0, 0, 0))

	assert.Len(t, rf.Trees(), 3)
	assert.True(t, math.IsNaN(rf.OOBError()))
	assert.Equal(t, []EmptyOOBSetWarning{{0}, {1}, {2}}, rf.Warnings())
	assert.Equal(t, 3, logs.Len())

	c, err := rf.Predict([]float64{42})
	require.NoError(t, err)
	assert.Equal(t, 0, c)
}

func TestRandomForestEmptyOOBTreesAreExcludedFromMean(t *testing.T) {
	ds := loadDataset(t, "y", [][]string{
		{"x", "y"},
		{"1", "A"},
		{"2", "B"},
	})
	rf := NewRandomForest(ds, WithSeed(31))
	require.NoError(t, rf.Train(40, 0, 0, 0))

	var included []float64
	for _, e := range rf.OOBErrors() {
		if !math.IsNaN(e) {
			included = append(included, e)
		}
	}
	// two rows are both drawn half of the time
	require.NotEmpty(t, rf.Warnings())
	require.NotEmpty(t, included)
	assert.Equal(t, len(rf.Trees()), len(included)+len(rf.Warnings()))
	var sum float64
	for _, e := range included {
		sum += e
	}
	assert.InDelta(t, sum/float64(len(included)), rf.OOBError(), 1e-12)
}

func TestRandomForestUntrained(t *testing.T) {
	rf := NewRandomForest(separable(t))
	_, err := rf.Predict([]float64{1, 1})
	assert.True(t, errors.Is(err, ErrUntrainedModel))
	_, err = rf.Test()
	assert.True(t, errors.Is(err, ErrUntrainedModel))
	assert.True(t, math.IsNaN(rf.OOBError()))
}

func TestRandomForestInvalidLabelCode(t *testing.T) {
	rf := NewRandomForest(separable(t), WithSeed(5))
	require.NoError(t, rf.Train(3, 0, 0, 0))
	for _, code := range []float64{2, 7, -1, 1.5, math.NaN()} {
		_, err := rf.Test(dataset.Sample{1, 1, 0}, dataset.Sample{1, 1, code})
		assert.True(t, errors.Is(err, ErrInvalidLabelCode), "code %v: got %v", code, err)
	}
	_, err := rf.Test(dataset.Sample{1, 1})
	assert.True(t, errors.Is(err, ErrShortSample))
}

func TestRandomForestTestDefaultsToTrainingData(t *testing.T) {
	ds := randomDataset(t, 9, 45)
	rf := NewRandomForest(ds, WithSeed(9))
	require.NoError(t, rf.Train(1, 0, 0, 2))

	// a single tree leaves no room for vote ties
	implicit, err := rf.Test()
	require.NoError(t, err)
	implicitCM := rf.ConfusionMatrix()
	explicit, err := rf.Test(ds.Samples...)
	require.NoError(t, err)
	assert.Equal(t, implicit, explicit)
	assert.Equal(t, implicitCM, rf.ConfusionMatrix())
}
