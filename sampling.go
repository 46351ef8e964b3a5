package xstat

import (
	"math/rand"
)

/*
FeatureSampler is an interface wrapping the Sample method, used to choose
the features on which a split is searched at every node of a growing tree.

The Sample method takes the number of features in the dataset and returns
the indices of the candidate features, in the order they must be evaluated.
*/
type FeatureSampler interface {
	Sample(features int) []int
}

/*
FeatureSamplerFunc wraps a function with the Sample method signature to
implement the FeatureSampler interface
*/
type FeatureSamplerFunc func(features int) []int

/*
Sample takes the number of features and invokes the FeatureSamplerFunc
with it to return its result.
*/
func (fsf FeatureSamplerFunc) Sample(features int) []int {
	return fsf(features)
}

/*
AllFeatures returns a FeatureSampler whose Sample method returns every
feature index in ascending order.
*/
func AllFeatures() FeatureSampler {
	return FeatureSamplerFunc(func(features int) []int {
		result := make([]int, features)
		for i := range result {
			result[i] = i
		}
		return result
	})
}

/*
RandomFeatures takes a number of features k and a random source and returns
a FeatureSampler whose Sample method draws k distinct feature indices
uniformly at random, in the order they were drawn. If the dataset has
fewer than k features all of them are returned, shuffled.
*/
func RandomFeatures(k int, r *rand.Rand) FeatureSampler {
	return FeatureSamplerFunc(func(features int) []int {
		n := k
		if n > features {
			n = features
		}
		indices := make([]int, features)
		for i := range indices {
			indices[i] = i
		}
		for i := 0; i < n; i++ {
			j := i + r.Intn(features-i)
			indices[i], indices[j] = indices[j], indices[i]
		}
		return indices[:n]
	})
}
