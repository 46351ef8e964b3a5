package xstat

import (
	"math/rand"

	"github.com/Xuerui-Yang/xuerui-stat/dataset"
)

// bootstrap is the multiset of row indices a forest tree is grown from.
type bootstrap struct {
	indices []int
	inBag   []bool
}

// newBootstrap draws n row indices out of n uniformly with replacement.
func newBootstrap(n int, r *rand.Rand) *bootstrap {
	b := &bootstrap{
		indices: make([]int, n),
		inBag:   make([]bool, n),
	}
	for i := range b.indices {
		j := r.Intn(n)
		b.indices[i] = j
		b.inBag[j] = true
	}
	return b
}

// samples returns the rows drawn in the bootstrap, in draw order.
func (b *bootstrap) samples(rows []dataset.Sample) []dataset.Sample {
	result := make([]dataset.Sample, len(b.indices))
	for i, j := range b.indices {
		result[i] = rows[j]
	}
	return result
}

// outOfBag returns the rows never drawn in the bootstrap, in row order.
func (b *bootstrap) outOfBag(rows []dataset.Sample) []dataset.Sample {
	var result []dataset.Sample
	for j, in := range b.inBag {
		if !in {
			result = append(result, rows[j])
		}
	}
	return result
}
