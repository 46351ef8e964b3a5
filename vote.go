package xstat

import (
	"math/rand"

	"github.com/samber/lo"
)

/*
vote returns the most frequent class among the given ones. When several
classes share the highest count one of them is drawn uniformly at random
from r, taking the tied classes in order of first appearance.
*/
func vote(classes []int, r *rand.Rand) int {
	counts := make(map[int]int)
	for _, c := range classes {
		counts[c]++
	}
	most := lo.Max(lo.Values(counts))
	tied := lo.Filter(lo.Uniq(classes), func(c int, _ int) bool {
		return counts[c] == most
	})
	if len(tied) == 1 {
		return tied[0]
	}
	return tied[r.Intn(len(tied))]
}
