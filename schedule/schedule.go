// Package schedule builds the length emission order and the per-length
// batch-size weights ("WordlenDist") the emission driver interleaves
// chains by.
package schedule

import "sort"

// defaultWordlenDist is the built-in word-length distribution, computed
// from the first 1,000,000 entries of a reference wordlist corpus.
// Indices 25 and beyond default to 1 (see WordlenDist).
var defaultWordlenDist = [25]uint64{
	0, 15, 56, 350, 3315, 43721, 276252, 201748, 226412, 119885,
	75075, 26323, 13373, 6353, 3540, 1877, 972, 311, 151, 81,
	66, 21, 16, 13, 13,
}

// WordlenDist returns the batch-size weight for the given word length.
// When useObserved is true it returns the observed bucket size (--wl-dist-len);
// otherwise it returns the built-in table entry, defaulting to 1 for any
// length beyond the table.
func WordlenDist(length int, observedBucketSize uint64, useObserved bool) uint64 {
	if useObserved {
		if observedBucketSize == 0 {
			return 1
		}
		return observedBucketSize
	}

	if length >= 0 && length < len(defaultWordlenDist) {
		if v := defaultWordlenDist[length]; v != 0 {
			return v
		}
		return 1
	}
	return 1
}

// Order returns a permutation of [pwMin, pwMax] describing the fixed
// round-robin the emission driver visits lengths in. Lengths are sorted
// descending by weight so the more heavily weighted (more probable)
// lengths are interleaved earlier; ties keep ascending-length order for a
// stable, reproducible result.
func Order(pwMin, pwMax int, weight func(length int) uint64) []int {
	if pwMin > pwMax {
		return nil
	}

	lengths := make([]int, 0, pwMax-pwMin+1)
	for l := pwMin; l <= pwMax; l++ {
		lengths = append(lengths, l)
	}

	sort.SliceStable(lengths, func(i, j int) bool {
		wi, wj := weight(lengths[i]), weight(lengths[j])
		if wi != wj {
			return wi > wj
		}
		return lengths[i] < lengths[j]
	})

	return lengths
}
