package frequency

import "math"

// Cosine returns the cosine similarity of the count vectors of a and b, in
// [0, 1]. It is 0 when either table is nil or empty.
func Cosine(a, b *Table) float64 {
	if a.Len() == 0 || b.Len() == 0 {
		return 0
	}
	var dot float64
	for word, count := range a.counts {
		if other, ok := b.counts[word]; ok {
			dot += float64(count) * float64(other)
		}
	}
	if dot == 0 {
		return 0
	}
	return dot / (a.norm() * b.norm())
}

func (t *Table) norm() float64 {
	var sum float64
	for _, count := range t.counts {
		sum += float64(count) * float64(count)
	}
	return math.Sqrt(sum)
}
