package frequency_test

import (
	"math"
	"testing"

	"wordfreq/internal/frequency"
)

func TestCosine(t *testing.T) {
	cases := []struct {
		name string
		a, b []string
		want float64
	}{
		{"identical", []string{"cat", "dog", "cat"}, []string{"Cat", "cat", "dog"}, 1},
		{"disjoint", []string{"cat"}, []string{"dog"}, 0},
		{"empty", nil, []string{"dog"}, 0},
		{"partial", []string{"cat", "dog"}, []string{"cat", "moon"}, 0.5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := frequency.Cosine(frequency.Count(tc.a), frequency.Count(tc.b))
			if math.Abs(got-tc.want) > 1e-9 {
				t.Fatalf("Cosine = %v, want %v", got, tc.want)
			}
			if rev := frequency.Cosine(frequency.Count(tc.b), frequency.Count(tc.a)); math.Abs(rev-got) > 1e-9 {
				t.Fatalf("Cosine not symmetric: %v vs %v", got, rev)
			}
		})
	}

	if got := frequency.Cosine(nil, frequency.Count([]string{"cat"})); got != 0 {
		t.Fatalf("nil table similarity = %v", got)
	}
}
