package fusion

import "testing"

func TestEmphasisBoundaries(t *testing.T) {
	tests := []struct {
		weight float64
		want   SemanticEmphasis
	}{
		{1.0, EmphasisCritical},
		{0.6, EmphasisCritical},
		{0.59999, EmphasisHigh},
		{0.4, EmphasisHigh},
		{0.39999, EmphasisModerate},
		{0.2, EmphasisModerate},
		{0.19999, EmphasisOptional},
		{0.0, EmphasisOptional},
	}

	for _, tt := range tests {
		if got := EmphasisFor(tt.weight); got != tt.want {
			t.Errorf("EmphasisFor(%v) = %q, want %q", tt.weight, got, tt.want)
		}
	}
}
