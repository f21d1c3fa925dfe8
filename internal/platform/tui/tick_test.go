package tui

import (
	"testing"
	"time"
)

func TestDTFactor(t *testing.T) {
	base := time.Unix(1000, 0)

	tests := []struct {
		name    string
		prev    time.Time
		elapsed time.Duration
		want    float64
	}{
		{"first frame", time.Time{}, 0, 1},
		{"exact 60fps frame", base, baseFrame, 1},
		{"half-rate frame", base, 2 * baseFrame, 2},
		{"double-rate frame", base, baseFrame / 2, 0.5},
		{"clamped after suspend", base, 10 * time.Second, maxDTFactor},
		{"non-monotonic clock", base, -baseFrame, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			now := tt.prev.Add(tt.elapsed)
			if tt.prev.IsZero() {
				now = base
			}
			got := dtFactor(tt.prev, now)

			diff := got - tt.want
			if diff < 0 {
				diff = -diff
			}
			if diff > 1e-9 {
				t.Errorf("dtFactor = %v, want %v", got, tt.want)
			}
		})
	}
}
