package indicators

import (
	"math"
	"testing"
)

func TestSMA(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		period int
		want   float64
	}{
		{
			name:   "full window",
			values: []float64{1, 2, 3, 4, 5},
			period: 5,
			want:   3,
		},
		{
			name:   "partial window uses last values",
			values: []float64{1, 2, 3, 4, 5},
			period: 3,
			want:   4,
		},
		{
			name:   "insufficient data",
			values: []float64{1, 2},
			period: 5,
			want:   0,
		},
		{
			name:   "zero period",
			values: []float64{1, 2, 3},
			period: 0,
			want:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SMA(tt.values, tt.period); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("SMA() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEMASeries(t *testing.T) {
	// span 3 gives alpha = 0.5: series seeds at 2, then 0.5*4 + 0.5*2 = 3
	series := EMASeries([]float64{2, 4}, 3)
	if len(series) != 2 {
		t.Fatalf("EMASeries length = %d, want 2", len(series))
	}
	if series[0] != 2 {
		t.Errorf("EMASeries seed = %v, want first value 2", series[0])
	}
	if math.Abs(series[1]-3) > 1e-9 {
		t.Errorf("EMASeries[1] = %v, want 3", series[1])
	}

	if got := EMASeries(nil, 3); got != nil {
		t.Errorf("EMASeries(nil) = %v, want nil", got)
	}
	if got := EMASeries([]float64{1, 2}, 0); got != nil {
		t.Errorf("EMASeries with zero span = %v, want nil", got)
	}
}

func TestEMA(t *testing.T) {
	if got := EMA([]float64{2, 4}, 3); math.Abs(got-3) > 1e-9 {
		t.Errorf("EMA() = %v, want 3", got)
	}
	if got := EMA([]float64{10}, 5); got != 10 {
		t.Errorf("EMA of single value = %v, want 10", got)
	}
	if got := EMA(nil, 5); got != 0 {
		t.Errorf("EMA of empty series = %v, want 0", got)
	}
}

func TestEMA_ConvergesTowardConstant(t *testing.T) {
	// A long constant tail pulls the EMA to that constant regardless
	// of the seed.
	values := make([]float64, 300)
	values[0] = 100
	for i := 1; i < len(values); i++ {
		values[i] = 10
	}

	got := EMA(values, 20)
	if math.Abs(got-10) > 0.01 {
		t.Errorf("EMA() = %v, want ~10", got)
	}
}
