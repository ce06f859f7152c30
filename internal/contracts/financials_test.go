package contracts

import (
	"math"
	"testing"
)

func snapshotWithPeriods(periods ...FinancialPeriod) *FinancialSnapshot {
	return &FinancialSnapshot{
		Symbol:  "VCB",
		PE:      12.5,
		Periods: periods,
	}
}

func TestFinancialSnapshot_Valid(t *testing.T) {
	two := []FinancialPeriod{{Year: 2025}, {Year: 2024}}

	tests := []struct {
		name     string
		snapshot *FinancialSnapshot
		want     bool
	}{
		{
			name:     "nil snapshot",
			snapshot: nil,
			want:     false,
		},
		{
			name:     "missing symbol",
			snapshot: &FinancialSnapshot{Periods: two},
			want:     false,
		},
		{
			name:     "single period",
			snapshot: &FinancialSnapshot{Symbol: "VCB", Periods: two[:1]},
			want:     false,
		},
		{
			name:     "complete",
			snapshot: &FinancialSnapshot{Symbol: "VCB", Periods: two},
			want:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.snapshot.Valid(); got != tt.want {
				t.Errorf("Valid() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFinancialSnapshot_Growth(t *testing.T) {
	tests := []struct {
		name    string
		cur     FinancialPeriod
		prev    FinancialPeriod
		wantNI  float64
		wantRev float64
		wantOK  bool
	}{
		{
			name:    "both lines growing",
			cur:     FinancialPeriod{NetIncome: 120, Revenue: 110},
			prev:    FinancialPeriod{NetIncome: 100, Revenue: 100},
			wantNI:  0.20,
			wantRev: 0.10,
			wantOK:  true,
		},
		{
			name:   "prior net income zero",
			cur:    FinancialPeriod{NetIncome: 120, Revenue: 110},
			prev:   FinancialPeriod{NetIncome: 0, Revenue: 100},
			wantOK: false,
		},
		{
			name:   "prior net income negative",
			cur:    FinancialPeriod{NetIncome: 120, Revenue: 110},
			prev:   FinancialPeriod{NetIncome: -50, Revenue: 100},
			wantOK: false,
		},
		{
			name:   "prior revenue zero",
			cur:    FinancialPeriod{NetIncome: 120, Revenue: 110},
			prev:   FinancialPeriod{NetIncome: 100, Revenue: 0},
			wantOK: false,
		},
		{
			name:    "shrinking company",
			cur:     FinancialPeriod{NetIncome: 80, Revenue: 90},
			prev:    FinancialPeriod{NetIncome: 100, Revenue: 100},
			wantNI:  -0.20,
			wantRev: -0.10,
			wantOK:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := snapshotWithPeriods(tt.cur, tt.prev)
			ni, rev, ok := s.Growth()
			if ok != tt.wantOK {
				t.Fatalf("Growth() ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if math.Abs(ni-tt.wantNI) > 1e-9 {
				t.Errorf("Growth() net income = %v, want %v", ni, tt.wantNI)
			}
			if math.Abs(rev-tt.wantRev) > 1e-9 {
				t.Errorf("Growth() revenue = %v, want %v", rev, tt.wantRev)
			}
		})
	}
}

func TestFinancialSnapshot_GrossMargin(t *testing.T) {
	s := snapshotWithPeriods(
		FinancialPeriod{Revenue: 200, GrossProfit: 80},
		FinancialPeriod{Revenue: 0, GrossProfit: 50},
	)

	margin, ok := s.GrossMargin(0)
	if !ok {
		t.Fatal("Expected margin for latest period")
	}
	if math.Abs(margin-0.4) > 1e-9 {
		t.Errorf("GrossMargin(0) = %v, want 0.4", margin)
	}

	// Zero revenue cannot form a margin
	if _, ok := s.GrossMargin(1); ok {
		t.Error("Expected no margin when revenue is zero")
	}

	// Out of range index
	if _, ok := s.GrossMargin(5); ok {
		t.Error("Expected no margin for out-of-range index")
	}
}
