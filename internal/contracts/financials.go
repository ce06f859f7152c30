package contracts

import "time"

// FinancialPeriod holds one fiscal period of income and cash flow
// statement figures. Values are in VND.
type FinancialPeriod struct {
	Year              int     `json:"year"`
	NetIncome         float64 `json:"net_income"`
	Revenue           float64 `json:"revenue"`
	GrossProfit       float64 `json:"gross_profit"`
	OperatingCashFlow float64 `json:"operating_cash_flow"`
}

// FinancialSnapshot is the canonical, normalized view of a company's
// fundamental data. The provider boundary maps its inconsistent field
// names into this struct; nothing downstream does field-name fallback.
//
// A snapshot is either complete or the symbol is treated as having no
// fundamental data. Partially populated snapshots are never trusted.
type FinancialSnapshot struct {
	Symbol string `json:"symbol"`

	// Latest-period ratios
	PE           float64 `json:"pe"`
	ROE          float64 `json:"roe"`
	DebtToEquity float64 `json:"debt_to_equity"`

	// Most recent first, at least two periods
	Periods []FinancialPeriod `json:"periods"`

	FetchedAt time.Time `json:"fetched_at"`
}

// Valid reports whether the snapshot is complete enough to score.
func (s *FinancialSnapshot) Valid() bool {
	return s != nil && s.Symbol != "" && len(s.Periods) >= 2
}

// GrossMargin returns the gross margin for the given period index
// (0 = latest). The second return is false when the margin cannot be
// formed.
func (s *FinancialSnapshot) GrossMargin(i int) (float64, bool) {
	if i < 0 || i >= len(s.Periods) {
		return 0, false
	}
	p := s.Periods[i]
	if p.Revenue <= 0 {
		return 0, false
	}
	return p.GrossProfit / p.Revenue, true
}

// Growth returns year-over-year net income and revenue growth as
// fractions. The third return is false when the prior period values
// are not positive, in which case no growth ratio can be formed.
func (s *FinancialSnapshot) Growth() (netIncome, revenue float64, ok bool) {
	if len(s.Periods) < 2 {
		return 0, 0, false
	}
	cur, prev := s.Periods[0], s.Periods[1]
	if prev.NetIncome <= 0 || prev.Revenue <= 0 {
		return 0, 0, false
	}
	return cur.NetIncome/prev.NetIncome - 1, cur.Revenue/prev.Revenue - 1, true
}
