package scoring

import "github.com/quangtran88/vnscreener/internal/contracts"

// Fundamental rule thresholds. Each rule awards its full points or
// nothing; there is no partial credit.
const (
	valuationDiscount  = 0.9  // P/E must be below 90% of the sector median
	minNetIncomeGrowth = 0.15 // YoY net income growth
	minRevenueGrowth   = 0.10 // YoY revenue growth
	minMarginExpansion = 0.05 // relative gross margin expansion
	maxDebtToEquity    = 0.8
)

const fundamentalRulePoints = 10

// scoreFundamental evaluates the four fundamental rules against a
// complete snapshot. The caller guarantees snapshot.Valid().
func scoreFundamental(snapshot *contracts.FinancialSnapshot, benchmarkPE float64) []contracts.RuleOutcome {
	outcomes := make([]contracts.RuleOutcome, 0, 4)

	// Valuation: cheap relative to sector peers. Requires both the
	// target's ratio and the benchmark to be present and positive.
	valuation := contracts.RuleOutcome{Category: contracts.RuleValuation, Max: fundamentalRulePoints}
	if benchmarkPE > 0 && snapshot.PE > 0 && snapshot.PE < valuationDiscount*benchmarkPE {
		valuation.Fired = true
		valuation.Points = fundamentalRulePoints
		valuation.Note = "P/E trades below 90% of sector median"
	}
	outcomes = append(outcomes, valuation)

	// Growth: double-digit YoY growth on both lines, prior period
	// values must be positive to form a ratio.
	growth := contracts.RuleOutcome{Category: contracts.RuleGrowth, Max: fundamentalRulePoints}
	if niGrowth, revGrowth, ok := snapshot.Growth(); ok &&
		niGrowth > minNetIncomeGrowth && revGrowth > minRevenueGrowth {
		growth.Fired = true
		growth.Points = fundamentalRulePoints
		growth.Note = "Net income >15% and revenue >10% YoY"
	}
	outcomes = append(outcomes, growth)

	// Margin expansion: current gross margin beats the prior one by
	// more than 5% relative.
	margin := contracts.RuleOutcome{Category: contracts.RuleMargin, Max: fundamentalRulePoints}
	if cur, okCur := snapshot.GrossMargin(0); okCur {
		if prev, okPrev := snapshot.GrossMargin(1); okPrev && prev > 0 &&
			(cur-prev)/prev > minMarginExpansion {
			margin.Fired = true
			margin.Points = fundamentalRulePoints
			margin.Note = "Gross margin expanding over 5% YoY"
		}
	}
	outcomes = append(outcomes, margin)

	// Leverage: conservative balance sheet.
	leverage := contracts.RuleOutcome{Category: contracts.RuleLeverage, Max: fundamentalRulePoints}
	if snapshot.DebtToEquity <= maxDebtToEquity {
		leverage.Fired = true
		leverage.Points = fundamentalRulePoints
		leverage.Note = "Debt/equity at or below 0.8"
	}
	outcomes = append(outcomes, leverage)

	return outcomes
}
