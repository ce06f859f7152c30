// Package scoring converts fundamental facts and indicator values
// into a point-weighted 0-100 composite score with per-rule rationale.
package scoring

import (
	"fmt"

	"github.com/quangtran88/vnscreener/internal/contracts"
	"github.com/quangtran88/vnscreener/internal/indicators"
	"github.com/quangtran88/vnscreener/pkg/logger"
)

// Scorer is the rule engine. Scoring is a pure function of its
// inputs: identical snapshot, battery and benchmark always produce an
// identical result.
type Scorer struct {
	logger *logger.Logger
}

// NewScorer creates a new scorer.
func NewScorer(log *logger.Logger) *Scorer {
	return &Scorer{
		logger: log.WithField("module", "scoring"),
	}
}

// Score scores one symbol. Either input may be nil: a missing
// snapshot only removes the fundamental contribution and a missing
// battery only removes the technical contribution. Both missing
// yields a no-data result. benchmarkPE <= 0 means no sector benchmark
// is available.
func (s *Scorer) Score(sym contracts.Symbol, snapshot *contracts.FinancialSnapshot, battery *indicators.Battery, benchmarkPE float64) *contracts.ScoreResult {
	result := &contracts.ScoreResult{
		Symbol: sym.Code,
		Name:   sym.Name,
		Sector: sym.Sector,
	}

	if !snapshot.Valid() && battery == nil {
		result.Status = contracts.StatusNoData
		result.Recommendation = contracts.RecommendationNoData
		return result
	}

	if snapshot.Valid() {
		result.FundamentalRules = scoreFundamental(snapshot, benchmarkPE)
		result.Fundamental = sumPoints(result.FundamentalRules)
		result.EarningsQuality = earningsQuality(snapshot)
	}

	if battery != nil {
		var pattern string
		result.TechnicalRules, pattern = scoreTechnical(battery)
		result.Technical = sumPoints(result.TechnicalRules)
		result.Pattern = pattern
	}

	result.Total = result.Fundamental + result.Technical
	result.Status = contracts.StatusOK
	result.Recommendation = recommend(result.Total)

	s.logger.WithFields(map[string]interface{}{
		"symbol":      sym.Code,
		"fundamental": result.Fundamental,
		"technical":   result.Technical,
		"total":       result.Total,
	}).Debug("Scored symbol")

	return result
}

// NoDataResult builds the placeholder row for a symbol that produced
// no usable data.
func NoDataResult(sym contracts.Symbol) *contracts.ScoreResult {
	return &contracts.ScoreResult{
		Symbol:         sym.Code,
		Name:           sym.Name,
		Sector:         sym.Sector,
		Status:         contracts.StatusNoData,
		Recommendation: contracts.RecommendationNoData,
	}
}

// ErrorResult builds the placeholder row for a symbol whose scoring
// task failed unexpectedly.
func ErrorResult(sym contracts.Symbol) *contracts.ScoreResult {
	return &contracts.ScoreResult{
		Symbol:         sym.Code,
		Name:           sym.Name,
		Sector:         sym.Sector,
		Status:         contracts.StatusError,
		Recommendation: contracts.RecommendationError,
	}
}

// recommend maps a total score to a recommendation tier.
func recommend(total int) string {
	switch {
	case total >= 80:
		return contracts.RecommendationStrongBuy
	case total >= 60:
		return contracts.RecommendationAccumulate
	default:
		return contracts.RecommendationWait
	}
}

func sumPoints(outcomes []contracts.RuleOutcome) int {
	sum := 0
	for _, o := range outcomes {
		sum += o.Points
	}
	return sum
}

// earningsQuality formats the informational CFO-vs-NI comparison for
// the latest period. Not scored.
func earningsQuality(snapshot *contracts.FinancialSnapshot) string {
	latest := snapshot.Periods[0]
	return fmt.Sprintf("CFO %.1fB vs NI %.1fB",
		latest.OperatingCashFlow/1e9, latest.NetIncome/1e9)
}
