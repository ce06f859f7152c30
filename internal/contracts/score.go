package contracts

// Rule categories. Each category corresponds to exactly one scoring
// rule and appears exactly once in the breakdown of a ScoreResult.
const (
	RuleValuation = "valuation"
	RuleGrowth    = "growth"
	RuleMargin    = "margin"
	RuleLeverage  = "leverage"

	RuleTrend    = "trend"
	RuleMomentum = "momentum"
	RuleRSIZone  = "rsi_zone"
	RuleVolume   = "volume"
)

// Sub-score caps.
const (
	MaxFundamentalScore = 40
	MaxTechnicalScore   = 60
)

// Recommendation tiers.
const (
	RecommendationStrongBuy  = "STRONG BUY"
	RecommendationAccumulate = "ACCUMULATE"
	RecommendationWait       = "WAIT"
	RecommendationNoData     = "NO DATA"
	RecommendationError      = "ERROR"
)

// Result statuses.
const (
	StatusOK     = "ok"
	StatusNoData = "no_data"
	StatusError  = "error"
)

// RuleOutcome records whether a single scoring rule fired and how many
// points it awarded. The breakdown is the source of truth; rationale
// notes are derived from it, never the other way around.
type RuleOutcome struct {
	Category string `json:"category"`
	Fired    bool   `json:"fired"`
	Points   int    `json:"points"`
	Max      int    `json:"max"`
	Note     string `json:"note,omitempty"`
}

// ScoreResult is the immutable output of scoring one symbol. It is
// constructed once per screening run and never mutated afterwards.
type ScoreResult struct {
	Symbol string `json:"symbol"`
	Name   string `json:"name,omitempty"`
	Sector string `json:"sector,omitempty"`

	Status         string `json:"status"`
	Pattern        string `json:"pattern,omitempty"`
	Recommendation string `json:"recommendation"`

	Fundamental int `json:"fundamental"` // 0-40
	Technical   int `json:"technical"`   // 0-60
	Total       int `json:"total"`       // 0-100

	FundamentalRules []RuleOutcome `json:"fundamental_rules,omitempty"`
	TechnicalRules   []RuleOutcome `json:"technical_rules,omitempty"`

	// Informational, not scored: operating cash flow vs net income of
	// the latest period.
	EarningsQuality string `json:"earnings_quality,omitempty"`

	// Opaque reference to a rendered chart, owned by the charting
	// service.
	ChartRef string `json:"chart_ref,omitempty"`
}

// RuleFired reports whether the rule in the given category awarded
// points. It reads the structured breakdown directly.
func (r *ScoreResult) RuleFired(category string) bool {
	for _, o := range r.FundamentalRules {
		if o.Category == category {
			return o.Fired
		}
	}
	for _, o := range r.TechnicalRules {
		if o.Category == category {
			return o.Fired
		}
	}
	return false
}

// FundamentalNotes returns the rationale notes of fired fundamental
// rules, in rule order.
func (r *ScoreResult) FundamentalNotes() []string {
	return notes(r.FundamentalRules)
}

// TechnicalNotes returns the rationale notes of fired technical rules,
// in rule order.
func (r *ScoreResult) TechnicalNotes() []string {
	return notes(r.TechnicalRules)
}

func notes(outcomes []RuleOutcome) []string {
	out := make([]string, 0, len(outcomes))
	for _, o := range outcomes {
		if o.Fired && o.Note != "" {
			out = append(out, o.Note)
		}
	}
	return out
}
