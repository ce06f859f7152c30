package scoring

import (
	"github.com/quangtran88/vnscreener/internal/contracts"
	"github.com/quangtran88/vnscreener/internal/indicators"
)

// Technical rule thresholds.
const (
	rsiZoneLow     = 45.0
	rsiZoneHigh    = 65.0
	rsiOversold    = 30.0
	minVolumeRatio = 1.3
	minSpreadRatio = 1.2
)

// scoreTechnical evaluates the four technical rules against the
// indicator battery and derives the pattern label from the strongest
// fired rule.
func scoreTechnical(b *indicators.Battery) ([]contracts.RuleOutcome, string) {
	outcomes := make([]contracts.RuleOutcome, 0, 4)

	// Trend (max 15): price above the slow cloud line earns 5; the
	// fast line riding above the slow line lifts it to the full 15.
	trend := contracts.RuleOutcome{Category: contracts.RuleTrend, Max: 15}
	if b.LastClose > b.Cloud.Slow && b.Cloud.Slow > 0 {
		trend.Fired = true
		if b.Cloud.Fast > b.Cloud.Slow {
			trend.Points = 15
			trend.Note = "Price above cloud with fast line over slow"
		} else {
			trend.Points = 5
			trend.Note = "Price holding above the slow cloud line"
		}
	}
	outcomes = append(outcomes, trend)

	// Momentum (max 15): a confirmed cross beats a building one.
	momentum := contracts.RuleOutcome{Category: contracts.RuleMomentum, Max: 15}
	if b.MACD.Main > b.MACD.Signal && b.MACD.Hist > 0 {
		momentum.Fired = true
		momentum.Points = 15
		momentum.Note = "MACD above signal with positive histogram"
	} else if b.MACD.Hist > b.MACD.HistPrev && b.MACD.Main > 0 {
		momentum.Fired = true
		momentum.Points = 10
		momentum.Note = "MACD histogram rising with positive main line"
	}
	outcomes = append(outcomes, momentum)

	// Oscillator zone (max 15): healthy consolidation or an oversold
	// reversal candidate. The bands are mutually exclusive.
	rsi := contracts.RuleOutcome{Category: contracts.RuleRSIZone, Max: 15}
	oversold := false
	if b.RSI14 >= rsiZoneLow && b.RSI14 <= rsiZoneHigh {
		rsi.Fired = true
		rsi.Points = 15
		rsi.Note = "RSI in healthy consolidation zone"
	} else if b.RSI14 < rsiOversold {
		rsi.Fired = true
		rsi.Points = 15
		rsi.Note = "RSI oversold, reversal candidate"
		oversold = true
	}
	outcomes = append(outcomes, rsi)

	// Volume confirmation (max 15): expansion with a wide up close is
	// full confirmation; raw volume expansion alone is worth 10.
	volume := contracts.RuleOutcome{Category: contracts.RuleVolume, Max: 15}
	if b.Volume.VolumeRatio > minVolumeRatio {
		volume.Fired = true
		if b.Volume.SpreadRatio > minSpreadRatio && b.Volume.ClosedUp {
			volume.Points = 15
			volume.Note = "Volume and spread expansion on an up close"
		} else {
			volume.Points = 10
			volume.Note = "Volume expansion above 1.3x average"
		}
	}
	outcomes = append(outcomes, volume)

	return outcomes, patternLabel(outcomes, oversold)
}

// patternLabel names the setup after the strongest fired technical
// rule; ties go to the earlier rule in evaluation order.
func patternLabel(outcomes []contracts.RuleOutcome, oversold bool) string {
	best := contracts.RuleOutcome{}
	for _, o := range outcomes {
		if o.Fired && o.Points > best.Points {
			best = o
		}
	}

	switch best.Category {
	case contracts.RuleTrend:
		if best.Points == 15 {
			return "Cloud Breakout"
		}
		return "Above Cloud Base"
	case contracts.RuleMomentum:
		if best.Points == 15 {
			return "Momentum Cross"
		}
		return "Momentum Building"
	case contracts.RuleRSIZone:
		if oversold {
			return "Oversold Reversal"
		}
		return "Healthy Consolidation"
	case contracts.RuleVolume:
		if best.Points == 15 {
			return "Volume Breakout"
		}
		return "Volume Spike"
	default:
		return ""
	}
}
