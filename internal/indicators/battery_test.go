package indicators

import (
	"testing"

	"github.com/quangtran88/vnscreener/internal/contracts"
)

func TestCompute_ShortSeriesIsAbsent(t *testing.T) {
	if got := Compute(stairBars(contracts.MinBars - 1)); got != nil {
		t.Errorf("Compute with %d bars = %+v, want nil", contracts.MinBars-1, got)
	}
	if got := Compute(nil); got != nil {
		t.Errorf("Compute(nil) = %+v, want nil", got)
	}
}

func TestCompute_RisingSeries(t *testing.T) {
	series := stairBars(200)
	b := Compute(series)
	if b == nil {
		t.Fatal("Compute returned nil for a 200-bar series")
	}

	if b.LastClose != series.Last().Close {
		t.Errorf("LastClose = %v, want %v", b.LastClose, series.Last().Close)
	}

	// A monotonically rising series has only gains in the RSI window.
	if b.RSI14 != 100 {
		t.Errorf("RSI14 = %v, want 100 for a monotonic uptrend", b.RSI14)
	}

	// Price leads both cloud lines and the fast line leads the slow.
	if b.LastClose <= b.Cloud.Slow {
		t.Errorf("LastClose = %v, Cloud.Slow = %v, want price above slow line", b.LastClose, b.Cloud.Slow)
	}
	if b.Cloud.Fast <= b.Cloud.Slow {
		t.Errorf("Cloud.Fast = %v, Cloud.Slow = %v, want fast above slow", b.Cloud.Fast, b.Cloud.Slow)
	}

	// The 50-bar average trails the last close in an uptrend.
	if b.SMA50 <= 0 || b.SMA50 >= b.LastClose {
		t.Errorf("SMA50 = %v, want in (0, %v)", b.SMA50, b.LastClose)
	}

	if b.MACD.Main <= b.MACD.Signal {
		t.Errorf("MACD main = %v, signal = %v, want main above signal", b.MACD.Main, b.MACD.Signal)
	}
}

func TestCompute_ExactMinimumBars(t *testing.T) {
	b := Compute(stairBars(contracts.MinBars))
	if b == nil {
		t.Fatalf("Compute with exactly %d bars should produce a battery", contracts.MinBars)
	}

	// 200 bars are not available, so the long average reads as the
	// recursive EMA over what exists rather than zero.
	if b.EMA200 <= 0 {
		t.Errorf("EMA200 = %v, want > 0", b.EMA200)
	}
}
