package indicators

import (
	"math"

	"github.com/quangtran88/vnscreener/internal/contracts"
)

// VolumeSpread compares the most recent bar's volume and open-close
// spread against their trailing 20-bar averages. The averages exclude
// the current bar.
type VolumeSpread struct {
	VolumeRatio float64 // last volume / trailing average volume
	SpreadRatio float64 // last |close-open| / trailing average spread
	ClosedUp    bool    // last bar closed above its open
}

const volumeWindow = 20

// ComputeVolumeSpread computes the volume-spread check. Ratios read 0
// when the trailing average cannot be formed.
func ComputeVolumeSpread(series contracts.PriceSeries) VolumeSpread {
	if len(series) < volumeWindow+1 {
		return VolumeSpread{}
	}

	last := series.Last()
	trailing := series[len(series)-volumeWindow-1 : len(series)-1]

	var volSum float64
	var spreadSum float64
	for _, c := range trailing {
		volSum += float64(c.Volume)
		spreadSum += math.Abs(c.Close - c.Open)
	}
	avgVol := volSum / volumeWindow
	avgSpread := spreadSum / volumeWindow

	vs := VolumeSpread{ClosedUp: last.Close > last.Open}
	if avgVol > 0 {
		vs.VolumeRatio = float64(last.Volume) / avgVol
	}
	if avgSpread > 0 {
		vs.SpreadRatio = math.Abs(last.Close-last.Open) / avgSpread
	}
	return vs
}
