package tcbs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func TestParseBars(t *testing.T) {
	payload := `{"data":[
		{"tradingDate":"2026-01-06T00:00:00.000Z","open":10,"high":11,"low":9.5,"close":10.5,"volume":1000},
		{"tradingDate":"2026-01-05T00:00:00.000Z","open":9,"high":10,"low":8.5,"close":9.8,"volume":900}
	]}`

	series, err := parseBars(gjson.Parse(payload))

	require.NoError(t, err)
	require.Len(t, series, 2)

	// Bars are re-sorted ascending regardless of upstream order.
	assert.True(t, series[0].Date.Before(series[1].Date))
	assert.Equal(t, 9.8, series[0].Close)
	assert.Equal(t, int64(1000), series[1].Volume)
}

func TestParseBars_SkipsBadRows(t *testing.T) {
	payload := `{"data":[
		{"tradingDate":"2026-01-05T00:00:00.000Z","open":9,"high":10,"low":8.5,"close":9.8,"volume":900},
		{"tradingDate":"not a date","open":10,"high":11,"low":9.5,"close":10.5,"volume":1000},
		{"tradingDate":"2026-01-06T00:00:00.000Z","open":0,"high":0,"low":0,"close":0,"volume":0}
	]}`

	series, err := parseBars(gjson.Parse(payload))

	require.NoError(t, err)
	assert.Len(t, series, 1, "unparseable dates and zero closes are dropped")
}

func TestParseBars_MissingDataArray(t *testing.T) {
	_, err := parseBars(gjson.Parse(`{"message":"no data"}`))
	assert.Error(t, err)
}

func TestParseTradingDate(t *testing.T) {
	tests := []struct {
		name   string
		row    string
		want   time.Time
		wantOK bool
	}{
		{
			name:   "ISO string with milliseconds",
			row:    `{"tradingDate":"2026-01-05T00:00:00.000Z"}`,
			want:   time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC),
			wantOK: true,
		},
		{
			name:   "plain date string",
			row:    `{"tradingDate":"2026-01-05"}`,
			want:   time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC),
			wantOK: true,
		},
		{
			name:   "epoch milliseconds",
			row:    `{"tradingDate":1767571200000}`,
			want:   time.UnixMilli(1767571200000).UTC(),
			wantOK: true,
		},
		{
			name:   "epoch seconds in time field",
			row:    `{"time":1767571200}`,
			want:   time.Unix(1767571200, 0).UTC(),
			wantOK: true,
		},
		{
			name:   "garbage string",
			row:    `{"tradingDate":"yesterday"}`,
			wantOK: false,
		},
		{
			name:   "no date field at all",
			row:    `{"open":10}`,
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := parseTradingDate(gjson.Parse(tt.row))
			require.Equal(t, tt.wantOK, ok)
			if ok {
				assert.True(t, got.Equal(tt.want), "got %v, want %v", got, tt.want)
			}
		})
	}
}
