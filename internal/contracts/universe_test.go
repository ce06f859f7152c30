package contracts

import (
	"testing"
)

func testUniverse(n int) *Universe {
	symbols := make([]Symbol, n)
	for i := range symbols {
		symbols[i] = Symbol{Code: string(rune('A' + i))}
	}
	return &Universe{Symbols: symbols}
}

func TestUniverse_Page(t *testing.T) {
	tests := []struct {
		name      string
		size      int
		limit     int
		page      int
		wantLen   int
		wantFirst string
	}{
		{
			name:      "first page",
			size:      10,
			limit:     4,
			page:      1,
			wantLen:   4,
			wantFirst: "A",
		},
		{
			name:      "middle page",
			size:      10,
			limit:     4,
			page:      2,
			wantLen:   4,
			wantFirst: "E",
		},
		{
			name:      "short last page",
			size:      10,
			limit:     4,
			page:      3,
			wantLen:   2,
			wantFirst: "I",
		},
		{
			name:      "page past the end wraps to first page",
			size:      10,
			limit:     4,
			page:      9,
			wantLen:   4,
			wantFirst: "A",
		},
		{
			name:      "page zero treated as first",
			size:      10,
			limit:     4,
			page:      0,
			wantLen:   4,
			wantFirst: "A",
		},
		{
			name:      "limit larger than universe",
			size:      3,
			limit:     10,
			page:      1,
			wantLen:   3,
			wantFirst: "A",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := testUniverse(tt.size).Page(tt.limit, tt.page)
			if len(got) != tt.wantLen {
				t.Fatalf("Page(%d, %d) returned %d symbols, want %d", tt.limit, tt.page, len(got), tt.wantLen)
			}
			if got[0].Code != tt.wantFirst {
				t.Errorf("Page(%d, %d) first symbol = %s, want %s", tt.limit, tt.page, got[0].Code, tt.wantFirst)
			}
		})
	}
}

func TestUniverse_Page_Empty(t *testing.T) {
	u := &Universe{}
	if got := u.Page(10, 1); got != nil {
		t.Errorf("Page on empty universe = %v, want nil", got)
	}

	u = testUniverse(5)
	if got := u.Page(0, 1); got != nil {
		t.Errorf("Page with zero limit = %v, want nil", got)
	}
}

func TestUniverse_SectorPeers(t *testing.T) {
	u := &Universe{Symbols: []Symbol{
		{Code: "VCB", Sector: "Ngân hàng"},
		{Code: "BID", Sector: "Ngân hàng"},
		{Code: "FPT", Sector: "Công nghệ"},
	}}

	peers := u.SectorPeers("Ngân hàng")
	if len(peers) != 2 {
		t.Fatalf("SectorPeers returned %d symbols, want 2", len(peers))
	}

	if peers := u.SectorPeers("Dầu khí"); len(peers) != 0 {
		t.Errorf("SectorPeers for unknown sector returned %d symbols, want 0", len(peers))
	}
}

func TestUniverse_Contains(t *testing.T) {
	u := &Universe{Symbols: []Symbol{{Code: "VCB"}, {Code: "FPT"}}}

	if !u.Contains("VCB") {
		t.Error("Expected universe to contain VCB")
	}
	if u.Contains("XYZ") {
		t.Error("Expected universe not to contain XYZ")
	}
}
