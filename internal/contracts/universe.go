package contracts

// Symbol identifies a listed equity together with its sector label.
type Symbol struct {
	Code     string `json:"code"`
	Name     string `json:"name,omitempty"`
	Sector   string `json:"sector"`
	Exchange string `json:"exchange,omitempty"`
}

// Universe is the candidate set the screener runs against.
// It is read-only reference data shared by all workers.
type Universe struct {
	Symbols []Symbol `json:"symbols"`
}

// Count returns the number of symbols in the universe
func (u *Universe) Count() int {
	return len(u.Symbols)
}

// Contains checks if a symbol code is in the universe
func (u *Universe) Contains(code string) bool {
	for _, s := range u.Symbols {
		if s.Code == code {
			return true
		}
	}
	return false
}

// SectorPeers returns all symbols sharing the given sector label.
func (u *Universe) SectorPeers(sector string) []Symbol {
	peers := make([]Symbol, 0)
	for _, s := range u.Symbols {
		if s.Sector == sector {
			peers = append(peers, s)
		}
	}
	return peers
}

// Page returns the slice of symbols for the given 1-based page.
// Page arithmetic is [(page-1)*limit, page*limit). When the requested
// slice falls outside the universe, the first limit symbols are
// returned instead so a caller never receives an empty page from a
// non-empty universe.
func (u *Universe) Page(limit, page int) []Symbol {
	if len(u.Symbols) == 0 || limit <= 0 {
		return nil
	}
	if page < 1 {
		page = 1
	}

	start := (page - 1) * limit
	end := page * limit

	if start >= len(u.Symbols) {
		// Wrap around to the first page rather than returning nothing
		start = 0
		end = limit
	}
	if end > len(u.Symbols) {
		end = len(u.Symbols)
	}

	return u.Symbols[start:end]
}
