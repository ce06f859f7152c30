package tcbs

import "github.com/quangtran88/vnscreener/internal/contracts"

// fallbackTable is the static universe used when the listing endpoint
// is unavailable. Covers the large caps on HOSE plus a few HNX names.
var fallbackTable = []contracts.Symbol{
	{Code: "VCB", Name: "Vietcombank", Sector: "Ngân hàng", Exchange: "HOSE"},
	{Code: "BID", Name: "BIDV", Sector: "Ngân hàng", Exchange: "HOSE"},
	{Code: "CTG", Name: "VietinBank", Sector: "Ngân hàng", Exchange: "HOSE"},
	{Code: "TCB", Name: "Techcombank", Sector: "Ngân hàng", Exchange: "HOSE"},
	{Code: "VPB", Name: "VPBank", Sector: "Ngân hàng", Exchange: "HOSE"},
	{Code: "ACB", Name: "ACB", Sector: "Ngân hàng", Exchange: "HOSE"},
	{Code: "MBB", Name: "MB Bank", Sector: "Ngân hàng", Exchange: "HOSE"},
	{Code: "HDB", Name: "HDBank", Sector: "Ngân hàng", Exchange: "HOSE"},
	{Code: "STB", Name: "Sacombank", Sector: "Ngân hàng", Exchange: "HOSE"},
	{Code: "TPB", Name: "TPBank", Sector: "Ngân hàng", Exchange: "HOSE"},
	{Code: "VIB", Name: "VIB", Sector: "Ngân hàng", Exchange: "HOSE"},
	{Code: "VHM", Name: "Vinhomes", Sector: "Bất động sản", Exchange: "HOSE"},
	{Code: "VIC", Name: "Vingroup", Sector: "Bất động sản", Exchange: "HOSE"},
	{Code: "VRE", Name: "Vincom Retail", Sector: "Bất động sản", Exchange: "HOSE"},
	{Code: "PDR", Name: "Phát Đạt", Sector: "Bất động sản", Exchange: "HOSE"},
	{Code: "NVL", Name: "Novaland", Sector: "Bất động sản", Exchange: "HOSE"},
	{Code: "KDH", Name: "Khang Điền", Sector: "Bất động sản", Exchange: "HOSE"},
	{Code: "BCM", Name: "Becamex", Sector: "Bất động sản", Exchange: "HOSE"},
	{Code: "HPG", Name: "Hòa Phát", Sector: "Thép", Exchange: "HOSE"},
	{Code: "FPT", Name: "FPT Corp", Sector: "Công nghệ", Exchange: "HOSE"},
	{Code: "VNM", Name: "Vinamilk", Sector: "Tiêu dùng", Exchange: "HOSE"},
	{Code: "MSN", Name: "Masan", Sector: "Tiêu dùng", Exchange: "HOSE"},
	{Code: "SAB", Name: "Sabeco", Sector: "Đồ uống", Exchange: "HOSE"},
	{Code: "GAS", Name: "PV Gas", Sector: "Dầu khí", Exchange: "HOSE"},
	{Code: "PLX", Name: "Petrolimex", Sector: "Dầu khí", Exchange: "HOSE"},
	{Code: "PVD", Name: "PV Drilling", Sector: "Dầu khí", Exchange: "HOSE"},
	{Code: "PVS", Name: "PTSC", Sector: "Dầu khí", Exchange: "HNX"},
	{Code: "MWG", Name: "Thế Giới Di Động", Sector: "Bán lẻ", Exchange: "HOSE"},
	{Code: "FRT", Name: "FPT Retail", Sector: "Bán lẻ", Exchange: "HOSE"},
	{Code: "PNJ", Name: "PNJ", Sector: "Bán lẻ", Exchange: "HOSE"},
	{Code: "SSI", Name: "SSI Securities", Sector: "Chứng khoán", Exchange: "HOSE"},
	{Code: "POW", Name: "PV Power", Sector: "Điện", Exchange: "HOSE"},
	{Code: "VJC", Name: "Vietjet Air", Sector: "Hàng không", Exchange: "HOSE"},
	{Code: "GVR", Name: "Cao su VN", Sector: "Cao su", Exchange: "HOSE"},
	{Code: "DGC", Name: "Đức Giang", Sector: "Hóa chất", Exchange: "HOSE"},
	{Code: "VHC", Name: "Vĩnh Hoàn", Sector: "Thủy sản", Exchange: "HOSE"},
	{Code: "REE", Name: "REE Corp", Sector: "Điện lạnh", Exchange: "HOSE"},
	{Code: "GMD", Name: "Gemadept", Sector: "Cảng biển", Exchange: "HOSE"},
	{Code: "DPM", Name: "Đạm Phú Mỹ", Sector: "Phân bón", Exchange: "HOSE"},
	{Code: "DCM", Name: "Đạm Cà Mau", Sector: "Phân bón", Exchange: "HOSE"},
}

// FallbackUniverse returns a copy of the static symbol table.
func FallbackUniverse() []contracts.Symbol {
	out := make([]contracts.Symbol, len(fallbackTable))
	copy(out, fallbackTable)
	return out
}
