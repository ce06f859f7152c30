package tcbs

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/tidwall/gjson"

	"github.com/quangtran88/vnscreener/internal/contracts"
)

// FetchFinancials fetches ratios, income statement and cash flow for a
// symbol and normalizes them into a FinancialSnapshot.
//
// The snapshot is complete-or-nothing: if any required field is
// missing the whole fetch fails, so downstream code never scores a
// partially populated snapshot.
func (c *Client) FetchFinancials(ctx context.Context, symbol string) (*contracts.FinancialSnapshot, error) {
	params := url.Values{}
	params.Set("yearly", "1")
	params.Set("isAll", "false")

	ratioRoot, err := c.fetchJSON(ctx, fmt.Sprintf("/tcanalysis/v1/finance/%s/financialratio", symbol), params)
	if err != nil {
		return nil, fmt.Errorf("financial ratio: %w", err)
	}

	incomeRoot, err := c.fetchJSON(ctx, fmt.Sprintf("/tcanalysis/v1/finance/%s/incomestatement", symbol), params)
	if err != nil {
		return nil, fmt.Errorf("income statement: %w", err)
	}

	cashflowRoot, err := c.fetchJSON(ctx, fmt.Sprintf("/tcanalysis/v1/finance/%s/cashflow", symbol), params)
	if err != nil {
		return nil, fmt.Errorf("cash flow: %w", err)
	}

	snapshot, err := normalizeFinancials(symbol, ratioRoot, incomeRoot, cashflowRoot)
	if err != nil {
		return nil, err
	}

	c.logger.WithFields(map[string]interface{}{
		"symbol":  symbol,
		"periods": len(snapshot.Periods),
	}).Debug("Fetched financials")

	return snapshot, nil
}

// normalizeFinancials maps the provider's statement rows into the
// canonical snapshot. Rows are expected most-recent-first, which is
// how the yearly endpoints return them.
func normalizeFinancials(symbol string, ratioRoot, incomeRoot, cashflowRoot gjson.Result) (*contracts.FinancialSnapshot, error) {
	ratios := statementRows(ratioRoot)
	income := statementRows(incomeRoot)
	cashflow := statementRows(cashflowRoot)

	if len(ratios) == 0 {
		return nil, fmt.Errorf("no ratio rows for %s", symbol)
	}
	if len(income) < 2 {
		return nil, fmt.Errorf("need at least two income periods for %s, got %d", symbol, len(income))
	}

	latest := ratios[0]

	pe, okPE := numField(latest, "priceToEarning", "pe")
	roe, okROE := numField(latest, "roe", "returnOnEquity")
	de, okDE := numField(latest, "debtOnEquity", "debtToEquity")
	if !okPE || !okROE || !okDE {
		return nil, fmt.Errorf("incomplete ratio row for %s", symbol)
	}

	periods := make([]contracts.FinancialPeriod, 0, 2)
	for i := 0; i < len(income) && i < 2; i++ {
		row := income[i]

		netIncome, okNI := numField(row, "postTaxProfit", "netIncome", "profitAfterTax")
		revenue, okRev := numField(row, "revenue", "netRevenue", "sales")
		grossProfit, okGP := numField(row, "grossProfit", "grossProfitMargin")
		if !okNI || !okRev || !okGP {
			return nil, fmt.Errorf("incomplete income row %d for %s", i, symbol)
		}

		ocf := 0.0
		if i < len(cashflow) {
			ocf, _ = numField(cashflow[i], "fromOper", "netCashFlowFromOperatingActivities", "operatingCashFlow")
		}

		periods = append(periods, contracts.FinancialPeriod{
			Year:              int(row.Get("year").Int()),
			NetIncome:         netIncome,
			Revenue:           revenue,
			GrossProfit:       grossProfit,
			OperatingCashFlow: ocf,
		})
	}

	snapshot := &contracts.FinancialSnapshot{
		Symbol:       symbol,
		PE:           pe,
		ROE:          roe,
		DebtToEquity: de,
		Periods:      periods,
		FetchedAt:    time.Now(),
	}

	if !snapshot.Valid() {
		return nil, fmt.Errorf("normalized snapshot for %s is incomplete", symbol)
	}

	return snapshot, nil
}

// statementRows extracts the row array from a statement payload. Some
// endpoint versions wrap rows in a "data" envelope, older ones return
// a bare array.
func statementRows(root gjson.Result) []gjson.Result {
	if rows := root.Get("data"); rows.IsArray() {
		return rows.Array()
	}
	if root.IsArray() {
		return root.Array()
	}
	return nil
}
