package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"banca-insights/internal/core/domain"
)

// audienceHeader mirrors the customer schema field order exactly; the
// export format is defined by that order, not by struct reflection.
var audienceHeader = []string{
	"customer_id",
	"age",
	"income_segment",
	"product_holdings",
	"last_transaction_days",
	"total_balance",
	"risk_profile",
	"region",
	"campaign_eligible",
}

// WriteAudience serializes customers as UTF-8 CSV: a header row followed
// by one row per customer, comma separated.
func WriteAudience(w io.Writer, customers []domain.Customer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(audienceHeader); err != nil {
		return err
	}
	for _, c := range customers {
		record := []string{
			c.ID,
			strconv.Itoa(c.Age),
			string(c.IncomeSegment),
			strconv.Itoa(c.ProductHoldings),
			strconv.Itoa(c.LastTransactionDays),
			strconv.FormatFloat(c.TotalBalance, 'f', 2, 64),
			string(c.RiskProfile),
			string(c.Region),
			strconv.FormatBool(c.CampaignEligible),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
