package rates

import "github.com/shopspring/decimal"

type (
	// RateRecord is one per-currency entry of the remote payload. The
	// NB fields carry the National Bank reference rate, the plain ones
	// the commercial rate; any of the four may be absent.
	RateRecord struct {
		Currency       string           `json:"currency"`
		SaleRateNB     *decimal.Decimal `json:"saleRateNB,omitempty"`
		SaleRate       *decimal.Decimal `json:"saleRate,omitempty"`
		PurchaseRateNB *decimal.Decimal `json:"purchaseRateNB,omitempty"`
		PurchaseRate   *decimal.Decimal `json:"purchaseRate,omitempty"`
	}

	// RawRateResponse mirrors the remote JSON body for one date.
	RawRateResponse struct {
		Date         string       `json:"date"`
		Bank         string       `json:"bank,omitempty"`
		BaseCurrency int          `json:"baseCurrency,omitempty"`
		ExchangeRate []RateRecord `json:"exchangeRate"`
	}
)

// Adapt extracts the response date and the rates of every currency in
// the filter, preferring the NB rate over the commercial one. The input
// is not mutated. A response without a date is rejected with
// ErrMissingDate; a response matching no filtered currency still yields
// a Snapshot with an empty rates map.
func Adapt(resp RawRateResponse, filter Filter) (Snapshot, error) {
	if resp.Date == "" {
		return nil, ErrMissingDate
	}

	filtered := make(map[string]CurrencyRate)

	for _, record := range resp.ExchangeRate {
		if !filter.Contains(record.Currency) {
			continue
		}

		filtered[record.Currency] = CurrencyRate{
			Sale:     firstRate(record.SaleRateNB, record.SaleRate),
			Purchase: firstRate(record.PurchaseRateNB, record.PurchaseRate),
		}
	}

	return Snapshot{DateStamp(resp.Date): filtered}, nil
}

func firstRate(candidates ...*decimal.Decimal) *decimal.Decimal {
	for _, candidate := range candidates {
		if candidate != nil {
			return candidate
		}
	}

	return nil
}
