package rates

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
)

var (
	ErrShiftOutOfRange     = errors.New("shift out of range")
	ErrUnsupportedCurrency = errors.New("unsupported currency code")
	ErrMissingDate         = errors.New("response has no date field")
)

type (
	// DateStamp is a calendar date formatted as DD.MM.YYYY.
	DateStamp string

	// CurrencyRate holds the resolved sale and purchase rates for one
	// currency. Either field may be nil when the source record carries
	// no usable value.
	CurrencyRate struct {
		Sale     *decimal.Decimal `json:"sale"`
		Purchase *decimal.Decimal `json:"purchase"`
	}

	// Snapshot maps a single date to the filtered rates of that day.
	Snapshot map[DateStamp]map[string]CurrencyRate

	// ResultSet collects one Snapshot per successfully fetched date,
	// in fetch-completion order.
	ResultSet []Snapshot

	// Fetcher retrieves and adapts exchange rates for a set of dates.
	// The returned error aggregates per-date failures and is meant for
	// reporting only: the ResultSet is always valid and contains every
	// date that succeeded.
	Fetcher interface {
		Fetch(ctx context.Context, dates []DateStamp, filter Filter) (ResultSet, error)
	}

	// Service runs the whole pipeline: shift validation, date range,
	// fetch and adaptation.
	Service interface {
		FetchAll(ctx context.Context, shift int, extraCodes []string) (ResultSet, error)
	}
)
