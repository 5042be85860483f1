package rates

import (
	"fmt"
	"sort"
	"strings"
)

// MandatoryCodes are always part of the filter set, whether or not the
// caller asks for them.
var MandatoryCodes = []string{"USD", "EUR"}

var supportedCodes = map[string]struct{}{
	"AUD": {}, "CAD": {}, "CZK": {}, "DKK": {}, "HUF": {},
	"ILS": {}, "JPY": {}, "LVL": {}, "LTL": {}, "NOK": {},
	"SKK": {}, "SEK": {}, "CHF": {}, "GBP": {}, "USD": {},
	"BYR": {}, "EUR": {}, "GEL": {}, "PLZ": {},
}

// ParseCode normalizes a currency code and checks it against the set of
// codes the remote service publishes.
func ParseCode(str string) (string, error) {
	code := strings.ToUpper(strings.TrimSpace(str))

	if _, ok := supportedCodes[code]; !ok {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedCurrency, str)
	}

	return code, nil
}

// Filter is the set of currency codes the adapter retains.
type Filter map[string]struct{}

// NewFilter builds the union of MandatoryCodes and the extra codes.
// Duplicates are harmless; unsupported codes are rejected.
func NewFilter(extraCodes ...string) (Filter, error) {
	filter := make(Filter, len(MandatoryCodes)+len(extraCodes))

	for _, code := range MandatoryCodes {
		filter[code] = struct{}{}
	}

	for _, str := range extraCodes {
		code, err := ParseCode(str)
		if err != nil {
			return nil, err
		}

		filter[code] = struct{}{}
	}

	return filter, nil
}

func (f Filter) Contains(code string) bool {
	_, ok := f[code]

	return ok
}

// Codes returns the filter's members sorted, for stable log output.
func (f Filter) Codes() []string {
	codes := make([]string, 0, len(f))
	for code := range f {
		codes = append(codes, code)
	}

	sort.Strings(codes)

	return codes
}
