package services

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	rates "github.com/fin-tools/rates-fetcher"
)

// Service wires the pipeline together: shift validation, date range,
// concurrent fetch, adaptation.
type Service struct {
	Fetcher rates.Fetcher
	Log     logrus.FieldLogger
}

// FetchAll validates the input, builds the filter set and the date
// range, and runs the fetch batch. Validation failures surface to the
// caller before any network call; per-date fetch failures do not, they
// are already logged by the fetcher and only shrink the ResultSet.
func (s Service) FetchAll(ctx context.Context, shift int, extraCodes []string) (rates.ResultSet, error) {
	if err := rates.ValidateShift(shift); err != nil {
		return nil, err
	}

	filter, err := rates.NewFilter(extraCodes...)
	if err != nil {
		return nil, err
	}

	dates := rates.DateRange(time.Now(), shift)

	results, err := s.Fetcher.Fetch(ctx, dates, filter)
	if err != nil {
		s.logger().WithError(err).Warnf("%d of %d dates missing from the result", len(dates)-len(results), len(dates))
	}

	return results, nil
}

func (s Service) logger() logrus.FieldLogger {
	if s.Log != nil {
		return s.Log
	}

	return logrus.StandardLogger()
}
