package services_test

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	rates "github.com/fin-tools/rates-fetcher"
	"github.com/fin-tools/rates-fetcher/services"
)

type MockFetcher struct {
	mock.Mock
}

func (m *MockFetcher) Fetch(ctx context.Context, dates []rates.DateStamp, filter rates.Filter) (rates.ResultSet, error) {
	args := m.Called(ctx, dates, filter)

	return1 := args.Get(0)

	if return1 == nil {
		return nil, args.Error(1)
	}

	return return1.(rates.ResultSet), args.Error(1)
}

func silentLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	return logger
}

func TestService_FetchAll(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("Shift outside the range fails before any fetch", func(t *testing.T) {
		asserts := require.New(t)
		fetcher := &MockFetcher{}
		service := services.Service{Fetcher: fetcher, Log: silentLogger()}

		for _, shift := range []int{-1, 11} {
			results, err := service.FetchAll(ctx, shift, nil)

			asserts.Nil(results)
			asserts.True(errors.Is(err, rates.ErrShiftOutOfRange))
		}

		fetcher.AssertNotCalled(t, "Fetch")
	})

	t.Run("Unsupported currency fails before any fetch", func(t *testing.T) {
		asserts := require.New(t)
		fetcher := &MockFetcher{}
		service := services.Service{Fetcher: fetcher, Log: silentLogger()}

		results, err := service.FetchAll(ctx, 1, []string{"XYZ"})

		asserts.Nil(results)
		asserts.True(errors.Is(err, rates.ErrUnsupportedCurrency))
		fetcher.AssertNotCalled(t, "Fetch")
	})

	t.Run("Fetches one date per shifted day with the mandatory codes", func(t *testing.T) {
		asserts := require.New(t)
		fetcher := &MockFetcher{}
		service := services.Service{Fetcher: fetcher, Log: silentLogger()}

		expected := rates.ResultSet{
			{"05.03.2024": {}},
			{"04.03.2024": {}},
			{"03.03.2024": {}},
		}

		fetcher.On(
			"Fetch",
			ctx,
			mock.MatchedBy(func(dates []rates.DateStamp) bool { return len(dates) == 3 }),
			mock.MatchedBy(func(filter rates.Filter) bool {
				return len(filter) == 3 &&
					filter.Contains("USD") &&
					filter.Contains("EUR") &&
					filter.Contains("CHF")
			}),
		).Return(expected, nil)

		results, err := service.FetchAll(ctx, 3, []string{"CHF", "USD"})

		asserts.NoError(err)
		asserts.Equal(expected, results)
		fetcher.AssertExpectations(t)
	})

	t.Run("Per-date failures never propagate", func(t *testing.T) {
		asserts := require.New(t)
		fetcher := &MockFetcher{}
		service := services.Service{Fetcher: fetcher, Log: silentLogger()}

		partial := rates.ResultSet{{"05.03.2024": {}}}
		batchErr := multierror.Append(nil, errors.New("request http://x: server error"))

		fetcher.On("Fetch", ctx, mock.Anything, mock.Anything).Return(partial, batchErr.ErrorOrNil())

		results, err := service.FetchAll(ctx, 2, nil)

		asserts.NoError(err)
		asserts.Equal(partial, results)
	})
}
