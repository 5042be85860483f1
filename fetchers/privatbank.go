package fetchers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"

	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"

	rates "github.com/fin-tools/rates-fetcher"
)

// PrivatBankFetchURL serves the historical exchange rates archive of
// PrivatBank, one calendar day per request.
const PrivatBankFetchURL = "https://api.privatbank.ua/p24api/exchange_rates"

const maxBodyBytes = 1 << 20

type (
	// PrivatBankFetcher issues one GET per date concurrently over a
	// shared client session. Zero values fall back to the public API
	// endpoint and a default client.
	PrivatBankFetcher struct {
		URL    string
		Client *http.Client
		Log    logrus.FieldLogger
	}

	outcome struct {
		date      rates.DateStamp
		url       string
		requestID string
		response  rates.RawRateResponse
		err       error
	}
)

// Fetch retrieves the rates for every date, waiting for all requests to
// resolve before returning. Failed dates are logged, collected into the
// returned multierror and left out of the ResultSet; they never abort
// the rest of the batch. The result order is completion order.
func (f PrivatBankFetcher) Fetch(
	ctx context.Context,
	dates []rates.DateStamp,
	filter rates.Filter,
) (rates.ResultSet, error) {
	var wg sync.WaitGroup

	client := f.Client
	if client == nil {
		client = &http.Client{}
	}
	// The session lives for exactly one batch.
	defer client.CloseIdleConnections()

	outcomes := make(chan outcome, len(dates))

	wg.Add(len(dates))
	for _, date := range dates {
		go f.fetchDate(ctx, &wg, client, date, outcomes)
	}

	go func(wg *sync.WaitGroup) {
		wg.Wait()
		close(outcomes)
	}(&wg)

	results := make(rates.ResultSet, 0, len(dates))

	var errs *multierror.Error

	for out := range outcomes {
		log := f.logger().WithFields(logrus.Fields{
			"date":       out.date,
			"url":        out.url,
			"request_id": out.requestID,
		})

		if out.err != nil {
			log.WithError(out.err).Error("fetching exchange rates failed")
			errs = multierror.Append(errs, out.err)

			continue
		}

		snapshot, err := rates.Adapt(out.response, filter)
		if err != nil {
			log.WithError(err).Error("adapting exchange rates failed")
			errs = multierror.Append(errs, err)

			continue
		}

		results = append(results, snapshot)
	}

	return results, errs.ErrorOrNil()
}

func (f PrivatBankFetcher) fetchDate(
	ctx context.Context,
	wg *sync.WaitGroup,
	client *http.Client,
	date rates.DateStamp,
	outcomes chan<- outcome,
) {
	defer wg.Done()

	out := outcome{date: date, requestID: uuid.NewString()}

	baseURL := f.URL
	if baseURL == "" {
		baseURL = PrivatBankFetchURL
	}

	u, err := url.Parse(baseURL)
	if err != nil {
		out.url = baseURL
		out.err = &RequestError{URL: baseURL, Err: err}
		outcomes <- out

		return
	}

	q := u.Query()
	q.Set("date", string(date))
	u.RawQuery = q.Encode()
	out.url = u.String()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		out.err = &RequestError{URL: u.String(), Err: err}
		outcomes <- out

		return
	}

	req.Header.Add("Accept", "application/json")

	res, err := client.Do(req)
	if err != nil {
		out.err = &RequestError{URL: u.String(), Err: err}
		outcomes <- out

		return
	}

	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		out.err = &RequestError{URL: u.String(), Err: classifyStatus(res.StatusCode)}
		outcomes <- out

		return
	}

	body, err := io.ReadAll(io.LimitReader(res.Body, maxBodyBytes))
	if err != nil {
		out.err = &RequestError{URL: u.String(), Err: fmt.Errorf("read body: %w", err)}
		outcomes <- out

		return
	}

	if err := json.Unmarshal(body, &out.response); err != nil {
		out.err = &RequestError{URL: u.String(), Err: fmt.Errorf("unmarshal body: %w", err)}
	}

	outcomes <- out
}

func (f PrivatBankFetcher) logger() logrus.FieldLogger {
	if f.Log != nil {
		return f.Log
	}

	return logrus.StandardLogger()
}
