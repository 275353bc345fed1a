package gagyebu

import (
	"fmt"
	"math"
	"net/http"
	"time"

	"github.com/PaesslerAG/jsonpath"
	"github.com/cenkalti/backoff/v4"
)

// FxRate returns today's exchange rate from one currency to another, as the
// amount of 'to' bought by one unit of 'from'. Rates come from the open
// er-api service and are cached for the day; transient fetch errors are
// retried with exponential backoff.
func FxRate(from, to string) (float64, error) {
	if err := ValidateCurrency(from); err != nil {
		return math.NaN(), err
	}
	if err := ValidateCurrency(to); err != nil {
		return math.NaN(), err
	}
	if from == to {
		return 1, nil
	}

	var rate float64
	policy := backoff.NewExponentialBackOff()
	policy.MaxElapsedTime = 30 * time.Second
	err := backoff.Retry(func() error {
		r, err := fetchRate(daily(), from, to)
		if err != nil {
			return err
		}
		rate = r
		return nil
	}, policy)
	if err != nil {
		return math.NaN(), err
	}
	return rate, nil
}

// fetchRate asks the rate service once for the 'from' table and picks the
// 'to' entry out of the response.
func fetchRate(client *http.Client, from, to string) (float64, error) {
	addr := "https://open.er-api.com/v6/latest/" + from
	var jobj any
	if err := jwget(client, addr, &jobj); err != nil {
		return math.NaN(), fmt.Errorf("error in wget %s/%s: %w", from, to, err)
	}
	path := "$.rates." + to
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return math.NaN(), fmt.Errorf("error parsing %s/%s: %q %w", from, to, path, err)
	}
	// jsonpath may wrap a single answer in a list; keep the first one if so.
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	val, ok := jval.(float64)
	if !ok {
		return math.NaN(), fmt.Errorf("error parsing %s/%s: %q not a float: %v", from, to, path, jval)
	}
	if val == 0 {
		return math.NaN(), fmt.Errorf("empty rate for %s/%s", from, to)
	}
	return val, nil
}
