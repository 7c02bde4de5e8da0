package source

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/Tarzanchik/trading-bot/internal/model"
)

const yahooBaseURL = "https://query1.finance.yahoo.com"

// YahooSource fetches prices from the Yahoo Finance public chart API.
type YahooSource struct {
	BaseURL string
	Client  *http.Client
}

// NewYahooSource creates a Yahoo Finance fetcher with optional proxy support.
func NewYahooSource(proxyURL string) *YahooSource {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &YahooSource{
		BaseURL: yahooBaseURL,
		Client: &http.Client{
			Timeout:   10 * time.Second,
			Transport: transport,
		},
	}
}

func (s *YahooSource) Name() string { return "yahoo" }

// yahooChart is the response structure from the Yahoo chart API.
type yahooChart struct {
	Chart struct {
		Result []struct {
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Close []interface{} `json:"close"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

func (s *YahooSource) fetchChart(ctx context.Context, ticker, interval, rng string) (model.PriceSeries, error) {
	endpoint := fmt.Sprintf("%s/v8/finance/chart/%s?interval=%s&range=%s",
		s.BaseURL, url.PathEscape(ticker), interval, rng)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("yahoo fetch: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("yahoo read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("yahoo: status %d, body: %s", resp.StatusCode, string(body))
	}

	var chart yahooChart
	if err := json.Unmarshal(body, &chart); err != nil {
		return nil, fmt.Errorf("yahoo decode: %w", err)
	}
	if chart.Chart.Error != nil {
		return nil, fmt.Errorf("yahoo api error: %s", chart.Chart.Error.Description)
	}
	if len(chart.Chart.Result) == 0 || len(chart.Chart.Result[0].Indicators.Quote) == 0 {
		return model.PriceSeries{}, nil
	}

	result := chart.Chart.Result[0]
	quote := result.Indicators.Quote[0]
	series := make(model.PriceSeries, 0, len(result.Timestamp))
	for i, ts := range result.Timestamp {
		if i >= len(quote.Close) {
			break
		}
		closePrice, ok := toFloat(quote.Close[i])
		if !ok {
			continue // null close (holidays etc.)
		}
		series = append(series, model.PricePoint{Time: time.Unix(ts, 0).UTC(), Close: closePrice})
	}
	return series.Normalize(), nil
}

// FetchHistory returns roughly six months of daily closes.
func (s *YahooSource) FetchHistory(ctx context.Context, ticker string) (model.PriceSeries, error) {
	return s.fetchChart(ctx, ticker, "1d", "6mo")
}

// FetchPrice returns the latest daily close.
func (s *YahooSource) FetchPrice(ctx context.Context, ticker string) (float64, error) {
	series, err := s.fetchChart(ctx, ticker, "1d", "1d")
	if err != nil {
		return 0, err
	}
	if series.Empty() {
		return 0, fmt.Errorf("yahoo: no price data for %s", ticker)
	}
	return series.Last().Close, nil
}
