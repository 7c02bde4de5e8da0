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

const moexBaseURL = "https://iss.moex.com"

// MoexSource fetches share prices from the MOEX ISS API.
type MoexSource struct {
	BaseURL     string
	Client      *http.Client
	HistoryDays int
}

// NewMoexSource creates a MOEX fetcher with optional proxy support.
func NewMoexSource(proxyURL string, historyDays int) *MoexSource {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	if historyDays <= 0 {
		historyDays = 180
	}
	return &MoexSource{
		BaseURL: moexBaseURL,
		Client: &http.Client{
			Timeout:   10 * time.Second,
			Transport: transport,
		},
		HistoryDays: historyDays,
	}
}

func (s *MoexSource) Name() string { return "moex" }

// moexTable is the ISS block shape: column names plus row tuples of mixed types.
type moexTable struct {
	Columns []string        `json:"columns"`
	Data    [][]interface{} `json:"data"`
}

func (s *MoexSource) getJSON(ctx context.Context, endpoint string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	resp, err := s.Client.Do(req)
	if err != nil {
		return fmt.Errorf("moex fetch: %w", err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("moex read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("moex: status %d, body: %s", resp.StatusCode, string(body))
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("moex decode: %w", err)
	}
	return nil
}

// FetchHistory queries the ISS history endpoint over a trailing window of
// HistoryDays calendar days, requesting only (TRADEDATE, CLOSE) columns.
func (s *MoexSource) FetchHistory(ctx context.Context, ticker string) (model.PriceSeries, error) {
	end := time.Now()
	start := end.AddDate(0, 0, -s.HistoryDays)

	q := url.Values{}
	q.Set("from", start.Format("2006-01-02"))
	q.Set("till", end.Format("2006-01-02"))
	q.Set("iss.only", "history")
	q.Set("history.columns", "TRADEDATE,CLOSE")

	endpoint := fmt.Sprintf("%s/iss/history/engines/stock/markets/shares/securities/%s.json?%s",
		s.BaseURL, url.PathEscape(ticker), q.Encode())

	var payload struct {
		History moexTable `json:"history"`
	}
	if err := s.getJSON(ctx, endpoint, &payload); err != nil {
		return nil, err
	}

	series := make(model.PriceSeries, 0, len(payload.History.Data))
	for _, row := range payload.History.Data {
		if len(row) < 2 {
			continue
		}
		dateStr, ok := row[0].(string)
		if !ok {
			continue
		}
		closePrice, ok := toFloat(row[1])
		if !ok {
			continue // null close, e.g. no trades that day
		}
		t, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			continue
		}
		series = append(series, model.PricePoint{Time: t, Close: closePrice})
	}
	return series.Normalize(), nil
}

// FetchPrice queries the marketdata LAST column for the latest trade price.
func (s *MoexSource) FetchPrice(ctx context.Context, ticker string) (float64, error) {
	q := url.Values{}
	q.Set("iss.only", "marketdata")
	q.Set("marketdata.columns", "LAST")

	endpoint := fmt.Sprintf("%s/iss/engines/stock/markets/shares/securities/%s.json?%s",
		s.BaseURL, url.PathEscape(ticker), q.Encode())

	var payload struct {
		MarketData moexTable `json:"marketdata"`
	}
	if err := s.getJSON(ctx, endpoint, &payload); err != nil {
		return 0, err
	}
	if len(payload.MarketData.Data) == 0 || len(payload.MarketData.Data[0]) == 0 {
		return 0, fmt.Errorf("moex: no marketdata for %s", ticker)
	}
	last, ok := toFloat(payload.MarketData.Data[0][0])
	if !ok {
		return 0, fmt.Errorf("moex: LAST is not numeric for %s", ticker)
	}
	return last, nil
}
