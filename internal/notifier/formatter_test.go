package notifier

import (
	"strings"
	"testing"

	"github.com/Tarzanchik/trading-bot/internal/model"
)

func fp(v float64) *float64 { return &v }

func TestFormatRecommendation_Buy(t *testing.T) {
	rec := &model.Recommendation{
		Ticker:     "SBER",
		LastClose:  257.30,
		MAShort:    fp(255.12),
		MALong:     fp(250.5),
		RSI:        fp(62.4),
		MACD:       fp(1.23),
		MACDSignal: fp(0.98),
		Signal:     model.SignalBuy,
	}
	msg := FormatRecommendation(rec)
	for _, want := range []string{"<b>SBER</b>", "Close: 257.30", "MA5 / MA20: 255.12 / 250.50", "RSI(14): 62.4", "BUY signal"} {
		if !strings.Contains(msg, want) {
			t.Errorf("message missing %q:\n%s", want, msg)
		}
	}
}

func TestFormatRecommendation_NilFields(t *testing.T) {
	rec := &model.Recommendation{
		Ticker:    "SBER",
		LastClose: 101,
		MAShort:   fp(100.5),
		Signal:    model.SignalNeutral,
	}
	msg := FormatRecommendation(rec)
	if !strings.Contains(msg, "MA5 / MA20: 100.50 / n/a") {
		t.Errorf("nil MA20 should render as n/a:\n%s", msg)
	}
	if !strings.Contains(msg, "RSI(14): n/a") {
		t.Errorf("nil RSI should render as n/a:\n%s", msg)
	}
	if !strings.Contains(msg, "No clear signal") {
		t.Errorf("expected neutral wording:\n%s", msg)
	}
}

func TestFormatEscapesTicker(t *testing.T) {
	msg := FormatNoData("<SBER>")
	if strings.Contains(msg, "<SBER>") {
		t.Errorf("ticker must be HTML-escaped:\n%s", msg)
	}
	if !strings.Contains(msg, "&lt;SBER&gt;") {
		t.Errorf("expected escaped ticker:\n%s", msg)
	}
}

func TestFormatPrice(t *testing.T) {
	if got := FormatPrice("SBER", 257.3); got != "<b>SBER</b> price: 257.30" {
		t.Errorf("FormatPrice = %q", got)
	}
	if got := FormatPriceUnavailable("ZZZZ"); !strings.Contains(got, "price not available") {
		t.Errorf("FormatPriceUnavailable = %q", got)
	}
}
