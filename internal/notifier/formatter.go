package notifier

import (
	"fmt"
	"html"
	"strings"

	"github.com/Tarzanchik/trading-bot/internal/model"
)

// HelpText is the /start reply.
const HelpText = "🤖 <b>Trading Bot</b>\n" +
	"/price TICKER — current price\n" +
	"/recommend TICKER — analysis and advice"

// FormatPrice formats a price lookup result.
func FormatPrice(ticker string, price float64) string {
	return fmt.Sprintf("<b>%s</b> price: %.2f", html.EscapeString(ticker), price)
}

// FormatPriceUnavailable formats the no-price result.
func FormatPriceUnavailable(ticker string) string {
	return fmt.Sprintf("<b>%s</b>: price not available.", html.EscapeString(ticker))
}

// FormatNoData formats the explicit no-data result for a recommendation.
func FormatNoData(ticker string) string {
	return fmt.Sprintf("<b>%s</b>\nNo data available.", html.EscapeString(ticker))
}

// FormatRecommendation renders a recommendation as an HTML message.
func FormatRecommendation(rec *model.Recommendation) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("<b>%s</b>\n", html.EscapeString(rec.Ticker)))
	b.WriteString(fmt.Sprintf("Close: %.2f\n", rec.LastClose))
	b.WriteString(fmt.Sprintf("MA5 / MA20: %s / %s\n", fmtVal(rec.MAShort, "%.2f"), fmtVal(rec.MALong, "%.2f")))
	b.WriteString(fmt.Sprintf("RSI(14): %s\n", fmtVal(rec.RSI, "%.1f")))
	b.WriteString(fmt.Sprintf("MACD: %s (sig %s)\n", fmtVal(rec.MACD, "%.2f"), fmtVal(rec.MACDSignal, "%.2f")))

	switch rec.Signal {
	case model.SignalBuy:
		b.WriteString("🟢 <b>BUY signal</b> (uptrend)")
	case model.SignalSell:
		b.WriteString("🔴 <b>SELL signal</b> (downtrend)")
	default:
		b.WriteString("🟡 <i>No clear signal</i>")
	}
	return b.String()
}

func fmtVal(v *float64, format string) string {
	if v == nil {
		return "n/a"
	}
	return fmt.Sprintf(format, *v)
}
