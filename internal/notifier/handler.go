package notifier

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Tarzanchik/trading-bot/internal/advisor"
)

const requestTimeout = 30 * time.Second

// NewCommandHandler builds the chat command dispatcher over the advisor.
func NewCommandHandler(adv *advisor.Advisor, log *zap.Logger) CommandHandler {
	return func(ctx context.Context, text string) string {
		fields := strings.Fields(text)
		if len(fields) == 0 {
			return HelpText
		}
		cmd := strings.ToLower(fields[0])
		args := fields[1:]

		reqCtx, cancel := context.WithTimeout(ctx, requestTimeout)
		defer cancel()

		switch cmd {
		case "/start", "/help":
			return HelpText

		case "/price":
			if len(args) == 0 {
				return "Usage: /price TICKER"
			}
			ticker := args[0]
			price, err := adv.GetPrice(reqCtx, ticker)
			switch {
			case errors.Is(err, advisor.ErrEmptyTicker):
				return "Usage: /price TICKER"
			case errors.Is(err, advisor.ErrNoData):
				return FormatPriceUnavailable(strings.ToUpper(ticker))
			case err != nil:
				log.Error("price command", zap.Error(err))
				return "⚠️ An internal error occurred."
			}
			return FormatPrice(strings.ToUpper(ticker), price)

		case "/recommend":
			if len(args) == 0 {
				return "Usage: /recommend TICKER"
			}
			ticker := args[0]
			rec, err := adv.GetRecommendation(reqCtx, ticker)
			switch {
			case errors.Is(err, advisor.ErrEmptyTicker):
				return "Usage: /recommend TICKER"
			case errors.Is(err, advisor.ErrNoData):
				return FormatNoData(strings.ToUpper(ticker))
			case err != nil:
				log.Error("recommend command", zap.Error(err))
				return "⚠️ An internal error occurred."
			}
			return FormatRecommendation(rec)

		default:
			return HelpText
		}
	}
}
