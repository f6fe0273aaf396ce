package formatter

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/saintgo7/web-abada-pamout/internal/i18n"
)

func printer(lang i18n.Lang) *message.Printer {
	if lang == i18n.Korean {
		return message.NewPrinter(language.Korean)
	}
	return message.NewPrinter(language.English)
}

// Money renders an amount with locale-aware digit grouping and a
// currency symbol, e.g. "$2,500,000".
func Money(lang i18n.Lang, amount float64) string {
	p := printer(lang)
	symbol := "$"
	if lang == i18n.Korean {
		symbol = "₩"
	}
	return symbol + p.Sprint(number.Decimal(amount, number.MaxFractionDigits(0)))
}

// Number renders a number with locale-aware digit grouping.
func Number(lang i18n.Lang, v float64) string {
	return printer(lang).Sprint(number.Decimal(v, number.MaxFractionDigits(1)))
}

// Percent renders a 0-100 value as a percentage string.
func Percent(lang i18n.Lang, pct float64) string {
	return printer(lang).Sprintf("%.1f%%", pct)
}
