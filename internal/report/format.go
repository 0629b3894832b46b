package report

import (
	"fmt"
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Formatter renders monetary amounts, counts and ratios for the report
// pages. Each configured currency carries its own locale so grouping
// separators follow the market the figure belongs to.
type Formatter struct {
	printers map[string]*message.Printer
	symbols  map[string]string
	fallback *message.Printer
}

// NewFormatter builds a formatter for the reporting currencies.
func NewFormatter() *Formatter {
	return &Formatter{
		printers: map[string]*message.Printer{
			"GBP": message.NewPrinter(language.BritishEnglish),
			"USD": message.NewPrinter(language.AmericanEnglish),
			"EUR": message.NewPrinter(language.MustParse("en-IE")),
		},
		symbols: map[string]string{
			"GBP": "£",
			"USD": "$",
			"EUR": "€",
		},
		fallback: message.NewPrinter(language.English),
	}
}

// Money renders a whole-unit amount with the currency symbol, grouping
// separators and a leading minus for losses.
func (f *Formatter) Money(amount float64, code string) string {
	printer, ok := f.printers[code]
	if !ok {
		printer = f.fallback
	}
	symbol := f.symbols[code]
	if symbol == "" {
		symbol = code + " "
	}
	sign := ""
	if amount < 0 {
		sign = "-"
	}
	abs := math.Abs(math.Round(amount))
	return sign + symbol + printer.Sprintf("%v", number.Decimal(abs, number.MaxFractionDigits(0)))
}

// Count renders an integer with grouping separators.
func (f *Formatter) Count(n int) string {
	return f.fallback.Sprintf("%v", number.Decimal(n))
}

// Percent renders a ratio as a percentage with one decimal place.
func (f *Formatter) Percent(ratio float64) string {
	return fmt.Sprintf("%.1f%%", ratio*100)
}

// Growth renders a month-over-month ratio with an explicit sign.
func (f *Formatter) Growth(ratio float64) string {
	return fmt.Sprintf("%+.1f%%", ratio*100)
}
