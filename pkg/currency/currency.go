package currency

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// printer localizes numbers with English grouping separators (1,234.56)
var printer = message.NewPrinter(language.English)

// Format renders a monetary amount for display, e.g. Format("$", 1234.5) == "$1,234.50".
func Format(symbol string, amount float64) string {
	return printer.Sprintf("%s%.2f", symbol, amount)
}
