package locale

import (
	"strings"
	"time"

	"github.com/go-playground/locales"
	lcurrency "github.com/go-playground/locales/currency"
	"golang.org/x/text/currency"
)

// jpyPerUSD is the fixed rate the Japanese storefront has always displayed prices with.
const jpyPerUSD = 108

var currencyTypes = map[string]lcurrency.Type{
	"USD": lcurrency.USD,
	"EUR": lcurrency.EUR,
	"GBP": lcurrency.GBP,
	"JPY": lcurrency.JPY,
	"RUB": lcurrency.RUB,
	"IDR": lcurrency.IDR,
}

// Formatter renders values for a single locale. It holds no mutable state.
type Formatter struct {
	locale string
	trans  locales.Translator
	enUS   locales.Translator
}

func (f *Formatter) Locale() string {
	return f.locale
}

// FormatCurrency renders amount in the currency named by code.
//
// Under ja-JP the amount is converted to yen at jpyPerUSD and code is ignored.
// Every other locale renders with en-US grouping and symbols.
func (f *Formatter) FormatCurrency(amount float64, code string) string {
	if f.locale == JapaneseLocale {
		return formatAmount(f.trans, amount*jpyPerUSD, "JPY")
	}
	return formatAmount(f.enUS, amount, code)
}

func formatAmount(t locales.Translator, amount float64, code string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	scale := 2
	if unit, err := currency.ParseISO(code); err == nil {
		scale, _ = currency.Standard.Rounding(unit)
		code = unit.String()
	}

	if typ, ok := currencyTypes[code]; ok {
		return t.FmtCurrency(amount, uint64(scale), typ)
	}
	return code + " " + t.FmtNumber(amount, uint64(scale))
}

// FormatDisplayDate renders the long date ("October 4, 2019"), nil for a nil or zero date.
func (f *Formatter) FormatDisplayDate(date *time.Time) *string {
	if date == nil || date.IsZero() {
		return nil
	}
	s := f.trans.FmtDateLong(*date)
	return &s
}

// FormatDisplayDateString parses YYYY-MM-DD or RFC3339 and formats it; nil when unparseable.
func (f *Formatter) FormatDisplayDateString(raw string) *string {
	t, ok := ParseDate(raw)
	if !ok {
		return nil
	}
	return f.FormatDisplayDate(&t)
}

// FormatTimestamp renders date and time, used for comments.
func (f *Formatter) FormatTimestamp(t time.Time) *string {
	if t.IsZero() {
		return nil
	}
	s := f.trans.FmtDateLong(t) + " " + f.trans.FmtTimeMedium(t)
	return &s
}

// ParseDate accepts the two layouts stored catalogs use.
func ParseDate(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
