package domain

import "strings"

// Locale describes how money is displayed
type Locale struct {
	Tag          string `yaml:"tag" json:"tag"`
	CurrencyCode string `yaml:"currency_code" json:"currencyCode"`
	Symbol       string `yaml:"symbol" json:"symbol"`
	Grouping     string `yaml:"grouping" json:"grouping"`
	Decimal      string `yaml:"decimal" json:"decimal"`
	// SymbolSpace puts a space between the symbol and the amount (R$ 10,00)
	SymbolSpace bool `yaml:"symbol_space" json:"symbolSpace"`
}

var (
	LocalePtBR = Locale{Tag: "pt-BR", CurrencyCode: "BRL", Symbol: "R$", Grouping: ".", Decimal: ",", SymbolSpace: true}
	LocaleEnUS = Locale{Tag: "en-US", CurrencyCode: "USD", Symbol: "$", Grouping: ",", Decimal: "."}
)

// DefaultLocale is used when nothing else is configured
var DefaultLocale = LocalePtBR

var locales = []Locale{LocalePtBR, LocaleEnUS}

// LookupLocale finds a locale by tag, case-insensitively; "" maps to the default
func LookupLocale(tag string) (Locale, bool) {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return DefaultLocale, true
	}
	tag = strings.ReplaceAll(tag, "_", "-")
	for _, l := range locales {
		if strings.EqualFold(l.Tag, tag) {
			return l, true
		}
	}
	return Locale{}, false
}

// LocaleTags lists the supported locale tags
func LocaleTags() []string {
	tags := make([]string, 0, len(locales))
	for _, l := range locales {
		tags = append(tags, l.Tag)
	}
	return tags
}
