// Package format holds the French-locale display helpers shared by the
// public site and the back office.
package format

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var frPrinter = message.NewPrinter(language.French)

var frMonths = [...]string{
	"janvier", "février", "mars", "avril", "mai", "juin",
	"juillet", "août", "septembre", "octobre", "novembre", "décembre",
}

// SectionNames maps category section codes to their display labels.
var SectionNames = map[string]string{
	"service": "Services",
	"work":    "Réalisations",
	"price":   "Tarifs",
	"product": "Produits",
}

// Price renders an amount in euros with French digit grouping and exactly
// two fractional digits, e.g. 1500 -> "1 500,00 €".
func Price(amount float64) string {
	return frPrinter.Sprintf("%.2f €", amount)
}

// Date renders a date the long French way: "15 janvier 2024".
func Date(t time.Time) string {
	return fmt.Sprintf("%d %s %d", t.Day(), frMonths[t.Month()-1], t.Year())
}

// DateShort renders a date as "15/01/2024".
func DateShort(t time.Time) string {
	return t.Format("02/01/2006")
}

// DateTime renders a timestamp as "15 janvier 2024, 10:30".
func DateTime(t time.Time) string {
	return fmt.Sprintf("%s, %s", Date(t), t.Format("15:04"))
}

// Pluralize picks the singular or plural form. French only distinguishes
// one from many: 0 and 1 take the singular.
func Pluralize(count int, singular, plural string) string {
	if count <= 1 {
		return singular
	}
	return plural
}

// Truncate cuts text to maxLen runes and appends an ellipsis.
func Truncate(text string, maxLen int) string {
	runes := []rune(text)
	if len(runes) <= maxLen {
		return text
	}
	return strings.TrimSpace(string(runes[:maxLen])) + "..."
}

// SectionName returns the display label for a section code, falling back
// to the raw code for values the API introduces later.
func SectionName(section string) string {
	if name, ok := SectionNames[section]; ok {
		return name
	}
	return section
}

// ImageURL resolves an image path against the public API base. Absolute
// URLs pass through untouched; an empty path yields the site placeholder.
func ImageURL(publicBase, path string) string {
	if path == "" {
		return "/static/images/placeholder.svg"
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	return publicBase + path
}
