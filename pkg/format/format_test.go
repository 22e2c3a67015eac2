package format

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPriceUsesFrenchDecimals(t *testing.T) {
	assert.Equal(t, "19,90 €", Price(19.9))
	assert.Equal(t, "5,00 €", Price(5))
	assert.Equal(t, "0,50 €", Price(0.5))
}

func TestDate(t *testing.T) {
	d := time.Date(2024, time.January, 15, 10, 30, 0, 0, time.UTC)
	assert.Equal(t, "15 janvier 2024", Date(d))
	assert.Equal(t, "15/01/2024", DateShort(d))
	assert.Equal(t, "15 janvier 2024, 10:30", DateTime(d))
}

func TestPluralize(t *testing.T) {
	assert.Equal(t, "service", Pluralize(0, "service", "services"))
	assert.Equal(t, "service", Pluralize(1, "service", "services"))
	assert.Equal(t, "services", Pluralize(2, "service", "services"))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "court", Truncate("court", 10))
	assert.Equal(t, "un texte...", Truncate("un texte beaucoup trop long", 9))
	// Rune-aware: accented characters count as one.
	assert.Equal(t, "ééé", Truncate("ééé", 3))
}

func TestSectionName(t *testing.T) {
	assert.Equal(t, "Services", SectionName("service"))
	assert.Equal(t, "Réalisations", SectionName("work"))
	assert.Equal(t, "Tarifs", SectionName("price"))
	assert.Equal(t, "Produits", SectionName("product"))
	// Unknown codes pass through for display rather than erroring.
	assert.Equal(t, "autre", SectionName("autre"))
}

func TestImageURL(t *testing.T) {
	base := "https://api.example.com"

	assert.Equal(t, "https://api.example.com/uploads/a.jpg", ImageURL(base, "/uploads/a.jpg"))
	assert.Equal(t, "https://cdn.example.com/b.jpg", ImageURL(base, "https://cdn.example.com/b.jpg"))
	assert.Equal(t, "/static/images/placeholder.svg", ImageURL(base, ""))
}
