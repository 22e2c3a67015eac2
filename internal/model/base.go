package model

// Meta carries pagination metadata. The API returns it on every list
// response, including unpaginated "get everything up to limit" calls.
type Meta struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
	Pages int `json:"pages"`
}

// Option is a value/label pair for select inputs in the admin forms.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Section values classifying a category's usage context. The set is fixed;
// a category's section never changes after creation.
const (
	SectionService = "service"
	SectionPrice   = "price"
	SectionProduct = "product"
)

// Sections lists the valid section codes in display order.
var Sections = []string{SectionService, SectionPrice, SectionProduct}

// ValidSection reports whether s is one of the fixed section codes.
func ValidSection(s string) bool {
	for _, v := range Sections {
		if v == s {
			return true
		}
	}
	return false
}
