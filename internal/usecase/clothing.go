package usecase

import "strings"

// clothingKeywords is the fixed garment vocabulary used to pick between
// the clothing and non-clothing output templates
var clothingKeywords = []string{
	"shirt", "tshirt", "t-shirt", "top", "dress", "jeans", "trouser",
	"pant", "short", "skirt", "blouse", "kurta", "saree", "lehenga",
	"jacket", "coat", "sweater", "hoodie", "sweatshirt", "blazer",
	"suit", "ethnic", "western", "casual", "formal", "party wear",
	"kurti", "palazzo", "dupatta", "salwar", "kameez", "churidar",
	"nightwear", "innerwear", "bra", "panty", "brief", "boxer",
	"sock", "stocking", "legging", "jegging", "capri", "bermuda",
}

// IsClothing reports whether the title describes a clothing item
func IsClothing(title string) bool {
	lower := strings.ToLower(title)
	for _, keyword := range clothingKeywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}
