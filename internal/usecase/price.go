package usecase

import (
	"regexp"
	"strconv"
	"strings"
)

// Plausible price bound in rupees. Numbers outside this range are
// rejected during all price parsing.
const (
	minPlausiblePrice = 10
	maxPlausiblePrice = 500000
)

var (
	currencyTokenPattern = regexp.MustCompile(`(?i)₹|\$|Rs\.?|INR|MRP|Price|[:\s]`)
	numberPattern        = regexp.MustCompile(`[0-9][0-9,]*(?:\.[0-9]{1,2})?`)

	// Currency-prefixed number patterns for full-page free-text scanning
	pagePricePatterns = []*regexp.Regexp{
		regexp.MustCompile(`₹\s*([0-9,]+(?:\.[0-9]{1,2})?)`),
		regexp.MustCompile(`Rs\.?\s*([0-9,]+(?:\.[0-9]{1,2})?)`),
		regexp.MustCompile(`INR\s*([0-9,]+(?:\.[0-9]{1,2})?)`),
		regexp.MustCompile(`Price[:\s]*₹?\s*([0-9,]+(?:\.[0-9]{1,2})?)`),
		regexp.MustCompile(`MRP[:\s]*₹?\s*([0-9,]+(?:\.[0-9]{1,2})?)`),
	}
)

// ParsePrice parses free-form currency text from a single element into a
// validated rupee amount. When the text contains several plausible
// numbers, the minimum wins: strikethrough MRP figures are typically
// listed first and larger than the actual price. Returns 0 when no
// plausible price is found.
func ParsePrice(text string) int {
	if text == "" {
		return 0
	}

	cleaned := currencyTokenPattern.ReplaceAllString(text, " ")

	best := 0
	for _, numStr := range numberPattern.FindAllString(cleaned, -1) {
		price, ok := toRupees(numStr)
		if !ok {
			continue
		}
		if best == 0 || price < best {
			best = price
		}
	}

	return best
}

// scanPageForPrice scans full visible page text for currency-prefixed
// numbers and returns the most frequently occurring plausible value,
// ties broken by first-seen order. Frequency guards against stray
// unrelated numbers (ratings, SKU codes) winning a single-shot parse.
// This deliberately differs from ParsePrice's minimum rule: a single
// well-scoped element trusts "smallest", whole-page text trusts
// "most common".
func scanPageForPrice(pageText string) int {
	counts := make(map[int]int)
	var firstSeen []int

	for _, pattern := range pagePricePatterns {
		for _, match := range pattern.FindAllStringSubmatch(pageText, -1) {
			price, ok := toRupees(match[1])
			if !ok {
				continue
			}
			if counts[price] == 0 {
				firstSeen = append(firstSeen, price)
			}
			counts[price]++
		}
	}

	best, bestCount := 0, 0
	for _, price := range firstSeen {
		if counts[price] > bestCount {
			best, bestCount = price, counts[price]
		}
	}

	return best
}

// toRupees converts a numeric substring (thousands separators allowed,
// up to 2 decimal places truncated) to a validated integer amount
func toRupees(numStr string) (int, bool) {
	value, err := strconv.ParseFloat(strings.ReplaceAll(numStr, ",", ""), 64)
	if err != nil {
		return 0, false
	}

	price := int(value)
	if price < minPlausiblePrice || price > maxPlausiblePrice {
		return 0, false
	}
	return price, true
}
