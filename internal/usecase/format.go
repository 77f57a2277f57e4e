package usecase

import (
	"fmt"
	"strings"

	"github.com/linklens/backend/internal/domain"
)

// ExtractionFailedMessage is the fixed user-facing line sent when no
// strategy produced a usable product record
const ExtractionFailedMessage = "❌ Unable to extract product info."

const attributionFooter = "@reviewcheckk"

// allSizesThreshold is the distinct-size count at or above which the
// size line collapses to "Size - All"
const allSizesThreshold = 5

// FormatReply assembles the product record into the platform's message
// template. It fails closed: a nil record or one with an empty title
// yields the fixed failure line with no URL or partial fields.
func FormatReply(record *domain.ProductRecord, url string, platform domain.PlatformID) string {
	if record == nil || record.Title == "" {
		return ExtractionFailedMessage
	}

	spec, ok := specFor(platform)
	if ok && spec.Template == templateMeesho {
		return formatMeesho(record, url)
	}
	return formatGeneric(record, url)
}

// formatMeesho renders: "[gender] [quantity] title [@price rs]", the URL,
// an optional size line, the pin line, and the attribution footer.
func formatMeesho(record *domain.ProductRecord, url string) string {
	line := joinNonEmpty(record.Gender, record.Quantity, record.Title, priceSegment(record.Price, "@%d rs"))

	var b strings.Builder
	b.WriteString(line)
	b.WriteString("\n")
	b.WriteString(url)
	b.WriteString("\n")

	if len(record.Sizes) > 0 {
		if len(record.Sizes) >= allSizesThreshold {
			b.WriteString("\nSize - All")
		} else {
			b.WriteString("\nSize - " + strings.Join(record.Sizes, ", "))
		}
	}

	b.WriteString("\nPin - " + record.PinCode + "\n")
	b.WriteString("\n" + attributionFooter)
	return b.String()
}

// formatGeneric renders "[gender] [brand] title" for clothing titles
// ("[brand] title" otherwise), an optional price segment, the URL, and
// the attribution footer separated by a blank line.
func formatGeneric(record *domain.ProductRecord, url string) string {
	var line string
	if IsClothing(record.Title) {
		line = joinNonEmpty(record.Gender, record.Brand, record.Title, priceSegment(record.Price, "from @%d rs"))
	} else {
		line = joinNonEmpty(record.Brand, record.Title, priceSegment(record.Price, "from @%d rs"))
	}

	return line + "\n" + url + "\n\n" + attributionFooter
}

// priceSegment renders the price in the given format, or "" when absent
func priceSegment(price int, format string) string {
	if price <= 0 {
		return ""
	}
	return fmt.Sprintf(format, price)
}

// joinNonEmpty joins the non-empty segments with single spaces
func joinNonEmpty(parts ...string) string {
	var kept []string
	for _, part := range parts {
		if part != "" {
			kept = append(kept, part)
		}
	}
	return strings.Join(kept, " ")
}
