package usecase

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/linklens/backend/internal/domain"
)

// minTitleLength rejects junk matches (nav labels, brand logos) at every
// cascade stage
const minTitleLength = 6

const maxSizes = 10

var (
	// Strips trailing site-branding suffixes from <title> text,
	// e.g. "Cotton Kurta - Buy Cotton Kurta Online | Amazon.in"
	titleSuffixPattern = regexp.MustCompile(`(?i)\s*[-|:]\s*(Buy|Shop|Amazon|Flipkart|Meesho|Myntra|Ajio|Snapdeal).*$`)

	sizeTokenPattern = regexp.MustCompile(`(?i)\b(XS|S|M|L|XL|XXL|XXXL|Free Size|\d{2,3})\b`)
	sizeListPattern  = regexp.MustCompile(`(?i)Size[:\s]+((?:XS|S|M|L|XL|XXL|XXXL|Free Size|\d{2,3})(?:\s*,\s*(?:XS|S|M|L|XL|XXL|XXXL|Free Size|\d{2,3}))*)`)
)

// ldProduct is the subset of a schema.org Product block the extractor
// cares about
type ldProduct struct {
	Name   string          `json:"name"`
	Title  string          `json:"title"`
	Offers json.RawMessage `json:"offers"`
}

type ldOffers struct {
	Price json.RawMessage `json:"price"`
}

// Extractor turns a fetched product page into a structured record by
// running an ordered cascade of strategies per field
type Extractor struct{}

// NewExtractor creates an extractor
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract builds a product record from the document. The raw message
// text is used only for pin-code extraction on platforms with delivery
// variants. A returned record with an empty Title means extraction
// failed for every strategy.
func (e *Extractor) Extract(doc *goquery.Document, platform domain.PlatformID, messageText string) *domain.ProductRecord {
	record := &domain.ProductRecord{
		PinCode: domain.DefaultPinCode,
	}

	spec, _ := specFor(platform)

	record.Title = e.extractTitle(doc, spec)
	record.Price = e.extractPrice(doc, spec)

	if platform == domain.PlatformMeesho {
		record.Sizes = e.extractSizes(doc, spec)
		record.PinCode = ExtractPinCode(messageText)
	}

	return record
}

// extractTitle runs the title cascade: platform selectors, ld+json
// product metadata, meta tags, then the <title> element with branding
// suffixes stripped.
func (e *Extractor) extractTitle(doc *goquery.Document, spec platformSpec) string {
	for _, selector := range spec.TitleSelectors {
		title := strings.TrimSpace(doc.Find(selector).First().Text())
		if len(title) >= minTitleLength {
			return title
		}
	}

	if title := e.titleFromStructuredData(doc); title != "" {
		return title
	}

	for _, selector := range []string{
		`meta[property="og:title"]`,
		`meta[name="title"]`,
		`meta[property="twitter:title"]`,
	} {
		content, _ := doc.Find(selector).First().Attr("content")
		content = strings.TrimSpace(content)
		if len(content) >= minTitleLength {
			return content
		}
	}

	pageTitle := strings.TrimSpace(doc.Find("title").First().Text())
	pageTitle = strings.TrimSpace(titleSuffixPattern.ReplaceAllString(pageTitle, ""))
	if len(pageTitle) >= minTitleLength {
		return pageTitle
	}

	return ""
}

// extractPrice runs the price cascade: platform selectors (each element
// parsed with the minimum-of-candidates rule), ld+json offers, then the
// full-page frequency scan.
func (e *Extractor) extractPrice(doc *goquery.Document, spec platformSpec) int {
	for _, selector := range spec.PriceSelectors {
		price := 0
		doc.Find(selector).EachWithBreak(func(_ int, s *goquery.Selection) bool {
			price = ParsePrice(strings.TrimSpace(s.Text()))
			return price == 0
		})
		if price > 0 {
			return price
		}
	}

	if price := e.priceFromStructuredData(doc); price > 0 {
		return price
	}

	return scanPageForPrice(doc.Text())
}

// extractSizes collects variant sizes via the selector cascade, falling
// back to size-token regexes over the page text. Values are upper-cased,
// deduplicated, and capped.
func (e *Extractor) extractSizes(doc *goquery.Document, spec platformSpec) []string {
	var raw []string

	for _, selector := range spec.SizeSelectors {
		doc.Find(selector).Each(func(_ int, s *goquery.Selection) {
			text := strings.TrimSpace(s.Text())
			if text != "" && len(text) <= 10 {
				raw = append(raw, text)
			}
		})
	}

	if len(raw) == 0 {
		pageText := doc.Text()
		for _, match := range sizeListPattern.FindAllStringSubmatch(pageText, -1) {
			for _, part := range strings.Split(match[1], ",") {
				raw = append(raw, strings.TrimSpace(part))
			}
		}
		if len(raw) == 0 {
			for _, match := range sizeTokenPattern.FindAllStringSubmatch(pageText, -1) {
				raw = append(raw, match[1])
			}
		}
	}

	var sizes []string
	seen := make(map[string]bool)
	for _, size := range raw {
		size = strings.ToUpper(strings.TrimSpace(size))
		if size == "" || len(size) > 10 || seen[size] {
			continue
		}
		seen[size] = true
		sizes = append(sizes, size)
		if len(sizes) == maxSizes {
			break
		}
	}

	return sizes
}

// titleFromStructuredData scans embedded ld+json blocks for a product
// name. Blocks may hold a single object or an array; malformed blocks
// are skipped.
func (e *Extractor) titleFromStructuredData(doc *goquery.Document) string {
	title := ""
	doc.Find(`script[type="application/ld+json"]`).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		for _, product := range parseLDProducts(s.Text()) {
			candidate := product.Name
			if candidate == "" {
				candidate = product.Title
			}
			candidate = strings.TrimSpace(candidate)
			if len(candidate) >= minTitleLength {
				title = candidate
				return false
			}
		}
		return true
	})
	return title
}

// priceFromStructuredData scans embedded ld+json blocks for offers.price
func (e *Extractor) priceFromStructuredData(doc *goquery.Document) int {
	price := 0
	doc.Find(`script[type="application/ld+json"]`).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		for _, product := range parseLDProducts(s.Text()) {
			if len(product.Offers) == 0 {
				continue
			}
			var offers ldOffers
			if err := json.Unmarshal(product.Offers, &offers); err != nil {
				continue
			}
			if p := parseLDPrice(offers.Price); p > 0 {
				price = p
				return false
			}
		}
		return true
	})
	return price
}

// parseLDProducts decodes an ld+json block into product candidates,
// accepting either a single object or an array
func parseLDProducts(raw string) []ldProduct {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	var single ldProduct
	if err := json.Unmarshal([]byte(raw), &single); err == nil {
		return []ldProduct{single}
	}

	var list []ldProduct
	if err := json.Unmarshal([]byte(raw), &list); err == nil {
		return list
	}

	return nil
}

// parseLDPrice handles offers.price appearing as either a JSON number
// or a numeric string
func parseLDPrice(raw json.RawMessage) int {
	if len(raw) == 0 {
		return 0
	}

	var asNumber float64
	if err := json.Unmarshal(raw, &asNumber); err == nil {
		return int(asNumber)
	}

	var asString string
	if err := json.Unmarshal(raw, &asString); err == nil {
		if value, err := strconv.ParseFloat(strings.TrimSpace(asString), 64); err == nil {
			return int(value)
		}
	}

	return 0
}
