package usecase

import (
	"net/url"
	"strings"

	"github.com/linklens/backend/internal/domain"
)

// templateFamily selects which output template a platform uses
type templateFamily int

const (
	templateGeneric templateFamily = iota
	templateMeesho
)

// platformSpec holds everything the engine knows about one platform:
// the domain substrings used for classification, the ordered selector
// cascades per field, and the output template variant.
type platformSpec struct {
	ID             domain.PlatformID
	Domains        []string
	TitleSelectors []string
	PriceSelectors []string
	SizeSelectors  []string
	Template       templateFamily
}

// platformSpecs is the fixed platform table. Order matters: classification
// checks platforms in this order and the first domain match wins.
var platformSpecs = []platformSpec{
	{
		ID:      domain.PlatformAmazon,
		Domains: []string{"amazon.in", "amazon.com", "amzn.to", "amzn-to.co", "a.co"},
		TitleSelectors: []string{
			"#productTitle",
			"span#productTitle",
			"h1.a-size-large.a-spacing-none.a-color-base",
			".product-title",
			"h1 span",
		},
		PriceSelectors: []string{
			".a-price-whole",
			".a-offscreen",
			"#priceblock_dealprice",
			"#priceblock_ourprice",
			".a-price-range .a-offscreen",
			"span.a-price-symbol + span.a-price-whole",
		},
	},
	{
		ID:      domain.PlatformFlipkart,
		Domains: []string{"flipkart.com", "fkrt.cc", "dl.flipkart.com"},
		TitleSelectors: []string{
			".B_NuCI",
			".yhB1nd",
			"h1._35KyD6",
			"span.B_NuCI",
			"._35KyD6.col-xs-11.col-sm-11.col-md-11",
			"h1 span",
		},
		PriceSelectors: []string{
			"._30jeq3._16Jk6d",
			"._1_WHN1",
			".CEmiEU ._1_WHN1",
			"._30jeq3",
			"._25b18c .notranslate",
			".CEmiEU .srp-x9Jm",
		},
	},
	{
		ID:      domain.PlatformMeesho,
		Domains: []string{"meesho.com", "meesho.app"},
		TitleSelectors: []string{
			`[data-testid="product-title"]`,
			`h1[data-testid="product-title"]`,
			".sc-bcXHqe.kZLqhX",
			"h1.sc-bcXHqe",
			".ProductTitle__Container-sc-1jvw5kh-0 h1",
			"h1",
		},
		PriceSelectors: []string{
			`[data-testid="product-price"]`,
			".ProductPrice__Container-sc-1jvw5kh-0",
			".sc-bcXHqe.ProductPrice__PriceText",
			".ProductPrice__PriceText-sc-1jvw5kh-1",
			`span[data-testid="product-price"]`,
		},
		SizeSelectors: []string{
			`[data-testid="size-option"]`,
			".size-option",
			".variant-option",
			".size-variant",
			".ProductVariants__Container button",
			".sc-bcXHqe.ProductVariants__VariantButton",
		},
		Template: templateMeesho,
	},
	{
		ID:      domain.PlatformMyntra,
		Domains: []string{"myntra.com", "myntra.app"},
		TitleSelectors: []string{
			".pdp-name",
			"h1.pdp-name",
			".pdp-product-name",
			".pdp-name h1",
		},
		PriceSelectors: []string{
			".pdp-price strong",
			".pdp-price .pdp-price-info",
			".product-discountedPrice",
			".pdp-price span",
		},
	},
	{
		ID:      domain.PlatformAjio,
		Domains: []string{"ajio.com", "ajio.app"},
		TitleSelectors: []string{
			".prod-name",
			"h1.prod-name",
			".product-title",
			".fnl-plp-title",
		},
		PriceSelectors: []string{
			".prod-sp",
			".price-current",
			".current-price",
			".prod-price .price",
		},
	},
	{
		ID:      domain.PlatformSnapdeal,
		Domains: []string{"snapdeal.com", "snapdeal.app"},
		TitleSelectors: []string{
			"#productOverview h1",
			".pdp-product-name",
			".product-title",
			"h1.notranslate",
		},
		PriceSelectors: []string{
			".payBlkBig",
			".product-price",
			".lfloat.product-price",
			"#buyPriceDisplayTotal",
		},
	},
	{
		ID:      domain.PlatformWishlink,
		Domains: []string{"wishlink.com", "wishlink.app"},
		TitleSelectors: []string{
			".product-title",
			"h1",
			".title",
		},
		PriceSelectors: []string{
			".price",
			".product-price",
			".current-price",
		},
	},
}

// Classify maps a canonical URL to its platform based on domain substrings.
// Returns PlatformUnknown when no platform matches; callers must skip
// further processing for unknown platforms.
func Classify(rawURL string) domain.PlatformID {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return domain.PlatformUnknown
	}

	host := strings.ToLower(parsed.Host)
	for _, spec := range platformSpecs {
		for _, d := range spec.Domains {
			if strings.Contains(host, d) {
				return spec.ID
			}
		}
	}

	return domain.PlatformUnknown
}

// specFor returns the platform table entry for the given platform
func specFor(id domain.PlatformID) (platformSpec, bool) {
	for _, spec := range platformSpecs {
		if spec.ID == id {
			return spec, true
		}
	}
	return platformSpec{}, false
}
