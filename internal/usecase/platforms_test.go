package usecase

import (
	"testing"

	"github.com/linklens/backend/internal/domain"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want domain.PlatformID
	}{
		{name: "amazon.in product", url: "https://www.amazon.in/dp/B0ABC123", want: domain.PlatformAmazon},
		{name: "amazon.com product", url: "https://www.amazon.com/dp/B0ABC123", want: domain.PlatformAmazon},
		{name: "amazon short domain", url: "https://amzn.to/3xYz12", want: domain.PlatformAmazon},
		{name: "flipkart", url: "https://www.flipkart.com/p/itm123", want: domain.PlatformFlipkart},
		{name: "flipkart deep link", url: "https://dl.flipkart.com/dl/p/itm123", want: domain.PlatformFlipkart},
		{name: "meesho", url: "https://www.meesho.com/s/p/123", want: domain.PlatformMeesho},
		{name: "myntra", url: "https://www.myntra.com/kurta/123", want: domain.PlatformMyntra},
		{name: "ajio", url: "https://www.ajio.com/p/456", want: domain.PlatformAjio},
		{name: "snapdeal", url: "https://www.snapdeal.com/product/789", want: domain.PlatformSnapdeal},
		{name: "wishlink", url: "https://www.wishlink.com/share/abc", want: domain.PlatformWishlink},
		{name: "upper-case host", url: "https://WWW.MEESHO.COM/s/p/123", want: domain.PlatformMeesho},
		{name: "unrelated site", url: "https://news.ycombinator.com/item?id=1", want: domain.PlatformUnknown},
		{name: "bare shortener not tied to a platform", url: "https://bit.ly/xyz", want: domain.PlatformUnknown},
		{name: "unparseable url", url: "://broken", want: domain.PlatformUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.url); got != tt.want {
				t.Errorf("Classify(%s) = %s, want %s", tt.url, got, tt.want)
			}
		})
	}
}

func TestPlatformSpecs_TableShape(t *testing.T) {
	seen := make(map[domain.PlatformID]bool)
	for _, spec := range platformSpecs {
		if seen[spec.ID] {
			t.Errorf("duplicate platform entry: %s", spec.ID)
		}
		seen[spec.ID] = true

		if len(spec.Domains) == 0 {
			t.Errorf("platform %s has no classification domains", spec.ID)
		}
		if len(spec.TitleSelectors) == 0 {
			t.Errorf("platform %s has no title selectors", spec.ID)
		}
		if len(spec.PriceSelectors) == 0 {
			t.Errorf("platform %s has no price selectors", spec.ID)
		}
	}

	// Size variants are a meesho-only concern
	for _, spec := range platformSpecs {
		if spec.ID != domain.PlatformMeesho && len(spec.SizeSelectors) > 0 {
			t.Errorf("platform %s unexpectedly has size selectors", spec.ID)
		}
	}
}
