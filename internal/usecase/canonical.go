package usecase

import (
	"context"
	"net/url"
	"strings"

	"github.com/linklens/backend/internal/domain"
)

// shortenerDomains are known URL shortener services. Matching is by
// case-insensitive substring on the host.
var shortenerDomains = []string{
	"cutt.ly", "fkrt.cc", "amzn-to.co", "bitli.in", "a.co",
	"spoo.me", "wishlink.com", "da.gd", "bit.ly", "tinyurl.com",
	"short.link", "goo.gl", "t.co", "ow.ly", "is.gd", "buff.ly",
}

// trackingParams is the denylist of affiliate and tracking query keys
// removed during canonicalization. All other parameters are preserved.
var trackingParams = map[string]bool{
	"tag": true, "ref": true, "refRID": true, "pf_rd_r": true, "pf_rd_p": true,
	"pf_rd_m": true, "pf_rd_s": true, "pf_rd_t": true, "pf_rd_i": true,
	"linkCode": true, "camp": true, "creative": true, "creativeASIN": true,
	"ascsubtag": true, "asc_campaign": true, "asc_refurl": true, "asc_source": true,
	"utm_source": true, "utm_medium": true, "utm_campaign": true, "utm_term": true,
	"utm_content": true, "affid": true, "subid": true, "clickid": true,
	"pid": true, "sid": true, "cid": true, "aid": true, "tracking": true,
	"fbclid": true, "gclid": true, "mc_cid": true, "mc_eid": true,
	"_branch_match_id": true,
}

// IsShortened reports whether the URL's host belongs to a known shortener
func IsShortened(rawURL string) bool {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return false
	}

	host := strings.ToLower(parsed.Host)
	for _, shortener := range shortenerDomains {
		if strings.Contains(host, shortener) {
			return true
		}
	}
	return false
}

// StripTrackingParams removes denylisted query parameters from the URL
// while preserving the order of the remaining parameters, the path, and
// the fragment. It is a pure, idempotent string transform: unparseable
// input is returned unchanged.
func StripTrackingParams(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}

	if parsed.RawQuery == "" {
		return rawURL
	}

	// url.Values would lose parameter order, so filter the raw query
	// pair by pair instead.
	var kept []string
	for _, pair := range strings.Split(parsed.RawQuery, "&") {
		if pair == "" {
			continue
		}
		key := pair
		if idx := strings.Index(pair, "="); idx >= 0 {
			key = pair[:idx]
		}
		if decoded, err := url.QueryUnescape(key); err == nil {
			key = decoded
		}
		if trackingParams[key] {
			continue
		}
		kept = append(kept, pair)
	}

	parsed.RawQuery = strings.Join(kept, "&")
	return parsed.String()
}

// Canonicalizer resolves short links to their final destination and
// strips tracking parameters
type Canonicalizer struct {
	resolver domain.URLResolver
}

// NewCanonicalizer creates a canonicalizer using the given resolver
func NewCanonicalizer(resolver domain.URLResolver) *Canonicalizer {
	return &Canonicalizer{resolver: resolver}
}

// Canonicalize resolves the URL if it is shortened, then removes
// tracking parameters. Resolution is best-effort: on failure the input
// URL is carried forward unchanged.
func (c *Canonicalizer) Canonicalize(ctx context.Context, rawURL string) string {
	resolved := rawURL
	if IsShortened(rawURL) && c.resolver != nil {
		resolved = c.resolver.Resolve(ctx, rawURL)
	}
	return StripTrackingParams(resolved)
}
