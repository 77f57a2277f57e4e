package usecase

import (
	"net/url"
	"regexp"
	"strings"
)

// Compiled URL detection patterns. Three surface forms are recognized:
// fully-qualified http(s) URLs, bare platform domains with an optional
// www. prefix and path, and shortener domains with a mandatory path.
var (
	fullURLPattern = regexp.MustCompile(`(?i)https?://[a-zA-Z0-9$\-_@.&+!*(),%/?=:#~;]+`)

	barePlatformPattern = regexp.MustCompile(`(?i)(?:www\.)?(?:amazon\.in|flipkart\.com|meesho\.com|myntra\.com|ajio\.com|snapdeal\.com|wishlink\.com)(?:/[^\s]*)?`)

	shortLinkPattern = regexp.MustCompile(`(?i)(?:amzn\.to|fkrt\.cc|cutt\.ly|bitli\.in|spoo\.me|da\.gd)/[^\s]+`)
)

// ExtractURLs scans arbitrary message text for candidate product URLs.
// Bare domain matches are coerced to https://. Candidates that do not
// parse into a URL with a scheme and host are silently dropped. The
// result is deduplicated in first-seen order.
func ExtractURLs(text string) []string {
	var out []string
	seen := make(map[string]struct{})

	for _, pattern := range []*regexp.Regexp{fullURLPattern, barePlatformPattern, shortLinkPattern} {
		for _, match := range pattern.FindAllString(text, -1) {
			candidate := match
			if !strings.HasPrefix(candidate, "http://") && !strings.HasPrefix(candidate, "https://") {
				candidate = "https://" + candidate
			}

			parsed, err := url.Parse(candidate)
			if err != nil || parsed.Scheme == "" || parsed.Host == "" {
				continue
			}

			if _, ok := seen[candidate]; ok {
				continue
			}
			seen[candidate] = struct{}{}
			out = append(out, candidate)
		}
	}

	return out
}
