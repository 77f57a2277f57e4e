package usecase

import (
	"regexp"

	"github.com/linklens/backend/internal/domain"
)

// Pin code patterns tried in order: an explicit "pin:" label, an
// explicit "pincode:" label, then any bare 6-digit run.
var pinCodePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bpin[:\s]*(\d{6})\b`),
	regexp.MustCompile(`(?i)\bpincode[:\s]*(\d{6})\b`),
	regexp.MustCompile(`\b(\d{6})\b`),
}

// ExtractPinCode finds a delivery pin code in the message text. A match
// is accepted only if its first digit is a valid Indian postal prefix
// (1-8); otherwise the default pin code is returned.
func ExtractPinCode(text string) string {
	for _, pattern := range pinCodePatterns {
		match := pattern.FindStringSubmatch(text)
		if match == nil {
			continue
		}
		pin := match[1]
		if pin[0] >= '1' && pin[0] <= '8' {
			return pin
		}
	}
	return domain.DefaultPinCode
}
