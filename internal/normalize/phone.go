package normalize

import (
	"regexp"
	"strings"
)

// DefaultDialCode is the canonical fallback for phone numbers without an
// international prefix. The chain's market is India, so +91.
const DefaultDialCode = "+91"

var (
	phoneJunk   = strings.NewReplacer(" ", "", "-", "", "(", "", ")", "")
	dialCodeRex = regexp.MustCompile(`^\+\d{1,3}`)
)

// ParsePhone decomposes a free-text phone string into a dial code and the
// remaining mobile number. Whitespace, hyphens and parentheses are
// stripped first; a leading + followed by 1-3 digits is the dial code,
// DefaultDialCode otherwise.
func ParsePhone(raw string) (dialCode, mobile string) {
	clean := phoneJunk.Replace(raw)

	if match := dialCodeRex.FindString(clean); match != "" {
		return match, clean[len(match):]
	}
	return DefaultDialCode, clean
}
