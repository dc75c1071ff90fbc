// Package phone canonicalizes phone numbers so that two differently written
// numbers can be recognized as the same respondent.
package phone

import "strings"

var separators = strings.NewReplacer(" ", "", "-", "", "+", "")

// Normalizer strips formatting and dialing prefixes from raw phone input.
// The zero value is usable but strips no country/trunk prefix.
type Normalizer struct {
	countryCode string
	trunkPrefix string
}

func NewNormalizer(countryCode, trunkPrefix string) *Normalizer {
	return &Normalizer{countryCode: countryCode, trunkPrefix: trunkPrefix}
}

// Normalize removes spaces, hyphens and plus signs, then strips at most one
// leading dialing prefix: the country code, else the trunk prefix, else a
// single zero. Total over strings; empty input normalizes to "".
//
// "01712345678", "+8801712345678", "880-1712-345678" and "88 1712345678"
// all normalize to "1712345678".
func (n *Normalizer) Normalize(raw string) string {
	s := separators.Replace(raw)

	switch {
	case n.countryCode != "" && strings.HasPrefix(s, n.countryCode):
		return s[len(n.countryCode):]
	case n.trunkPrefix != "" && strings.HasPrefix(s, n.trunkPrefix):
		return s[len(n.trunkPrefix):]
	case strings.HasPrefix(s, "0"):
		return s[1:]
	}
	return s
}
