package transform

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// unknownCarrier is the canonical name for a missing or empty carrier.
const unknownCarrier = "Unknown"

var carrierCaser = cases.Title(language.English)

// normalizeCarrier canonicalizes a raw carrier name: trimmed, title-cased,
// with empty values mapped to "Unknown". Lowering before title-casing makes
// the result case-insensitive, so "SPEEDYSHIP" and "speedyship" collapse to
// the same canonical string. Normalization is idempotent.
func normalizeCarrier(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return unknownCarrier
	}
	return carrierCaser.String(strings.ToLower(name))
}
