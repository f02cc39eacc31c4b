// Package validate provides the recipient and attachment validators used by
// the Kuverta content model.
//
// The platform addresses persons by Swedish national identity number
// (personnummer) and companies by VAT number. Both carry a Luhn check digit,
// so malformed identifiers can be rejected before any request is dispatched.
package validate

import (
	"bytes"
	"image"
	"regexp"
	"strings"

	// Registered so ImageAtLeast can size the formats the platform accepts.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
)

var (
	nationalIDPattern = regexp.MustCompile(`^(19|20)?[0-9]{10}$`)
	orgNumberPattern  = regexp.MustCompile(`^SE[0-9]{10}01$`)
	base64Pattern     = regexp.MustCompile(`^([A-Za-z0-9+/]{4})*([A-Za-z0-9+/]{3}=|[A-Za-z0-9+/]{2}==)?$`)
)

// NationalID reports whether id is a structurally valid Swedish national
// identity number with a correct check digit.
//
// Separators and other non-digit characters are ignored, so both
// "19121212-1212" and "191212121212" are accepted. The century prefix
// (19/20) is optional.
func NationalID(id string) bool {
	digits := stripNonDigits(id)
	if !nationalIDPattern.MatchString(digits) {
		return false
	}
	if len(digits) == 12 {
		digits = digits[2:] // drop the century before the checksum
	}
	return checkDigit(digits[:9]) == int(digits[9]-'0')
}

// OrgNumber reports whether vat is a valid company VAT number of the form
// SE<orgnr>01, where the embedded 10-digit organisation number carries a
// correct check digit.
func OrgNumber(vat string) bool {
	if !orgNumberPattern.MatchString(vat) {
		return false
	}
	org := vat[2:12]
	return checkDigit(org[:9]) == int(org[9]-'0')
}

// Base64 reports whether s is strict RFC 4648 base64: the standard alphabet,
// correct padding, and a length that is a multiple of four. The empty string
// is valid.
func Base64(s string) bool {
	return base64Pattern.MatchString(s)
}

// ImageAtLeast reports whether data decodes as an image of at least
// minW x minH pixels. Only the header is decoded. Undecodable data is
// reported as false, never as an error.
func ImageAtLeast(data []byte, minW, minH int) bool {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return false
	}
	return cfg.Width >= minW && cfg.Height >= minH
}

// checkDigit computes the Luhn check digit for a run of decimal digits.
// Weights alternate 2, 1, 2, ... from the first digit; products above nine
// are reduced by nine before summing.
func checkDigit(digits string) int {
	sum := 0
	for i := 0; i < len(digits); i++ {
		p := int(digits[i] - '0')
		if i%2 == 0 {
			p *= 2
		}
		if p > 9 {
			p -= 9
		}
		sum += p
	}
	return (10 - sum%10) % 10
}

func stripNonDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
