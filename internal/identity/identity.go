// Package identity validates Turkish national identity numbers and
// normalizes IBAN strings for payout details.
package identity

import (
	"strings"
)

// ibanPayloadLen is the country code plus BBAN length of a Turkish IBAN.
const ibanPayloadLen = 26

// ValidateNationalID checks the 11-digit national identity number checksum.
// The number must be exactly 11 digits, the first digit non-zero. With d1..d11,
// d10 must equal (7*(d1+d3+d5+d7+d9) - (d2+d4+d6+d8)) mod 10 and d11 must
// equal the sum of the first ten digits mod 10. Any malformed input returns
// false.
func ValidateNationalID(value string) bool {
	if len(value) != 11 {
		return false
	}
	var digits [11]int
	for i := 0; i < 11; i++ {
		c := value[i]
		if c < '0' || c > '9' {
			return false
		}
		digits[i] = int(c - '0')
	}
	if digits[0] == 0 {
		return false
	}

	oddSum := digits[0] + digits[2] + digits[4] + digits[6] + digits[8]
	evenSum := digits[1] + digits[3] + digits[5] + digits[7]

	d10 := (oddSum*7 - evenSum) % 10
	if d10 < 0 {
		d10 += 10
	}
	if digits[9] != d10 {
		return false
	}
	return digits[10] == (oddSum+evenSum+d10)%10
}

// FormatIBAN normalizes free-form IBAN input: strips everything that is not
// a letter or digit, uppercases, guarantees a single leading "TR" and regroups
// the result into space-separated blocks of four, capped at the Turkish IBAN
// length.
func FormatIBAN(value string) string {
	var b strings.Builder
	for _, r := range value {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r >= 'a' && r <= 'z':
			b.WriteRune(r - 'a' + 'A')
		case r >= 'A' && r <= 'Z':
			b.WriteRune(r)
		}
	}
	payload := b.String()
	if !strings.HasPrefix(payload, "TR") {
		payload = "TR" + payload
	}
	if len(payload) > ibanPayloadLen {
		payload = payload[:ibanPayloadLen]
	}

	var out strings.Builder
	for i := 0; i < len(payload); i += 4 {
		if i > 0 {
			out.WriteByte(' ')
		}
		end := i + 4
		if end > len(payload) {
			end = len(payload)
		}
		out.WriteString(payload[i:end])
	}
	return out.String()
}
