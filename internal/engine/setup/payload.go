package setup

import "strings"

const (
	// PayloadLength is the fixed length of a setup payload URI.
	PayloadLength = 20

	// PayloadPrefix is the scheme every setup payload starts with.
	PayloadPrefix = "X-HM://"

	// codeTokenLength is the number of base-36 characters carrying the
	// setup code and pairing flags, immediately after the prefix.
	codeTokenLength = 9

	// CodeMask strips the pairing-method flag bits packed above the
	// numeric setup code inside the base-36 token.
	CodeMask = 0x7ffffff

	// MaxDisplayCode is the largest code an 8-digit badge can show.
	MaxDisplayCode = 99999999
)

// ValidPayload reports whether payload has the exact shape of a setup
// payload URI: 20 characters starting with X-HM://.
func ValidPayload(payload string) bool {
	return len(payload) == PayloadLength && strings.HasPrefix(payload, PayloadPrefix)
}

// DecodeBase36 interprets token as an unsigned base-36 integer, most
// significant digit first. Digits are '0'-'9' and 'A'-'Z'; anything above
// '9' is mapped 'A'-relative. The token is not validated — callers must
// only pass characters from the base-36 alphabet.
func DecodeBase36(token string) uint64 {
	var result uint64

	place := uint64(1)
	for i := len(token) - 1; i >= 0; i-- {
		c := token[i]

		var value uint64
		if c > '9' {
			value = uint64(c-'A') + 10
		} else {
			value = uint64(c - '0')
		}

		result += value * place
		place *= 36
	}

	return result
}

// SetupCode extracts the numeric setup code from a setup payload URI.
// The 9 base-36 characters after the prefix pack the code together with
// pairing flags; the flags sit above bit 26 and are masked off. Returns 0
// for anything that is not a well-formed payload.
func SetupCode(payload string) uint64 {
	if !ValidPayload(payload) {
		return 0
	}

	token := payload[len(PayloadPrefix) : len(PayloadPrefix)+codeTokenLength]

	return DecodeBase36(token) & CodeMask
}
