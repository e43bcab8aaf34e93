package client

import (
	"strings"
)

const upperHex = "0123456789ABCDEF"

// unsafeTargetBytes cannot appear literally in an HTTP request target. '#'
// would start a fragment and cut the query short.
const unsafeTargetBytes = "\"#<>\\^`{|}"

// escapeTarget percent-encodes the bytes of target that cannot appear in a
// request line. '%', '&' and '=' are preserved so encoding already applied by
// the caller survives untouched.
func escapeTarget(target string) string {
	if !needsEscape(target) {
		return target
	}

	var b strings.Builder

	b.Grow(len(target) + len(target)/2)

	for i := 0; i < len(target); i++ {
		c := target[i]
		if isUnsafe(c) {
			b.WriteByte('%')
			b.WriteByte(upperHex[c>>4])
			b.WriteByte(upperHex[c&0x0f])

			continue
		}

		b.WriteByte(c)
	}

	return b.String()
}

func needsEscape(target string) bool {
	for i := 0; i < len(target); i++ {
		if isUnsafe(target[i]) {
			return true
		}
	}

	return false
}

func isUnsafe(c byte) bool {
	return c <= ' ' || c >= 0x7f || strings.IndexByte(unsafeTargetBytes, c) >= 0
}
