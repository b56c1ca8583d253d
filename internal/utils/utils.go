package utils

import "strings"

// IsBlank - Returns true if every byte in a is zero or a space, an empty slice is blank as well
func IsBlank(a []byte) bool {
	for _, b := range a {
		if b != 0 && b != ' ' {
			return false
		}
	}

	return true
}

// PutField - Copies s into a zeroed fixed width field, truncating it if too long.
// Trailing zeros and spaces are dropped so the field decodes back to what GetField returns.
func PutField(field []byte, s string) {
	if len(s) > len(field) {
		s = s[:len(field)]
	}
	n := copy(field, strings.TrimRight(s, " \x00"))
	for i := n; i < len(field); i++ {
		field[i] = 0
	}
}

// GetField - Returns the content of a fixed width field with trailing zeros and spaces removed
func GetField(field []byte) string {
	end := len(field)
	for end > 0 && (field[end-1] == 0 || field[end-1] == ' ') {
		end--
	}

	return string(field[:end])
}

// PadTo - Returns a copy of a extended with zero bytes to length n, ok is false if a is longer than n
func PadTo(a []byte, n int64) (b []byte, ok bool) {
	if int64(len(a)) > n {
		return
	}
	b = make([]byte, n)
	_ = copy(b, a)

	return b, true
}
