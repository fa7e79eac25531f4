package httpcore

// Byte classification tables for the RFC 7230 header-field grammar,
// indexed by byte value.
var (
	isTchar      [256]bool
	isFieldVChar [256]bool
)

func init() {
	tchars := "!#$%&'*+-.^_`|~" +
		"0123456789" +
		"abcdefghijklmnopqrstuvwxyz" +
		"ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	for _, c := range tchars {
		isTchar[c] = true
	}
	// field-vchar: visible US-ASCII, plus SP and HT inside a value.
	for b := 0x21; b <= 0x7E; b++ {
		isFieldVChar[b] = true
	}
	isFieldVChar[' '] = true
	isFieldVChar['\t'] = true
}

// isToken reports whether s is a non-empty RFC 7230 token.
// Space, tab, control characters and the colon are not tchars, so any
// whitespace in or around a field name fails here.
func isToken(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isTchar[s[i]] {
			return false
		}
	}
	return true
}

// isFieldValue reports whether every byte of s is a valid field-value byte.
// The empty value is valid.
func isFieldValue(s string) bool {
	for i := 0; i < len(s); i++ {
		if !isFieldVChar[s[i]] {
			return false
		}
	}
	return true
}

// trimOWS strips optional whitespace (SP / HT) from both ends of s.
func trimOWS(s string) string {
	for len(s) > 0 && (s[0] == ' ' || s[0] == '\t') {
		s = s[1:]
	}
	for len(s) > 0 && (s[len(s)-1] == ' ' || s[len(s)-1] == '\t') {
		s = s[:len(s)-1]
	}
	return s
}
