package httpcore

import "time"

// IMF-fixdate, the only format an HTTP/1.1 sender may generate.
const httpTimeFormat = "Mon, 02 Jan 2006 15:04:05 GMT"

// Accepted on input, in order of preference (RFC 7231 Section 7.1.1.1):
// IMF-fixdate, then the obsolete RFC 850 and ANSI C asctime forms.
var httpTimeLayouts = []string{
	httpTimeFormat,
	"Monday, 02-Jan-06 15:04:05 GMT",
	time.ANSIC,
}

// FormatHTTPDate renders t as an IMF-fixdate, e.g.
// "Wed, 04 May 1983 11:17:00 GMT".
func FormatHTTPDate(t time.Time) string {
	return t.UTC().Format(httpTimeFormat)
}

// ParseHTTPDate parses an HTTP-date in any of the three RFC 7231 forms.
// Failure carries the ErrInvalidDate code.
func ParseHTTPDate(s string) (time.Time, error) {
	for _, layout := range httpTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, Newf(ErrInvalidDate, "invalid HTTP date %q", s)
}
