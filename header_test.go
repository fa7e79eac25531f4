package httpcore

import (
	"strings"
	"testing"
)

func TestParseHeader(t *testing.T) {
	tests := []struct {
		line  string
		field string
		value string
	}{
		{"Content-Type: text/html", "Content-Type", "text/html"},
		{"Transfer-Encoding: chunked", "Transfer-Encoding", "chunked"},
		{"Transfer-Encoding: chunked ", "Transfer-Encoding", "chunked"},
		{"Transfer-Encoding:   chunked ", "Transfer-Encoding", "chunked"},
		{"Host:example.com", "Host", "example.com"},
		{"Accept:\t*/*\t", "Accept", "*/*"},
		{"X-Empty:", "X-Empty", ""},
		{"X-Empty:   ", "X-Empty", ""},
		{"ETag: \"deadbeef\"", "ETag", "\"deadbeef\""},
	}
	for _, tt := range tests {
		h, err := ParseHeader(tt.line)
		if err != nil {
			t.Errorf("ParseHeader(%q) failed: %v", tt.line, err)
			continue
		}
		if h.Field() != tt.field {
			t.Errorf("ParseHeader(%q) field = %q, want %q", tt.line, h.Field(), tt.field)
		}
		if h.Value() != tt.value {
			t.Errorf("ParseHeader(%q) value = %q, want %q", tt.line, h.Value(), tt.value)
		}
	}
}

func TestParseHeaderFirstColonOnly(t *testing.T) {
	h, err := ParseHeader("Time: 20: 34")
	if err != nil {
		t.Fatalf("ParseHeader failed: %v", err)
	}
	if !h.Is("time") {
		t.Errorf("field = %q, want Time", h.Field())
	}
	if h.Value() != "20: 34" {
		t.Errorf("value = %q, want %q", h.Value(), "20: 34")
	}
}

func TestParseHeaderInvalid(t *testing.T) {
	lines := []string{
		"hello world",               // no colon
		"",                          // empty line
		":",                         // empty field
		": value",                   // empty field
		"Na me: value",              // space inside field
		"Name : value",              // space before colon
		" Name: value",              // space before field
		"\tName: value",             // tab before field
		" Name\tmore: value",        // whitespace everywhere
		"Name\t: value",             // tab before colon
		"Bad\x00Name: value",        // control byte in field
		"Name: bad\x00value",        // control byte in value
		"Name: bad\x1fvalue",        // control byte in value
		"Name: caf\xe9",             // non-ASCII byte in value
		"S\xc3\xa9ance: value",      // non-ASCII bytes in field
	}
	for _, line := range lines {
		if _, err := ParseHeader(line); err == nil {
			t.Errorf("ParseHeader(%q) should have failed", line)
		} else if !Is(err, ErrInvalidHeader) {
			t.Errorf("ParseHeader(%q) error code = %v, want ErrInvalidHeader", line, err)
		}
	}
}

// Regression cases for request smuggling through malformed Transfer-Encoding
// headers (RUSTSEC-2020-0031 in the ancestry of this parser): any whitespace
// touching the field name must be fatal, never repaired.
func TestParseHeaderStrictWhitespace(t *testing.T) {
	bad := []string{
		"Transfer-Encoding : chunked",
		" Transfer-Encoding: chunked",
		"Transfer Encoding: chunked",
		" Transfer\tEncoding : chunked",
	}
	for _, line := range bad {
		if _, err := ParseHeader(line); err == nil {
			t.Errorf("ParseHeader(%q) should have failed", line)
		}
	}
	good := []string{
		"Transfer-Encoding: chunked",
		"Transfer-Encoding: chunked ",
		"Transfer-Encoding:   chunked ",
	}
	for _, line := range good {
		h, err := ParseHeader(line)
		if err != nil {
			t.Errorf("ParseHeader(%q) failed: %v", line, err)
			continue
		}
		if !h.Is(HeaderTransferEncoding) || h.Value() != "chunked" {
			t.Errorf("ParseHeader(%q) = (%q, %q)", line, h.Field(), h.Value())
		}
	}
}

func TestNewHeader(t *testing.T) {
	h, err := NewHeader([]byte("Content-Type"), []byte("text/plain"))
	if err != nil {
		t.Fatalf("NewHeader failed: %v", err)
	}
	if h.Field() != "Content-Type" || h.Value() != "text/plain" {
		t.Errorf("NewHeader = (%q, %q)", h.Field(), h.Value())
	}

	// Value whitespace is trimmed before storage.
	h, err = NewHeader([]byte("Server"), []byte("  octo/1.0\t"))
	if err != nil {
		t.Fatalf("NewHeader failed: %v", err)
	}
	if h.Value() != "octo/1.0" {
		t.Errorf("value = %q, want %q", h.Value(), "octo/1.0")
	}

	bad := []struct {
		field string
		value string
	}{
		{"", "value"},
		{"Bad Name", "value"},
		{"Bad:Name", "value"},
		{"Name\r\n", "value"},
		{"Name", "bad\x7fvalue"},
		{"Name", "bad\nvalue"},
	}
	for _, tt := range bad {
		if _, err := NewHeader([]byte(tt.field), []byte(tt.value)); !Is(err, ErrInvalidHeader) {
			t.Errorf("NewHeader(%q, %q) error = %v, want ErrInvalidHeader", tt.field, tt.value, err)
		}
	}
}

func TestNewHeaderTokenCharset(t *testing.T) {
	// Every tchar is legal in a field name, alone or combined.
	tchars := "!#$%&'*+-.^_`|~0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	if _, err := NewHeader([]byte(tchars), []byte("v")); err != nil {
		t.Errorf("NewHeader(all tchars) failed: %v", err)
	}
	// Everything else is not.
	for b := 0; b < 256; b++ {
		c := byte(b)
		if strings.IndexByte(tchars, c) >= 0 {
			continue
		}
		if _, err := NewHeader([]byte{'X', c}, []byte("v")); err == nil {
			t.Errorf("NewHeader with field byte 0x%02x should have failed", c)
		}
	}
}

func TestHeaderEqual(t *testing.T) {
	a, _ := ParseHeader("Content-Type: text/html")
	b, _ := ParseHeader("content-type: text/html")
	c, _ := ParseHeader("Content-Type: text/plain")

	if !a.Equal(b) {
		t.Error("field comparison should ignore case")
	}
	if a.Equal(c) {
		t.Error("value comparison should be exact")
	}
	if !a.Is("CONTENT-TYPE") || !a.Is(HeaderContentType) {
		t.Error("Is should ignore case")
	}
	if a.Is(HeaderContentLength) {
		t.Error("Is matched the wrong field")
	}
}

func TestParseHeaderMaxLineLength(t *testing.T) {
	defer ChangeMaxLineLength(GetMaxLineLength())

	ChangeMaxLineLength(32)
	long := "X-Long: " + strings.Repeat("a", 64)
	if _, err := ParseHeader(long); !Is(err, ErrInvalidHeader) {
		t.Errorf("oversize line error = %v, want ErrInvalidHeader", err)
	}
	if _, err := ParseHeader("X-Short: ok"); err != nil {
		t.Errorf("short line failed: %v", err)
	}

	// Zero disables the cap.
	ChangeMaxLineLength(0)
	if _, err := ParseHeader(long); err != nil {
		t.Errorf("uncapped parse failed: %v", err)
	}
}
