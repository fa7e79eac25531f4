// Package httpcore provides the validated building blocks of an HTTP/1.x
// message: a strict header-field parser and a comparable protocol version.
package httpcore

import "strings"

// Header is one validated HTTP header field. Both components are checked at
// construction; a Header that exists is well-formed. Values are immutable
// and safe for unsynchronized concurrent reads.
type Header struct {
	field string
	value string
}

// NewHeader builds a Header from separate field and value byte slices.
// The field must be an RFC 7230 token; the value may contain visible
// US-ASCII plus space and tab, and is stored with surrounding whitespace
// trimmed. On any violation the error code is ErrInvalidHeader and no
// Header is produced.
func NewHeader(field, value []byte) (Header, error) {
	f := string(field)
	if !isToken(f) {
		return Header{}, invalidHeaderf("invalid field name %q", f)
	}
	v := trimOWS(string(value))
	if !isFieldValue(v) {
		return Header{}, invalidHeaderf("invalid field value %q", v)
	}
	return Header{field: f, value: v}, nil
}

// ParseHeader parses one textual header line of the form "Name: Value".
//
// The line is split at the first colon only; any further colons are part of
// the value ("Time: 20: 34" parses with value "20: 34"). The name segment
// must be a bare token with no whitespace anywhere, including immediately
// before the colon: "Transfer-Encoding : chunked" is rejected. Permissive
// handling there is how front-end and back-end parsers end up disagreeing on
// field boundaries (request smuggling), so the rule is strict on purpose.
// The value has surrounding whitespace trimmed and interior bytes preserved.
func ParseHeader(line string) (Header, error) {
	if n := maxLineLength; n > 0 && len(line) > n {
		return Header{}, invalidHeaderf("header line exceeds %d bytes", n)
	}
	i := strings.IndexByte(line, ':')
	if i < 0 {
		return Header{}, invalidHeaderf("missing colon in %q", line)
	}
	field := line[:i]
	if !isToken(field) {
		return Header{}, invalidHeaderf("invalid field name %q", field)
	}
	value := trimOWS(line[i+1:])
	if !isFieldValue(value) {
		return Header{}, invalidHeaderf("invalid field value %q", value)
	}
	return Header{field: field, value: value}, nil
}

// Field returns the field name as it appeared in the input.
func (h Header) Field() string {
	return h.field
}

// Value returns the validated, whitespace-trimmed field value.
func (h Header) Value() string {
	return h.value
}

// Is reports whether the header's field name matches name, ignoring case.
func (h Header) Is(name string) bool {
	return strings.EqualFold(h.field, name)
}

// Equal reports structural equality: field names compared case-insensitively,
// values byte for byte.
func (h Header) Equal(o Header) bool {
	return strings.EqualFold(h.field, o.field) && h.value == o.value
}

func invalidHeaderf(format string, args ...interface{}) *CoreError {
	err := Newf(ErrInvalidHeader, format, args...)
	logger.Debug().Str("code", string(err.Code)).Msg(err.Message)
	return err
}
