package literal

import (
	"bytes"
	"encoding/json"
	"errors"
	"regexp"
	"strconv"
	"strings"
)

// Value is the result of [Parse]. When OK is false the token could not be
// interpreted and V is nil.
//
// V holds nil, bool, float64, string, []any or [Object]. Numbers nested in
// compounds are [json.Number] so their text survives re-serialization.
type Value struct {
	V  any
	OK bool
}

var decimal = regexp.MustCompile(`^-?\d+(\.\d+)?$`)

var errUnexpectedDelim = errors.New("unexpected delimiter")

// Parse interprets raw against the declared type. Recognized forms, in
// priority order: empty (not OK), null, true, false, single-quoted string,
// decimal number, JSON array/object/string, and finally bare text when
// expectedType mentions "string".
func Parse(raw, expectedType string) Value {
	s := strings.TrimSpace(raw)

	switch {
	case s == "":
		return Value{}
	case s == "null":
		return Value{OK: true}
	case s == "true":
		return Value{V: true, OK: true}
	case s == "false":
		return Value{V: false, OK: true}
	case len(s) >= 2 && s[0] == '\'' && s[len(s)-1] == '\'':
		return Value{V: unquoteSingle(s[1 : len(s)-1]), OK: true}
	case decimal.MatchString(s):
		f, err := strconv.ParseFloat(s, 64)
		if err == nil {
			return Value{V: f, OK: true}
		}
	}

	if strings.HasPrefix(s, "[") || strings.HasPrefix(s, "{") || strings.HasPrefix(s, `"`) || strings.HasPrefix(s, "'") {
		v, err := decodeJSON(s)
		if err == nil {
			return Value{V: v, OK: true}
		}
	}

	if strings.Contains(strings.ToLower(expectedType), "string") {
		return Value{V: s, OK: true}
	}

	return Value{}
}

// IsCompound reports whether v is an array or object.
func IsCompound(v any) bool {
	switch v.(type) {
	case []any, Object, map[string]any:
		return true
	}

	return false
}

// Serialize renders v as a source literal. Strings are single-quoted, nil is
// null, numbers and booleans use their shortest literal form and compounds
// are JSON.
func Serialize(v any) string {
	switch x := v.(type) {
	case nil:
		return "null"
	case string:
		return quoteSingle(x)
	case bool:
		return strconv.FormatBool(x)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case int:
		return strconv.Itoa(x)
	case json.Number:
		return x.String()
	}

	var buf bytes.Buffer

	err := encodeJSON(&buf, v)
	if err != nil {
		return "null"
	}

	return buf.String()
}

func decodeJSON(s string) (any, error) {
	dec := json.NewDecoder(strings.NewReader(s))
	dec.UseNumber()

	v, err := decodeValue(dec)
	if err != nil {
		return nil, err
	}

	// Reject trailing data such as "[1] [2]".
	if strings.TrimSpace(s[dec.InputOffset():]) != "" {
		return nil, strconv.ErrSyntax
	}

	return v, nil
}

var singleQuoteEscapes = strings.NewReplacer(
	`\\`, `\`,
	`\'`, `'`,
	`\n`, "\n",
	`\r`, "\r",
	`\t`, "\t",
)

func unquoteSingle(s string) string {
	return singleQuoteEscapes.Replace(s)
}

func quoteSingle(s string) string {
	var b strings.Builder

	b.WriteByte('\'')

	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '\'':
			b.WriteString(`\'`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case '\u2028':
			b.WriteString(`\u2028`)
		case '\u2029':
			b.WriteString(`\u2029`)
		default:
			b.WriteRune(r)
		}
	}

	b.WriteByte('\'')

	return b.String()
}
