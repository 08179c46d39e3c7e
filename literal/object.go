package literal

import (
	"bytes"
	"encoding/json"
)

// Member is one key/value pair of an [Object].
type Member struct {
	Value any
	Key   string
}

// Object is a JSON object that keeps its members in source order. A repeated
// key keeps its first position and its last value.
type Object []Member

// Get returns the value stored under key.
func (o Object) Get(key string) (any, bool) {
	for _, m := range o {
		if m.Key == key {
			return m.Value, true
		}
	}

	return nil, false
}

func (o Object) set(key string, v any) Object {
	for i := range o {
		if o[i].Key == key {
			o[i].Value = v

			return o
		}
	}

	return append(o, Member{Key: key, Value: v})
}

// MarshalJSON writes the members in order.
func (o Object) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteByte('{')

	for i, m := range o {
		if i > 0 {
			buf.WriteByte(',')
		}

		err := encodeJSON(&buf, m.Key)
		if err != nil {
			return nil, err
		}

		buf.WriteByte(':')

		err = encodeJSON(&buf, m.Value)
		if err != nil {
			return nil, err
		}
	}

	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// encodeJSON appends v to buf without HTML escaping or a trailing newline.
func encodeJSON(buf *bytes.Buffer, v any) error {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)

	err := enc.Encode(v)
	if err != nil {
		return err //nolint:wrapcheck // Callers add context.
	}

	buf.Truncate(buf.Len() - 1)

	return nil
}

// decodeValue reads one value from dec, keeping object members in order.
func decodeValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err //nolint:wrapcheck // Callers add context.
	}

	delim, ok := tok.(json.Delim)
	if !ok {
		return tok, nil
	}

	switch delim {
	case '[':
		arr := []any{}

		for dec.More() {
			v, err := decodeValue(dec)
			if err != nil {
				return nil, err
			}

			arr = append(arr, v)
		}

		_, err = dec.Token()
		if err != nil {
			return nil, err //nolint:wrapcheck // Callers add context.
		}

		return arr, nil

	case '{':
		obj := Object{}

		for dec.More() {
			tok, err := dec.Token()
			if err != nil {
				return nil, err //nolint:wrapcheck // Callers add context.
			}

			key, _ := tok.(string)

			v, err := decodeValue(dec)
			if err != nil {
				return nil, err
			}

			obj = obj.set(key, v)
		}

		_, err = dec.Token()
		if err != nil {
			return nil, err //nolint:wrapcheck // Callers add context.
		}

		return obj, nil
	}

	return nil, errUnexpectedDelim
}
