package codec

import (
	"github.com/saulfrancisco-ruizacevedo/go-neochem/graph"
)

// Decoder turns one untyped graph value into T.
type Decoder[T any] func(v graph.Value) (T, error)

// DecodeInt decodes an integer value.
func DecodeInt(v graph.Value) (int64, error) {
	switch n := v.(type) {
	case int64:
		return n, nil
	case int:
		return int64(n), nil
	default:
		return 0, mismatch("integer", v)
	}
}

// DecodeString decodes a text value.
func DecodeString(v graph.Value) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", mismatch("text", v)
	}
	return s, nil
}

// DecodeFloat decodes a double and narrows it to single precision.
func DecodeFloat(v graph.Value) (float32, error) {
	f, ok := v.(float64)
	if !ok {
		return 0, mismatch("float", v)
	}
	return float32(f), nil
}

// DecodeList decodes a list element by element. The first bad element aborts.
func DecodeList[T any](elem Decoder[T]) Decoder[[]T] {
	return func(v graph.Value) ([]T, error) {
		items, ok := v.([]any)
		if !ok {
			return nil, mismatch("list", v)
		}
		out := make([]T, 0, len(items))
		for i, item := range items {
			decoded, err := elem(item)
			if err != nil {
				return nil, withContext(err, "list element %d", i)
			}
			out = append(out, decoded)
		}
		return out, nil
	}
}

// DecodeOptional maps null to nil and decodes anything else with inner.
func DecodeOptional[T any](inner Decoder[T]) Decoder[*T] {
	return func(v graph.Value) (*T, error) {
		if v == nil {
			return nil, nil
		}
		decoded, err := inner(v)
		if err != nil {
			return nil, err
		}
		return &decoded, nil
	}
}

func mismatch(want string, v graph.Value) error {
	if v == nil {
		return parsingErrorf("expected %s, got null", want)
	}
	return parsingErrorf("expected %s, got %T", want, v)
}

// property looks up a required key and decodes it.
func property[T any](props map[string]graph.Value, key string, decode Decoder[T]) (T, error) {
	var zero T
	v, ok := props[key]
	if !ok {
		return zero, parsingErrorf("missing property %q", key)
	}
	decoded, err := decode(v)
	if err != nil {
		return zero, withContext(err, "property %q", key)
	}
	return decoded, nil
}

// optionalProperty treats an absent key like null.
func optionalProperty[T any](props map[string]graph.Value, key string, decode Decoder[T]) (*T, error) {
	decoded, err := DecodeOptional(decode)(props[key])
	if err != nil {
		return nil, withContext(err, "property %q", key)
	}
	return decoded, nil
}
