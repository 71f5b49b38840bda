package wire

import (
	"fmt"
	"strconv"

	"github.com/ValentinKolb/respv/lib/value"
)

// crlf terminates every RESP3 frame line.
var crlf = []byte("\r\n")

// --------------------------------------------------------------------------
// Encoding
// --------------------------------------------------------------------------

// Marshal serializes a value into its RESP3 wire form. The output buffer is
// allocated up front with exactly value.EncodedLength bytes, so a successful
// Marshal never reallocates and len(result) always equals the pre-computed
// length.
func Marshal(v value.Value) ([]byte, error) {
	buf := make([]byte, 0, value.EncodedLength(v))
	return Append(buf, v)
}

// Append serializes a value and appends the wire bytes to dst, returning the
// extended buffer. Callers that encode many values into one buffer should
// pre-size dst via value.EncodedLength to avoid growth copies.
func Append(dst []byte, v value.Value) ([]byte, error) {
	switch v.Kind() {
	case value.KindBlobString:
		b := v.Bytes()
		dst = append(dst, byte(value.KindBlobString))
		dst = strconv.AppendInt(dst, int64(len(b)), 10)
		dst = append(dst, crlf...)
		dst = append(dst, b...)
		return append(dst, crlf...), nil

	case value.KindSimpleString:
		dst = append(dst, byte(value.KindSimpleString))
		dst = append(dst, v.Bytes()...)
		return append(dst, crlf...), nil

	case value.KindSimpleError:
		e := v.Err()
		dst = append(dst, byte(value.KindSimpleError))
		dst = append(dst, e.Code...)
		dst = append(dst, ' ')
		dst = append(dst, e.Message...)
		return append(dst, crlf...), nil

	case value.KindNumber:
		dst = append(dst, byte(value.KindNumber))
		dst = strconv.AppendInt(dst, v.Num(), 10)
		return append(dst, crlf...), nil

	case value.KindNull:
		dst = append(dst, byte(value.KindNull))
		return append(dst, crlf...), nil

	case value.KindBoolean:
		dst = append(dst, byte(value.KindBoolean))
		if v.Bool() {
			dst = append(dst, 't')
		} else {
			dst = append(dst, 'f')
		}
		return append(dst, crlf...), nil

	case value.KindBlobError:
		e := v.Err()
		dst = append(dst, byte(value.KindBlobError))
		dst = strconv.AppendInt(dst, int64(len(e.Code)+1+len(e.Message)), 10)
		dst = append(dst, crlf...)
		dst = append(dst, e.Code...)
		dst = append(dst, ' ')
		dst = append(dst, e.Message...)
		return append(dst, crlf...), nil

	case value.KindVerbatimString:
		vb := v.Verbatim()
		dst = append(dst, byte(value.KindVerbatimString))
		dst = strconv.AppendInt(dst, int64(len(vb.Value)+4), 10)
		dst = append(dst, crlf...)
		dst = append(dst, vb.Type.Tag()...)
		dst = append(dst, ':')
		dst = append(dst, vb.Value...)
		return append(dst, crlf...), nil

	case value.KindArray, value.KindSet:
		elems := v.Elems()
		dst = append(dst, byte(v.Kind()))
		dst = strconv.AppendInt(dst, int64(len(elems)), 10)
		dst = append(dst, crlf...)
		var err error
		for _, elem := range elems {
			if dst, err = Append(dst, elem); err != nil {
				return nil, err
			}
		}
		return dst, nil

	case value.KindMap:
		m := v.Map()
		n := 0
		if m != nil {
			n = m.Len()
		}
		dst = append(dst, byte(value.KindMap))
		dst = strconv.AppendInt(dst, int64(n), 10)
		dst = append(dst, crlf...)
		var err error
		if m != nil {
			m.Range(func(k, val value.Value) bool {
				if dst, err = Append(dst, k); err != nil {
					return false
				}
				dst, err = Append(dst, val)
				return err == nil
			})
		}
		if err != nil {
			return nil, err
		}
		return dst, nil

	default:
		return nil, fmt.Errorf("wire: cannot encode kind 0x%02x: %w", byte(v.Kind()), ErrUnsupportedType)
	}
}
