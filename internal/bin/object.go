package bin

import (
	"errors"
	"fmt"

	"github.com/wgrayson/slamdb/internal/classes"
	"github.com/wgrayson/slamdb/internal/console"
)

// ErrFieldOutOfRange is returned when a field's byte range falls outside the
// buffer being read or written.
var ErrFieldOutOfRange = errors.New("field out of range")

// ErrEncodingOverflow is returned when a value cannot be encoded into its
// field's fixed byte width.
var ErrEncodingOverflow = errors.New("value overflows field width")

// ErrWrongClass is returned when the tag at an offset does not match the
// class being read or written there.
var ErrWrongClass = errors.New("wrong class at offset")

// Object is one decoded game object. Fields maps field names from the
// class's layout descriptor to their decoded values: uint64 for Int and
// Pointer fields, float32 for Float, bool for Bool and string for String.
type Object struct {
	Class  *classes.Class
	Offset int
	Fields map[string]any
}

// ReadObject decodes the object of the given class at offset in buf. The
// 4-byte tag at offset must match the class; every field of the class's
// layout is decoded per the console's byte order and string encoding.
func ReadObject(buf []byte, offset int, class *classes.Class, c console.Console) (*Object, error) {
	if offset < 0 || offset+class.Size > len(buf) {
		return nil, fmt.Errorf("%w: %s needs %#x bytes at %#x of %#x",
			ErrFieldOutOfRange, class.Name, class.Size, offset, len(buf))
	}
	if tag := c.Uint32(buf[offset:]); tag != class.Hash {
		return nil, fmt.Errorf("%w: tag %08X at %#x, want %s (%08X)",
			ErrWrongClass, tag, offset, class.Name, class.Hash)
	}

	obj := &Object{
		Class:  class,
		Offset: offset,
		Fields: make(map[string]any, len(class.Layout)),
	}
	for _, f := range class.Layout {
		v, err := readField(buf, offset, &f, c)
		if err != nil {
			return nil, fmt.Errorf("%s.%s: %w", class.Name, f.Name, err)
		}
		obj.Fields[f.Name] = v
	}
	return obj, nil
}

// WriteObject re-encodes an object's fields into buf at offset. Each field
// is written into exactly its declared byte span, so no other byte of the
// buffer moves or changes. Fields absent from obj.Fields are left untouched.
func WriteObject(buf []byte, offset int, obj *Object, c console.Console) error {
	class := obj.Class
	if offset < 0 || offset+class.Size > len(buf) {
		return fmt.Errorf("%w: %s needs %#x bytes at %#x of %#x",
			ErrFieldOutOfRange, class.Name, class.Size, offset, len(buf))
	}
	if tag := c.Uint32(buf[offset:]); tag != class.Hash {
		return fmt.Errorf("%w: tag %08X at %#x, want %s (%08X)",
			ErrWrongClass, tag, offset, class.Name, class.Hash)
	}

	for _, f := range class.Layout {
		v, ok := obj.Fields[f.Name]
		if !ok {
			continue
		}
		if err := writeField(buf, offset, &f, v, c); err != nil {
			return fmt.Errorf("%s.%s: %w", class.Name, f.Name, err)
		}
	}
	return nil
}

// fieldWidth is the byte width a field occupies: fixed for Float, Bool and
// Pointer fields, declared per-field otherwise.
func fieldWidth(f *classes.Field) int {
	switch f.Kind {
	case classes.Float:
		return 4
	case classes.Bool:
		return 1
	case classes.Pointer:
		// All four shipped consoles are 32-bit machines.
		return 4
	default:
		return f.Width
	}
}

func readField(buf []byte, base int, f *classes.Field, c console.Console) (any, error) {
	w := fieldWidth(f)
	at := base + f.Offset
	if at+w > len(buf) {
		return nil, fmt.Errorf("%w: %d bytes at %#x of %#x", ErrFieldOutOfRange, w, at, len(buf))
	}
	b := buf[at : at+w]

	switch f.Kind {
	case classes.Int, classes.Pointer:
		switch w {
		case 1:
			return uint64(b[0]), nil
		case 2:
			return uint64(c.Uint16(b)), nil
		case 4:
			return uint64(c.Uint32(b)), nil
		default:
			return nil, fmt.Errorf("unsupported integer width %d", w)
		}
	case classes.Float:
		return c.Float32(b), nil
	case classes.Bool:
		return b[0] != 0, nil
	case classes.String:
		return decodeString(b, c)
	default:
		return nil, fmt.Errorf("unsupported field kind %d", f.Kind)
	}
}

func writeField(buf []byte, base int, f *classes.Field, v any, c console.Console) error {
	w := fieldWidth(f)
	at := base + f.Offset
	if at+w > len(buf) {
		return fmt.Errorf("%w: %d bytes at %#x of %#x", ErrFieldOutOfRange, w, at, len(buf))
	}
	b := buf[at : at+w]

	switch f.Kind {
	case classes.Int, classes.Pointer:
		n, err := toUint64(v)
		if err != nil {
			return err
		}
		if w < 8 && n >= uint64(1)<<(8*w) {
			return fmt.Errorf("%w: %d in %d bytes", ErrEncodingOverflow, n, w)
		}
		switch w {
		case 1:
			b[0] = byte(n)
		case 2:
			c.PutUint16(b, uint16(n))
		case 4:
			c.PutUint32(b, uint32(n))
		default:
			return fmt.Errorf("unsupported integer width %d", w)
		}
	case classes.Float:
		n, err := toFloat32(v)
		if err != nil {
			return err
		}
		c.PutFloat32(b, n)
	case classes.Bool:
		flag, ok := v.(bool)
		if !ok {
			return fmt.Errorf("cannot encode %T as bool", v)
		}
		b[0] = 0
		if flag {
			b[0] = 1
		}
	case classes.String:
		s, ok := v.(string)
		if !ok {
			return fmt.Errorf("cannot encode %T as string", v)
		}
		enc, err := encodeString(s, c)
		if err != nil {
			return err
		}
		if len(enc) > w {
			return fmt.Errorf("%w: %d encoded bytes in %d", ErrEncodingOverflow, len(enc), w)
		}
		copy(b, enc)
		for i := len(enc); i < w; i++ {
			b[i] = 0
		}
	default:
		return fmt.Errorf("unsupported field kind %d", f.Kind)
	}
	return nil
}

// toUint64 accepts the integer types a caller plausibly holds, including
// float64 from JSON-decoded patches, as long as the value is a whole
// non-negative number.
func toUint64(v any) (uint64, error) {
	switch n := v.(type) {
	case uint64:
		return n, nil
	case uint32:
		return uint64(n), nil
	case int:
		if n < 0 {
			return 0, fmt.Errorf("%w: negative value %d", ErrEncodingOverflow, n)
		}
		return uint64(n), nil
	case int64:
		if n < 0 {
			return 0, fmt.Errorf("%w: negative value %d", ErrEncodingOverflow, n)
		}
		return uint64(n), nil
	case float64:
		if n < 0 || n != float64(uint64(n)) {
			return 0, fmt.Errorf("%w: %v is not an unsigned integer", ErrEncodingOverflow, n)
		}
		return uint64(n), nil
	default:
		return 0, fmt.Errorf("cannot encode %T as integer", v)
	}
}

func toFloat32(v any) (float32, error) {
	switch n := v.(type) {
	case float32:
		return n, nil
	case float64:
		return float32(n), nil
	case int:
		return float32(n), nil
	default:
		return 0, fmt.Errorf("cannot encode %T as float", v)
	}
}
