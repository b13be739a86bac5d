// Package classes describes the serialised game object types found inside
// the game's .bin payloads.
//
// The games dump objects into their .bin files more or less as they exist in
// memory: a 4-byte class tag followed by the object's fields at fixed byte
// offsets. This package represents those layouts as plain data tables rather
// than one Go type per class, so that supporting a new class means adding a
// table row, and all decode/encode logic stays in the bin package.
package classes

import (
	"errors"
	"fmt"
)

// Kind is the wire representation of one object field.
type Kind int

const (
	// Int is an unsigned integer of Width bytes in platform byte order.
	Int Kind = iota
	// Float is a 32-bit IEEE float in platform byte order.
	Float
	// Bool is a single byte, zero or non-zero.
	Bool
	// String is a fixed span of Width bytes holding a NUL-padded string
	// in the platform's text encoding.
	String
	// Pointer is a file offset, header-relative, of the platform's
	// pointer width.
	Pointer
)

// Field names one decodable field of a class layout.
type Field struct {
	Name   string
	Offset int
	Kind   Kind
	// Width is the byte width for Int and String fields. Float, Bool and
	// Pointer fields have fixed widths and leave it zero.
	Width int
}

// Class is the layout descriptor for one serialised game object type.
// Size is the number of bytes the object occupies in a .bin file. Layout
// lists the fields that have been reverse engineered; classes whose
// contents are still opaque carry an empty layout and are only scanned over.
type Class struct {
	Name   string
	Hash   uint32
	Size   int
	Layout []Field
}

// ErrUnknownClass is returned when a class tag or name has no registered
// descriptor.
var ErrUnknownClass = errors.New("unknown class")

var (
	byHash = make(map[uint32]*Class)
	byName = make(map[string]*Class)
)

func init() {
	// Class tags come from the games' binaries and are recorded verbatim
	// in the tables rather than recomputed; see names.go.
	for i := range registry {
		c := &registry[i]
		byHash[c.Hash] = c
		byName[c.Name] = c
	}
}

// ByHash returns the descriptor registered for a class tag.
func ByHash(hash uint32) (*Class, bool) {
	c, ok := byHash[hash]
	return c, ok
}

// ByName returns the descriptor registered for a class name.
func ByName(name string) (*Class, error) {
	if c, ok := byName[name]; ok {
		return c, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownClass, name)
}

// NameOf resolves a class tag to its class name, falling back to the
// name-only table for classes without layout descriptors.
func NameOf(hash uint32) (string, bool) {
	if c, ok := byHash[hash]; ok {
		return c.Name, true
	}
	n, ok := knownNames[hash]
	return n, ok
}

// All returns every registered descriptor, in registration order.
func All() []*Class {
	out := make([]*Class, len(registry))
	for i := range registry {
		out[i] = &registry[i]
	}
	return out
}
