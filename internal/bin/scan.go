// Package bin reads and writes the game's serialised object buffers.
//
// A .bin payload is a flat byte buffer of fixed-size game objects, each
// opening with a 4-byte class tag, interleaved with string data, pointer
// tables and padding. Objects can be located two ways: structurally, through
// the .db.bin container's object table (see File), or by scanning the raw
// buffer for recognised tags (see Scan). Decoding and encoding of individual
// objects is driven entirely by the layout tables in the classes package.
package bin

import (
	"iter"

	"github.com/wgrayson/slamdb/internal/classes"
	"github.com/wgrayson/slamdb/internal/console"
)

// Record names one recognised object occurrence in a buffer. It only
// references a range of the scanned buffer, it holds no bytes itself.
type Record struct {
	// Offset of the class tag within the scanned buffer.
	Offset int

	// Hash is the class tag.
	Hash uint32

	// Class is the registered descriptor for the tag.
	Class *classes.Class
}

// Scan walks buf for recognised class tags and yields a Record for each.
//
// The walk is permissive: at each 4-byte-aligned position the tag is read in
// the console's byte order; a recognised tag advances the scan past the
// whole object, and anything else advances by one alignment unit. Buffers routinely mix objects with string pools and filler, so
// unrecognised positions are expected and skipped silently.
//
// The returned sequence is lazy and restartable: it depends only on the
// buffer contents at the time of iteration.
func Scan(buf []byte, c console.Console) iter.Seq[Record] {
	return func(yield func(Record) bool) {
		for off := 0; off+4 <= len(buf); {
			tag := c.Uint32(buf[off:])
			class, ok := classes.ByHash(tag)
			if !ok || off+class.Size > len(buf) {
				off += 4
				continue
			}
			if !yield(Record{Offset: off, Hash: tag, Class: class}) {
				return
			}
			// Object sizes are 4-byte multiples in practice; round
			// up so the scan stays aligned regardless.
			off += (class.Size + 3) &^ 3
		}
	}
}
