// Package archive reads and rewrites the game's MASTER.DIR/MASTER.DAT pair.
//
// MASTER.DIR is the index: an offset table followed by variable-length entry
// records naming every file packed into MASTER.DAT. MASTER.DAT is a flat
// concatenation of the (usually compressed) payloads at the offsets the index
// declares. All multi-byte fields use the byte order of the console the pair
// was shipped for.
package archive

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/wgrayson/slamdb/internal/console"
)

// ErrTruncatedIndex is returned when a MASTER.DIR buffer ends before the
// data its offset table declares.
var ErrTruncatedIndex = errors.New("truncated directory index")

// ErrDuplicatePath is returned when a MASTER.DIR lists the same archive path
// twice.
var ErrDuplicatePath = errors.New("duplicate archive path")

// Entry describes one file packed into the MASTER.DAT.
type Entry struct {
	// Path is the file's backslash-separated path within the archive,
	// e.g. `data\players\shrek\player.db.bin`.
	Path string

	// Offset is the byte offset of the payload in the MASTER.DAT.
	Offset uint32

	// DecompressedSize is the size of the payload once decompressed.
	DecompressedSize uint32

	// CompressedSize is the size of the payload as stored. Entries stored
	// raw have CompressedSize == DecompressedSize.
	CompressedSize uint32
}

// Compressed reports whether the entry's payload is stored compressed.
func (e *Entry) Compressed() bool {
	return e.CompressedSize != e.DecompressedSize
}

// Dir is an ordered MASTER.DIR index. Entry order is significant: it is the
// order payloads are laid out when the archive is rewritten.
type Dir struct {
	Entries []Entry
}

// entryHeaderSize is the fixed-width prefix of each entry record: offset,
// decompressed size and compressed size, each 4 bytes.
const entryHeaderSize = 12

// ParseDir parses the raw bytes of a MASTER.DIR file.
//
// The file opens with a table of 4-byte offsets, one per entry plus a zero
// terminator. Each offset locates an entry record later in the file: the
// three size fields followed by the NUL-terminated archive path, zero-padded
// to 4-byte alignment. The first table slot doubles as the table's own
// length, since the first entry starts immediately after it.
func ParseDir(b []byte, c console.Console) (*Dir, error) {
	if len(b) < 4 {
		return nil, fmt.Errorf("%w: no offset table", ErrTruncatedIndex)
	}
	tableLen := int(c.Uint32(b))
	if tableLen%4 != 0 || tableLen > len(b) {
		return nil, fmt.Errorf("%w: offset table runs to %#x of %#x bytes", ErrTruncatedIndex, tableLen, len(b))
	}

	// Collect the entry offsets first so each entry's length can be taken
	// from the distance to its successor. The final entry runs to the end
	// of the file.
	var offsets []int
	for i := 0; i < tableLen; i += 4 {
		off := int(c.Uint32(b[i:]))
		if off == 0 {
			break
		}
		offsets = append(offsets, off)
	}

	dir := &Dir{}
	seen := make(map[string]bool, len(offsets))
	for i, off := range offsets {
		end := len(b)
		if i+1 < len(offsets) {
			end = offsets[i+1]
		}
		if off+entryHeaderSize > end || end > len(b) {
			return nil, fmt.Errorf("%w: entry %d at %#x", ErrTruncatedIndex, i, off)
		}

		rec := b[off:end]
		name := rec[entryHeaderSize:]
		if n := bytes.IndexByte(name, 0); n >= 0 {
			name = name[:n]
		}
		path := string(name)
		if seen[path] {
			return nil, fmt.Errorf("%w: %q", ErrDuplicatePath, path)
		}
		seen[path] = true

		dir.Entries = append(dir.Entries, Entry{
			Path:             path,
			Offset:           c.Uint32(rec),
			DecompressedSize: c.Uint32(rec[4:]),
			CompressedSize:   c.Uint32(rec[8:]),
		})
	}
	return dir, nil
}

// Lookup returns the entry for an archive path, or nil if the index has no
// such path.
func (d *Dir) Lookup(path string) *Entry {
	for i := range d.Entries {
		if d.Entries[i].Path == path {
			return &d.Entries[i]
		}
	}
	return nil
}

// Serialize renders the index back to MASTER.DIR bytes for the given
// console. Serialize is the inverse of ParseDir: parsing its output yields
// an equal index.
func (d *Dir) Serialize(c console.Console) []byte {
	// One table slot per entry plus the zero terminator.
	tableLen := (len(d.Entries) + 1) * 4

	var out bytes.Buffer
	var word [4]byte

	offset := tableLen
	for i := range d.Entries {
		c.PutUint32(word[:], uint32(offset))
		out.Write(word[:])
		offset += paddedEntrySize(&d.Entries[i])
	}
	out.Write([]byte{0, 0, 0, 0})

	for i := range d.Entries {
		e := &d.Entries[i]
		c.PutUint32(word[:], e.Offset)
		out.Write(word[:])
		c.PutUint32(word[:], e.DecompressedSize)
		out.Write(word[:])
		c.PutUint32(word[:], e.CompressedSize)
		out.Write(word[:])
		out.WriteString(e.Path)
		for n := len(e.Path) + 1; ; n++ {
			out.WriteByte(0)
			if n%4 == 0 {
				break
			}
		}
	}
	return out.Bytes()
}

// paddedEntrySize is the on-disk size of an entry record: the fixed header,
// the path and its NUL, rounded up to 4-byte alignment.
func paddedEntrySize(e *Entry) int {
	n := entryHeaderSize + len(e.Path) + 1
	return (n + 3) &^ 3
}
