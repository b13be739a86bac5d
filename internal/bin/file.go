package bin

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/wgrayson/slamdb/internal/classes"
	"github.com/wgrayson/slamdb/internal/console"
)

// HeaderSize is the length of the .bin file header. Every offset stored
// inside a .bin file is relative to the end of the header.
const HeaderSize = 0x40

// ErrMalformedFile is returned when a .bin buffer's header or section
// structure cannot be parsed.
var ErrMalformedFile = errors.New("malformed bin file")

// sectionSize is the length of one section descriptor in the section table.
const sectionSize = 0x10

// dbEntrySize is the length of one gf::DB table entry: a name pointer, an
// object pointer and two unused words.
const dbEntrySize = 0x10

// File is a parsed .bin object file: the raw decompressed buffer plus the
// object table recovered from its header. The buffer is shared, not copied;
// in-place field writes through WriteObject are visible to every holder.
type File struct {
	Raw     []byte
	Console console.Console

	// Objects lists every object the file's own pointer table declares,
	// in table order. Offsets are absolute within Raw.
	Objects []Record
}

// ParseFile reads a .bin buffer's header and object pointer table.
//
// The header names a table of 16-byte section descriptors; the descriptor
// with type number 1 covers the file's object pointer table, each entry of
// which is the header-relative offset of one serialised object. Objects
// whose tags have no registered class fail with ErrUnknownClass.
func ParseFile(raw []byte, c console.Console) (*File, error) {
	if len(raw) < HeaderSize {
		return nil, fmt.Errorf("%w: %d bytes is shorter than the header", ErrMalformedFile, len(raw))
	}

	sectionsOffset := c.Uint32(raw[0x10:])
	sectionCount := c.Uint32(raw[0x18:])
	dependencyCount := c.Uint32(raw[0x24:])
	trailerCount := c.Uint32(raw[0x2C:])

	// The section table sits after the header; the regions the sections
	// describe follow the dependency and trailer blocks.
	tableStart := int(HeaderSize + sectionsOffset)
	if tableStart+int(sectionCount)*sectionSize > len(raw) {
		return nil, fmt.Errorf("%w: section table at %#x exceeds %#x bytes", ErrMalformedFile, tableStart, len(raw))
	}
	regionStart := tableStart + int(sectionCount)*sectionSize +
		int(dependencyCount)*0x80 + int(trailerCount)*HeaderSize

	f := &File{Raw: raw, Console: c}
	for i := 0; i < int(sectionCount); i++ {
		desc := raw[tableStart+i*sectionSize:]
		number := c.Uint32(desc)
		count := c.Uint32(desc[4:])

		if number == 1 {
			if err := f.readObjectTable(regionStart, int(count)); err != nil {
				return nil, err
			}
		}
		regionStart += int(count) * 4
	}
	return f, nil
}

// readObjectTable resolves each pointer in the object table at start to a
// Record.
func (f *File) readObjectTable(start, count int) error {
	if start+count*4 > len(f.Raw) {
		return fmt.Errorf("%w: object table at %#x exceeds %#x bytes", ErrMalformedFile, start, len(f.Raw))
	}
	for i := 0; i < count; i++ {
		offset := HeaderSize + int(f.Console.Uint32(f.Raw[start+i*4:]))
		if offset+4 > len(f.Raw) {
			return fmt.Errorf("%w: object %d at %#x exceeds %#x bytes", ErrMalformedFile, i, offset, len(f.Raw))
		}
		tag := f.Console.Uint32(f.Raw[offset:])
		class, ok := classes.ByHash(tag)
		if !ok {
			name, known := classes.NameOf(tag)
			if known {
				return fmt.Errorf("%w: %s (%08X) at %#x has no layout", classes.ErrUnknownClass, name, tag, offset)
			}
			return fmt.Errorf("%w: tag %08X at %#x", classes.ErrUnknownClass, tag, offset)
		}
		f.Objects = append(f.Objects, Record{Offset: offset, Hash: tag, Class: class})
	}
	return nil
}

// Object decodes the object at an absolute offset, verifying its class.
func (f *File) Object(offset int, class *classes.Class) (*Object, error) {
	return ReadObject(f.Raw, offset, class, f.Console)
}

// StringAt reads the NUL-terminated string at a header-relative offset, as
// stored in pointer fields, decoding it from the console's text encoding.
func (f *File) StringAt(ptr uint32) (string, error) {
	at := HeaderSize + int(ptr)
	if at >= len(f.Raw) {
		return "", fmt.Errorf("%w: string at %#x of %#x bytes", ErrFieldOutOfRange, at, len(f.Raw))
	}
	return decodeString(f.Raw[at:], f.Console)
}

// DBEntry is one named object reference in a .db.bin's gf::DB table.
type DBEntry struct {
	// Name the database gives the object, e.g. "Fast1Atk".
	Name string

	// Offset is the absolute offset of the referenced object in Raw.
	Offset int

	// Hash is the referenced object's class tag.
	Hash uint32
}

// DB parses the gf::DB object that opens every .db.bin file and returns its
// named entries in table order. This is how the game itself finds objects:
// by name through the database table rather than by scanning.
func (f *File) DB() ([]DBEntry, error) {
	class, err := classes.ByName("gf::DB")
	if err != nil {
		return nil, err
	}
	db, err := f.Object(HeaderSize, class)
	if err != nil {
		return nil, fmt.Errorf("reading gf::DB: %w", err)
	}

	entriesPtr := db.Fields["entries"].(uint64)
	count := int(db.Fields["entry_count"].(uint64))

	start := HeaderSize + int(entriesPtr)
	if start+count*dbEntrySize > len(f.Raw) {
		return nil, fmt.Errorf("%w: gf::DB table at %#x exceeds %#x bytes", ErrMalformedFile, start, len(f.Raw))
	}

	entries := make([]DBEntry, 0, count)
	for i := 0; i < count; i++ {
		rec := f.Raw[start+i*dbEntrySize:]
		namePtr := f.Console.Uint32(rec)
		objPtr := f.Console.Uint32(rec[4:])

		name, err := f.StringAt(namePtr)
		if err != nil {
			return nil, fmt.Errorf("gf::DB entry %d name: %w", i, err)
		}
		at := HeaderSize + int(objPtr)
		if at+4 > len(f.Raw) {
			return nil, fmt.Errorf("%w: gf::DB entry %q at %#x exceeds %#x bytes", ErrMalformedFile, name, at, len(f.Raw))
		}
		entries = append(entries, DBEntry{
			Name:   name,
			Offset: at,
			Hash:   f.Console.Uint32(f.Raw[at:]),
		})
	}
	return entries, nil
}

// decodeString decodes bytes up to the first NUL from the console's text
// encoding.
func decodeString(b []byte, c console.Console) (string, error) {
	if n := bytes.IndexByte(b, 0); n >= 0 {
		b = b[:n]
	}
	out, err := c.StringEncoding().NewDecoder().Bytes(b)
	if err != nil {
		return "", fmt.Errorf("decoding string: %w", err)
	}
	return string(out), nil
}

// encodeString encodes a string into the console's text encoding, without a
// terminator.
func encodeString(s string, c console.Console) ([]byte, error) {
	out, err := c.StringEncoding().NewEncoder().Bytes([]byte(s))
	if err != nil {
		return nil, fmt.Errorf("encoding string: %w", err)
	}
	return out, nil
}
