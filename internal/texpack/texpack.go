// Package texpack reads and writes .texpack texture containers. A texpack
// bundles the textures belonging to one spawnable object: DDS files on PC
// and Xbox, GCT on Gamecube, TM2 on PS2, plus plain-text .tga lists that
// describe looping animations.
//
// On disk a texpack is a 0x10-byte header ("KPXT" magic, byte-reversed on
// Gamecube), a table of 0x30-byte entries (name hash, 28-byte name, payload
// offset, size, type), a 0x20-byte filler block, then the payloads, each
// padded to a 2048-byte boundary with 0xEE.
package texpack

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/wgrayson/slamdb/internal/classes"
	"github.com/wgrayson/slamdb/internal/console"
)

const (
	headerSize   = 0x10
	entrySize    = 0x30
	nameLen      = 0x1C
	tablePadding = 0x20
	blockSize    = 2048

	filler = 0xEE
)

// ErrMalformedPack is returned when a texpack's header, entry table, or
// payload extents do not describe a readable container.
var ErrMalformedPack = errors.New("malformed texpack")

// EntryType distinguishes the kinds of file a texpack can hold.
type EntryType uint32

const (
	// Texture is an actual texture payload, in the console's own format.
	Texture EntryType = 0x00

	// Tga is a plain-text list of texture filenames describing a looping
	// animation.
	Tga EntryType = 0x02
)

// File is one payload inside a texpack. Name carries no extension; the
// extension depends on the console's texture format.
type File struct {
	Name string
	Type EntryType
	Data []byte
}

// Filename returns the file's on-disk name, including the extension used by
// the given console.
func (f *File) Filename(c console.Console) string {
	if f.Type == Tga {
		return f.Name + ".tga"
	}
	switch c {
	case console.Gamecube:
		return f.Name + ".gct"
	case console.PS2:
		return f.Name + ".tm2"
	default:
		return f.Name + ".dds"
	}
}

// Pack is a parsed texpack container.
type Pack struct {
	Console console.Console
	Files   []File
}

// Parse reads a texpack from its raw bytes.
func Parse(raw []byte, c console.Console) (*Pack, error) {
	if len(raw) < headerSize {
		return nil, fmt.Errorf("%w: %d bytes is shorter than the header", ErrMalformedPack, len(raw))
	}
	magic := string(raw[:4])
	if magic != "KPXT" && magic != "TXPK" {
		return nil, fmt.Errorf("%w: bad magic %q", ErrMalformedPack, magic)
	}
	count := int(c.Uint32(raw[0x08:]))
	if headerSize+count*entrySize > len(raw) {
		return nil, fmt.Errorf("%w: entry table for %d files exceeds %d bytes", ErrMalformedPack, count, len(raw))
	}

	p := &Pack{Console: c, Files: make([]File, 0, count)}
	for i := 0; i < count; i++ {
		e := raw[headerSize+i*entrySize:]
		name := string(bytes.TrimRight(e[0x04:0x04+nameLen], "\x00"))
		offset := int(c.Uint32(e[0x20:]))
		size := int(c.Uint32(e[0x24:]))
		kind := EntryType(c.Uint32(e[0x28:]))
		if kind != Texture && kind != Tga {
			return nil, fmt.Errorf("%w: entry %q has unknown type %#x", ErrMalformedPack, name, uint32(kind))
		}
		if offset+size > len(raw) {
			return nil, fmt.Errorf("%w: entry %q at %#x+%#x exceeds %d bytes", ErrMalformedPack, name, offset, size, len(raw))
		}
		p.Files = append(p.Files, File{
			Name: name,
			Type: kind,
			Data: append([]byte(nil), raw[offset:offset+size]...),
		})
	}
	return p, nil
}

// Add appends a file to the pack.
func (p *Pack) Add(name string, kind EntryType, data []byte) {
	p.Files = append(p.Files, File{Name: name, Type: kind, Data: data})
}

// Serialize produces the pack's on-disk byte form. Entry name hashes are
// recomputed from the filenames, names longer than 28 bytes are truncated,
// and each payload is padded out to the next 2048-byte boundary.
func (p *Pack) Serialize() []byte {
	c := p.Console

	var buf []byte
	// The magic is byte-reversed on Gamecube.
	if c == console.Gamecube {
		buf = append(buf, "TXPK"...)
	} else {
		buf = append(buf, "KPXT"...)
	}
	buf = appendUint32(buf, c, 1)
	buf = appendUint32(buf, c, uint32(len(p.Files)))
	buf = appendUint32(buf, c, 0)

	offset := headerSize + len(p.Files)*entrySize + tablePadding
	for i := range p.Files {
		f := &p.Files[i]
		buf = appendUint32(buf, c, classes.Hash(f.Name))
		name := make([]byte, nameLen)
		copy(name, f.Name)
		buf = append(buf, name...)
		buf = appendUint32(buf, c, uint32(offset))
		buf = appendUint32(buf, c, uint32(len(f.Data)))
		buf = appendUint32(buf, c, uint32(f.Type))
		buf = appendUint32(buf, c, 0)
		offset += paddedSize(len(f.Data))
	}

	buf = appendFiller(buf, tablePadding)
	for i := range p.Files {
		f := &p.Files[i]
		buf = append(buf, f.Data...)
		buf = appendFiller(buf, paddedSize(len(f.Data))-len(f.Data))
	}
	return buf
}

// paddedSize rounds up to the next block boundary; payloads already on a
// boundary still get a full filler block, matching the shipped packs.
func paddedSize(n int) int {
	return n + (blockSize - n%blockSize)
}

func appendUint32(buf []byte, c console.Console, v uint32) []byte {
	var b [4]byte
	c.PutUint32(b[:], v)
	return append(buf, b[:]...)
}

func appendFiller(buf []byte, n int) []byte {
	for i := 0; i < n; i++ {
		buf = append(buf, filler)
	}
	return buf
}
