package archive

import (
	"errors"
	"fmt"

	"github.com/wgrayson/slamdb/internal/compression"
	"github.com/wgrayson/slamdb/internal/console"
)

// ErrOutOfRange is returned when a directory entry points outside the
// MASTER.DAT it was opened against.
var ErrOutOfRange = errors.New("entry outside data bounds")

// ErrNotFound is returned when an archive path does not exist in the index.
var ErrNotFound = errors.New("archive path not found")

// Store binds a MASTER.DAT byte buffer to its parsed MASTER.DIR, and tracks
// decompressed payloads that have been read or replaced. All mutation goes
// through archive paths; offsets are only recomputed when the pair is
// re-emitted, so intermediate edits can never corrupt untouched entries.
//
// A Store is not safe for concurrent use. Open independent Stores over the
// same bytes for parallel work.
type Store struct {
	dat     []byte
	dir     *Dir
	console console.Console

	// overlay holds decompressed payloads keyed by archive path. dirty
	// marks the paths whose overlay bytes differ from the stored payload
	// and must be recompressed at emit time.
	overlay map[string][]byte
	dirty   map[string]bool
}

// Open binds dat to a parsed directory index. It fails if any entry's
// payload extends past the end of dat.
func Open(dat []byte, dir *Dir, c console.Console) (*Store, error) {
	for i := range dir.Entries {
		e := &dir.Entries[i]
		if int(e.Offset)+int(e.CompressedSize) > len(dat) {
			return nil, fmt.Errorf("%w: %s at %#x+%#x exceeds %#x data bytes",
				ErrOutOfRange, e.Path, e.Offset, e.CompressedSize, len(dat))
		}
	}
	return &Store{
		dat:     dat,
		dir:     dir,
		console: c,
		overlay: make(map[string][]byte),
		dirty:   make(map[string]bool),
	}, nil
}

// Console returns the console profile the store was opened with.
func (s *Store) Console() console.Console {
	return s.console
}

// Dir returns the store's directory index.
func (s *Store) Dir() *Dir {
	return s.dir
}

// Paths returns every archive path in index order.
func (s *Store) Paths() []string {
	paths := make([]string, len(s.dir.Entries))
	for i := range s.dir.Entries {
		paths[i] = s.dir.Entries[i].Path
	}
	return paths
}

// Compressed returns the stored payload bytes for an archive path, exactly
// as they sit in the MASTER.DAT. Paths updated since the store was opened
// have no stored payload until Emit, so their pending bytes are returned
// instead.
func (s *Store) Compressed(path string) ([]byte, error) {
	e := s.dir.Lookup(path)
	if e == nil {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, path)
	}
	if s.dirty[path] {
		return s.overlay[path], nil
	}
	return s.dat[e.Offset : e.Offset+e.CompressedSize], nil
}

// Decompressed returns the decompressed payload for an archive path,
// decompressing and caching it on first access. Entries stored raw are
// returned as-is.
func (s *Store) Decompressed(path string) ([]byte, error) {
	if buf, ok := s.overlay[path]; ok {
		return buf, nil
	}
	e := s.dir.Lookup(path)
	if e == nil {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, path)
	}

	stored := s.dat[e.Offset : e.Offset+e.CompressedSize]
	var buf []byte
	if e.Compressed() {
		var err error
		buf, err = compression.Decompress(stored, int(e.DecompressedSize))
		if err != nil {
			return nil, fmt.Errorf("decompressing %s: %w", path, err)
		}
	} else {
		// Clone so later edits to the overlay buffer cannot reach back
		// into the base data bytes.
		buf = append([]byte(nil), stored...)
	}
	s.overlay[path] = buf
	return buf, nil
}

// Update replaces the payload for an archive path with data. Paths not yet
// in the index gain a new entry at the end of it. Compression is deferred to
// Emit, so repeated updates to the same path are cheap.
func (s *Store) Update(path string, data []byte) {
	if s.dir.Lookup(path) == nil {
		// Sizes stay provisional until Emit. Leaving CompressedSize
		// different from DecompressedSize marks the new entry as
		// compressed.
		s.dir.Entries = append(s.dir.Entries, Entry{
			Path:             path,
			DecompressedSize: uint32(len(data)),
			CompressedSize:   uint32(len(data)) + 1,
		})
	}
	s.overlay[path] = data
	s.dirty[path] = true
}

// Emit produces the rewritten MASTER.DAT and MASTER.DIR byte pair. Dirty
// payloads are compressed (or stored raw if compression does not help),
// untouched payloads are copied verbatim, and every payload is padded to the
// 2048-byte boundary the game expects. Offsets and sizes in the returned
// index reflect the new layout; the Store itself is left unchanged.
func (s *Store) Emit() (dat []byte, dirBytes []byte, err error) {
	out := &Dir{Entries: make([]Entry, len(s.dir.Entries))}
	copy(out.Entries, s.dir.Entries)

	var buf []byte
	for i := range out.Entries {
		e := &out.Entries[i]

		var payload []byte
		if s.dirty[e.Path] {
			raw := s.overlay[e.Path]
			wasCompressed := e.Compressed()
			e.DecompressedSize = uint32(len(raw))
			if wasCompressed {
				payload = compression.Compress(raw)
				if len(payload) >= len(raw) {
					payload = raw
				}
			} else {
				payload = raw
			}
			e.CompressedSize = uint32(len(payload))
		} else {
			if int(e.Offset)+int(e.CompressedSize) > len(s.dat) {
				return nil, nil, fmt.Errorf("%w: %s", ErrOutOfRange, e.Path)
			}
			payload = s.dat[e.Offset : e.Offset+e.CompressedSize]
		}

		e.Offset = uint32(len(buf))
		buf = append(buf, payload...)
		buf = appendPadding(buf, len(payload))
	}

	return buf, out.Serialize(s.console), nil
}

// datPadding is the filler the game writes between MASTER.DAT payloads.
var datPadding = []byte("SHAB")

// appendPadding pads the last payload of n bytes out to the next 2048-byte
// boundary with the cycling filler. Payloads already on a boundary still get
// a full filler block, matching the shipped archives.
func appendPadding(buf []byte, n int) []byte {
	pad := 2048 - n%2048
	for i := 0; i < pad; i++ {
		buf = append(buf, datPadding[i%4])
	}
	return buf
}
