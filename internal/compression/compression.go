// Package compression implements the block compression scheme used by the
// game's MASTER.DAT payloads.
//
// The format is a byte-oriented LZ variant. A stream is a sequence of groups,
// each introduced by a control byte whose high five bits give a literal run
// length and whose low three bits give the number of back-reference commands
// that follow the literals. Both literal runs and back-reference distances
// use the same extension scheme: values up to 0x1D are stored directly, 0x1E
// adds one extension byte, and 0x1F adds two. A back-reference command packs
// a copy length into its low three bits, with zero escaping to an extension
// byte; a command of 0x00 followed by a zero extension terminates the stream.
// Copies are performed byte-by-byte against the output produced so far, so
// overlapping references (run-length encoding) are legal.
//
// The compressor emits the same grammar greedily with a hash-chain match
// finder. Its output is not byte-identical to the files the original title
// shipped with, only round-trip compatible with the game's decoder.
package compression

import (
	"errors"
	"fmt"
)

const (
	// maxRun is the longest literal run and the furthest back-reference
	// distance the extension scheme can express. A literal run of exactly
	// this size also cancels one back-reference slot in its group, which
	// is the only way to emit a group with no back-references at all.
	maxRun = 0x1011D

	// maxLength is the longest copy a single back-reference command can
	// produce: the escape byte holds up to 255, plus the implicit 7.
	maxLength = 262

	minMatch = 3
	hashBits = 15
	maxChain = 64
)

// ErrCorruptData is returned when a compressed stream is truncated,
// structurally malformed, or does not inflate to the size the directory
// declared for it.
var ErrCorruptData = errors.New("corrupt compressed data")

// Decompress inflates src and verifies the result is exactly
// decompressedSize bytes long.
func Decompress(src []byte, decompressedSize int) ([]byte, error) {
	out := make([]byte, 0, decompressedSize)
	i := 0

	next := func() (int, error) {
		if i >= len(src) {
			return 0, fmt.Errorf("%w: stream truncated at byte %d", ErrCorruptData, i)
		}
		b := int(src[i])
		i++
		return b, nil
	}

	// Reads the one- or two-byte extension for a literal run or distance
	// field whose direct value was 0x1E or 0x1F.
	extend := func(v int) (int, error) {
		if v == 0x1E {
			ext, err := next()
			if err != nil {
				return 0, err
			}
			return ext + 0x1E, nil
		}
		lo, err := next()
		if err != nil {
			return 0, err
		}
		hi, err := next()
		if err != nil {
			return 0, err
		}
		return v + lo + hi<<8 + 0xFF, nil
	}

	for {
		ctrl, err := next()
		if err != nil {
			return nil, err
		}
		backrefs := ctrl&7 + 1
		run := ctrl >> 3
		if run >= 0x1E {
			if run, err = extend(run); err != nil {
				return nil, err
			}
			if run == maxRun {
				backrefs--
			}
		}

		if run > 0 {
			if i+run > len(src) {
				return nil, fmt.Errorf("%w: literal run of %d bytes overruns input at byte %d", ErrCorruptData, run, i)
			}
			out = append(out, src[i:i+run]...)
			i += run
		}
		if len(out) > decompressedSize {
			return nil, fmt.Errorf("%w: output exceeds declared size %d", ErrCorruptData, decompressedSize)
		}

		for n := 0; n < backrefs; n++ {
			cmd, err := next()
			if err != nil {
				return nil, err
			}
			length := cmd & 7
			dist := cmd >> 3

			if length == 0 {
				ext, err := next()
				if err != nil {
					return nil, err
				}
				if ext == 0 {
					// Stream terminator.
					if len(out) != decompressedSize {
						return nil, fmt.Errorf("%w: inflated to %d bytes, directory declares %d", ErrCorruptData, len(out), decompressedSize)
					}
					return out, nil
				}
				length = ext + 7
			}
			if dist >= 0x1E {
				if dist, err = extend(dist); err != nil {
					return nil, err
				}
			}

			if dist >= len(out) {
				return nil, fmt.Errorf("%w: back reference distance %d reaches before start of output (%d bytes written)", ErrCorruptData, dist, len(out))
			}
			from := len(out) - 1 - dist
			for k := 0; k < length; k++ {
				out = append(out, out[from+k])
			}
			if len(out) > decompressedSize {
				return nil, fmt.Errorf("%w: output exceeds declared size %d", ErrCorruptData, decompressedSize)
			}
		}
	}
}

type backref struct {
	dist   int
	length int
}

// Compress deflates src into a stream the game's decoder can read back.
func Compress(src []byte) []byte {
	c := compressor{
		src:  src,
		out:  make([]byte, 0, len(src)/2+64),
		head: make([]int32, 1<<hashBits),
		prev: make([]int32, len(src)),
	}
	for i := range c.head {
		c.head[i] = -1
	}
	c.run()
	return c.out
}

type compressor struct {
	src  []byte
	out  []byte
	head []int32
	prev []int32
}

func (c *compressor) hash(p int) uint32 {
	v := uint32(c.src[p]) | uint32(c.src[p+1])<<8 | uint32(c.src[p+2])<<16
	return (v * 2654435761) >> (32 - hashBits)
}

func (c *compressor) insert(p int) {
	if p+minMatch > len(c.src) {
		return
	}
	h := c.hash(p)
	c.prev[p] = c.head[h]
	c.head[h] = int32(p)
}

// findMatch returns the longest match for the bytes at pos against earlier
// input, as a (distance, length) pair in the format's encoding, where
// distance 0 means the immediately preceding byte.
func (c *compressor) findMatch(pos int) (dist, length int) {
	if pos == 0 || pos+minMatch > len(c.src) {
		return 0, 0
	}
	limit := len(c.src) - pos
	if limit > maxLength {
		limit = maxLength
	}

	for cand, depth := c.head[c.hash(pos)], 0; cand >= 0 && depth < maxChain; cand, depth = c.prev[cand], depth+1 {
		start := int(cand)
		if pos-1-start > maxRun {
			break
		}
		n := 0
		for n < limit && c.src[start+n] == c.src[pos+n] {
			n++
		}
		if n > length {
			length = n
			dist = pos - 1 - start
			if n == limit {
				break
			}
		}
	}
	if length < minMatch {
		return 0, 0
	}
	return dist, length
}

func (c *compressor) run() {
	var refs []backref
	pos := 0
	litStart := 0
	groupLit := 0 // literal count of the open group, fixed once a backref lands

	for pos < len(c.src) {
		dist, length := c.findMatch(pos)
		if length >= minMatch {
			if len(refs) == 0 {
				groupLit = pos - litStart
			}
			refs = append(refs, backref{dist, length})
			for k := 0; k < length; k++ {
				c.insert(pos + k)
			}
			pos += length
			if len(refs) == 8 {
				c.emitGroup(c.src[litStart:litStart+groupLit], refs, false)
				litStart = pos
				refs = refs[:0]
			}
			continue
		}

		if len(refs) > 0 {
			// A literal after back-references closes the group.
			c.emitGroup(c.src[litStart:litStart+groupLit], refs, false)
			litStart = pos
			refs = refs[:0]
		}
		c.insert(pos)
		pos++
		if pos-litStart == maxRun {
			// A maximal literal run is the format's only group shape
			// with zero back-reference slots.
			c.emitGroup(c.src[litStart:pos], nil, false)
			litStart = pos
		}
	}

	if len(refs) > 0 {
		c.emitGroup(c.src[litStart:litStart+groupLit], refs, true)
	} else {
		c.emitGroup(c.src[litStart:pos], nil, true)
	}
}

// emitField appends the extension bytes for a literal run or distance value
// and returns the five field bits for the control byte.
func (c *compressor) emitField(v int, ext *[]byte) int {
	switch {
	case v < 0x1E:
		return v
	case v <= 0x11D:
		*ext = append(*ext, byte(v-0x1E))
		return 0x1E
	default:
		rem := v - 0x11E
		*ext = append(*ext, byte(rem&0xFF), byte(rem>>8))
		return 0x1F
	}
}

func (c *compressor) emitGroup(lits []byte, refs []backref, final bool) {
	slots := len(refs)
	if final {
		slots++ // the terminator command occupies a slot
	}

	if slots == 0 {
		// Only reachable for a maximal literal run, which cancels the
		// group's single implicit slot.
		c.out = append(c.out, 0xF8, 0xFF, 0xFF)
		c.out = append(c.out, lits...)
		return
	}

	var ext []byte
	field := c.emitField(len(lits), &ext)
	c.out = append(c.out, byte(field<<3|slots-1))
	c.out = append(c.out, ext...)
	c.out = append(c.out, lits...)

	for _, r := range refs {
		ext = ext[:0]
		lenBits := r.length
		if r.length > 7 {
			lenBits = 0
			ext = append(ext, byte(r.length-7))
		}
		distBits := c.emitField(r.dist, &ext)
		c.out = append(c.out, byte(distBits<<3|lenBits))
		c.out = append(c.out, ext...)
	}

	if final {
		c.out = append(c.out, 0x00, 0x00)
	}
}
