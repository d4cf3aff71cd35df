package cinepak

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/icza/bitio"
)

// stripStartOffset is where the first strip begins within a frame.
// According to FFmpeg a couple of files in the wild use a different
// offset; it's detectable, so this could be improved to handle that.
const stripStartOffset = 12

// ErrTruncated fewer bytes were supplied than the frame header requires.
var ErrTruncated = errors.New("truncated input")

// MalformedStripError a strip's declared size is inconsistent with the
// bytes remaining in the frame. Observed in real files, so surfaced as a
// recoverable error with enough context to skip, truncate or abort.
type MalformedStripError struct {
	StripIndex     int
	DeclaredSize   int
	BytesRemaining int
}

func (e *MalformedStripError) Error() string {
	return fmt.Sprintf("malformed strip %d: declared size %d, %d bytes remaining",
		e.StripIndex, e.DeclaredSize, e.BytesRemaining)
}

// Frame is the parsed header of one Cinepak frame.
type Frame struct {
	// Flags from the first header byte. No flag has a known meaning in
	// FILM files.
	Flags uint8

	// DeclaredLength is the frame size the header claims, a 24-bit field.
	DeclaredLength uint32

	Width  int
	Height int

	Keyframe bool

	// Strips in on-disk order, which is also top-to-bottom order.
	Strips []Strip
}

// ParseFrame parses the Cinepak frame contained in data, which must hold
// one complete video sample.
//
// Strips are positioned by chaining: each strip's declared size locates the
// next one, and a strip's vertical placement may be relative to the strip
// before it, so they are parsed strictly in on-disk order.
func ParseFrame(data []byte) (*Frame, error) {
	if len(data) < stripStartOffset {
		return nil, fmt.Errorf("%w: need %d bytes, have %d",
			ErrTruncated, stripStartOffset, len(data))
	}

	f := Frame{
		Height: int(binary.BigEndian.Uint16(data[4:6])),
		Width:  int(binary.BigEndian.Uint16(data[6:8])),
	}

	br := bitio.NewReader(bytes.NewReader(data[:4]))
	flags, err := br.ReadBits(8)
	if err != nil {
		return nil, err
	}
	length, err := br.ReadBits(24)
	if err != nil {
		return nil, err
	}
	f.Flags = uint8(flags)
	f.DeclaredLength = uint32(length)

	stripCount := int(binary.BigEndian.Uint16(data[8:10]))

	prevY2 := 0
	offset := 0
	for i := 0; i < stripCount; i++ {
		start := stripStartOffset + offset

		if start+stripHeaderSize > len(data) {
			return nil, &MalformedStripError{
				StripIndex:     i,
				BytesRemaining: len(data) - start,
			}
		}
		size := ParseStripSize(data[start : start+4])
		if size < stripHeaderSize || start+size > len(data) {
			return nil, &MalformedStripError{
				StripIndex:     i,
				DeclaredSize:   size,
				BytesRemaining: len(data) - start,
			}
		}

		var s Strip
		s.Unmarshal(data[start:start+size], prevY2)
		f.Strips = append(f.Strips, s)

		prevY2 = s.Y2
		offset += size
	}

	// The sample table carries a keyframe flag too; it's unclear which of
	// the two is more reliable when they disagree.
	for _, s := range f.Strips {
		if s.ID == StripTypeKey {
			f.Keyframe = true
			break
		}
	}

	return &f, nil
}

// StripCount is the number of strips the frame is divided into.
func (f *Frame) StripCount() int {
	return len(f.Strips)
}

// Size marshaled size.
func (f *Frame) Size() int {
	n := stripStartOffset
	for i := range f.Strips {
		n += f.Strips[i].Size()
	}
	return n
}

// Marshal frame. The declared length is re-derived from the strips.
func (f *Frame) Marshal() []byte {
	var buf bytes.Buffer
	buf.Grow(f.Size())

	bw := bitio.NewWriter(&buf)
	bw.TryWriteBits(uint64(f.Flags), 8)
	bw.TryWriteBits(uint64(f.Size()), 24)
	if bw.TryError != nil {
		// Writing to a bytes.Buffer cannot fail.
		panic(bw.TryError)
	}
	bw.Close()

	var tail [8]byte
	binary.BigEndian.PutUint16(tail[0:2], uint16(f.Height))
	binary.BigEndian.PutUint16(tail[2:4], uint16(f.Width))
	binary.BigEndian.PutUint16(tail[4:6], uint16(len(f.Strips)))
	buf.Write(tail[:])

	for i := range f.Strips {
		buf.Write(f.Strips[i].Marshal())
	}

	return buf.Bytes()
}
