package cinepak

import "encoding/binary"

const stripHeaderSize = 12

// StripType is the id field of a strip header. Unrecognized ids are kept
// as-is; only the key strip id affects parsing (it marks the frame as a
// keyframe).
type StripType uint16

// Known strip ids.
const (
	StripTypeKey   StripType = 0x10
	StripTypeInter StripType = 0x11
)

// Strip is one horizontal tile of a Cinepak frame.
type Strip struct {
	ID StripType

	// Bounding box in frame coordinates. Resolved during parsing: the
	// header may encode the vertical extent relative to the previous
	// strip, but X1 and X2 are always absolute.
	X1 int
	Y1 int
	X2 int
	Y2 int

	// Header is a copy of the strip's 12 header bytes.
	Header []byte

	// Payload is a copy of the strip's codebook and vector data. This
	// package does not decode it.
	Payload []byte
}

// placement is the vertical extent of a strip as encoded in its header,
// before resolution against the previous strip.
type placement struct {
	// relative strips sit directly below the previous strip and encode
	// their height; absolute strips encode y1 and y2 directly.
	relative bool

	y1     int // Absolute only.
	y2     int // Absolute only.
	height int // Relative only.
}

func parsePlacement(buf []byte) placement {
	y1 := int(binary.BigEndian.Uint16(buf[4:6]))
	if y1 == 0 {
		return placement{
			relative: true,
			height:   int(binary.BigEndian.Uint16(buf[8:10])),
		}
	}
	return placement{
		y1: y1,
		y2: int(binary.BigEndian.Uint16(buf[8:10])),
	}
}

func (p placement) resolve(prevY2 int) (y1, y2 int) {
	if p.relative {
		return prevY2, prevY2 + p.height
	}
	return p.y1, p.y2
}

// Unmarshal strip from buf, which must hold the full strip as located by
// the declared size field: the 12-byte header plus the payload. prevY2 is
// the resolved Y2 of the previous strip in the frame, or 0 for the first
// strip; it anchors relatively placed strips.
func (s *Strip) Unmarshal(buf []byte, prevY2 int) {
	s.ID = StripType(binary.BigEndian.Uint16(buf[0:2]))
	s.X1 = int(binary.BigEndian.Uint16(buf[6:8]))
	s.X2 = int(binary.BigEndian.Uint16(buf[10:12]))
	s.Y1, s.Y2 = parsePlacement(buf).resolve(prevY2)

	s.Header = append([]byte(nil), buf[:stripHeaderSize]...)
	s.Payload = append([]byte(nil), buf[stripHeaderSize:]...)
}

// Size marshaled size.
func (s *Strip) Size() int {
	return stripHeaderSize + len(s.Payload)
}

// Marshal strip. The retained header bytes are written back verbatim, so
// relatively placed strips keep their relative encoding.
func (s *Strip) Marshal() []byte {
	out := make([]byte, 0, s.Size())
	out = append(out, s.Header...)
	out = append(out, s.Payload...)
	return out
}

// ParseStripSize reads the declared total size of a strip from the first
// 4 bytes of its header, locating the strip's end before it is parsed.
func ParseStripSize(buf []byte) int {
	return int(binary.BigEndian.Uint16(buf[2:4]))
}
