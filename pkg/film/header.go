package film

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// Signature is the magic at the start of every FILM file.
const Signature = "FILM"

// HeaderMinSize is the smallest size a FILM header can declare:
// the 16-byte prefix plus the 32-byte FDSC chunk.
const HeaderMinSize = 48

const (
	fdscOffset = 16
	stabOffset = 48
)

// ErrNotFILMFile input does not start with the FILM signature.
var ErrNotFILMFile = errors.New("not a Sega FILM file")

// ErrTruncated fewer bytes were supplied than the structure requires.
var ErrTruncated = errors.New("truncated input")

// ErrInvalidHeaderLength the declared header length cannot hold the
// FDSC and STAB chunks.
var ErrInvalidHeaderLength = errors.New("invalid header length")

// Header is the parsed header of a FILM container. It provides everything
// needed to read the rest of the file: the stream formats from the FDSC
// chunk and the location of every sample from the STAB chunk.
//
// The header is variable size. Read the first 8 bytes of the file, check
// IsFILMFile, then use GuessLength to learn how many bytes to read before
// calling ParseHeader.
type Header struct {
	// Length is the total header size in bytes. Sample offsets are
	// relative to this position in the file.
	Length int

	// Version of the FILM file, 4 ASCII bytes such as "1.09".
	Version string

	reserved [4]byte

	FDSC FDSC
	STAB STAB
}

// IsFILMFile reports whether data starts with the FILM signature.
// Returns false if fewer than 4 bytes are supplied.
func IsFILMFile(data []byte) bool {
	return len(data) >= 4 && string(data[:4]) == Signature
}

// GuessLength reads the declared header length from the first 8 bytes of a
// file. It does not verify the signature; the guess is only meaningful if
// data is actually the start of a FILM file.
func GuessLength(data []byte) (int, error) {
	if len(data) < 8 {
		return 0, fmt.Errorf("%w: need 8 bytes, have %d", ErrTruncated, len(data))
	}
	return int(binary.BigEndian.Uint32(data[4:8])), nil
}

// ParseHeader parses a complete FILM header. data must contain at least the
// number of bytes the header declares at [4:8]; use GuessLength to find out
// how many that is.
func ParseHeader(data []byte) (*Header, error) {
	if len(data) < 4 {
		return nil, fmt.Errorf("%w: need 4 bytes, have %d", ErrTruncated, len(data))
	}
	if !IsFILMFile(data) {
		return nil, fmt.Errorf("%w: signature %q", ErrNotFILMFile, data[:4])
	}

	length, err := GuessLength(data)
	if err != nil {
		return nil, err
	}
	if length < HeaderMinSize {
		return nil, fmt.Errorf("%w: %d bytes, minimum is %d",
			ErrInvalidHeaderLength, length, HeaderMinSize)
	}
	if len(data) < length {
		return nil, fmt.Errorf("%w: header declares %d bytes, have %d",
			ErrTruncated, length, len(data))
	}

	h := Header{
		Length:  length,
		Version: string(data[8:12]),
	}
	copy(h.reserved[:], data[12:16])

	h.FDSC.Unmarshal(data[fdscOffset:stabOffset])

	if err := h.STAB.Unmarshal(data[stabOffset:length]); err != nil {
		return nil, fmt.Errorf("unmarshal STAB: %w", err)
	}

	return &h, nil
}

// Size marshaled size.
func (h *Header) Size() int {
	return stabOffset + h.STAB.Size()
}

// Marshal header. The declared lengths are re-derived from the sample
// table, so a marshaled header is always self-consistent.
func (h *Header) Marshal() []byte {
	out := make([]byte, h.Size())

	copy(out[0:4], Signature)
	binary.BigEndian.PutUint32(out[4:8], uint32(h.Size()))
	copy(out[8:12], version4(h.Version))
	copy(out[12:16], h.reserved[:])
	copy(out[fdscOffset:stabOffset], h.FDSC.Marshal())
	copy(out[stabOffset:], h.STAB.Marshal())

	return out
}

// version4 pads or truncates v to the 4 bytes the header stores.
func version4(v string) []byte {
	out := []byte("    ")
	copy(out, v)
	return out
}

// SampleData copies the payload of s out of file, which must hold the
// entire FILM file. Sample offsets are relative to the end of the header,
// so the header's length resolves them to absolute positions.
func (h *Header) SampleData(file []byte, s Sample) ([]byte, error) {
	start := h.Length + int(s.Offset)
	end := start + int(s.Length)
	if end > len(file) {
		return nil, fmt.Errorf("%w: sample ends at %d, file is %d bytes",
			ErrTruncated, end, len(file))
	}
	return append([]byte(nil), file[start:end]...), nil
}
