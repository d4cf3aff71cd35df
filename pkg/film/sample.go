package film

import "encoding/binary"

const sampleSize = 16

// audioTag is the Info1 value that marks a sample as audio.
var audioTag = [4]byte{0xff, 0xff, 0xff, 0xff}

// Sample references one demuxed chunk of audio or video data.
//
// The offset is relative to the end of the FILM header; use
// Header.SampleData to extract the payload from the file. For audio, the
// payload together with the FDSC is enough to interpret the data. Video
// samples carry their own Cinepak frame header, parsed by pkg/cinepak.
type Sample struct {
	// Offset to the beginning of the sample's data, relative to the
	// first byte after the FILM header.
	Offset uint32

	// Length of the sample's data in bytes.
	Length uint32

	// Info1 classifies the sample. All 0xFF means audio; any other value
	// means video, with bit 31 set marking a non-keyframe.
	Info1 [4]byte

	// Info2 is stored but has no known meaning.
	Info2 [4]byte
}

// Unmarshal sample from a 16-byte record.
func (s *Sample) Unmarshal(buf []byte) {
	s.Offset = binary.BigEndian.Uint32(buf[0:4])
	s.Length = binary.BigEndian.Uint32(buf[4:8])
	copy(s.Info1[:], buf[8:12])
	copy(s.Info2[:], buf[12:16])
}

// Marshal sample.
func (s Sample) Marshal() []byte {
	out := make([]byte, sampleSize)
	binary.BigEndian.PutUint32(out[0:4], s.Offset)
	binary.BigEndian.PutUint32(out[4:8], s.Length)
	copy(out[8:12], s.Info1[:])
	copy(out[12:16], s.Info2[:])
	return out
}

// IsAudio reports whether this sample contains audio.
func (s Sample) IsAudio() bool {
	return s.Info1 == audioTag
}

// IsVideo reports whether this sample contains video.
func (s Sample) IsVideo() bool {
	return !s.IsAudio()
}

// IsKeyframe reports whether a video sample is a keyframe. Cinepak uses
// interframe compression: keyframes carry the whole image, later frames
// update only parts of it. The second return is false for audio samples,
// where the question does not apply.
func (s Sample) IsKeyframe() (bool, bool) {
	if !s.IsVideo() {
		return false, false
	}
	tag := binary.BigEndian.Uint32(s.Info1[:])
	return tag&(1<<31) == 0, true
}
