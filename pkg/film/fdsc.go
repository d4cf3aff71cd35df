package film

import "encoding/binary"

// AudioCodec is the audio compression code from the FDSC chunk.
// Codes other than the two known ones are kept as-is and report
// themselves as unknown.
type AudioCodec uint8

// Known audio compression codes.
const (
	AudioPCM AudioCodec = 0
	AudioADX AudioCodec = 2
)

// Name returns "pcm", "adx" or "unknown".
func (c AudioCodec) Name() string {
	switch c {
	case AudioPCM:
		return "pcm"
	case AudioADX:
		return "adx"
	default:
		return "unknown"
	}
}

const fdscSize = 32

// FDSC format descriptor chunk. Describes the video and audio streams
// inside the container.
type FDSC struct {
	// FourCC identifies the video codec, normally "cvid" for Cinepak.
	FourCC string

	Height uint32
	Width  uint32

	// BPP is the colour depth. 24 is the only value that has been observed.
	BPP uint8

	// Channels of audio, typically 1 or 2.
	Channels uint8

	// AudioResolution is the bit depth of the audio stream, 8 or 16.
	AudioResolution uint8

	AudioCompression AudioCodec

	AudioSamplingRate uint16
}

// Unmarshal FDSC from buf. buf must be exactly 32 bytes; ParseHeader
// guarantees this for the chunk it carves out of the header.
func (f *FDSC) Unmarshal(buf []byte) {
	f.FourCC = string(buf[8:12])
	f.Height = binary.BigEndian.Uint32(buf[12:16])
	f.Width = binary.BigEndian.Uint32(buf[16:20])
	f.BPP = buf[20]
	f.Channels = buf[21]
	f.AudioResolution = buf[22]
	f.AudioCompression = AudioCodec(buf[23])
	f.AudioSamplingRate = binary.BigEndian.Uint16(buf[24:26])
}

// Marshal FDSC.
func (f *FDSC) Marshal() []byte {
	out := make([]byte, fdscSize)

	copy(out[0:4], "FDSC")
	binary.BigEndian.PutUint32(out[4:8], fdscSize)
	copy(out[8:12], f.FourCC)
	binary.BigEndian.PutUint32(out[12:16], f.Height)
	binary.BigEndian.PutUint32(out[16:20], f.Width)
	out[20] = f.BPP
	out[21] = f.Channels
	out[22] = f.AudioResolution
	out[23] = uint8(f.AudioCompression)
	binary.BigEndian.PutUint16(out[24:26], f.AudioSamplingRate)

	return out
}

// AudioCodecName returns the name of the audio compression in use,
// "pcm" or "adx".
func (f *FDSC) AudioCodecName() string {
	return f.AudioCompression.Name()
}

// HumanReadableFourCC returns a description of the video codec.
func (f *FDSC) HumanReadableFourCC() string {
	if f.FourCC == "cvid" {
		return "Cinepak"
	}
	return "Raw video"
}
