// Package film parses and writes the header of Sega FILM containers.
package film

// FILM is a video container format used by Sega in Saturn games released
// between 1994 and 2000. The file starts with a variable-size header that
// encapsulates two additional chunks:
//
//   * FDSC, the format descriptor, which describes the container's contents.
//   * STAB, the sample table, which locates every sample within the container.
//
// All integers are big-endian.
//
//
// FILM header (size declared at [4:8]):
//   signature [4]byte // "FILM"
//   length    uint32  // Total header size in bytes.
//   version   [4]byte
//   reserved  [4]byte
//   fdsc      [32]byte
//   stab      []byte  // [48:length]
//
// FDSC chunk (32 bytes):
//   signature       [4]byte // "FDSC"
//   length          uint32
//   fourcc          [4]byte // Video codec, "cvid" for Cinepak.
//   height          uint32
//   width           uint32
//   bpp             uint8
//   channels        uint8
//   audioResolution uint8
//   audioCompression uint8  // 0=PCM, 2=ADX.
//   samplingRate    uint16
//
// STAB chunk (16 bytes + sample records):
//   signature [4]byte // "STAB"
//   length    uint32
//   framerate uint32  // Ticks per second, not frames per second.
//   entries   uint32  // Number of 16-byte slots including this prefix.
//   samples   []sampleRecord
//
// sampleRecord { // 16 bytes. Slot 0 is the STAB prefix itself,
//                // so a table with N entries holds N-1 records.
//   offset uint32 // Relative to the end of the FILM header.
//   length uint32
//   info1  [4]byte // All 0xFF for audio; for video, bit 31 set
//                  // means not a keyframe.
//   info2  [4]byte
// }
