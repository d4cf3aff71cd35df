// Package cinepak parses the frame and strip headers of Cinepak video.
package cinepak

// Cinepak splits each frame into horizontal strips that are coded
// independently. Video samples in a Sega FILM container carry one Cinepak
// frame each. Layout references: https://multimedia.cx/mirror/cinepak.txt
// and the FFmpeg decoder. All integers are big-endian.
//
//
// Frame header (12 bytes):
//   flags      uint8
//   length     uint24  // Total frame size in bytes.
//   height     uint16
//   width      uint16
//   stripCount uint16
//   reserved   [2]byte
//
// Strip header (12 bytes, strips are packed back-to-back from byte 12 of
// the frame, each located by the previous strip's declared size):
//   id   uint16 // 0x10 keyframe strip, 0x11 interframe strip.
//   size uint16 // Total strip size including this header.
//   y1   uint16 // 0 means the strip sits directly below the previous one.
//   x1   uint16
//   y2   uint16 // Height of the strip instead, when y1 is 0.
//   x2   uint16
//   data []byte // Codebooks and vectors, opaque to this package.
//
// Only vertical placement is ever relative; x1 and x2 are always absolute.
