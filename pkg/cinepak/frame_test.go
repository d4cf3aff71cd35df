package cinepak

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// testFrame is a two-strip keyframe. Both strips are relatively placed,
// so the second one's vertical extent depends on the first.
var testFrame = []byte{
	0x00,             // flags
	0x00, 0x00, 0x2a, // length: 42
	0x00, 0x5a, // height: 90
	0x01, 0x40, // width: 320
	0x00, 0x02, // strip count: 2
	0x00, 0x00, // reserved

	// Strip 0: keyframe strip, relative, 60 rows.
	0x00, 0x10, // id
	0x00, 0x10, // size: 16
	0x00, 0x00, // y1: relative
	0x00, 0x00, // x1: 0
	0x00, 0x3c, // height: 60
	0x01, 0x40, // x2: 320
	0xde, 0xad, 0xbe, 0xef, // payload

	// Strip 1: interframe strip, relative, 30 rows.
	0x00, 0x11, // id
	0x00, 0x0e, // size: 14
	0x00, 0x00, // y1: relative
	0x00, 0x00, // x1: 0
	0x00, 0x1e, // height: 30
	0x01, 0x40, // x2: 320
	0xca, 0xfe, // payload
}

func TestParseFrame(t *testing.T) {
	frame, err := ParseFrame(testFrame)
	require.NoError(t, err)

	require.Equal(t, uint8(0), frame.Flags)
	require.Equal(t, uint32(42), frame.DeclaredLength)
	require.Equal(t, 320, frame.Width)
	require.Equal(t, 90, frame.Height)
	require.Equal(t, 2, frame.StripCount())
	require.True(t, frame.Keyframe)

	require.Equal(t, Strip{
		ID:      StripTypeKey,
		X1:      0,
		Y1:      0,
		X2:      320,
		Y2:      60,
		Header:  testFrame[12:24],
		Payload: []byte{0xde, 0xad, 0xbe, 0xef},
	}, frame.Strips[0])

	// The second strip starts where the first one's y2 left off.
	require.Equal(t, Strip{
		ID:      StripTypeInter,
		X1:      0,
		Y1:      60,
		X2:      320,
		Y2:      90,
		Header:  testFrame[28:40],
		Payload: []byte{0xca, 0xfe},
	}, frame.Strips[1])
}

func TestParseFrameNoKeyStrips(t *testing.T) {
	data := append([]byte(nil), testFrame...)
	copy(data[12:14], []byte{0x00, 0x11})

	frame, err := ParseFrame(data)
	require.NoError(t, err)
	require.False(t, frame.Keyframe)
}

func TestParseFrameTruncated(t *testing.T) {
	_, err := ParseFrame(testFrame[:8])
	require.ErrorIs(t, err, ErrTruncated)
}

func TestParseFrameMalformedStrip(t *testing.T) {
	t.Run("sizeOvershoot", func(t *testing.T) {
		data := append([]byte(nil), testFrame...)
		copy(data[14:16], []byte{0x00, 0x64}) // Strip 0 claims 100 bytes.

		_, err := ParseFrame(data)

		var stripErr *MalformedStripError
		require.ErrorAs(t, err, &stripErr)
		require.Equal(t, 0, stripErr.StripIndex)
		require.Equal(t, 100, stripErr.DeclaredSize)
		require.Equal(t, 30, stripErr.BytesRemaining)
	})

	t.Run("sizeBelowHeader", func(t *testing.T) {
		data := append([]byte(nil), testFrame...)
		copy(data[14:16], []byte{0x00, 0x00})

		_, err := ParseFrame(data)

		var stripErr *MalformedStripError
		require.ErrorAs(t, err, &stripErr)
		require.Equal(t, 0, stripErr.StripIndex)
		require.Equal(t, 0, stripErr.DeclaredSize)
	})

	t.Run("countOvershoot", func(t *testing.T) {
		// The header promises a third strip that isn't there.
		data := append([]byte(nil), testFrame...)
		copy(data[8:10], []byte{0x00, 0x03})

		_, err := ParseFrame(data)

		var stripErr *MalformedStripError
		require.ErrorAs(t, err, &stripErr)
		require.Equal(t, 2, stripErr.StripIndex)
		require.Equal(t, 0, stripErr.BytesRemaining)
	})
}

func TestFrameMarshal(t *testing.T) {
	frame, err := ParseFrame(testFrame)
	require.NoError(t, err)

	require.Equal(t, len(testFrame), frame.Size())
	require.Equal(t, testFrame, frame.Marshal())
}
