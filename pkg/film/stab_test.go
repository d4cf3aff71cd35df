package film

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSTABRoundTrip(t *testing.T) {
	stab := STAB{
		Framerate: 30,
		SampleTable: []Sample{
			{Offset: 0, Length: 100, Info1: [4]byte{0x00, 0x00, 0x00, 0x01}},
			{Offset: 100, Length: 50, Info1: [4]byte{0xff, 0xff, 0xff, 0xff}},
			{Offset: 150, Length: 200, Info1: [4]byte{0x80, 0x00, 0x00, 0x02}},
		},
	}

	buf := stab.Marshal()
	require.Equal(t, stab.Size(), len(buf))
	require.Equal(t, []byte("STAB"), buf[0:4])

	var parsed STAB
	require.NoError(t, parsed.Unmarshal(buf))
	require.Equal(t, stab, parsed)
	require.Len(t, parsed.SampleTable, 3)
}

func TestSTABTruncated(t *testing.T) {
	var stab STAB

	err := stab.Unmarshal([]byte{'S', 'T', 'A', 'B'})
	require.ErrorIs(t, err, ErrTruncated)

	// Entry count larger than the chunk can hold.
	buf := []byte{
		'S', 'T', 'A', 'B', // signature
		0x00, 0x00, 0x00, 0x10, // length: 16
		0x00, 0x00, 0x00, 0x18, // framerate: 24
		0x00, 0x00, 0x00, 0x04, // entries: 4
	}
	err = stab.Unmarshal(buf)
	require.ErrorIs(t, err, ErrTruncated)
}

// An empty table is just the 16-byte prefix; the on-disk entry count still
// includes the prefix slot.
func TestSTABEmpty(t *testing.T) {
	stab := STAB{Framerate: 24}

	buf := stab.Marshal()
	require.Len(t, buf, 16)
	require.Equal(t, []byte{0x00, 0x00, 0x00, 0x01}, buf[12:16])

	var parsed STAB
	require.NoError(t, parsed.Unmarshal(buf))
	require.Empty(t, parsed.SampleTable)
}
