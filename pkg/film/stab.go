package film

import (
	"encoding/binary"
	"fmt"
)

const stabPrefixSize = 16

// STAB sample table chunk. An ordered index of every sample in the file;
// samples appear in the table in playback order.
type STAB struct {
	// Framerate is the number of ticks per second. This is not a frame
	// rate by itself: each sample occupies some number of ticks, and this
	// value converts ticks to a time interval.
	Framerate uint32

	// SampleTable references the stream data within the file, in on-disk
	// order. The on-disk table has one more entry than this: slot 0 is
	// the chunk prefix, not a sample.
	SampleTable []Sample
}

// Unmarshal STAB from buf, which must span from the chunk signature to the
// end of the FILM header.
func (t *STAB) Unmarshal(buf []byte) error {
	if len(buf) < stabPrefixSize {
		return fmt.Errorf("%w: need %d bytes, have %d",
			ErrTruncated, stabPrefixSize, len(buf))
	}

	t.Framerate = binary.BigEndian.Uint32(buf[8:12])
	entries := int(binary.BigEndian.Uint32(buf[12:16]))

	if size := entries * sampleSize; len(buf) < size {
		return fmt.Errorf("%w: %d entries need %d bytes, have %d",
			ErrTruncated, entries, size, len(buf))
	}

	t.SampleTable = nil
	for i := 1; i < entries; i++ {
		var s Sample
		s.Unmarshal(buf[i*sampleSize : (i+1)*sampleSize])
		t.SampleTable = append(t.SampleTable, s)
	}

	return nil
}

// Size marshaled size.
func (t *STAB) Size() int {
	return stabPrefixSize + len(t.SampleTable)*sampleSize
}

// Marshal STAB.
func (t *STAB) Marshal() []byte {
	out := make([]byte, t.Size())

	copy(out[0:4], "STAB")
	binary.BigEndian.PutUint32(out[4:8], uint32(t.Size()))
	binary.BigEndian.PutUint32(out[8:12], t.Framerate)
	binary.BigEndian.PutUint32(out[12:16], uint32(len(t.SampleTable)+1))

	for i, s := range t.SampleTable {
		copy(out[(i+1)*sampleSize:(i+2)*sampleSize], s.Marshal())
	}

	return out
}
