package diskspace

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReadingFromBlocks(t *testing.T) {
	testCases := []struct {
		name      string
		blockSize uint64
		blocks    uint64
		want      Reading
	}{
		{"exact_ten_mb", 4096, 2560, 10},
		{"zero_blocks", 4096, 0, 0},
		{"zero_block_size", 0, 1000, 0},
		{"half_mb", 512, 1024, 0.5},
		{"fractional", 4096, 1, 4096.0 / BytesPerMB},
		{"large_volume", 4096, 1 << 40, 1 << 32},
		{"byte_granular", 1, 3 * BytesPerMB, 3},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ReadingFromBlocks(tc.blockSize, tc.blocks))
		})
	}
}

func TestReadingFromBlocksBeyond64Bits(t *testing.T) {
	// 2^32 * 2^40 = 2^72 bytes = 2^52 MB
	got := ReadingFromBlocks(1<<32, 1<<40)
	assert.Equal(t, Reading(math.Exp2(52)), got)
}

func TestBytes(t *testing.T) {
	n, ok := Bytes(4096, 1<<40)
	assert.True(t, ok)
	assert.Equal(t, uint64(1)<<52, n)

	_, ok = Bytes(1<<32, 1<<40)
	assert.False(t, ok)
}

func TestReadingFromBytes(t *testing.T) {
	assert.Equal(t, Reading(10), ReadingFromBytes(10_485_760))
	assert.InDelta(t, 1.5, ReadingFromBytes(1_572_864).MB(), 1e-12)
	assert.InEpsilon(t, 1_000_000.0/BytesPerMB, ReadingFromBytes(1_000_000).MB(), 1e-15)
}

func TestParseOperation(t *testing.T) {
	assert.Equal(t, OpTotal, ParseOperation("getTotalDiskSpace"))
	assert.Equal(t, OpFree, ParseOperation("getFreeDiskSpace"))
	assert.Equal(t, OpUnsupported, ParseOperation("getHalfDiskSpace"))
	assert.Equal(t, OpUnsupported, ParseOperation(" getFreeDiskSpace"))
}
