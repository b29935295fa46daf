//go:build linux || darwin || freebsd

package diskspace

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPickBlockSize(t *testing.T) {
	testCases := []struct {
		name   string
		frsize int64
		bsize  int64
		want   int64
	}{
		{"equal", 4096, 4096, 4096},
		{"nfs_large_io_size", 4096, 1 << 20, 4096},
		{"fragment_larger", 65536, 4096, 65536},
		{"frsize_unset", 0, 4096, 4096},
		{"frsize_negative", -1, 512, 512},
		{"both_unset", 0, 0, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, pickBlockSize(tc.frsize, tc.bsize))
		})
	}
}

func TestNFSCapacityUsesFragmentSize(t *testing.T) {
	// 1 MiB I/O size, 4 KiB fragments, 2560 fragments = 10 MB
	size := pickBlockSize(4096, 1<<20)
	assert.Equal(t, Reading(10), ReadingFromBlocks(uint64(size), 2560))
}

func TestNonNegative(t *testing.T) {
	assert.Equal(t, uint64(0), nonNegative(-5))
	assert.Equal(t, uint64(0), nonNegative(0))
	assert.Equal(t, uint64(42), nonNegative(42))
}
