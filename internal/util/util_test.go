package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_SortBy(t *testing.T) {
	assert := assert.New(t)

	original := []string{"carol", "alice", "bob"}
	sorted := SortBy(original, func(l, r string) bool {
		return l < r
	})

	assert.Equal([]string{"alice", "bob", "carol"}, sorted)
	// the input slice is left alone
	assert.Equal([]string{"carol", "alice", "bob"}, original)
}

func Test_SliceIndexOf(t *testing.T) {
	assert := assert.New(t)

	sl := []int{4, 8, 15, 8}

	assert.Equal(1, SliceIndexOf(8, sl))
	assert.Equal(-1, SliceIndexOf(23, sl))
	assert.Equal(-1, SliceIndexOf(4, nil))
}

func Test_SliceRemove(t *testing.T) {
	assert := assert.New(t)

	sl := []int{4, 8, 15, 8}

	// only the first occurrence goes
	assert.Equal([]int{4, 15, 8}, SliceRemove(8, sl))
	assert.Equal([]int{4, 8, 15, 8}, sl)
	assert.Equal([]int{4, 8, 15, 8}, SliceRemove(23, sl))
}
