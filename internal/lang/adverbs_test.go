package lang

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_AdverbDictionaryIsSorted(t *testing.T) {
	assert := assert.New(t)

	// bisection only works on a sorted list
	assert.True(sort.StringsAreSorted(adverbs))
}

func Test_IsAdverb(t *testing.T) {
	testCases := []struct {
		name   string
		word   string
		expect bool
	}{
		{"known adverb", "happily", true},
		{"another known adverb", "sarcastically", true},
		{"not an adverb", "bob", false},
		{"prefix of an adverb is not a match", "happ", false},
		{"empty", "", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			actual := IsAdverb(tc.word)

			assert.Equal(tc.expect, actual)
		})
	}
}

func Test_AdverbsByPrefix(t *testing.T) {
	assert := assert.New(t)

	matches := AdverbsByPrefix("sar", 5)
	assert.Contains(matches, "sarcastically")
	for _, m := range matches {
		assert.True(len(m) >= 3 && m[:3] == "sar")
	}

	// max limits the number of results
	limited := AdverbsByPrefix("c", 2)
	assert.Len(limited, 2)

	// no match
	assert.Empty(AdverbsByPrefix("zzz", 5))
}
