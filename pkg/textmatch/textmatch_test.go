package textmatch_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskparse/pkg/textmatch"
)

func TestWords(t *testing.T) {
	re, err := textmatch.Compile(textmatch.Words([]string{"high", "high priority", "υψηλή"}))
	require.NoError(t, err)

	tests := []struct {
		in   string
		want bool
	}{
		{"set HIGH", true},
		{"highway works", false},
		{"high   priority please", true},
		{"Υψηλή προτεραιότητα", true},
		{"υψηλήςς", false},
		{"", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, textmatch.Contains(re, tt.in), "input %q", tt.in)
	}
}

func TestAlternationLongestFirst(t *testing.T) {
	re, err := textmatch.Compile(textmatch.Alternation([]string{"high", "high priority"}))
	require.NoError(t, err)

	m := textmatch.Find(re, []rune("very high priority"), 0)
	require.NotNil(t, m)
	assert.Equal(t, "high priority", m.String())
	assert.Equal(t, 5, m.Index)
}

func TestAlternationEmpty(t *testing.T) {
	assert.Equal(t, textmatch.Never, textmatch.Alternation(nil))
	assert.Equal(t, textmatch.Never, textmatch.Alternation([]string{" ", ""}))

	re, err := textmatch.Compile(textmatch.Words(nil))
	require.NoError(t, err)
	assert.False(t, textmatch.Contains(re, "anything at all"))
}

func TestPhraseEscapes(t *testing.T) {
	re, err := textmatch.Compile(textmatch.Phrase("title:  (draft)"))
	require.NoError(t, err)
	assert.True(t, textmatch.Contains(re, "title: (draft)"))
	assert.False(t, textmatch.Contains(re, "title draft"))
}

func TestFindAndGroups(t *testing.T) {
	re, err := textmatch.Compile(`(?<n>\d+)\s*(?<unit>h|m)?`)
	require.NoError(t, err)

	runes := []rune("αα 2h και 30")
	m := textmatch.Find(re, runes, 0)
	require.NotNil(t, m)
	assert.Equal(t, 3, m.Index)

	n, ok := textmatch.Group(m, "n")
	assert.True(t, ok)
	assert.Equal(t, "2", n)

	m = textmatch.Next(re, m)
	require.NotNil(t, m)
	unit, ok := textmatch.Group(m, "unit")
	assert.False(t, ok)
	assert.Empty(t, unit)

	assert.Nil(t, textmatch.Next(re, m))
	assert.Nil(t, textmatch.Find(re, runes, len(runes)+1))
	assert.Nil(t, textmatch.Find(nil, runes, 0))
}

func TestReplaceAll(t *testing.T) {
	re, err := textmatch.Compile(textmatch.Words([]string{"urgent"}))
	require.NoError(t, err)
	assert.Equal(t, "fix  the fence", textmatch.ReplaceAll(re, "fix URGENT the fence", ""))
}

func TestCompileError(t *testing.T) {
	_, err := textmatch.Compile(`(unclosed`)
	assert.Error(t, err)
}
