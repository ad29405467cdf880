package match_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"argbind/internal/match"
)

func ExampleSuggest() {
	kinds := []string{"number", "boolean", "string", "text", "handle", "integer"}

	fmt.Println(match.Suggest("nubmer", kinds))
	fmt.Println(match.Suggest("Integer", kinds))
	fmt.Println(match.Suggest("bool", kinds) == "")
	// Output:
	// number
	// integer
	// true
}

func TestLevenshtein(t *testing.T) {
	t.Parallel()

	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"hello", "hello", 0},
		{"", "abc", 3},
		{"a", "b", 1},
		{"a", "ab", 1},
		{"kitten", "sitting", 3},
		{"saturday", "sunday", 3},
		{"Hello", "hello", 1},
		{"héllo", "hello", 1},
		{"日本語", "日本", 1},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, match.Levenshtein(tt.a, tt.b))
			assert.Equal(t, tt.want, match.Levenshtein(tt.b, tt.a), "distance is symmetric")
		})
	}
}

func TestSimilarity(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 1.0, match.Similarity("", ""), 1e-9)
	assert.InDelta(t, 0.0, match.Similarity("abc", "xyz"), 1e-9)
	assert.InDelta(t, 1-3.0/7.0, match.Similarity("kitten", "sitting"), 1e-9)
	assert.InDelta(t, 0.75, match.Similarity("日本語だ", "日本語で"), 1e-9)
}

func TestRank(t *testing.T) {
	t.Parallel()

	got := match.Rank("native_handle", []string{"function", "handle", "NativeHandle"})

	assert.Equal(t, []match.Candidate{
		{Name: "NativeHandle", Distance: 0},
		{Name: "handle", Distance: 6},
		{Name: "function", Distance: 10},
	}, got)

	assert.Empty(t, match.Rank("x", nil))
	assert.Empty(t, match.Suggest("x", nil))
}
