package names

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "trims", input: "  Alice \t", expected: "Alice"},
		{name: "collapses inner spaces", input: "Mary   Jane", expected: "Mary Jane"},
		{name: "composes accents", input: "Jose\u0301", expected: "Jos\u00e9"},
		{name: "keeps case", input: "bob", expected: "bob"},
		{name: "empty", input: "   ", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Normalize(tt.input))
		})
	}
}

func TestKey(t *testing.T) {
	assert.Equal(t, Key("Sam"), Key("sam"))
	assert.Equal(t, Key(" SAM  "), Key("sam"))
	assert.Equal(t, Key("Jose\u0301"), Key("JOS\u00c9"))
	assert.NotEqual(t, Key("Sam"), Key("Samuel"))
}

func TestSortBy(t *testing.T) {
	items := []string{"zoe", "\u00c9mile", "bob", "Alice", "eve"}

	SortBy(items, func(s string) string { return s })

	assert.Equal(t, []string{"Alice", "bob", "\u00c9mile", "eve", "zoe"}, items)
}

func TestSortByIsStable(t *testing.T) {
	type person struct {
		id   string
		name string
	}
	items := []person{{"1", "Sam"}, {"2", "Ana"}, {"3", "sam"}}

	SortBy(items, func(p person) string { return p.name })

	assert.Equal(t, []string{"2", "1", "3"}, []string{items[0].id, items[1].id, items[2].id})
}
