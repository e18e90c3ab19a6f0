package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := map[string]string{
		"Recipe Title":            "recipe-title",
		"Pão de Queijo!":          "pao-de-queijo",
		"  Bolo   de   Cenoura  ": "bolo-de-cenoura",
		"Crème brûlée -- classic": "creme-brulee-classic",
		"100% whole-wheat bread":  "100-whole-wheat-bread",
		"!!!":                     "",
	}
	for in, want := range tests {
		assert.Equal(t, want, Slugify(in), "Slugify(%q)", in)
	}

	long := Slugify(strings.Repeat("word ", 30))
	assert.LessOrEqual(t, len(long), 65)
	assert.False(t, strings.HasSuffix(long, "-"))
}
