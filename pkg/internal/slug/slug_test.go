package slug_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/almamun2b/portfolio-api/pkg/internal/slug"
)

func TestGenerate(t *testing.T) {
	cases := []struct {
		name  string
		title string
		want  string
	}{
		{"simple", "Hello World", "hello-world"},
		{"punctuation stripped", "Hello, World!!", "hello-world"},
		{"whitespace collapsed", "  multiple   spaces  ", "multiple-spaces"},
		{"hyphen runs collapsed", "go -- the hard---way", "go-the-hard-way"},
		{"underscores stripped", "snake_case_title", "snakecasetitle"},
		{"digits kept", "Top 10 Tips of 2024", "top-10-tips-of-2024"},
		{"non ascii letters kept", "Crème Brûlée", "crème-brûlée"},
		{"only punctuation", "!!!???", ""},
		{"empty", "", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, slug.Generate(tc.title))
		})
	}
}

func TestGenerateIsIdempotent(t *testing.T) {
	once := slug.Generate("A Fancy: Title?")
	assert.Equal(t, once, slug.Generate(once))
}
