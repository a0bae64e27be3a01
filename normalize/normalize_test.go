package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"lowercases", "Java Developer", "java developer"},
		{"collapses whitespace", "java   \t developer\n role", "java developer role"},
		{"expands sql", "knows SQL well", "knows structured query language database well"},
		{"expands jd", "see the JD for details", "see the job description for details"},
		{"expansion ignores trailing punctuation", "experience with SQL, and Excel", "experience with structured query language database and excel"},
		{"empty input", "", ""},
		{"whitespace only", "   \t\n ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	samples := []string{
		"I am hiring for Java developers who can also collaborate effectively",
		"Senior Data Analyst with SQL, Python and Excel expertise",
		"QA engineer, HTML/CSS and JS",
		"",
		"   spaced    out   ",
		"ALL CAPS QUERY WITH COO AND SEO",
	}

	for _, s := range samples {
		once := Normalize(s)
		twice := Normalize(once)
		assert.Equal(t, once, twice, "normalize must be idempotent for %q", s)
	}
}

func TestTokenize(t *testing.T) {
	t.Run("removes stop words and punctuation", func(t *testing.T) {
		tokens := Tokenize("The quick (brown) fox, and the lazy dog!")
		assert.Equal(t, []string{"quick", "brown", "fox", "lazy", "dog"}, tokens)
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, Tokenize(""))
	})

	t.Run("all stop words", func(t *testing.T) {
		assert.Empty(t, Tokenize("the and of to"))
	})
}
