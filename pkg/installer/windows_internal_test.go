package installer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVIVersion(t *testing.T) {
	tests := map[string]string{
		"1.2.3":         "1.2.3.0",
		"v2.0":          "2.0.0.0",
		"1.0.0-beta.1":  "1.0.0.0",
		"1.2.3.4":       "1.2.3.4",
		"":              "0.0.0.0",
		"1.x.3":         "1.0.3.0",
		"3.1.4+build.5": "3.1.4.0",
	}
	for in, want := range tests {
		assert.Equal(t, want, viVersion(in), in)
	}
}

func TestNSISEscape(t *testing.T) {
	assert.Equal(t, `$\"quoted$\"`, nsisEscape(`"quoted"`))
	assert.Equal(t, `cost $$5`, nsisEscape(`cost $5`))
	assert.Equal(t, `a$\nb`, nsisEscape("a\nb"))
}
