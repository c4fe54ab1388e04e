package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "https with path", input: "https://example.com/a/b", want: true},
		{name: "http with port", input: "http://localhost:8000", want: true},
		{name: "http ip", input: "http://127.0.0.1/x?y=1", want: true},
		{name: "trailing slash untouched", input: "https://example.com/", want: true},
		{name: "ftp scheme", input: "ftp://example.com", want: false},
		{name: "no scheme", input: "example.com", want: false},
		{name: "empty", input: "", want: false},
		{name: "scheme only", input: "https://", want: false},
		{name: "opaque http", input: "http:example.com", want: false},
		{name: "uppercase scheme", input: "HTTPS://example.com", want: false},
		{name: "mailto", input: "mailto:someone@example.com", want: false},
		{name: "leading space", input: " https://example.com", want: false},
		{name: "bad host", input: "https://exa mple.com", want: false},
		{name: "port without host", input: "http://:80", want: false},
		{name: "port out of range", input: "http://a:99999", want: false},
		{name: "highest port", input: "http://a:65535", want: true},
		{name: "empty host", input: "http:///foo", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Validate(tt.input))
		})
	}
}

func TestCheck(t *testing.T) {
	assert.ErrorIs(t, Check(""), ErrEmpty)
	assert.ErrorIs(t, Check("   \t"), ErrEmpty)
	assert.ErrorIs(t, Check("ftp://example.com"), ErrMalformed)
	assert.NoError(t, Check("https://example.com"))
}
