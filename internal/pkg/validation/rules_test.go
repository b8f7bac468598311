package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"alice@example.com", true},
		{"  alice@example.com  ", true},
		{"a.b+tag@sub.example.org", true},
		{"no-at-sign", false},
		{"@example.com", false},
		{"alice@", false},
		{"alice@example", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			require.Equal(t, tt.want, IsValidEmail(tt.email))
		})
	}
}

func TestIsValidName(t *testing.T) {
	require.True(t, IsValidName("Al"))
	require.True(t, IsValidName(strings.Repeat("a", NameMaxLength)))
	require.False(t, IsValidName("A"))
	require.False(t, IsValidName("   "))
	require.False(t, IsValidName(strings.Repeat("a", NameMaxLength+1)))
}

func TestIsValidURL(t *testing.T) {
	tests := []struct {
		raw  string
		want bool
	}{
		{"https://cdn.example.com/a.jpg", true},
		{"http://example.com", true},
		{"ftp://example.com/file", false},
		{"/relative/path.jpg", false},
		{"example.com/no-scheme", false},
		{"https://", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			require.Equal(t, tt.want, IsValidURL(tt.raw))
		})
	}
}

func TestNotBlank(t *testing.T) {
	require.True(t, NotBlank("x"))
	require.False(t, NotBlank(""))
	require.False(t, NotBlank(" \t\n"))
}
