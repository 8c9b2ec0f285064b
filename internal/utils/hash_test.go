package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashPassword(t *testing.T) {
	// Known SHA-256 vector.
	assert.Equal(t,
		"d74ff0ee8da3b9806b18c877dbf29bbde50b5bd8e4dad7a3a725000feb82e8f1",
		HashPassword("pass"),
	)

	// Deterministic and input-sensitive.
	assert.Equal(t, HashPassword("pw123"), HashPassword("pw123"))
	assert.NotEqual(t, HashPassword("pw123"), HashPassword("pw124"))
}

func TestIsSHA256Hex(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want bool
	}{
		{"real digest", HashPassword("anything"), true},
		{"plaintext password", "pw123", false},
		{"too short", "abc123", false},
		{"uppercase hex rejected", "D74FF0EE8DA3B9806B18C877DBF29BBDE50B5BD8E4DAD7A3A725000FEB82E8F1", false},
		{"right length wrong alphabet", "zzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzz", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsSHA256Hex(tt.in))
		})
	}
}
