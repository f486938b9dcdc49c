package textcase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTitleAndKey(t *testing.T) {
	tests := []struct {
		in, title, key string
	}{
		{"engineering", "Engineering", "engineering"},
		{"  HR ", "Hr", "hr"},
		{"customer SUCCESS", "Customer Success", "customer success"},
		{"", "", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.title, Title(tt.in), tt.in)
		assert.Equal(t, tt.key, Key(tt.in), tt.in)
	}
}
