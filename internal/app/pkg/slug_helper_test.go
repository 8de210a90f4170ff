package pkg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Best Buy", "best-buy"},
		{"Best Buy & Co.", "best-buy-co"},
		{"  --Foo!! Bar??  ", "foo-bar"},
		{"already-a-slug", "already-a-slug"},
		{"2024 Deals", "2024-deals"},
		{"!!!", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Slugify(tt.in), "input %q", tt.in)
	}
}
