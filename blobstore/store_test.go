package blobstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListPrefix(t *testing.T) {
	tests := []struct {
		root, prefix, want string
	}{
		{"", "", ""},
		{"", "float32/", "float32/"},
		{"fix", "", "fix/"},
		{"fix/", "", "fix/"},
		{"fix", "float32/", "fix/float32/"},
		{"a/b", "c", "a/b/c"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ListPrefix(tt.root, tt.prefix), "root=%q prefix=%q", tt.root, tt.prefix)
	}
}

func TestRelName(t *testing.T) {
	rel, ok := RelName("fix", "fix/float32/a.dstf")
	assert.True(t, ok)
	assert.Equal(t, "float32/a.dstf", rel)

	_, ok = RelName("fix", "fixtures-old/float32/b.dstf")
	assert.False(t, ok)

	_, ok = RelName("fix/", "fix/")
	assert.False(t, ok)

	rel, ok = RelName("", "float32/a.dstf")
	assert.True(t, ok)
	assert.Equal(t, "float32/a.dstf", rel)
}
