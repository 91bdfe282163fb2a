package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewEntityIDShape(t *testing.T) {
	id := NewEntityID("course")
	assert.Regexp(t, `^course-\d+-[a-z0-9]{9}$`, id)
	assert.False(t, IsTempID(id))
}

func TestNewEntityIDUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := NewEntityID("comment")
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}

func TestIsTempID(t *testing.T) {
	assert.True(t, IsTempID(""))
	assert.True(t, IsTempID("temp-123"))
	assert.True(t, IsTempID("temp-1755550000000"))
	assert.True(t, IsTempID("abc123"))

	assert.False(t, IsTempID("course-1700000000000-abcdefghi"))
	assert.False(t, IsTempID("550e8400-e29b-41d4-a716-446655440000"))
}
