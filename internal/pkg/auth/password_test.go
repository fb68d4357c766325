package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("S3cret!pass")
	assert.NoError(t, err)
	assert.NotEqual(t, "S3cret!pass", hash)
	assert.True(t, strings.HasPrefix(hash, "$2a$"))

	assert.True(t, CheckPassword(hash, "S3cret!pass"))
	assert.False(t, CheckPassword(hash, "wrong-password"))
}
