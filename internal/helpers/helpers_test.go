package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidStage(t *testing.T) {
	assert.True(t, IsValidStage("prod"))
	assert.True(t, IsValidStage("dev"))
	assert.True(t, IsValidStage("local"))
	assert.True(t, IsValidStage("test"))
	assert.False(t, IsValidStage("staging"))
	assert.False(t, IsValidStage(""))
}

func TestShortID(t *testing.T) {
	assert.Equal(t, "a1b2c3d4", ShortID("a1b2c3d4-e5f6-7890", 8))
	assert.Equal(t, "abc", ShortID("abc", 8))
	assert.Equal(t, "abc", ShortID("abc", 0))
}

func TestShortAddress(t *testing.T) {
	assert.Equal(t, "0x123456...", ShortAddress("0x1234567890abcdef"))
	assert.Equal(t, "0x12", ShortAddress("0x12"))
}

func TestNormalizeTicker(t *testing.T) {
	assert.Equal(t, "USDC", NormalizeTicker(" usdc "))
}
