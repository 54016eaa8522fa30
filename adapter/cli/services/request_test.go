package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveTier_DefaultsToFirstOfferedTier(t *testing.T) {
	tier, err := resolveTier("", []string{"basic", "pro"})

	require.NoError(t, err)
	assert.Equal(t, "basic", tier)
}

func TestResolveTier_AcceptsOfferedTier(t *testing.T) {
	tier, err := resolveTier("pro", []string{"basic", "pro"})

	require.NoError(t, err)
	assert.Equal(t, "pro", tier)
}

func TestResolveTier_RejectsUnknownTier(t *testing.T) {
	_, err := resolveTier("enterprise", []string{"basic", "pro"})

	assert.ErrorContains(t, err, "enterprise")
}

func TestResolveTier_EmptyWithoutOfferedTiers(t *testing.T) {
	tier, err := resolveTier("", nil)

	require.NoError(t, err)
	assert.Empty(t, tier)
}
