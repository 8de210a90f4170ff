package adminkey

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	key, err := Generate("dealora")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(key, "dealora_"))
	assert.NotContains(t, key, "=")
	assert.Greater(t, len(key), len("dealora_")+20)

	other, err := Generate("dealora")
	require.NoError(t, err)
	assert.NotEqual(t, key, other)
}

func TestVerify(t *testing.T) {
	assert.True(t, Verify("dealora_abc", "dealora_abc"))
	assert.False(t, Verify("dealora_abc", "dealora_xyz"))
	assert.False(t, Verify("", "dealora_abc"))
	assert.False(t, Verify("dealora_abc", ""))
	assert.False(t, Verify("", ""))
}
