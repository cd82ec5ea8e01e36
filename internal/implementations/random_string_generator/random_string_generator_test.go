package randomstringgenerator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestActivationCode(t *testing.T) {
	generator := NewGenerator()
	assert := require.New(t)

	for i := 0; i < 100; i++ {
		code := generator.GenerateActivationCode()

		assert.Len(string(code), activationCodeLength)
		for _, char := range string(code) {
			assert.True(strings.ContainsRune(activationCodeChars, char))
		}
	}
}

func TestActivationCodesDiffer(t *testing.T) {
	generator := NewGenerator()

	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		seen[string(generator.GenerateActivationCode())] = struct{}{}
	}

	require.New(t).Greater(len(seen), 1)
}

func TestSessionToken(t *testing.T) {
	generator := NewGenerator()

	token := generator.GenerateSessionToken()

	require.New(t).Len(string(token), sessionTokenLength)
}
