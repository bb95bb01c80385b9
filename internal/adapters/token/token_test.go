package token_test

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/filedep/internal/adapters/token"
)

func TestGenerator_Next_Format(t *testing.T) {
	fixed := time.UnixMilli(1700000000123)
	gen := token.NewGeneratorWithClock(func() time.Time { return fixed })

	tok, err := gen.Next()
	require.NoError(t, err)

	idx := strings.LastIndex(tok, "-")
	require.Positive(t, idx)
	assert.Equal(t, "1700000000123", tok[idx+1:])

	id, err := uuid.Parse(tok[:idx])
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(4), id.Version())
}

func TestGenerator_Next_UniqueWithFrozenClock(t *testing.T) {
	fixed := time.UnixMilli(42)
	gen := token.NewGeneratorWithClock(func() time.Time { return fixed })

	seen := make(map[string]bool)
	for range 100 {
		tok, err := gen.Next()
		require.NoError(t, err)
		assert.False(t, seen[tok], "token %s was returned twice", tok)
		seen[tok] = true
	}
}

func TestNewGenerator_UsesWallClock(t *testing.T) {
	before := time.Now().UnixMilli()
	tok, err := token.NewGenerator().Next()
	require.NoError(t, err)
	after := time.Now().UnixMilli()

	stamp := tok[strings.LastIndex(tok, "-")+1:]
	require.NotEmpty(t, stamp)
	var ms int64
	for _, c := range stamp {
		ms = ms*10 + int64(c-'0')
	}
	assert.GreaterOrEqual(t, ms, before)
	assert.LessOrEqual(t, ms, after)
}
