package redisx

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClaimAndRelease(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := New(mr.Addr())
	defer rdb.Close()
	ctx := context.Background()

	first, err := Claim(ctx, rdb, "dedup:x:1", time.Minute)
	require.NoError(t, err)
	assert.True(t, first)
	v, err := mr.Get("dedup:x:1")
	require.NoError(t, err)
	assert.Equal(t, ClaimPending, v)

	second, err := Claim(ctx, rdb, "dedup:x:1", time.Minute)
	require.NoError(t, err)
	assert.False(t, second)

	require.NoError(t, Release(ctx, rdb, "dedup:x:1"))
	again, err := Claim(ctx, rdb, "dedup:x:1", time.Minute)
	require.NoError(t, err)
	assert.True(t, again)

	mr.FastForward(2 * time.Minute)
	assert.False(t, mr.Exists("dedup:x:1"))
}
