package cache

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRevalidator(t *testing.T) (*pageRevalidator, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return &pageRevalidator{client: client}, mr
}

func TestPageRevalidator_Revalidate(t *testing.T) {
	revalidator, mr := newTestRevalidator(t)
	ctx := context.Background()

	require.NoError(t, mr.Set("page:/events", "rendered"))
	require.NoError(t, mr.Set("page:/events/123", "rendered"))

	require.NoError(t, revalidator.Revalidate(ctx, "/events"))

	assert.False(t, mr.Exists("page:/events"))
	assert.True(t, mr.Exists("page:/events/123"))
}

func TestPageRevalidator_Revalidate_MissingKey(t *testing.T) {
	revalidator, _ := newTestRevalidator(t)

	// Deleting an uncached path is not an error.
	assert.NoError(t, revalidator.Revalidate(context.Background(), "/nowhere"))
}

func TestPageRevalidator_RevalidateAll(t *testing.T) {
	revalidator, mr := newTestRevalidator(t)
	ctx := context.Background()

	require.NoError(t, mr.Set("page:/events", "rendered"))
	require.NoError(t, mr.Set("page:/events/123", "rendered"))
	require.NoError(t, mr.Set("page:/profile", "rendered"))
	require.NoError(t, mr.Set("session:abc", "other"))

	require.NoError(t, revalidator.RevalidateAll(ctx))

	assert.False(t, mr.Exists("page:/events"))
	assert.False(t, mr.Exists("page:/events/123"))
	assert.False(t, mr.Exists("page:/profile"))
	// Keys outside the page namespace are untouched.
	assert.True(t, mr.Exists("session:abc"))
}

func TestPageRevalidator_RevalidateAll_Empty(t *testing.T) {
	revalidator, _ := newTestRevalidator(t)

	assert.NoError(t, revalidator.RevalidateAll(context.Background()))
}
