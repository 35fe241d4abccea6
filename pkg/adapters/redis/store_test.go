package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/aretw0/canova/pkg/adapters/redis"
	"github.com/aretw0/canova/pkg/domain"
	"github.com/aretw0/canova/pkg/ports"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T, opts ...redis.Option) (*redis.Store, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("Failed to start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	client := backend.NewClient(&backend.Options{Addr: mr.Addr()})
	return redis.NewFromClient(client, opts...), mr
}

func TestRedisStore_Contract(t *testing.T) {
	store, _ := newStore(t)
	ports.RunStoreContract(t, store)
}

func TestRedisStore_Prefix(t *testing.T) {
	store, mr := newStore(t, redis.WithPrefix("custom:"))
	ctx := context.Background()

	project := &domain.Project{ID: "p1", Name: "Survey", Owner: "u1", CreatedAt: time.Now()}
	require.NoError(t, store.SaveProject(ctx, project))

	assert.True(t, mr.Exists("custom:project:p1"))
	assert.True(t, mr.Exists("custom:idx:projects:u1"))
	assert.False(t, mr.Exists("canova:project:p1"))
}

func TestRedisStore_SkipsStaleIndexEntries(t *testing.T) {
	store, mr := newStore(t)
	ctx := context.Background()

	project := &domain.Project{ID: "p1", Name: "Survey", Owner: "u1", CreatedAt: time.Now()}
	require.NoError(t, store.SaveProject(ctx, project))

	mr.Del("canova:project:p1")

	list, err := store.ListProjects(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestRedisStore_DeleteFormDropsIndexes(t *testing.T) {
	store, mr := newStore(t)
	ctx := context.Background()

	form := domain.NewForm("Feedback", "u1", "p1", time.Now())
	form.AccessSettings.SharedWith = []domain.SharedUser{{UserID: "u2", AccessLevel: domain.AccessEdit}}
	require.NoError(t, store.SaveForm(ctx, form))
	require.NoError(t, store.DeleteForm(ctx, form.ID))

	for _, key := range []string{"canova:idx:forms:project:p1", "canova:idx:forms:owner:u1", "canova:idx:forms:shared:u2"} {
		members, err := mr.ZMembers(key)
		if err == nil {
			assert.NotContains(t, members, form.ID, key)
		}
	}
}
