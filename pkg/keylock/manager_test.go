package keylock_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/aretw0/canova/pkg/adapters/redis"
	"github.com/aretw0/canova/pkg/keylock"
	"github.com/aretw0/canova/pkg/ports"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_SerializesReadModifyWrite(t *testing.T) {
	locks := keylock.New()
	ctx := context.Background()

	counter := 0
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := locks.WithLock(ctx, "form-1", func(ctx context.Context) error {
				v := counter
				time.Sleep(time.Millisecond) // widen the race window
				counter = v + 1
				return nil
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, counter)
	assert.Zero(t, locks.Active())
}

func TestManager_NoLeakedEntries(t *testing.T) {
	locks := keylock.New()
	ctx := context.Background()

	for i := 0; i < 1000; i++ {
		_ = locks.WithLock(ctx, fmt.Sprintf("form-%d", i), func(context.Context) error { return nil })
	}
	assert.Zero(t, locks.Active())
}

func TestManager_PropagatesError(t *testing.T) {
	locks := keylock.New()
	boom := errors.New("boom")

	err := locks.WithLock(context.Background(), "k", func(context.Context) error { return boom })
	assert.ErrorIs(t, err, boom)
}

type failingLocker struct{}

func (failingLocker) Lock(ctx context.Context, key string, ttl time.Duration) (ports.UnlockFunc, error) {
	return nil, errors.New("unavailable")
}

func TestManager_DistributedLockFailure(t *testing.T) {
	locks := keylock.New(keylock.WithLocker(failingLocker{}))
	called := false

	err := locks.WithLock(context.Background(), "k", func(context.Context) error {
		called = true
		return nil
	})
	assert.Error(t, err)
	assert.False(t, called)
	assert.Zero(t, locks.Active())
}

func TestManager_WithRedisLocker(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	client := backend.NewClient(&backend.Options{Addr: mr.Addr()})
	locks := keylock.New(keylock.WithLocker(redis.NewLocker(client, "test:")), keylock.WithTTL(time.Minute))

	err = locks.WithLock(context.Background(), "form-9", func(ctx context.Context) error {
		assert.True(t, mr.Exists("test:lock:form-9"))
		return nil
	})
	require.NoError(t, err)
	assert.False(t, mr.Exists("test:lock:form-9"))
}
