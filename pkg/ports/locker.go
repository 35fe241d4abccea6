package ports

import (
	"context"
	"time"
)

// UnlockFunc releases a distributed lock.
type UnlockFunc func(ctx context.Context) error

// DistributedLocker coordinates writes to the same document across replicas.
type DistributedLocker interface {
	// Lock acquires the lock for key (e.g. a form ID). It blocks until the lock is
	// acquired or ctx is canceled. The lock expires after ttl if never released.
	// The returned UnlockFunc MUST be called to release it.
	Lock(ctx context.Context, key string, ttl time.Duration) (UnlockFunc, error)
}
