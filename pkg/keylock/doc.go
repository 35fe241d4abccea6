/*
Package keylock serializes read-modify-write cycles on the same document.

A Manager keeps one mutex per key, created on demand and removed when the last
holder releases it. With WithLocker, the in-process mutex is followed by a
distributed lock so several API replicas can share one store:

	locks := keylock.New(keylock.WithLocker(redis.NewLocker(client, "canova:")))
	err := locks.WithLock(ctx, formID, func(ctx context.Context) error {
		// load, modify, save
	})
*/
package keylock
