package interfaces

import (
	"context"
	"errors"
)

// ErrLockNotObtained is returned when the key stays held by another writer for the
// whole wait window.
var ErrLockNotObtained = errors.New("lock not obtained")

// UnlockFunc releases a lock obtained from ILocker.
type UnlockFunc func(ctx context.Context) error

// ILocker serializes work on a key across service instances.
type ILocker interface {
	Lock(ctx context.Context, key string) (UnlockFunc, error)
}
