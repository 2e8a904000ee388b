package concurrency

import (
	"context"
	"strings"

	"golang.org/x/sync/singleflight"
)

// Guard collapses identical in-flight actions into a single execution.
// A second "plant seed" from the same user while the first is still
// running waits for and shares the first call's result.
type Guard struct {
	group singleflight.Group
}

// NewGuard creates a new Guard
func NewGuard() *Guard {
	return &Guard{}
}

// Key builds a guard key from the user and action parts
func Key(userID, action string, parts ...string) string {
	return strings.Join(append([]string{userID, action}, parts...), "\x00")
}

// Do runs fn once per key at a time. shared reports whether the result came
// from a call started by another request.
func (g *Guard) Do(ctx context.Context, key string, fn func(ctx context.Context) (any, error)) (v any, shared bool, err error) {
	// The shared call must not be cancelled when only the first caller goes away
	callCtx := context.WithoutCancel(ctx)
	ch := g.group.DoChan(key, func() (any, error) {
		return fn(callCtx)
	})

	select {
	case res := <-ch:
		return res.Val, res.Shared, res.Err
	case <-ctx.Done():
		return nil, false, ctx.Err()
	}
}
