package session

import "context"

// contextKey is a private type for context keys, so no other package can
// collide with the session entry.
type contextKey string

func (c contextKey) String() string {
	return string(c)
}

var stateCtxKey = contextKey("session")

// NewContext returns a copy of ctx carrying s.
func NewContext(ctx context.Context, s State) context.Context {
	return context.WithValue(ctx, stateCtxKey, s)
}

// FromContext returns the state stored by [NewContext].
// ok is false when the context carries no session.
func FromContext(ctx context.Context) (State, bool) {
	s, ok := ctx.Value(stateCtxKey).(State)
	return s, ok
}
