package routehandler

import "context"

// sessionKey is the context key under which an authorized session is stored.
// The type parameter keeps sessions of different types apart.
type sessionKey[S any] struct{}

func withSession[S any](ctx context.Context, session *S) context.Context {
	return context.WithValue(ctx, sessionKey[S]{}, session)
}

// SessionFromContext returns the session stored by a dispatch function after
// a successful authenticate step.
//
//	session, ok := routehandler.SessionFromContext[models.Session](r.Context())
//	if !ok {
//	    // method is not authenticated
//	}
func SessionFromContext[S any](ctx context.Context) (*S, bool) {
	session, ok := ctx.Value(sessionKey[S]{}).(*S)
	return session, ok && session != nil
}
