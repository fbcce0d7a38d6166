package listener

import "context"

type remoteUserKey struct{}

// WithRemoteUser records the login name a client authenticated with.
func WithRemoteUser(ctx context.Context, user string) context.Context {
	return context.WithValue(ctx, remoteUserKey{}, user)
}

// RemoteUser returns the login name recorded on ctx, if any.
func RemoteUser(ctx context.Context) (string, bool) {
	user, ok := ctx.Value(remoteUserKey{}).(string)
	return user, ok && user != ""
}
