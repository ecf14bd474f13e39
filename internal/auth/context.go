package auth

import "context"

type ctxKey string

const userContextKey ctxKey = "lifegame.auth.user"

func withUserContext(ctx context.Context, u User) context.Context {
	return context.WithValue(ctx, userContextKey, u)
}

// UserFromContext returns the user placed on the context by RequireAPI or
// RequirePage.
func UserFromContext(ctx context.Context) (User, bool) {
	u, ok := ctx.Value(userContextKey).(User)
	return u, ok
}
