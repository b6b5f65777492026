package middleware

import "context"

// ownerKey stores the authenticated subject in the request context.
const ownerKey = contextKey("owner")

// GetOwnerFromCtx returns the token subject set by AuthMiddleware.
func GetOwnerFromCtx(ctx context.Context) (string, bool) {
	owner, ok := ctx.Value(ownerKey).(string)
	if !ok || owner == "" {
		return "", false
	}
	return owner, true
}
