package ctxutil

import "context"

type ctxKey string

const (
	roleKey      ctxKey = "role"
	requestIDKey ctxKey = "request_id"
)

// Role identifies what a request is allowed to do.
type Role string

const (
	// RoleOwner is granted by a valid session token and may mutate data.
	RoleOwner Role = "owner"
	// RoleGuest is the unauthenticated default; read-only.
	RoleGuest Role = "guest"
)

// WithRole stores the request role in the context.
func WithRole(ctx context.Context, role Role) context.Context {
	return context.WithValue(ctx, roleKey, role)
}

// RoleFromCtx extracts the role from the context.
// Requests without an explicit role are guests.
func RoleFromCtx(ctx context.Context) Role {
	role, ok := ctx.Value(roleKey).(Role)
	if !ok {
		return RoleGuest
	}
	return role
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
