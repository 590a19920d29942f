package contextkeys

type ContextKey string

const (
	// Keys under which the auth middleware stores the caller's identity
	// in the gin context.
	UserIDContextKey ContextKey = "userID"
	RoleContextKey   ContextKey = "role"
)
