package contextkeys

// contextKey is an unexported type to prevent collisions with context keys defined in
// other packages.
type contextKey string

// String makes contextKey satisfy the Stringer interface to assist with debugging.
func (c contextKey) String() string {
	return "reviewdesk context key " + string(c)
}

// RequestIDKey is the key for the per-request correlation ID in context.Context.
const RequestIDKey = contextKey("requestID")

// UserRoleKey is the key for the decoded session role in context.Context.
const UserRoleKey = contextKey("userRole")

// ComponentKey is the key for the emitting component name in context.Context.
const ComponentKey = contextKey("component")

// OperationKey is the key for the current operation name in context.Context.
const OperationKey = contextKey("operation")
