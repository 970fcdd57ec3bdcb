package constants

const (
	ERROR_INPUT          = "Invalid input"
	ERROR_INTERNAL       = "Internal server error"
	MISSING_TOKEN        = "Missing token"
	INVALID_TOKEN        = "Invalid token"
	NOT_PERMISSION       = "You do not have permission to perform this action"
	LOGIN_FAILED         = "Invalid username or password"
	USERNAME_EXISTED     = "Username already exists"
	CONCURRENCY_CONFLICT = "The record was modified by another user. Reload and try again."
	ENTITY_SET_IS_NULL   = "Entity set 'Context.%s' is null."
	QR_FAILED            = "Could not generate ticket"
)

// Field error codes.
const (
	CODE_REQUIRED            = "required"
	CODE_RANGE               = "range"
	CODE_LENGTH              = "length"
	CODE_INVALID             = "invalid"
	CODE_PAST                = "past"
	CODE_REFERENCE_NOT_FOUND = "reference_not_found"
)

// Roles.
const (
	ROLE_ADMIN = "admin"
	ROLE_STAFF = "staff"
)
