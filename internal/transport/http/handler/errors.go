package handler

const (
	errInternalServer     = "Internal server error"
	errInvalidCredentials = "Invalid credentials"
	errUserExists         = "User already exists"
	errResetTokenInvalid  = "Invalid or expired token"
	errTaskNotFound       = "Todo not found"
	errNotAuthorized      = "Not authorized"
	errTitleRequired      = "Title is required"

	msgResetRequested  = "If an account exists for that email, a reset token has been issued"
	msgPasswordUpdated = "Password updated successfully"
	msgTaskRemoved     = "Todo removed"
)
