package constants

const (
	// Default pagination (offset/limit)
	DefaultLimit = 100
	MaxLimit     = 100

	// HTTP Headers
	HeaderAuthorization = "Authorization"
	HeaderXRequestID    = "X-Request-ID"

	// Authorization scheme accepted on bearer tokens
	BearerScheme = "bearer"
	TokenType    = "bearer"

	// Context keys
	ContextKeyUserID    = "user_id"
	ContextKeyUsername  = "username"
	ContextKeyRequestID = "request_id"

	// Database table names
	TableUsers   = "users"
	TableTickets = "tickets"

	// Rendering format for ticket creation dates
	DateLayout = "2006-01-02"

	// Error messages
	ErrMsgInternalServerError = "Internal server error occurred"
	ErrMsgValidationFailed    = "Validation failed"
	ErrMsgTicketNotFound      = "Ticket not found"
	ErrMsgUsernameTaken       = "Username already exists"
	ErrMsgTooManyRequests     = "Too many requests, please try again later"
)
