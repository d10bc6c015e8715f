package constvars

const (
	MethodGet     = "GET"
	MethodPost    = "POST"
	MethodDelete  = "DELETE"
	MethodOptions = "OPTIONS"
)

const (
	MIMEApplicationJSON            = "application/json"
	MIMEApplicationJSONCharsetUTF8 = "application/json; charset=utf-8"
	MIMETextPlainCharsetUTF8       = "text/plain; charset=utf-8"
)

const (
	HeaderContentType = "Content-Type"
	HeaderRequestID   = "X-Request-ID"
	HeaderRetryAfter  = "Retry-After"
)

const (
	StatusOK                  = 200
	StatusCreated             = 201
	StatusBadRequest          = 400
	StatusNotFound            = 404
	StatusTooManyRequests     = 429
	StatusInternalServerError = 500
	StatusGatewayTimeout      = 504
)
