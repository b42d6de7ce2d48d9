package response

const (
	MessageSuccess = "Success"

	// TimestampFormat is ISO-8601 with offset and microsecond precision.
	TimestampFormat = "2006-01-02T15:04:05.999999Z07:00"

	InternalServerErrorCode   = 500
	DefaultErrorMessage       = "Something went wrong"
	TooManyRequestsCode       = 429
	TooManyRequestsMessage    = "Too many requests"
	ServiceUnavailableCode    = 503
	ServiceUnavailableMessage = "Service unavailable"
)
