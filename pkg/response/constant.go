package response

const (
	MessageSuccess        = "Success"
	MessageInvalidRequest = "Invalid request"

	BadRequestCode      = 1
	ValidationErrorCode = 2
	TooManyRequestsCode = 429

	DateTimeFormat = "2006-01-02 15:04:05"
)
