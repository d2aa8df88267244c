package response

// ErrCode is a typed error code for consistent API error identification.
type ErrCode string

const (
	ErrValidation           ErrCode = "VALIDATION_ERROR"
	ErrInvalidPayload       ErrCode = "INVALID_PAYLOAD"
	ErrIncompleteSubmission ErrCode = "INCOMPLETE_SUBMISSION"
	ErrMalformedBank        ErrCode = "MALFORMED_BANK"
	ErrQuizUnavailable      ErrCode = "QUIZ_UNAVAILABLE"
	ErrNotFound             ErrCode = "NOT_FOUND"
	ErrInternal             ErrCode = "INTERNAL_ERROR"
)

// GetMessage returns a human-readable message for a given error code.
func GetMessage(code ErrCode) string {
	switch code {
	case ErrValidation:
		return "Validation failed. Please check your input."
	case ErrInvalidPayload:
		return "The request payload is invalid."
	case ErrIncompleteSubmission:
		return "Almost there! Please answer every question before submitting the quiz."
	case ErrMalformedBank:
		return "Quiz data could not be loaded."
	case ErrQuizUnavailable:
		return "The quiz is not available."
	case ErrNotFound:
		return "Resource not found."
	case ErrInternal:
		return "An internal server error occurred."
	default:
		return "An unexpected error occurred."
	}
}
