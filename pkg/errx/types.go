package errx

// Type represents the category of error
type Type string

const (
	// TypeInternal represents internal errors
	TypeInternal Type = "INTERNAL"

	// TypeValidation represents invalid arguments
	TypeValidation Type = "VALIDATION"

	// TypeTimeout represents work that did not finish before its deadline
	TypeTimeout Type = "TIMEOUT"

	// TypeCanceled represents work abandoned because its caller went away
	TypeCanceled Type = "CANCELED"
)

// String returns the string representation of the error type
func (t Type) String() string {
	return string(t)
}

// statusClientClosed is the nginx convention for a request the client
// abandoned; net/http has no constant for it.
const statusClientClosed = 499

// typeToHTTPStatus maps error types to HTTP status codes
func typeToHTTPStatus(t Type) int {
	switch t {
	case TypeValidation:
		return 400
	case TypeCanceled:
		return statusClientClosed
	case TypeTimeout:
		return 504
	default:
		return 500
	}
}
