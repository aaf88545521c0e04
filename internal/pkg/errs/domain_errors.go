package errs

// Sentinel errors shared by the usecase and handler layers
var (
	ErrResourceNotFound = New("resource not found")
	ErrBookingNotFound  = New("booking not found")

	// Validation errors
	ErrValidation = New("validation error")

	// Operation errors
	ErrDatabaseOperationFailed = New("database operation failed")
	ErrCatalogUnavailable      = New("resource catalog unavailable")
)

func IsNotFound(err error) bool {
	return Is(err, ErrResourceNotFound) || Is(err, ErrBookingNotFound)
}
