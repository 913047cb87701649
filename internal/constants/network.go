package constants

const (
	// ErrorMessageMaxLen caps error messages lifted from raw upstream bodies.
	ErrorMessageMaxLen = 500
	// ErrorDetailMaxLen caps the raw-body diagnostic detail returned to callers.
	ErrorDetailMaxLen = 2000
)
