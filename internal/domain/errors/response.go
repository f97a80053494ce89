package errors

// ErrorInfo contains detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`              // Business error code, e.g., "STOK_HABIS"
	Details string `json:"details,omitempty"` // Detailed error information (optional)
}

// Response is the unified envelope written back for handled errors.
// It mirrors the success envelope of the delivery layer so clients can
// decode both with one shape.
type Response struct {
	Success bool       `json:"success"`
	Code    int        `json:"code"`
	Message string     `json:"message"`
	Error   *ErrorInfo `json:"error,omitempty"`
}
