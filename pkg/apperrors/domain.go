package apperrors

import (
	"net/http"
)

// Factories for the failure classes the content resources produce.

// ErrNotFound converts a repository miss (gorm.ErrRecordNotFound) into a 404.
func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

// ErrStorageWrite reports a failed object upload. The write that triggered it
// is aborted before any row mutation.
func ErrStorageWrite(err error) *AppError {
	return Wrap(err, CodeStorageError, "storage", "Failed to store uploaded file", http.StatusInternalServerError)
}

// ErrInvalidOperation reports an operation the resource does not allow (400).
func ErrInvalidOperation(domain, message string) *AppError {
	return New(CodeInvalidOperation, domain, message, http.StatusBadRequest)
}

// Upload limit breaches are treated as validation failures (400), same
// as any other rejected input.

// ErrFileTooLarge rejects uploads over the configured size limit.
var ErrFileTooLarge = New(
	CodeLimitExceeded,
	"validation",
	"File size exceeds the allowed limit",
	http.StatusBadRequest,
)

// ErrInvalidFileType rejects uploads whose MIME type is not allow-listed.
var ErrInvalidFileType = New(
	CodeValidationFailed,
	"validation",
	"The provided file type is not allowed",
	http.StatusBadRequest,
)
