package s3err

import (
	"net/http"
	"strings"
)

// APIError represents an S3 API error with its code, description, and HTTP status.
// Based on: https://docs.aws.amazon.com/AmazonS3/latest/API/ErrorResponses.html#ErrorCodeList
type APIError struct {
	Code           string
	Description    string
	HTTPStatusCode int
}

// Error is the error value surfaced to callers of the emulator. It carries the
// S3 error code plus the resource ("/bucket" or "/bucket/key") it refers to.
type Error struct {
	Code     string
	Message  string
	Resource string
	HTTPCode int

	// DeleteMarker is set on NoSuchKey errors raised because the current
	// version of the key is a delete marker.
	DeleteMarker bool
}

func (e Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Code)
	b.WriteString(": ")
	if e.Resource != "" {
		b.WriteString(e.Resource)
		b.WriteString(": ")
	}
	b.WriteString(e.Message)
	return b.String()
}

// ErrorCode is an enumeration of the S3 error codes the emulator raises.
type ErrorCode int

const (
	ErrNone ErrorCode = iota

	// Bucket errors
	ErrNoSuchBucket

	// Object errors
	ErrNoSuchKey
	ErrNoSuchVersion
	ErrInvalidVersionID
	ErrMethodNotAllowed

	// Request validation errors
	ErrInvalidArgument
	ErrIncompleteBody

	ErrInternalError
)

var errorCodeResponse = map[ErrorCode]APIError{
	ErrNoSuchBucket: {
		Code:           "NoSuchBucket",
		Description:    "The specified bucket does not exist.",
		HTTPStatusCode: http.StatusNotFound,
	},
	ErrNoSuchKey: {
		Code:           "NoSuchKey",
		Description:    "The specified key does not exist.",
		HTTPStatusCode: http.StatusNotFound,
	},
	ErrNoSuchVersion: {
		Code:           "NoSuchVersion",
		Description:    "The specified version does not exist.",
		HTTPStatusCode: http.StatusNotFound,
	},
	ErrInvalidVersionID: {
		Code:           "InvalidArgument",
		Description:    "Invalid version id specified.",
		HTTPStatusCode: http.StatusBadRequest,
	},
	ErrMethodNotAllowed: {
		Code:           "MethodNotAllowed",
		Description:    "The specified method is not allowed against this resource.",
		HTTPStatusCode: http.StatusMethodNotAllowed,
	},
	ErrInvalidArgument: {
		Code:           "InvalidArgument",
		Description:    "Invalid argument.",
		HTTPStatusCode: http.StatusBadRequest,
	},
	ErrIncompleteBody: {
		Code:           "IncompleteBody",
		Description:    "You did not provide the number of bytes specified by the Content-Length HTTP header.",
		HTTPStatusCode: http.StatusBadRequest,
	},
}

// APIError returns the full APIError struct for this error code.
func (e ErrorCode) APIError() APIError {
	if err, ok := errorCodeResponse[e]; ok {
		return err
	}
	return APIError{
		Code:           "InternalError",
		Description:    "We encountered an internal error. Please try again.",
		HTTPStatusCode: http.StatusInternalServerError,
	}
}

// Code returns the S3 error code string.
func (e ErrorCode) Code() string {
	return e.APIError().Code
}

// Description returns the error description.
func (e ErrorCode) Description() string {
	return e.APIError().Description
}

// Error implements the error interface.
func (e ErrorCode) Error() string {
	return e.Description()
}

// HTTPStatusCode returns the HTTP status code for this error.
func (e ErrorCode) HTTPStatusCode() int {
	return e.APIError().HTTPStatusCode
}

// New creates an Error for this code referencing the given resource.
func (e ErrorCode) New(resource string) Error {
	api := e.APIError()
	return Error{
		Code:     api.Code,
		Message:  api.Description,
		Resource: resource,
		HTTPCode: api.HTTPStatusCode,
	}
}

// NewWithMessage creates an Error with a custom message.
func (e ErrorCode) NewWithMessage(resource, message string) Error {
	api := e.APIError()
	return Error{
		Code:     api.Code,
		Message:  message,
		Resource: resource,
		HTTPCode: api.HTTPStatusCode,
	}
}

// BucketResource formats the resource string for a bucket-level error.
func BucketResource(bucket string) string {
	return "/" + bucket
}

// ObjectResource formats the resource string for an object-level error.
func ObjectResource(bucket, key string) string {
	return "/" + bucket + "/" + key
}

// IsCode reports whether err is an s3err.Error carrying the given code.
func IsCode(err error, code ErrorCode) bool {
	e, ok := err.(Error)
	if !ok {
		return false
	}
	return e.Code == code.Code()
}
