package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrNotFound
	ErrInvalidRequest
	ErrUnauthorize
	ErrCredentialExists
	ErrInvalidCredentials
	ErrValidation
	ErrMissingFields
	ErrInvalidID
	ErrFileTooLarge
	ErrUnexpectedFile
	ErrTooManyFiles
	ErrUnsupportedMedia
	ErrForbidden
	ErrVehicleNotFound
	ErrTransactionNotFound
	ErrUserNotFound
	ErrFileNotFound
	ErrTooManyRequests
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:             "success",
	ErrInternal:            "Internal server error",
	ErrNotFound:            "data not found",
	ErrInvalidRequest:      "invalid request",
	ErrUnauthorize:         "unauthorized request",
	ErrCredentialExists:    "Email already registered",
	ErrInvalidCredentials:  "Invalid email or password",
	ErrValidation:          "Validation Error",
	ErrMissingFields:       "Missing required fields",
	ErrInvalidID:           "Invalid data format.",
	ErrFileTooLarge:        "File too large. Maximum size is 5MB.",
	ErrUnexpectedFile:      "Unexpected file field.",
	ErrTooManyFiles:        "Too many files. Maximum is 10.",
	ErrUnsupportedMedia:    "Only image files are allowed",
	ErrForbidden:           "you are not allowed to modify this resource",
	ErrVehicleNotFound:     "Vehicle not found",
	ErrTransactionNotFound: "Transaction not found",
	ErrUserNotFound:        "User not found",
	ErrFileNotFound:        "File not found",
	ErrTooManyRequests:     "too many requests, try again later",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:             http.StatusOK,
	ErrInternal:            http.StatusInternalServerError,
	ErrNotFound:            http.StatusNotFound,
	ErrInvalidRequest:      http.StatusBadRequest,
	ErrUnauthorize:         http.StatusUnauthorized,
	ErrCredentialExists:    http.StatusBadRequest,
	ErrInvalidCredentials:  http.StatusUnauthorized,
	ErrValidation:          http.StatusBadRequest,
	ErrMissingFields:       http.StatusBadRequest,
	ErrInvalidID:           http.StatusBadRequest,
	ErrFileTooLarge:        http.StatusBadRequest,
	ErrUnexpectedFile:      http.StatusBadRequest,
	ErrTooManyFiles:        http.StatusBadRequest,
	ErrUnsupportedMedia:    http.StatusBadRequest,
	ErrForbidden:           http.StatusForbidden,
	ErrVehicleNotFound:     http.StatusNotFound,
	ErrTransactionNotFound: http.StatusNotFound,
	ErrUserNotFound:        http.StatusNotFound,
	ErrFileNotFound:        http.StatusNotFound,
	ErrTooManyRequests:     http.StatusTooManyRequests,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:             "0000",
	ErrInternal:            "0001",
	ErrNotFound:            "0002",
	ErrInvalidRequest:      "0003",
	ErrUnauthorize:         "0004",
	ErrCredentialExists:    "0005",
	ErrInvalidCredentials:  "0006",
	ErrValidation:          "0007",
	ErrMissingFields:       "0008",
	ErrInvalidID:           "0009",
	ErrFileTooLarge:        "0010",
	ErrUnexpectedFile:      "0011",
	ErrTooManyFiles:        "0012",
	ErrUnsupportedMedia:    "0013",
	ErrForbidden:           "0014",
	ErrVehicleNotFound:     "0015",
	ErrTransactionNotFound: "0016",
	ErrUserNotFound:        "0017",
	ErrFileNotFound:        "0018",
	ErrTooManyRequests:     "0019",
}
