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
	ErrForbidden
	ErrRouteNotFound
	ErrSlugExists
	ErrRateLimited
	ErrPayloadTooLarge
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:            "success",
	ErrInternal:           "server error",
	ErrNotFound:           "data not found",
	ErrInvalidRequest:     "invalid request",
	ErrUnauthorize:        "token is not valid",
	ErrCredentialExists:   "email or mobile already registered",
	ErrInvalidCredentials: "invalid credentials",
	ErrForbidden:          "access denied",
	ErrRouteNotFound:      "route not found",
	ErrSlugExists:         "a post with this title already exists",
	ErrRateLimited:        "too many requests from this IP, please try again later",
	ErrPayloadTooLarge:    "payload too large",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:            http.StatusOK,
	ErrInternal:           http.StatusInternalServerError,
	ErrNotFound:           http.StatusNotFound,
	ErrInvalidRequest:     http.StatusBadRequest,
	ErrUnauthorize:        http.StatusUnauthorized,
	ErrCredentialExists:   http.StatusConflict,
	ErrInvalidCredentials: http.StatusUnauthorized,
	ErrForbidden:          http.StatusForbidden,
	ErrRouteNotFound:      http.StatusNotFound,
	ErrSlugExists:         http.StatusConflict,
	ErrRateLimited:        http.StatusTooManyRequests,
	ErrPayloadTooLarge:    http.StatusRequestEntityTooLarge,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:            "0000",
	ErrInternal:           "0001",
	ErrNotFound:           "0002",
	ErrInvalidRequest:     "0003",
	ErrUnauthorize:        "0004",
	ErrCredentialExists:   "0005",
	ErrInvalidCredentials: "0006",
	ErrForbidden:          "0007",
	ErrRouteNotFound:      "0008",
	ErrSlugExists:         "0009",
	ErrRateLimited:        "0010",
	ErrPayloadTooLarge:    "0011",
}
