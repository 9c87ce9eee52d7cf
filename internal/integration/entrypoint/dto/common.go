// Package dto defines data transfer objects for API requests and responses.
package dto

// SuccessResponse is the envelope for successful API responses.
type SuccessResponse struct {
	Msg  string      `json:"msg"`
	Data interface{} `json:"data,omitempty"`
}

// ErrorResponse is the envelope for error API responses. Error carries the
// machine-readable error code when one is available; Data carries structured
// detail for errors that have one, such as the insufficient funds balance.
type ErrorResponse struct {
	Msg   string      `json:"msg"`
	Error string      `json:"error,omitempty"`
	Data  interface{} `json:"data,omitempty"`
}
