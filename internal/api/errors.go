package api

import "fmt"

// ValidationError is a client-detected failure raised before any network
// call. The action must be corrected locally; retrying changes nothing.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// AuthError means the call had no usable token, or the server refused it
// (401) or the acting user's role (403). The caller should send the user back
// through login or drop the action.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string {
	return e.Message
}

// ServerError is a non-2xx response with the server-supplied message when the
// body carried one.
type ServerError struct {
	Status  int
	Message string
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("server error (%d): %s", e.Status, e.Message)
}

// NetworkError wraps a transport failure: the request never produced an HTTP
// response.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}
