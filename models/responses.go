package models

// ErrorResponse is the JSON body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is the JSON body of operations that return no entity.
type MessageResponse struct {
	Message string `json:"message"`
}
