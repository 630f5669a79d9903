package model

// GenericErrorMessage is the only error message ever exposed to clients
const GenericErrorMessage = "Something went wrong!"

// ErrorResponse is the body written for any failed request
type ErrorResponse struct {
	Error     string `json:"error"`
	Timestamp string `json:"timestamp"`
}
