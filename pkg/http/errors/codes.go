package errors

import "net/http"

// Fixed messages for the error envelope. Clients match on these strings.
const (
	MsgBadRequest          = "Bad Request"
	MsgNotFound            = "Not found"
	MsgMethodNotAllowed    = "Method not allowed"
	MsgUnprocessableEntity = "Unprocessable Entity"
	MsgInternalError       = "Internal Server Error"
)

// Message returns the envelope message for a status code.
func Message(status int) string {
	switch status {
	case http.StatusBadRequest:
		return MsgBadRequest
	case http.StatusNotFound:
		return MsgNotFound
	case http.StatusMethodNotAllowed:
		return MsgMethodNotAllowed
	case http.StatusUnprocessableEntity:
		return MsgUnprocessableEntity
	case http.StatusInternalServerError:
		return MsgInternalError
	default:
		return http.StatusText(status)
	}
}
