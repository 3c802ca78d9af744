package response

// ErrorResp is the body of every error response.
type ErrorResp struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// NewErrorResp returns an ErrorResp with Success=false.
func NewErrorResp(message string) ErrorResp {
	return ErrorResp{Success: false, Message: message}
}

// MessageResp is the body of mutation responses that carry no data.
type MessageResp struct {
	Message string `json:"message"`
}
