package response

// ErrorResp is the standard JSON error body.
type ErrorResp struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MessageResp is the standard JSON success-message body.
type MessageResp struct {
	Message string `json:"message"`
}
