package response

// Response is the envelope of every API response
type Response struct {
	Status     string `json:"status"`      // "success" or "error"
	StatusCode int    `json:"status_code"` // HTTP status code
	Data       any    `json:"data,omitempty"`
	Meta       *Meta  `json:"meta,omitempty"`
	Error      string `json:"error,omitempty"`
}

// Meta describes the page returned by a list endpoint
type Meta struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int64 `json:"pages"`
}

// Success wraps data in a success envelope
func Success(statusCode int, data any) Response {
	return Response{
		Status:     "success",
		StatusCode: statusCode,
		Data:       data,
	}
}

// Page wraps one page of a list together with its paging metadata
func Page(statusCode int, data any, meta Meta) Response {
	resp := Success(statusCode, data)
	resp.Meta = &meta
	return resp
}

// Error wraps an error message in an error envelope
func Error(statusCode int, err string) Response {
	return Response{
		Status:     "error",
		StatusCode: statusCode,
		Error:      err,
	}
}
