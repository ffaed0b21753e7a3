package response

const (
	ContentTypeText   = "text/plain"
	ContentTypeBinary = "application/octet-stream"
)

// Text builds a 200 response carrying body as text/plain
func Text(body string) *Response {
	return New(StatusOK).WithBody(ContentTypeText, []byte(body))
}

// Bytes builds a 200 response carrying data as application/octet-stream
func Bytes(data []byte) *Response {
	return New(StatusOK).WithBody(ContentTypeBinary, data)
}

// Empty builds a response with no body and no headers
func Empty(status Status) *Response {
	return New(status)
}

func NotFound() *Response {
	return Empty(StatusNotFound)
}

func Created() *Response {
	return Empty(StatusCreated)
}
