package response

import "fmt"

// Status is one of the response codes the server produces.
type Status int

const (
	StatusOK       Status = 200
	StatusCreated  Status = 201
	StatusNotFound Status = 404
)

// statusText maps status codes to reason phrases
var statusText = map[Status]string{
	StatusOK:       "OK",
	StatusCreated:  "Created",
	StatusNotFound: "Not Found",
}

// StatusText returns the reason phrase for a status code
func StatusText(code Status) string {
	if text, ok := statusText[code]; ok {
		return text
	}
	return "Unknown Status"
}

func (code Status) String() string {
	return fmt.Sprintf("%d %s", int(code), StatusText(code))
}

// IsSuccess returns true for 2xx status codes
func (code Status) IsSuccess() bool {
	return code >= 200 && code < 300
}

// IsClientError returns true for 4xx status codes
func (code Status) IsClientError() bool {
	return code >= 400 && code < 500
}
