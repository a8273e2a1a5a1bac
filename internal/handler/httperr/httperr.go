package httperr

import (
	"github.com/gin-gonic/gin"
)

// RequestIDKey is the gin context key the request logger stores its id under.
const RequestIDKey = "request_id"

// Machine-readable codes for failures that do not come from a use case.
const (
	CodeInvalidRequest = "invalid_request"
	CodeUnauthorized   = "unauthorized"
	CodeForbidden      = "forbidden"
	CodeInternal       = "internal"
)

// Response is the body of every failed request. Tills branch on Error.Code;
// Error.Message is for people.
type Response struct {
	Status    int       `json:"-"`
	Error     ErrorBody `json:"error"`
	Detail    any       `json:"detail,omitempty"`
	RequestID string    `json:"requestId,omitempty"`
}

type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func NewResponse(c *gin.Context, status int, code, msg string, detail any) Response {
	return Response{
		Status:    status,
		Error:     ErrorBody{Code: code, Message: msg},
		Detail:    detail,
		RequestID: c.GetString(RequestIDKey),
	}
}

// AbortWithError keeps err on the gin context for the request log and writes
// the public response.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	AbortWithCode(c, status, codeForStatus(status), err, msg, detail)
}

func AbortWithCode(c *gin.Context, status int, code string, err error, msg string, detail any) {
	if err == nil {
		panic("httperr: AbortWithCode called with a nil error")
	}

	resp := NewResponse(c, status, code, msg, detail)
	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

func codeForStatus(status int) string {
	switch {
	case status == 401:
		return CodeUnauthorized
	case status == 403:
		return CodeForbidden
	case status >= 500:
		return CodeInternal
	default:
		return CodeInvalidRequest
	}
}
