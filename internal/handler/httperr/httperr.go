package httperr

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// Response is the error body every endpoint returns:
// {"error":{"code":...,"message":...},"detail":...}.
type Response struct {
	Status int       `json:"-"`
	Error  ErrorBody `json:"error"`
	Detail any       `json:"detail,omitempty"`
}

type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func NewResponse(status int, msg string, detail any) Response {
	return Response{
		Status: status,
		Error:  ErrorBody{Code: statusCode(status), Message: msg},
		Detail: detail,
	}
}

// AbortWithError records err on the context for logging and writes the
// public response. err itself never reaches the client.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	abort(c, err, NewResponse(status, msg, detail))
}

func abort(c *gin.Context, err error, resp Response) {
	if err == nil {
		panic("httperr: err cannot be nil")
	}
	// Context.Error keeps Type and Meta only for *gin.Error
	_ = c.Error(&gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(resp.Status, resp)
}

// "Too Many Requests" -> "too_many_requests"
func statusCode(status int) string {
	text := http.StatusText(status)
	if text == "" {
		return "error"
	}
	return strings.ReplaceAll(strings.ToLower(text), " ", "_")
}
