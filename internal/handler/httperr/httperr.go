package httperr

import (
	"net/http"

	"reminder-scheduler/internal/domain/reminder"
	"reminder-scheduler/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// AbortWithDomainError picks the status from the error: validation failures
// are the caller's fault, anything else is ours.
func AbortWithDomainError(c *gin.Context, err error) {
	status, msg := StatusFor(err)
	AbortWithError(c, status, err, msg, nil)
}

func StatusFor(err error) (int, string) {
	switch {
	case errs.Is(err, reminder.ErrParse):
		return http.StatusUnprocessableEntity, "Could not recognize a future due time"
	case errs.Is(err, reminder.ErrEmptyText),
		errs.Is(err, reminder.ErrTextTooLong),
		errs.Is(err, reminder.ErrInvalidOwner),
		errs.Is(err, reminder.ErrInvalidID):
		return http.StatusBadRequest, err.Error()
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}
