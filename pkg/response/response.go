package response

import (
	"errors"
	"net/http"
	"strings"
	"unicode"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	pkgErrors "uxo-chatbot/pkg/errors"
)

func NewOKResp(data any) Resp {
	return Resp{ErrorCode: 0, Message: MessageSuccess, Data: data}
}

// OK writes 200 with data in the envelope.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, NewOKResp(data))
}

// Error writes err in the envelope.
//   - *errors.HTTPError: its code is the status and the error code.
//   - binding validation errors: 400 with a field -> rule map in "errors".
//   - anything else: 400 with the error text.
func Error(c *gin.Context, err error, data map[string]interface{}) {
	if data == nil {
		data = map[string]interface{}{}
	}

	var httpErr *pkgErrors.HTTPError
	if errors.As(err, &httpErr) {
		c.JSON(httpErr.Code, Resp{ErrorCode: httpErr.Code, Message: httpErr.Message, Data: data})
		return
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		c.JSON(http.StatusBadRequest, Resp{
			ErrorCode: ValidationErrorCode,
			Message:   MessageInvalidRequest,
			Data:      data,
			Errors:    fieldErrors(verrs),
		})
		return
	}

	c.JSON(http.StatusBadRequest, Resp{ErrorCode: BadRequestCode, Message: err.Error(), Data: data})
}

// Unauthorized aborts with 401.
func Unauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, Resp{ErrorCode: http.StatusUnauthorized, Message: "Unauthorized"})
}

// TooManyRequests aborts with 429.
func TooManyRequests(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusTooManyRequests, Resp{
		ErrorCode: TooManyRequestsCode,
		Message:   "Too many requests, please slow down",
	})
}

func fieldErrors(verrs validator.ValidationErrors) map[string]string {
	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		rule := fe.Tag()
		if fe.Param() != "" {
			rule += "=" + fe.Param()
		}
		out[snakeCase(fe.Field())] = rule
	}
	return out
}

// snakeCase turns a Go field name into its JSON key: "SessionID" -> "session_id".
func snakeCase(name string) string {
	rs := []rune(name)
	var b strings.Builder
	for i, r := range rs {
		if unicode.IsUpper(r) && i > 0 {
			prevLower := unicode.IsLower(rs[i-1])
			nextLower := i+1 < len(rs) && unicode.IsLower(rs[i+1])
			if prevLower || (nextLower && unicode.IsUpper(rs[i-1])) {
				b.WriteByte('_')
			}
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}
