package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
)

// contextKey is the type of keys stored in request contexts.
// Using a custom type prevents collisions.
type contextKey string

const (
	loggerCtxKey = contextKey("logger")
	// subjectKey holds the authenticated client's token subject.
	subjectKey = contextKey("subject")
)

// GetSubjectFromContext retrieves the authenticated token subject from the request context.
// It returns the subject and a boolean indicating if it was found.
func GetSubjectFromContext(c *gin.Context) (string, bool) {
	return SubjectFromCtx(c.Request.Context())
}

// SubjectFromCtx retrieves the authenticated token subject from a standard context.
func SubjectFromCtx(ctx context.Context) (string, bool) {
	subject, ok := ctx.Value(subjectKey).(string)
	return subject, ok && subject != ""
}
