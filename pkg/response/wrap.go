package response

import (
	"fmt"

	"github.com/gin-gonic/gin"
)

// HandlerFunc is a gin handler that reports failure by returning an error
// instead of writing the error response itself.
type HandlerFunc func(c *gin.Context) error

// Wrap adapts h to gin. A returned error, or a panic raised by h, is attached
// to the context with c.Error and the chain is aborted; the error reporter
// middleware decides how it is rendered.
func Wrap(h HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				forward(c, panicError(r))
			}
		}()

		if err := h(c); err != nil {
			forward(c, err)
		}
	}
}

func forward(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}

func panicError(r any) error {
	if err, ok := r.(error); ok {
		return fmt.Errorf("panic: %w", err)
	}
	return fmt.Errorf("panic: %v", r)
}
