package middleware

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/pageza/recipe-catalog/internal/view"
)

// Recovery logs panics and answers with the HTML error page.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Error().
					Str("request_id", c.GetString(RequestIDKey)).
					Interface("error", err).
					Msg("Panic recovered")

				var buf bytes.Buffer
				_ = view.RenderError(&buf, view.ErrorPage{
					Title:   "Something went wrong",
					Message: "The request could not be completed.",
				})
				c.Data(http.StatusInternalServerError, "text/html; charset=utf-8", buf.Bytes())
				c.Abort()
			}
		}()

		c.Next()
	}
}
