package server

import (
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ironsheep/placeholder-png/internal/imaging"
	"github.com/ironsheep/placeholder-png/internal/log"
	"github.com/ironsheep/placeholder-png/internal/placeholder"
	"github.com/samber/lo"
)

// captionPrefix introduces the caption in the fourth path segment.
const captionPrefix = "text="

// invalidParameters is the body of every 400 response.
const invalidParameters = "Invalid parameters"

func (s *Server) handleSize(c *gin.Context) {
	s.render(c, placeholder.Request{
		Size: c.Param("size"),
	})
}

func (s *Server) handleColors(c *gin.Context) {
	s.render(c, placeholder.Request{
		Size:       c.Param("size"),
		Background: lo.ToPtr(c.Param("bg")),
		Foreground: lo.ToPtr(c.Param("fg")),
	})
}

func (s *Server) handleCaption(c *gin.Context) {
	text, ok := strings.CutPrefix(c.Param("caption"), captionPrefix)
	if !ok {
		c.String(http.StatusNotFound, "404 page not found")
		return
	}

	s.render(c, placeholder.Request{
		Size:       c.Param("size"),
		Background: lo.ToPtr(c.Param("bg")),
		Foreground: lo.ToPtr(c.Param("fg")),
		Text:       lo.ToPtr(text),
	})
}

// render runs the synthesizer and writes either the PNG or the generic 400.
func (s *Server) render(c *gin.Context, req placeholder.Request) {
	ctx := c.Request.Context()

	img, err := s.images.CreateImage(ctx, req)
	if err != nil {
		log.FromContextOrDiscard(ctx).Debug("rejected request", "request", req, "error", err)
		writeInvalidParameters(c)
		return
	}

	c.Data(http.StatusOK, imaging.MimeType, img)
}

// writeInvalidParameters writes the single client-visible error response.
func writeInvalidParameters(c *gin.Context) {
	c.Data(http.StatusBadRequest, "text/plain", []byte(invalidParameters))
}

// logRequests attaches the server logger to each request context and logs
// the outcome at debug level.
func (s *Server) logRequests() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Request = c.Request.WithContext(log.NewContext(c.Request.Context(), s.logger))

		c.Next()

		s.logger.Debug("handled request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}

// recoverPanics turns a panic in a handler into a logged 500.
func (s *Server) recoverPanics() gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(io.Discard, func(c *gin.Context, recovered any) {
		s.logger.Error("handler panicked", "path", c.Request.URL.Path, "panic", recovered)
		c.AbortWithStatus(http.StatusInternalServerError)
	})
}
