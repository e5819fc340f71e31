package middleware

import (
	"compress/gzip"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// DefaultMaxBodyBytes bounds request bodies after decoding.
const DefaultMaxBodyBytes int64 = 1 << 20

// DecompressRequest inflates gzip request bodies and caps every body at maxBytes.
// Encodings other than gzip and identity are answered with 415.
func DecompressRequest(maxBytes int64) gin.HandlerFunc {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBodyBytes
	}
	return func(c *gin.Context) {
		switch encoding := strings.ToLower(strings.TrimSpace(c.GetHeader("Content-Encoding"))); encoding {
		case "", "identity":
		case "gzip", "x-gzip":
			zr, err := gzip.NewReader(c.Request.Body)
			if err != nil {
				c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "malformed gzip body"})
				return
			}
			defer zr.Close()
			c.Request.Body = zr
			c.Request.Header.Del("Content-Encoding")
			c.Request.ContentLength = -1
		default:
			c.AbortWithStatusJSON(http.StatusUnsupportedMediaType, gin.H{"error": "unsupported content encoding " + encoding})
			return
		}
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}
