package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/andresuchdata/sc-toolkit/backend-go/internal/eoq"
	"github.com/andresuchdata/sc-toolkit/backend-go/internal/ingest"
	"github.com/andresuchdata/sc-toolkit/backend-go/internal/segmentation"
)

// statusForError maps the core error kinds onto HTTP statuses: input and
// schema violations are the client's fault, numeric domain failures are
// unprocessable, the rest is a server error.
func statusForError(err error) int {
	var (
		invalidParam  *eoq.InvalidParameterError
		invalidCutoff *segmentation.InvalidCutoffError
		missingColumn *ingest.MissingColumnError
		numericDomain *eoq.NumericDomainError
	)
	switch {
	case errors.As(err, &invalidParam),
		errors.As(err, &invalidCutoff),
		errors.As(err, &missingColumn):
		return http.StatusBadRequest
	case errors.As(err, &numericDomain):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func errorResponse(c *gin.Context, statusCode int, message string) {
	log.Error().Msg(message)
	c.JSON(statusCode, gin.H{"error": message})
}
