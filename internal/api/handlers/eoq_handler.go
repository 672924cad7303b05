package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/andresuchdata/sc-toolkit/backend-go/internal/eoq"
	"github.com/andresuchdata/sc-toolkit/backend-go/internal/service"
)

type EOQHandler struct {
	service *service.EOQService
}

func NewEOQHandler(service *service.EOQService) *EOQHandler {
	return &EOQHandler{service: service}
}

// ComputeRequest carries either a preset name or a full input record. A
// non-empty preset wins.
type ComputeRequest struct {
	Preset string     `json:"preset"`
	Input  *eoq.Input `json:"input"`
}

func (h *EOQHandler) GetPresets(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"presets": h.service.Presets()})
}

func (h *EOQHandler) Compute(c *gin.Context) {
	var req ComputeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	var in eoq.Input
	switch {
	case req.Preset != "":
		resolved, err := h.service.ResolvePreset(req.Preset)
		if err != nil {
			errorResponse(c, http.StatusBadRequest, err.Error())
			return
		}
		in = resolved
	case req.Input != nil:
		in = *req.Input
	default:
		errorResponse(c, http.StatusBadRequest, "either preset or input is required")
		return
	}

	res, err := h.service.Compute(in)
	if err != nil {
		errorResponse(c, statusForError(err), err.Error())
		return
	}

	c.JSON(http.StatusOK, res)
}
