package handlers

import (
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/andresuchdata/sc-toolkit/backend-go/internal/domain"
	"github.com/andresuchdata/sc-toolkit/backend-go/internal/ingest"
	"github.com/andresuchdata/sc-toolkit/backend-go/internal/report"
	"github.com/andresuchdata/sc-toolkit/backend-go/internal/segmentation"
	"github.com/andresuchdata/sc-toolkit/backend-go/internal/service"
)

type SegmentationHandler struct {
	service *service.SegmentationService
}

func NewSegmentationHandler(service *service.SegmentationService) *SegmentationHandler {
	return &SegmentationHandler{service: service}
}

// SegmentProducts classifies an uploaded product table (multipart "file",
// CSV or XLSX) and returns the ABC, MCABC and nested results. Cutoffs and
// weights come from form fields; zero values fall back to configured
// defaults.
func (h *SegmentationHandler) SegmentProducts(c *gin.Context) {
	table, ok := h.parseUpload(c)
	if !ok {
		return
	}

	params := domain.ProductParams{
		APct:              formFloat(c, "a_pct"),
		BPct:              formFloat(c, "b_pct"),
		WeightValue:       formFloat(c, "weight_value"),
		WeightLeadTime:    formFloat(c, "weight_lead_time"),
		WeightCriticality: formFloat(c, "weight_criticality"),
	}

	segments, err := h.service.ProductSegments(table, params)
	if err != nil {
		errorResponse(c, statusForError(err), err.Error())
		return
	}

	c.JSON(http.StatusOK, segments)
}

// SegmentCustomers splits an uploaded customer table against the median
// revenue and the margin_threshold form field (percent). ?format=csv
// streams the result as a CSV download instead of JSON.
func (h *SegmentationHandler) SegmentCustomers(c *gin.Context) {
	table, ok := h.parseUpload(c)
	if !ok {
		return
	}

	rows, err := h.service.CustomerSegments(table, formFloat(c, "margin_threshold"))
	if err != nil {
		errorResponse(c, statusForError(err), err.Error())
		return
	}

	if wantsCSV(c) {
		writeCSV(c, "customer_segments.csv", func() error {
			return report.WriteSegments(c.Writer, domain.ColCustomer,
				[]string{segmentation.AttrRevenue, segmentation.AttrProfit, segmentation.AttrMargin},
				rows)
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"segments": rows})
}

// SegmentSuppliers places an uploaded supplier table in the Kraljic matrix
// using the threshold form field. ?format=csv streams a CSV download.
func (h *SegmentationHandler) SegmentSuppliers(c *gin.Context) {
	table, ok := h.parseUpload(c)
	if !ok {
		return
	}

	rows, err := h.service.SupplierSegments(table, formFloat(c, "threshold"))
	if err != nil {
		errorResponse(c, statusForError(err), err.Error())
		return
	}

	if wantsCSV(c) {
		writeCSV(c, "supplier_segments.csv", func() error {
			return report.WriteSegments(c.Writer, domain.ColSupplier,
				[]string{segmentation.AttrProfitImpact, segmentation.AttrSupplyRisk},
				rows)
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"segments": rows})
}

// parseUpload reads the multipart "file" field as CSV or XLSX depending on
// the uploaded filename. On failure it writes the error response itself.
func (h *SegmentationHandler) parseUpload(c *gin.Context) (*ingest.Table, bool) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		errorResponse(c, http.StatusBadRequest, "missing file upload: "+err.Error())
		return nil, false
	}

	f, err := fileHeader.Open()
	if err != nil {
		errorResponse(c, http.StatusBadRequest, "failed to open upload: "+err.Error())
		return nil, false
	}
	defer f.Close()

	var table *ingest.Table
	if strings.EqualFold(filepath.Ext(fileHeader.Filename), ".xlsx") {
		table, err = ingest.ReadXLSX(f)
	} else {
		table, err = ingest.ReadCSV(f)
	}
	if err != nil {
		errorResponse(c, http.StatusBadRequest, err.Error())
		return nil, false
	}

	return table, true
}

func formFloat(c *gin.Context, field string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(c.PostForm(field)), 64)
	if err != nil {
		return 0
	}
	return v
}

func wantsCSV(c *gin.Context) bool {
	return strings.EqualFold(c.Query("format"), "csv")
}

func writeCSV(c *gin.Context, filename string, write func() error) {
	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Status(http.StatusOK)
	if err := write(); err != nil {
		_ = c.Error(err)
	}
}
