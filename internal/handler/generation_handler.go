package handler

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"testpro/internal/middleware"
	"testpro/internal/service"
)

// GenerationHandler handles the anonymous PDF-to-questions endpoint.
type GenerationHandler struct {
	generationService service.GenerationService
	maxFileBytes      int64
}

// NewGenerationHandler creates a new GenerationHandler.
func NewGenerationHandler(generationService service.GenerationService, maxFileBytes int64) *GenerationHandler {
	return &GenerationHandler{generationService: generationService, maxFileBytes: maxFileBytes}
}

// GenerateFromPDF handles POST /api/tests/pdf
// @Summary Generate questions from a PDF
// @Description Extracts the text of an uploaded PDF (max 10MB) and returns up to 40 multiple-choice questions
// @Tags generation
// @Accept multipart/form-data
// @Produce json
// @Param pdf formData file true "PDF document"
// @Success 200 {object} domain.GenerationResult "Generated questions"
// @Failure 400 {object} ErrorBody "Missing file, not a PDF, too little text or no questions"
// @Failure 413 {object} ErrorBody "File too large"
// @Failure 500 {object} ErrorBody "Processing failed"
// @Router /tests/pdf [post]
func (h *GenerationHandler) GenerateFromPDF(c *gin.Context) {
	limitBody(c, h.maxFileBytes)

	input, err := readPDFUpload(c, h.maxFileBytes)
	if err != nil {
		HandleError(c, err)
		return
	}

	log.Printf("[%s] generationHandler.GenerateFromPDF: processing %s", middleware.GetRequestID(c), input.Filename)

	result, err := h.generationService.GenerateFromPDF(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
