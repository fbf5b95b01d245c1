package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"testpro/internal/domain"
	"testpro/internal/middleware"
	"testpro/internal/service"
)

// TestHandler handles test catalog endpoints.
type TestHandler struct {
	testService  service.TestService
	maxFileBytes int64
}

// NewTestHandler creates a new TestHandler.
func NewTestHandler(testService service.TestService, maxFileBytes int64) *TestHandler {
	return &TestHandler{testService: testService, maxFileBytes: maxFileBytes}
}

// Create handles POST /api/tests
// @Summary Publish a test from a PDF
// @Description Generates questions from the uploaded PDF, archives the source and saves the test
// @Tags tests
// @Accept multipart/form-data
// @Produce json
// @Param pdf formData file true "PDF document"
// @Param title formData string false "Title (defaults to the file name)"
// @Param description formData string false "Description"
// @Param category formData string false "Category"
// @Param difficulty formData string false "fácil, medio or difícil" default(medio)
// @Param duration formData int false "Duration in minutes (defaults to one per question)"
// @Param is_public formData bool false "Visible to guests"
// @Success 201 {object} APIResponse{data=service.TestDetail}
// @Failure 400 {object} ErrorBody
// @Failure 401 {object} ErrorBody
// @Failure 403 {object} ErrorBody
// @Failure 413 {object} ErrorBody
// @Security BearerAuth
// @Router /tests [post]
func (h *TestHandler) Create(c *gin.Context) {
	viewer := middleware.GetViewer(c)
	limitBody(c, h.maxFileBytes)

	upload, err := readPDFUpload(c, h.maxFileBytes)
	if err != nil {
		HandleError(c, err)
		return
	}

	duration := 0
	if raw := strings.TrimSpace(c.PostForm("duration")); raw != "" {
		duration, err = strconv.Atoi(raw)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "INVALID_INPUT", "duration must be a whole number of minutes")
			return
		}
	}
	isPublic := false
	if raw := strings.TrimSpace(c.PostForm("is_public")); raw != "" {
		isPublic, err = strconv.ParseBool(raw)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "INVALID_INPUT", "is_public must be a boolean")
			return
		}
	}

	detail, err := h.testService.CreateFromUpload(c.Request.Context(), viewer, service.CreateTestInput{
		Upload:          upload,
		Title:           c.PostForm("title"),
		Description:     c.PostForm("description"),
		Category:        c.PostForm("category"),
		Difficulty:      domain.Difficulty(strings.TrimSpace(c.PostForm("difficulty"))),
		DurationMinutes: duration,
		IsPublic:        isPublic,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, detail)
}

// List handles GET /api/tests
// @Summary List tests
// @Description Lists catalog tests. Guests only see public tests.
// @Tags tests
// @Produce json
// @Param search query string false "Case-insensitive search over title and description"
// @Param category query string false "Category, or all"
// @Param difficulty query string false "fácil, medio, difícil, or all"
// @Param offset query int false "Offset for pagination" default(0)
// @Param limit query int false "Limit for pagination (max 100)" default(20)
// @Success 200 {object} APIResponse{data=[]service.TestSummary,meta=PagMeta}
// @Failure 400 {object} ErrorBody
// @Router /tests [get]
func (h *TestHandler) List(c *gin.Context) {
	offset, limit := parsePagination(c)

	tests, total, err := h.testService.List(c.Request.Context(), middleware.GetViewer(c), service.ListTestsInput{
		Search:     c.Query("search"),
		Category:   c.Query("category"),
		Difficulty: c.Query("difficulty"),
		Offset:     offset,
		Limit:      limit,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, tests, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// GetByID handles GET /api/tests/:id
// @Summary Get a test with its questions
// @Description correctIndex is only included for viewers who can edit the test
// @Tags tests
// @Produce json
// @Param id path string true "Test ID"
// @Success 200 {object} APIResponse{data=service.TestDetail}
// @Failure 403 {object} ErrorBody
// @Failure 404 {object} ErrorBody
// @Router /tests/{id} [get]
func (h *TestHandler) GetByID(c *gin.Context) {
	id, ok := parseTestID(c)
	if !ok {
		return
	}

	detail, err := h.testService.Get(c.Request.Context(), middleware.GetViewer(c), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, detail)
}

// Update handles PATCH /api/tests/:id
// @Summary Update test details
// @Tags tests
// @Accept json
// @Produce json
// @Param id path string true "Test ID"
// @Param body body UpdateTestRequest true "Fields to change"
// @Success 200 {object} APIResponse{data=service.TestDetail}
// @Failure 400 {object} ErrorBody
// @Failure 403 {object} ErrorBody
// @Failure 404 {object} ErrorBody
// @Security BearerAuth
// @Router /tests/{id} [patch]
func (h *TestHandler) Update(c *gin.Context) {
	id, ok := parseTestID(c)
	if !ok {
		return
	}

	var input service.UpdateTestInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_INPUT", "invalid request body")
		return
	}

	detail, err := h.testService.Update(c.Request.Context(), middleware.GetViewer(c), id, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, detail)
}

// Delete handles DELETE /api/tests/:id
// @Summary Delete a test
// @Tags tests
// @Produce json
// @Param id path string true "Test ID"
// @Success 200 {object} APIResponse{data=MessageResponse}
// @Failure 403 {object} ErrorBody
// @Failure 404 {object} ErrorBody
// @Security BearerAuth
// @Router /tests/{id} [delete]
func (h *TestHandler) Delete(c *gin.Context) {
	id, ok := parseTestID(c)
	if !ok {
		return
	}

	if err := h.testService.Delete(c.Request.Context(), middleware.GetViewer(c), id); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, MessageResponse{Message: "test deleted"})
}

// Submit handles POST /api/tests/:id/submissions
// @Summary Submit answers for grading
// @Description One answer index per question; -1 marks an unanswered question
// @Tags tests
// @Accept json
// @Produce json
// @Param id path string true "Test ID"
// @Param body body SubmitAnswersRequest true "Answers"
// @Success 200 {object} APIResponse{data=domain.GradeResult}
// @Failure 400 {object} ErrorBody
// @Failure 403 {object} ErrorBody
// @Failure 404 {object} ErrorBody
// @Router /tests/{id}/submissions [post]
func (h *TestHandler) Submit(c *gin.Context) {
	id, ok := parseTestID(c)
	if !ok {
		return
	}

	var req SubmitAnswersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_INPUT", "answers is required")
		return
	}

	result, err := h.testService.Submit(c.Request.Context(), middleware.GetViewer(c), id, req.Answers)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, result)
}

// Export handles GET /api/tests/:id/export
// @Summary Export a test's questions
// @Tags tests
// @Produce text/csv
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param id path string true "Test ID"
// @Param format query string false "csv or xlsx" default(csv)
// @Success 200 {file} binary
// @Failure 400 {object} ErrorBody
// @Failure 403 {object} ErrorBody
// @Security BearerAuth
// @Router /tests/{id}/export [get]
func (h *TestHandler) Export(c *gin.Context) {
	id, ok := parseTestID(c)
	if !ok {
		return
	}

	format := domain.ExportFormat(strings.ToLower(c.DefaultQuery("format", string(domain.ExportFormatCSV))))
	file, err := h.testService.Export(c.Request.Context(), middleware.GetViewer(c), id, format)
	if err != nil {
		HandleError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+file.Filename+`"`)
	c.Data(http.StatusOK, file.ContentType, file.Data)
}

// Categories handles GET /api/categories
// @Summary List categories of visible tests
// @Tags tests
// @Produce json
// @Success 200 {object} APIResponse{data=[]string}
// @Router /categories [get]
func (h *TestHandler) Categories(c *gin.Context) {
	cats, err := h.testService.Categories(c.Request.Context(), middleware.GetViewer(c))
	if err != nil {
		HandleError(c, err)
		return
	}
	if cats == nil {
		cats = []string{}
	}
	RespondOK(c, cats)
}

func parseTestID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid test ID")
		return uuid.Nil, false
	}
	return id, true
}

func parsePagination(c *gin.Context) (offset, limit int) {
	offset, _ = strconv.Atoi(c.DefaultQuery("offset", "0"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "20"))
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	return offset, limit
}
