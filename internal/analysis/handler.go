package analysis

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"skillfit-backend/internal/extract"
	"skillfit-backend/internal/shared/server/respond"
)

// maxUploadBytes caps resume uploads at 5MB.
const maxUploadBytes = 5 << 20

// Handler wires HTTP handlers to the analysis service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches analysis routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/analyze", h.analyze)
	rg.POST("/analyze/upload", h.analyzeUpload)
}

type analyzeRequest struct {
	JDText     string `json:"jdText"`
	ResumeText string `json:"resumeText"`
}

func (h *Handler) analyze(c *gin.Context) {
	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "request body must be JSON with jdText and resumeText", nil)
		return
	}

	report, err := h.Svc.Analyze(c.Request.Context(), req.JDText, req.ResumeText)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmptyInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", "Both Job Description and Resume are required.", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to analyze", nil)
		}
		return
	}

	respond.OK(c, gin.H{"success": true, "data": report})
}

func (h *Handler) analyzeUpload(c *gin.Context) {
	jdText := c.PostForm("jdText")

	fileHeader, err := c.FormFile("resume")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "resume file is required", nil)
		return
	}
	if fileHeader.Size > maxUploadBytes {
		respond.Error(c, http.StatusRequestEntityTooLarge, "file_too_large", "resume file exceeds the 5MB limit", nil)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to read upload", nil)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes))
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to read upload", nil)
		return
	}

	resumeText, err := extract.FromBytes(data, fileHeader.Header.Get("Content-Type"), fileHeader.Filename)
	if err != nil {
		switch {
		case errors.Is(err, extract.ErrUnsupported):
			respond.Error(c, http.StatusUnsupportedMediaType, "unsupported_document", "resume must be a PDF, DOCX or plain text file", nil)
		default:
			respond.Error(c, http.StatusBadRequest, "extract_failed", "could not read text from the resume file", nil)
		}
		return
	}

	report, err := h.Svc.Analyze(c.Request.Context(), jdText, resumeText)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmptyInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", "Both Job Description and Resume are required.", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to analyze", nil)
		}
		return
	}

	respond.OK(c, gin.H{"success": true, "data": report})
}
