package handlers

import (
	"fmt"
	"io"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/resume-matcher/internal/logging"
	"alfredoptarigan/resume-matcher/internal/models"
	"alfredoptarigan/resume-matcher/internal/repositories"
	"alfredoptarigan/resume-matcher/internal/services"
)

const (
	MsgUnsupportedFile = "Unsupported file"

	excerptLength = 200
)

type AnalyzeHandler struct {
	analyzer    services.AnalyzerService
	history     repositories.AnalysisRepository
	maxFileSize int64
	logger      *logging.Logger
}

// NewAnalyzeHandler builds the POST /analyze handler. history may be nil, in
// which case outcomes are not recorded.
func NewAnalyzeHandler(
	analyzer services.AnalyzerService,
	history repositories.AnalysisRepository,
	maxFileSize int64,
	logger *logging.Logger,
) *AnalyzeHandler {
	return &AnalyzeHandler{
		analyzer:    analyzer,
		history:     history,
		maxFileSize: maxFileSize,
		logger:      logger.With("handler", "analyze"),
	}
}

// HandleAnalyze handles POST /analyze. Analysis failures are reported with a
// 200 status and an error field; malformed requests get a 400.
func (h *AnalyzeHandler) HandleAnalyze(c *fiber.Ctx) error {
	resumeFile, err := c.FormFile("resume")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "resume file is required",
		})
	}

	jobDescription := strings.TrimSpace(c.FormValue("job_description"))
	if jobDescription == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "job_description is required",
		})
	}

	if resumeFile.Size > h.maxFileSize {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("Resume file too large. Max size: %d bytes", h.maxFileSize),
		})
	}

	file, err := resumeFile.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "failed to read resume file",
		})
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "failed to read resume file",
		})
	}

	jdExcerpt := excerpt(jobDescription)

	if !mimetype.Detect(data).Is(models.PDFMediaType) {
		h.recordFailure(resumeFile.Filename, resumeFile.Size, jdExcerpt, MsgUnsupportedFile)
		return c.JSON(fiber.Map{"error": MsgUnsupportedFile})
	}

	result, err := h.analyzer.Analyze(c.UserContext(), data, jobDescription)
	if err != nil {
		message := services.FailureMessage(err)
		h.logger.Warn("analysis failed", "resume", resumeFile.Filename, "err", err)
		h.recordFailure(resumeFile.Filename, resumeFile.Size, jdExcerpt, message)
		return c.JSON(fiber.Map{"error": message})
	}

	h.logger.Info("analysis completed",
		"resume", resumeFile.Filename,
		"overall_match", result.OverallMatch,
	)
	h.record(models.NewSucceededRecord(resumeFile.Filename, resumeFile.Size, jdExcerpt, result))

	return c.JSON(models.AnalyzeResponse{AnalysisResult: *result})
}

func (h *AnalyzeHandler) recordFailure(name string, size int64, excerpt, message string) {
	h.record(models.NewFailedRecord(name, size, excerpt, message))
}

func (h *AnalyzeHandler) record(record *models.AnalysisRecord) {
	if h.history == nil {
		return
	}
	if err := h.history.Create(record); err != nil {
		h.logger.Error("failed to store analysis history", "id", record.ID, "err", err)
	}
}

func excerpt(text string) string {
	runes := []rune(text)
	if len(runes) <= excerptLength {
		return text
	}
	return string(runes[:excerptLength]) + "..."
}
