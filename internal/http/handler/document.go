package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"docqa/internal/service"
)

// uploadResponse is the success body for POST /upload.
type uploadResponse struct {
	Message    string `json:"message"`
	DocumentID string `json:"document_id"`
}

// askRequest is the body for POST /ask.
type askRequest struct {
	DocumentID string `json:"document_id"`
	Query      string `json:"query"`
}

// documentDetail is the body for GET /documents/:id.
// Storage path and extracted content are never exposed.
type documentDetail struct {
	DocumentID string    `json:"document_id"`
	FileName   string    `json:"file_name"`
	UploadedAt time.Time `json:"uploaded_at"`
}

// UploadDocument ingests a multipart file (field name: file) and returns
// the generated document id.
func UploadDocument(docSvc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fh, err := c.FormFile("file")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_REQUIRED", "file is required")
		}

		f, err := fh.Open()
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
		}
		defer f.Close()

		doc, err := docSvc.Ingest(c.UserContext(), f, fh.Filename)
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "PROCESSING_ERROR", "document processing failed")
		}

		return c.JSON(uploadResponse{
			Message:    "Document uploaded and processed successfully",
			DocumentID: doc.ID,
		})
	}
}

// AskQuestion answers a question about a stored document.
func AskQuestion(docSvc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req askRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "BAD_REQUEST", "invalid request body")
		}
		if req.DocumentID == "" {
			return writeError(c, fiber.StatusBadRequest, "BAD_REQUEST", "document_id is required")
		}

		res, err := docSvc.Ask(c.UserContext(), req.DocumentID, req.Query)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrNotFound):
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "document not found")
			case errors.Is(err, service.ErrPromptTooLarge):
				return writeError(c, fiber.StatusUnprocessableEntity, "PROMPT_TOO_LARGE", "document content exceeds the prompt size budget")
			default:
				return writeError(c, fiber.StatusInternalServerError, "PROCESSING_ERROR", "query processing failed")
			}
		}
		return c.JSON(res)
	}
}

// ListDocuments returns (document_id, file_name) pairs for every stored document.
func ListDocuments(docSvc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		infos, err := docSvc.List(c.UserContext())
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(infos)
	}
}

// GetDocument returns a single document's public metadata by id.
func GetDocument(docSvc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}

		doc, err := docSvc.Get(c.UserContext(), id)
		if err != nil {
			if errors.Is(err, service.ErrNotFound) {
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "document not found")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}

		return c.JSON(documentDetail{
			DocumentID: doc.ID,
			FileName:   doc.FileName,
			UploadedAt: doc.CreatedAt,
		})
	}
}
