package handlers

import (
	"errors"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"

	"github.com/SscSPs/daily_journal_app/internal/apperrors"
	"github.com/SscSPs/daily_journal_app/internal/core/domain"
	portssvc "github.com/SscSPs/daily_journal_app/internal/core/ports/services"
	"github.com/SscSPs/daily_journal_app/internal/dto"
	"github.com/SscSPs/daily_journal_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

var errAttachmentTooLarge = errors.New("attachment too large")

// entryHandler handles HTTP requests related to journal entries.
type entryHandler struct {
	journal        portssvc.JournalAppSvcFacade
	maxUploadBytes int64
}

func newEntryHandler(journal portssvc.JournalAppSvcFacade, maxUploadBytes int64) *entryHandler {
	return &entryHandler{
		journal:        journal,
		maxUploadBytes: maxUploadBytes,
	}
}

// registerEntryRoutes registers all entry-related routes.
func registerEntryRoutes(r *gin.Engine, journal portssvc.JournalAppSvcFacade, maxUploadBytes int64) {
	h := newEntryHandler(journal, maxUploadBytes)

	entries := r.Group("/entries")
	{
		entries.POST("", h.createEntry)
		entries.GET("", h.listEntries)
		entries.GET("/:entryID", h.getEntry)
	}
}

// createEntry godoc
// @Summary Create a journal entry
// @Description Creates an entry owned by the current user, with an optional image.
// @Tags entries
// @Accept multipart/form-data
// @Produce json
// @Param title formData string true "Title"
// @Param content formData string true "Content"
// @Param location formData string false "Location"
// @Param mood formData string false "Mood"
// @Param image formData file false "Image attachment"
// @Success 201 {object} dto.CreateEntryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 413 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security SessionCookie
// @Router /entries [post]
func (h *entryHandler) createEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	who := middleware.GetIdentityFromContext(c)
	if !who.IsAuthenticated() {
		respondError(c, apperrors.ErrUnauthenticated)
		return
	}

	if h.maxUploadBytes > 0 {
		// Room for the text fields on top of the file itself.
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadBytes+1<<20)
	}

	var req dto.CreateEntryRequest
	if err := c.ShouldBind(&req); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			c.JSON(http.StatusRequestEntityTooLarge, ErrorResponse{Error: "The attachment is too large."})
			return
		}
		logger.Debug("Failed to bind entry form", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Some required fields are missing or invalid."})
		return
	}

	attachment, err := h.readAttachment(c)
	if err != nil {
		if errors.Is(err, errAttachmentTooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, ErrorResponse{Error: "The attachment is too large."})
			return
		}
		logger.Warn("Failed to read attachment", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "The attachment could not be read."})
		return
	}

	entry, err := h.journal.AddEntry(c.Request.Context(), who, req, attachment)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.CreateEntryResponse{
		Entry:    dto.ToEntryResponse(entry),
		Message:  "Your entry has been added!",
		Redirect: entriesPath,
	})
}

// readAttachment returns nil when no image was sent.
func (h *entryHandler) readAttachment(c *gin.Context) (*domain.Attachment, error) {
	header, err := c.FormFile("image")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}
		return nil, err
	}
	if h.maxUploadBytes > 0 && header.Size > h.maxUploadBytes {
		return nil, errAttachmentTooLarge
	}

	content, err := readFormFile(header)
	if err != nil {
		return nil, err
	}
	return &domain.Attachment{OriginalName: header.Filename, Content: content}, nil
}

func readFormFile(header *multipart.FileHeader) ([]byte, error) {
	file, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return io.ReadAll(file)
}

// listEntries godoc
// @Summary List own entries
// @Description Returns every entry of the current user, most recent first.
// @Tags entries
// @Produce json
// @Success 200 {object} dto.ListEntriesResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security SessionCookie
// @Router /entries [get]
func (h *entryHandler) listEntries(c *gin.Context) {
	entries, err := h.journal.ListOwnEntries(c.Request.Context(), middleware.GetIdentityFromContext(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ListEntriesResponse{Entries: dto.ToEntryResponses(entries)})
}

// getEntry godoc
// @Summary Get an entry
// @Description Returns a single entry. Only its owner may read it.
// @Tags entries
// @Produce json
// @Param entryID path string true "Entry ID"
// @Success 200 {object} dto.EntryResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security SessionCookie
// @Router /entries/{entryID} [get]
func (h *entryHandler) getEntry(c *gin.Context) {
	entry, err := h.journal.ViewEntry(c.Request.Context(), middleware.GetIdentityFromContext(c), c.Param("entryID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToEntryResponse(entry))
}
