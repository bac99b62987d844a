package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/bookkeep/payables_app/internal/apperrors"
	portssvc "github.com/bookkeep/payables_app/internal/core/ports/services"
	"github.com/bookkeep/payables_app/internal/core/services"
	"github.com/bookkeep/payables_app/internal/dto"
	"github.com/bookkeep/payables_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// journalHandler handles HTTP requests related to journal entries.
type journalHandler struct {
	journalService portssvc.JournalSvcFacade
}

func newJournalHandler(js portssvc.JournalSvcFacade) *journalHandler {
	return &journalHandler{journalService: js}
}

// registerJournalRoutes registers routes related to journal entries.
func registerJournalRoutes(rg *gin.RouterGroup, journalService portssvc.JournalSvcFacade) {
	h := newJournalHandler(journalService)

	journals := rg.Group("/journals")
	{
		journals.POST("", h.createEntry)
		journals.POST("/validate", h.validateDraft)
		journals.GET("", h.listEntries)
		journals.GET("/:entryID", h.getEntry)
		journals.PUT("/:entryID", h.updateEntry)
		journals.DELETE("/:entryID", h.deleteEntry)
	}
}

// respondEntryValidation renders every field-scoped violation of a draft so
// clients can show each message next to the offending input.
func respondEntryValidation(c *gin.Context, ve *services.EntryValidationError) {
	c.JSON(http.StatusBadRequest, gin.H{
		"error":  "Journal entry failed validation",
		"fields": ve.Errors.Fields(),
	})
}

// createEntry godoc
// @Summary Create a journal entry
// @Description Validates and persists a balanced double-entry journal entry; the entry number is assigned on save
// @Tags journals
// @Accept json
// @Produce json
// @Param entry body dto.CreateJournalEntryRequest true "Entry draft"
// @Success 201 {object} dto.JournalEntryResponse
// @Failure 400 {object} map[string]interface{} "Validation failures keyed by field"
// @Failure 500 {object} map[string]string "Failed to create journal entry"
// @Router /journals [post]
func (h *journalHandler) createEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateJournalEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateEntry", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actorID, _ := middleware.GetUserIDFromContext(c)

	entry, err := h.journalService.CreateEntry(c.Request.Context(), req, actorID)
	if err != nil {
		var ve *services.EntryValidationError
		if errors.As(err, &ve) {
			respondEntryValidation(c, ve)
		} else if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create journal entry", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create journal entry"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToJournalEntryResponse(entry))
}

// validateDraft godoc
// @Summary Validate a journal entry draft
// @Description Runs the entry validator without persisting anything, returning every violation keyed by field; meant for live feedback while editing
// @Tags journals
// @Accept json
// @Produce json
// @Param entry body dto.CreateJournalEntryRequest true "Entry draft"
// @Success 200 {object} map[string]interface{} "valid flag plus field errors when invalid"
// @Failure 400 {object} map[string]string "Invalid request format"
// @Router /journals/validate [post]
func (h *journalHandler) validateDraft(c *gin.Context) {
	var req dto.CreateJournalEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	errs := h.journalService.ValidateDraft(req)
	if len(errs) > 0 {
		c.JSON(http.StatusOK, gin.H{"valid": false, "fields": errs.Fields()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"valid": true})
}

// getEntry godoc
// @Summary Get a journal entry by ID
// @Description Retrieves a journal entry with all its lines
// @Tags journals
// @Produce json
// @Param entryID path string true "Entry ID"
// @Success 200 {object} dto.JournalEntryResponse
// @Failure 404 {object} map[string]string "Entry not found"
// @Failure 500 {object} map[string]string "Failed to retrieve entry"
// @Router /journals/{entryID} [get]
func (h *journalHandler) getEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entryID := c.Param("entryID")

	entry, err := h.journalService.GetEntryByID(c.Request.Context(), entryID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Entry not found"})
		} else {
			logger.Error("Failed to get journal entry", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve entry"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToJournalEntryResponse(entry))
}

// listEntries godoc
// @Summary List journal entries
// @Description Retrieves a paginated list of journal entries with lines
// @Tags journals
// @Produce json
// @Param limit query int false "Limit number of results" default(50)
// @Param offset query int false "Offset for pagination" default(0)
// @Success 200 {array} dto.JournalEntryResponse
// @Failure 500 {object} map[string]string "Failed to list entries"
// @Router /journals [get]
func (h *journalHandler) listEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	entries, err := h.journalService.ListEntries(c.Request.Context(), params)
	if err != nil {
		logger.Error("Failed to list journal entries", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list entries"})
		return
	}

	c.JSON(http.StatusOK, dto.ToJournalEntryResponses(entries))
}

// updateEntry godoc
// @Summary Update a journal entry
// @Description Re-validates the draft and replaces the stored entry wholesale, lines included
// @Tags journals
// @Accept json
// @Produce json
// @Param entryID path string true "Entry ID"
// @Param entry body dto.UpdateJournalEntryRequest true "Replacement draft"
// @Success 200 {object} dto.JournalEntryResponse
// @Failure 400 {object} map[string]interface{} "Validation failures keyed by field"
// @Failure 404 {object} map[string]string "Entry not found"
// @Failure 500 {object} map[string]string "Failed to update entry"
// @Router /journals/{entryID} [put]
func (h *journalHandler) updateEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entryID := c.Param("entryID")

	var req dto.UpdateJournalEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actorID, _ := middleware.GetUserIDFromContext(c)

	entry, err := h.journalService.UpdateEntry(c.Request.Context(), entryID, req, actorID)
	if err != nil {
		var ve *services.EntryValidationError
		if errors.As(err, &ve) {
			respondEntryValidation(c, ve)
		} else if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Entry not found"})
		} else {
			logger.Error("Failed to update journal entry", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update entry"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToJournalEntryResponse(entry))
}

// deleteEntry godoc
// @Summary Delete a journal entry
// @Description Deletes a journal entry and its lines; requires the configured authorization code
// @Tags journals
// @Produce json
// @Param entryID path string true "Entry ID"
// @Param X-Delete-Code header string false "Delete authorization code"
// @Success 204 "No Content"
// @Failure 403 {object} map[string]string "Authorization code missing or invalid"
// @Failure 404 {object} map[string]string "Entry not found"
// @Failure 500 {object} map[string]string "Failed to delete entry"
// @Router /journals/{entryID} [delete]
func (h *journalHandler) deleteEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entryID := c.Param("entryID")
	authCode := c.GetHeader(deleteAuthHeader)

	actorID, _ := middleware.GetUserIDFromContext(c)

	err := h.journalService.DeleteEntry(c.Request.Context(), entryID, authCode, actorID)
	if err != nil {
		if errors.Is(err, apperrors.ErrForbidden) {
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Entry not found"})
		} else {
			logger.Error("Failed to delete journal entry", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete entry"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
