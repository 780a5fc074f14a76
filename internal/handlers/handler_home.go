package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/daily_journal_app/internal/core/ports/services"
	"github.com/SscSPs/daily_journal_app/internal/dto"
	"github.com/SscSPs/daily_journal_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// homeHandler serves the landing view.
type homeHandler struct {
	journal portssvc.JournalAppSvcFacade
}

func registerHomeRoutes(r *gin.Engine, journal portssvc.JournalAppSvcFacade) {
	h := &homeHandler{journal: journal}
	r.GET("/", h.getHome)
	r.GET("/health", getHealth)
}

// getHome godoc
// @Summary Home view
// @Description The current user's most recent entries, or an anonymous landing payload.
// @Tags root
// @Produce json
// @Success 200 {object} dto.HomeResponse
// @Failure 500 {object} ErrorResponse
// @Router / [get]
func (h *homeHandler) getHome(c *gin.Context) {
	who := middleware.GetIdentityFromContext(c)
	if !who.IsAuthenticated() {
		c.JSON(http.StatusOK, dto.HomeResponse{Message: "Welcome! Log in or register to start your journal."})
		return
	}

	entries, err := h.journal.RecentEntries(c.Request.Context(), who)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.HomeResponse{
		Authenticated: true,
		Message:       "Your most recent entries.",
		Entries:       dto.ToEntryResponses(entries),
	})
}

// getHealth godoc
// @Summary Liveness check
// @Tags root
// @Produce plain
// @Success 200 {string} string "OK"
// @Router /health [get]
func getHealth(c *gin.Context) {
	c.String(http.StatusOK, "OK")
}
