package handler

import (
	"fmt"
	"net/http"
	"time"

	domainerr "github.com/Numerinico/businesscalendar/internal/domain/error"
	coreport "github.com/Numerinico/businesscalendar/internal/domain/port/core"
	"github.com/Numerinico/businesscalendar/internal/domain/port/usecase"
	"github.com/Numerinico/businesscalendar/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// DurationHandler handles open-time query HTTP requests
type DurationHandler struct {
	calendarUseCase usecase.CalendarUseCase
	logger          coreport.Logger
}

// NewDurationHandler creates a new duration handler instance
func NewDurationHandler(
	calendarUseCase usecase.CalendarUseCase,
	logger coreport.Logger,
) *DurationHandler {
	return &DurationHandler{
		calendarUseCase: calendarUseCase,
		logger:          logger,
	}
}

// parseQueryTime reads an RFC 3339 timestamp from a query parameter
func parseQueryTime(c *gin.Context, key string) (time.Time, error) {
	raw := c.Query(key)
	if raw == "" {
		return time.Time{}, fmt.Errorf("%w: missing query parameter %q", domainerr.ErrInvalidRequest, key)
	}

	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q is not an RFC 3339 timestamp", domainerr.ErrInvalidRequest, raw)
	}
	return t, nil
}

func (h *DurationHandler) respondError(c *gin.Context, err error, operation string) {
	h.logger.Error("Error during "+operation, map[string]any{
		"path":  c.Request.URL.Path,
		"error": err.Error(),
	})

	c.JSON(statusForError(err), dto.ErrorResponse{
		Code:    domainerr.ErrorCode(err),
		Message: err.Error(),
	})
}

// Duration handles the GET /calendar/:name/duration endpoint
func (h *DurationHandler) Duration(c *gin.Context) {
	name := c.Param("name")

	start, err := parseQueryTime(c, "start")
	if err != nil {
		h.respondError(c, err, "parsing duration query")
		return
	}
	end, err := parseQueryTime(c, "end")
	if err != nil {
		h.respondError(c, err, "parsing duration query")
		return
	}

	result, err := h.calendarUseCase.Duration(c.Request.Context(), name, start, end)
	if err != nil {
		h.respondError(c, err, "computing duration")
		return
	}

	c.JSON(http.StatusOK, dto.DurationResponse{
		Calendar: result.Calendar,
		Start:    result.Start.Format(time.RFC3339),
		End:      result.End.Format(time.RFC3339),
		Duration: result.Duration.String(),
		Seconds:  int64(result.Duration.Seconds()),
	})
}

// IsWorkingTime handles the GET /calendar/:name/working-time endpoint
func (h *DurationHandler) IsWorkingTime(c *gin.Context) {
	name := c.Param("name")

	at, err := parseQueryTime(c, "at")
	if err != nil {
		h.respondError(c, err, "parsing working-time query")
		return
	}

	result, err := h.calendarUseCase.IsWorkingTime(c.Request.Context(), name, at)
	if err != nil {
		h.respondError(c, err, "checking working time")
		return
	}

	c.JSON(http.StatusOK, dto.WorkingTimeResponse{
		Calendar:    result.Calendar,
		At:          result.At.Format(time.RFC3339),
		WorkingTime: result.WorkingTime,
	})
}
