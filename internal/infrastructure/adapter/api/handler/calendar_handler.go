package handler

import (
	"context"
	"net/http"

	"github.com/Numerinico/businesscalendar/internal/domain/entity"
	domainerr "github.com/Numerinico/businesscalendar/internal/domain/error"
	coreport "github.com/Numerinico/businesscalendar/internal/domain/port/core"
	"github.com/Numerinico/businesscalendar/internal/domain/port/usecase"
	"github.com/Numerinico/businesscalendar/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// CalendarHandler handles calendar management HTTP requests
type CalendarHandler struct {
	calendarUseCase usecase.CalendarUseCase
	logger          coreport.Logger
}

// NewCalendarHandler creates a new calendar handler instance
func NewCalendarHandler(
	calendarUseCase usecase.CalendarUseCase,
	logger coreport.Logger,
) *CalendarHandler {
	return &CalendarHandler{
		calendarUseCase: calendarUseCase,
		logger:          logger,
	}
}

// respondError writes a standardized error response
func (h *CalendarHandler) respondError(c *gin.Context, err error, operation string) {
	h.logger.Error("Error during "+operation, map[string]any{
		"path":  c.Request.URL.Path,
		"error": err.Error(),
	})

	c.JSON(statusForError(err), dto.ErrorResponse{
		Code:    domainerr.ErrorCode(err),
		Message: err.Error(),
	})
}

// CreateCalendar handles the POST /calendar endpoint
func (h *CalendarHandler) CreateCalendar(c *gin.Context) {
	var req dto.CalendarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid calendar payload",
		})
		return
	}

	calendar, err := dtoToCalendar(req)
	if err != nil {
		h.respondError(c, err, "parsing calendar")
		return
	}

	if err := h.calendarUseCase.CreateCalendar(c.Request.Context(), req.Name, calendar); err != nil {
		h.respondError(c, err, "creating calendar")
		return
	}

	c.JSON(http.StatusCreated, calendarToDTO(req.Name, calendar))
}

// GetCalendar handles the GET /calendar/:name endpoint
func (h *CalendarHandler) GetCalendar(c *gin.Context) {
	name := c.Param("name")

	calendar, err := h.calendarUseCase.GetCalendar(c.Request.Context(), name)
	if err != nil {
		h.respondError(c, err, "loading calendar")
		return
	}

	c.JSON(http.StatusOK, calendarToDTO(name, calendar))
}

// ListCalendars handles the GET /calendar endpoint
func (h *CalendarHandler) ListCalendars(c *gin.Context) {
	names, err := h.calendarUseCase.ListCalendars(c.Request.Context())
	if err != nil {
		h.respondError(c, err, "listing calendars")
		return
	}

	c.JSON(http.StatusOK, dto.CalendarListResponse{Calendars: names})
}

// DeleteCalendar handles the DELETE /calendar/:name endpoint
func (h *CalendarHandler) DeleteCalendar(c *gin.Context) {
	name := c.Param("name")

	if err := h.calendarUseCase.DeleteCalendar(c.Request.Context(), name); err != nil {
		h.respondError(c, err, "deleting calendar")
		return
	}

	c.Status(http.StatusNoContent)
}

// PutBusinessDay handles the PUT /calendar/:name/day endpoint
func (h *CalendarHandler) PutBusinessDay(c *gin.Context) {
	name := c.Param("name")

	var req dto.BusinessDayDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid business day payload",
		})
		return
	}

	day, err := dtoToBusinessDay(req)
	if err != nil {
		h.respondError(c, err, "parsing business day")
		return
	}

	if err := h.calendarUseCase.PutBusinessDay(c.Request.Context(), name, day); err != nil {
		h.respondError(c, err, "storing business day")
		return
	}

	c.JSON(http.StatusOK, businessDayToDTO(day))
}

// RemoveBusinessDay handles the DELETE /calendar/:name/day/:weekday endpoint
func (h *CalendarHandler) RemoveBusinessDay(c *gin.Context) {
	name := c.Param("name")

	weekday, err := parseWeekday(c.Param("weekday"))
	if err != nil {
		h.respondError(c, err, "parsing weekday")
		return
	}

	if err := h.calendarUseCase.RemoveBusinessDay(c.Request.Context(), name, weekday); err != nil {
		h.respondError(c, err, "removing business day")
		return
	}

	c.Status(http.StatusNoContent)
}

// PutHoliday handles the PUT /calendar/:name/holiday endpoint
func (h *CalendarHandler) PutHoliday(c *gin.Context) {
	h.changeHoliday(c, h.calendarUseCase.AddHoliday, "adding holiday")
}

// RemoveHoliday handles the DELETE /calendar/:name/holiday endpoint
func (h *CalendarHandler) RemoveHoliday(c *gin.Context) {
	h.changeHoliday(c, h.calendarUseCase.RemoveHoliday, "removing holiday")
}

func (h *CalendarHandler) changeHoliday(
	c *gin.Context,
	change func(ctx context.Context, name string, date entity.Date) (bool, error),
	operation string,
) {
	name := c.Param("name")

	var req dto.HolidayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid holiday payload",
		})
		return
	}

	date, err := entity.ParseDate(req.Date, apiDateLayout)
	if err != nil {
		h.respondError(c, err, operation)
		return
	}

	changed, err := change(c.Request.Context(), name, date)
	if err != nil {
		h.respondError(c, err, operation)
		return
	}

	c.JSON(http.StatusOK, dto.HolidayResponse{
		Calendar: name,
		Date:     req.Date,
		Changed:  changed,
	})
}
