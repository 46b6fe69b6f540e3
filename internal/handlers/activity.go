package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"checklist_api/internal/models"
	"checklist_api/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	msgFromInvalid   = "invalid 'from' time; use RFC3339, 'YYYY-MM-DD HH:MM:SS' or YYYY-MM-DD"
	msgToInvalid     = "invalid 'to' time; use RFC3339, 'YYYY-MM-DD HH:MM:SS' or YYYY-MM-DD"
	msgRangeInvalid  = "'from' must be <= 'to'"
	msgActivityLoad  = "failed to load activity"
	layoutDateTime   = "2006-01-02 15:04:05"
	layoutDate       = "2006-01-02"
	endOfDayInterval = 24*time.Hour - time.Nanosecond
)

// ActivityResponse is the body of GET /activity.
type ActivityResponse struct {
	Count  int                    `json:"count"`
	Events []models.ActivityEvent `json:"events"`
}

// isDateOnly reports whether the query string carries no time component.
func isDateOnly(s string) bool {
	return !strings.ContainsAny(s, "T ")
}

func parseQueryTime(s string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, layoutDateTime, layoutDate} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid time format %q", s)
}

// @Summary      List activity
// @Description  Successful mutations, oldest first. A date-only 'to' covers the whole day.
// @Tags         activity
// @Produce      json
// @Param        from  query     string  false  "Start of range (RFC3339, 'YYYY-MM-DD HH:MM:SS', or 'YYYY-MM-DD')"  example(2025-08-01)
// @Param        to    query     string  false  "End of range, inclusive"  example(2025-08-31)
// @Param        type  query     string  false  "Event type"  Enums(USER_REGISTERED,CHECKLIST_CREATED,CHECKLIST_DELETED,ITEM_CREATED,ITEM_RENAMED,ITEM_DELETED)
// @Success      200   {object}  ActivityResponse
// @Failure      400   {object}  MessageResponse
// @Failure      401   {object}  MessageResponse
// @Failure      403   {object}  MessageResponse
// @Failure      500   {object}  MessageResponse
// @Router       /activity [get]
// @Security     BearerAuth
func (h *Handler) listActivity(c *gin.Context) {
	var (
		filter = service.ActivityFilter{Type: c.Query("type")}
		err    error
	)

	if qs := c.Query("from"); qs != "" {
		if filter.From, err = parseQueryTime(qs); err != nil {
			respondMessage(c, http.StatusBadRequest, msgFromInvalid)
			return
		}
	}
	if qs := c.Query("to"); qs != "" {
		if filter.To, err = parseQueryTime(qs); err != nil {
			respondMessage(c, http.StatusBadRequest, msgToInvalid)
			return
		}
		if isDateOnly(qs) {
			filter.To = filter.To.Add(endOfDayInterval)
		}
	}

	events, err := h.services.ActivityLog.List(c.Request.Context(), filter)
	if errors.Is(err, service.ErrInvalidTimeRange) {
		respondMessage(c, http.StatusBadRequest, msgRangeInvalid)
		return
	}
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, msgActivityLoad, "activity_list_failed", err,
			"from", filter.From, "to", filter.To, "type", filter.Type)
		return
	}
	if events == nil {
		events = []models.ActivityEvent{}
	}
	c.JSON(http.StatusOK, ActivityResponse{Count: len(events), Events: events})
}
