package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"checklist_api/internal/models"
	"checklist_api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// Send/receive timing configuration and message size limits.
const (
	writeWait        = 10 * time.Second
	pongWait         = 60 * time.Second
	pingPeriod       = (pongWait * 9) / 10
	maxMsgSize       = 1 << 12 // 4 KB
	defaultInterval  = 1 * time.Second
	maxInterval      = 10 * time.Second
	maxIntervalMilli = 10_000 // 10s in ms

	envelopeActivity = "activity"
)

type wsEnvelope struct {
	Type  string      `json:"type"`
	Data  interface{} `json:"data,omitempty"`
	Error string      `json:"error,omitempty"`
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// activityCursor remembers how far the stream has read. Events sharing the
// newest timestamp are tracked by id because the lower bound is inclusive.
type activityCursor struct {
	since time.Time
	seen  map[string]struct{}
}

func newActivityCursor(since time.Time) *activityCursor {
	return &activityCursor{since: since.UTC(), seen: map[string]struct{}{}}
}

// advance drops already delivered events and moves the cursor past the rest.
func (cur *activityCursor) advance(events []models.ActivityEvent) []models.ActivityEvent {
	fresh := make([]models.ActivityEvent, 0, len(events))
	for _, e := range events {
		if _, ok := cur.seen[e.EventID]; ok {
			continue
		}
		fresh = append(fresh, e)

		at := e.OccurredAt.UTC()
		if at.After(cur.since) {
			cur.since = at
			cur.seen = map[string]struct{}{}
		}
		if at.Equal(cur.since) {
			cur.seen[e.EventID] = struct{}{}
		}
	}
	return fresh
}

// @Summary      Activity stream
// @Description  WebSocket upgrade. Sends {type:"activity", data:[...]} once on connect and then whenever new events are recorded.
// @Tags         activity
// @Param        interval     query  string  false  "Poll period, e.g. 500ms (max 10s)"
// @Param        interval_ms  query  int     false  "Poll period in milliseconds"
// @Param        since        query  string  false  "Replay events from this time (RFC3339, 'YYYY-MM-DD HH:MM:SS', or 'YYYY-MM-DD')"
// @Success      101
// @Failure      401  {object}  MessageResponse
// @Failure      403  {object}  MessageResponse
// @Router       /ws [get]
// @Security     BearerAuth
func (h *Handler) wsConnect(c *gin.Context) {
	interval := h.parseInterval(c)
	cursor := newActivityCursor(time.Now())
	if qs := c.Query("since"); qs != "" {
		if t, err := parseQueryTime(qs); err == nil {
			cursor = newActivityCursor(t)
		}
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		if h.log != nil {
			h.log.Errorw("ws_upgrade_failed", "err", err)
		}
		return
	}
	defer func() { _ = conn.Close() }()

	conn.SetReadLimit(maxMsgSize)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	// The reader handles control frames and detects disconnects.
	done := make(chan struct{})
	go h.startReader(conn, done)

	ticker := time.NewTicker(interval)
	ping := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		ping.Stop()
	}()

	if err := h.sendActivity(c.Request.Context(), conn, cursor, true); err != nil {
		if h.log != nil {
			h.log.Infow("ws_write_failed_initial", "err", err)
		}
		return
	}

	for {
		select {
		case <-done:
			return
		case <-c.Request.Context().Done():
			return
		case <-ping.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				if h.log != nil {
					h.log.Infow("ws_ping_failed", "err", err)
				}
				return
			}
		case <-ticker.C:
			if err := h.sendActivity(c.Request.Context(), conn, cursor, false); err != nil {
				if h.log != nil {
					h.log.Infow("ws_write_failed", "err", err)
				}
				return
			}
		}
	}
}

// parseInterval reads ?interval=2s or ?interval_ms=2000 with bounds.
func (h *Handler) parseInterval(c *gin.Context) time.Duration {
	if s := c.Query("interval"); s != "" {
		if d, err := time.ParseDuration(s); err == nil && d > 0 && d <= maxInterval {
			return d
		}
	}

	if ms := c.Query("interval_ms"); ms != "" {
		if v, err := strconv.Atoi(ms); err == nil && v > 0 && v <= maxIntervalMilli {
			return time.Duration(v) * time.Millisecond
		}
	}

	return defaultInterval
}

// startReader drains incoming messages so control frames are processed.
func (h *Handler) startReader(conn *websocket.Conn, done chan<- struct{}) {
	defer close(done)
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if h.log != nil {
				h.log.Infow("ws_read_closed", "err", err)
			}
			return
		}
	}
}

// sendActivity writes events newer than the cursor. Empty polls are skipped
// unless force is set.
func (h *Handler) sendActivity(ctx context.Context, conn *websocket.Conn, cursor *activityCursor, force bool) error {
	events, err := h.services.ActivityLog.List(ctx, service.ActivityFilter{From: cursor.since})
	if err != nil {
		if h.log != nil {
			h.log.Errorw("ws_activity_list_failed", "err", err)
		}
		return err
	}
	fresh := cursor.advance(events)
	if len(fresh) == 0 && !force {
		return nil
	}
	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	return conn.WriteJSON(wsEnvelope{Type: envelopeActivity, Data: fresh})
}
