package handlers

import (
	"net/http"

	"checklist_api/internal/logger"
	"checklist_api/internal/models"
	"checklist_api/internal/service"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger) *Handler {
	return &Handler{services: services, log: log}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health endpoint
	router.GET("/health", h.health)

	// Auth endpoints
	h.registerAuthRoutes(router)

	// Everything below requires a bearer token
	protected := router.Group("", h.authMiddleware)
	{
		h.registerChecklistRoutes(protected)
		h.registerActivityRoutes(protected)
	}

	return router
}

func (h *Handler) registerAuthRoutes(r *gin.Engine) {
	r.POST("/register", h.register)
	r.POST("/login", h.login)
}

// Path parameters share one name per position (:id, :itemId); gin rejects
// differently named wildcards in the same segment.
func (h *Handler) registerChecklistRoutes(api *gin.RouterGroup) {
	checklists := api.Group("/checklists")
	{
		checklists.GET("", h.listChecklists)
		checklists.POST("", h.createChecklist)
		checklists.DELETE("/:id", h.deleteChecklist)

		checklists.GET("/:id/item", h.listItems)
		checklists.POST("/:id/item", h.createItem)
		checklists.GET("/:id/item/:itemId", h.getItem)
		checklists.PUT("/:id/item/:itemId", h.renameItem)
		checklists.DELETE("/:id/item/:itemId", h.deleteItem)
	}
}

func (h *Handler) registerActivityRoutes(api *gin.RouterGroup) {
	api.GET("/activity", h.listActivity)
	// WebSocket feed of new activity (HTTP upgrade), same port
	api.GET("/ws", h.wsConnect)
}

// MessageResponse is the body of every confirmation and error reply.
type MessageResponse struct {
	Message string `json:"message" example:"Internal server error"`
}

// Centralized error logging and response.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(httpCode, MessageResponse{Message: userMsg})
}

// internalError hides err from the caller and logs it in full.
func (h *Handler) internalError(c *gin.Context, logKey string, err error, kv ...interface{}) {
	h.logAndJSONError(c, http.StatusInternalServerError, msgInternalError, logKey, err, kv...)
}

func respondMessage(c *gin.Context, httpCode int, msg string) {
	c.JSON(httpCode, MessageResponse{Message: msg})
}

// recordActivity appends to the activity log after a successful mutation.
// Failures are logged only; the caller's response is already decided.
func (h *Handler) recordActivity(c *gin.Context, typ, description string, meta map[string]any) {
	if h.services.ActivityLog == nil {
		return
	}
	ev := models.ActivityEvent{
		Type:        typ,
		Username:    c.GetString(ctxUsernameKey),
		Description: description,
		Metadata:    meta,
	}
	if err := h.services.ActivityLog.Record(c.Request.Context(), ev); err != nil && h.log != nil {
		h.log.Warnw("activity_record_failed", "type", typ, "err", err)
	}
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}
