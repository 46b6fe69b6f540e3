package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"checklist_api/internal/models"
	"checklist_api/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	msgChecklistCreated    = "Checklist created successfully"
	msgChecklistIDNotFound = "checklistId tidak ditemukan"
	fmtChecklistDeleted    = "Checklist with ID %s deleted successfully"
)

type nameInput struct {
	Name any `json:"name"`
}

// NameRequest documents the checklist and item payload.
type NameRequest struct {
	Name string `json:"name" example:"milk"`
}

// @Summary      List checklists
// @Tags         checklists
// @Produce      json
// @Success      200  {array}   models.Checklist
// @Failure      401  {object}  MessageResponse
// @Failure      403  {object}  MessageResponse
// @Failure      500  {object}  MessageResponse
// @Router       /checklists [get]
// @Security     BearerAuth
func (h *Handler) listChecklists(c *gin.Context) {
	list, err := h.services.Checklists.List(c.Request.Context())
	if err != nil {
		h.internalError(c, "checklist_list_failed", err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// @Summary      Create checklist
// @Tags         checklists
// @Accept       json
// @Produce      json
// @Param        body  body      NameRequest  true  "Checklist"
// @Success      201   {object}  MessageResponse
// @Failure      400   {object}  MessageResponse
// @Failure      401   {object}  MessageResponse
// @Failure      403   {object}  MessageResponse
// @Failure      500   {object}  MessageResponse
// @Router       /checklists [post]
// @Security     BearerAuth
func (h *Handler) createChecklist(c *gin.Context) {
	var input nameInput
	h.bindBody(c, &input)

	name, err := requireText(input.Name, msgChecklistName)
	if err != nil {
		respondMessage(c, http.StatusBadRequest, rejectionMessage(err))
		return
	}

	id, err := h.services.Checklists.Create(c.Request.Context(), name)
	if err != nil {
		h.internalError(c, "checklist_create_failed", err)
		return
	}

	h.recordActivity(c, models.ActivityChecklistCreated, fmt.Sprintf("checklist %q created", name),
		map[string]any{"checklist_id": id})
	respondMessage(c, http.StatusCreated, msgChecklistCreated)
}

// @Summary      Delete checklist
// @Description  Items of the checklist are removed with it.
// @Tags         checklists
// @Produce      json
// @Param        id   path      int  true  "Checklist ID"
// @Success      200  {object}  MessageResponse
// @Failure      401  {object}  MessageResponse
// @Failure      403  {object}  MessageResponse
// @Failure      404  {object}  MessageResponse
// @Failure      500  {object}  MessageResponse
// @Router       /checklists/{id} [delete]
// @Security     BearerAuth
func (h *Handler) deleteChecklist(c *gin.Context) {
	raw := c.Param("id")
	id, ok := lookupID(raw)
	if !ok {
		respondMessage(c, http.StatusNotFound, msgChecklistIDNotFound)
		return
	}

	err := h.services.Checklists.Delete(c.Request.Context(), id)
	if errors.Is(err, service.ErrChecklistNotFound) {
		respondMessage(c, http.StatusNotFound, msgChecklistIDNotFound)
		return
	}
	if err != nil {
		h.internalError(c, "checklist_delete_failed", err, "checklist_id", id)
		return
	}

	h.recordActivity(c, models.ActivityChecklistDeleted, fmt.Sprintf("checklist %d deleted", id),
		map[string]any{"checklist_id": id})
	respondMessage(c, http.StatusOK, fmt.Sprintf(fmtChecklistDeleted, raw))
}
