package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"checklist_api/internal/models"
	"checklist_api/internal/service"

	"github.com/gin-gonic/gin"
)

// Item routes answer a missing checklist with slightly different wording
// depending on the operation; clients match on these strings.
const (
	msgChecklistNotFound   = "Checklist not found"
	msgChecklistNotFoundID = "Checklist tidak ditemukan"
	msgItemNotFound        = "Checklist item not found"
	msgItemScopeNotFound   = "checklistId atau itemId tidak ditemukan"
	msgItemCreated         = "Item checklist berhasil dibuat"
	msgItemRenamed         = "Item checklist berhasil diperbarui"
	msgItemDeleted         = "Checklist item deleted successfully"
)

// UpdateResponse is returned by a successful item rename.
type UpdateResponse struct {
	Message string `json:"message" example:"Item checklist berhasil diperbarui"`
	Status  bool   `json:"status" example:"true"`
}

// @Summary      List items of a checklist
// @Tags         items
// @Produce      json
// @Param        id   path      int  true  "Checklist ID"
// @Success      200  {array}   models.ChecklistItem
// @Failure      401  {object}  MessageResponse
// @Failure      403  {object}  MessageResponse
// @Failure      404  {object}  MessageResponse
// @Failure      500  {object}  MessageResponse
// @Router       /checklists/{id}/item [get]
// @Security     BearerAuth
func (h *Handler) listItems(c *gin.Context) {
	checklistID, ok := lookupID(c.Param("id"))
	if !ok {
		respondMessage(c, http.StatusNotFound, msgChecklistNotFound)
		return
	}

	items, err := h.services.Items.List(c.Request.Context(), checklistID)
	if errors.Is(err, service.ErrChecklistNotFound) {
		respondMessage(c, http.StatusNotFound, msgChecklistNotFound)
		return
	}
	if err != nil {
		h.internalError(c, "item_list_failed", err, "checklist_id", checklistID)
		return
	}
	c.JSON(http.StatusOK, items)
}

// @Summary      Get one item
// @Tags         items
// @Produce      json
// @Param        id      path      int  true  "Checklist ID"
// @Param        itemId  path      int  true  "Item ID"
// @Success      200     {object}  models.ChecklistItem
// @Failure      401     {object}  MessageResponse
// @Failure      403     {object}  MessageResponse
// @Failure      404     {object}  MessageResponse
// @Failure      500     {object}  MessageResponse
// @Router       /checklists/{id}/item/{itemId} [get]
// @Security     BearerAuth
func (h *Handler) getItem(c *gin.Context) {
	checklistID, ok := lookupID(c.Param("id"))
	if !ok {
		respondMessage(c, http.StatusNotFound, msgChecklistNotFound)
		return
	}
	itemID, ok := lookupID(c.Param("itemId"))
	if !ok {
		itemID = 0 // store ids start at 1; the checklist check still runs first
	}

	item, err := h.services.Items.Get(c.Request.Context(), checklistID, itemID)
	switch {
	case errors.Is(err, service.ErrChecklistNotFound):
		respondMessage(c, http.StatusNotFound, msgChecklistNotFound)
	case errors.Is(err, service.ErrItemNotFound):
		respondMessage(c, http.StatusNotFound, msgItemNotFound)
	case err != nil:
		h.internalError(c, "item_get_failed", err, "checklist_id", checklistID, "item_id", itemID)
	default:
		c.JSON(http.StatusOK, item)
	}
}

// @Summary      Create item
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        id    path      int          true  "Checklist ID"
// @Param        body  body      NameRequest  true  "Item"
// @Success      201   {object}  MessageResponse
// @Failure      400   {object}  MessageResponse
// @Failure      401   {object}  MessageResponse
// @Failure      403   {object}  MessageResponse
// @Failure      404   {object}  MessageResponse
// @Failure      500   {object}  MessageResponse
// @Router       /checklists/{id}/item [post]
// @Security     BearerAuth
func (h *Handler) createItem(c *gin.Context) {
	var input nameInput
	h.bindBody(c, &input)

	name, err := requireText(input.Name, msgItemName)
	if err != nil {
		respondMessage(c, http.StatusBadRequest, rejectionMessage(err))
		return
	}

	checklistID, ok := lookupID(c.Param("id"))
	if !ok {
		respondMessage(c, http.StatusNotFound, msgChecklistNotFoundID)
		return
	}

	id, err := h.services.Items.Create(c.Request.Context(), checklistID, name)
	if errors.Is(err, service.ErrChecklistNotFound) {
		respondMessage(c, http.StatusNotFound, msgChecklistNotFoundID)
		return
	}
	if err != nil {
		h.internalError(c, "item_create_failed", err, "checklist_id", checklistID)
		return
	}

	h.recordActivity(c, models.ActivityItemCreated, fmt.Sprintf("item %q added to checklist %d", name, checklistID),
		map[string]any{"checklist_id": checklistID, "item_id": id})
	respondMessage(c, http.StatusCreated, msgItemCreated)
}

// parseItemPath validates both path identifiers, checklist first. found is
// false when either number cannot name a row.
func parseItemPath(c *gin.Context) (checklistID, itemID int64, found bool, err error) {
	checklistID, checklistFound, err := requireNumeric(c.Param("id"), msgIDsMustBeNumeric)
	if err != nil {
		return 0, 0, false, err
	}
	itemID, itemFound, err := requireNumeric(c.Param("itemId"), msgIDsMustBeNumeric)
	if err != nil {
		return 0, 0, false, err
	}
	return checklistID, itemID, checklistFound && itemFound, nil
}

// @Summary      Rename item
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        id      path      int          true  "Checklist ID"
// @Param        itemId  path      int          true  "Item ID"
// @Param        body    body      NameRequest  true  "New name"
// @Success      200     {object}  UpdateResponse
// @Failure      400     {object}  MessageResponse
// @Failure      401     {object}  MessageResponse
// @Failure      403     {object}  MessageResponse
// @Failure      404     {object}  MessageResponse
// @Failure      500     {object}  MessageResponse
// @Router       /checklists/{id}/item/{itemId} [put]
// @Security     BearerAuth
func (h *Handler) renameItem(c *gin.Context) {
	checklistID, itemID, found, err := parseItemPath(c)
	if err != nil {
		respondMessage(c, http.StatusBadRequest, rejectionMessage(err))
		return
	}

	var input nameInput
	h.bindBody(c, &input)
	name, err := requireText(input.Name, msgItemName)
	if err != nil {
		respondMessage(c, http.StatusBadRequest, rejectionMessage(err))
		return
	}
	if !found {
		respondMessage(c, http.StatusNotFound, msgItemScopeNotFound)
		return
	}

	err = h.services.Items.Rename(c.Request.Context(), checklistID, itemID, name)
	if errors.Is(err, service.ErrItemNotFound) {
		respondMessage(c, http.StatusNotFound, msgItemScopeNotFound)
		return
	}
	if err != nil {
		h.internalError(c, "item_rename_failed", err, "checklist_id", checklistID, "item_id", itemID)
		return
	}

	h.recordActivity(c, models.ActivityItemRenamed, fmt.Sprintf("item %d renamed to %q", itemID, name),
		map[string]any{"checklist_id": checklistID, "item_id": itemID})
	c.JSON(http.StatusOK, UpdateResponse{Message: msgItemRenamed, Status: true})
}

// @Summary      Delete item
// @Tags         items
// @Produce      json
// @Param        id      path      int  true  "Checklist ID"
// @Param        itemId  path      int  true  "Item ID"
// @Success      200     {object}  MessageResponse
// @Failure      400     {object}  MessageResponse
// @Failure      401     {object}  MessageResponse
// @Failure      403     {object}  MessageResponse
// @Failure      404     {object}  MessageResponse
// @Failure      500     {object}  MessageResponse
// @Router       /checklists/{id}/item/{itemId} [delete]
// @Security     BearerAuth
func (h *Handler) deleteItem(c *gin.Context) {
	checklistID, itemID, found, err := parseItemPath(c)
	if err != nil {
		respondMessage(c, http.StatusBadRequest, rejectionMessage(err))
		return
	}
	if !found {
		respondMessage(c, http.StatusNotFound, msgItemScopeNotFound)
		return
	}

	err = h.services.Items.Delete(c.Request.Context(), checklistID, itemID)
	if errors.Is(err, service.ErrItemNotFound) {
		respondMessage(c, http.StatusNotFound, msgItemScopeNotFound)
		return
	}
	if err != nil {
		h.internalError(c, "item_delete_failed", err, "checklist_id", checklistID, "item_id", itemID)
		return
	}

	h.recordActivity(c, models.ActivityItemDeleted, fmt.Sprintf("item %d deleted from checklist %d", itemID, checklistID),
		map[string]any{"checklist_id": checklistID, "item_id": itemID})
	respondMessage(c, http.StatusOK, msgItemDeleted)
}
