package handlers

import (
	"net/http"

	"github.com/ghuser/shoppinglist/pkg/errhttp"
	"github.com/ghuser/shoppinglist/pkg/httpx"
	pkgvalidator "github.com/ghuser/shoppinglist/pkg/validator"
	appsvcs "github.com/ghuser/shoppinglist/services/shoppinglist/application/services"
)

const itemNotFound = "Item not found"

// AddItemHandler handles POST /shopping-lists/{listId}/items.
type AddItemHandler struct{ base }

// NewAddItemHandler returns an AddItemHandler backed by the given services.
func NewAddItemHandler(svc *appsvcs.Services, errs *errhttp.Writer) *AddItemHandler {
	return &AddItemHandler{base{svc, errs}}
}

// Execute appends an item to a list.
//
//	@Summary		Add item
//	@Tags			items
//	@Accept			json
//	@Produce		json
//	@Param			listId	path		string				true	"List ID"	Format(uuid)
//	@Param			request	body		CreateItemRequest	true	"Item to add"
//	@Success		201		{object}	ItemResponse
//	@Failure		400		{object}	httpx.ErrorResponse
//	@Failure		404		{object}	httpx.ErrorResponse	"List not found"
//	@Router			/shopping-lists/{listId}/items [post]
func (h *AddItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	listID, ok := h.pathID(w, r, "listId")
	if !ok {
		return
	}
	req, ok := pkgvalidator.ValidateRequest[CreateItemRequest](w, r)
	if !ok {
		return
	}
	item, err := h.svc.Item.Add(r.Context(), listID, req.draft())
	if err != nil {
		h.errs.WriteError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, toItemResponse(item))
}

// GetItemHandler handles GET /shopping-lists/{listId}/items/{itemId}.
type GetItemHandler struct{ base }

// NewGetItemHandler returns a GetItemHandler backed by the given services.
func NewGetItemHandler(svc *appsvcs.Services, errs *errhttp.Writer) *GetItemHandler {
	return &GetItemHandler{base{svc, errs}}
}

// Execute returns one item of a list.
//
//	@Summary		Get item
//	@Tags			items
//	@Produce		json
//	@Param			listId	path		string	true	"List ID"	Format(uuid)
//	@Param			itemId	path		string	true	"Item ID"	Format(uuid)
//	@Success		200		{object}	ItemResponse
//	@Failure		400		{object}	httpx.ErrorResponse
//	@Failure		404		{object}	httpx.ErrorResponse
//	@Router			/shopping-lists/{listId}/items/{itemId} [get]
func (h *GetItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	listID, ok := h.pathID(w, r, "listId")
	if !ok {
		return
	}
	itemID, ok := h.pathID(w, r, "itemId")
	if !ok {
		return
	}
	item, found, err := h.svc.Item.GetByID(r.Context(), listID, itemID)
	switch {
	case err != nil:
		h.errs.WriteError(w, r, err)
	case !found:
		httpx.NotFound(w, r, itemNotFound)
	default:
		httpx.JSON(w, http.StatusOK, toItemResponse(item))
	}
}

// UpdateItemHandler handles PUT /shopping-lists/{listId}/items/{itemId}.
type UpdateItemHandler struct{ base }

// NewUpdateItemHandler returns an UpdateItemHandler backed by the given services.
func NewUpdateItemHandler(svc *appsvcs.Services, errs *errhttp.Writer) *UpdateItemHandler {
	return &UpdateItemHandler{base{svc, errs}}
}

// Execute changes the fields of an item.
//
//	@Summary		Update item
//	@Description	An empty quantity or notes clears the field
//	@Tags			items
//	@Accept			json
//	@Produce		json
//	@Param			listId	path		string				true	"List ID"	Format(uuid)
//	@Param			itemId	path		string				true	"Item ID"	Format(uuid)
//	@Param			request	body		UpdateItemRequest	true	"Fields to change"
//	@Success		200		{object}	ItemResponse
//	@Failure		400		{object}	httpx.ErrorResponse
//	@Failure		404		{object}	httpx.ErrorResponse
//	@Router			/shopping-lists/{listId}/items/{itemId} [put]
func (h *UpdateItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	listID, ok := h.pathID(w, r, "listId")
	if !ok {
		return
	}
	itemID, ok := h.pathID(w, r, "itemId")
	if !ok {
		return
	}
	req, ok := pkgvalidator.ValidateRequest[UpdateItemRequest](w, r)
	if !ok {
		return
	}
	item, found, err := h.svc.Item.Update(r.Context(), listID, itemID, req.patch())
	switch {
	case err != nil:
		h.errs.WriteError(w, r, err)
	case !found:
		httpx.NotFound(w, r, itemNotFound)
	default:
		httpx.JSON(w, http.StatusOK, toItemResponse(item))
	}
}

// DeleteItemHandler handles DELETE /shopping-lists/{listId}/items/{itemId}.
type DeleteItemHandler struct{ base }

// NewDeleteItemHandler returns a DeleteItemHandler backed by the given services.
func NewDeleteItemHandler(svc *appsvcs.Services, errs *errhttp.Writer) *DeleteItemHandler {
	return &DeleteItemHandler{base{svc, errs}}
}

// Execute removes an item from a list.
//
//	@Summary		Delete item
//	@Tags			items
//	@Produce		json
//	@Param			listId	path		string	true	"List ID"	Format(uuid)
//	@Param			itemId	path		string	true	"Item ID"	Format(uuid)
//	@Success		200		{object}	httpx.MessageResponse
//	@Failure		400		{object}	httpx.ErrorResponse
//	@Failure		404		{object}	httpx.ErrorResponse
//	@Router			/shopping-lists/{listId}/items/{itemId} [delete]
func (h *DeleteItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	listID, ok := h.pathID(w, r, "listId")
	if !ok {
		return
	}
	itemID, ok := h.pathID(w, r, "itemId")
	if !ok {
		return
	}
	deleted, err := h.svc.Item.Delete(r.Context(), listID, itemID)
	switch {
	case err != nil:
		h.errs.WriteError(w, r, err)
	case !deleted:
		httpx.NotFound(w, r, itemNotFound)
	default:
		httpx.JSON(w, http.StatusOK, httpx.MessageResponse{Message: "Item deleted successfully"})
	}
}
