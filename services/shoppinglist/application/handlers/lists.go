package handlers

import (
	"net/http"

	"github.com/ghuser/shoppinglist/pkg/errhttp"
	"github.com/ghuser/shoppinglist/pkg/httpx"
	pkgvalidator "github.com/ghuser/shoppinglist/pkg/validator"
	appsvcs "github.com/ghuser/shoppinglist/services/shoppinglist/application/services"
	"github.com/ghuser/shoppinglist/services/shoppinglist/domain/models"
)

const listNotFound = "Shopping list not found"

// CreateListHandler handles POST /shopping-lists.
type CreateListHandler struct{ base }

// NewCreateListHandler returns a CreateListHandler backed by the given services.
func NewCreateListHandler(svc *appsvcs.Services, errs *errhttp.Writer) *CreateListHandler {
	return &CreateListHandler{base{svc, errs}}
}

// Execute creates a list with optional nested items.
//
//	@Summary		Create shopping list
//	@Description	Creates an active list, optionally with items, in one transaction
//	@Tags			shopping-lists
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateListRequest	true	"List creation request"
//	@Success		201		{object}	ListWithItemsResponse
//	@Failure		400		{object}	httpx.ErrorResponse
//	@Router			/shopping-lists [post]
func (h *CreateListHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[CreateListRequest](w, r)
	if !ok {
		return
	}

	in := appsvcs.CreateListInput{Name: req.Name, Items: make([]models.ItemDraft, len(req.Items))}
	for i, it := range req.Items {
		in.Items[i] = it.draft()
	}
	l, err := h.svc.List.Create(r.Context(), in)
	if err != nil {
		h.errs.WriteError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, toListWithItemsResponse(l))
}

// GetListsHandler handles GET /shopping-lists.
type GetListsHandler struct{ base }

// NewGetListsHandler returns a GetListsHandler backed by the given services.
func NewGetListsHandler(svc *appsvcs.Services, errs *errhttp.Writer) *GetListsHandler {
	return &GetListsHandler{base{svc, errs}}
}

// Execute lists shopping lists newest first with item counts.
//
//	@Summary		List shopping lists
//	@Description	Returns every list, newest first, with its item count. An unknown status matches nothing.
//	@Tags			shopping-lists
//	@Produce		json
//	@Param			status	query		string	false	"Filter by status"	Enums(active, sent, completed)
//	@Success		200		{object}	ListsResponse
//	@Router			/shopping-lists [get]
func (h *GetListsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	var status *models.ListStatus
	if s := r.URL.Query().Get("status"); s != "" {
		st := models.ListStatus(s)
		status = &st
	}

	page, err := h.svc.List.GetAll(r.Context(), status)
	if err != nil {
		h.errs.WriteError(w, r, err)
		return
	}
	resp := ListsResponse{Lists: make([]ListSummaryResponse, len(page.Lists)), Total: page.Total}
	for i, l := range page.Lists {
		resp.Lists[i] = ListSummaryResponse{ListResponse: toListResponse(&l.ShoppingList), ItemCount: l.ItemCount}
	}
	httpx.JSON(w, http.StatusOK, resp)
}

// GetListHandler handles GET /shopping-lists/{id}.
type GetListHandler struct{ base }

// NewGetListHandler returns a GetListHandler backed by the given services.
func NewGetListHandler(svc *appsvcs.Services, errs *errhttp.Writer) *GetListHandler {
	return &GetListHandler{base{svc, errs}}
}

// Execute returns one list with its items.
//
//	@Summary		Get shopping list
//	@Tags			shopping-lists
//	@Produce		json
//	@Param			id	path		string	true	"List ID"	Format(uuid)
//	@Success		200	{object}	ListWithItemsResponse
//	@Failure		400	{object}	httpx.ErrorResponse
//	@Failure		404	{object}	httpx.ErrorResponse
//	@Router			/shopping-lists/{id} [get]
func (h *GetListHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}
	l, found, err := h.svc.List.GetByID(r.Context(), id)
	switch {
	case err != nil:
		h.errs.WriteError(w, r, err)
	case !found:
		httpx.NotFound(w, r, listNotFound)
	default:
		httpx.JSON(w, http.StatusOK, toListWithItemsResponse(l))
	}
}

// UpdateListHandler handles PUT /shopping-lists/{id}.
type UpdateListHandler struct{ base }

// NewUpdateListHandler returns an UpdateListHandler backed by the given services.
func NewUpdateListHandler(svc *appsvcs.Services, errs *errhttp.Writer) *UpdateListHandler {
	return &UpdateListHandler{base{svc, errs}}
}

// Execute renames a list or changes its status.
//
//	@Summary		Update shopping list
//	@Tags			shopping-lists
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string				true	"List ID"	Format(uuid)
//	@Param			request	body		UpdateListRequest	true	"Fields to change"
//	@Success		200		{object}	ListWithItemsResponse
//	@Failure		400		{object}	httpx.ErrorResponse
//	@Failure		404		{object}	httpx.ErrorResponse
//	@Router			/shopping-lists/{id} [put]
func (h *UpdateListHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}
	req, ok := pkgvalidator.ValidateRequest[UpdateListRequest](w, r)
	if !ok {
		return
	}
	l, found, err := h.svc.List.Update(r.Context(), id, req.patch())
	switch {
	case err != nil:
		h.errs.WriteError(w, r, err)
	case !found:
		httpx.NotFound(w, r, listNotFound)
	default:
		httpx.JSON(w, http.StatusOK, toListWithItemsResponse(l))
	}
}

// DeleteListHandler handles DELETE /shopping-lists/{id}.
type DeleteListHandler struct{ base }

// NewDeleteListHandler returns a DeleteListHandler backed by the given services.
func NewDeleteListHandler(svc *appsvcs.Services, errs *errhttp.Writer) *DeleteListHandler {
	return &DeleteListHandler{base{svc, errs}}
}

// Execute deletes a list together with its items and reminders.
//
//	@Summary		Delete shopping list
//	@Tags			shopping-lists
//	@Produce		json
//	@Param			id	path		string	true	"List ID"	Format(uuid)
//	@Success		200	{object}	httpx.MessageResponse
//	@Failure		400	{object}	httpx.ErrorResponse
//	@Failure		404	{object}	httpx.ErrorResponse
//	@Router			/shopping-lists/{id} [delete]
func (h *DeleteListHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}
	deleted, err := h.svc.List.Delete(r.Context(), id)
	switch {
	case err != nil:
		h.errs.WriteError(w, r, err)
	case !deleted:
		httpx.NotFound(w, r, listNotFound)
	default:
		httpx.JSON(w, http.StatusOK, httpx.MessageResponse{Message: "Shopping list deleted successfully"})
	}
}

// SendListHandler handles POST /shopping-lists/{id}/send.
type SendListHandler struct{ base }

// NewSendListHandler returns a SendListHandler backed by the given services.
func NewSendListHandler(svc *appsvcs.Services, errs *errhttp.Writer) *SendListHandler {
	return &SendListHandler{base{svc, errs}}
}

// Execute marks a list as sent, or as the status given in the body.
//
//	@Summary		Send shopping list
//	@Description	Sets the list status to "sent" unless the body names another status
//	@Tags			shopping-lists
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string			true	"List ID"	Format(uuid)
//	@Param			request	body		SendListRequest	false	"Target status"
//	@Success		200		{object}	ListWithItemsResponse
//	@Failure		400		{object}	httpx.ErrorResponse
//	@Failure		404		{object}	httpx.ErrorResponse
//	@Router			/shopping-lists/{id}/send [post]
func (h *SendListHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}
	req, ok := pkgvalidator.DecodeOptional[SendListRequest](w, r)
	if !ok {
		return
	}
	var status *models.ListStatus
	if req.Status != nil {
		st := models.ListStatus(*req.Status)
		status = &st
	}
	l, found, err := h.svc.List.Send(r.Context(), id, status)
	switch {
	case err != nil:
		h.errs.WriteError(w, r, err)
	case !found:
		httpx.NotFound(w, r, listNotFound)
	default:
		httpx.JSON(w, http.StatusOK, toListWithItemsResponse(l))
	}
}
