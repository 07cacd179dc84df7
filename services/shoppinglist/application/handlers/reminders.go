package handlers

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/shoppinglist/pkg/errhttp"
	"github.com/ghuser/shoppinglist/pkg/httpx"
	pkgvalidator "github.com/ghuser/shoppinglist/pkg/validator"
	appsvcs "github.com/ghuser/shoppinglist/services/shoppinglist/application/services"
	"github.com/ghuser/shoppinglist/services/shoppinglist/domain"
	"github.com/ghuser/shoppinglist/services/shoppinglist/domain/models"
)

const reminderNotFound = "Reminder not found"

// CreateReminderHandler handles POST /reminders.
type CreateReminderHandler struct{ base }

// NewCreateReminderHandler returns a CreateReminderHandler backed by the given services.
func NewCreateReminderHandler(svc *appsvcs.Services, errs *errhttp.Writer) *CreateReminderHandler {
	return &CreateReminderHandler{base{svc, errs}}
}

// Execute schedules a pending reminder for a list.
//
//	@Summary		Create reminder
//	@Description	scheduledAt must lie strictly in the future
//	@Tags			reminders
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateReminderRequest	true	"Reminder to schedule"
//	@Success		201		{object}	ReminderResponse
//	@Failure		400		{object}	httpx.ErrorResponse
//	@Failure		404		{object}	httpx.ErrorResponse	"List not found"
//	@Router			/reminders [post]
func (h *CreateReminderHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[CreateReminderRequest](w, r)
	if !ok {
		return
	}
	listID, err := uuid.Parse(req.ShoppingListID)
	if err != nil {
		h.errs.WriteError(w, r, domain.InvalidID("shoppingListId"))
		return
	}
	at, err := time.Parse(time.RFC3339, req.ScheduledAt)
	if err != nil {
		h.errs.WriteError(w, r, domain.InvalidField("scheduledAt", "Must be an ISO 8601 UTC date-time (e.g. 2024-01-15T10:30:00Z)"))
		return
	}

	rem, err := h.svc.Reminder.Create(r.Context(), appsvcs.CreateReminderInput{ShoppingListID: listID, ScheduledAt: at})
	if err != nil {
		h.errs.WriteError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, toReminderResponse(rem))
}

// GetReminderHandler handles GET /reminders/{id}.
type GetReminderHandler struct{ base }

// NewGetReminderHandler returns a GetReminderHandler backed by the given services.
func NewGetReminderHandler(svc *appsvcs.Services, errs *errhttp.Writer) *GetReminderHandler {
	return &GetReminderHandler{base{svc, errs}}
}

// Execute returns one reminder.
//
//	@Summary		Get reminder
//	@Tags			reminders
//	@Produce		json
//	@Param			id	path		string	true	"Reminder ID"	Format(uuid)
//	@Success		200	{object}	ReminderResponse
//	@Failure		400	{object}	httpx.ErrorResponse
//	@Failure		404	{object}	httpx.ErrorResponse
//	@Router			/reminders/{id} [get]
func (h *GetReminderHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}
	rem, found, err := h.svc.Reminder.GetByID(r.Context(), id)
	switch {
	case err != nil:
		h.errs.WriteError(w, r, err)
	case !found:
		httpx.NotFound(w, r, reminderNotFound)
	default:
		httpx.JSON(w, http.StatusOK, toReminderResponse(rem))
	}
}

// ListRemindersHandler handles GET /shopping-lists/{id}/reminders.
type ListRemindersHandler struct{ base }

// NewListRemindersHandler returns a ListRemindersHandler backed by the given services.
func NewListRemindersHandler(svc *appsvcs.Services, errs *errhttp.Writer) *ListRemindersHandler {
	return &ListRemindersHandler{base{svc, errs}}
}

// Execute returns the reminders of a list, earliest first.
//
//	@Summary		List reminders of a shopping list
//	@Tags			reminders
//	@Produce		json
//	@Param			id	path		string	true	"List ID"	Format(uuid)
//	@Success		200	{object}	RemindersResponse
//	@Failure		400	{object}	httpx.ErrorResponse
//	@Failure		404	{object}	httpx.ErrorResponse
//	@Router			/shopping-lists/{id}/reminders [get]
func (h *ListRemindersHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}
	rs, found, err := h.svc.Reminder.ListForList(r.Context(), id)
	switch {
	case err != nil:
		h.errs.WriteError(w, r, err)
	case !found:
		httpx.NotFound(w, r, listNotFound)
	default:
		resp := RemindersResponse{Reminders: make([]ReminderResponse, len(rs)), Total: len(rs)}
		for i, rem := range rs {
			resp.Reminders[i] = toReminderResponse(rem)
		}
		httpx.JSON(w, http.StatusOK, resp)
	}
}

// UpdateReminderHandler handles PUT /reminders/{id}.
type UpdateReminderHandler struct{ base }

// NewUpdateReminderHandler returns an UpdateReminderHandler backed by the given services.
func NewUpdateReminderHandler(svc *appsvcs.Services, errs *errhttp.Writer) *UpdateReminderHandler {
	return &UpdateReminderHandler{base{svc, errs}}
}

// Execute reschedules a reminder or changes its status.
//
//	@Summary		Update reminder
//	@Description	A new scheduledAt is not required to lie in the future
//	@Tags			reminders
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"Reminder ID"	Format(uuid)
//	@Param			request	body		UpdateReminderRequest	true	"Fields to change"
//	@Success		200		{object}	ReminderResponse
//	@Failure		400		{object}	httpx.ErrorResponse
//	@Failure		404		{object}	httpx.ErrorResponse
//	@Router			/reminders/{id} [put]
func (h *UpdateReminderHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}
	req, ok := pkgvalidator.ValidateRequest[UpdateReminderRequest](w, r)
	if !ok {
		return
	}

	var p models.ReminderPatch
	if req.ScheduledAt != nil {
		at, err := time.Parse(time.RFC3339, *req.ScheduledAt)
		if err != nil {
			h.errs.WriteError(w, r, domain.InvalidField("scheduledAt", "Must be an ISO 8601 UTC date-time (e.g. 2024-01-15T10:30:00Z)"))
			return
		}
		p.ScheduledAt = &at
	}
	if req.Status != nil {
		st := models.ReminderStatus(*req.Status)
		p.Status = &st
	}

	rem, found, err := h.svc.Reminder.Update(r.Context(), id, p)
	switch {
	case err != nil:
		h.errs.WriteError(w, r, err)
	case !found:
		httpx.NotFound(w, r, reminderNotFound)
	default:
		httpx.JSON(w, http.StatusOK, toReminderResponse(rem))
	}
}

// DeleteReminderHandler handles DELETE /reminders/{id}.
type DeleteReminderHandler struct{ base }

// NewDeleteReminderHandler returns a DeleteReminderHandler backed by the given services.
func NewDeleteReminderHandler(svc *appsvcs.Services, errs *errhttp.Writer) *DeleteReminderHandler {
	return &DeleteReminderHandler{base{svc, errs}}
}

// Execute deletes a reminder.
//
//	@Summary		Delete reminder
//	@Tags			reminders
//	@Produce		json
//	@Param			id	path		string	true	"Reminder ID"	Format(uuid)
//	@Success		200	{object}	httpx.MessageResponse
//	@Failure		400	{object}	httpx.ErrorResponse
//	@Failure		404	{object}	httpx.ErrorResponse
//	@Router			/reminders/{id} [delete]
func (h *DeleteReminderHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}
	deleted, err := h.svc.Reminder.Delete(r.Context(), id)
	switch {
	case err != nil:
		h.errs.WriteError(w, r, err)
	case !deleted:
		httpx.NotFound(w, r, reminderNotFound)
	default:
		httpx.JSON(w, http.StatusOK, httpx.MessageResponse{Message: "Reminder deleted successfully"})
	}
}
