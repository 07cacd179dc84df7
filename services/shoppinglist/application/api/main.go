package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/shoppinglist/pkg/app"
	"github.com/ghuser/shoppinglist/pkg/errhttp"
	"github.com/ghuser/shoppinglist/services/shoppinglist/application/handlers"
	appsvcs "github.com/ghuser/shoppinglist/services/shoppinglist/application/services"
)

// ShoppingListRoutes registers the shopping list, item and reminder endpoints
// on the provided chi router.
func ShoppingListRoutes(r chi.Router, a *app.Application) {
	Mount(r, appsvcs.New(a), errhttp.New(a.Logger))
}

// Mount registers the endpoints against already-built services.
func Mount(r chi.Router, svcs *appsvcs.Services, errs *errhttp.Writer) {
	r.Group(func(r chi.Router) {
		r.Post("/shopping-lists", handlers.NewCreateListHandler(svcs, errs).Execute)
		r.Get("/shopping-lists", handlers.NewGetListsHandler(svcs, errs).Execute)
		r.Get("/shopping-lists/{id}", handlers.NewGetListHandler(svcs, errs).Execute)
		r.Put("/shopping-lists/{id}", handlers.NewUpdateListHandler(svcs, errs).Execute)
		r.Delete("/shopping-lists/{id}", handlers.NewDeleteListHandler(svcs, errs).Execute)
		r.Post("/shopping-lists/{id}/send", handlers.NewSendListHandler(svcs, errs).Execute)
		r.Get("/shopping-lists/{id}/reminders", handlers.NewListRemindersHandler(svcs, errs).Execute)

		r.Post("/shopping-lists/{listId}/items", handlers.NewAddItemHandler(svcs, errs).Execute)
		r.Get("/shopping-lists/{listId}/items/{itemId}", handlers.NewGetItemHandler(svcs, errs).Execute)
		r.Put("/shopping-lists/{listId}/items/{itemId}", handlers.NewUpdateItemHandler(svcs, errs).Execute)
		r.Delete("/shopping-lists/{listId}/items/{itemId}", handlers.NewDeleteItemHandler(svcs, errs).Execute)
	})

	r.Group(func(r chi.Router) {
		r.Post("/reminders", handlers.NewCreateReminderHandler(svcs, errs).Execute)
		r.Get("/reminders/{id}", handlers.NewGetReminderHandler(svcs, errs).Execute)
		r.Put("/reminders/{id}", handlers.NewUpdateReminderHandler(svcs, errs).Execute)
		r.Delete("/reminders/{id}", handlers.NewDeleteReminderHandler(svcs, errs).Execute)
	})
}
