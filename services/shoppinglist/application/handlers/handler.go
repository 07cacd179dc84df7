package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ghuser/shoppinglist/pkg/errhttp"
	pkgvalidator "github.com/ghuser/shoppinglist/pkg/validator"
	appsvcs "github.com/ghuser/shoppinglist/services/shoppinglist/application/services"
	"github.com/ghuser/shoppinglist/services/shoppinglist/domain"
)

// base is embedded by every handler.
type base struct {
	svc  *appsvcs.Services
	errs *errhttp.Writer
}

// pathID parses the named URL parameter as a canonical UUID, writing a 400 on
// failure before any storage access.
func (b base) pathID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	raw := chi.URLParam(r, name)
	if pkgvalidator.Var(raw, "uuid") != nil {
		b.errs.WriteError(w, r, domain.InvalidID(name))
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		b.errs.WriteError(w, r, domain.InvalidID(name))
		return uuid.Nil, false
	}
	return id, true
}
