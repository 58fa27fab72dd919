// Package httptransport assembles the HTTP surface: public site endpoints,
// the admin back-office under /admin, and operational endpoints.
package httptransport

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	bankhandler "ficlear/internal/bank/handler"
	companyhandler "ficlear/internal/company/handler"
	elighandler "ficlear/internal/eligibility/handler"
	offerhandler "ficlear/internal/offer/handler"
	pinhandler "ficlear/internal/pincode/handler"
	"ficlear/internal/platform/middleware"
	settingshandler "ficlear/internal/settings/handler"
	"ficlear/pkg/platform/httputil"
)

// Handlers groups the module handlers the router mounts.
type Handlers struct {
	Bank        *bankhandler.Handler
	Pincode     *pinhandler.Handler
	Company     *companyhandler.Handler
	Offer       *offerhandler.Handler
	Settings    *settingshandler.Handler
	Eligibility *elighandler.Handler
}

// NewRouter wires every endpoint. Public reads and the eligibility check sit
// at the root; all mutations live under /admin behind the token middleware.
func NewRouter(h Handlers, adminToken string, logger *slog.Logger) chi.Router {
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.RequestContext)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	h.Bank.Register(r)
	h.Pincode.Register(r)
	h.Company.Register(r)
	h.Offer.Register(r)
	h.Settings.Register(r)
	h.Eligibility.Register(r)

	r.Route("/admin", func(ar chi.Router) {
		h.Settings.RegisterAuth(ar)

		ar.Group(func(gr chi.Router) {
			gr.Use(middleware.RequireAdminToken(adminToken, logger))
			h.Bank.RegisterAdmin(gr)
			h.Pincode.RegisterAdmin(gr)
			h.Company.RegisterAdmin(gr)
			h.Offer.RegisterAdmin(gr)
			h.Settings.RegisterAdmin(gr)
		})
	})

	return r
}
