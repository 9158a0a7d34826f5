package api

import (
	"kakeibo-server/src/config"
	"kakeibo-server/src/handlers"
	"kakeibo-server/src/middleware"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRouter(pool *pgxpool.Pool, cfg config.Config) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.CORSMiddleware(cfg.CORSOrigins))
	r.Use(middleware.DemoModeMiddleware(cfg.DemoMode))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})

	r.Route("/api", func(r chi.Router) {
		r.Post("/login", handlers.Login(pool))
		r.Post("/register", handlers.Register(pool))
		r.Get("/categories", handlers.GetCategories())

		// Protected routes
		r.With(middleware.JWTAuthMiddleware).Group(func(r chi.Router) {
			// Session
			r.Get("/me", handlers.Me(pool))
			r.Post("/me/change-password", handlers.ChangePassword(pool))

			// Ledgers
			r.Get("/ledgers", handlers.GetLedgers(pool))
			r.Post("/ledgers", handlers.CreateLedger(pool))
			r.Get("/ledgers/current", handlers.GetCurrentLedger(pool))

			// Members
			r.Post("/ledgers/{ledger_id}/members", handlers.AddMember(pool))
			r.Get("/ledgers/{ledger_id}/members", handlers.GetMembers(pool))

			// Transactions
			r.Post("/transactions", handlers.CreateTransaction(pool))
			r.Get("/transactions", handlers.GetTransactions(pool))
			r.Delete("/transactions/{transaction_id}", handlers.DeleteTransaction(pool))

			// Dashboard & export
			r.Get("/dashboard", handlers.GetDashboard(pool))
			r.Get("/export", handlers.ExportTransactions(pool))

			// Preferences
			r.Get("/preferences", handlers.GetPreferences(pool))
			r.Put("/preferences/ledger", handlers.SwitchLedger(pool))
			r.Put("/preferences/theme", handlers.UpdateTheme(pool))
		})
	})

	return r
}
