package http

import (
	"github.com/LavaJover/shvark-loyalty-service/internal/delivery/http/handlers"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter assembles the REST surface of the loyalty engine. The
// /api/admin subtree is expected to sit behind the gateway's admin
// authorization, same as the user surface sits behind auth.
func NewRouter(bonusHandler *handlers.BonusHandler, adminHandler *handlers.AdminBonusHandler) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Route("/api/bonus", func(r chi.Router) {
		r.Get("/programs", bonusHandler.GetPrograms)
		r.Get("/history", bonusHandler.GetHistory)
		r.Post("/request/{programID}", bonusHandler.RequestBonus)
		r.Post("/redeem-prize/{programID}/{prizeID}", bonusHandler.RedeemPrize)
	})

	r.Route("/api/admin/bonus", func(r chi.Router) {
		r.Get("/programs", adminHandler.ListPrograms)
		r.Post("/programs", adminHandler.CreateProgram)
		r.Put("/programs/{programID}", adminHandler.UpdateProgram)
		r.Delete("/programs/{programID}", adminHandler.DeleteProgram)
		r.Get("/programs/{programID}/users", adminHandler.ListProgramUsers)
		r.Post("/programs/{programID}/issue/{userID}", adminHandler.IssueBonus)
		r.Get("/history", adminHandler.GetHistory)
	})

	r.Handle("/metrics", promhttp.Handler())

	return r
}
