// RPCal - FFXIV Roleplay Event Calendar Client Core
// Copyright 2026 FFXIV RP Event Calendar
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ffxiv-rp-calendar/rpcal

// Package api provides the optional local debug server: a read-only HTTP
// view of the event cache, filter output, and reference data, using the
// Chi router.
package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Router assembles the debug-server routes around a Handler.
type Router struct {
	handler *Handler
}

// NewRouter creates a Router serving the given handler.
func NewRouter(handler *Handler) *Router {
	return &Router{handler: handler}
}

// Setup configures all debug-server routes.
//
// The server binds to localhost by default and carries no authentication;
// rate limiting and CORS are still applied so a misconfigured bind address
// does not turn it into an open relay for forced refreshes.
func (router *Router) Setup() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(httprate.LimitByIP(120, time.Minute))

		r.Get("/health", router.handler.Health)
		r.Get("/events", router.handler.Events)
		r.Get("/events/{scope}", router.handler.EventsScope)
		r.Get("/categories", router.handler.Categories)
		r.Get("/ratings", router.handler.Ratings)

		// Forced refreshes are further capped inside the refresh
		// controller itself.
		r.With(httprate.LimitByIP(6, time.Minute)).Post("/refresh", router.handler.Refresh)
	})

	r.Handle("/metrics", promhttp.Handler())

	return r
}
