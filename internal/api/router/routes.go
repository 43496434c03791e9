// Package router porte le cœur du routage HTTP : prefixes, enregistrement
// des routes avec middleware et assemblage des domaines.
package router

import (
	"github.com/gofiber/fiber/v3"

	basehdl "admin_ga/internal/api/base/handler"
)

// Router gère le routage de l'application.
type Router struct {
	app *fiber.App
}

// RoutePrefix contient les préfixes de base de l'API.
type RoutePrefix struct {
	Base string // Préfixe de base (/api)
	V1   string // Préfixe de la version 1 (/api/v1)
}

// NewRoutePrefix renvoie les préfixes par défaut.
func NewRoutePrefix() RoutePrefix {
	base := "/api"
	return RoutePrefix{
		Base: base,
		V1:   base + "/v1",
	}
}

// NewRouter crée un Router au-dessus de l'application Fiber.
func NewRouter(app *fiber.App) *Router {
	return &Router{
		app: app,
	}
}

// RegisterRouteWithMiddleware enregistre une route avec ses middlewares via
// un groupe et .Use().
//
// Ne PAS passer les middlewares directement à router.Get/Post/... : avec
// Fiber v3 ils ne sont pas appelés dans ce cas. Seule la forme
// groupe + .Use() fonctionne, d'où ce helper obligatoire pour toute route
// protégée.
func RegisterRouteWithMiddleware(router fiber.Router, prefix string, method string, path string, middlewares []fiber.Handler, handler fiber.Handler) {
	routeGroup := router.Group(prefix)
	for _, mw := range middlewares {
		routeGroup.Use(mw)
	}

	// Path relatif : le préfixe est déjà porté par le groupe.
	switch method {
	case "GET":
		routeGroup.Get(path, handler)
	case "POST":
		routeGroup.Post(path, handler)
	case "PUT":
		routeGroup.Put(path, handler)
	case "DELETE":
		routeGroup.Delete(path, handler)
	}
}

// RegisterFunc est la fonction d'enregistrement des routes d'un domaine
// (exportée par chaque domaine/router).
type RegisterFunc func(v1 fiber.Router, r *Router) error

// SetupRoutes assemble toutes les routes de l'application. L'appelant passe
// le Register de chaque domaine pour éviter les cycles d'import.
func SetupRoutes(app *fiber.App, regs ...RegisterFunc) error {
	prefix := NewRoutePrefix()

	// Sondes d'exploitation, hors /api/v1 et sans authentification.
	app.Get("/health", basehdl.HealthCheck)
	app.Get("/version", basehdl.Version)

	v1 := app.Group(prefix.V1)
	r := NewRouter(app)
	for _, reg := range regs {
		if err := reg(v1, r); err != nil {
			return err
		}
	}
	return nil
}
