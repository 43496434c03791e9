// Package router enregistre les routes du domaine RH : statistiques,
// système unifié, organismes, recherche, extensions et rapports.
package router

import (
	"github.com/gofiber/fiber/v3"

	"admin_ga/internal/api/middleware"
	rhhdl "admin_ga/internal/api/rh/handler"
	rhsvc "admin_ga/internal/api/rh/service"
	apirouter "admin_ga/internal/api/router"
)

// Register construit la fonction d'enregistrement des routes RH sur v1.
// Le service est injecté par cmd/server, une seule instance par processus.
func Register(service *rhsvc.Service) apirouter.RegisterFunc {
	return func(v1 fiber.Router, r *apirouter.Router) error {
		handler := rhhdl.NewRHHandler(service)

		authMiddleware := middleware.AuthMiddleware()
		middlewares := []fiber.Handler{authMiddleware}

		// GET /rh/statistiques — format de réponse figé pour les consommateurs
		// existants, l'authentification est vérifiée dans le handler.
		v1.Get("/rh/statistiques", handler.Statistiques)

		// GET /systeme/unifie — vue unifiée complète (mémoïsée)
		apirouter.RegisterRouteWithMiddleware(v1, "/systeme", "GET", "/unifie", middlewares, handler.SystemeUnifie)

		// GET /organismes — liste, filtrable par ?type=
		apirouter.RegisterRouteWithMiddleware(v1, "/organismes", "GET", "/", middlewares, handler.ListerOrganismes)
		// GET /organismes/:code — fiche organisme avec ses comptes
		apirouter.RegisterRouteWithMiddleware(v1, "/organismes", "GET", "/:code", middlewares, handler.ObtenirOrganisme)

		// GET /recherche/organismes?q= — recherche par nom ou code
		apirouter.RegisterRouteWithMiddleware(v1, "/recherche", "GET", "/organismes", middlewares, handler.RechercherOrganismes)
		// GET /recherche/utilisateurs?q= — recherche par nom, prénom ou email
		apirouter.RegisterRouteWithMiddleware(v1, "/recherche", "GET", "/utilisateurs", middlewares, handler.RechercherUtilisateurs)

		// POST /extensions/organismes — ajout d'un organisme personnalisé
		apirouter.RegisterRouteWithMiddleware(v1, "/extensions", "POST", "/organismes", middlewares, handler.AjouterOrganisme)
		// POST /extensions/postes — ajout d'un poste personnalisé
		apirouter.RegisterRouteWithMiddleware(v1, "/extensions", "POST", "/postes", middlewares, handler.AjouterPoste)
		// POST /extensions/utilisateurs/generer — génération de comptes
		apirouter.RegisterRouteWithMiddleware(v1, "/extensions", "POST", "/utilisateurs/generer", middlewares, handler.GenererUtilisateurs)
		// POST /extensions/reinitialiser — remise à zéro des extensions
		apirouter.RegisterRouteWithMiddleware(v1, "/extensions", "POST", "/reinitialiser", middlewares, handler.Reinitialiser)

		// GET /rapports/controle — rapport de contrôle structuré (JSON)
		apirouter.RegisterRouteWithMiddleware(v1, "/rapports", "GET", "/controle", middlewares, handler.RapportControle)
		// GET /rapports/export?format= — export json, csv, html ou texte
		apirouter.RegisterRouteWithMiddleware(v1, "/rapports", "GET", "/export", middlewares, handler.ExporterRapport)

		return nil
	}
}
