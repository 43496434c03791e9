// Package rhhdl porte les handlers HTTP du domaine RH.
package rhhdl

import (
	"github.com/gofiber/fiber/v3"

	basehdl "admin_ga/internal/api/base/handler"
	"admin_ga/internal/api/middleware"
	rhdto "admin_ga/internal/api/rh/dto"
	rhsvc "admin_ga/internal/api/rh/service"
	"admin_ga/internal/common"
	"admin_ga/internal/global"
	"admin_ga/internal/logger"
	"admin_ga/internal/systeme/extensions"
)

// RHHandler traite les requêtes du domaine RH.
type RHHandler struct {
	service *rhsvc.Service
}

// NewRHHandler crée le handler RH au-dessus du service injecté.
func NewRHHandler(service *rhsvc.Service) *RHHandler {
	return &RHHandler{service: service}
}

// Statistiques sert GET /api/v1/rh/statistiques. Le format de réponse de
// cette route est figé pour les consommateurs existants du portail :
// {"success":true,"data":...} en 200, {"success":false,"error":...} en
// 401/500. L'authentification est vérifiée ici même (pas par le middleware)
// pour garder ce format sur le refus d'accès.
func (h *RHHandler) Statistiques(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		if err := middleware.VerifierRequete(c); err != nil {
			return basehdl.JSONResponse(c, common.StatusUnauthorized, fiber.Map{
				"success": false,
				"error":   err.Error(),
			})
		}

		statistiques, err := h.service.Statistiques(c.Context())
		if err != nil {
			logger.WithRequest(c).WithError(err).Error("Échec du calcul des statistiques RH")
			return basehdl.JSONResponse(c, common.StatusInternalServerError, fiber.Map{
				"success": false,
				"error":   "Erreur interne du serveur",
			})
		}

		return basehdl.JSONResponse(c, common.StatusOK, fiber.Map{
			"success": true,
			"data":    statistiques,
		})
	})
}

// SystemeUnifie sert la vue unifiée mémoïsée.
func (h *RHHandler) SystemeUnifie(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		donnees, err := h.service.SystemeUnifie(c.Context())
		basehdl.HandleResponse(c, donnees, err)
		return nil
	})
}

// ObtenirOrganisme sert la fiche d'un organisme par code.
func (h *RHHandler) ObtenirOrganisme(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		fiche, err := h.service.Organisme(c.Context(), c.Params("code"))
		basehdl.HandleResponse(c, fiche, err)
		return nil
	})
}

// ListerOrganismes sert la liste des organismes, filtrable par type.
func (h *RHHandler) ListerOrganismes(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		organismes, err := h.service.Organismes(c.Context(), c.Query("type"))
		basehdl.HandleResponse(c, organismes, err)
		return nil
	})
}

// RechercherOrganismes sert la recherche plein texte sur les organismes.
func (h *RHHandler) RechercherOrganismes(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		organismes, err := h.service.RechercherOrganismes(c.Context(), c.Query("q"))
		basehdl.HandleResponse(c, organismes, err)
		return nil
	})
}

// RechercherUtilisateurs sert la recherche plein texte sur les comptes.
func (h *RHHandler) RechercherUtilisateurs(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		utilisateurs, err := h.service.RechercherUtilisateurs(c.Context(), c.Query("q"))
		basehdl.HandleResponse(c, utilisateurs, err)
		return nil
	})
}

// AjouterOrganisme sert l'ajout d'un organisme personnalisé.
func (h *RHHandler) AjouterOrganisme(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		var input extensions.OrganismeInput
		if err := c.Bind().Body(&input); err != nil {
			basehdl.HandleResponse(c, nil, common.ErrInvalidFormat)
			return nil
		}

		organisme, err := h.service.AjouterOrganisme(input)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}
		logger.LogExtension("ajout", "organisme", organisme.Code, c, nil)
		return basehdl.JSONResponse(c, common.StatusCreated, fiber.Map{
			"code":    common.StatusCreated,
			"message": common.MsgCreated,
			"data":    organisme,
			"status":  "success",
		})
	})
}

// AjouterPoste sert l'ajout d'un poste personnalisé.
func (h *RHHandler) AjouterPoste(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		var input extensions.PosteInput
		if err := c.Bind().Body(&input); err != nil {
			basehdl.HandleResponse(c, nil, common.ErrInvalidFormat)
			return nil
		}

		poste, err := h.service.AjouterPoste(input)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}
		logger.LogExtension("ajout", "poste", poste.Code, c, nil)
		return basehdl.JSONResponse(c, common.StatusCreated, fiber.Map{
			"code":    common.StatusCreated,
			"message": common.MsgCreated,
			"data":    poste,
			"status":  "success",
		})
	})
}

// GenererUtilisateurs sert la génération de comptes supplémentaires.
func (h *RHHandler) GenererUtilisateurs(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		var input rhdto.GenerationUtilisateursInput
		if err := c.Bind().Body(&input); err != nil {
			basehdl.HandleResponse(c, nil, common.ErrInvalidFormat)
			return nil
		}
		if err := global.Validate.Struct(input); err != nil {
			basehdl.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationInput,
				common.MsgValidationError, common.StatusBadRequest, err.Error()))
			return nil
		}

		utilisateurs, err := h.service.GenererUtilisateurs(input.OrganismeCode, input.Nombre, input.Roles)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}
		logger.LogExtension("generation", "utilisateurs", input.OrganismeCode, c, map[string]interface{}{
			"nombre": len(utilisateurs),
		})
		return basehdl.JSONResponse(c, common.StatusCreated, fiber.Map{
			"code":    common.StatusCreated,
			"message": common.MsgCreated,
			"data":    utilisateurs,
			"status":  "success",
		})
	})
}

// Reinitialiser sert la remise à zéro du registre d'extensions.
func (h *RHHandler) Reinitialiser(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		h.service.Reinitialiser()
		logger.LogExtension("reinitialisation", "registre", "", c, nil)
		basehdl.HandleResponse(c, fiber.Map{"reinitialise": true}, nil)
		return nil
	})
}

// RapportControle sert le rapport de contrôle en JSON structuré.
func (h *RHHandler) RapportControle(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		rapportControle, err := h.service.RapportControle(c.Context())
		basehdl.HandleResponse(c, rapportControle, err)
		return nil
	})
}

// ExporterRapport sert le rapport dans le format demandé (?format=).
func (h *RHHandler) ExporterRapport(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		format := c.Query("format", "json")
		contenu, contentType, err := h.service.ExporterRapport(c.Context(), format)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}
		c.Set("Content-Type", contentType)
		return c.Status(common.StatusOK).SendString(contenu)
	})
}
