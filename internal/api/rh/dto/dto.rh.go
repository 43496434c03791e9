// Package rhdto porte les DTO d'entrée du domaine RH.
package rhdto

import "admin_ga/internal/systeme/models"

// GenerationUtilisateursInput demande la génération de comptes
// supplémentaires pour un organisme.
type GenerationUtilisateursInput struct {
	OrganismeCode string               `json:"organismeCode" validate:"required,code_organisme"`
	Nombre        int                  `json:"nombre" validate:"required,gte=1,lte=100"`
	Roles         []models.RoleSysteme `json:"roles,omitempty" validate:"omitempty,dive,role_systeme"`
}
