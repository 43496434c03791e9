// Package rhsvc est la façade métier du domaine RH : statistiques, vue
// unifiée, extensions et rapports, au-dessus du registre et de l'adaptateur
// d'unification injectés.
package rhsvc

import (
	"context"
	"strings"

	"admin_ga/internal/common"
	"admin_ga/internal/logger"
	"admin_ga/internal/systeme/extensions"
	"admin_ga/internal/systeme/models"
	"admin_ga/internal/systeme/rapport"
	"admin_ga/internal/systeme/unification"
)

// StatistiquesRH enrichit les agrégats unifiés des compteurs RH : occupation
// des postes et situation des fonctionnaires.
type StatistiquesRH struct {
	unification.StatistiquesUnifiees
	PostesVacants           int `json:"postesVacants"`
	PostesOccupes           int `json:"postesOccupes"`
	FonctionnairesEnPoste   int `json:"fonctionnairesEnPoste"`
	FonctionnairesEnAttente int `json:"fonctionnairesEnAttente"`
}

// FicheOrganisme est la vue détaillée d'un organisme : sa fiche unifiée et
// ses comptes.
type FicheOrganisme struct {
	Organisme    *unification.OrganismeUnifie   `json:"organisme"`
	Utilisateurs []*models.UtilisateurOrganisme `json:"utilisateurs"`
}

// Service expose les opérations RH. Toute mutation du registre invalide le
// cache de la vue unifiée.
type Service struct {
	registre    *extensions.Registre
	unification *unification.Service
}

// NewService crée le service RH au-dessus des collaborateurs injectés.
func NewService(registre *extensions.Registre, unificationService *unification.Service) *Service {
	return &Service{registre: registre, unification: unificationService}
}

// Statistiques calcule les agrégats RH sur l'état courant base + extensions.
func (s *Service) Statistiques(ctx context.Context) (*StatistiquesRH, error) {
	donnees, err := s.unification.GetUnifiedSystemData(ctx)
	if err != nil {
		return nil, err
	}
	systeme, err := s.registre.ObtenirSystemeEtendu()
	if err != nil {
		return nil, err
	}

	statistiques := &StatistiquesRH{
		StatistiquesUnifiees: donnees.Statistiques,
		PostesVacants:        systeme.Statistiques.PostesVacants,
		PostesOccupes:        systeme.Statistiques.PostesOccupes,
	}
	for _, fonctionnaire := range systeme.Fonctionnaires {
		if fonctionnaire.Situation == models.SituationEnPoste {
			statistiques.FonctionnairesEnPoste++
		} else {
			statistiques.FonctionnairesEnAttente++
		}
	}
	return statistiques, nil
}

// SystemeUnifie sert la vue unifiée mémoïsée.
func (s *Service) SystemeUnifie(ctx context.Context) (*unification.UnifiedSystemData, error) {
	return s.unification.GetUnifiedSystemDataAvecCache(ctx)
}

// Organisme retourne la fiche détaillée d'un organisme par code.
func (s *Service) Organisme(ctx context.Context, code string) (*FicheOrganisme, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	organisme, err := s.unification.GetOrganismeParCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if organisme == nil {
		return nil, common.ErrOrganismeIntrouvable
	}
	utilisateurs, err := s.unification.GetUtilisateursParOrganisme(ctx, code)
	if err != nil {
		return nil, err
	}
	return &FicheOrganisme{Organisme: organisme, Utilisateurs: utilisateurs}, nil
}

// Organismes liste les organismes unifiés, éventuellement filtrés par type.
func (s *Service) Organismes(ctx context.Context, typeOrganisme string) ([]*unification.OrganismeUnifie, error) {
	if typeOrganisme == "" {
		donnees, err := s.unification.GetUnifiedSystemData(ctx)
		if err != nil {
			return nil, err
		}
		return donnees.Organismes, nil
	}

	filtre := models.TypeOrganisme(strings.ToUpper(strings.TrimSpace(typeOrganisme)))
	if !filtre.EstValide() {
		return nil, common.NewError(common.ErrCodeValidationInput,
			"Type d'organisme inconnu : "+typeOrganisme, common.StatusBadRequest, nil)
	}
	return s.unification.GetOrganismesParType(ctx, filtre)
}

// RechercherOrganismes délègue la recherche plein texte à l'unification.
func (s *Service) RechercherOrganismes(ctx context.Context, requete string) ([]*unification.OrganismeUnifie, error) {
	return s.unification.RechercherOrganismes(ctx, requete)
}

// RechercherUtilisateurs délègue la recherche plein texte à l'unification.
func (s *Service) RechercherUtilisateurs(ctx context.Context, requete string) ([]*models.UtilisateurOrganisme, error) {
	return s.unification.RechercherUtilisateurs(ctx, requete)
}

// AjouterOrganisme ajoute un organisme personnalisé puis invalide le cache.
func (s *Service) AjouterOrganisme(input extensions.OrganismeInput) (*models.OrganismePublic, error) {
	organisme, err := s.registre.AjouterOrganismePersonnalise(input)
	if err != nil {
		return nil, err
	}
	s.unification.InvaliderCache()
	logger.GetAuditLogger().WithField("code", organisme.Code).Info("Organisme personnalisé ajouté")
	return organisme, nil
}

// AjouterPoste ajoute un poste personnalisé puis invalide le cache.
func (s *Service) AjouterPoste(input extensions.PosteInput) (*models.PosteAdministratif, error) {
	poste, err := s.registre.AjouterPostePersonnalise(input)
	if err != nil {
		return nil, err
	}
	s.unification.InvaliderCache()
	logger.GetAuditLogger().WithField("code", poste.Code).Info("Poste personnalisé ajouté")
	return poste, nil
}

// GenererUtilisateurs synthétise des comptes supplémentaires puis invalide
// le cache.
func (s *Service) GenererUtilisateurs(organismeCode string, nombre int, roles []models.RoleSysteme) ([]*models.UtilisateurOrganisme, error) {
	utilisateurs, err := s.registre.GenererUtilisateursSupplementaires(organismeCode, nombre, roles)
	if err != nil {
		return nil, err
	}
	s.unification.InvaliderCache()
	logger.GetAuditLogger().WithFields(map[string]interface{}{
		"organisme": organismeCode,
		"nombre":    len(utilisateurs),
	}).Info("Comptes supplémentaires générés")
	return utilisateurs, nil
}

// Reinitialiser vide le registre d'extensions puis invalide le cache.
func (s *Service) Reinitialiser() {
	s.registre.Reinitialiser()
	s.unification.InvaliderCache()
	logger.GetAuditLogger().Info("Registre d'extensions réinitialisé")
}

// RapportControle génère le rapport de contrôle de l'état courant.
func (s *Service) RapportControle(ctx context.Context) (*rapport.RapportControle, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	systeme, err := s.registre.ObtenirSystemeEtendu()
	if err != nil {
		return nil, err
	}
	return rapport.GenererRapportControle(systeme), nil
}

// ExporterRapport rend le rapport de contrôle dans le format demandé et
// retourne le Content-Type associé.
func (s *Service) ExporterRapport(ctx context.Context, format string) (contenu, contentType string, err error) {
	rapportControle, err := s.RapportControle(ctx)
	if err != nil {
		return "", "", err
	}
	contenu, err = rapport.Exporter(rapportControle, format)
	if err != nil {
		return "", "", err
	}

	switch strings.ToLower(format) {
	case "json":
		contentType = "application/json; charset=utf-8"
	case "csv":
		contentType = "text/csv; charset=utf-8"
	case "html":
		contentType = "text/html; charset=utf-8"
	default:
		contentType = "text/plain; charset=utf-8"
	}
	return contenu, contentType, nil
}
