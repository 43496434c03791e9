// Package unification aplanit la vue base + extensions en un format unique
// consommé par l'API et les exports : organismes normalisés avec leurs
// statistiques locales, comptes à plat, agrégats globaux.
package unification

import (
	"context"
	"strings"
	"sync"

	"admin_ga/internal/systeme/extensions"
	"admin_ga/internal/systeme/models"
)

// OrganismeUnifie est un organisme normalisé, enrichi de ses statistiques
// locales.
type OrganismeUnifie struct {
	*models.OrganismePublic
	Stats StatsOrganisme `json:"stats"`
}

// StatsOrganisme porte les compteurs locaux d'un organisme.
type StatsOrganisme struct {
	TotalUtilisateurs int `json:"totalUtilisateurs"`
	TotalPostes       int `json:"totalPostes"`
	PostesVacants     int `json:"postesVacants"`
}

// StatistiquesUnifiees porte les agrégats globaux de la vue unifiée.
// MoyenneUtilisateurs = totalUtilisateurs / totalOrganismes, non pondérée.
type StatistiquesUnifiees struct {
	TotalOrganismes     int                          `json:"totalOrganismes"`
	TotalUtilisateurs   int                          `json:"totalUtilisateurs"`
	TotalPostes         int                          `json:"totalPostes"`
	RepartitionTypes    map[models.TypeOrganisme]int `json:"repartitionTypes"`
	RepartitionRoles    map[models.RoleSysteme]int   `json:"repartitionRoles"`
	MoyenneUtilisateurs float64                      `json:"moyenneUtilisateurs"`
}

// UnifiedSystemData est la forme normalisée unique servie aux pages et aux
// exports.
type UnifiedSystemData struct {
	Organismes   []*OrganismeUnifie             `json:"organismes"`
	Utilisateurs []*models.UtilisateurOrganisme `json:"utilisateurs"`
	Statistiques StatistiquesUnifiees           `json:"statistiques"`
	GenereLe     int64                          `json:"genereLe"`
}

// Service construit la vue unifiée depuis le registre d'extensions injecté.
// La variante avec cache mémoïse le dernier résultat sous mutex;
// InvaliderCache force la reconstruction au prochain appel.
type Service struct {
	registre *extensions.Registre

	cacheMu sync.Mutex
	cache   *UnifiedSystemData
}

// NouveauService crée le service d'unification.
func NouveauService(registre *extensions.Registre) *Service {
	return &Service{registre: registre}
}

// GetUnifiedSystemData reconstruit la vue unifiée depuis l'état courant du
// registre. Toujours frais, jamais servi depuis le cache.
func (s *Service) GetUnifiedSystemData(ctx context.Context) (*UnifiedSystemData, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	systeme, err := s.registre.ObtenirSystemeEtendu()
	if err != nil {
		return nil, err
	}

	utilisateursParOrganisme := make(map[string]int)
	for _, u := range systeme.Utilisateurs {
		utilisateursParOrganisme[u.OrganismeCode]++
	}
	postesParOrganisme := make(map[string]int)
	vacantsParOrganisme := make(map[string]int)
	for _, p := range systeme.Postes {
		postesParOrganisme[p.OrganismeCode]++
		if p.EstVacant() {
			vacantsParOrganisme[p.OrganismeCode]++
		}
	}

	donnees := &UnifiedSystemData{
		Utilisateurs: systeme.Utilisateurs,
		GenereLe:     systeme.GenereLe,
		Statistiques: StatistiquesUnifiees{
			TotalOrganismes:   len(systeme.Organismes),
			TotalUtilisateurs: len(systeme.Utilisateurs),
			TotalPostes:       len(systeme.Postes),
			RepartitionTypes:  make(map[models.TypeOrganisme]int),
			RepartitionRoles:  make(map[models.RoleSysteme]int),
		},
	}

	for _, org := range systeme.Organismes {
		donnees.Organismes = append(donnees.Organismes, &OrganismeUnifie{
			OrganismePublic: org,
			Stats: StatsOrganisme{
				TotalUtilisateurs: utilisateursParOrganisme[org.Code],
				TotalPostes:       postesParOrganisme[org.Code],
				PostesVacants:     vacantsParOrganisme[org.Code],
			},
		})
		donnees.Statistiques.RepartitionTypes[org.Type]++
	}
	for _, u := range systeme.Utilisateurs {
		donnees.Statistiques.RepartitionRoles[u.Role]++
	}
	if donnees.Statistiques.TotalOrganismes > 0 {
		donnees.Statistiques.MoyenneUtilisateurs =
			float64(donnees.Statistiques.TotalUtilisateurs) / float64(donnees.Statistiques.TotalOrganismes)
	}

	return donnees, nil
}

// GetUnifiedSystemDataAvecCache sert le dernier résultat mémoïsé, ou le
// reconstruit si le cache a été invalidé (ou jamais rempli).
func (s *Service) GetUnifiedSystemDataAvecCache(ctx context.Context) (*UnifiedSystemData, error) {
	s.cacheMu.Lock()
	defer s.cacheMu.Unlock()

	if s.cache != nil {
		return s.cache, nil
	}

	donnees, err := s.GetUnifiedSystemData(ctx)
	if err != nil {
		return nil, err
	}
	s.cache = donnees
	return donnees, nil
}

// InvaliderCache force la reconstruction de la vue au prochain appel avec
// cache. À appeler après toute mutation du registre d'extensions.
func (s *Service) InvaliderCache() {
	s.cacheMu.Lock()
	defer s.cacheMu.Unlock()
	s.cache = nil
}

// GetOrganismeParCode retrouve un organisme unifié par code exact.
func (s *Service) GetOrganismeParCode(ctx context.Context, code string) (*OrganismeUnifie, error) {
	donnees, err := s.GetUnifiedSystemData(ctx)
	if err != nil {
		return nil, err
	}
	for _, org := range donnees.Organismes {
		if org.Code == code {
			return org, nil
		}
	}
	return nil, nil
}

// GetUtilisateursParOrganisme liste les comptes liés à un code d'organisme.
func (s *Service) GetUtilisateursParOrganisme(ctx context.Context, code string) ([]*models.UtilisateurOrganisme, error) {
	donnees, err := s.GetUnifiedSystemData(ctx)
	if err != nil {
		return nil, err
	}
	var utilisateurs []*models.UtilisateurOrganisme
	for _, u := range donnees.Utilisateurs {
		if u.OrganismeCode == code {
			utilisateurs = append(utilisateurs, u)
		}
	}
	return utilisateurs, nil
}

// GetOrganismesParType liste les organismes unifiés d'un type donné.
func (s *Service) GetOrganismesParType(ctx context.Context, typeOrganisme models.TypeOrganisme) ([]*OrganismeUnifie, error) {
	donnees, err := s.GetUnifiedSystemData(ctx)
	if err != nil {
		return nil, err
	}
	var organismes []*OrganismeUnifie
	for _, org := range donnees.Organismes {
		if org.Type == typeOrganisme {
			organismes = append(organismes, org)
		}
	}
	return organismes, nil
}

// GetUtilisateursParRole liste les comptes portant un rôle donné.
func (s *Service) GetUtilisateursParRole(ctx context.Context, role models.RoleSysteme) ([]*models.UtilisateurOrganisme, error) {
	donnees, err := s.GetUnifiedSystemData(ctx)
	if err != nil {
		return nil, err
	}
	var utilisateurs []*models.UtilisateurOrganisme
	for _, u := range donnees.Utilisateurs {
		if u.Role == role {
			utilisateurs = append(utilisateurs, u)
		}
	}
	return utilisateurs, nil
}

// RechercherOrganismes filtre par sous-chaîne insensible à la casse sur le
// nom et le code. L'ordre d'insertion est préservé, aucun classement.
func (s *Service) RechercherOrganismes(ctx context.Context, requete string) ([]*OrganismeUnifie, error) {
	donnees, err := s.GetUnifiedSystemData(ctx)
	if err != nil {
		return nil, err
	}
	requete = strings.ToLower(strings.TrimSpace(requete))
	var organismes []*OrganismeUnifie
	for _, org := range donnees.Organismes {
		if requete == "" ||
			strings.Contains(strings.ToLower(org.Nom), requete) ||
			strings.Contains(strings.ToLower(org.Code), requete) {
			organismes = append(organismes, org)
		}
	}
	return organismes, nil
}

// RechercherUtilisateurs filtre par sous-chaîne insensible à la casse sur le
// nom, le prénom et l'email. L'ordre d'insertion est préservé.
func (s *Service) RechercherUtilisateurs(ctx context.Context, requete string) ([]*models.UtilisateurOrganisme, error) {
	donnees, err := s.GetUnifiedSystemData(ctx)
	if err != nil {
		return nil, err
	}
	requete = strings.ToLower(strings.TrimSpace(requete))
	var utilisateurs []*models.UtilisateurOrganisme
	for _, u := range donnees.Utilisateurs {
		if requete == "" ||
			strings.Contains(strings.ToLower(u.Nom), requete) ||
			strings.Contains(strings.ToLower(u.Prenom), requete) ||
			strings.Contains(strings.ToLower(u.Email), requete) {
			utilisateurs = append(utilisateurs, u)
		}
	}
	return utilisateurs, nil
}
