// Package extensions porte le registre des ajouts personnalisés : organismes,
// postes et comptes supplémentaires posés par-dessus le système de base.
// Le registre est injecté (pas de singleton) : le serveur en câble une seule
// instance, les tests en créent autant qu'ils veulent.
package extensions

import (
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"admin_ga/internal/common"
	"admin_ga/internal/global"
	"admin_ga/internal/systeme/generateur"
	"admin_ga/internal/systeme/models"
	"admin_ga/internal/utility"
)

// Registre accumule les extensions au-dessus d'un système de base immuable.
// Toutes les opérations sont sûres pour un usage concurrent.
type Registre struct {
	mu           sync.RWMutex
	base         *models.SystemeComplet
	organismes   []*models.OrganismePublic
	postes       []*models.PosteAdministratif
	utilisateurs []*models.UtilisateurOrganisme
	synthetiseur *generateur.Synthetiseur
}

// NouveauRegistre crée un registre vide au-dessus du système de base donné.
// Les emails du système de base sont réservés d'emblée : aucun compte
// supplémentaire ne pourra les réutiliser.
func NouveauRegistre(base *models.SystemeComplet) *Registre {
	r := &Registre{base: base}
	r.reinitialiserSynthetiseur()
	return r
}

func (r *Registre) reinitialiserSynthetiseur() {
	hash, err := bcrypt.GenerateFromPassword([]byte(generateur.MotDePasseParDefaut), bcrypt.MinCost)
	if err != nil {
		// bcrypt n'échoue que sur un coût invalide; MinCost est constant
		panic(err)
	}
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	r.synthetiseur = generateur.NouveauSynthetiseur(rng, string(hash))
	for _, u := range r.base.Utilisateurs {
		r.synthetiseur.ReserverEmail(u.Email)
	}
}

// OrganismeInput décrit un organisme personnalisé à ajouter.
type OrganismeInput struct {
	Nom       string               `json:"nom" yaml:"nom" validate:"required,no_xss"`
	Code      string               `json:"code" yaml:"code" validate:"required,code_organisme"`
	Type      models.TypeOrganisme `json:"type" yaml:"type" validate:"required,type_organisme"`
	Province  string               `json:"province,omitempty" yaml:"province,omitempty"`
	Ville     string               `json:"ville,omitempty" yaml:"ville,omitempty"`
	Adresse   string               `json:"adresse,omitempty" yaml:"adresse,omitempty"`
	Telephone string               `json:"telephone,omitempty" yaml:"telephone,omitempty"`
	Email     string               `json:"email,omitempty" yaml:"email,omitempty" validate:"omitempty,email"`
	SiteWeb   string               `json:"siteWeb,omitempty" yaml:"siteWeb,omitempty"`
	Couleur   string               `json:"couleur,omitempty" yaml:"couleur,omitempty"`
}

// PosteInput décrit un poste personnalisé à ajouter.
type PosteInput struct {
	Code          string   `json:"code" yaml:"code" validate:"required"`
	Titre         string   `json:"titre" yaml:"titre" validate:"required,no_xss"`
	Niveau        int      `json:"niveau" yaml:"niveau" validate:"gte=1,lte=10"`
	Grades        []string `json:"grades,omitempty" yaml:"grades,omitempty"`
	SalaireBase   int      `json:"salaireBase,omitempty" yaml:"salaireBase,omitempty"`
	OrganismeCode string   `json:"organismeCode" yaml:"organismeCode" validate:"required,code_organisme"`
}

// AjouterOrganismePersonnalise valide puis ajoute un organisme. Un code déjà
// présent (base ou extensions) est refusé et le registre reste inchangé.
func (r *Registre) AjouterOrganismePersonnalise(input OrganismeInput) (*models.OrganismePublic, error) {
	input.Code = strings.ToUpper(strings.TrimSpace(input.Code))
	if err := global.Validate.Struct(input); err != nil {
		return nil, common.NewError(common.ErrCodeValidationInput,
			common.MsgValidationError, common.StatusBadRequest, err.Error())
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.chercherOrganisme(input.Code) != nil {
		return nil, common.ErrCodeDuplique
	}

	domaine := generateur.DomaineOrganisme(input.Code)
	organisme := &models.OrganismePublic{
		ID:              "orgx_" + uuid.NewString(),
		Code:            input.Code,
		Nom:             input.Nom,
		Type:            input.Type,
		Province:        input.Province,
		Ville:           input.Ville,
		Adresse:         input.Adresse,
		Telephone:       input.Telephone,
		Email:           input.Email,
		SiteWeb:         input.SiteWeb,
		Couleur:         input.Couleur,
		EstPersonnalise: true,
		CreatedAt:       utility.CurrentTimeInMilli(),
	}
	if organisme.Email == "" {
		organisme.Email = "contact@" + domaine
	}
	if organisme.SiteWeb == "" {
		organisme.SiteWeb = "https://" + domaine
	}

	r.organismes = append(r.organismes, organisme)
	return organisme, nil
}

// AjouterPostePersonnalise valide puis ajoute un poste vacant à un organisme
// existant. Le couple (organisme, code de poste) doit être libre.
func (r *Registre) AjouterPostePersonnalise(input PosteInput) (*models.PosteAdministratif, error) {
	input.Code = strings.ToUpper(strings.TrimSpace(input.Code))
	input.OrganismeCode = strings.ToUpper(strings.TrimSpace(input.OrganismeCode))
	if err := global.Validate.Struct(input); err != nil {
		return nil, common.NewError(common.ErrCodeValidationInput,
			common.MsgValidationError, common.StatusBadRequest, err.Error())
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.chercherOrganisme(input.OrganismeCode) == nil {
		return nil, common.ErrOrganismeIntrouvable
	}
	if r.chercherPoste(input.OrganismeCode, input.Code) != nil {
		return nil, common.ErrCodeDuplique
	}

	poste := &models.PosteAdministratif{
		ID:              "postex_" + uuid.NewString(),
		Code:            input.Code,
		Titre:           input.Titre,
		Niveau:          input.Niveau,
		Grades:          input.Grades,
		SalaireBase:     input.SalaireBase,
		OrganismeCode:   input.OrganismeCode,
		Statut:          models.PosteVacant,
		EstPersonnalise: true,
		CreatedAt:       utility.CurrentTimeInMilli(),
	}
	r.postes = append(r.postes, poste)
	return poste, nil
}

// GenererUtilisateursSupplementaires synthétise nombre comptes pour un
// organisme existant, répartis sur les rôles demandés dans l'ordre. Chaque
// email est vérifié contre l'ensemble base + extensions.
func (r *Registre) GenererUtilisateursSupplementaires(organismeCode string, nombre int, roles []models.RoleSysteme) ([]*models.UtilisateurOrganisme, error) {
	organismeCode = strings.ToUpper(strings.TrimSpace(organismeCode))
	if nombre < 1 {
		return nil, common.NewError(common.ErrCodeValidationInput,
			"Le nombre de comptes à générer doit être au moins 1", common.StatusBadRequest, nil)
	}
	if len(roles) == 0 {
		roles = []models.RoleSysteme{models.RoleUser}
	}
	for _, role := range roles {
		if !role.EstValide() {
			return nil, common.NewError(common.ErrCodeValidationInput,
				"Rôle système inconnu : "+string(role), common.StatusBadRequest, nil)
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	organisme := r.chercherOrganisme(organismeCode)
	if organisme == nil {
		return nil, common.ErrOrganismeIntrouvable
	}

	maintenant := utility.CurrentTimeInMilli()
	ajoutes := make([]*models.UtilisateurOrganisme, 0, nombre)
	for i := 0; i < nombre; i++ {
		utilisateur := r.synthetiseur.SynthetiserUtilisateur(organisme, nil, roles[i%len(roles)], maintenant)
		utilisateur.ID = "userx_" + uuid.NewString()
		utilisateur.EstSupplementaire = true
		ajoutes = append(ajoutes, utilisateur)
	}
	r.utilisateurs = append(r.utilisateurs, ajoutes...)
	return ajoutes, nil
}

// Reinitialiser ramène le registre à l'état vide. Le système de base n'est
// pas touché; les emails libérés redeviennent attribuables. Idempotent.
func (r *Registre) Reinitialiser() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.organismes = nil
	r.postes = nil
	r.utilisateurs = nil
	r.reinitialiserSynthetiseur()
}

// ObtenirSystemeEtendu fusionne base et extensions en une vue combinée.
// Les agrégats sont recalculés à chaque appel, jamais servis depuis un cache.
func (r *Registre) ObtenirSystemeEtendu() (*models.SystemeComplet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	etendu := &models.SystemeComplet{
		Organismes:     concatener(r.base.Organismes, r.organismes),
		Postes:         concatener(r.base.Postes, r.postes),
		Utilisateurs:   concatener(r.base.Utilisateurs, r.utilisateurs),
		Fonctionnaires: concatener(r.base.Fonctionnaires, nil),
		Affectations:   concatener(r.base.Affectations, nil),
		GenereLe:       r.base.GenereLe,
	}
	etendu.CalculerStatistiques()
	return etendu, nil
}

// chercherOrganisme parcourt base puis extensions. Appelant sous verrou.
func (r *Registre) chercherOrganisme(code string) *models.OrganismePublic {
	for _, org := range r.base.Organismes {
		if org.Code == code {
			return org
		}
	}
	for _, org := range r.organismes {
		if org.Code == code {
			return org
		}
	}
	return nil
}

// chercherPoste parcourt base puis extensions. Appelant sous verrou.
func (r *Registre) chercherPoste(organismeCode, code string) *models.PosteAdministratif {
	for _, poste := range r.base.Postes {
		if poste.OrganismeCode == organismeCode && poste.Code == code {
			return poste
		}
	}
	for _, poste := range r.postes {
		if poste.OrganismeCode == organismeCode && poste.Code == code {
			return poste
		}
	}
	return nil
}

func concatener[T any](base, extensions []T) []T {
	fusion := make([]T, 0, len(base)+len(extensions))
	fusion = append(fusion, base...)
	return append(fusion, extensions...)
}
