package generateur

import (
	"fmt"
	"math/rand"
	"strings"

	"admin_ga/internal/systeme/catalogue"
	"admin_ga/internal/systeme/models"
	"admin_ga/internal/utility"
)

// Synthetiseur fabrique des personnes, comptes et fonctionnaires à partir
// des tables de noms du catalogue. Il détient l'ensemble des emails déjà
// attribués : chaque email sort unique sur toute la durée de vie du
// synthétiseur. Non sûr pour un usage concurrent; l'appelant sérialise.
type Synthetiseur struct {
	rng                   *rand.Rand
	emails                map[string]bool
	motDePasseHash        string
	compteurUtilisateur   int
	compteurFonctionnaire int
	compteurMatricule     int
}

// NouveauSynthetiseur crée un synthétiseur vierge. motDePasseHash est le
// hash bcrypt posé sur chaque compte créé.
func NouveauSynthetiseur(rng *rand.Rand, motDePasseHash string) *Synthetiseur {
	return &Synthetiseur{
		rng:            rng,
		emails:         make(map[string]bool),
		motDePasseHash: motDePasseHash,
	}
}

// ReserverEmail marque un email comme déjà attribué (comptes issus d'un
// système de base préexistant). Retourne false si l'email était déjà pris.
func (s *Synthetiseur) ReserverEmail(email string) bool {
	email = strings.ToLower(email)
	if s.emails[email] {
		return false
	}
	s.emails[email] = true
	return true
}

// Personne tire un couple (prénom, nom) dans les tables du catalogue.
func (s *Synthetiseur) Personne() (prenom, nom string) {
	if s.rng.Intn(2) == 0 {
		prenom = catalogue.PrenomsMasculins[s.rng.Intn(len(catalogue.PrenomsMasculins))]
	} else {
		prenom = catalogue.PrenomsFeminins[s.rng.Intn(len(catalogue.PrenomsFeminins))]
	}
	nom = catalogue.NomsFamille[s.rng.Intn(len(catalogue.NomsFamille))]
	return prenom, nom
}

// TelephoneGabonais produit un numéro mobile au format national.
func (s *Synthetiseur) TelephoneGabonais() string {
	prefixe := []int{62, 65, 66, 74, 77}[s.rng.Intn(5)]
	return fmt.Sprintf("+241 0%d %02d %02d %02d",
		prefixe/10, prefixe%10*10+s.rng.Intn(10), s.rng.Intn(100), s.rng.Intn(100))
}

// EmailUnique dérive un email prenom.nom@domaine, suffixé d'un compteur en
// cas de collision avec un email déjà attribué. L'email retourné est
// immédiatement réservé.
func (s *Synthetiseur) EmailUnique(prenom, nom, domaine string) string {
	base := utility.Normaliser(prenom) + "." + utility.Normaliser(nom)
	email := base + "@" + domaine
	for n := 2; s.emails[email]; n++ {
		email = fmt.Sprintf("%s%d@%s", base, n, domaine)
	}
	s.emails[email] = true
	return email
}

// SynthetiserUtilisateur crée un compte pour un poste d'un organisme donné.
func (s *Synthetiseur) SynthetiserUtilisateur(organisme *models.OrganismePublic, poste *models.PosteAdministratif, role models.RoleSysteme, maintenant int64) *models.UtilisateurOrganisme {
	prenom, nom := s.Personne()
	return s.construireUtilisateur(prenom, nom, organisme, poste, role, maintenant)
}

func (s *Synthetiseur) construireUtilisateur(prenom, nom string, organisme *models.OrganismePublic, poste *models.PosteAdministratif, role models.RoleSysteme, maintenant int64) *models.UtilisateurOrganisme {
	s.compteurUtilisateur++
	utilisateur := &models.UtilisateurOrganisme{
		ID:             fmt.Sprintf("user_%04d", s.compteurUtilisateur),
		Nom:            nom,
		Prenom:         prenom,
		Email:          s.EmailUnique(prenom, nom, DomaineOrganisme(organisme.Code)),
		Telephone:      s.TelephoneGabonais(),
		OrganismeCode:  organisme.Code,
		Role:           role,
		Statut:         models.CompteActif,
		MotDePasseHash: s.motDePasseHash,
		CreatedAt:      maintenant,
	}
	if poste != nil {
		utilisateur.PosteID = poste.ID
		utilisateur.PosteTitre = poste.Titre
	}
	// une petite part de comptes inactifs, comme sur le portail réel
	if s.rng.Float64() < 0.08 {
		utilisateur.Statut = models.CompteInactif
	}
	return utilisateur
}

// SynthetiserFonctionnaire crée un agent EN_ATTENTE, sans poste.
func (s *Synthetiseur) SynthetiserFonctionnaire(grade string, maintenant int64) *models.Fonctionnaire {
	prenom, nom := s.Personne()
	return s.construireFonctionnaire(prenom, nom, grade, maintenant)
}

func (s *Synthetiseur) construireFonctionnaire(prenom, nom, grade string, maintenant int64) *models.Fonctionnaire {
	s.compteurFonctionnaire++
	s.compteurMatricule++
	return &models.Fonctionnaire{
		ID:        fmt.Sprintf("fonc_%04d", s.compteurFonctionnaire),
		Matricule: fmt.Sprintf("MAT-%06d", 100000+s.compteurMatricule),
		Nom:       nom,
		Prenom:    prenom,
		Grade:     grade,
		Situation: models.SituationEnAttente,
		CreatedAt: maintenant,
	}
}

// AffecterPoste synthétise la même personne sous ses deux facettes — compte
// portail et fonctionnaire — puis l'affecte au poste via le constructeur
// d'affectation (les deux états sont posés ensemble).
func (s *Synthetiseur) AffecterPoste(organisme *models.OrganismePublic, poste *models.PosteAdministratif, role models.RoleSysteme, maintenant int64) (*models.UtilisateurOrganisme, *models.Fonctionnaire, *models.Affectation, error) {
	prenom, nom := s.Personne()
	grade := poste.Grades[s.rng.Intn(len(poste.Grades))]

	utilisateur := s.construireUtilisateur(prenom, nom, organisme, poste, role, maintenant)
	fonctionnaire := s.construireFonctionnaire(prenom, nom, grade, maintenant)

	affectation, err := models.NouvelleAffectation(poste, fonctionnaire, maintenant)
	if err != nil {
		return nil, nil, nil, err
	}
	return utilisateur, fonctionnaire, affectation, nil
}

// DomaineOrganisme dérive le domaine email institutionnel d'un code
// d'organisme (MIN_SANTE → min-sante.gouv.ga).
func DomaineOrganisme(code string) string {
	return strings.ReplaceAll(strings.ToLower(code), "_", "-") + ".gouv.ga"
}
