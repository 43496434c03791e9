package generateur

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"admin_ga/config"
	"admin_ga/internal/systeme/models"
)

func configDeTest(graine int64) *config.Configuration {
	return &config.Configuration{Graine: graine}
}

func TestImplementerSystemeComplet_Unicite(t *testing.T) {
	systeme, err := ImplementerSystemeComplet(context.Background(), configDeTest(42))
	require.NoError(t, err)
	require.NotEmpty(t, systeme.Organismes)
	require.NotEmpty(t, systeme.Utilisateurs)

	codes := make(map[string]bool)
	for _, org := range systeme.Organismes {
		assert.False(t, codes[org.Code], "code d'organisme dupliqué: %s", org.Code)
		codes[org.Code] = true
	}

	emails := make(map[string]bool)
	for _, u := range systeme.Utilisateurs {
		assert.False(t, emails[u.Email], "email dupliqué: %s", u.Email)
		emails[u.Email] = true
	}
}

func TestImplementerSystemeComplet_Couverture(t *testing.T) {
	systeme, err := ImplementerSystemeComplet(context.Background(), configDeTest(42))
	require.NoError(t, err)

	admins := make(map[string]bool)
	receptionnistes := make(map[string]bool)
	for _, u := range systeme.Utilisateurs {
		switch u.Role {
		case models.RoleAdmin:
			admins[u.OrganismeCode] = true
		case models.RoleReceptionniste:
			receptionnistes[u.OrganismeCode] = true
		}
	}

	for _, org := range systeme.Organismes {
		assert.True(t, admins[org.Code], "organisme sans ADMIN: %s", org.Code)
		assert.True(t, receptionnistes[org.Code], "organisme sans RECEPTIONIST: %s", org.Code)
	}
}

func TestImplementerSystemeComplet_Affectations(t *testing.T) {
	systeme, err := ImplementerSystemeComplet(context.Background(), configDeTest(42))
	require.NoError(t, err)

	postesParID := make(map[string]*models.PosteAdministratif)
	for _, p := range systeme.Postes {
		postesParID[p.ID] = p
	}
	fonctionnairesParID := make(map[string]*models.Fonctionnaire)
	for _, f := range systeme.Fonctionnaires {
		fonctionnairesParID[f.ID] = f
	}

	for _, a := range systeme.Affectations {
		poste, ok := postesParID[a.PosteID]
		require.True(t, ok, "affectation vers un poste inconnu: %s", a.PosteID)
		fonctionnaire, ok := fonctionnairesParID[a.FonctionnaireID]
		require.True(t, ok, "affectation d'un fonctionnaire inconnu: %s", a.FonctionnaireID)

		assert.Equal(t, models.PosteOccupe, poste.Statut)
		assert.Equal(t, models.SituationEnPoste, fonctionnaire.Situation)
		assert.Equal(t, poste.ID, fonctionnaire.PosteID)
	}

	// chaque poste occupé correspond à exactement une affectation
	assert.Equal(t, systeme.Statistiques.PostesOccupes, len(systeme.Affectations))
	assert.Equal(t, systeme.Statistiques.PostesVacants+systeme.Statistiques.PostesOccupes,
		systeme.Statistiques.TotalPostes)
}

func TestImplementerSystemeComplet_Determinisme(t *testing.T) {
	premier, err := ImplementerSystemeComplet(context.Background(), configDeTest(7))
	require.NoError(t, err)
	second, err := ImplementerSystemeComplet(context.Background(), configDeTest(7))
	require.NoError(t, err)

	require.Equal(t, len(premier.Utilisateurs), len(second.Utilisateurs))
	for i := range premier.Utilisateurs {
		assert.Equal(t, premier.Utilisateurs[i].Email, second.Utilisateurs[i].Email)
		assert.Equal(t, premier.Utilisateurs[i].Role, second.Utilisateurs[i].Role)
	}
	assert.Equal(t, premier.Statistiques, second.Statistiques)
}

func TestImplementerSystemeComplet_GrainesDifferentes(t *testing.T) {
	premier, err := ImplementerSystemeComplet(context.Background(), configDeTest(1))
	require.NoError(t, err)
	second, err := ImplementerSystemeComplet(context.Background(), configDeTest(2))
	require.NoError(t, err)

	// même catalogue, donc mêmes organismes; l'occupation des postes diffère
	assert.Equal(t, premier.Statistiques.TotalOrganismes, second.Statistiques.TotalOrganismes)
	assert.NotEqual(t, premier.Utilisateurs, second.Utilisateurs)
}

func TestImplementerSystemeComplet_ContexteAnnule(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := ImplementerSystemeComplet(ctx, configDeTest(42))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSynthetiseur_EmailUnique(t *testing.T) {
	synthetiseur := NouveauSynthetiseur(rand.New(rand.NewSource(1)), "hash")

	premier := synthetiseur.EmailUnique("Jean", "Ondo", "min-sante.gouv.ga")
	assert.Equal(t, "jean.ondo@min-sante.gouv.ga", premier)

	second := synthetiseur.EmailUnique("Jean", "Ondo", "min-sante.gouv.ga")
	assert.Equal(t, "jean.ondo2@min-sante.gouv.ga", second)

	troisieme := synthetiseur.EmailUnique("Jean", "Ondo", "min-sante.gouv.ga")
	assert.Equal(t, "jean.ondo3@min-sante.gouv.ga", troisieme)
}

func TestSynthetiseur_ReserverEmail(t *testing.T) {
	synthetiseur := NouveauSynthetiseur(rand.New(rand.NewSource(1)), "hash")

	assert.True(t, synthetiseur.ReserverEmail("marie.koumba@dgdi.gouv.ga"))
	assert.False(t, synthetiseur.ReserverEmail("marie.koumba@dgdi.gouv.ga"))

	email := synthetiseur.EmailUnique("Marie", "Koumba", "dgdi.gouv.ga")
	assert.Equal(t, "marie.koumba2@dgdi.gouv.ga", email)
}

func TestDomaineOrganisme(t *testing.T) {
	assert.Equal(t, "min-sante.gouv.ga", DomaineOrganisme("MIN_SANTE"))
	assert.Equal(t, "dgdi.gouv.ga", DomaineOrganisme("DGDI"))
}
