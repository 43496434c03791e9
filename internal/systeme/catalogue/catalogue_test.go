package catalogue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"admin_ga/internal/systeme/models"
)

func TestVerifier_CatalogueDeBase(t *testing.T) {
	require.NoError(t, Verifier())
}

func TestVerifier_CodesUniques(t *testing.T) {
	codes := make(map[string]bool)
	for _, org := range Organismes {
		assert.False(t, codes[org.Code], "code dupliqué: %s", org.Code)
		codes[org.Code] = true
	}
}

func TestPostesPourType_ToujoursUnSeniorEtUnReceptionniste(t *testing.T) {
	// chaque type du catalogue doit pouvoir recevoir un responsable (niveau
	// 1 ou 2 en tête de liste) et un réceptionniste, sans quoi la
	// couverture ADMIN/RECEPTIONIST des organismes est impossible
	typesUtilises := make(map[models.TypeOrganisme]bool)
	for _, org := range Organismes {
		typesUtilises[org.Type] = true
	}

	for typeOrg := range typesUtilises {
		eligibles := PostesPourType(typeOrg)
		require.NotEmpty(t, eligibles, "aucun poste éligible pour %s", typeOrg)
		assert.LessOrEqual(t, eligibles[0].Niveau, 2,
			"le premier poste éligible de %s n'est pas un poste de direction", typeOrg)

		receptionniste := false
		for _, p := range eligibles {
			if p.Code == "RECEPTIONNISTE" {
				receptionniste = true
			}
		}
		assert.True(t, receptionniste, "pas de réceptionniste pour %s", typeOrg)
	}
}

func TestModelePoste_EstEligible(t *testing.T) {
	universel := ModelePoste{Code: "X", Titre: "X", Niveau: 3, Grades: []string{"A2"}}
	assert.True(t, universel.EstEligible(models.TypeMinistere))
	assert.True(t, universel.EstEligible(models.TypeMairie))

	restreint := ModelePoste{
		Code: "Y", Titre: "Y", Niveau: 2, Grades: []string{"A1"},
		TypesEligibles: []models.TypeOrganisme{models.TypeMinistere},
	}
	assert.True(t, restreint.EstEligible(models.TypeMinistere))
	assert.False(t, restreint.EstEligible(models.TypeMairie))
}

func TestGradeParCode(t *testing.T) {
	grade, ok := GradeParCode("A1")
	require.True(t, ok)
	assert.Equal(t, "Cadre supérieur", grade.Libelle)

	_, ok = GradeParCode("Z9")
	assert.False(t, ok)
}
