package catalogue

import "admin_ga/internal/systeme/models"

// ModelePoste est l'entrée du catalogue des postes administratifs. Un modèle
// dont TypesEligibles est nil est éligible pour tous les types d'organisme.
type ModelePoste struct {
	Code           string
	Titre          string
	Niveau         int // 1 = plus haut rang hiérarchique
	Grades         []string
	SalaireBase    int // FCFA mensuel
	TypesEligibles []models.TypeOrganisme
}

// EstEligible indique si le modèle de poste peut être instancié pour un
// organisme du type donné.
func (m ModelePoste) EstEligible(t models.TypeOrganisme) bool {
	if len(m.TypesEligibles) == 0 {
		return true
	}
	for _, eligible := range m.TypesEligibles {
		if eligible == t {
			return true
		}
	}
	return false
}

// Postes est le catalogue de base des postes administratifs.
var Postes = []ModelePoste{
	{
		Code: "SG", Titre: "Secrétaire Général", Niveau: 1,
		Grades: []string{"A1"}, SalaireBase: 1500000,
		TypesEligibles: []models.TypeOrganisme{
			models.TypeMinistere, models.TypeProvince, models.TypeMairie,
			models.TypeInstitutionSupreme, models.TypePrefecture,
		},
	},
	{
		Code: "DIR_CAB", Titre: "Directeur de Cabinet", Niveau: 1,
		Grades: []string{"A1"}, SalaireBase: 1400000,
		TypesEligibles: []models.TypeOrganisme{
			models.TypeMinistere, models.TypeInstitutionSupreme, models.TypeProvince,
		},
	},
	{
		Code: "DG", Titre: "Directeur Général", Niveau: 1,
		Grades: []string{"A1"}, SalaireBase: 1600000,
		TypesEligibles: []models.TypeOrganisme{
			models.TypeDirectionGenerale, models.TypeEtablissementPublic,
			models.TypeEntreprisePublique, models.TypeOrganismeSocial,
			models.TypeServiceSpecialise,
		},
	},
	{
		Code: "DGA", Titre: "Directeur Général Adjoint", Niveau: 2,
		Grades: []string{"A1"}, SalaireBase: 1200000,
		TypesEligibles: []models.TypeOrganisme{
			models.TypeDirectionGenerale, models.TypeEtablissementPublic,
			models.TypeEntreprisePublique, models.TypeOrganismeSocial,
			models.TypeServiceSpecialise,
		},
	},
	{
		Code: "DIR_CENT", Titre: "Directeur Central", Niveau: 2,
		Grades: []string{"A1", "A2"}, SalaireBase: 1100000,
		TypesEligibles: []models.TypeOrganisme{models.TypeMinistere},
	},
	{
		Code: "MAGISTRAT", Titre: "Magistrat", Niveau: 2,
		Grades: []string{"A1"}, SalaireBase: 1300000,
		TypesEligibles: []models.TypeOrganisme{models.TypeInstitutionJudiciaire},
	},
	{
		Code: "CHEF_SERV", Titre: "Chef de Service", Niveau: 3,
		Grades: []string{"A2"}, SalaireBase: 800000,
	},
	{
		Code: "CHEF_ETAT_CIVIL", Titre: "Chef de Service État Civil", Niveau: 3,
		Grades: []string{"A2"}, SalaireBase: 750000,
		TypesEligibles: []models.TypeOrganisme{models.TypeMairie, models.TypePrefecture},
	},
	{
		Code: "CHARGE_ETUDES", Titre: "Chargé d'Études", Niveau: 4,
		Grades: []string{"A2", "B1"}, SalaireBase: 650000,
		TypesEligibles: []models.TypeOrganisme{
			models.TypeMinistere, models.TypeDirectionGenerale,
			models.TypeProvince, models.TypePrefecture,
		},
	},
	{
		Code: "INFORMATICIEN", Titre: "Informaticien", Niveau: 4,
		Grades: []string{"A2", "B1"}, SalaireBase: 700000,
	},
	{
		Code: "COMPTABLE", Titre: "Comptable", Niveau: 4,
		Grades: []string{"B1"}, SalaireBase: 600000,
	},
	{
		Code: "GREFFIER", Titre: "Greffier", Niveau: 4,
		Grades: []string{"B1"}, SalaireBase: 550000,
		TypesEligibles: []models.TypeOrganisme{models.TypeInstitutionJudiciaire},
	},
	{
		Code: "SEC_DIR", Titre: "Secrétaire de Direction", Niveau: 5,
		Grades: []string{"B1", "B2"}, SalaireBase: 450000,
	},
	{
		Code: "AGENT_ADM", Titre: "Agent Administratif", Niveau: 6,
		Grades: []string{"B2", "C"}, SalaireBase: 350000,
	},
	{
		Code: "AGENT_ETAT_CIVIL", Titre: "Agent d'État Civil", Niveau: 6,
		Grades: []string{"B2", "C"}, SalaireBase: 320000,
		TypesEligibles: []models.TypeOrganisme{models.TypeMairie, models.TypePrefecture},
	},
	{
		Code: "RECEPTIONNISTE", Titre: "Réceptionniste", Niveau: 7,
		Grades: []string{"C"}, SalaireBase: 300000,
	},
}
