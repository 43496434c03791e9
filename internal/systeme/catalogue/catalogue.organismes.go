// Package catalogue contient les tables statiques du système : modèles
// d'organismes publics, modèles de postes administratifs, taxonomie des
// grades et tables de noms utilisées par la synthèse de personnes.
// Données pures, feuilles du graphe de dépendances.
package catalogue

import "admin_ga/internal/systeme/models"

// ModeleOrganisme est l'entrée du catalogue des organismes : le générateur
// l'étend en OrganismePublic concret (contact, branding, identifiant).
type ModeleOrganisme struct {
	Nom      string
	Code     string
	Type     models.TypeOrganisme
	Province string
	Ville    string
	Couleur  string
}

// Organismes est le catalogue de base des organismes publics gabonais.
var Organismes = []ModeleOrganisme{
	// Ministères
	{Nom: "Ministère de la Santé et des Affaires Sociales", Code: "MIN_SANTE", Type: models.TypeMinistere, Province: "Estuaire", Ville: "Libreville", Couleur: "#009E60"},
	{Nom: "Ministère de l'Éducation Nationale", Code: "MIN_EDUC", Type: models.TypeMinistere, Province: "Estuaire", Ville: "Libreville", Couleur: "#3A75C4"},
	{Nom: "Ministère de l'Économie et des Participations", Code: "MIN_ECO", Type: models.TypeMinistere, Province: "Estuaire", Ville: "Libreville", Couleur: "#FCD116"},
	{Nom: "Ministère de l'Intérieur et de la Sécurité", Code: "MIN_INT", Type: models.TypeMinistere, Province: "Estuaire", Ville: "Libreville", Couleur: "#1F3A93"},
	{Nom: "Ministère de la Justice, Garde des Sceaux", Code: "MIN_JUS", Type: models.TypeMinistere, Province: "Estuaire", Ville: "Libreville", Couleur: "#6C3483"},
	{Nom: "Ministère des Travaux Publics", Code: "MIN_TP", Type: models.TypeMinistere, Province: "Estuaire", Ville: "Libreville", Couleur: "#B9770E"},
	{Nom: "Ministère de la Fonction Publique", Code: "MIN_FOP", Type: models.TypeMinistere, Province: "Estuaire", Ville: "Libreville", Couleur: "#148F77"},
	{Nom: "Ministère des Affaires Étrangères", Code: "MIN_AFF_ETR", Type: models.TypeMinistere, Province: "Estuaire", Ville: "Libreville", Couleur: "#21618C"},

	// Directions générales
	{Nom: "Direction Générale de la Documentation et de l'Immigration", Code: "DGDI", Type: models.TypeDirectionGenerale, Province: "Estuaire", Ville: "Libreville", Couleur: "#2E4053"},
	{Nom: "Direction Générale des Impôts", Code: "DGI", Type: models.TypeDirectionGenerale, Province: "Estuaire", Ville: "Libreville", Couleur: "#7B241C"},
	{Nom: "Direction Générale du Trésor", Code: "DG_TRESOR", Type: models.TypeDirectionGenerale, Province: "Estuaire", Ville: "Libreville", Couleur: "#117A65"},
	{Nom: "Direction Générale de la Statistique", Code: "DGSEE", Type: models.TypeDirectionGenerale, Province: "Estuaire", Ville: "Libreville", Couleur: "#5B2C6F"},

	// Établissements publics
	{Nom: "Université Omar Bongo", Code: "UOB", Type: models.TypeEtablissementPublic, Province: "Estuaire", Ville: "Libreville", Couleur: "#1A5276"},
	{Nom: "Centre Hospitalier Universitaire de Libreville", Code: "CHU_LBV", Type: models.TypeEtablissementPublic, Province: "Estuaire", Ville: "Libreville", Couleur: "#C0392B"},
	{Nom: "École Nationale d'Administration", Code: "ENA_GA", Type: models.TypeEtablissementPublic, Province: "Estuaire", Ville: "Libreville", Couleur: "#7D6608"},

	// Entreprises publiques
	{Nom: "Gabon Oil Company", Code: "GOC", Type: models.TypeEntreprisePublique, Province: "Estuaire", Ville: "Libreville", Couleur: "#0B5345"},
	{Nom: "Société Gabonaise de Transport", Code: "SOGATRA", Type: models.TypeEntreprisePublique, Province: "Estuaire", Ville: "Libreville", Couleur: "#784212"},

	// Institutions suprêmes
	{Nom: "Assemblée Nationale", Code: "ASS_NAT", Type: models.TypeInstitutionSupreme, Province: "Estuaire", Ville: "Libreville", Couleur: "#0E6251"},
	{Nom: "Sénat", Code: "SENAT", Type: models.TypeInstitutionSupreme, Province: "Estuaire", Ville: "Libreville", Couleur: "#4A235A"},
	{Nom: "Cour Constitutionnelle", Code: "COUR_CONST", Type: models.TypeInstitutionSupreme, Province: "Estuaire", Ville: "Libreville", Couleur: "#641E16"},

	// Mairies
	{Nom: "Mairie de Libreville", Code: "MAIRIE_LBV", Type: models.TypeMairie, Province: "Estuaire", Ville: "Libreville", Couleur: "#1ABC9C"},
	{Nom: "Mairie de Port-Gentil", Code: "MAIRIE_PG", Type: models.TypeMairie, Province: "Ogooué-Maritime", Ville: "Port-Gentil", Couleur: "#2980B9"},
	{Nom: "Mairie de Franceville", Code: "MAIRIE_FCV", Type: models.TypeMairie, Province: "Haut-Ogooué", Ville: "Franceville", Couleur: "#D35400"},
	{Nom: "Mairie d'Oyem", Code: "MAIRIE_OYEM", Type: models.TypeMairie, Province: "Woleu-Ntem", Ville: "Oyem", Couleur: "#8E44AD"},

	// Préfectures
	{Nom: "Préfecture du Komo-Mondah", Code: "PREF_KOMO", Type: models.TypePrefecture, Province: "Estuaire", Ville: "Ntoum", Couleur: "#5D6D7E"},
	{Nom: "Préfecture de la Mpassa", Code: "PREF_MPASSA", Type: models.TypePrefecture, Province: "Haut-Ogooué", Ville: "Franceville", Couleur: "#839192"},

	// Provinces
	{Nom: "Province de l'Estuaire", Code: "PROV_EST", Type: models.TypeProvince, Province: "Estuaire", Ville: "Libreville", Couleur: "#2ECC71"},
	{Nom: "Province du Haut-Ogooué", Code: "PROV_HO", Type: models.TypeProvince, Province: "Haut-Ogooué", Ville: "Franceville", Couleur: "#E67E22"},
	{Nom: "Province du Moyen-Ogooué", Code: "PROV_MO", Type: models.TypeProvince, Province: "Moyen-Ogooué", Ville: "Lambaréné", Couleur: "#3498DB"},
	{Nom: "Province de la Ngounié", Code: "PROV_NG", Type: models.TypeProvince, Province: "Ngounié", Ville: "Mouila", Couleur: "#9B59B6"},
	{Nom: "Province de la Nyanga", Code: "PROV_NY", Type: models.TypeProvince, Province: "Nyanga", Ville: "Tchibanga", Couleur: "#F1C40F"},
	{Nom: "Province de l'Ogooué-Ivindo", Code: "PROV_OI", Type: models.TypeProvince, Province: "Ogooué-Ivindo", Ville: "Makokou", Couleur: "#16A085"},
	{Nom: "Province de l'Ogooué-Lolo", Code: "PROV_OL", Type: models.TypeProvince, Province: "Ogooué-Lolo", Ville: "Koulamoutou", Couleur: "#27AE60"},
	{Nom: "Province de l'Ogooué-Maritime", Code: "PROV_OM", Type: models.TypeProvince, Province: "Ogooué-Maritime", Ville: "Port-Gentil", Couleur: "#2C3E50"},
	{Nom: "Province du Woleu-Ntem", Code: "PROV_WN", Type: models.TypeProvince, Province: "Woleu-Ntem", Ville: "Oyem", Couleur: "#E74C3C"},

	// Organismes sociaux
	{Nom: "Caisse Nationale de Sécurité Sociale", Code: "CNSS", Type: models.TypeOrganismeSocial, Province: "Estuaire", Ville: "Libreville", Couleur: "#AF601A"},
	{Nom: "Caisse Nationale d'Assurance Maladie et de Garantie Sociale", Code: "CNAMGS", Type: models.TypeOrganismeSocial, Province: "Estuaire", Ville: "Libreville", Couleur: "#229954"},

	// Institutions judiciaires
	{Nom: "Cour de Cassation", Code: "COUR_CASS", Type: models.TypeInstitutionJudiciaire, Province: "Estuaire", Ville: "Libreville", Couleur: "#512E5F"},
	{Nom: "Conseil d'État", Code: "CONSEIL_ETAT", Type: models.TypeInstitutionJudiciaire, Province: "Estuaire", Ville: "Libreville", Couleur: "#154360"},

	// Services spécialisés
	{Nom: "Agence Nationale des Infrastructures Numériques et des Fréquences", Code: "ANINF", Type: models.TypeServiceSpecialise, Province: "Estuaire", Ville: "Libreville", Couleur: "#1F618D"},
	{Nom: "Agence Nationale de l'Urbanisme, des Travaux Topographiques et du Cadastre", Code: "ANUTTC", Type: models.TypeServiceSpecialise, Province: "Estuaire", Ville: "Libreville", Couleur: "#7E5109"},
}
