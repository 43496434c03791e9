package models

// StatistiquesSysteme agrège les compteurs d'un système généré.
// Les répartitions sont recomputées à chaque construction, jamais mises en
// cache dans ce type.
type StatistiquesSysteme struct {
	TotalOrganismes     int                   `json:"totalOrganismes"`
	TotalPostes         int                   `json:"totalPostes"`
	TotalUtilisateurs   int                   `json:"totalUtilisateurs"`
	TotalFonctionnaires int                   `json:"totalFonctionnaires"`
	PostesVacants       int                   `json:"postesVacants"`
	PostesOccupes       int                   `json:"postesOccupes"`
	RepartitionTypes    map[TypeOrganisme]int `json:"repartitionTypes"`
	RepartitionRoles    map[RoleSysteme]int   `json:"repartitionRoles"`
}

// SystemeComplet est le graphe d'objets produit par le générateur :
// organismes, postes, comptes, fonctionnaires et affectations, plus les
// statistiques récapitulatives.
type SystemeComplet struct {
	Organismes     []*OrganismePublic      `json:"organismes"`
	Postes         []*PosteAdministratif   `json:"postes"`
	Utilisateurs   []*UtilisateurOrganisme `json:"utilisateurs"`
	Fonctionnaires []*Fonctionnaire        `json:"fonctionnaires"`
	Affectations   []*Affectation          `json:"affectations"`
	Statistiques   StatistiquesSysteme     `json:"statistiques"`
	GenereLe       int64                   `json:"genereLe"`
}

// CalculerStatistiques recompute les agrégats depuis les listes.
func (s *SystemeComplet) CalculerStatistiques() {
	stats := StatistiquesSysteme{
		TotalOrganismes:     len(s.Organismes),
		TotalPostes:         len(s.Postes),
		TotalUtilisateurs:   len(s.Utilisateurs),
		TotalFonctionnaires: len(s.Fonctionnaires),
		RepartitionTypes:    make(map[TypeOrganisme]int),
		RepartitionRoles:    make(map[RoleSysteme]int),
	}

	for _, organisme := range s.Organismes {
		stats.RepartitionTypes[organisme.Type]++
	}
	for _, poste := range s.Postes {
		if poste.EstVacant() {
			stats.PostesVacants++
		} else {
			stats.PostesOccupes++
		}
	}
	for _, utilisateur := range s.Utilisateurs {
		stats.RepartitionRoles[utilisateur.Role]++
	}

	s.Statistiques = stats
}
