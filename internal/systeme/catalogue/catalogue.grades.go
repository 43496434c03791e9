package catalogue

// GradeFonctionPublique décrit une catégorie de la grille de la fonction
// publique gabonaise.
type GradeFonctionPublique struct {
	Code        string
	Libelle     string
	NiveauMin   int // niveau hiérarchique le plus haut accessible
	NiveauMax   int
	SalaireMin  int
	SalaireMax  int
}

// Grades est la grille des catégories, du cadre supérieur à l'agent d'exécution.
var Grades = []GradeFonctionPublique{
	{Code: "A1", Libelle: "Cadre supérieur", NiveauMin: 1, NiveauMax: 2, SalaireMin: 1000000, SalaireMax: 1800000},
	{Code: "A2", Libelle: "Cadre", NiveauMin: 2, NiveauMax: 4, SalaireMin: 600000, SalaireMax: 1100000},
	{Code: "B1", Libelle: "Agent de maîtrise principal", NiveauMin: 4, NiveauMax: 5, SalaireMin: 420000, SalaireMax: 700000},
	{Code: "B2", Libelle: "Agent de maîtrise", NiveauMin: 5, NiveauMax: 6, SalaireMin: 320000, SalaireMax: 500000},
	{Code: "C", Libelle: "Agent d'exécution", NiveauMin: 6, NiveauMax: 7, SalaireMin: 250000, SalaireMax: 380000},
}

// GradeParCode retrouve une catégorie par son code, ou false si inconnue.
func GradeParCode(code string) (GradeFonctionPublique, bool) {
	for _, g := range Grades {
		if g.Code == code {
			return g, true
		}
	}
	return GradeFonctionPublique{}, false
}
