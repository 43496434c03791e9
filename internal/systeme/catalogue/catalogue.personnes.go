package catalogue

// Tables de noms utilisées par la synthèse déterministe de personnes
// (fonctionnaires et comptes utilisateurs). Noms de famille courants au
// Gabon et prénoms d'usage francophone.

// NomsFamille — ordre stable, indexé par le générateur pseudo-aléatoire.
var NomsFamille = []string{
	"Ondo", "Obame", "Nguema", "Mba", "Ndong", "Moussavou", "Koumba",
	"Mbadinga", "Bouanga", "Nzamba", "Mintsa", "Bivigou", "Ogandaga",
	"Mapangou", "Ivanga", "Rogombe", "Boussougou", "Nzeng", "Essono",
	"Allogho", "Mezui", "Engone", "Abessolo", "Minko", "Edzang",
	"Oyane", "Kombila", "Lendoye", "Moubamba", "Pambou",
}

// PrenomsMasculins — ordre stable.
var PrenomsMasculins = []string{
	"Jean", "Pierre", "Paul", "André", "Marcel", "Georges", "Léon",
	"Albert", "Hervé", "Serge", "Patrick", "Thierry", "Franck",
	"Emmanuel", "Didier", "Rodrigue", "Brice", "Landry", "Ulrich", "Yannick",
}

// PrenomsFeminins — ordre stable.
var PrenomsFeminins = []string{
	"Marie", "Jeanne", "Claire", "Sylvie", "Nathalie", "Christine",
	"Angèle", "Pierrette", "Georgette", "Laurence", "Paulette",
	"Solange", "Clarisse", "Edwige", "Prisca", "Ornella", "Vanessa",
	"Chancia", "Grâce", "Axelle",
}
