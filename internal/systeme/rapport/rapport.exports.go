package rapport

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"html"
	"sort"
	"strings"
	"time"

	"admin_ga/internal/common"
	"admin_ga/internal/registry"
	"admin_ga/internal/systeme/models"
)

// Exporteur transforme un rapport en document d'un format donné.
type Exporteur func(*RapportControle) (string, error)

// exporteurs référence les formats d'export disponibles par nom.
var exporteurs = registry.NewRegistry[Exporteur]()

func init() {
	exporteurs.Register("json", ExporterJSON)
	exporteurs.Register("csv", ExporterCSV)
	exporteurs.Register("html", ExporterHTML)
	exporteurs.Register("texte", ExporterTexte)
}

// Exporter rend le rapport dans le format demandé (json, csv, html, texte).
func Exporter(rapport *RapportControle, format string) (string, error) {
	exporteur, ok := exporteurs.Get(strings.ToLower(format))
	if !ok {
		return "", common.NewError(common.ErrCodeValidationInput,
			fmt.Sprintf("Format d'export inconnu : %s (formats : %s)",
				format, strings.Join(FormatsDisponibles(), ", ")),
			common.StatusBadRequest, nil)
	}
	return exporteur(rapport)
}

// FormatsDisponibles liste les formats d'export, triés.
func FormatsDisponibles() []string {
	noms := exporteurs.Names()
	sort.Strings(noms)
	return noms
}

// ExporterJSON rend l'arbre complet du rapport en JSON indenté.
func ExporterJSON(rapport *RapportControle) (string, error) {
	contenu, err := json.MarshalIndent(rapport, "", "  ")
	if err != nil {
		return "", common.NewError(common.ErrCodeInternalServer,
			"Échec de sérialisation JSON du rapport", common.StatusInternalServerError, err.Error())
	}
	return string(contenu), nil
}

// ExporterCSV rend une ligne d'en-tête puis une ligne par organisme.
func ExporterCSV(rapport *RapportControle) (string, error) {
	var builder strings.Builder
	writer := csv.NewWriter(&builder)

	writer.Write([]string{"code", "nom", "type", "utilisateurs", "postes", "postes_vacants", "a_admin", "a_receptionniste"})
	for _, ligne := range rapport.Organismes {
		writer.Write([]string{
			ligne.Code,
			ligne.Nom,
			string(ligne.Type),
			fmt.Sprintf("%d", ligne.TotalUtilisateurs),
			fmt.Sprintf("%d", ligne.TotalPostes),
			fmt.Sprintf("%d", ligne.PostesVacants),
			fmt.Sprintf("%t", ligne.AAdmin),
			fmt.Sprintf("%t", ligne.AReceptionniste),
		})
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", common.NewError(common.ErrCodeInternalServer,
			"Échec de sérialisation CSV du rapport", common.StatusInternalServerError, err.Error())
	}
	return builder.String(), nil
}

// ExporterHTML rend un document autonome avec styles embarqués.
func ExporterHTML(rapport *RapportControle) (string, error) {
	var b strings.Builder

	b.WriteString("<!DOCTYPE html>\n<html lang=\"fr\">\n<head>\n<meta charset=\"utf-8\">\n")
	b.WriteString("<title>Rapport de contrôle ADMIN.GA</title>\n<style>\n")
	b.WriteString("body{font-family:sans-serif;margin:2em;color:#1a1a2e}\n")
	b.WriteString("h1{color:#009E60}h2{border-bottom:2px solid #FCD116;padding-bottom:.2em}\n")
	b.WriteString("table{border-collapse:collapse;width:100%;margin:1em 0}\n")
	b.WriteString("th,td{border:1px solid #ccc;padding:.4em .8em;text-align:left}\n")
	b.WriteString("th{background:#009E60;color:#fff}\n")
	b.WriteString(".ok{color:#009E60;font-weight:bold}.ko{color:#C0392B;font-weight:bold}\n")
	b.WriteString(".score{font-size:2em;font-weight:bold}\n")
	b.WriteString("</style>\n</head>\n<body>\n")

	b.WriteString("<h1>Rapport de contrôle ADMIN.GA</h1>\n")
	fmt.Fprintf(&b, "<p>Généré le %s</p>\n",
		time.UnixMilli(rapport.GenereLe).Format("02/01/2006 à 15:04"))
	fmt.Fprintf(&b, "<p class=\"score\">Score global : %d/100</p>\n", rapport.Scores.ScoreGlobal)

	b.WriteString("<h2>Résumé</h2>\n<table>\n")
	fmt.Fprintf(&b, "<tr><th>Organismes</th><td>%d</td></tr>\n", rapport.Resume.TotalOrganismes)
	fmt.Fprintf(&b, "<tr><th>Postes</th><td>%d (%d vacants, %d occupés)</td></tr>\n",
		rapport.Resume.TotalPostes, rapport.Resume.PostesVacants, rapport.Resume.PostesOccupes)
	fmt.Fprintf(&b, "<tr><th>Utilisateurs</th><td>%d</td></tr>\n", rapport.Resume.TotalUtilisateurs)
	fmt.Fprintf(&b, "<tr><th>Fonctionnaires</th><td>%d</td></tr>\n", rapport.Resume.TotalFonctionnaires)
	b.WriteString("</table>\n")

	b.WriteString("<h2>Validation</h2>\n<table>\n")
	ecrireBooleen(&b, "Tous les organismes ont un ADMIN", rapport.Validation.TousOntAdmin)
	ecrireBooleen(&b, "Tous les organismes ont un RECEPTIONIST", rapport.Validation.TousOntReceptionniste)
	ecrireBooleen(&b, "Emails uniques", rapport.Validation.EmailsUniques)
	ecrireBooleen(&b, "Codes d'organisme uniques", rapport.Validation.CodesUniques)
	b.WriteString("</table>\n")

	b.WriteString("<h2>Scores</h2>\n<table>\n")
	fmt.Fprintf(&b, "<tr><th>Complétude</th><td>%d/100</td></tr>\n", rapport.Scores.Completude)
	fmt.Fprintf(&b, "<tr><th>Validation</th><td>%d/100</td></tr>\n", rapport.Scores.Validation)
	fmt.Fprintf(&b, "<tr><th>Couverture</th><td>%d/100</td></tr>\n", rapport.Scores.Couverture)
	b.WriteString("</table>\n")

	fmt.Fprintf(&b, "<h2>Top %d organismes</h2>\n", len(rapport.TopOrganismes))
	b.WriteString("<table>\n<tr><th>Code</th><th>Nom</th><th>Type</th><th>Utilisateurs</th></tr>\n")
	for _, ligne := range rapport.TopOrganismes {
		fmt.Fprintf(&b, "<tr><td>%s</td><td>%s</td><td>%s</td><td>%d</td></tr>\n",
			html.EscapeString(ligne.Code), html.EscapeString(ligne.Nom),
			html.EscapeString(string(ligne.Type)), ligne.TotalUtilisateurs)
	}
	b.WriteString("</table>\n")

	b.WriteString("<h2>Anomalies</h2>\n")
	if len(rapport.Anomalies) == 0 {
		b.WriteString("<p class=\"ok\">Aucune anomalie détectée.</p>\n")
	} else {
		b.WriteString("<table>\n<tr><th>Type</th><th>Élément</th><th>Message</th></tr>\n")
		for _, anomalie := range rapport.Anomalies {
			fmt.Fprintf(&b, "<tr><td>%s</td><td>%s</td><td class=\"ko\">%s</td></tr>\n",
				html.EscapeString(string(anomalie.Type)), html.EscapeString(anomalie.Element),
				html.EscapeString(anomalie.Message))
		}
		b.WriteString("</table>\n")
	}

	b.WriteString("</body>\n</html>\n")
	return b.String(), nil
}

func ecrireBooleen(b *strings.Builder, libelle string, valeur bool) {
	classe, texte := "ko", "NON"
	if valeur {
		classe, texte = "ok", "OUI"
	}
	fmt.Fprintf(b, "<tr><th>%s</th><td class=%q>%s</td></tr>\n", html.EscapeString(libelle), classe, texte)
}

// ExporterTexte rend un relevé clé/valeur indenté, lisible en console.
func ExporterTexte(rapport *RapportControle) (string, error) {
	var b strings.Builder

	b.WriteString("RAPPORT DE CONTRÔLE ADMIN.GA\n")
	fmt.Fprintf(&b, "Généré le : %s\n\n",
		time.UnixMilli(rapport.GenereLe).Format("02/01/2006 15:04:05"))

	b.WriteString("Résumé\n")
	fmt.Fprintf(&b, "  Organismes      : %d\n", rapport.Resume.TotalOrganismes)
	fmt.Fprintf(&b, "  Postes          : %d (vacants : %d, occupés : %d)\n",
		rapport.Resume.TotalPostes, rapport.Resume.PostesVacants, rapport.Resume.PostesOccupes)
	fmt.Fprintf(&b, "  Utilisateurs    : %d\n", rapport.Resume.TotalUtilisateurs)
	fmt.Fprintf(&b, "  Fonctionnaires  : %d\n\n", rapport.Resume.TotalFonctionnaires)

	b.WriteString("Répartition par type\n")
	for _, typeOrganisme := range models.TousTypesOrganisme {
		if n := rapport.Resume.RepartitionTypes[typeOrganisme]; n > 0 {
			fmt.Fprintf(&b, "  %-24s: %d\n", typeOrganisme, n)
		}
	}
	b.WriteString("\nRépartition par rôle\n")
	for _, role := range models.TousRolesSysteme {
		if n := rapport.Resume.RepartitionRoles[role]; n > 0 {
			fmt.Fprintf(&b, "  %-24s: %d\n", role, n)
		}
	}

	b.WriteString("\nValidation\n")
	fmt.Fprintf(&b, "  Tous ont un ADMIN        : %s\n", ouiNon(rapport.Validation.TousOntAdmin))
	fmt.Fprintf(&b, "  Tous ont un RECEPTIONIST : %s\n", ouiNon(rapport.Validation.TousOntReceptionniste))
	fmt.Fprintf(&b, "  Emails uniques           : %s\n", ouiNon(rapport.Validation.EmailsUniques))
	fmt.Fprintf(&b, "  Codes uniques            : %s\n", ouiNon(rapport.Validation.CodesUniques))

	b.WriteString("\nScores\n")
	fmt.Fprintf(&b, "  Complétude   : %3d/100\n", rapport.Scores.Completude)
	fmt.Fprintf(&b, "  Validation   : %3d/100\n", rapport.Scores.Validation)
	fmt.Fprintf(&b, "  Couverture   : %3d/100\n", rapport.Scores.Couverture)
	fmt.Fprintf(&b, "  SCORE GLOBAL : %3d/100\n", rapport.Scores.ScoreGlobal)

	fmt.Fprintf(&b, "\nTop %d organismes\n", len(rapport.TopOrganismes))
	for i, ligne := range rapport.TopOrganismes {
		fmt.Fprintf(&b, "  %2d. %-16s %-50s %4d utilisateurs\n",
			i+1, ligne.Code, ligne.Nom, ligne.TotalUtilisateurs)
	}

	fmt.Fprintf(&b, "\nAnomalies (%d)\n", len(rapport.Anomalies))
	if len(rapport.Anomalies) == 0 {
		b.WriteString("  Aucune anomalie détectée.\n")
	} else {
		for _, anomalie := range rapport.Anomalies {
			fmt.Fprintf(&b, "  [%s] %s\n", anomalie.Type, anomalie.Message)
		}
	}

	return b.String(), nil
}

func ouiNon(valeur bool) string {
	if valeur {
		return "OUI"
	}
	return "NON"
}
