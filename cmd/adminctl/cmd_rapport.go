package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"admin_ga/config"
	"admin_ga/internal/systeme/generateur"
	"admin_ga/internal/systeme/rapport"
)

var (
	rapportFormat string
	rapportSortie string
)

// rapportCmd produit le rapport de contrôle du système généré.
var rapportCmd = &cobra.Command{
	Use:   "rapport",
	Short: "Produit le rapport de contrôle du système généré",
	Long: `Génère le système complet puis produit son rapport de contrôle :
résumé, invariants vérifiés, scores de qualité, classement des
organismes et anomalies détectées.

Formats disponibles : json, csv, html, texte.`,
	RunE: runRapport,
}

func init() {
	rapportCmd.Flags().StringVarP(&rapportFormat, "format", "f", "texte", "Format d'export (json, csv, html, texte)")
	rapportCmd.Flags().StringVarP(&rapportSortie, "sortie", "o", "", "Fichier de sortie (défaut : sortie standard)")
}

func runRapport(cmd *cobra.Command, args []string) error {
	cfg := &config.Configuration{Graine: graine}
	systeme, err := generateur.ImplementerSystemeComplet(cmd.Context(), cfg)
	if err != nil {
		return fmt.Errorf("génération du système : %w", err)
	}

	rapportControle := rapport.GenererRapportControle(systeme)
	contenu, err := rapport.Exporter(rapportControle, rapportFormat)
	if err != nil {
		return fmt.Errorf("export du rapport : %w", err)
	}

	if rapportSortie == "" {
		fmt.Print(contenu)
		return nil
	}

	if err := os.WriteFile(rapportSortie, []byte(contenu), 0o644); err != nil {
		return fmt.Errorf("écriture de %s : %w", rapportSortie, err)
	}
	fmt.Printf("Rapport écrit dans %s (%d octets)\n", rapportSortie, len(contenu))
	return nil
}
