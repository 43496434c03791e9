package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"admin_ga/config"
	"admin_ga/internal/systeme/extensions"
	"admin_ga/internal/systeme/generateur"
)

var importerStrict bool

// importerCmd importe des fixtures d'extension depuis un fichier YAML.
var importerCmd = &cobra.Command{
	Use:   "importer <fichier.yaml>",
	Short: "Importe des fixtures d'extension depuis un fichier YAML",
	Long: `Génère le système de base puis importe les organismes, postes et
lots d'utilisateurs décrits dans le fichier de fixtures. L'import est au
mieux : chaque élément en échec est signalé avec son index, les autres
sont ajoutés.`,
	Args: cobra.ExactArgs(1),
	RunE: runImporter,
}

func init() {
	importerCmd.Flags().BoolVar(&importerStrict, "strict", false, "Échouer si au moins un élément est rejeté")
}

func runImporter(cmd *cobra.Command, args []string) error {
	fixtures, err := extensions.ChargerFixtures(args[0])
	if err != nil {
		return fmt.Errorf("chargement des fixtures : %w", err)
	}

	cfg := &config.Configuration{Graine: graine}
	systeme, err := generateur.ImplementerSystemeComplet(cmd.Context(), cfg)
	if err != nil {
		return fmt.Errorf("génération du système de base : %w", err)
	}

	registre := extensions.NouveauRegistre(systeme)
	resultat := registre.ImporterFixtures(fixtures)

	fmt.Printf("Organismes : %d ajoutés, %d en échec\n", len(resultat.Organismes.Ajoutes), len(resultat.Organismes.Erreurs))
	ecrireErreursLot(resultat.Organismes.Erreurs)
	fmt.Printf("Postes : %d ajoutés, %d en échec\n", len(resultat.Postes.Ajoutes), len(resultat.Postes.Erreurs))
	ecrireErreursLot(resultat.Postes.Erreurs)
	fmt.Printf("Utilisateurs : %d générés, %d lots en échec\n", len(resultat.Utilisateurs.Ajoutes), len(resultat.Utilisateurs.Erreurs))
	ecrireErreursLot(resultat.Utilisateurs.Erreurs)

	if nombreErreurs := resultat.NombreErreurs(); nombreErreurs > 0 && importerStrict {
		return fmt.Errorf("%d élément(s) rejeté(s)", nombreErreurs)
	}
	return nil
}

func ecrireErreursLot(erreurs []extensions.ErreurLot) {
	for _, e := range erreurs {
		if e.Element != "" {
			fmt.Printf("  [%d] %s : %s\n", e.Index, e.Element, e.Message)
			continue
		}
		fmt.Printf("  [%d] %s\n", e.Index, e.Message)
	}
}
