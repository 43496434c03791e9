// adminctl pilote la synthèse des données ADMIN.GA hors serveur :
// génération du système complet, rapports de contrôle et import de
// fixtures d'extension.
package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"admin_ga/internal/global"
)

var (
	graine  int64
	verbose bool
)

// rootCmd est la commande de base.
var rootCmd = &cobra.Command{
	Use:   "adminctl",
	Short: "Outils en ligne de commande du portail ADMIN.GA",
	Long: `adminctl génère et contrôle les données synthétiques du portail
administratif : organismes publics gabonais, postes, comptes et
fonctionnaires.

Commandes disponibles :
  generer  - Génère le système complet et affiche un résumé
  rapport  - Produit le rapport de contrôle (json, csv, html, texte)
  importer - Importe des fixtures d'extension depuis un fichier YAML`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			logrus.SetLevel(logrus.DebugLevel)
		} else {
			logrus.SetLevel(logrus.WarnLevel)
		}
		global.InitValidator()
	},
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&graine, "graine", 2025, "Graine du générateur pseudo-aléatoire")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Journalisation détaillée")

	rootCmd.AddCommand(genererCmd)
	rootCmd.AddCommand(rapportCmd)
	rootCmd.AddCommand(importerCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
