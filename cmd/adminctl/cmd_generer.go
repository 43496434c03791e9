package main

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"admin_ga/config"
	"admin_ga/internal/systeme/generateur"
	"admin_ga/internal/systeme/models"
)

// genererCmd génère le système complet et affiche un résumé.
var genererCmd = &cobra.Command{
	Use:   "generer",
	Short: "Génère le système complet et affiche un résumé",
	Long: `Génère l'intégralité du système synthétique (organismes, postes,
comptes, fonctionnaires, affectations) à partir du catalogue et affiche
les compteurs récapitulatifs. La même graine produit toujours le même
système.`,
	RunE: runGenerer,
}

func runGenerer(cmd *cobra.Command, args []string) error {
	cfg := &config.Configuration{Graine: graine}
	systeme, err := generateur.ImplementerSystemeComplet(cmd.Context(), cfg)
	if err != nil {
		return fmt.Errorf("génération du système : %w", err)
	}

	stats := systeme.Statistiques
	fmt.Printf("Système généré (graine %d)\n\n", graine)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "Organismes\t%d\n", stats.TotalOrganismes)
	fmt.Fprintf(w, "Postes\t%d\n", stats.TotalPostes)
	fmt.Fprintf(w, "  occupés\t%d\n", stats.PostesOccupes)
	fmt.Fprintf(w, "  vacants\t%d\n", stats.PostesVacants)
	fmt.Fprintf(w, "Utilisateurs\t%d\n", stats.TotalUtilisateurs)
	fmt.Fprintf(w, "Fonctionnaires\t%d\n", stats.TotalFonctionnaires)
	fmt.Fprintf(w, "Affectations\t%d\n", len(systeme.Affectations))
	w.Flush()

	fmt.Println("\nRépartition par type d'organisme :")
	ecrireRepartition(stats.RepartitionTypes)

	fmt.Println("\nRépartition par rôle :")
	ecrireRepartitionRoles(stats.RepartitionRoles)

	return nil
}

func ecrireRepartition(repartition map[models.TypeOrganisme]int) {
	cles := make([]string, 0, len(repartition))
	for t := range repartition {
		cles = append(cles, string(t))
	}
	sort.Strings(cles)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	for _, cle := range cles {
		fmt.Fprintf(w, "  %s\t%d\n", cle, repartition[models.TypeOrganisme(cle)])
	}
	w.Flush()
}

func ecrireRepartitionRoles(repartition map[models.RoleSysteme]int) {
	cles := make([]string, 0, len(repartition))
	for r := range repartition {
		cles = append(cles, string(r))
	}
	sort.Strings(cles)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	for _, cle := range cles {
		fmt.Fprintf(w, "  %s\t%d\n", cle, repartition[models.RoleSysteme(cle)])
	}
	w.Flush()
}
