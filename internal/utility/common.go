package utility

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"

	"admin_ga/internal/common"
)

// GoProtect enveloppe une fonction pour la protéger d'un panic.
// En cas de panic dans f(), l'erreur est interceptée et affichée au lieu
// d'arrêter le programme.
func GoProtect(f func()) {
	defer func() {
		if err := recover(); err != nil {
			fmt.Printf("Panic intercepté : %v\n", err)
		}
	}()

	f()
}

// PrettyPrint retourne une représentation JSON indentée d'une valeur
func PrettyPrint(i interface{}) string {
	s, _ := json.MarshalIndent(i, "", "\t")
	return string(s)
}

// UnixMilli retourne les millisecondes du temps donné
func UnixMilli(t time.Time) int64 {
	return t.Round(time.Millisecond).UnixNano() / (int64(time.Millisecond) / int64(time.Nanosecond))
}

// CurrentTimeInMilli retourne le timestamp courant en millisecondes
func CurrentTimeInMilli() int64 {
	return UnixMilli(time.Now())
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// ValidateEmail vérifie le format d'un email
func ValidateEmail(email string) error {
	if !emailRegex.MatchString(email) {
		return common.ErrInvalidEmail
	}
	return nil
}

// Normaliser met une chaîne en minuscules sans accents français courants,
// pour construire des identifiants (emails, codes) à partir de noms propres.
func Normaliser(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	replacer := strings.NewReplacer(
		"é", "e", "è", "e", "ê", "e", "ë", "e",
		"à", "a", "â", "a",
		"î", "i", "ï", "i",
		"ô", "o", "ö", "o",
		"ù", "u", "û", "u", "ü", "u",
		"ç", "c",
		"'", "", " ", "-",
	)
	return replacer.Replace(s)
}
