package domain

import (
	"fmt"
	"strings"
)

const (
	// NeutralTheme stands in for an empty theme.
	NeutralTheme = "général"
	// NoQuestion replaces the question clause when none was asked.
	NoQuestion = "Aucune question précise n'a été posée."
	// CardSeparator joins card names in the prompt.
	CardSeparator = ", "
)

// BuildPrompt renders the reading prompt for a draw. Card order is kept
// and the theme is embedded verbatim.
func BuildPrompt(d DrawRequest) string {
	theme := d.Theme
	if theme == "" {
		theme = NeutralTheme
	}

	questionLine := NoQuestion
	if q := strings.TrimSpace(d.Question); q != "" {
		questionLine = "La question posée est : " + d.Question + "."
	}

	var b strings.Builder
	b.WriteString("Tu es une tarologue experte, pédagogue et bienveillante.\n")
	fmt.Fprintf(&b, "Voici un tirage de tarot sur le thème \"%s\" avec les cartes suivantes : %s.\n",
		theme, strings.Join(d.Cards, CardSeparator))
	b.WriteString(questionLine + "\n")
	b.WriteString("Donne une interprétation synthétique, nuancée et positive, en français, en 5 à 10 lignes maximum.\n")
	b.WriteString("Utilise un langage clair, accessible, et termine par un conseil pratique.\n")
	return b.String()
}
