package domain

// Themes lists the reading themes offered by the site, in display order.
// Interpretation accepts any free-text theme; this list is informative.
var Themes = []string{"Santé", "Amour", "Argent", "Travail"}
