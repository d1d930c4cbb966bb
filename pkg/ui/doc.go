// Package ui styles what brewformula prints for humans: diagnostics on the
// error stream and the long help text. The formula itself is never styled.
//
// Styling is used only on color-capable terminals; NO_COLOR, pipes and
// redirects get plain text. Colors and styles are defined in styles.yaml
// using adaptive light/dark colors.
package ui
