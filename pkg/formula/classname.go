package formula

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ClassName converts a formula name into the Ruby class Homebrew expects:
// "vartui" -> "Vartui", "my-tool" -> "MyTool", "node@18" -> "NodeAT18".
func ClassName(name string) string {
	caser := cases.Title(language.Und, cases.NoLower)

	parts := strings.FieldsFunc(strings.ReplaceAll(name, "@", "-AT-"), func(r rune) bool {
		return r == '-' || r == '_' || r == '.'
	})

	var b strings.Builder
	for _, part := range parts {
		b.WriteString(caser.String(part))
	}
	return b.String()
}
