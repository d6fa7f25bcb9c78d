// Package normalize reduce cadenas a una forma canónica para comparaciones
// de unicidad: minúsculas y sin marcas diacríticas, de modo que
// "Electrónica" y "electronica" colisionen.
package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Name devuelve la forma canónica de un nombre: trim, minúsculas, sin tildes.
func Name(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	out, _, err := transform.String(stripMarks, s)
	if err != nil {
		return s
	}
	return out
}
