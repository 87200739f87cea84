// Package pltext adapta texto polaco a salidas que no soportan Unicode completo
// (fuentes base del PDF, nombres de archivo, cabeceras HTTP).
package pltext

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// ł/Ł no se descomponen en NFD; se sustituyen a mano.
var strokeReplacer = strings.NewReplacer("ł", "l", "Ł", "L")

// Fold elimina diacríticos: "Usługa programistyczna" → "Usluga programistyczna".
func Fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, strokeReplacer.Replace(s))
	if err != nil {
		return s
	}
	return out
}

var (
	unsafeFilenameChars = regexp.MustCompile(`[<>:"/\\|?*\x00-\x1f\x7f]`)
	repeatedUnderscores = regexp.MustCompile(`_+`)
)

// SafeFilename sustituye caracteres peligrosos y de control por "_", colapsa los repetidos
// y elimina diacríticos. "FV/2025/01" → "FV_2025_01".
func SafeFilename(name string) string {
	name = unsafeFilenameChars.ReplaceAllString(Fold(name), "_")
	name = repeatedUnderscores.ReplaceAllString(name, "_")
	name = strings.Trim(name, "_")
	if name == "" {
		return "unknown"
	}
	return name
}
