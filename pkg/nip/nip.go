// Package nip valida el Numer Identyfikacji Podatkowej (NIP) polaco:
// 10 dígitos donde el último es el dígito de control módulo 11.
package nip

import (
	"errors"
	"strings"
)

// pesos aplicados a los 9 primeros dígitos del NIP, de izquierda a derecha.
var nipWeights = [9]int{6, 5, 7, 2, 3, 4, 5, 6, 7}

// ErrNoCheckDigit indica que la suma ponderada da 10: ningún NIP válido empieza con esos 9 dígitos.
var ErrNoCheckDigit = errors.New("nip: la suma de control es 10, no existe dígito de control válido")

// Normalize elimina espacios y guiones. "526-104-08-28" → "5261040828".
func Normalize(id string) string {
	return strings.NewReplacer(" ", "", "-", "").Replace(id)
}

// Valid indica si id es un NIP correcto. Nunca falla: cualquier entrada mal
// formada (longitud distinta de 10, caracteres no numéricos) devuelve false.
func Valid(id string) bool {
	digits := Normalize(id)
	if len(digits) != 10 || !allDigits(digits) {
		return false
	}
	return weightedSum(digits[:9])%11 == int(digits[9]-'0')
}

// CheckDigit calcula el dígito de control para los 9 primeros dígitos del NIP.
func CheckDigit(first9 string) (int, error) {
	digits := Normalize(first9)
	if len(digits) != 9 || !allDigits(digits) {
		return 0, errors.New("nip: se requieren exactamente 9 dígitos")
	}
	sum := weightedSum(digits) % 11
	if sum == 10 {
		return 0, ErrNoCheckDigit
	}
	return sum, nil
}

// Format devuelve el NIP con el agrupamiento habitual XXX-XXX-XX-XX.
// Si id no es válido se devuelve sin cambios.
func Format(id string) string {
	if !Valid(id) {
		return id
	}
	d := Normalize(id)
	return d[0:3] + "-" + d[3:6] + "-" + d[6:8] + "-" + d[8:10]
}

// HasDigits indica si s contiene al menos un dígito. El formulario envía textos
// como "Brak (Osoba Fizyczna)" cuando el vendedor no tiene NIP.
func HasDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			return true
		}
	}
	return false
}

func weightedSum(digits string) int {
	var sum int
	for i := 0; i < len(nipWeights) && i < len(digits); i++ {
		sum += int(digits[i]-'0') * nipWeights[i]
	}
	return sum
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
