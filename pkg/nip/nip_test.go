package nip_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/finbot-api/pkg/nip"
)

// 5261040828: 5*6+2*5+6*7+1*2+0*3+4*4+0*5+8*6+2*7 = 162; 162 mod 11 = 8.
const validNIP = "5261040828"

func TestValid_NIPConocido(t *testing.T) {
	assert.True(t, nip.Valid(validNIP))
	assert.True(t, nip.Valid("526-104-08-28"), "los guiones se eliminan antes de validar")
	assert.True(t, nip.Valid("526 104 08 28"), "los espacios se eliminan antes de validar")
	assert.True(t, nip.Valid("1234563218"))
}

func TestValid_CambioDeUnDigito(t *testing.T) {
	assert.False(t, nip.Valid("5261040829"), "dígito de control alterado")
	assert.False(t, nip.Valid("5261040818"), "dígito intermedio alterado")
	assert.False(t, nip.Valid("6261040828"), "primer dígito alterado")
}

func TestValid_Longitud(t *testing.T) {
	for _, in := range []string{"", "123", "12345678901", "---", "   "} {
		assert.False(t, nip.Valid(in), "entrada %q", in)
	}
}

func TestValid_CaracteresNoNumericos(t *testing.T) {
	assert.False(t, nip.Valid("52610408a8"))
	assert.False(t, nip.Valid("Brak (Osoba Fizyczna)"))
	assert.False(t, nip.Valid("５２６１０４０８２８"), "dígitos de ancho completo no son ASCII")
}

func TestValid_SumaDeControlDiez(t *testing.T) {
	// 1234567890: suma ponderada 230, 230 mod 11 = 10; ningún último dígito puede coincidir.
	for d := '0'; d <= '9'; d++ {
		assert.False(t, nip.Valid("123456789"+string(d)))
	}
}

func TestValid_Determinista(t *testing.T) {
	for i := 0; i < 3; i++ {
		assert.True(t, nip.Valid(validNIP))
	}
}

func TestCheckDigit(t *testing.T) {
	d, err := nip.CheckDigit("526104082")
	require.NoError(t, err)
	assert.Equal(t, 8, d)

	_, err = nip.CheckDigit("123456789")
	assert.ErrorIs(t, err, nip.ErrNoCheckDigit)

	_, err = nip.CheckDigit("12345")
	assert.Error(t, err)
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "526-104-08-28", nip.Format(validNIP))
	assert.Equal(t, "526-104-08-28", nip.Format("526 1040828"))
	assert.Equal(t, "123", nip.Format("123"), "los NIP inválidos se devuelven sin cambios")
}

func TestHasDigits(t *testing.T) {
	assert.True(t, nip.HasDigits("NIP 123"))
	assert.False(t, nip.HasDigits("Brak (Osoba Fizyczna)"))
	assert.False(t, nip.HasDigits(""))
}
