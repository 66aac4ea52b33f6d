package ticketref_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/correduria-api/pkg/ticketref"
)

// ──────────────────────────────────────────────────────────────────────────────
// Round-trip y propiedades del formato
// ──────────────────────────────────────────────────────────────────────────────

func TestEncode_Decode_RoundTrip(t *testing.T) {
	for _, n := range []uint64{0, 1, 2, 30, 31, 32, 1000, 999999, 1 << 40} {
		code := ticketref.Encode(n)
		got, err := ticketref.Decode(code)
		require.NoError(t, err, "decode de %q", code)
		assert.Equal(t, n, got, "round-trip de %d", n)
	}
}

func TestEncode_PrefijoYLargoMinimo(t *testing.T) {
	for _, n := range []uint64{0, 1, 7, 500} {
		code := ticketref.Encode(n)
		assert.True(t, strings.HasPrefix(code, ticketref.Prefix),
			"%q debe llevar el prefijo %q", code, ticketref.Prefix)
		assert.GreaterOrEqual(t, len(code)-len(ticketref.Prefix), 6,
			"la parte codificada de %q debe tener al menos 6 caracteres", code)
	}
}

// Secuencias consecutivas nunca colisionan en su forma visible.
func TestEncode_SecuenciasDistintasProducenCodigosDistintos(t *testing.T) {
	seen := make(map[string]uint64, 5000)
	for n := uint64(1); n <= 5000; n++ {
		code := ticketref.Encode(n)
		if prev, ok := seen[code]; ok {
			t.Fatalf("colisión: %d y %d producen %q", prev, n, code)
		}
		seen[code] = n
	}
}

func TestEncode_SinCaracteresAmbiguos(t *testing.T) {
	for n := uint64(0); n < 2000; n++ {
		body := strings.TrimPrefix(ticketref.Encode(n), ticketref.Prefix)
		assert.NotContains(t, body, "0")
		assert.NotContains(t, body, "O")
		assert.NotContains(t, body, "1")
		assert.NotContains(t, body, "I")
		assert.NotContains(t, body, "L")
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Decode: tolerancia de entrada
// ──────────────────────────────────────────────────────────────────────────────

func TestDecode_AceptaMinusculasYSinPrefijo(t *testing.T) {
	code := ticketref.Encode(4242)

	got, err := ticketref.Decode(strings.ToLower(code))
	require.NoError(t, err)
	assert.Equal(t, uint64(4242), got, "decode debe ser case-insensitive")

	got, err = ticketref.Decode(strings.TrimPrefix(code, ticketref.Prefix))
	require.NoError(t, err)
	assert.Equal(t, uint64(4242), got, "decode debe aceptar el código sin prefijo")

	got, err = ticketref.Decode("  " + code + "  ")
	require.NoError(t, err)
	assert.Equal(t, uint64(4242), got, "decode debe tolerar espacios alrededor")
}

func TestDecode_EntradaInvalida(t *testing.T) {
	_, err := ticketref.Decode("")
	assert.Error(t, err, "cadena vacía debe fallar")

	_, err = ticketref.Decode("TCK-")
	assert.Error(t, err, "solo el prefijo debe fallar")

	_, err = ticketref.Decode("TCK-AB0CD")
	assert.Error(t, err, "caracteres fuera del alfabeto deben fallar")

	_, err = ticketref.Decode("TCK-ABC!D")
	assert.Error(t, err)
}

// Valores que no caben en uint64 se rechazan en vez de desbordar en silencio.
func TestDecode_ValorFueraDeRango(t *testing.T) {
	_, err := ticketref.Decode("TCK-" + strings.Repeat("Z", 20))
	assert.Error(t, err)

	_, err = ticketref.Decode(strings.Repeat("Z", 64))
	assert.Error(t, err)
}

// El relleno con el dígito cero del alfabeto no altera el valor decodificado,
// por largo que sea.
func TestDecode_RellenoLargoNoDesborda(t *testing.T) {
	want, err := ticketref.Decode("TCK-3")
	require.NoError(t, err)

	got, err := ticketref.Decode("TCK-" + strings.Repeat("2", 40) + "3")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
