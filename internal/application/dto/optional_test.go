package dto_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/correduria-api/internal/application/dto"
)

type patchDoc struct {
	Phone dto.Optional[string] `json:"phone"`
	Limit dto.Optional[int]    `json:"limit"`
}

// Updates parciales distinguen tres estados por campo: ausente (no tocar),
// null explícito (limpiar) y valor presente (reemplazar).
func TestOptional_CampoAusente(t *testing.T) {
	var doc patchDoc
	require.NoError(t, json.Unmarshal([]byte(`{}`), &doc))

	assert.False(t, doc.Phone.Set, "campo ausente no se marca como enviado")
	assert.False(t, doc.Phone.Null)
}

func TestOptional_NullExplicito(t *testing.T) {
	var doc patchDoc
	require.NoError(t, json.Unmarshal([]byte(`{"phone":null}`), &doc))

	assert.True(t, doc.Phone.Set, "null explícito cuenta como enviado")
	assert.True(t, doc.Phone.Null, "null explícito queda registrado para limpiar")
}

func TestOptional_ValorPresente(t *testing.T) {
	var doc patchDoc
	require.NoError(t, json.Unmarshal([]byte(`{"phone":"+57 311 555 0102","limit":7}`), &doc))

	assert.True(t, doc.Phone.Set)
	assert.False(t, doc.Phone.Null)
	assert.Equal(t, "+57 311 555 0102", doc.Phone.Value)

	assert.True(t, doc.Limit.Set)
	assert.Equal(t, 7, doc.Limit.Value)
}

func TestOptional_TipoIncompatible(t *testing.T) {
	var doc patchDoc
	err := json.Unmarshal([]byte(`{"limit":"siete"}`), &doc)
	assert.Error(t, err)
}
