package dto

import "encoding/json"

// Optional distingue tres estados de un campo JSON en updates parciales:
// ausente (no tocar), null explícito (limpiar) y valor presente (reemplazar).
type Optional[T any] struct {
	Set   bool
	Null  bool
	Value T
}

// UnmarshalJSON marca el campo como enviado; null explícito queda registrado.
func (o *Optional[T]) UnmarshalJSON(b []byte) error {
	o.Set = true
	if string(b) == "null" {
		o.Null = true
		return nil
	}
	return json.Unmarshal(b, &o.Value)
}

// MarshalJSON serializa el valor (o null) para respuestas de eco.
func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.Set || o.Null {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}
