// Package ticketref genera los números visibles de tickets de soporte a partir
// de la secuencia interna. La codificación es reversible (base fija + salt XOR),
// con alfabeto sin caracteres ambiguos (0/O/1/I/L) y largo mínimo garantizado.
// Es solo presentación: nunca debe usarse como token de autorización.
package ticketref

import (
	"fmt"
	"math"
	"strings"
)

const (
	// Alfabeto fijo de 31 caracteres; excluye 0, O, 1, I y L.
	alphabet = "23456789ABCDEFGHJKMNPQRSTUVWXYZ"

	// Prefijo textual de todos los números de ticket.
	Prefix = "TCK-"

	// Largo mínimo de la parte codificada (sin prefijo).
	minLength = 6

	// Salt fijo aplicado con XOR antes de codificar; invertible por definición.
	salt uint64 = 0x5A3C19E7
)

var charIndex = buildCharIndex()

func buildCharIndex() map[byte]uint64 {
	m := make(map[byte]uint64, len(alphabet))
	for i := 0; i < len(alphabet); i++ {
		m[alphabet[i]] = uint64(i)
	}
	return m
}

// Encode convierte el valor de secuencia n en el número de ticket visible.
// Dos valores distintos siempre producen cadenas distintas.
func Encode(n uint64) string {
	v := n ^ salt
	base := uint64(len(alphabet))
	var digits []byte
	for {
		digits = append(digits, alphabet[v%base])
		v /= base
		if v == 0 {
			break
		}
	}
	// digits queda en orden inverso; se invierte y se rellena a la izquierda
	// con el dígito cero del alfabeto (no altera el valor decodificado).
	for i, j := 0, len(digits)-1; i < j; i, j = i+1, j-1 {
		digits[i], digits[j] = digits[j], digits[i]
	}
	var b strings.Builder
	for i := len(digits); i < minLength; i++ {
		b.WriteByte(alphabet[0])
	}
	b.Write(digits)
	return Prefix + b.String()
}

// Decode recupera el valor de secuencia original desde un número de ticket.
// Acepta el número con o sin prefijo y en cualquier combinación de mayúsculas.
func Decode(s string) (uint64, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	s = strings.TrimPrefix(s, Prefix)
	if s == "" {
		return 0, fmt.Errorf("ticketref: cadena vacía")
	}
	var v uint64
	base := uint64(len(alphabet))
	for i := 0; i < len(s); i++ {
		d, ok := charIndex[s[i]]
		if !ok {
			return 0, fmt.Errorf("ticketref: carácter inválido %q", s[i])
		}
		if v > (math.MaxUint64-d)/base {
			return 0, fmt.Errorf("ticketref: valor fuera de rango")
		}
		v = v*base + d
	}
	return v ^ salt, nil
}
