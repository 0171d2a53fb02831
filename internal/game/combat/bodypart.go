package combat

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrInvalidBodyPart é retornado quando um alvo de ataque ou bloqueio não pertence à enumeração.
var ErrInvalidBodyPart = errors.New("invalid body part")

// BodyPart é uma região do corpo que pode ser atacada ou bloqueada.
// O valor zero (None) significa "ainda não escolhido".
type BodyPart uint8

const (
	None BodyPart = iota
	Head
	Chest
	Groin
	Legs
)

// Tabela fixa de dano por região. Não é estado mutável.
var damageTable = map[BodyPart]int{
	Head:  30,
	Chest: 20,
	Groin: 25,
	Legs:  15,
}

var names = map[BodyPart]string{
	Head:  "head",
	Chest: "chest",
	Groin: "groin",
	Legs:  "legs",
}

// All retorna todas as regiões válidas, na ordem da enumeração.
func All() []BodyPart {
	return []BodyPart{Head, Chest, Groin, Legs}
}

// ParseBodyPart converte o nome usado no protocolo ("head", "chest", ...) para um BodyPart.
func ParseBodyPart(s string) (BodyPart, error) {
	for part, name := range names {
		if name == s {
			return part, nil
		}
	}
	return None, fmt.Errorf("%w: %q", ErrInvalidBodyPart, s)
}

// Valid informa se a região pertence à enumeração (None não é válida).
func (b BodyPart) Valid() bool {
	_, ok := damageTable[b]
	return ok
}

// Damage retorna o dano base de um ataque nesta região. Zero para None.
func (b BodyPart) Damage() int {
	return damageTable[b]
}

func (b BodyPart) String() string {
	if name, ok := names[b]; ok {
		return name
	}
	if b == None {
		return "none"
	}
	return fmt.Sprintf("BodyPart(%d)", uint8(b))
}

// MarshalJSON escreve o nome da região, ou null quando não escolhida.
func (b BodyPart) MarshalJSON() ([]byte, error) {
	if b == None {
		return []byte("null"), nil
	}
	if !b.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidBodyPart, uint8(b))
	}
	return json.Marshal(b.String())
}

// UnmarshalJSON aceita o nome da região ou null.
func (b *BodyPart) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*b = None
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidBodyPart, data)
	}
	part, err := ParseBodyPart(s)
	if err != nil {
		return err
	}
	*b = part
	return nil
}
