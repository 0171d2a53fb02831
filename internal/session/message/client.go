package message

// Mensagens no sentido cliente -> servidor.
import (
	"fmt"

	"duel/internal/game/combat"
	"duel/internal/game/match"
)

// ActionRequest é o payload de PLAYER_ACTION.
type ActionRequest struct {
	Attack string `json:"attack"`
	Block  string `json:"block"`
}

// Parse valida os dois alvos. O erro embrulha match.ErrInvalidAction e combat.ErrInvalidBodyPart.
func (r ActionRequest) Parse() (attack, block combat.BodyPart, err error) {
	attack, err = combat.ParseBodyPart(r.Attack)
	if err != nil {
		return combat.None, combat.None, fmt.Errorf("%w: attack: %w", match.ErrInvalidAction, err)
	}
	block, err = combat.ParseBodyPart(r.Block)
	if err != nil {
		return combat.None, combat.None, fmt.Errorf("%w: block: %w", match.ErrInvalidAction, err)
	}
	return attack, block, nil
}
