package match

import "duel/internal/game/combat"

// Participant é um jogador conectado e o seu estado dentro da rodada.
type Participant struct {
	ID     string          `json:"id"`
	Ready  bool            `json:"ready"`
	Attack combat.BodyPart `json:"attack"`
	Block  combat.BodyPart `json:"block"`
	Health int             `json:"health"`
}

// NewParticipant cria um participante recém-chegado: vida cheia, sem prontidão e sem escolhas.
func NewParticipant(id string) Participant {
	return Participant{ID: id, Health: combat.StartingHealth}
}

// Committed informa se o participante já enviou ataque e bloqueio para a rodada atual.
func (p Participant) Committed() bool {
	return p.fighter().Committed()
}

func (p Participant) fighter() combat.Fighter {
	return combat.Fighter{Attack: p.Attack, Block: p.Block, Health: p.Health}
}

func (p Participant) clearChoices() Participant {
	p.Attack = combat.None
	p.Block = combat.None
	return p
}

// fresh devolve o participante ao estado de início de partida, mantendo a identidade.
func (p Participant) fresh() Participant {
	return NewParticipant(p.ID)
}
