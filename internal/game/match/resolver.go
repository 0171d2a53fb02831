package match

import (
	"fmt"

	"duel/internal/game/combat"
)

// commit registra a escolha da rodada e resolve assim que os dois participantes
// tiverem ataque e bloqueio definidos. Escolhas inválidas não alteram nada.
func commit(m Match, c Commit) (Match, []Outbound) {
	if !c.Attack.Valid() || !c.Block.Valid() {
		err := fmt.Errorf("%w: attack=%s block=%s", ErrInvalidAction, c.Attack, c.Block)
		return m, []Outbound{reject(c.ID, err)}
	}

	switch s := m.(type) {
	case Empty:
		return m, nil
	case Waiting:
		if s.P.ID != c.ID {
			return m, nil
		}
		return m, []Outbound{reject(c.ID, ErrNoOpponent)}
	case Active:
		switch c.ID {
		case s.A.ID:
			s.A.Attack, s.A.Block = c.Attack, c.Block
		case s.B.ID:
			s.B.Attack, s.B.Block = c.Attack, c.Block
		default:
			return m, nil
		}

		if !s.A.Committed() || !s.B.Committed() {
			return s, nil
		}
		return resolveRound(s)
	}
	return m, nil
}

func resolveRound(s Active) (Match, []Outbound) {
	ex := combat.Resolve(s.A.fighter(), s.B.fighter())
	s.A.Health = ex.A.Health
	s.B.Health = ex.B.Health

	result := RoundResult{
		Players: Roster(s),
		Actions: map[string]Action{
			s.A.ID: {Attack: s.A.Attack, Block: s.A.Block},
			s.B.ID: {Attack: s.B.Attack, Block: s.B.Block},
		},
		Damages: map[string]int{
			s.A.ID: ex.DamageToA,
			s.B.ID: ex.DamageToB,
		},
	}
	out := []Outbound{broadcast(result)}

	s.A = s.A.clearChoices()
	s.B = s.B.clearChoices()

	var winner string
	switch ex.Terminal() {
	case combat.Continue:
		return s, out
	case combat.Draw:
		winner = DrawWinner
	case combat.AWins:
		winner = s.A.ID
	case combat.BWins:
		winner = s.B.ID
	}

	// Fim de partida: reset completo, não só da rodada.
	s.A = s.A.fresh()
	s.B = s.B.fresh()
	s.Started = false

	out = append(out, broadcast(MatchOver{Winner: winner}), rosterUpdate(s))
	return s, out
}
