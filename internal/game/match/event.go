package match

import (
	"errors"

	"duel/internal/game/combat"
)

var (
	// ErrMatchFull é enviado a uma terceira conexão enquanto a partida está ativa.
	ErrMatchFull = errors.New("match is full")

	// ErrInvalidAction marca um commit com ataque ou bloqueio fora da enumeração.
	ErrInvalidAction = errors.New("invalid action")

	// ErrNoOpponent marca um commit enviado antes de existir um oponente.
	ErrNoOpponent = errors.New("no opponent connected")
)

// DrawWinner é o marcador de empate usado no lugar de uma identidade em MatchOver.
const DrawWinner = "draw"

// Event é um evento de entrada entregue pela camada de transporte.
type Event interface {
	isEvent()
}

type Connect struct {
	ID string
}

type Disconnect struct {
	ID string
}

type Ready struct {
	ID string
}

type Commit struct {
	ID     string
	Attack combat.BodyPart
	Block  combat.BodyPart
}

func (Connect) isEvent() {}
func (Disconnect) isEvent() {}
func (Ready) isEvent() {}
func (Commit) isEvent() {}

// Outbound é uma mensagem de saída. To vazio significa broadcast para todos os participantes.
type Outbound struct {
	To      string
	Payload any
}

// Broadcast informa se a mensagem vai para todos.
func (o Outbound) Broadcast() bool {
	return o.To == ""
}

// Welcome informa ao novo cliente a sua própria identidade.
type Welcome struct {
	ID string `json:"id"`
}

// RosterUpdate é enviado após qualquer connect, disconnect ou mudança de prontidão.
type RosterUpdate struct {
	Players map[string]Participant `json:"players"`
}

// MatchStart é emitido uma única vez quando os dois participantes ficam prontos.
type MatchStart struct{}

// Action é a escolha de um participante numa rodada.
type Action struct {
	Attack combat.BodyPart `json:"attack"`
	Block  combat.BodyPart `json:"block"`
}

// RoundResult é o resultado de uma rodada resolvida. Damages guarda o dano recebido por cada identidade.
type RoundResult struct {
	Players map[string]Participant `json:"players"`
	Actions map[string]Action      `json:"actions"`
	Damages map[string]int         `json:"damages"`
}

// MatchOver carrega a identidade do vencedor ou DrawWinner.
type MatchOver struct {
	Winner string `json:"winner"`
}

// Draw informa se a partida terminou empatada.
func (m MatchOver) Draw() bool {
	return m.Winner == DrawWinner
}

// Rejected é endereçado somente a quem originou um evento recusado.
type Rejected struct {
	Err error
}
