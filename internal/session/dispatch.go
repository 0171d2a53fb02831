package session

import (
	"log"

	"duel/internal/game/match"
	"duel/internal/network"
	"duel/internal/services/feed"
	"duel/internal/session/message"
)

// dispatch entrega as saídas do match aos clientes e divulga no feed o que interessa.
func (h *GameHandler) dispatch(out []match.Outbound) {
	for _, o := range out {
		msg, err := message.FromOutbound(o.Payload)
		if err != nil {
			log.Printf("[GameHandler] ERRO ao montar mensagem: %v", err)
			continue
		}

		h.observe(o)

		if o.Broadcast() {
			h.broadcast(msg)
			continue
		}
		if c, ok := h.clients[o.To]; ok {
			c.Deliver(msg)
		}
	}
}

func (h *GameHandler) broadcast(msg network.Message) {
	for _, c := range h.clients {
		c.Deliver(msg)
	}
}

// observe loga os marcos da partida e publica rodadas e resultados.
func (h *GameHandler) observe(o match.Outbound) {
	switch p := o.Payload.(type) {
	case match.MatchStart:
		log.Printf("[GameHandler] Partida iniciada.")
	case match.RoundResult:
		log.Printf("[GameHandler] Rodada resolvida. Dano recebido: %v", p.Damages)
		h.publish(feed.KindRound, p)
	case match.MatchOver:
		if p.Draw() {
			log.Printf("[GameHandler] Fim de partida: empate.")
		} else {
			log.Printf("[GameHandler] Fim de partida: vencedor %s.", p.Winner)
		}
		h.publish(feed.KindMatch, p)
	case match.Rejected:
		log.Printf("[GameHandler] Evento de %s recusado: %v", o.To, p.Err)
	}
}

func (h *GameHandler) publish(kind string, data any) {
	if err := h.feed.Publish(kind, data); err != nil {
		log.Printf("[GameHandler] ERRO ao publicar evento %s: %v", kind, err)
	}
}
