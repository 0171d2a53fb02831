package session

import (
	"encoding/json"
	"log"

	"duel/internal/game/match"
	"duel/internal/network"
	"duel/internal/session/message"
)

func (h *GameHandler) registerCommands() {
	h.router[message.TypePlayerReady] = handleReady
	h.router[message.TypePlayerAction] = handleAction
}

func handleReady(h *GameHandler, c *network.Client, id string, payload json.RawMessage) {
	h.dispatch(h.session.Handle(match.Ready{ID: id}))
}

// handleAction valida o payload antes de chegar à partida. Uma ação inválida
// é apenas logada e respondida ao remetente; o estado não muda.
func handleAction(h *GameHandler, c *network.Client, id string, payload json.RawMessage) {
	var req message.ActionRequest
	if err := json.Unmarshal(payload, &req); err != nil {
		log.Printf("[GameHandler] Payload de ação malformado de %s: %v", id, err)
		message.SendError(c, message.CodeBadRequest, "malformed action payload")
		return
	}

	attack, block, err := req.Parse()
	if err != nil {
		log.Printf("[GameHandler] Ação inválida de %s: %v", id, err)
		message.SendError(c, message.CodeInvalidAction, "%v", err)
		return
	}

	h.dispatch(h.session.Handle(match.Commit{ID: id, Attack: attack, Block: block}))
}
