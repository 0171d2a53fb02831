package message

import (
	"fmt"

	"duel/internal/network"
)

// MessageSender é qualquer destino capaz de receber um envelope. *network.Client o implementa.
type MessageSender interface {
	Deliver(msg network.Message) bool
}

// SendError envia apenas uma mensagem de erro para o cliente.
func SendError(sender MessageSender, code, format string, args ...any) {
	sender.Deliver(CreateErrorResponse(code, fmt.Sprintf(format, args...)))
}
