package network

import (
	"encoding/json"
	"fmt"
)

// Message é o envelope padrão para toda a comunicação, nos dois sentidos.
// Cada frame WebSocket carrega exatamente um envelope em JSON.
type Message struct {
	Type    string          `json:"type"`              // Ex: "PLAYER_ACTION", "ROUND_RESULT"
	Payload json.RawMessage `json:"payload,omitempty"` // Mantido bruto para decodificação pelo handler.
}

// MaxMessageSize limita o tamanho de um frame recebido de um cliente.
const MaxMessageSize = 64 * 1024

// NewMessage serializa o payload e monta o envelope. Payload nil gera um envelope sem payload.
func NewMessage(msgType string, payload any) (Message, error) {
	if payload == nil {
		return Message{Type: msgType}, nil
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return Message{}, fmt.Errorf("encode %s payload: %w", msgType, err)
	}
	return Message{Type: msgType, Payload: raw}, nil
}

// DecodePayload decodifica o payload do envelope para o tipo esperado pelo comando.
func DecodePayload[T any](msg Message) (T, error) {
	var v T
	if len(msg.Payload) == 0 {
		return v, fmt.Errorf("decode %s payload: empty payload", msg.Type)
	}
	if err := json.Unmarshal(msg.Payload, &v); err != nil {
		return v, fmt.Errorf("decode %s payload: %w", msg.Type, err)
	}
	return v, nil
}
