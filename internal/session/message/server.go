package message

// Mensagens no sentido servidor -> cliente.
import (
	"errors"
	"fmt"

	"duel/internal/game/match"
	"duel/internal/network"
)

// ErrorClientPayload define a estrutura de uma resposta de erro.
type ErrorClientPayload struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// CreateErrorResponse monta um RESPONSE_ERROR. Não falha: o payload é sempre serializável.
func CreateErrorResponse(code, errorMsg string) network.Message {
	msg, _ := network.NewMessage(TypeError, ErrorClientPayload{Error: errorMsg, Code: code})
	return msg
}

// ErrorCode traduz os erros de domínio para os códigos do protocolo.
func ErrorCode(err error) string {
	switch {
	case errors.Is(err, match.ErrMatchFull):
		return CodeMatchFull
	case errors.Is(err, match.ErrInvalidAction):
		return CodeInvalidAction
	case errors.Is(err, match.ErrNoOpponent):
		return CodeNoOpponent
	}
	return CodeBadRequest
}

// FromOutbound converte o payload de uma saída do match no envelope correspondente.
func FromOutbound(payload any) (network.Message, error) {
	switch p := payload.(type) {
	case match.Welcome:
		return network.NewMessage(TypeWelcome, p)
	case match.RosterUpdate:
		return network.NewMessage(TypeRosterUpdate, p)
	case match.MatchStart:
		return network.NewMessage(TypeMatchStart, nil)
	case match.RoundResult:
		return network.NewMessage(TypeRoundResult, p)
	case match.MatchOver:
		return network.NewMessage(TypeMatchOver, p)
	case match.Rejected:
		return CreateErrorResponse(ErrorCode(p.Err), p.Err.Error()), nil
	}
	return network.Message{}, fmt.Errorf("unsupported outbound payload %T", payload)
}
