package message

// Tipos de envelope trafegados no WebSocket.
const (
	// servidor -> cliente
	TypeWelcome      = "WELCOME"
	TypeRosterUpdate = "ROSTER_UPDATE"
	TypeMatchStart   = "MATCH_START"
	TypeRoundResult  = "ROUND_RESULT"
	TypeMatchOver    = "MATCH_OVER"
	TypeError        = "RESPONSE_ERROR"

	// cliente -> servidor
	TypePlayerReady  = "PLAYER_READY"
	TypePlayerAction = "PLAYER_ACTION"
)

// Códigos de erro enviados em ErrorClientPayload.Code.
const (
	CodeMatchFull      = "match_full"
	CodeInvalidAction  = "invalid_action"
	CodeNoOpponent     = "no_opponent"
	CodeUnknownCommand = "unknown_command"
	CodeBadRequest     = "bad_request"
)
