package session

import (
	"encoding/json"
	"log"

	"duel/internal/game/match"
	"duel/internal/network"
	"duel/internal/services/feed"
	"duel/internal/session/message"

	"github.com/google/uuid"
)

// CommandHandlerFunc define a assinatura das funções que tratam comandos do cliente.
type CommandHandlerFunc func(h *GameHandler, c *network.Client, id string, payload json.RawMessage)

// GameHandler implementa network.EventHandler. É o dono do estado da partida;
// como o Hub chama um evento por vez, nada aqui precisa de lock.
type GameHandler struct {
	session *match.Session

	clients map[string]*network.Client
	ids     map[*network.Client]string

	router map[string]CommandHandlerFunc

	newID func() string
	feed  feed.Publisher
}

// Option configura o GameHandler.
type Option func(*GameHandler)

// WithIDGenerator troca o gerador de identidades (UUID v4 por padrão).
func WithIDGenerator(gen func() string) Option {
	return func(h *GameHandler) { h.newID = gen }
}

// WithPublisher liga o GameHandler a um feed de eventos.
func WithPublisher(p feed.Publisher) Option {
	return func(h *GameHandler) { h.feed = p }
}

func NewGameHandler(opts ...Option) *GameHandler {
	h := &GameHandler{
		session: match.NewSession(),
		clients: make(map[string]*network.Client),
		ids:     make(map[*network.Client]string),
		router:  make(map[string]CommandHandlerFunc),
		newID:   uuid.NewString,
		feed:    feed.Nop{},
	}
	for _, opt := range opts {
		opt(h)
	}
	h.registerCommands()
	return h
}

// State expõe uma cópia do estado atual da partida.
func (h *GameHandler) State() match.Match {
	return h.session.State()
}

// --- Implementação da Interface network.EventHandler ---

func (h *GameHandler) OnConnect(c *network.Client) {
	id := h.newID()
	h.clients[id] = c
	h.ids[c] = id

	h.dispatch(h.session.Handle(match.Connect{ID: id}))

	if _, joined := match.Find(h.session.State(), id); !joined {
		// Partida cheia: o erro já está no buffer, o cliente é encerrado em seguida.
		h.forget(c)
		c.Close()
		log.Printf("[GameHandler] Conexão de %s recusada: partida cheia.", c.RemoteAddr())
		return
	}
	log.Printf("[GameHandler] Jogador %s conectado (%s). Jogadores: %d", id, c.RemoteAddr(), len(h.clients))
}

func (h *GameHandler) OnDisconnect(c *network.Client) {
	id, ok := h.ids[c]
	if !ok {
		return
	}
	h.forget(c)
	log.Printf("[GameHandler] Jogador %s desconectado. Jogadores: %d", id, len(h.clients))

	h.dispatch(h.session.Handle(match.Disconnect{ID: id}))
}

func (h *GameHandler) OnMessage(c *network.Client, msg network.Message) {
	id, ok := h.ids[c]
	if !ok {
		return
	}

	handler, found := h.router[msg.Type]
	if !found {
		message.SendError(c, message.CodeUnknownCommand, "unknown command: %s", msg.Type)
		return
	}
	handler(h, c, id, msg.Payload)
}

func (h *GameHandler) forget(c *network.Client) {
	delete(h.clients, h.ids[c])
	delete(h.ids, c)
}
