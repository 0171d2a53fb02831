// Package feed publica os acontecimentos das partidas (rodadas resolvidas e
// fins de partida) num subject NATS, para espectadores e estatísticas.
package feed

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/nats-io/nats.go"
)

// Kinds de evento publicados. O subject final é "<subject base>.<kind>".
const (
	KindRound = "round"
	KindMatch = "match"
)

// ErrDisconnected é retornado pelo health check quando a conexão NATS caiu.
var ErrDisconnected = errors.New("nats connection is not established")

// Event é o envelope publicado no NATS.
type Event struct {
	Kind string    `json:"kind"`
	At   time.Time `json:"at"`
	Data any       `json:"data"`
}

// Publisher é o que o GameHandler usa para divulgar eventos.
type Publisher interface {
	Publish(kind string, data any) error
	Close()
}

// Nop é usado quando nenhum NATS foi configurado.
type Nop struct{}

func (Nop) Publish(string, any) error { return nil }
func (Nop) Close() {}

// natsConn é o subconjunto de *nats.Conn que o publicador precisa.
type natsConn interface {
	Publish(subject string, data []byte) error
	IsConnected() bool
	Drain() error
}

// NATSPublisher publica eventos em JSON num subject NATS.
type NATSPublisher struct {
	conn    natsConn
	subject string
	now     func() time.Time
}

// Connect abre a conexão com o NATS. A reconexão fica a cargo da biblioteca.
func Connect(url, subject, clientName string) (*NATSPublisher, error) {
	nc, err := nats.Connect(url,
		nats.Name(clientName),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			log.Printf("[Feed] Desconectado do NATS: %v", err)
		}),
		nats.ReconnectHandler(func(c *nats.Conn) {
			log.Printf("[Feed] Reconectado ao NATS em %s", c.ConnectedUrl())
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("connect to nats at %s: %w", url, err)
	}
	return newNATSPublisher(nc, subject), nil
}

func newNATSPublisher(conn natsConn, subject string) *NATSPublisher {
	return &NATSPublisher{conn: conn, subject: subject, now: time.Now}
}

func (p *NATSPublisher) Publish(kind string, data any) error {
	payload, err := json.Marshal(Event{Kind: kind, At: p.now().UTC(), Data: data})
	if err != nil {
		return fmt.Errorf("encode %s event: %w", kind, err)
	}
	subject := p.subject + "." + kind
	if err := p.conn.Publish(subject, payload); err != nil {
		return fmt.Errorf("publish to %s: %w", subject, err)
	}
	return nil
}

// Check serve de health check para o agregador do cluster.
func (p *NATSPublisher) Check() error {
	if !p.conn.IsConnected() {
		return ErrDisconnected
	}
	return nil
}

// Close drena as mensagens pendentes antes de fechar.
func (p *NATSPublisher) Close() {
	if err := p.conn.Drain(); err != nil {
		log.Printf("[Feed] Erro ao drenar conexão NATS: %v", err)
	}
}
