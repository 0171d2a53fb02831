// Bot de duelo: conecta no servidor, fica pronto e joga rodadas aleatórias
// até ser interrompido. Útil como oponente em testes manuais.
package main

import (
	"log"
	"math/rand"
	"net/url"
	"os"
	"os/signal"
	"time"

	"duel/internal/game/combat"
	"duel/internal/game/match"
	"duel/internal/network"
	"duel/internal/services/cluster"
	"duel/internal/session/message"

	"github.com/caarlos0/env/v11"
	"github.com/gorilla/websocket"
)

type botConfig struct {
	Server      string        `env:"BOT_SERVER"       envDefault:"localhost:3000"`
	ConsulAddr  string        `env:"CONSUL_HTTP_ADDR"`
	ServiceName string        `env:"SERVICE_NAME"     envDefault:"duel-server"`
	ThinkTime   time.Duration `env:"BOT_THINK_TIME"   envDefault:"1s"`
}

type bot struct {
	conn      *websocket.Conn
	cfg       botConfig
	id        string
	readySent bool
}

func main() {
	var cfg botConfig
	if err := env.Parse(&cfg); err != nil {
		log.Fatalf("FATAL: configuração inválida: %v", err)
	}

	addr := cfg.Server
	if cfg.ConsulAddr != "" {
		addr = discover(cfg)
	}

	u := url.URL{Scheme: "ws", Host: addr, Path: "/ws"}
	conn, _, err := websocket.DefaultDialer.Dial(u.String(), nil)
	if err != nil {
		log.Fatalf("FAIL: não foi possível conectar em %s: %v", u.String(), err)
	}
	defer conn.Close()
	log.Printf("Conectado em %s", u.String())

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)
	go func() {
		<-interrupt
		conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
		conn.Close()
	}()

	b := &bot{conn: conn, cfg: cfg}
	for {
		var msg network.Message
		if err := conn.ReadJSON(&msg); err != nil {
			log.Printf("Conexão encerrada: %v", err)
			return
		}
		if err := b.handle(msg); err != nil {
			log.Printf("FAIL: %v", err)
			return
		}
	}
}

// discover pergunta ao Consul por uma instância saudável do servidor.
func discover(cfg botConfig) string {
	client, err := cluster.NewConsulClient(cfg.ConsulAddr)
	if err != nil {
		log.Fatalf("FATAL: %v", err)
	}
	addr, err := cluster.DiscoverHealthy(client, cfg.ServiceName)
	if err != nil {
		log.Fatalf("FATAL: %v", err)
	}
	log.Printf("Instância descoberta via Consul: %s", addr)
	return addr
}

func (b *bot) handle(msg network.Message) error {
	switch msg.Type {
	case message.TypeWelcome:
		welcome, err := network.DecodePayload[match.Welcome](msg)
		if err != nil {
			return err
		}
		b.id = welcome.ID
		log.Printf("Identidade recebida: %s", b.id)

	case message.TypeRosterUpdate:
		roster, err := network.DecodePayload[match.RosterUpdate](msg)
		if err != nil {
			return err
		}
		if len(roster.Players) < 2 {
			b.readySent = false
			return nil
		}
		if !b.readySent {
			b.readySent = true
			return b.send(message.TypePlayerReady, nil)
		}

	case message.TypeMatchStart:
		log.Println("Partida iniciada!")
		return b.attack()

	case message.TypeRoundResult:
		round, err := network.DecodePayload[match.RoundResult](msg)
		if err != nil {
			return err
		}
		for id, p := range round.Players {
			if p.Health <= 0 {
				log.Printf("%s caiu, aguardando o fim da partida.", id)
				return nil
			}
		}
		log.Printf("Rodada: vida %d, dano recebido %d", round.Players[b.id].Health, round.Damages[b.id])
		return b.attack()

	case message.TypeMatchOver:
		over, err := network.DecodePayload[match.MatchOver](msg)
		if err != nil {
			return err
		}
		switch {
		case over.Draw():
			log.Println("Fim de partida: empate.")
		case over.Winner == b.id:
			log.Println("Fim de partida: vitória!")
		default:
			log.Println("Fim de partida: derrota.")
		}
		// Revanche: o servidor zerou a prontidão de todos.
		time.Sleep(b.cfg.ThinkTime)
		return b.send(message.TypePlayerReady, nil)

	case message.TypeError:
		payload, err := network.DecodePayload[message.ErrorClientPayload](msg)
		if err != nil {
			return err
		}
		log.Printf("Servidor respondeu com erro (%s): %s", payload.Code, payload.Error)
	}
	return nil
}

func (b *bot) attack() error {
	time.Sleep(b.cfg.ThinkTime)
	parts := combat.All()
	req := message.ActionRequest{
		Attack: parts[rand.Intn(len(parts))].String(),
		Block:  parts[rand.Intn(len(parts))].String(),
	}
	log.Printf("Atacando %s, bloqueando %s", req.Attack, req.Block)
	return b.send(message.TypePlayerAction, req)
}

func (b *bot) send(msgType string, payload any) error {
	msg, err := network.NewMessage(msgType, payload)
	if err != nil {
		return err
	}
	return b.conn.WriteJSON(msg)
}
