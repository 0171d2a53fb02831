package network

import (
	"context"
	"errors"
	"log"
	"net"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
)

// Server é a estrutura principal do servidor de rede: um Hub e as rotas HTTP.
type Server struct {
	hub        *Hub
	mux        *http.ServeMux
	httpServer *http.Server
	start      sync.Once
}

// upgrader armazena as configurações para promover uma conexão HTTP para WebSocket.
var upgrader = websocket.Upgrader{
	// Clientes servidos de qualquer origem são aceitos.
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// NewServer aceita o EventHandler que receberá os eventos do Hub.
func NewServer(handler EventHandler) *Server {
	s := &Server{
		hub: NewHub(handler),
		mux: http.NewServeMux(),
	}
	s.httpServer = &http.Server{Handler: s.mux}
	s.mux.HandleFunc("/ws", s.wsHandler)
	return s
}

// Handle registra uma rota HTTP extra (health check, arquivos estáticos...).
func (s *Server) Handle(pattern string, handler http.Handler) {
	s.mux.Handle(pattern, handler)
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// Start inicia a goroutine do Hub. Chamadas repetidas não fazem nada.
func (s *Server) Start() {
	s.start.Do(func() {
		go s.hub.Run()
	})
}

// Stop encerra o Hub e todos os clientes conectados.
func (s *Server) Stop() {
	s.hub.Stop()
}

// Shutdown para de aceitar conexões HTTP e encerra o Hub.
func (s *Server) Shutdown(ctx context.Context) error {
	defer s.Stop()
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) wsHandler(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[Server] Erro ao fazer upgrade da conexão: %v", err)
		return
	}

	client := newClient(conn, s.hub)

	select {
	case s.hub.register <- client:
	case <-s.hub.quit:
		conn.Close()
		return
	}

	go client.writeLoop()
	go client.readLoop()
}

// Listen inicia o Hub e o servidor HTTP. É bloqueante; retorna nil após um Shutdown.
func (s *Server) Listen(address string) error {
	ln, err := net.Listen("tcp", address)
	if err != nil {
		return err
	}
	s.Start()

	log.Printf("[Server] Servidor WebSocket escutando em ws://%s/ws", address)
	if err := s.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
