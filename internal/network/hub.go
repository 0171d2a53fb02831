package network

import (
	"log"
	"sync"
)

// clientMessage empacota uma mensagem com o cliente que a enviou.
type clientMessage struct {
	client *Client
	msg    Message
}

// Hub mantém o conjunto de clientes ativos e entrega os eventos ao handler.
// Run é a única goroutine que chama o EventHandler, na ordem de chegada.
type Hub struct {
	// Acessado SOMENTE pela goroutine do Hub.
	clients map[*Client]bool

	register   chan *Client
	unregister chan *Client
	incoming   chan clientMessage
	quit       chan struct{}
	stop       sync.Once

	handler EventHandler
}

func NewHub(handler EventHandler) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		incoming:   make(chan clientMessage),
		quit:       make(chan struct{}),
		handler:    handler,
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.clients[client] = true
			h.handler.OnConnect(client)

		case client := <-h.unregister:
			if h.drop(client) {
				h.handler.OnDisconnect(client)
			}

		case clientMsg := <-h.incoming:
			// Mensagens de clientes já removidos são descartadas.
			if !h.clients[clientMsg.client] {
				continue
			}
			h.handler.OnMessage(clientMsg.client, clientMsg.msg)

		case <-h.quit:
			for client := range h.clients {
				h.drop(client)
			}
			return
		}
	}
}

// Stop encerra o loop do Hub e fecha todos os clientes. Pode ser chamado mais de uma vez.
func (h *Hub) Stop() {
	h.stop.Do(func() { close(h.quit) })
}

// drop remove o cliente e fecha o seu canal 'send', sinalizando o writeLoop.
// Retorna false se o cliente já havia sido removido.
func (h *Hub) drop(client *Client) bool {
	if _, ok := h.clients[client]; !ok {
		return false
	}
	delete(h.clients, client)
	close(client.send)
	return true
}

// remove é o caminho usado pelo próprio handler quando decide encerrar um cliente.
func (h *Hub) remove(client *Client) {
	if h.drop(client) {
		log.Printf("[Hub] Cliente %s encerrado pelo servidor. Clientes ativos: %d", client.RemoteAddr(), len(h.clients))
	}
}
