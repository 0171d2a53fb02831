package network

import (
	"log"
	"time"

	"github.com/gorilla/websocket"
)

const (
	// Tempo para aguardar por uma escrita na conexão.
	writeWait = 10 * time.Second

	// Tempo máximo para aguardar por uma resposta de pong do cliente.
	pongWait = 60 * time.Second

	// Frequência com que enviamos pings para o cliente. Deve ser menor que pongWait.
	pingPeriod = (pongWait * 9) / 10

	// Tamanho do buffer de saída de cada cliente.
	sendBuffer = 256
)

// Client é a representação de um jogador conectado do ponto de vista do servidor.
type Client struct {
	conn *websocket.Conn
	hub  *Hub

	// O Hub coloca as mensagens aqui e a goroutine writeLoop as envia.
	// Fechado somente pelo Hub.
	send chan Message
}

func newClient(conn *websocket.Conn, hub *Hub) *Client {
	return &Client{
		conn: conn,
		hub:  hub,
		send: make(chan Message, sendBuffer),
	}
}

// RemoteAddr retorna o endereço do jogador, útil para logs.
func (c *Client) RemoteAddr() string {
	return c.conn.RemoteAddr().String()
}

// Deliver enfileira a mensagem sem bloquear o Hub. Se o cliente já saiu ou
// não consome o próprio buffer, retorna false; no segundo caso a conexão é
// fechada e o readLoop segue o caminho normal de desconexão.
// Deve ser chamado somente da goroutine do Hub.
func (c *Client) Deliver(msg Message) bool {
	if !c.hub.clients[c] {
		return false
	}
	select {
	case c.send <- msg:
		return true
	default:
		log.Printf("[Client] Buffer cheio para %s, derrubando conexão.", c.RemoteAddr())
		c.conn.Close()
		return false
	}
}

// Close encerra o cliente depois de enviar o que já está no buffer.
// Deve ser chamado somente da goroutine do Hub; OnDisconnect não é disparado.
func (c *Client) Close() {
	c.hub.remove(c)
}

func (c *Client) readLoop() {
	defer func() {
		select {
		case c.hub.unregister <- c:
		case <-c.hub.quit:
		}
		c.conn.Close()
	}()

	c.conn.SetReadLimit(MaxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		var msg Message
		if err := c.conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("[Client] Erro inesperado no cliente %s: %v", c.RemoteAddr(), err)
			}
			return
		}

		select {
		case c.hub.incoming <- clientMessage{client: c, msg: msg}:
		case <-c.hub.quit:
			return
		}
	}
}

// writeLoop bombeia mensagens do canal 'send' do cliente para a conexão WebSocket.
func (c *Client) writeLoop() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))

			// O canal foi fechado pelo Hub: o cliente foi desregistrado.
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
				return
			}

			if err := c.conn.WriteJSON(msg); err != nil {
				log.Printf("[Client] Erro de escrita no cliente %s: %v", c.RemoteAddr(), err)
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
