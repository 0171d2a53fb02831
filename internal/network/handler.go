package network

// EventHandler é a interface que conecta a lógica da rede com a lógica do jogo.
// Todos os métodos são chamados pela goroutine do Hub, um evento por vez,
// então a implementação pode mexer no seu estado sem locks.
type EventHandler interface {
	// OnConnect é chamado quando um novo cliente se conecta com sucesso.
	OnConnect(c *Client)

	// OnDisconnect é chamado quando um cliente se desconecta.
	// Não é chamado para clientes encerrados via Client.Close.
	OnDisconnect(c *Client)

	// OnMessage é chamado quando uma nova mensagem é recebida de um cliente.
	OnMessage(c *Client, msg Message)
}
