package match

// Apply é a transição pura da sessão: dado o estado atual e um evento,
// retorna o novo estado e as mensagens a enviar. O estado de entrada não é alterado.
func Apply(m Match, ev Event) (Match, []Outbound) {
	if m == nil {
		m = Empty{}
	}

	switch e := ev.(type) {
	case Connect:
		return connect(m, e.ID)
	case Disconnect:
		return disconnect(m, e.ID)
	case Ready:
		return ready(m, e.ID)
	case Commit:
		return commit(m, e)
	}
	return m, nil
}

// Session é o dono explícito do estado de uma partida. Não é seguro para uso
// concorrente: quem o possui deve serializar os eventos (o network.Hub faz isso).
type Session struct {
	state Match
}

func NewSession() *Session {
	return &Session{state: Empty{}}
}

// Handle aplica o evento e guarda o novo estado.
func (s *Session) Handle(ev Event) []Outbound {
	var out []Outbound
	s.state, out = Apply(s.state, ev)
	return out
}

// State retorna uma cópia do estado atual.
func (s *Session) State() Match {
	return s.state
}

func broadcast(payload any) Outbound {
	return Outbound{Payload: payload}
}

func rosterUpdate(m Match) Outbound {
	return broadcast(RosterUpdate{Players: Roster(m)})
}

func reject(id string, err error) Outbound {
	return Outbound{To: id, Payload: Rejected{Err: err}}
}
