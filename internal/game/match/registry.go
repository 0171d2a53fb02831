package match

// connect registra uma nova identidade. Com a partida ativa, uma terceira
// conexão é recusada sem tocar no estado.
func connect(m Match, id string) (Match, []Outbound) {
	var next Match

	switch s := m.(type) {
	case Empty:
		next = Waiting{P: NewParticipant(id)}
	case Waiting:
		if s.P.ID == id {
			return m, nil
		}
		next = Active{A: s.P, B: NewParticipant(id)}
	case Active:
		return m, []Outbound{reject(id, ErrMatchFull)}
	default:
		return m, nil
	}

	return next, []Outbound{
		{To: id, Payload: Welcome{ID: id}},
		rosterUpdate(next),
	}
}

// disconnect remove a identidade. Quem sobra numa partida ativa volta a
// esperar com estado zerado. Identidades desconhecidas são ignoradas.
func disconnect(m Match, id string) (Match, []Outbound) {
	var next Match

	switch s := m.(type) {
	case Empty:
		return m, nil
	case Waiting:
		if s.P.ID != id {
			return m, nil
		}
		next = Empty{}
	case Active:
		rest, ok := s.Opponent(id)
		if !ok {
			return m, nil
		}
		next = Waiting{P: rest.fresh()}
	default:
		return m, nil
	}

	return next, []Outbound{rosterUpdate(next)}
}

// ready marca a prontidão. MatchStart sai uma única vez por transição para "ambos prontos".
func ready(m Match, id string) (Match, []Outbound) {
	switch s := m.(type) {
	case Empty:
		return m, nil
	case Waiting:
		if s.P.ID != id {
			return m, nil
		}
		s.P.Ready = true
		return s, []Outbound{rosterUpdate(s)}
	case Active:
		switch id {
		case s.A.ID:
			s.A.Ready = true
		case s.B.ID:
			s.B.Ready = true
		default:
			return m, nil
		}

		out := []Outbound{rosterUpdate(s)}
		if s.A.Ready && s.B.Ready && !s.Started {
			s.Started = true
			out = append(out, broadcast(MatchStart{}))
		}
		return s, out
	}
	return m, nil
}
