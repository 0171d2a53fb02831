package match

// Match é o estado da sessão de dois jogadores. Os únicos valores possíveis
// são Empty, Waiting e Active; todo switch sobre Match trata os três.
type Match interface {
	// Participants retorna os participantes registrados, na ordem de chegada.
	Participants() []Participant
	isMatch()
}

// Empty: ninguém conectado.
type Empty struct{}

// Waiting: um único participante aguardando o oponente.
type Waiting struct {
	P Participant
}

// Active: dois participantes registrados. Started indica que o sinal de
// início já foi emitido para a transição atual para "ambos prontos".
type Active struct {
	A, B    Participant
	Started bool
}

func (Empty) Participants() []Participant { return nil }
func (w Waiting) Participants() []Participant { return []Participant{w.P} }
func (a Active) Participants() []Participant { return []Participant{a.A, a.B} }

func (Empty) isMatch() {}
func (Waiting) isMatch() {}
func (Active) isMatch() {}

// Roster monta o mapa identidade -> participante enviado aos clientes.
func Roster(m Match) map[string]Participant {
	roster := make(map[string]Participant)
	if m == nil {
		return roster
	}
	for _, p := range m.Participants() {
		roster[p.ID] = p
	}
	return roster
}

// Find procura um participante registrado pela identidade.
func Find(m Match, id string) (Participant, bool) {
	if m == nil {
		return Participant{}, false
	}
	for _, p := range m.Participants() {
		if p.ID == id {
			return p, true
		}
	}
	return Participant{}, false
}

// Opponent retorna o outro participante de uma partida ativa.
func (a Active) Opponent(id string) (Participant, bool) {
	switch id {
	case a.A.ID:
		return a.B, true
	case a.B.ID:
		return a.A, true
	}
	return Participant{}, false
}
