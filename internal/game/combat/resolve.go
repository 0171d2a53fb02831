package combat

// StartingHealth é a vida de um lutador no início de cada partida.
const StartingHealth = 100

// Fighter é o recorte do estado de um participante que a resolução precisa.
type Fighter struct {
	Attack BodyPart
	Block  BodyPart
	Health int
}

// Committed informa se o lutador já escolheu ataque e bloqueio.
func (f Fighter) Committed() bool {
	return f.Attack.Valid() && f.Block.Valid()
}

// Knocked informa se o lutador está fora de combate.
func (f Fighter) Knocked() bool {
	return f.Health <= 0
}

// Hit calcula o dano do ataque do atacante sobre o defensor.
// Um bloqueio na mesma região do ataque anula todo o dano.
func Hit(attacker, defender Fighter) int {
	if defender.Block == attacker.Attack {
		return 0
	}
	return attacker.Attack.Damage()
}

// Exchange é o resultado de uma rodada entre dois lutadores.
// DamageToA é o dano recebido por A (causado por B), e vice-versa.
type Exchange struct {
	A, B      Fighter
	DamageToA int
	DamageToB int
}

// Resolve aplica os dois ataques simultaneamente. Ambos os cálculos usam
// os estados anteriores à rodada; as escolhas pendentes são mantidas no resultado.
func Resolve(a, b Fighter) Exchange {
	toB := Hit(a, b)
	toA := Hit(b, a)

	a.Health -= toA
	b.Health -= toB

	return Exchange{A: a, B: b, DamageToA: toA, DamageToB: toB}
}

// Outcome é o desfecho terminal (ou não) de uma rodada.
type Outcome uint8

const (
	Continue Outcome = iota
	AWins
	BWins
	Draw
)

func (o Outcome) String() string {
	switch o {
	case Continue:
		return "continue"
	case AWins:
		return "a_wins"
	case BWins:
		return "b_wins"
	case Draw:
		return "draw"
	}
	return "unknown"
}

// Terminal verifica o fim da partida. Nocaute mútuo é sempre empate.
func (e Exchange) Terminal() Outcome {
	switch {
	case e.A.Knocked() && e.B.Knocked():
		return Draw
	case e.B.Knocked():
		return AWins
	case e.A.Knocked():
		return BWins
	}
	return Continue
}
