package match

import (
	"errors"
	"testing"

	"duel/internal/game/combat"
)

func payloadsOf[T any](out []Outbound) []T {
	var found []T
	for _, o := range out {
		if p, ok := o.Payload.(T); ok {
			found = append(found, p)
		}
	}
	return found
}

func activeSession(t *testing.T) *Session {
	t.Helper()
	s := NewSession()
	s.Handle(Connect{ID: "p1"})
	s.Handle(Connect{ID: "p2"})
	if _, ok := s.State().(Active); !ok {
		t.Fatalf("expected Active, got %T", s.State())
	}
	return s
}

func TestConnectFormsMatch(t *testing.T) {
	s := NewSession()

	out := s.Handle(Connect{ID: "p1"})
	w, ok := s.State().(Waiting)
	if !ok {
		t.Fatalf("expected Waiting, got %T", s.State())
	}
	if w.P.Health != combat.StartingHealth || w.P.Ready || w.P.Attack != combat.None {
		t.Fatalf("unexpected fresh participant: %+v", w.P)
	}
	welcome := payloadsOf[Welcome](out)
	if len(welcome) != 1 || welcome[0].ID != "p1" || out[0].To != "p1" {
		t.Fatalf("expected welcome addressed to p1, got %+v", out)
	}
	if len(payloadsOf[RosterUpdate](out)) != 1 {
		t.Fatalf("expected roster broadcast")
	}

	out = s.Handle(Connect{ID: "p2"})
	roster := payloadsOf[RosterUpdate](out)
	if len(roster) != 1 || len(roster[0].Players) != 2 {
		t.Fatalf("expected roster with two players, got %+v", roster)
	}
}

func TestThirdConnectionRejected(t *testing.T) {
	s := activeSession(t)
	before := s.State()

	out := s.Handle(Connect{ID: "p3"})
	if len(out) != 1 || out[0].To != "p3" {
		t.Fatalf("expected a single rejection to p3, got %+v", out)
	}
	rej, ok := out[0].Payload.(Rejected)
	if !ok || !errors.Is(rej.Err, ErrMatchFull) {
		t.Fatalf("expected ErrMatchFull, got %+v", out[0].Payload)
	}
	if s.State() != before {
		t.Fatalf("state changed on rejected connection")
	}
}

func TestDisconnect(t *testing.T) {
	s := activeSession(t)
	s.Handle(Ready{ID: "p1"})
	s.Handle(Commit{ID: "p1", Attack: combat.Head, Block: combat.Legs})

	out := s.Handle(Disconnect{ID: "p2"})
	w, ok := s.State().(Waiting)
	if !ok {
		t.Fatalf("expected Waiting, got %T", s.State())
	}
	if w.P.ID != "p1" || w.P.Ready || w.P.Committed() {
		t.Fatalf("remaining participant not reset: %+v", w.P)
	}
	roster := payloadsOf[RosterUpdate](out)
	if len(roster) != 1 || len(roster[0].Players) != 1 {
		t.Fatalf("expected roster with one player, got %+v", out)
	}

	if out := s.Handle(Disconnect{ID: "ghost"}); out != nil {
		t.Fatalf("unknown disconnect should emit nothing, got %+v", out)
	}
	s.Handle(Disconnect{ID: "p1"})
	if _, ok := s.State().(Empty); !ok {
		t.Fatalf("expected Empty, got %T", s.State())
	}
	if out := s.Handle(Disconnect{ID: "p1"}); out != nil {
		t.Fatalf("repeated disconnect should emit nothing, got %+v", out)
	}
}

func TestMatchStartOnceWhenBothReady(t *testing.T) {
	s := activeSession(t)

	out := s.Handle(Ready{ID: "p1"})
	if len(payloadsOf[MatchStart](out)) != 0 {
		t.Fatalf("match started with a single ready participant")
	}
	out = s.Handle(Ready{ID: "p2"})
	if len(payloadsOf[MatchStart](out)) != 1 {
		t.Fatalf("expected match start, got %+v", out)
	}
	out = s.Handle(Ready{ID: "p2"})
	if len(payloadsOf[MatchStart](out)) != 0 {
		t.Fatalf("match start emitted twice")
	}
	if len(payloadsOf[RosterUpdate](out)) != 1 {
		t.Fatalf("ready must always broadcast the roster")
	}
}

func TestReadyBeforeOpponentArrives(t *testing.T) {
	s := NewSession()
	s.Handle(Connect{ID: "p1"})
	s.Handle(Ready{ID: "p1"})
	s.Handle(Connect{ID: "p2"})

	out := s.Handle(Ready{ID: "p2"})
	if len(payloadsOf[MatchStart](out)) != 1 {
		t.Fatalf("expected match start once the late player readies")
	}
}

func TestSingleCommitDoesNotResolve(t *testing.T) {
	s := activeSession(t)

	out := s.Handle(Commit{ID: "p1", Attack: combat.Head, Block: combat.Chest})
	if len(out) != 0 {
		t.Fatalf("single commit must not emit, got %+v", out)
	}
	a := s.State().(Active)
	if a.A.Attack != combat.Head || a.A.Block != combat.Chest {
		t.Fatalf("commit not recorded: %+v", a.A)
	}

	// Reenvio antes da resolução sobrescreve.
	s.Handle(Commit{ID: "p1", Attack: combat.Legs, Block: combat.Groin})
	a = s.State().(Active)
	if a.A.Attack != combat.Legs || a.A.Block != combat.Groin {
		t.Fatalf("recommit not recorded: %+v", a.A)
	}
}

func TestInvalidCommitIgnored(t *testing.T) {
	s := activeSession(t)
	s.Handle(Commit{ID: "p1", Attack: combat.Head, Block: combat.Chest})
	before := s.State()

	out := s.Handle(Commit{ID: "p2", Attack: combat.BodyPart(42), Block: combat.Head})
	if len(out) != 1 || out[0].To != "p2" {
		t.Fatalf("expected a single rejection to p2, got %+v", out)
	}
	if rej := out[0].Payload.(Rejected); !errors.Is(rej.Err, ErrInvalidAction) {
		t.Fatalf("expected ErrInvalidAction, got %v", rej.Err)
	}
	if len(payloadsOf[RoundResult](out)) != 0 {
		t.Fatalf("invalid commit triggered a resolution")
	}
	if s.State() != before {
		t.Fatalf("state changed on invalid commit")
	}

	out = s.Handle(Commit{ID: "p2", Attack: combat.Head, Block: combat.None})
	if len(payloadsOf[Rejected](out)) != 1 || s.State() != before {
		t.Fatalf("unset block must be rejected")
	}
}

func TestCommitWithoutOpponent(t *testing.T) {
	s := NewSession()
	s.Handle(Connect{ID: "p1"})

	out := s.Handle(Commit{ID: "p1", Attack: combat.Head, Block: combat.Head})
	rej := payloadsOf[Rejected](out)
	if len(rej) != 1 || !errors.Is(rej[0].Err, ErrNoOpponent) {
		t.Fatalf("expected ErrNoOpponent, got %+v", out)
	}
}

func TestRoundScenarios(t *testing.T) {
	tests := []struct {
		name        string
		p1, p2      Participant
		wantHealth  [2]int
		wantDamages [2]int
		winner      string
	}{
		{
			name:        "head trade, only p2 blocks head",
			p1:          Participant{ID: "p1", Attack: combat.Head, Block: combat.Chest, Health: 100},
			p2:          Participant{ID: "p2", Attack: combat.Head, Block: combat.Head, Health: 100},
			wantHealth:  [2]int{70, 100},
			wantDamages: [2]int{30, 0},
		},
		{
			name:        "both block legs",
			p1:          Participant{ID: "p1", Attack: combat.Legs, Block: combat.Legs, Health: 100},
			p2:          Participant{ID: "p2", Attack: combat.Legs, Block: combat.Legs, Health: 100},
			wantHealth:  [2]int{100, 100},
			wantDamages: [2]int{0, 0},
		},
		{
			name:        "p2 finishes p1",
			p1:          Participant{ID: "p1", Attack: combat.Groin, Block: combat.Chest, Health: 20},
			p2:          Participant{ID: "p2", Attack: combat.Head, Block: combat.Groin, Health: 100},
			wantHealth:  [2]int{-10, 100},
			wantDamages: [2]int{30, 0},
			winner:      "p2",
		},
		{
			name:        "mutual knockout",
			p1:          Participant{ID: "p1", Attack: combat.Chest, Block: combat.Legs, Health: 20},
			p2:          Participant{ID: "p2", Attack: combat.Groin, Block: combat.Head, Health: 15},
			wantHealth:  [2]int{-5, -5},
			wantDamages: [2]int{25, 20},
			winner:      DrawWinner,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			pending := tc.p2
			pending.Attack, pending.Block = combat.None, combat.None
			start := Active{A: tc.p1, B: pending, Started: true}

			next, out := Apply(start, Commit{ID: "p2", Attack: tc.p2.Attack, Block: tc.p2.Block})

			results := payloadsOf[RoundResult](out)
			if len(results) != 1 {
				t.Fatalf("expected one round result, got %+v", out)
			}
			r := results[0]
			if r.Players["p1"].Health != tc.wantHealth[0] || r.Players["p2"].Health != tc.wantHealth[1] {
				t.Fatalf("health = (%d, %d), want %v", r.Players["p1"].Health, r.Players["p2"].Health, tc.wantHealth)
			}
			if r.Damages["p1"] != tc.wantDamages[0] || r.Damages["p2"] != tc.wantDamages[1] {
				t.Fatalf("damages = %v, want %v", r.Damages, tc.wantDamages)
			}
			if r.Actions["p1"].Attack != tc.p1.Attack || r.Actions["p2"].Block != tc.p2.Block {
				t.Fatalf("actions not reported: %+v", r.Actions)
			}

			a := next.(Active)
			if a.A.Committed() || a.B.Committed() || a.A.Attack != combat.None || a.B.Block != combat.None {
				t.Fatalf("pending choices not cleared: %+v / %+v", a.A, a.B)
			}

			over := payloadsOf[MatchOver](out)
			if tc.winner == "" {
				if len(over) != 0 {
					t.Fatalf("unexpected match over: %+v", over)
				}
				if a.A.Health != tc.wantHealth[0] || a.B.Health != tc.wantHealth[1] || !a.Started {
					t.Fatalf("state after round: %+v", a)
				}
				return
			}

			if len(over) != 1 || over[0].Winner != tc.winner {
				t.Fatalf("expected winner %q, got %+v", tc.winner, over)
			}
			for _, p := range a.Participants() {
				if p.Health != combat.StartingHealth || p.Ready {
					t.Fatalf("participant not reset after match: %+v", p)
				}
			}
			if a.Started {
				t.Fatalf("started flag not reset after match")
			}
		})
	}
}

func TestFullMatchThenRematch(t *testing.T) {
	s := activeSession(t)
	s.Handle(Ready{ID: "p1"})
	s.Handle(Ready{ID: "p2"})

	var over []MatchOver
	rounds := 0
	for len(over) == 0 {
		rounds++
		if rounds > 10 {
			t.Fatalf("match did not end")
		}
		s.Handle(Commit{ID: "p1", Attack: combat.Head, Block: combat.Legs})
		out := s.Handle(Commit{ID: "p2", Attack: combat.Legs, Block: combat.Chest})
		over = payloadsOf[MatchOver](out)
	}

	// 30 por rodada contra 100 de vida: quatro rodadas.
	if rounds != 4 || over[0].Winner != "p1" || over[0].Draw() {
		t.Fatalf("rounds=%d over=%+v", rounds, over)
	}

	s.Handle(Ready{ID: "p1"})
	out := s.Handle(Ready{ID: "p2"})
	if len(payloadsOf[MatchStart](out)) != 1 {
		t.Fatalf("expected a second match start after reset")
	}
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	start := Active{
		A: Participant{ID: "p1", Attack: combat.Head, Block: combat.Head, Health: 100},
		B: NewParticipant("p2"),
	}
	Apply(start, Commit{ID: "p2", Attack: combat.Chest, Block: combat.Chest})
	if start.A.Health != 100 || start.A.Attack != combat.Head || start.B.Committed() {
		t.Fatalf("input state mutated: %+v", start)
	}
}
