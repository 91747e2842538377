// Package game implements the war-with-penalties state machine.
//
// One Game simulates a single deal to completion. The deal is split into two
// 26-card hands; players alternate playing the front card of their hand onto
// a shared pile. A face card puts the opponent on a penalty clock equal to
// the face value; whoever runs the clock to zero wins the trick, takes the
// pile, and plays again. A game ends when a hand empties, when the move
// ceiling is hit, or when the exact pair of hand orderings repeats (some
// deals loop forever under these rules).
//
// Games are deterministic: all randomness lives in deck construction, so
// replaying the same deal always produces the same Result.
package game

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/mwhitt/warsearch/internal/deck"
)

// Seat identifies one of the two players and indexes the hand array.
type Seat uint8

const (
	Seat1 Seat = iota
	Seat2
)

// Other returns the opposing seat.
func (s Seat) Other() Seat {
	return s ^ 1
}

// ID returns the 1-based player number used in logs and the high-score file.
func (s Seat) ID() int {
	return int(s) + 1
}

func (s Seat) String() string {
	return fmt.Sprintf("player %d", s.ID())
}

// Status is the way a simulation terminated.
type Status uint8

const (
	// Win means one hand emptied; the opponent holds every card.
	Win Status = iota
	// MoveLimit means the move ceiling was reached before a win.
	MoveLimit
	// Cycle means the exact (hand1, hand2) ordering repeated.
	Cycle
)

func (s Status) String() string {
	switch s {
	case Win:
		return "win"
	case MoveLimit:
		return "move-limit"
	case Cycle:
		return "cycle"
	default:
		return "unknown"
	}
}

// Result is the immutable outcome of one simulation.
type Result struct {
	Status      Status
	Winner      Seat // meaningful only when Status == Win
	CardsPlayed int
	Tricks      int
	Deck        deck.Deck
}

// DefaultMoveLimit caps bulk-search games. Real wins land far below it;
// anything longer is treated as non-terminating.
const DefaultMoveLimit = 10000

// Config holds per-game options.
type Config struct {
	// MoveLimit aborts the game after this many cards played.
	// Zero means DefaultMoveLimit.
	MoveLimit int
	// Logger, when set, emits a debug line per turn plus periodic hand-size
	// snapshots. Leave nil on the bulk path.
	Logger *log.Logger
}

// Game is the state of one simulation. It is owned by a single goroutine
// and never shared.
type Game struct {
	deck      deck.Deck
	hands     [2][]deck.Card
	pile      []deck.Card
	active    Seat
	penalty   int
	penaltyOn bool
	played    int
	tricks    int
	moveLimit int
	logger    *log.Logger
	seen      map[string]struct{}
}

// New deals d into two hands and returns a game ready to play. Player 1
// receives the first half of the deck in order, player 2 the second half.
func New(d deck.Deck, cfg Config) *Game {
	limit := cfg.MoveLimit
	if limit <= 0 {
		limit = DefaultMoveLimit
	}
	g := &Game{
		deck:      d,
		active:    Seat1,
		moveLimit: limit,
		logger:    cfg.Logger,
		seen:      make(map[string]struct{}),
	}
	const mid = deck.Size / 2
	g.hands[Seat1] = append(make([]deck.Card, 0, deck.Size), d[:mid]...)
	g.hands[Seat2] = append(make([]deck.Card, 0, deck.Size), d[mid:]...)
	return g
}

// Play runs the game to termination and returns its result. The hand-pair
// state is recorded before every turn; revisiting a recorded state ends the
// game as a Cycle since the rules are deterministic from here on.
func (g *Game) Play() Result {
	for !g.over() && g.played < g.moveLimit {
		key := g.stateKey()
		if _, ok := g.seen[key]; ok {
			return g.result(Cycle)
		}
		g.seen[key] = struct{}{}

		g.Step()

		if g.logger != nil && g.played%100 == 0 {
			g.logger.Debug("progress",
				"moves", g.played,
				"p1_cards", len(g.hands[Seat1]),
				"p2_cards", len(g.hands[Seat2]),
				"tricks", g.tricks)
		}
	}

	if g.over() {
		return g.result(Win)
	}
	return g.result(MoveLimit)
}

func (g *Game) result(status Status) Result {
	res := Result{
		Status:      status,
		CardsPlayed: g.played,
		Tricks:      g.tricks,
		Deck:        g.deck,
	}
	if status == Win {
		if len(g.hands[Seat1]) == 0 {
			res.Winner = Seat2
		} else {
			res.Winner = Seat1
		}
	}
	return res
}

// over reports whether either hand has emptied. Emptiness is only checked
// between turns: a trick winner absorbing the pile mid-turn can never end
// the game early.
func (g *Game) over() bool {
	return len(g.hands[Seat1]) == 0 || len(g.hands[Seat2]) == 0
}

// Step plays one card for the active player. It is a no-op once the game is
// over; Play never calls it in that state.
func (g *Game) Step() {
	hand := g.hands[g.active]
	if len(hand) == 0 {
		return
	}

	card := hand[0]
	g.hands[g.active] = hand[1:]
	g.pile = append(g.pile, card)
	g.played++

	if g.logger != nil {
		g.logger.Debug("card played", "seat", g.active, "card", card, "pile", len(g.pile))
	}

	switch {
	case card.Face():
		g.penaltyOn = true
		g.penalty = card.Penalty()
		g.active = g.active.Other()
		if g.logger != nil {
			g.logger.Debug("face card", "payer", g.active, "penalty", g.penalty)
		}
	case g.penaltyOn:
		g.penalty--
		if g.penalty == 0 {
			// Trick complete: the player who just paid the last penalty
			// takes the pile and keeps the turn.
			g.tricks++
			g.penaltyOn = false
			g.hands[g.active] = append(g.hands[g.active], g.pile...)
			g.pile = g.pile[:0]
			if g.logger != nil {
				g.logger.Debug("trick won", "seat", g.active, "tricks", g.tricks,
					"hand_size", len(g.hands[g.active]))
			}
		} else {
			g.active = g.active.Other()
		}
	default:
		g.active = g.active.Other()
	}
}

// stateKey serializes both hand orderings. Two states are the same only if
// both hands hold exactly the same cards in the same order.
func (g *Game) stateKey() string {
	b := make([]byte, 0, len(g.hands[Seat1])+len(g.hands[Seat2])+1)
	for _, c := range g.hands[Seat1] {
		b = append(b, byte(c))
	}
	b = append(b, '|')
	for _, c := range g.hands[Seat2] {
		b = append(b, byte(c))
	}
	return string(b)
}

// Active returns the seat that plays next.
func (g *Game) Active() Seat {
	return g.active
}

// Hand returns a copy of the seat's current hand, front first.
func (g *Game) Hand(s Seat) []deck.Card {
	return append([]deck.Card(nil), g.hands[s]...)
}

// Pile returns a copy of the cards played in the current trick.
func (g *Game) Pile() []deck.Card {
	return append([]deck.Card(nil), g.pile...)
}

// PenaltyRemaining returns the outstanding penalty count, or 0 when no
// penalty is active.
func (g *Game) PenaltyRemaining() int {
	if !g.penaltyOn {
		return 0
	}
	return g.penalty
}

// CardsPlayed returns the total number of cards played so far.
func (g *Game) CardsPlayed() int {
	return g.played
}

// Tricks returns the number of completed tricks.
func (g *Game) Tricks() int {
	return g.tricks
}
