package engine

import "fmt"

type Suit int

// Display order: hearts first, spades last. Matches the table layout.
const (
	SuitHearts Suit = iota
	SuitClubs
	SuitDiamonds
	SuitSpades
)

const NumSuits = 4

func (s Suit) String() string {
	switch s {
	case SuitHearts:
		return "H"
	case SuitClubs:
		return "C"
	case SuitDiamonds:
		return "D"
	case SuitSpades:
		return "S"
	default:
		return "?"
	}
}

func (s Suit) Name() string {
	switch s {
	case SuitHearts:
		return "Hearts"
	case SuitClubs:
		return "Clubs"
	case SuitDiamonds:
		return "Diamonds"
	case SuitSpades:
		return "Spades"
	default:
		return "?"
	}
}

type Rank int

const (
	Rank7 Rank = iota
	Rank8
	Rank9
	RankJ
	RankQ
	RankK
	Rank10
	RankA
)

const NumRanks = 8

func (r Rank) String() string {
	switch r {
	case Rank7:
		return "7"
	case Rank8:
		return "8"
	case Rank9:
		return "9"
	case RankJ:
		return "J"
	case RankQ:
		return "Q"
	case RankK:
		return "K"
	case Rank10:
		return "10"
	case RankA:
		return "A"
	default:
		return "?"
	}
}

type Card struct {
	Suit Suit
	Rank Rank
}

func (c Card) String() string {
	return fmt.Sprintf("%s%s", c.Rank.String(), c.Suit.String())
}

// DeckSize is the full deck: every suit crossed with every rank.
const DeckSize = NumSuits * NumRanks

// Seat is one of the four fixed positions at the table, in turn order.
// SeatPlayer and SeatPartner form TeamA, the two opponents TeamB.
type Seat int

const (
	SeatPlayer Seat = iota
	SeatOpponent1
	SeatPartner
	SeatOpponent2
)

const NumSeats = 4

func (s Seat) Next() Seat {
	return (s + 1) % NumSeats
}

func (s Seat) Team() Team {
	if s == SeatPlayer || s == SeatPartner {
		return TeamA
	}
	return TeamB
}

func (s Seat) String() string {
	switch s {
	case SeatPlayer:
		return "Player"
	case SeatOpponent1:
		return "Opponent 1"
	case SeatPartner:
		return "Partner"
	case SeatOpponent2:
		return "Opponent 2"
	default:
		return "?"
	}
}

type Team int

const (
	TeamA Team = iota
	TeamB
)

const NumTeams = 2

func (t Team) Other() Team {
	if t == TeamA {
		return TeamB
	}
	return TeamA
}

func (t Team) String() string {
	if t == TeamA {
		return "Team A"
	}
	return "Team B"
}

type Phase int

const (
	// First bidding round: accept the face-up card's suit or pass.
	PhaseBidding1 Phase = iota
	// Second bidding round: call a different suit, call no-trump, or pass.
	PhaseBidding2
	PhasePlaying
	PhaseHandOver
)

func (p Phase) String() string {
	switch p {
	case PhaseBidding1:
		return "Bidding1"
	case PhaseBidding2:
		return "Bidding2"
	case PhasePlaying:
		return "Playing"
	case PhaseHandOver:
		return "HandOver"
	default:
		return "Unknown"
	}
}

// Trump is the declared suit for the hand, no-trump, or undecided
// while bidding is still open.
type Trump int

const (
	TrumpUndecided Trump = iota
	TrumpNone
	TrumpHearts
	TrumpClubs
	TrumpDiamonds
	TrumpSpades
)

func TrumpOf(s Suit) Trump {
	return TrumpHearts + Trump(s)
}

func (t Trump) Decided() bool {
	return t != TrumpUndecided
}

// TrumpSuit reports the trump suit; ok is false for undecided and no-trump.
func (t Trump) TrumpSuit() (Suit, bool) {
	if t < TrumpHearts || t > TrumpSpades {
		return 0, false
	}
	return Suit(t - TrumpHearts), true
}

func (t Trump) String() string {
	switch t {
	case TrumpUndecided:
		return "undecided"
	case TrumpNone:
		return "no trump"
	default:
		s, _ := t.TrumpSuit()
		return s.Name()
	}
}

type PlayedCard struct {
	Card Card
	Seat Seat
}

// GameState holds everything for one hand. A void or a finished hand is
// followed by DealHand, which replaces all of it in place.
type GameState struct {
	Seed    int64
	Phase   Phase
	Turn    Seat
	Starter Seat

	Hands   [NumSeats][]Card
	OutCard *Card // face-up trump candidate; nil once taken into a hand
	Stock   []Card

	Trump    Trump
	Declarer Team // valid once Trump is decided

	Trick     []PlayedCard
	Captured  [NumTeams][]Card
	LastTaker Seat // winner of the most recent trick

	Passes1 int
	Passes2 int

	Log    []string
	Result *HandResult
}

func NewGame(seed int64) GameState {
	return GameState{Seed: seed}
}

func (g *GameState) logf(format string, args ...any) {
	g.Log = append(g.Log, fmt.Sprintf(format, args...))
}
