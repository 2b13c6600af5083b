package bots

import (
	"math/rand"

	"github.com/GiacomoGaraccione/gp-belotta/internal/engine"
)

type Bot interface {
	ChooseAction(state engine.GameState, seat engine.Seat) engine.Action
}

// RandomBot is the stand-in for non-human seats. It is memoryless: no
// partnership signalling, no card counting, just fixed odds at each
// decision point.
type RandomBot struct {
	RNG *rand.Rand
}

func NewRandom(seed int64) *RandomBot {
	return &RandomBot{RNG: rand.New(rand.NewSource(seed))}
}

func (b *RandomBot) ChooseAction(state engine.GameState, seat engine.Seat) engine.Action {
	switch state.Phase {
	case engine.PhaseBidding1:
		// Accept the face-up suit half the time.
		if b.RNG.Float64() < 0.5 {
			return engine.Action{Type: engine.ActionAccept}
		}
		return engine.Action{Type: engine.ActionPass}
	case engine.PhaseBidding2:
		return b.secondRoundCall(state)
	case engine.PhasePlaying:
		return b.pickCard(state, seat)
	default:
		return engine.Action{Type: engine.ActionPass}
	}
}

// secondRoundCall weighs passing, each of the three remaining suits and
// no-trump equally.
func (b *RandomBot) secondRoundCall(state engine.GameState) engine.Action {
	others := make([]engine.Suit, 0, engine.NumSuits-1)
	for s := engine.Suit(0); s < engine.NumSuits; s++ {
		if state.OutCard == nil || s != state.OutCard.Suit {
			others = append(others, s)
		}
	}
	r := b.RNG.Float64()
	switch {
	case r < 0.2:
		return engine.Action{Type: engine.ActionPass}
	case r < 0.4:
		return engine.Action{Type: engine.ActionCall, Trump: engine.TrumpOf(others[0])}
	case r < 0.6:
		return engine.Action{Type: engine.ActionCall, Trump: engine.TrumpOf(others[1])}
	case r < 0.8:
		return engine.Action{Type: engine.ActionCall, Trump: engine.TrumpOf(others[2])}
	default:
		return engine.Action{Type: engine.ActionCall, Trump: engine.TrumpNone}
	}
}

func (b *RandomBot) pickCard(state engine.GameState, seat engine.Seat) engine.Action {
	hand := state.Hands[seat]
	if len(state.Trick) == 0 {
		c := hand[b.RNG.Intn(len(hand))]
		return engine.Action{Type: engine.ActionPlayCard, Card: &c}
	}
	legal := make([]engine.Card, 0, len(hand))
	for _, c := range hand {
		if engine.IsLegal(hand, c, state.Trick, state.Trump) {
			legal = append(legal, c)
		}
	}
	if len(legal) == 0 {
		// Should be unreachable: a free discard is always available.
		c := hand[0]
		return engine.Action{Type: engine.ActionPlayCard, Card: &c}
	}
	c := legal[b.RNG.Intn(len(legal))]
	return engine.Action{Type: engine.ActionPlayCard, Card: &c}
}
