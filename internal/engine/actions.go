package engine

import "fmt"

type ActionType int

const (
	// Accept the face-up card's suit as trump (first bidding round).
	ActionAccept ActionType = iota
	// Pass in either bidding round.
	ActionPass
	// Call a different suit or no-trump (second bidding round).
	ActionCall
	ActionPlayCard
)

func (t ActionType) String() string {
	switch t {
	case ActionAccept:
		return "accept"
	case ActionPass:
		return "pass"
	case ActionCall:
		return "call"
	case ActionPlayCard:
		return "play_card"
	default:
		return "unknown"
	}
}

type Action struct {
	Type  ActionType
	Trump Trump // for ActionCall
	Card  *Card // for ActionPlayCard
}

func (a Action) String() string {
	switch a.Type {
	case ActionCall:
		return fmt.Sprintf("call %s", a.Trump)
	case ActionPlayCard:
		if a.Card != nil {
			return fmt.Sprintf("play %s", *a.Card)
		}
		return "play ?"
	default:
		return a.Type.String()
	}
}

// CurrentSeat returns the seat expected to act. Once the hand is over no
// seat acts until a new hand is dealt.
func CurrentSeat(g GameState) (Seat, bool) {
	if g.Phase == PhaseHandOver {
		return 0, false
	}
	return g.Turn, true
}

// LegalActions enumerates what seat may do right now. Ordering is
// deterministic: pass first, then calls in suit order, then no-trump.
func LegalActions(g GameState, seat Seat) []Action {
	if g.Phase == PhaseHandOver || seat != g.Turn {
		return nil
	}
	switch g.Phase {
	case PhaseBidding1:
		return []Action{{Type: ActionPass}, {Type: ActionAccept}}
	case PhaseBidding2:
		if g.OutCard == nil {
			return nil
		}
		out := []Action{{Type: ActionPass}}
		for s := Suit(0); s < NumSuits; s++ {
			if s != g.OutCard.Suit {
				out = append(out, Action{Type: ActionCall, Trump: TrumpOf(s)})
			}
		}
		return append(out, Action{Type: ActionCall, Trump: TrumpNone})
	case PhasePlaying:
		hand := g.Hands[seat]
		out := make([]Action, 0, len(hand))
		for i := range hand {
			c := hand[i]
			if IsLegal(hand, c, g.Trick, g.Trump) {
				out = append(out, Action{Type: ActionPlayCard, Card: &c})
			}
		}
		return out
	default:
		return nil
	}
}

// ApplyAction validates and applies one decision for seat. Rejections
// return a sentinel-wrapped error with the state unchanged.
func ApplyAction(g *GameState, seat Seat, a Action) error {
	if g.Phase == PhaseHandOver {
		return fmt.Errorf("%w: hand is over", ErrPhaseMismatch)
	}
	if seat != g.Turn {
		return fmt.Errorf("%w: %s acted on %s's turn", ErrOutOfTurn, seat, g.Turn)
	}
	switch g.Phase {
	case PhaseBidding1:
		switch a.Type {
		case ActionAccept:
			return applyDeclare(g, seat, TrumpOf(g.OutCard.Suit))
		case ActionPass:
			return applyPass(g, seat)
		default:
			return fmt.Errorf("%w: %s during first bidding round", ErrPhaseMismatch, a.Type)
		}
	case PhaseBidding2:
		switch a.Type {
		case ActionCall:
			if err := validateCall(g, a.Trump); err != nil {
				return err
			}
			return applyDeclare(g, seat, a.Trump)
		case ActionPass:
			return applyPass(g, seat)
		default:
			return fmt.Errorf("%w: %s during second bidding round", ErrPhaseMismatch, a.Type)
		}
	case PhasePlaying:
		if a.Type != ActionPlayCard {
			return fmt.Errorf("%w: %s during trick play", ErrPhaseMismatch, a.Type)
		}
		if a.Card == nil {
			return fmt.Errorf("%w: play without a card", ErrIllegalMove)
		}
		return applyPlay(g, seat, *a.Card)
	default:
		return fmt.Errorf("%w: unknown phase", ErrPhaseMismatch)
	}
}

func validateCall(g *GameState, t Trump) error {
	if t == TrumpNone {
		return nil
	}
	suit, ok := t.TrumpSuit()
	if !ok {
		return fmt.Errorf("%w: call must name a suit or no-trump", ErrIllegalMove)
	}
	if suit == g.OutCard.Suit {
		return fmt.Errorf("%w: %s was already refused in the first round", ErrIllegalMove, suit.Name())
	}
	return nil
}

// applyDeclare establishes trump for the hand and runs the acceptance
// distribution: the face-up card joins the declarer's hand, then every
// seat in rotation from the hand's starter draws two cards from the stock
// plus a third for everyone but the declarer. That drains the stock
// exactly and leaves all four hands at eight cards.
func applyDeclare(g *GameState, seat Seat, t Trump) error {
	g.Trump = t
	g.Declarer = seat.Team()
	g.logf("%s declares %s.", seat, t)

	g.Hands[seat] = append(g.Hands[seat], *g.OutCard)
	g.OutCard = nil
	for i, s := 0, g.Starter; i < NumSeats; i, s = i+1, s.Next() {
		g.Hands[s] = append(g.Hands[s], draw(&g.Stock), draw(&g.Stock))
		if s != seat {
			g.Hands[s] = append(g.Hands[s], draw(&g.Stock))
		}
	}
	if len(g.Stock) != 0 {
		panic(fmt.Sprintf("distribution left %d cards in the stock", len(g.Stock)))
	}

	g.Phase = PhasePlaying
	g.Turn = g.Starter
	g.logf("The deck has been dealt out. %s leads.", g.Starter)
	return nil
}

func applyPass(g *GameState, seat Seat) error {
	next := seat.Next()
	g.Turn = next
	switch g.Phase {
	case PhaseBidding1:
		g.Passes1++
		if g.Passes1 < NumSeats {
			g.logf("%s passes. %s chooses next.", seat, next)
		} else {
			g.logf("Everyone passed. Second round of calls.")
			g.Phase = PhaseBidding2
		}
	case PhaseBidding2:
		g.Passes2++
		if g.Passes2 < NumSeats {
			g.logf("%s passes. %s chooses next.", seat, next)
		} else {
			g.logf("Everyone passed again. The hand is voided.")
			g.Seed++
			DealHand(g)
		}
	}
	return nil
}

func applyPlay(g *GameState, seat Seat, card Card) error {
	hand := g.Hands[seat]
	if !containsCard(hand, card) {
		return fmt.Errorf("%w: %s is not in %s's hand", ErrIllegalMove, card, seat)
	}
	if !IsLegal(hand, card, g.Trick, g.Trump) {
		return fmt.Errorf("%w: %s cannot follow this trick", ErrIllegalMove, card)
	}

	removeCard(&g.Hands[seat], card)
	g.Trick = append(g.Trick, PlayedCard{Card: card, Seat: seat})
	g.logf("%s plays %s.", seat, card)

	if len(g.Trick) < NumSeats {
		g.Turn = seat.Next()
		return nil
	}

	win := trickWinner(g.Trick, g.Trump)
	g.logf("%s wins the trick with %s.", win.Seat, win.Card)
	team := win.Seat.Team()
	for _, pc := range g.Trick {
		g.Captured[team] = append(g.Captured[team], pc.Card)
	}
	g.LastTaker = win.Seat
	g.Trick = nil

	if len(g.Captured[TeamA])+len(g.Captured[TeamB]) == DeckSize {
		finishHand(g)
	} else {
		g.Turn = win.Seat
		g.logf("%s leads the next trick.", win.Seat)
	}
	return nil
}
