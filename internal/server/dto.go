package server

import (
	"errors"

	"github.com/GiacomoGaraccione/gp-belotta/internal/engine"
)

type CardDTO struct {
	Suit string `json:"suit"`
	Rank string `json:"rank"`
}

type PlayedCardDTO struct {
	Card CardDTO `json:"card"`
	Seat string  `json:"seat"`
}

type ActionDTO struct {
	Type  string   `json:"type"`
	Trump string   `json:"trump,omitempty"`
	Card  *CardDTO `json:"card,omitempty"`
}

func (a *ActionDTO) ToEngine() (engine.Action, error) {
	if a == nil {
		return engine.Action{}, errors.New("action missing")
	}
	switch a.Type {
	case "accept":
		return engine.Action{Type: engine.ActionAccept}, nil
	case "pass":
		return engine.Action{Type: engine.ActionPass}, nil
	case "call":
		t, err := parseTrump(a.Trump)
		if err != nil {
			return engine.Action{}, err
		}
		return engine.Action{Type: engine.ActionCall, Trump: t}, nil
	case "play_card":
		if a.Card == nil {
			return engine.Action{}, errors.New("card required")
		}
		card, err := a.Card.toEngine()
		if err != nil {
			return engine.Action{}, err
		}
		return engine.Action{Type: engine.ActionPlayCard, Card: &card}, nil
	default:
		return engine.Action{}, errors.New("unknown action type")
	}
}

func ActionFromEngine(a engine.Action) ActionDTO {
	switch a.Type {
	case engine.ActionAccept:
		return ActionDTO{Type: "accept"}
	case engine.ActionPass:
		return ActionDTO{Type: "pass"}
	case engine.ActionCall:
		return ActionDTO{Type: "call", Trump: trumpToString(a.Trump)}
	case engine.ActionPlayCard:
		if a.Card == nil {
			return ActionDTO{Type: "play_card"}
		}
		return ActionDTO{Type: "play_card", Card: cardToDTO(*a.Card)}
	default:
		return ActionDTO{Type: "unknown"}
	}
}

func (c CardDTO) toEngine() (engine.Card, error) {
	s, err := parseSuit(c.Suit)
	if err != nil {
		return engine.Card{}, err
	}
	r, err := parseRank(c.Rank)
	if err != nil {
		return engine.Card{}, err
	}
	return engine.Card{Suit: s, Rank: r}, nil
}

func cardToDTO(c engine.Card) *CardDTO {
	return &CardDTO{Suit: c.Suit.String(), Rank: c.Rank.String()}
}

func playedToDTO(pc engine.PlayedCard) PlayedCardDTO {
	return PlayedCardDTO{Card: *cardToDTO(pc.Card), Seat: pc.Seat.String()}
}

func parseSuit(s string) (engine.Suit, error) {
	switch s {
	case "H":
		return engine.SuitHearts, nil
	case "C":
		return engine.SuitClubs, nil
	case "D":
		return engine.SuitDiamonds, nil
	case "S":
		return engine.SuitSpades, nil
	default:
		return engine.SuitHearts, errors.New("invalid suit")
	}
}

func parseRank(r string) (engine.Rank, error) {
	switch r {
	case "7":
		return engine.Rank7, nil
	case "8":
		return engine.Rank8, nil
	case "9":
		return engine.Rank9, nil
	case "J":
		return engine.RankJ, nil
	case "Q":
		return engine.RankQ, nil
	case "K":
		return engine.RankK, nil
	case "10":
		return engine.Rank10, nil
	case "A":
		return engine.RankA, nil
	default:
		return engine.Rank7, errors.New("invalid rank")
	}
}

func parseTrump(s string) (engine.Trump, error) {
	if s == "NT" {
		return engine.TrumpNone, nil
	}
	suit, err := parseSuit(s)
	if err != nil {
		return engine.TrumpUndecided, errors.New("invalid trump")
	}
	return engine.TrumpOf(suit), nil
}

func trumpToString(t engine.Trump) string {
	if t == engine.TrumpNone {
		return "NT"
	}
	if s, ok := t.TrumpSuit(); ok {
		return s.String()
	}
	return ""
}
