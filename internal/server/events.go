package server

import "github.com/GiacomoGaraccione/gp-belotta/internal/engine"

type Event struct {
	Type string      `json:"type"`
	Data interface{} `json:"data,omitempty"`
}

type EventPayload struct {
	Seat    string      `json:"seat,omitempty"`
	Team    string      `json:"team,omitempty"`
	Trump   string      `json:"trump,omitempty"`
	Card    *CardDTO    `json:"card,omitempty"`
	Result  *ResultView `json:"result,omitempty"`
	Starter string      `json:"starter,omitempty"`
}

// buildEvents derives typed notifications from a state transition.
func buildEvents(prev engine.GameState, next engine.GameState, seat engine.Seat, action engine.Action) []Event {
	events := []Event{}

	switch action.Type {
	case engine.ActionAccept, engine.ActionCall:
		if next.Trump.Decided() {
			events = append(events, Event{Type: "trump_declared", Data: EventPayload{
				Seat:  seat.String(),
				Team:  next.Declarer.String(),
				Trump: trumpToString(next.Trump),
			}})
		}
	case engine.ActionPass:
		events = append(events, Event{Type: "passed", Data: EventPayload{Seat: seat.String()}})
	case engine.ActionPlayCard:
		if action.Card != nil {
			events = append(events, Event{Type: "card_played", Data: EventPayload{
				Seat: seat.String(),
				Card: cardToDTO(*action.Card),
			}})
		}
	}

	for t := engine.TeamA; t <= engine.TeamB; t++ {
		if len(next.Captured[t]) > len(prev.Captured[t]) {
			events = append(events, Event{Type: "trick_won", Data: EventPayload{
				Seat: next.LastTaker.String(),
				Team: t.String(),
			}})
		}
	}

	// A pass can void the hand and redeal in the same transition.
	if action.Type == engine.ActionPass && prev.Phase == engine.PhaseBidding2 && next.Phase == engine.PhaseBidding1 {
		events = append(events, Event{Type: "hand_voided", Data: EventPayload{}})
		events = append(events, Event{Type: "hand_started", Data: EventPayload{Starter: next.Starter.String()}})
	}

	if prev.Result == nil && next.Result != nil {
		events = append(events, Event{Type: "hand_ended", Data: EventPayload{
			Result: resultToView(next.Result),
		}})
	}
	return events
}

// newLogLines returns the narration entries added by the latest
// transition. A redeal replaces the log wholesale, which shows up as a
// shrink or a diverging prefix; the fresh log is then reported in full.
func newLogLines(prev, next []string) []string {
	if len(next) < len(prev) {
		return append([]string(nil), next...)
	}
	for i := range prev {
		if prev[i] != next[i] {
			return append([]string(nil), next...)
		}
	}
	return append([]string(nil), next[len(prev):]...)
}
