package server

import "github.com/GiacomoGaraccione/gp-belotta/internal/engine"

type SeatView struct {
	Seat      string    `json:"seat"`
	Team      string    `json:"team"`
	Hand      []CardDTO `json:"hand,omitempty"`
	HandCount int       `json:"handCount"`
}

type ResultView struct {
	TeamAScore int      `json:"teamAScore"`
	TeamBScore int      `json:"teamBScore"`
	Outcome    string   `json:"outcome"` // "team_a", "team_b" or "tie"
	Declarer   string   `json:"declarer"`
	ShutOut    bool     `json:"shutOut"`
	Swept      []string `json:"swept,omitempty"`
}

type GameView struct {
	SessionID    string          `json:"sessionId"`
	Phase        string          `json:"phase"`
	Turn         string          `json:"turn"`
	Starter      string          `json:"starter"`
	Trump        string          `json:"trump,omitempty"`
	Declarer     string          `json:"declarer,omitempty"`
	OutCard      *CardDTO        `json:"outCard,omitempty"`
	Seats        []SeatView      `json:"seats"`
	Trick        []PlayedCardDTO `json:"trick"`
	CapturedA    int             `json:"capturedA"`
	CapturedB    int             `json:"capturedB"`
	Passes1      int             `json:"passes1"`
	Passes2      int             `json:"passes2"`
	Log          []string        `json:"log"`
	LegalActions []ActionDTO     `json:"legalActions"`
	Result       *ResultView     `json:"result,omitempty"`
}

// BuildGameView projects the state for one viewer: only the viewer's own
// hand is exposed, display-sorted; other seats show card counts.
func BuildGameView(g engine.GameState, viewer engine.Seat, sessionID string) *GameView {
	seats := make([]SeatView, 0, engine.NumSeats)
	for s := engine.Seat(0); s < engine.NumSeats; s++ {
		view := SeatView{
			Seat:      s.String(),
			Team:      s.Team().String(),
			HandCount: len(g.Hands[s]),
		}
		if s == viewer {
			for _, c := range engine.SortForDisplay(g.Hands[s]) {
				view.Hand = append(view.Hand, *cardToDTO(c))
			}
		}
		seats = append(seats, view)
	}

	trick := make([]PlayedCardDTO, 0, len(g.Trick))
	for _, pc := range g.Trick {
		trick = append(trick, playedToDTO(pc))
	}

	legal := []ActionDTO{}
	for _, a := range engine.LegalActions(g, viewer) {
		legal = append(legal, ActionFromEngine(a))
	}

	v := &GameView{
		SessionID:    sessionID,
		Phase:        g.Phase.String(),
		Turn:         g.Turn.String(),
		Starter:      g.Starter.String(),
		Seats:        seats,
		Trick:        trick,
		CapturedA:    len(g.Captured[engine.TeamA]),
		CapturedB:    len(g.Captured[engine.TeamB]),
		Passes1:      g.Passes1,
		Passes2:      g.Passes2,
		Log:          g.Log,
		LegalActions: legal,
		Result:       resultToView(g.Result),
	}
	if g.Trump.Decided() {
		v.Trump = trumpToString(g.Trump)
		v.Declarer = g.Declarer.String()
	}
	if g.OutCard != nil {
		v.OutCard = cardToDTO(*g.OutCard)
	}
	return v
}

func resultToView(res *engine.HandResult) *ResultView {
	if res == nil {
		return nil
	}
	out := &ResultView{
		TeamAScore: res.Scores[engine.TeamA],
		TeamBScore: res.Scores[engine.TeamB],
		Declarer:   res.Declarer.String(),
		ShutOut:    res.ShutOut,
	}
	switch {
	case res.Tie:
		out.Outcome = "tie"
	case res.Winner == engine.TeamA:
		out.Outcome = "team_a"
	default:
		out.Outcome = "team_b"
	}
	for t := engine.TeamA; t <= engine.TeamB; t++ {
		if res.Swept[t] {
			out.Swept = append(out.Swept, t.String())
		}
	}
	return out
}
