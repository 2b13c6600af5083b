package sim

import (
	"fmt"
	"math/rand"

	"github.com/GiacomoGaraccione/gp-belotta/internal/engine"
)

type ActionRecord struct {
	Hand  int
	Step  int
	Phase engine.Phase
	Seat  engine.Seat
	A     engine.Action
}

// RunSelfPlayHands plays full hands with uniformly random legal actions,
// checking state invariants after every step. Voided hands redeal inside
// the step loop; the cap only guards against the engine losing progress.
func RunSelfPlayHands(seed int64, hands int, maxStepsPerHand int) error {
	state := engine.NewGame(seed)
	rng := rand.New(rand.NewSource(seed))
	completed := 0

	for h := 0; h < hands; h++ {
		state.Seed = seed + int64(h)*1000
		engine.DealHand(&state)
		if err := checkInvariants(state); err != nil {
			return failure(seed, h, -1, state.Phase, -1, nil, err.Error())
		}

		records := []ActionRecord{}
		for step := 0; step < maxStepsPerHand; step++ {
			if state.Phase == engine.PhaseHandOver {
				completed++
				break
			}
			seat, ok := engine.CurrentSeat(state)
			if !ok {
				return failure(seed, h, step, state.Phase, -1, records, "no current seat")
			}
			legal := engine.LegalActions(state, seat)
			if len(legal) == 0 {
				return failure(seed, h, step, state.Phase, seat, records, "no legal actions")
			}
			action := legal[rng.Intn(len(legal))]
			if err := engine.ApplyAction(&state, seat, action); err != nil {
				return failure(seed, h, step, state.Phase, seat, records, fmt.Sprintf("apply error: %v", err))
			}
			records = append(records, ActionRecord{
				Hand:  h,
				Step:  step,
				Phase: state.Phase,
				Seat:  seat,
				A:     action,
			})
			if err := checkInvariants(state); err != nil {
				return failure(seed, h, step, state.Phase, seat, records, err.Error())
			}
		}
	}
	if completed == 0 {
		return fmt.Errorf("seed=%d: no hand reached scoring in %d attempts", seed, hands)
	}
	return nil
}

func checkInvariants(state engine.GameState) error {
	total, dup := countCards(state)
	if total != engine.DeckSize {
		return fmt.Errorf("card count mismatch: %d", total)
	}
	if dup {
		return fmt.Errorf("duplicate card detected")
	}
	if len(state.Trick) > engine.NumSeats {
		return fmt.Errorf("invalid trick size: %d", len(state.Trick))
	}

	switch state.Phase {
	case engine.PhaseBidding1, engine.PhaseBidding2:
		if state.OutCard == nil {
			return fmt.Errorf("face-up card missing during bidding")
		}
		if len(state.Stock) != engine.DeckSize-engine.NumSeats*5-1 {
			return fmt.Errorf("stock size during bidding: %d", len(state.Stock))
		}
		for s := engine.Seat(0); s < engine.NumSeats; s++ {
			if len(state.Hands[s]) != 5 {
				return fmt.Errorf("%s holds %d cards during bidding", s, len(state.Hands[s]))
			}
		}
		if len(state.Captured[engine.TeamA])+len(state.Captured[engine.TeamB]) != 0 {
			return fmt.Errorf("captured piles not empty during bidding")
		}
	case engine.PhasePlaying:
		if state.OutCard != nil {
			return fmt.Errorf("face-up card still out during play")
		}
		if len(state.Stock) != 0 {
			return fmt.Errorf("stock not drained for play: %d", len(state.Stock))
		}
		if !state.Trump.Decided() {
			return fmt.Errorf("playing without a trump decision")
		}
		for s := engine.Seat(0); s < engine.NumSeats; s++ {
			if len(state.Hands[s]) > 8 {
				return fmt.Errorf("%s holds %d cards during play", s, len(state.Hands[s]))
			}
		}
	case engine.PhaseHandOver:
		if len(state.Captured[engine.TeamA])+len(state.Captured[engine.TeamB]) != engine.DeckSize {
			return fmt.Errorf("hand ended with missing captures")
		}
		if state.Result == nil {
			return fmt.Errorf("hand ended without a result")
		}
		if state.Result.Scores[engine.TeamA] < 0 || state.Result.Scores[engine.TeamB] < 0 {
			return fmt.Errorf("negative score")
		}
	}

	if state.Passes1 > engine.NumSeats || state.Passes2 > engine.NumSeats {
		return fmt.Errorf("pass counter overran: %d/%d", state.Passes1, state.Passes2)
	}
	return nil
}

func countCards(state engine.GameState) (int, bool) {
	seen := map[engine.Card]bool{}
	total := 0
	dup := false
	add := func(c engine.Card) {
		total++
		if seen[c] {
			dup = true
		}
		seen[c] = true
	}
	for s := engine.Seat(0); s < engine.NumSeats; s++ {
		for _, c := range state.Hands[s] {
			add(c)
		}
	}
	for _, c := range state.Stock {
		add(c)
	}
	if state.OutCard != nil {
		add(*state.OutCard)
	}
	for _, pc := range state.Trick {
		add(pc.Card)
	}
	for t := engine.TeamA; t <= engine.TeamB; t++ {
		for _, c := range state.Captured[t] {
			add(c)
		}
	}
	return total, dup
}

func failure(seed int64, hand int, step int, phase engine.Phase, seat engine.Seat, records []ActionRecord, reason string) error {
	start := 0
	if len(records) > 20 {
		start = len(records) - 20
	}
	log := ""
	for _, r := range records[start:] {
		log += fmt.Sprintf("[h%d s%d %s %v] %v\n", r.Hand, r.Step, r.Seat, r.Phase, r.A)
	}
	return fmt.Errorf("seed=%d hand=%d step=%d phase=%v seat=%v reason=%s\nlast actions:\n%s",
		seed, hand, step, phase, seat, reason, log)
}
