package engine

import (
	"fmt"
	"math/rand"
	"sort"
)

// BuildDeck returns all 32 cards in fixed generation order.
func BuildDeck() []Card {
	deck := make([]Card, 0, DeckSize)
	for s := SuitHearts; s < NumSuits; s++ {
		for r := Rank7; r < NumRanks; r++ {
			deck = append(deck, Card{Suit: s, Rank: r})
		}
	}
	return deck
}

func Shuffle(deck []Card, rng *rand.Rand) []Card {
	shuffled := make([]Card, len(deck))
	copy(shuffled, deck)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled
}

// draw pops the top of a pile. The distribution formula consumes the stock
// exactly, so an empty pile here is an engine bug.
func draw(pile *[]Card) Card {
	if len(*pile) == 0 {
		panic(ErrEmptyStock)
	}
	c := (*pile)[len(*pile)-1]
	*pile = (*pile)[:len(*pile)-1]
	return c
}

// DealHand starts a fresh hand in place: shuffles a full deck from g.Seed,
// deals 3 then 2 cards to each seat, turns up the trump candidate, keeps the
// 11-card remainder as the bidding stock, and picks a random starting seat.
// All per-hand state from any previous hand is discarded.
func DealHand(g *GameState) {
	rng := rand.New(rand.NewSource(g.Seed))
	deck := Shuffle(BuildDeck(), rng)

	var hands [NumSeats][]Card
	for _, n := range []int{3, 2} {
		for s := Seat(0); s < NumSeats; s++ {
			for i := 0; i < n; i++ {
				hands[s] = append(hands[s], draw(&deck))
			}
		}
	}
	out := draw(&deck)
	starter := Seat(rng.Intn(NumSeats))

	g.Phase = PhaseBidding1
	g.Turn = starter
	g.Starter = starter
	g.Hands = hands
	g.OutCard = &out
	g.Stock = deck
	g.Trump = TrumpUndecided
	g.Declarer = TeamA
	g.Trick = nil
	g.Captured = [NumTeams][]Card{}
	g.LastTaker = starter
	g.Passes1 = 0
	g.Passes2 = 0
	g.Result = nil
	g.Log = []string{fmt.Sprintf("New hand started. %s goes first.", starter)}
}

// SortForDisplay orders a hand by suit, strongest rank first within each
// suit. Purely cosmetic; legality and scoring never look at hand order.
func SortForDisplay(hand []Card) []Card {
	sorted := make([]Card, len(hand))
	copy(sorted, hand)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Suit != sorted[j].Suit {
			return sorted[i].Suit < sorted[j].Suit
		}
		return RankStrength(sorted[i].Rank) > RankStrength(sorted[j].Rank)
	})
	return sorted
}
