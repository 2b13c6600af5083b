package engine

import "testing"

func TestRankStrengthOrder(t *testing.T) {
	order := []Rank{RankA, Rank10, RankK, RankQ, RankJ, Rank9, Rank8, Rank7}
	for i := 0; i < len(order)-1; i++ {
		if RankStrength(order[i]) <= RankStrength(order[i+1]) {
			t.Fatalf("%v should outrank %v", order[i], order[i+1])
		}
	}
}

func TestCardPointsTrumpBonus(t *testing.T) {
	trump := TrumpOf(SuitSpades)
	cases := []struct {
		card Card
		want int
	}{
		{Card{Suit: SuitHearts, Rank: RankA}, 11},
		{Card{Suit: SuitHearts, Rank: Rank10}, 10},
		{Card{Suit: SuitHearts, Rank: RankK}, 4},
		{Card{Suit: SuitHearts, Rank: RankQ}, 3},
		{Card{Suit: SuitHearts, Rank: RankJ}, 2},
		{Card{Suit: SuitSpades, Rank: RankJ}, 20},
		{Card{Suit: SuitHearts, Rank: Rank9}, 0},
		{Card{Suit: SuitSpades, Rank: Rank9}, 14},
		{Card{Suit: SuitSpades, Rank: Rank7}, 0},
		{Card{Suit: SuitSpades, Rank: Rank8}, 0},
	}
	for _, c := range cases {
		if got := CardPoints(c.card, trump); got != c.want {
			t.Fatalf("CardPoints(%v) = %d, want %d", c.card, got, c.want)
		}
	}
}

func TestCardPointsNoTrumpHasNoBonus(t *testing.T) {
	for s := Suit(0); s < NumSuits; s++ {
		if got := CardPoints(Card{Suit: s, Rank: RankJ}, TrumpNone); got != 2 {
			t.Fatalf("no-trump jack of %v = %d, want 2", s, got)
		}
		if got := CardPoints(Card{Suit: s, Rank: Rank9}, TrumpNone); got != 0 {
			t.Fatalf("no-trump nine of %v = %d, want 0", s, got)
		}
	}
}

func TestIsLegalEmptyTrick(t *testing.T) {
	hand := []Card{{Suit: SuitClubs, Rank: Rank7}}
	if !IsLegal(hand, hand[0], nil, TrumpOf(SuitSpades)) {
		t.Fatalf("any card should be legal on an empty trick")
	}
}

func TestIsLegalMustFollowSuit(t *testing.T) {
	trick := []PlayedCard{{Card: Card{Suit: SuitHearts, Rank: RankA}, Seat: SeatPlayer}}
	hand := []Card{
		{Suit: SuitHearts, Rank: Rank9},
		{Suit: SuitSpades, Rank: RankA},
	}
	trump := TrumpOf(SuitSpades)
	if !IsLegal(hand, hand[0], trick, trump) {
		t.Fatalf("following suit should be legal")
	}
	if IsLegal(hand, hand[1], trick, trump) {
		t.Fatalf("off-suit play should be illegal while holding the lead suit")
	}
}

func TestIsLegalMustTrumpWhenVoid(t *testing.T) {
	trick := []PlayedCard{{Card: Card{Suit: SuitHearts, Rank: RankA}, Seat: SeatPlayer}}
	hand := []Card{
		{Suit: SuitSpades, Rank: Rank7},
		{Suit: SuitClubs, Rank: RankA},
	}
	trump := TrumpOf(SuitSpades)
	if !IsLegal(hand, hand[0], trick, trump) {
		t.Fatalf("trumping should be legal when void in the lead suit")
	}
	if IsLegal(hand, hand[1], trick, trump) {
		t.Fatalf("discard should be illegal while holding trump")
	}
}

func TestIsLegalFreeDiscard(t *testing.T) {
	trick := []PlayedCard{{Card: Card{Suit: SuitHearts, Rank: RankA}, Seat: SeatPlayer}}
	hand := []Card{
		{Suit: SuitClubs, Rank: RankA},
		{Suit: SuitDiamonds, Rank: Rank7},
	}
	trump := TrumpOf(SuitSpades)
	for _, c := range hand {
		if !IsLegal(hand, c, trick, trump) {
			t.Fatalf("free discard of %v should be legal without lead suit or trump", c)
		}
	}
}

func TestIsLegalNoTrumpReducesToFollowSuit(t *testing.T) {
	trick := []PlayedCard{{Card: Card{Suit: SuitHearts, Rank: RankA}, Seat: SeatPlayer}}
	hand := []Card{
		{Suit: SuitSpades, Rank: Rank7},
		{Suit: SuitClubs, Rank: RankA},
	}
	// With spades as trump the club would be locked out; under no-trump
	// both discards are fine.
	for _, c := range hand {
		if !IsLegal(hand, c, trick, TrumpNone) {
			t.Fatalf("under no-trump %v should be a free discard", c)
		}
	}

	withLead := append([]Card{{Suit: SuitHearts, Rank: Rank7}}, hand...)
	if IsLegal(withLead, hand[1], trick, TrumpNone) {
		t.Fatalf("under no-trump the lead suit must still be followed")
	}
}

func TestTrickWinnerTrumpBeatsLead(t *testing.T) {
	trick := []PlayedCard{
		{Card: Card{Suit: SuitHearts, Rank: RankA}, Seat: SeatPlayer},
		{Card: Card{Suit: SuitSpades, Rank: Rank7}, Seat: SeatOpponent1},
		{Card: Card{Suit: SuitHearts, Rank: Rank10}, Seat: SeatPartner},
		{Card: Card{Suit: SuitHearts, Rank: RankK}, Seat: SeatOpponent2},
	}
	win := trickWinner(trick, TrumpOf(SuitSpades))
	if win.Seat != SeatOpponent1 {
		t.Fatalf("lone trump should win, got %v", win.Seat)
	}
}

func TestTrickWinnerHighestOfLeadSuit(t *testing.T) {
	trick := []PlayedCard{
		{Card: Card{Suit: SuitClubs, Rank: RankK}, Seat: SeatPlayer},
		{Card: Card{Suit: SuitClubs, Rank: Rank10}, Seat: SeatOpponent1},
		{Card: Card{Suit: SuitDiamonds, Rank: RankA}, Seat: SeatPartner},
		{Card: Card{Suit: SuitClubs, Rank: Rank9}, Seat: SeatOpponent2},
	}
	win := trickWinner(trick, TrumpNone)
	if win.Seat != SeatOpponent1 {
		t.Fatalf("ten of clubs should win under no-trump, got %v", win.Seat)
	}
}

func TestTrickWinnerIsMemberOfDominantSuit(t *testing.T) {
	trump := TrumpOf(SuitDiamonds)
	trick := []PlayedCard{
		{Card: Card{Suit: SuitHearts, Rank: Rank7}, Seat: SeatPlayer},
		{Card: Card{Suit: SuitDiamonds, Rank: Rank8}, Seat: SeatOpponent1},
		{Card: Card{Suit: SuitDiamonds, Rank: RankJ}, Seat: SeatPartner},
		{Card: Card{Suit: SuitHearts, Rank: RankA}, Seat: SeatOpponent2},
	}
	win := trickWinner(trick, trump)
	if win.Card.Suit != SuitDiamonds {
		t.Fatalf("winner must come from the trump suit, got %v", win.Card)
	}
	if win.Seat != SeatPartner {
		t.Fatalf("strongest trump should win, got %v", win.Seat)
	}
}
