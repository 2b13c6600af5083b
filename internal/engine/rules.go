package engine

// RankStrength is the fixed total order used by trick resolution,
// independent of point value: A > 10 > K > Q > J > 9 > 8 > 7.
func RankStrength(r Rank) int {
	switch r {
	case RankA:
		return 8
	case Rank10:
		return 7
	case RankK:
		return 6
	case RankQ:
		return 5
	case RankJ:
		return 4
	case Rank9:
		return 3
	case Rank8:
		return 2
	case Rank7:
		return 1
	default:
		return 0
	}
}

// CardPoints values a card for scoring. The jack and nine of the trump
// suit are promoted; under no-trump no card receives the bonus.
func CardPoints(c Card, trump Trump) int {
	trumpSuit, hasTrump := trump.TrumpSuit()
	switch c.Rank {
	case RankA:
		return 11
	case Rank10:
		return 10
	case RankK:
		return 4
	case RankQ:
		return 3
	case RankJ:
		if hasTrump && c.Suit == trumpSuit {
			return 20
		}
		return 2
	case Rank9:
		if hasTrump && c.Suit == trumpSuit {
			return 14
		}
		return 0
	default:
		return 0
	}
}

// IsLegal decides whether the acting seat may add card to the trick.
// The obligation is judged against the acting seat's own hand: follow the
// lead suit if able, otherwise trump if able, otherwise discard freely.
// Under no-trump the rule reduces to "follow suit if able, else anything".
func IsLegal(hand []Card, card Card, trick []PlayedCard, trump Trump) bool {
	if len(trick) == 0 {
		return true
	}
	lead := trick[0].Card.Suit
	if card.Suit == lead {
		return true
	}
	if hasSuit(hand, lead) {
		return false
	}
	if trumpSuit, ok := trump.TrumpSuit(); ok {
		if card.Suit == trumpSuit {
			return true
		}
		if hasSuit(hand, trumpSuit) {
			return false
		}
	}
	return true
}

// trickWinner resolves a complete trick: the dominant suit is the lead
// suit unless a declared trump suit was played, and the strongest rank of
// the dominant suit takes it.
func trickWinner(trick []PlayedCard, trump Trump) PlayedCard {
	dominant := trick[0].Card.Suit
	if trumpSuit, ok := trump.TrumpSuit(); ok {
		for _, pc := range trick {
			if pc.Card.Suit == trumpSuit {
				dominant = trumpSuit
				break
			}
		}
	}
	best := trick[0]
	for _, pc := range trick[1:] {
		if pc.Card.Suit != dominant {
			continue
		}
		if best.Card.Suit != dominant || RankStrength(pc.Card.Rank) > RankStrength(best.Card.Rank) {
			best = pc
		}
	}
	return best
}

func hasSuit(cards []Card, suit Suit) bool {
	for _, c := range cards {
		if c.Suit == suit {
			return true
		}
	}
	return false
}

func containsCard(cards []Card, card Card) bool {
	for _, c := range cards {
		if c == card {
			return true
		}
	}
	return false
}

func removeCard(hand *[]Card, card Card) bool {
	for i, c := range *hand {
		if c == card {
			*hand = append((*hand)[:i], (*hand)[i+1:]...)
			return true
		}
	}
	return false
}
