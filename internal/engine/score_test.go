package engine

import "testing"

func TestScoreTrumpBonusAndLastTrick(t *testing.T) {
	g := NewGame(0)
	g.Trump = TrumpOf(SuitSpades)
	g.Declarer = TeamA
	// Team A captured the ace and king earlier and took the final trick
	// with the lone trump jack.
	g.Captured[TeamA] = []Card{
		{Suit: SuitSpades, Rank: RankA},
		{Suit: SuitSpades, Rank: RankK},
		{Suit: SuitSpades, Rank: RankJ},
	}
	g.LastTaker = SeatPlayer

	res := Score(g)
	if res.Scores[TeamA] != 45 {
		t.Fatalf("Team A score = %d, want 45 (11+4+20+10)", res.Scores[TeamA])
	}
	if res.Scores[TeamB] != 0 {
		t.Fatalf("Team B score = %d, want 0", res.Scores[TeamB])
	}
	if res.Tie || res.Winner != TeamA {
		t.Fatalf("Team A should win outright")
	}
	if !res.Swept[TeamB] {
		t.Fatalf("a zero score should carry the sweep marker")
	}
	if res.ShutOut {
		t.Fatalf("the winning declarer is not shut out")
	}
}

func TestScoreLastTrickBonusFollowsTaker(t *testing.T) {
	g := NewGame(0)
	g.Trump = TrumpNone
	g.Declarer = TeamA
	g.Captured[TeamA] = []Card{{Suit: SuitHearts, Rank: RankA}}
	g.Captured[TeamB] = []Card{{Suit: SuitClubs, Rank: RankA}}
	g.LastTaker = SeatOpponent2

	res := Score(g)
	if res.Scores[TeamA] != 11 || res.Scores[TeamB] != 21 {
		t.Fatalf("scores = %v, want [11 21]", res.Scores)
	}
}

func TestScoreShutOutMarker(t *testing.T) {
	g := NewGame(0)
	g.Trump = TrumpOf(SuitHearts)
	g.Declarer = TeamA
	g.Captured[TeamA] = []Card{{Suit: SuitClubs, Rank: RankQ}}
	g.Captured[TeamB] = []Card{
		{Suit: SuitHearts, Rank: RankJ},
		{Suit: SuitClubs, Rank: RankA},
	}
	g.LastTaker = SeatOpponent1

	res := Score(g)
	if !res.ShutOut {
		t.Fatalf("outscored declarer should carry the shut-out marker")
	}
	if res.Winner != TeamB {
		t.Fatalf("winner = %v, want TeamB", res.Winner)
	}
}

func TestScoreTie(t *testing.T) {
	g := NewGame(0)
	g.Trump = TrumpNone
	g.Declarer = TeamB
	// 65 points each: four aces plus assorted honours against the rest,
	// with the last-trick bonus evening it out.
	g.Captured[TeamA] = []Card{
		{Suit: SuitHearts, Rank: RankA},
		{Suit: SuitClubs, Rank: RankA},
		{Suit: SuitDiamonds, Rank: RankA},
		{Suit: SuitSpades, Rank: RankA},
		{Suit: SuitHearts, Rank: RankK},
		{Suit: SuitHearts, Rank: RankQ},
		{Suit: SuitHearts, Rank: RankJ},
		{Suit: SuitClubs, Rank: RankJ},
		{Suit: SuitHearts, Rank: Rank10},
	}
	g.Captured[TeamB] = []Card{
		{Suit: SuitClubs, Rank: Rank10},
		{Suit: SuitDiamonds, Rank: Rank10},
		{Suit: SuitSpades, Rank: Rank10},
		{Suit: SuitClubs, Rank: RankK},
		{Suit: SuitDiamonds, Rank: RankK},
		{Suit: SuitSpades, Rank: RankK},
		{Suit: SuitClubs, Rank: RankQ},
		{Suit: SuitDiamonds, Rank: RankQ},
		{Suit: SuitSpades, Rank: RankQ},
		{Suit: SuitDiamonds, Rank: RankJ},
		{Suit: SuitSpades, Rank: RankJ},
	}
	g.LastTaker = SeatOpponent1

	res := Score(g)
	if res.Scores[TeamA] != 65 || res.Scores[TeamB] != 65 {
		t.Fatalf("scores = %v, want a 65-65 tie", res.Scores)
	}
	if !res.Tie {
		t.Fatalf("equal scores must report a tie")
	}
	if res.ShutOut {
		t.Fatalf("a tie is not a shut-out")
	}
}

func TestFinishHandLogsOutcome(t *testing.T) {
	g := NewGame(0)
	g.Trump = TrumpOf(SuitHearts)
	g.Declarer = TeamB
	g.Captured[TeamA] = []Card{{Suit: SuitHearts, Rank: RankA}}
	g.LastTaker = SeatPlayer
	finishHand(&g)

	if g.Phase != PhaseHandOver {
		t.Fatalf("phase = %v", g.Phase)
	}
	if g.Result == nil || g.Result.Scores[TeamA] != 21 {
		t.Fatalf("unexpected result: %+v", g.Result)
	}
	if !g.Result.ShutOut {
		t.Fatalf("declarer with zero points should be shut out")
	}
	if len(g.Log) == 0 {
		t.Fatalf("hand end produced no narration")
	}
}
