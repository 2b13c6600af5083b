package engine

// HandResult is the terminal payload of a hand. The markers are advisory,
// for display only; they never change the numeric scores.
type HandResult struct {
	Scores   [NumTeams]int
	Tie      bool
	Winner   Team // valid when !Tie
	Declarer Team
	// ShutOut is set when the declaring team failed to outscore the
	// defenders ("andare a bagno").
	ShutOut bool
	// Swept[t] is set when team t captured zero points ("cappotto").
	Swept [NumTeams]bool
}

// Score totals the captured piles. The piles already contain all eight
// tricks, so the last-trick bonus is a flat 10 to its winning team.
func Score(g GameState) HandResult {
	var res HandResult
	for t := TeamA; t <= TeamB; t++ {
		for _, c := range g.Captured[t] {
			res.Scores[t] += CardPoints(c, g.Trump)
		}
	}
	res.Scores[g.LastTaker.Team()] += 10

	res.Declarer = g.Declarer
	switch {
	case res.Scores[TeamA] == res.Scores[TeamB]:
		res.Tie = true
	case res.Scores[TeamA] > res.Scores[TeamB]:
		res.Winner = TeamA
	default:
		res.Winner = TeamB
	}
	res.ShutOut = res.Scores[res.Declarer.Other()] > res.Scores[res.Declarer]
	res.Swept[TeamA] = res.Scores[TeamA] == 0
	res.Swept[TeamB] = res.Scores[TeamB] == 0
	return res
}

func finishHand(g *GameState) {
	res := Score(*g)
	g.Result = &res
	g.Phase = PhaseHandOver

	g.logf("Hand over. Team A %d, Team B %d.", res.Scores[TeamA], res.Scores[TeamB])
	if res.Tie {
		g.logf("The hand is a tie.")
	} else {
		g.logf("%s wins the hand.", res.Winner)
	}
	if res.ShutOut {
		g.logf("%s declared and went to the bath.", res.Declarer)
	}
	for t := TeamA; t <= TeamB; t++ {
		if res.Swept[t] {
			g.logf("Cappotto! %s took no points.", t)
		}
	}
}
