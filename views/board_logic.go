package views

import (
	"github.com/vicentesantos13/playoffs-challenge/internal/league"
	"github.com/vicentesantos13/playoffs-challenge/internal/scoring"
)

type ScoredPick struct {
	Pick league.Pick

	// Derived from the game score at render time, never from the cached
	// pick columns. Scored is false while the game is not final.
	Scored        bool
	WinnerCorrect bool
	MarginCorrect bool
	Points        int
}

type BoardGame struct {
	Game  league.Game
	Picks []ScoredPick
}

// PrepareBoardData re-derives every pick's correctness from the current scores
// so the board always agrees with the leaderboard recompute path.
func PrepareBoardData(round *league.Round) ([]BoardGame, error) {
	if round == nil {
		return nil, nil
	}

	games := make([]BoardGame, 0, len(round.Games))
	for _, g := range round.Games {
		bg := BoardGame{Game: g}

		for _, p := range g.Picks {
			sp := ScoredPick{Pick: p}
			if g.HasFinalScore() {
				res, err := scoring.Score(p, *g.HomeScore, *g.AwayScore, round.Name)
				if err != nil {
					return nil, err
				}
				sp.Scored = true
				sp.WinnerCorrect = res.WinnerCorrect
				sp.MarginCorrect = res.MarginCorrect
				sp.Points = res.Points
			}
			bg.Picks = append(bg.Picks, sp)
		}
		games = append(games, bg)
	}
	return games, nil
}
