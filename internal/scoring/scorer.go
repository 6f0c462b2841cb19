// Package scoring converts final game scores and picks into points.
// Everything in here is a pure function of its inputs.
package scoring

import (
	"fmt"
	"strings"

	"github.com/vicentesantos13/playoffs-challenge/internal/league"
)

// Bucketize maps an absolute score differential onto a margin bucket:
// round up to the nearest multiple of 5, capped at M30, with 31+ in the
// open-ended top bucket. Ties (diff 0) fall back to M5 rather than crash.
func Bucketize(diff int) league.MarginBucket {
	if diff < 0 {
		diff = -diff
	}
	if diff <= 0 {
		return league.M5
	}

	rounded := ((diff + 4) / 5) * 5
	switch rounded {
	case 5:
		return league.M5
	case 10:
		return league.M10
	case 15:
		return league.M15
	case 20:
		return league.M20
	case 25:
		return league.M25
	case 30:
		return league.M30
	}
	return league.M30Plus
}

// WinnerSide resolves ties in favor of the home team.
func WinnerSide(homeScore, awayScore int) league.Winner {
	if homeScore >= awayScore {
		return league.WinnerHome
	}
	return league.WinnerAway
}

func isSuperBowlRound(name string) bool {
	return strings.ToLower(strings.TrimSpace(name)) == league.SuperBowlRoundName
}

type Result struct {
	WinnerCorrect bool
	MarginCorrect bool
	Points        int
	RealWinner    league.Winner
	RealBucket    league.MarginBucket
}

// Score computes the points a single pick earns against a final score.
// Margin credit requires winner credit: the margin is a refinement of the
// winner prediction, not an independent bet. Points are doubled when the
// owning round is the Super Bowl.
//
// The pick's winner and margin are validated against the closed vocabulary
// before scoring; a stale or corrupted value out of the database is an error
// here, never a silent zero.
func Score(pick league.Pick, homeScore, awayScore int, roundName string) (Result, error) {
	if _, err := league.ParseWinner(string(pick.PickWinner)); err != nil {
		return Result{}, fmt.Errorf("pick %s: %w", pick.ID, err)
	}
	if _, err := league.ParseMarginBucket(string(pick.PickMargin)); err != nil {
		return Result{}, fmt.Errorf("pick %s: %w", pick.ID, err)
	}

	realWinner := WinnerSide(homeScore, awayScore)
	realBucket := Bucketize(homeScore - awayScore)

	winnerCorrect := pick.PickWinner == realWinner
	marginCorrect := winnerCorrect && pick.PickMargin == realBucket

	points := 0
	if winnerCorrect {
		points++
	}
	if marginCorrect {
		points++
	}
	if isSuperBowlRound(roundName) {
		points *= 2
	}

	return Result{
		WinnerCorrect: winnerCorrect,
		MarginCorrect: marginCorrect,
		Points:        points,
		RealWinner:    realWinner,
		RealBucket:    realBucket,
	}, nil
}
