// Package leaderboard rolls per-pick points up into standings.
package leaderboard

import (
	"sort"

	"github.com/google/uuid"
	"github.com/vicentesantos13/playoffs-challenge/internal/league"
	"github.com/vicentesantos13/playoffs-challenge/internal/scoring"
)

type Row struct {
	ParticipantID uuid.UUID
	Name          string
	IsPro         bool
	Points        int
}

type RoundBlock struct {
	RoundID   uuid.UUID
	RoundName string
	Rows      []Row
}

type Standings struct {
	// All-time ranking across every round in the input.
	TotalRows []Row
	// One block per input round, in input order.
	ByRound []RoundBlock
}

// Compute re-derives every pick's points from the underlying final score and
// aggregates them per round and all-time. It never trusts the cached points
// column, so the output stays consistent with current scores even if
// finalization ran under older rules. Games that are not FINAL with both
// scores present are skipped entirely.
//
// Rows are sorted descending by points; ties keep first-seen order. A
// participant's IsPro flag is last-write-wins across the iteration.
func Compute(rounds []league.Round) (Standings, error) {
	totals := newTally()

	byRound := make([]RoundBlock, 0, len(rounds))
	for _, r := range rounds {
		roundTally := newTally()

		for _, g := range r.Games {
			if !g.HasFinalScore() {
				continue
			}

			for _, p := range g.Picks {
				res, err := scoring.Score(p, *g.HomeScore, *g.AwayScore, r.Name)
				if err != nil {
					return Standings{}, err
				}
				totals.add(p, res.Points)
				roundTally.add(p, res.Points)
			}
		}

		byRound = append(byRound, RoundBlock{
			RoundID:   r.ID,
			RoundName: r.Name,
			Rows:      roundTally.sorted(),
		})
	}

	return Standings{TotalRows: totals.sorted(), ByRound: byRound}, nil
}

// tally accumulates points per participant while remembering first-seen
// order so that sorting stays stable across equal totals.
type tally struct {
	rows  map[uuid.UUID]*Row
	order []uuid.UUID
}

func newTally() *tally {
	return &tally{rows: make(map[uuid.UUID]*Row)}
}

func (t *tally) add(p league.Pick, points int) {
	row, ok := t.rows[p.ParticipantID]
	if !ok {
		row = &Row{ParticipantID: p.ParticipantID, Name: p.ParticipantName}
		t.rows[p.ParticipantID] = row
		t.order = append(t.order, p.ParticipantID)
	}
	row.Points += points
	row.IsPro = p.ParticipantIsPro
}

func (t *tally) sorted() []Row {
	rows := make([]Row, 0, len(t.order))
	for _, id := range t.order {
		rows = append(rows, *t.rows[id])
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Points > rows[j].Points
	})
	return rows
}
