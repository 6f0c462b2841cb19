package views

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/a-h/templ"
	"github.com/google/uuid"
	"github.com/vicentesantos13/playoffs-challenge/internal/league"
)

// PicksPage renders the pick form for each unlocked game of the active
// round, pre-selecting the participant's current picks.
func PicksPage(round *league.Round, myPicks map[uuid.UUID]league.Pick) templ.Component {
	return layout("My Picks", templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if round == nil {
			return emptyState("No active round yet.").Render(ctx, w)
		}

		if _, err := fmt.Fprintf(w, `<h1>%s</h1>`, templ.EscapeString(round.Name)); err != nil {
			return err
		}

		now := time.Now()
		for _, g := range round.Games {
			pick, hasPick := myPicks[g.ID]
			if err := pickForm(g, pick, hasPick, g.Status == league.GameFinal || g.Locked(now)).Render(ctx, w); err != nil {
				return err
			}
		}
		return nil
	}))
}

func pickForm(g league.Game, pick league.Pick, hasPick, locked bool) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<section class="card pick-card"><h2>%s @ %s</h2>`,
			templ.EscapeString(g.AwayTeam), templ.EscapeString(g.HomeTeam)); err != nil {
			return err
		}

		if locked {
			label := "Picks are locked for this game."
			if hasPick {
				label = fmt.Sprintf("Locked. Your pick: %s by %s.", pick.PickWinner, pick.PickMargin.Label())
			}
			if _, err := fmt.Fprintf(w, `<p class="locked">%s</p></section>`, templ.EscapeString(label)); err != nil {
				return err
			}
			return nil
		}

		if _, err := fmt.Fprintf(w, `<form method="post" action="/picks"><input type="hidden" name="game_id" value="%s">`,
			g.ID); err != nil {
			return err
		}

		for _, side := range []league.Winner{league.WinnerAway, league.WinnerHome} {
			checked := ""
			if hasPick && pick.PickWinner == side {
				checked = " checked"
			}
			name := g.AwayTeam
			if side == league.WinnerHome {
				name = g.HomeTeam
			}
			if _, err := fmt.Fprintf(w, `<label><input type="radio" name="winner" value="%s"%s required> %s</label>`,
				side, checked, templ.EscapeString(name)); err != nil {
				return err
			}
		}

		if _, err := fmt.Fprint(w, `<select name="margin" required>`); err != nil {
			return err
		}
		for _, m := range league.MarginBuckets {
			selected := ""
			if hasPick && pick.PickMargin == m {
				selected = " selected"
			}
			if _, err := fmt.Fprintf(w, `<option value="%s"%s>by %s</option>`, m, selected, m.Label()); err != nil {
				return err
			}
		}

		_, err := fmt.Fprint(w, `</select><button type="submit">Save pick</button></form></section>`)
		return err
	})
}
