package views

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
	"github.com/vicentesantos13/playoffs-challenge/internal/league"
	"github.com/vicentesantos13/playoffs-challenge/internal/utils"
)

// BoardPage shows everyone's picks for the active round, with correctness
// marks for finished games.
func BoardPage(round *league.Round, games []BoardGame) templ.Component {
	return layout("Board", templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if round == nil {
			return emptyState("No active round yet.").Render(ctx, w)
		}

		if _, err := fmt.Fprintf(w, `<h1>%s — Board</h1>`, templ.EscapeString(round.Name)); err != nil {
			return err
		}

		for _, bg := range games {
			if err := boardGameCard(bg).Render(ctx, w); err != nil {
				return err
			}
		}
		return nil
	}))
}

func boardGameCard(bg BoardGame) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		g := bg.Game
		title := fmt.Sprintf("%s @ %s", g.AwayTeam, g.HomeTeam)
		if g.HasFinalScore() {
			title = fmt.Sprintf("%s %d @ %s %d (FINAL)",
				g.AwayTeam, utils.OrZero(g.AwayScore), g.HomeTeam, utils.OrZero(g.HomeScore))
		}

		if _, err := fmt.Fprintf(w, `<section class="card board-card"><h2>%s</h2>`, templ.EscapeString(title)); err != nil {
			return err
		}

		if len(bg.Picks) == 0 {
			if err := emptyState("No picks for this game.").Render(ctx, w); err != nil {
				return err
			}
			_, err := fmt.Fprint(w, `</section>`)
			return err
		}

		if _, err := fmt.Fprint(w, `<table><thead><tr><th>Who</th><th>Pick</th><th>Margin</th><th>Result</th></tr></thead><tbody>`); err != nil {
			return err
		}

		for _, sp := range bg.Picks {
			side := g.AwayTeam
			if sp.Pick.PickWinner == league.WinnerHome {
				side = g.HomeTeam
			}

			result := "—"
			if sp.Scored {
				result = fmt.Sprintf("%s %s (%d pts)", mark(sp.WinnerCorrect), mark(sp.MarginCorrect), sp.Points)
			}

			if _, err := fmt.Fprintf(w, `<tr><td>%s</td><td>%s</td><td>by %s</td><td>%s</td></tr>`,
				templ.EscapeString(sp.Pick.ParticipantName),
				templ.EscapeString(side),
				sp.Pick.PickMargin.Label(),
				result); err != nil {
				return err
			}
		}

		_, err := fmt.Fprint(w, `</tbody></table></section>`)
		return err
	})
}

func mark(ok bool) string {
	if ok {
		return "✅"
	}
	return "❌"
}
