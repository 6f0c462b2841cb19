package views

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
	"github.com/vicentesantos13/playoffs-challenge/internal/leaderboard"
	"github.com/vicentesantos13/playoffs-challenge/internal/league"
	"github.com/vicentesantos13/playoffs-challenge/internal/utils"
)

// Index is the home page: the active round's games plus the all-time and
// per-round leaderboards.
func Index(activeRound *league.Round, teams []league.Team, standings leaderboard.Standings) templ.Component {
	return layout("Home", templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := gamesCard(activeRound, teams).Render(ctx, w); err != nil {
			return err
		}

		if err := leaderboardCard("All-time standings", standings.TotalRows).Render(ctx, w); err != nil {
			return err
		}

		if activeRound != nil {
			for _, block := range standings.ByRound {
				if block.RoundID == activeRound.ID {
					return leaderboardCard(block.RoundName, block.Rows).Render(ctx, w)
				}
			}
		}
		return nil
	}))
}

func gamesCard(round *league.Round, teams []league.Team) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if round == nil {
			return emptyState("No active round yet. Check back soon.").Render(ctx, w)
		}

		if _, err := fmt.Fprintf(w, `<section class="card games-card"><h2>%s</h2><ul class="games">`,
			templ.EscapeString(round.Name)); err != nil {
			return err
		}

		for _, g := range round.Games {
			if err := gameRow(g, teams).Render(ctx, w); err != nil {
				return err
			}
		}

		_, err := fmt.Fprint(w, `</ul></section>`)
		return err
	})
}

func gameRow(g league.Game, teams []league.Team) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprint(w, `<li class="game">`); err != nil {
			return err
		}

		for _, side := range []string{g.AwayTeam, g.HomeTeam} {
			if logo := LogoFor(teams, side); logo != "" {
				if _, err := fmt.Fprintf(w, `<img src="%s" alt="" class="team-logo">`, templ.EscapeString(logo)); err != nil {
					return err
				}
			}
			if _, err := fmt.Fprintf(w, `<span class="team">%s</span>`, templ.EscapeString(side)); err != nil {
				return err
			}
		}

		if g.HasFinalScore() {
			if _, err := fmt.Fprintf(w, `<span class="score">%d – %d</span><span class="status">FINAL</span>`,
				utils.OrZero(g.AwayScore), utils.OrZero(g.HomeScore)); err != nil {
				return err
			}
		} else {
			if _, err := fmt.Fprintf(w, `<span class="kickoff">%s</span>`,
				g.StartAt.Format("Mon Jan 2, 3:04 PM")); err != nil {
				return err
			}
		}

		_, err := fmt.Fprint(w, `</li>`)
		return err
	})
}

func leaderboardCard(title string, rows []leaderboard.Row) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<section class="card leaderboard-card"><h2>%s</h2>`,
			templ.EscapeString(title)); err != nil {
			return err
		}

		if len(rows) == 0 {
			if err := emptyState("No points yet.").Render(ctx, w); err != nil {
				return err
			}
			_, err := fmt.Fprint(w, `</section>`)
			return err
		}

		if _, err := fmt.Fprint(w, `<table><thead><tr><th>#</th><th>Name</th><th>Points</th></tr></thead><tbody>`); err != nil {
			return err
		}
		for i, row := range rows {
			pro := ""
			if row.IsPro {
				pro = ` <span class="badge-pro">PRO</span>`
			}
			if _, err := fmt.Fprintf(w, `<tr><td>%d</td><td>%s%s</td><td>%d</td></tr>`,
				i+1, templ.EscapeString(row.Name), pro, row.Points); err != nil {
				return err
			}
		}

		_, err := fmt.Fprint(w, `</tbody></table></section>`)
		return err
	})
}
