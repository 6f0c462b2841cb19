package views

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
	"github.com/vicentesantos13/playoffs-challenge/internal/league"
)

// AdminPage renders round, game and participant management. Rounds come in
// with their games preloaded.
func AdminPage(rounds []league.Round, participants []league.Participant) templ.Component {
	return layout("Admin", templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := adminRounds(rounds).Render(ctx, w); err != nil {
			return err
		}
		return adminParticipants(participants).Render(ctx, w)
	}))
}

func adminRounds(rounds []league.Round) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprint(w, `<section class="card"><h2>Rounds</h2>
<form method="post" action="/admin/rounds">
<input type="text" name="name" placeholder="Round name" required>
<input type="number" name="order" value="0" required>
<button type="submit">Create round</button>
</form>`); err != nil {
			return err
		}

		for _, r := range rounds {
			if err := adminRound(r).Render(ctx, w); err != nil {
				return err
			}
		}

		_, err := fmt.Fprint(w, `</section>`)
		return err
	})
}

func adminRound(r league.Round) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		active := ""
		if r.IsActive {
			active = ` <span class="badge-active">ACTIVE</span>`
		}
		if _, err := fmt.Fprintf(w, `<article class="round"><h3>%s%s</h3>`,
			templ.EscapeString(r.Name), active); err != nil {
			return err
		}

		if !r.IsActive {
			if _, err := fmt.Fprintf(w, `<form method="post" action="/admin/rounds/%s/activate" class="inline"><button type="submit">Set active</button></form>`,
				r.ID); err != nil {
				return err
			}
		}

		if _, err := fmt.Fprintf(w, `
<form method="post" action="/admin/games">
<input type="hidden" name="round_id" value="%s">
<input type="text" name="home_team" placeholder="Home team" required>
<input type="text" name="away_team" placeholder="Away team" required>
<input type="datetime-local" name="start_at" required>
<input type="datetime-local" name="lock_at" required>
<button type="submit">Add game</button>
</form><ul class="games">`, r.ID); err != nil {
			return err
		}

		for _, g := range r.Games {
			if err := adminGame(g).Render(ctx, w); err != nil {
				return err
			}
		}

		_, err := fmt.Fprint(w, `</ul></article>`)
		return err
	})
}

func adminGame(g league.Game) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<li>%s @ %s — %s`,
			templ.EscapeString(g.AwayTeam), templ.EscapeString(g.HomeTeam), g.Status); err != nil {
			return err
		}

		if g.Status != league.GameFinal {
			if _, err := fmt.Fprintf(w, `
<form method="post" action="/admin/games/%s/edit" class="inline">
<input type="hidden" name="round_id" value="%s">
<input type="text" name="home_team" value="%s" required>
<input type="text" name="away_team" value="%s" required>
<input type="datetime-local" name="start_at" value="%s" required>
<button type="submit">Save</button>
</form>`,
				g.ID, g.RoundID,
				templ.EscapeString(g.HomeTeam), templ.EscapeString(g.AwayTeam),
				g.StartAt.Format("2006-01-02T15:04")); err != nil {
				return err
			}
			if _, err := fmt.Fprintf(w, `
<form method="post" action="/admin/games/%[1]s/finalize" class="inline">
<input type="number" name="away_score" min="0" placeholder="Away" required>
<input type="number" name="home_score" min="0" placeholder="Home" required>
<button type="submit">Finalize</button>
</form>
<form method="post" action="/admin/games/%[1]s/delete" class="inline"><button type="submit">Delete</button></form>`,
				g.ID); err != nil {
				return err
			}
		}

		_, err := fmt.Fprint(w, `</li>`)
		return err
	})
}

func adminParticipants(participants []league.Participant) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprint(w, `<section class="card"><h2>Participants</h2><table><thead><tr><th>Name</th><th>Admin</th><th>Pro</th><th></th></tr></thead><tbody>`); err != nil {
			return err
		}

		for _, p := range participants {
			adminChecked, proChecked := "", ""
			if p.IsAdmin {
				adminChecked = " checked"
			}
			if p.IsPro {
				proChecked = " checked"
			}
			if _, err := fmt.Fprintf(w, `<tr><td>%s</td>
<form method="post" action="/admin/participants/%s">
<td><input type="checkbox" name="is_admin"%s></td>
<td><input type="checkbox" name="is_pro"%s></td>
<td><button type="submit">Save</button></td>
</form></tr>`,
				templ.EscapeString(p.Name), p.ID, adminChecked, proChecked); err != nil {
				return err
			}
		}

		_, err := fmt.Fprint(w, `</tbody></table></section>`)
		return err
	})
}
