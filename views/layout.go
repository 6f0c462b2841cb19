package views

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

func layout(title string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>%s | Playoffs Challenge</title>
<link rel="stylesheet" href="/static/style.css">
</head>
<body>
<header class="site-header">
<a href="/" class="brand">Playoffs Challenge</a>
<nav>`, templ.EscapeString(title)); err != nil {
			return err
		}

		participant := GetParticipant(ctx)
		if participant != nil {
			if _, err := fmt.Fprint(w, `<a href="/picks">My Picks</a><a href="/board">Board</a>`); err != nil {
				return err
			}
			if participant.IsAdmin {
				if _, err := fmt.Fprint(w, `<a href="/admin">Admin</a>`); err != nil {
					return err
				}
			}
			if _, err := fmt.Fprintf(w, `<form method="post" action="/logout" class="inline"><button type="submit">Sign out (%s)</button></form>`,
				templ.EscapeString(participant.Name)); err != nil {
				return err
			}
		} else {
			if _, err := fmt.Fprint(w, `<a href="/login">Sign in</a>`); err != nil {
				return err
			}
		}

		if _, err := fmt.Fprint(w, `</nav></header><main>`); err != nil {
			return err
		}

		if err := body.Render(ctx, w); err != nil {
			return err
		}

		_, err := fmt.Fprint(w, `</main></body></html>`)
		return err
	})
}

// emptyState renders the explicit "nothing here yet" block used wherever a
// read path has no data: absence is not an error.
func emptyState(message string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<div class="empty-state"><p>%s</p></div>`, templ.EscapeString(message))
		return err
	})
}
