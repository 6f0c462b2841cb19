package views

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

func LoginPage() templ.Component {
	return layout("Sign in", templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprint(w, `
<section class="login-card">
<h1>Sign in</h1>
<p>Use your name and PIN. First time? The PIN you choose becomes yours.</p>
<form method="post" action="/login">
<label>Name <input type="text" name="name" required autofocus></label>
<label>PIN <input type="password" name="pin" minlength="4" required></label>
<button type="submit">Enter</button>
</form>
<div class="oauth">
<a href="/auth/discord">Continue with Discord</a>
<a href="/auth/google">Continue with Google</a>
</div>
</section>`)
		return err
	}))
}
