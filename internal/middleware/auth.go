package middleware

import (
	"context"
	"net/http"
	"os"

	"github.com/alexedwards/scs/v2"
	"github.com/google/uuid"
	"github.com/markbates/goth"
	"github.com/markbates/goth/providers/discord"
	"github.com/markbates/goth/providers/google"
	"github.com/vicentesantos13/playoffs-challenge/internal/league"
	"github.com/vicentesantos13/playoffs-challenge/internal/store"
)

const SessionParticipantID = "participantID"

func InitAuth() {
	discordKey := os.Getenv("DISCORD_KEY")
	discordSecret := os.Getenv("DISCORD_SECRET")
	discordCallbackURL := os.Getenv("DISCORD_CALLBACK_URL")

	googleKey := os.Getenv("GOOGLE_KEY")
	googleSecret := os.Getenv("GOOGLE_SECRET")
	googleCallbackURL := os.Getenv("GOOGLE_CALLBACK_URL")

	goth.UseProviders(
		discord.New(discordKey, discordSecret, discordCallbackURL, discord.ScopeIdentify, discord.ScopeEmail),
		google.New(googleKey, googleSecret, googleCallbackURL, "email", "profile"),
	)
}

// LoadParticipant resolves the session's participant and stores it in the
// request context so handlers and services can get at it cheaply. A missing
// or stale session just leaves the context empty.
func LoadParticipant(sessionManager *scs.SessionManager, participantStore *store.ParticipantStore) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			idStr := sessionManager.GetString(r.Context(), SessionParticipantID)
			if idStr == "" {
				next.ServeHTTP(w, r)
				return
			}

			id, err := uuid.Parse(idStr)
			if err != nil {
				sessionManager.Remove(r.Context(), SessionParticipantID)
				next.ServeHTTP(w, r)
				return
			}

			participant, err := participantStore.GetParticipant(r.Context(), id)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), league.ParticipantKey, participant)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if GetSessionParticipant(r.Context()) == nil {
			http.Redirect(w, r, "/login", http.StatusFound)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		participant := GetSessionParticipant(r.Context())
		if participant == nil {
			http.Redirect(w, r, "/login", http.StatusFound)
			return
		}
		if !participant.IsAdmin {
			http.Error(w, "Forbidden", http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func GetSessionParticipant(ctx context.Context) *league.Participant {
	val := ctx.Value(league.ParticipantKey)
	if val == nil {
		return nil
	}
	participant, ok := val.(*league.Participant)
	if !ok {
		return nil
	}
	return participant
}
