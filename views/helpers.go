package views

import (
	"context"

	"github.com/vicentesantos13/playoffs-challenge/internal/league"
	"github.com/vicentesantos13/playoffs-challenge/internal/middleware"
)

func GetParticipant(ctx context.Context) *league.Participant {
	return middleware.GetSessionParticipant(ctx)
}

// LogoFor maps a team name onto its logo path, if seeded.
func LogoFor(teams []league.Team, name string) string {
	for _, t := range teams {
		if t.Name == name {
			return t.Logo
		}
	}
	return ""
}
