package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/alexedwards/scs/v2"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/markbates/goth/gothic"
	"github.com/vicentesantos13/playoffs-challenge/internal/db"
	"github.com/vicentesantos13/playoffs-challenge/internal/httputil"
	"github.com/vicentesantos13/playoffs-challenge/internal/league"
	"github.com/vicentesantos13/playoffs-challenge/internal/middleware"
	"github.com/vicentesantos13/playoffs-challenge/internal/service"
	"github.com/vicentesantos13/playoffs-challenge/internal/store"
	"github.com/vicentesantos13/playoffs-challenge/views"
)

// Form value layout used by <input type="datetime-local">.
const datetimeLocal = "2006-01-02T15:04"

func handleServiceError(w http.ResponseWriter, msg string, err error) {
	var vErr *service.ValidationError
	switch {
	case errors.As(err, &vErr):
		httputil.BadRequest(w, vErr.Message, err)
	case errors.Is(err, service.ErrLocked):
		httputil.BadRequest(w, "Picks are locked for this game", err)
	case errors.Is(err, service.ErrForbidden):
		httputil.Forbidden(w, "Admins only", err)
	case errors.Is(err, sql.ErrNoRows):
		httputil.NotFound(w, msg, err)
	default:
		httputil.InternalServerError(w, msg, err)
	}
}

func newRouter(sessionManager *scs.SessionManager) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(sessionManager.LoadAndSave)
	r.Use(middleware.LoadParticipant(sessionManager, store.NewParticipantStore(db.GetDB())))

	// Serve static files
	fileServer := http.FileServer(http.Dir("./static"))
	r.Handle("/static/*", http.StripPrefix("/static/", fileServer))

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		dbConn := db.GetDB()
		boardService := service.NewBoardService(dbConn, store.NewRoundStore(dbConn), store.NewPickStore(dbConn))
		leaderboardService := service.NewLeaderboardService(dbConn, store.NewRoundStore(dbConn), store.NewPickStore(dbConn))

		round, err := boardService.ActiveRound(r.Context())
		if err != nil {
			httputil.InternalServerError(w, "Failed to get active round", err)
			return
		}

		teams, err := store.NewTeamStore(dbConn).GetTeams(r.Context())
		if err != nil {
			httputil.InternalServerError(w, "Failed to get teams", err)
			return
		}

		standings, err := leaderboardService.Standings(r.Context())
		if err != nil {
			httputil.InternalServerError(w, "Failed to compute standings", err)
			return
		}

		views.Index(round, teams, standings).Render(r.Context(), w)
	})

	r.Get("/board", func(w http.ResponseWriter, r *http.Request) {
		dbConn := db.GetDB()
		boardService := service.NewBoardService(dbConn, store.NewRoundStore(dbConn), store.NewPickStore(dbConn))

		round, err := boardService.ActiveBoard(r.Context())
		if err != nil {
			httputil.InternalServerError(w, "Failed to get board", err)
			return
		}

		games, err := views.PrepareBoardData(round)
		if err != nil {
			httputil.InternalServerError(w, "Failed to score board", err)
			return
		}

		views.BoardPage(round, games).Render(r.Context(), w)
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth)

		r.Get("/picks", func(w http.ResponseWriter, r *http.Request) {
			dbConn := db.GetDB()
			boardService := service.NewBoardService(dbConn, store.NewRoundStore(dbConn), store.NewPickStore(dbConn))
			pickService := service.NewPickService(dbConn, store.NewGameStore(dbConn), store.NewPickStore(dbConn))

			round, err := boardService.ActiveRound(r.Context())
			if err != nil {
				httputil.InternalServerError(w, "Failed to get active round", err)
				return
			}

			myPicks, err := pickService.PicksForParticipant(r.Context())
			if err != nil {
				handleServiceError(w, "Failed to get picks", err)
				return
			}

			views.PicksPage(round, myPicks).Render(r.Context(), w)
		})

		r.Post("/picks", func(w http.ResponseWriter, r *http.Request) {
			dbConn := db.GetDB()
			pickService := service.NewPickService(dbConn, store.NewGameStore(dbConn), store.NewPickStore(dbConn))

			if err := r.ParseForm(); err != nil {
				httputil.BadRequest(w, "Invalid form data", err)
				return
			}
			gameID, err := uuid.Parse(r.Form.Get("game_id"))
			if err != nil {
				httputil.BadRequest(w, "Invalid game ID", err)
				return
			}

			err = pickService.UpsertPick(r.Context(), gameID,
				league.Winner(r.Form.Get("winner")), league.MarginBucket(r.Form.Get("margin")))
			if err != nil {
				handleServiceError(w, "Failed to save pick", err)
				return
			}

			http.Redirect(w, r, "/picks", http.StatusFound)
		})
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAdmin)

		adminService := func() *service.AdminService {
			dbConn := db.GetDB()
			return service.NewAdminService(dbConn,
				store.NewRoundStore(dbConn), store.NewGameStore(dbConn),
				store.NewPickStore(dbConn), store.NewParticipantStore(dbConn))
		}

		r.Get("/admin", func(w http.ResponseWriter, r *http.Request) {
			dbConn := db.GetDB()
			rounds, err := store.NewRoundStore(dbConn).GetRounds(r.Context())
			if err != nil {
				httputil.InternalServerError(w, "Failed to get rounds", err)
				return
			}

			participants, err := adminService().Participants(r.Context())
			if err != nil {
				handleServiceError(w, "Failed to get participants", err)
				return
			}

			views.AdminPage(rounds, participants).Render(r.Context(), w)
		})

		r.Post("/admin/rounds", func(w http.ResponseWriter, r *http.Request) {
			if err := r.ParseForm(); err != nil {
				httputil.BadRequest(w, "Invalid form data", err)
				return
			}
			order, err := strconv.Atoi(r.Form.Get("order"))
			if err != nil {
				httputil.BadRequest(w, "Invalid round order", err)
				return
			}

			if _, err := adminService().CreateRound(r.Context(), r.Form.Get("name"), order); err != nil {
				handleServiceError(w, "Failed to create round", err)
				return
			}
			http.Redirect(w, r, "/admin", http.StatusFound)
		})

		r.Post("/admin/rounds/{id}/activate", func(w http.ResponseWriter, r *http.Request) {
			roundID, err := uuid.Parse(chi.URLParam(r, "id"))
			if err != nil {
				httputil.BadRequest(w, "Invalid round ID", err)
				return
			}
			if err := adminService().SetActiveRound(r.Context(), roundID); err != nil {
				handleServiceError(w, "Round not found", err)
				return
			}
			http.Redirect(w, r, "/admin", http.StatusFound)
		})

		r.Post("/admin/games", func(w http.ResponseWriter, r *http.Request) {
			input, err := parseGameForm(r)
			if err != nil {
				httputil.BadRequest(w, "Invalid form data", err)
				return
			}
			if _, err := adminService().CreateGame(r.Context(), input); err != nil {
				handleServiceError(w, "Failed to create game", err)
				return
			}
			http.Redirect(w, r, "/admin", http.StatusFound)
		})

		r.Post("/admin/games/{id}/edit", func(w http.ResponseWriter, r *http.Request) {
			gameID, err := uuid.Parse(chi.URLParam(r, "id"))
			if err != nil {
				httputil.BadRequest(w, "Invalid game ID", err)
				return
			}
			input, err := parseGameForm(r)
			if err != nil {
				httputil.BadRequest(w, "Invalid form data", err)
				return
			}
			if err := adminService().UpdateGame(r.Context(), gameID, input); err != nil {
				handleServiceError(w, "Game not found", err)
				return
			}
			http.Redirect(w, r, "/admin", http.StatusFound)
		})

		r.Post("/admin/games/{id}/finalize", func(w http.ResponseWriter, r *http.Request) {
			gameID, err := uuid.Parse(chi.URLParam(r, "id"))
			if err != nil {
				httputil.BadRequest(w, "Invalid game ID", err)
				return
			}
			if err := r.ParseForm(); err != nil {
				httputil.BadRequest(w, "Invalid form data", err)
				return
			}
			homeScore, err := strconv.Atoi(r.Form.Get("home_score"))
			if err != nil {
				httputil.BadRequest(w, "Invalid home score", err)
				return
			}
			awayScore, err := strconv.Atoi(r.Form.Get("away_score"))
			if err != nil {
				httputil.BadRequest(w, "Invalid away score", err)
				return
			}

			if err := adminService().FinalizeGame(r.Context(), gameID, homeScore, awayScore); err != nil {
				handleServiceError(w, "Game not found", err)
				return
			}
			http.Redirect(w, r, "/admin", http.StatusFound)
		})

		r.Post("/admin/games/{id}/delete", func(w http.ResponseWriter, r *http.Request) {
			gameID, err := uuid.Parse(chi.URLParam(r, "id"))
			if err != nil {
				httputil.BadRequest(w, "Invalid game ID", err)
				return
			}
			if err := adminService().DeleteGame(r.Context(), gameID); err != nil {
				handleServiceError(w, "Game not found", err)
				return
			}
			http.Redirect(w, r, "/admin", http.StatusFound)
		})

		r.Post("/admin/participants/{id}", func(w http.ResponseWriter, r *http.Request) {
			participantID, err := uuid.Parse(chi.URLParam(r, "id"))
			if err != nil {
				httputil.BadRequest(w, "Invalid participant ID", err)
				return
			}
			if err := r.ParseForm(); err != nil {
				httputil.BadRequest(w, "Invalid form data", err)
				return
			}

			isAdmin := r.Form.Get("is_admin") == "on"
			isPro := r.Form.Get("is_pro") == "on"
			if err := adminService().UpdateParticipantFlags(r.Context(), participantID, &isAdmin, &isPro); err != nil {
				handleServiceError(w, "Participant not found", err)
				return
			}
			http.Redirect(w, r, "/admin", http.StatusFound)
		})
	})

	r.Get("/login", func(w http.ResponseWriter, r *http.Request) {
		views.LoginPage().Render(r.Context(), w)
	})

	r.Post("/login", func(w http.ResponseWriter, r *http.Request) {
		dbConn := db.GetDB()
		participantService := service.NewParticipantService(dbConn, store.NewParticipantStore(dbConn))

		if err := r.ParseForm(); err != nil {
			httputil.BadRequest(w, "Invalid form data", err)
			return
		}

		participant, err := participantService.SignIn(r.Context(), r.Form.Get("name"), r.Form.Get("pin"))
		if err != nil {
			handleServiceError(w, "Failed to sign in", err)
			return
		}

		sessionManager.Put(r.Context(), middleware.SessionParticipantID, participant.ID.String())
		http.Redirect(w, r, "/", http.StatusFound)
	})

	r.Post("/logout", func(w http.ResponseWriter, r *http.Request) {
		sessionManager.Destroy(r.Context())
		http.Redirect(w, r, "/login", http.StatusFound)
	})

	r.Get("/auth/{provider}", func(w http.ResponseWriter, r *http.Request) {
		provider := chi.URLParam(r, "provider")
		r = r.WithContext(context.WithValue(r.Context(), "provider", provider))

		gothic.BeginAuthHandler(w, r)
	})

	r.Get("/auth/{provider}/callback", func(w http.ResponseWriter, r *http.Request) {
		provider := chi.URLParam(r, "provider")
		r = r.WithContext(context.WithValue(r.Context(), "provider", provider))

		gothUser, err := gothic.CompleteUserAuth(w, r)
		if err != nil {
			httputil.BadRequest(w, "Authentication failure", err)
			return
		}

		dbConn := db.GetDB()
		participantService := service.NewParticipantService(dbConn, store.NewParticipantStore(dbConn))
		participant, err := participantService.FindOrCreateByProvider(r.Context(), gothUser)
		if err != nil {
			httputil.InternalServerError(w, "Failed to find or create participant", err)
			return
		}

		sessionManager.Put(r.Context(), middleware.SessionParticipantID, participant.ID.String())
		http.Redirect(w, r, "/", http.StatusFound)
	})

	return r
}

func parseGameForm(r *http.Request) (service.GameInput, error) {
	if err := r.ParseForm(); err != nil {
		return service.GameInput{}, err
	}

	roundID, err := uuid.Parse(r.Form.Get("round_id"))
	if err != nil {
		return service.GameInput{}, err
	}

	startAt, err := time.ParseInLocation(datetimeLocal, r.Form.Get("start_at"), time.Local)
	if err != nil {
		return service.GameInput{}, err
	}

	// Edit form has no lock field: the service resets lock to kickoff.
	lockAt := startAt
	if v := r.Form.Get("lock_at"); v != "" {
		lockAt, err = time.ParseInLocation(datetimeLocal, v, time.Local)
		if err != nil {
			return service.GameInput{}, err
		}
	}

	return service.GameInput{
		RoundID:  roundID,
		HomeTeam: r.Form.Get("home_team"),
		AwayTeam: r.Form.Get("away_team"),
		StartAt:  startAt,
		LockAt:   lockAt,
	}, nil
}
