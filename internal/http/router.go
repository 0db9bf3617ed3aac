package http

import (
	"net/http"
	"strings"
)

type RouterConfig struct {
	Auth           *AuthHandler
	Rounds         *RoundHandler
	Participations *ParticipationHandler
	Reports        *ReportingHandler
	Profiles       *ProfileHandler
	Middleware     []func(http.Handler) http.Handler
}

func NewRouter(cfg RouterConfig) http.Handler {
	mux := http.NewServeMux()

	if cfg.Auth != nil {
		mux.HandleFunc("/sessions", func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost {
				methodNotAllowed(w, http.MethodPost)
				return
			}
			cfg.Auth.CreateSession(w, r)
		})
		mux.HandleFunc("/sessions/current", func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodDelete {
				methodNotAllowed(w, http.MethodDelete)
				return
			}
			cfg.Auth.DeleteCurrentSession(w, r)
		})
		mux.HandleFunc("/sessions/", func(w http.ResponseWriter, r *http.Request) {
			token := strings.TrimPrefix(r.URL.Path, "/sessions/")
			if token == "" {
				http.NotFound(w, r)
				return
			}
			if r.Method != http.MethodDelete {
				methodNotAllowed(w, http.MethodDelete)
				return
			}
			cfg.Auth.DeleteSession(w, r, token)
		})
	}

	if cfg.Rounds != nil {
		mux.HandleFunc("/rounds", func(w http.ResponseWriter, r *http.Request) {
			switch r.Method {
			case http.MethodGet:
				cfg.Rounds.List(w, r)
			case http.MethodPost:
				cfg.Rounds.Create(w, r)
			default:
				methodNotAllowed(w, http.MethodGet, http.MethodPost)
			}
		})
		mux.HandleFunc("/rounds/", func(w http.ResponseWriter, r *http.Request) {
			id := strings.TrimPrefix(r.URL.Path, "/rounds/")
			if id == "" {
				http.NotFound(w, r)
				return
			}
			ctx := ContextWithRoundID(r.Context(), id)
			r = r.WithContext(ctx)
			switch r.Method {
			case http.MethodGet:
				cfg.Rounds.Get(w, r)
			case http.MethodPut:
				cfg.Rounds.Update(w, r)
			case http.MethodDelete:
				cfg.Rounds.Delete(w, r)
			default:
				methodNotAllowed(w, http.MethodGet, http.MethodPut, http.MethodDelete)
			}
		})
	}

	if cfg.Reports != nil {
		mux.HandleFunc("/reports/overview", func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodGet {
				methodNotAllowed(w, http.MethodGet)
				return
			}
			cfg.Reports.Overview(w, r)
		})
		mux.HandleFunc("/reports/participants", func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodGet {
				methodNotAllowed(w, http.MethodGet)
				return
			}
			cfg.Reports.Participants(w, r)
		})
		mux.HandleFunc("/users", func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodGet {
				methodNotAllowed(w, http.MethodGet)
				return
			}
			cfg.Reports.UserTable(w, r)
		})
	}

	if cfg.Participations != nil {
		mux.HandleFunc("/me/participations", func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodGet {
				methodNotAllowed(w, http.MethodGet)
				return
			}
			cfg.Participations.List(w, r)
		})
		mux.HandleFunc("/me/participations/", func(w http.ResponseWriter, r *http.Request) {
			rest := strings.TrimPrefix(r.URL.Path, "/me/participations/")
			routeParticipation(cfg.Participations, w, r, rest)
		})
	}

	if cfg.Profiles != nil {
		mux.HandleFunc("/me/profile", func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodGet {
				methodNotAllowed(w, http.MethodGet)
				return
			}
			cfg.Profiles.Get(w, r)
		})
		mux.HandleFunc("/me/profile/", func(w http.ResponseWriter, r *http.Request) {
			section := strings.TrimPrefix(r.URL.Path, "/me/profile/")
			if r.Method != http.MethodPut {
				methodNotAllowed(w, http.MethodPut)
				return
			}
			switch section {
			case "basics":
				cfg.Profiles.UpdateBasics(w, r)
			case "experience":
				cfg.Profiles.ReplaceExperience(w, r)
			case "education":
				cfg.Profiles.ReplaceEducation(w, r)
			case "training":
				cfg.Profiles.ReplaceTraining(w, r)
			default:
				http.NotFound(w, r)
			}
		})
	}

	var handler http.Handler = mux
	if len(cfg.Middleware) > 0 {
		for i := len(cfg.Middleware) - 1; i >= 0; i-- {
			if cfg.Middleware[i] != nil {
				handler = cfg.Middleware[i](handler)
			}
		}
	}

	return handler
}

// routeParticipation dispatches the nested meeting and registration routes
// under one participation: {roundID}/meetings, {roundID}/meetings/{meetingID}
// and {roundID}/registration.
func routeParticipation(h *ParticipationHandler, w http.ResponseWriter, r *http.Request, rest string) {
	parts := strings.Split(strings.Trim(rest, "/"), "/")
	if len(parts) < 2 || parts[0] == "" {
		http.NotFound(w, r)
		return
	}

	ctx := ContextWithRoundID(r.Context(), parts[0])
	r = r.WithContext(ctx)

	switch parts[1] {
	case "meetings":
		switch {
		case len(parts) == 2:
			if r.Method != http.MethodPost {
				methodNotAllowed(w, http.MethodPost)
				return
			}
			h.ScheduleMeeting(w, r)
		case len(parts) == 3 && parts[2] != "":
			if r.Method != http.MethodDelete {
				methodNotAllowed(w, http.MethodDelete)
				return
			}
			r = r.WithContext(ContextWithMeetingID(r.Context(), parts[2]))
			h.CancelMeeting(w, r)
		default:
			http.NotFound(w, r)
		}
	case "registration":
		if len(parts) != 2 {
			http.NotFound(w, r)
			return
		}
		if r.Method != http.MethodPut {
			methodNotAllowed(w, http.MethodPut)
			return
		}
		h.SaveRegistration(w, r)
	default:
		http.NotFound(w, r)
	}
}

func methodNotAllowed(w http.ResponseWriter, allowed ...string) {
	if len(allowed) > 0 {
		w.Header().Set("Allow", strings.Join(allowed, ", "))
	}
	http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
}
