package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/circlecat/mentorship-dashboard/internal/application"
	"github.com/circlecat/mentorship-dashboard/internal/mentorship"
)

type roundService interface {
	CreateRound(ctx context.Context, params application.CreateRoundParams) (mentorship.Round, error)
	UpdateRound(ctx context.Context, params application.UpdateRoundParams) (mentorship.Round, error)
	DeleteRound(ctx context.Context, principal application.Principal, roundID string) error
	GetRound(ctx context.Context, principal application.Principal, roundID string) (mentorship.Round, error)
	ListRounds(ctx context.Context, principal application.Principal) ([]mentorship.Round, error)
}

type RoundHandler struct {
	service   roundService
	responder responder
	logger    *slog.Logger
}

func NewRoundHandler(service roundService, logger *slog.Logger) *RoundHandler {
	base := defaultLogger(logger)
	return &RoundHandler{service: service, responder: newResponder(base), logger: base}
}

func (h *RoundHandler) log(ctx context.Context, operation string, attrs ...any) *slog.Logger {
	if h == nil {
		return slog.Default()
	}
	return handlerLogger(ctx, h.logger, "RoundHandler", operation, attrs...)
}

func (h *RoundHandler) Create(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	principal, _ := PrincipalFromContext(r.Context())

	var req roundRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log(r.Context(), "Create", "principal_id", principal.AccountID, "error_kind", "bad_request").ErrorContext(r.Context(), "failed to decode round request", "error", err)
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errBadRequestBody)
		return
	}

	logger := h.log(r.Context(), "Create", "principal_id", principal.AccountID)

	round, err := h.service.CreateRound(r.Context(), application.CreateRoundParams{
		Principal: principal,
		Input:     req.toInput(),
	})
	if err != nil {
		logger.ErrorContext(r.Context(), "round creation failed", "error", err, "error_kind", application.ErrorKind(err))
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	logger.With("round_id", round.ID).InfoContext(r.Context(), "round created")
	h.responder.writeJSON(r.Context(), w, http.StatusCreated, roundResponse{Round: toRoundDTO(round)})
}

func (h *RoundHandler) Update(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	roundID, ok := RoundIDFromContext(r.Context())
	if !ok || strings.TrimSpace(roundID) == "" {
		h.log(r.Context(), "Update", "error_kind", "bad_request").ErrorContext(r.Context(), "missing round id for update")
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errInvalidRoundID)
		return
	}

	principal, _ := PrincipalFromContext(r.Context())

	var req roundRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log(r.Context(), "Update", "principal_id", principal.AccountID, "round_id", roundID, "error_kind", "bad_request").ErrorContext(r.Context(), "failed to decode round update", "error", err)
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errBadRequestBody)
		return
	}

	logger := h.log(r.Context(), "Update", "principal_id", principal.AccountID, "round_id", roundID)

	round, err := h.service.UpdateRound(r.Context(), application.UpdateRoundParams{
		Principal: principal,
		RoundID:   roundID,
		Input:     req.toInput(),
	})
	if err != nil {
		logger.ErrorContext(r.Context(), "round update failed", "error", err, "error_kind", application.ErrorKind(err))
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	logger.InfoContext(r.Context(), "round updated")
	h.responder.writeJSON(r.Context(), w, http.StatusOK, roundResponse{Round: toRoundDTO(round)})
}

func (h *RoundHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	roundID, ok := RoundIDFromContext(r.Context())
	if !ok || strings.TrimSpace(roundID) == "" {
		h.log(r.Context(), "Delete", "error_kind", "bad_request").ErrorContext(r.Context(), "missing round id for delete")
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errInvalidRoundID)
		return
	}

	principal, _ := PrincipalFromContext(r.Context())
	logger := h.log(r.Context(), "Delete", "principal_id", principal.AccountID, "round_id", roundID)
	if err := h.service.DeleteRound(r.Context(), principal, roundID); err != nil {
		logger.ErrorContext(r.Context(), "round delete failed", "error", err, "error_kind", application.ErrorKind(err))
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	logger.InfoContext(r.Context(), "round deleted")
	h.responder.writeJSON(r.Context(), w, http.StatusNoContent, nil)
}

func (h *RoundHandler) Get(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	roundID, ok := RoundIDFromContext(r.Context())
	if !ok || strings.TrimSpace(roundID) == "" {
		h.log(r.Context(), "Get", "error_kind", "bad_request").ErrorContext(r.Context(), "missing round id for get")
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errInvalidRoundID)
		return
	}

	principal, _ := PrincipalFromContext(r.Context())
	logger := h.log(r.Context(), "Get", "principal_id", principal.AccountID, "round_id", roundID)

	round, err := h.service.GetRound(r.Context(), principal, roundID)
	if err != nil {
		logger.ErrorContext(r.Context(), "round fetch failed", "error", err, "error_kind", application.ErrorKind(err))
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	h.responder.writeJSON(r.Context(), w, http.StatusOK, roundResponse{Round: toRoundDTO(round)})
}

func (h *RoundHandler) List(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	principal, ok := PrincipalFromContext(r.Context())
	if !ok {
		h.log(r.Context(), "List", "error_kind", "unauthorized").ErrorContext(r.Context(), "missing authenticated principal")
		h.responder.writeError(r.Context(), w, http.StatusUnauthorized, errMissingSessionToken)
		return
	}
	logger := h.log(r.Context(), "List", "principal_id", principal.AccountID)
	rounds, err := h.service.ListRounds(r.Context(), principal)
	if err != nil {
		logger.ErrorContext(r.Context(), "round list failed", "error", err, "error_kind", application.ErrorKind(err))
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	logger.With("result_count", len(rounds)).InfoContext(r.Context(), "rounds listed")
	h.responder.writeJSON(r.Context(), w, http.StatusOK, listRoundsResponse{Rounds: toRoundDTOs(rounds)})
}

type roundRequest struct {
	ID               string         `json:"id"`
	Name             string         `json:"name"`
	StartDate        string         `json:"start_date"`
	EndDate          string         `json:"end_date"`
	Status           string         `json:"status"`
	RequiredMeetings int            `json:"required_meetings"`
	Phases           roundPhasesDTO `json:"phases"`
}

func (r roundRequest) toInput() application.RoundInput {
	return application.RoundInput{
		ID:               strings.TrimSpace(r.ID),
		Name:             strings.TrimSpace(r.Name),
		StartDate:        strings.TrimSpace(r.StartDate),
		EndDate:          strings.TrimSpace(r.EndDate),
		Status:           mentorship.RoundStatus(strings.TrimSpace(r.Status)),
		RequiredMeetings: r.RequiredMeetings,
		Phases: mentorship.RoundPhases{
			Registration: strings.TrimSpace(r.Phases.Registration),
			Matching:     strings.TrimSpace(r.Phases.Matching),
			InProgress:   strings.TrimSpace(r.Phases.InProgress),
			Summary:      strings.TrimSpace(r.Phases.Summary),
			Completed:    strings.TrimSpace(r.Phases.Completed),
		},
	}
}

type roundResponse struct {
	Round roundDTO `json:"round"`
}

type listRoundsResponse struct {
	Rounds []roundDTO `json:"rounds"`
}

type roundDTO struct {
	ID               string         `json:"id"`
	Name             string         `json:"name"`
	StartDate        string         `json:"start_date"`
	EndDate          string         `json:"end_date"`
	Status           string         `json:"status"`
	RequiredMeetings int            `json:"required_meetings"`
	Phases           roundPhasesDTO `json:"phases"`
}

type roundPhasesDTO struct {
	Registration string `json:"registration"`
	Matching     string `json:"matching"`
	InProgress   string `json:"in_progress"`
	Summary      string `json:"summary"`
	Completed    string `json:"completed"`
}

func toRoundDTO(round mentorship.Round) roundDTO {
	return roundDTO{
		ID:               round.ID,
		Name:             round.Name,
		StartDate:        round.StartDate,
		EndDate:          round.EndDate,
		Status:           string(round.Status),
		RequiredMeetings: round.RequiredMeetings,
		Phases: roundPhasesDTO{
			Registration: round.Phases.Registration,
			Matching:     round.Phases.Matching,
			InProgress:   round.Phases.InProgress,
			Summary:      round.Phases.Summary,
			Completed:    round.Phases.Completed,
		},
	}
}

func toRoundDTOs(rounds []mentorship.Round) []roundDTO {
	if len(rounds) == 0 {
		return nil
	}
	out := make([]roundDTO, 0, len(rounds))
	for _, round := range rounds {
		out = append(out, toRoundDTO(round))
	}
	return out
}
