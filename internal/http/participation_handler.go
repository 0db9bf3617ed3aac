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

type participationService interface {
	ListParticipations(ctx context.Context, principal application.Principal) ([]application.ParticipationView, error)
	ScheduleMeeting(ctx context.Context, params application.ScheduleMeetingParams) (mentorship.Meeting, error)
	CancelMeeting(ctx context.Context, params application.CancelMeetingParams) error
	SaveRegistration(ctx context.Context, params application.SaveRegistrationParams) error
}

type ParticipationHandler struct {
	service   participationService
	responder responder
	logger    *slog.Logger
}

func NewParticipationHandler(service participationService, logger *slog.Logger) *ParticipationHandler {
	base := defaultLogger(logger)
	return &ParticipationHandler{service: service, responder: newResponder(base), logger: base}
}

func (h *ParticipationHandler) log(ctx context.Context, operation string, attrs ...any) *slog.Logger {
	if h == nil {
		return slog.Default()
	}
	return handlerLogger(ctx, h.logger, "ParticipationHandler", operation, attrs...)
}

func (h *ParticipationHandler) List(w http.ResponseWriter, r *http.Request) {
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

	views, err := h.service.ListParticipations(r.Context(), principal)
	if err != nil {
		logger.ErrorContext(r.Context(), "participation list failed", "error", err, "error_kind", application.ErrorKind(err))
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	logger.With("result_count", len(views)).InfoContext(r.Context(), "participations listed")
	h.responder.writeJSON(r.Context(), w, http.StatusOK, listParticipationsResponse{Participations: toParticipationDTOs(views)})
}

func (h *ParticipationHandler) ScheduleMeeting(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	roundID, ok := RoundIDFromContext(r.Context())
	if !ok || strings.TrimSpace(roundID) == "" {
		h.log(r.Context(), "ScheduleMeeting", "error_kind", "bad_request").ErrorContext(r.Context(), "missing round id for meeting")
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errInvalidRoundID)
		return
	}

	principal, _ := PrincipalFromContext(r.Context())

	var req meetingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log(r.Context(), "ScheduleMeeting", "principal_id", principal.AccountID, "round_id", roundID, "error_kind", "bad_request").ErrorContext(r.Context(), "failed to decode meeting request", "error", err)
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errBadRequestBody)
		return
	}

	logger := h.log(r.Context(), "ScheduleMeeting", "principal_id", principal.AccountID, "round_id", roundID)

	meeting, err := h.service.ScheduleMeeting(r.Context(), application.ScheduleMeetingParams{
		Principal: principal,
		RoundID:   roundID,
		Input: application.MeetingInput{
			Date:        strings.TrimSpace(req.Date),
			Time:        strings.TrimSpace(req.Time),
			Duration:    req.Duration,
			PartnerName: strings.TrimSpace(req.PartnerName),
		},
	})
	if err != nil {
		logger.ErrorContext(r.Context(), "meeting scheduling failed", "error", err, "error_kind", application.ErrorKind(err))
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	logger.With("meeting_id", meeting.ID).InfoContext(r.Context(), "meeting scheduled")
	h.responder.writeJSON(r.Context(), w, http.StatusCreated, meetingResponse{Meeting: toMeetingDTO(meeting)})
}

func (h *ParticipationHandler) CancelMeeting(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	roundID, ok := RoundIDFromContext(r.Context())
	if !ok || strings.TrimSpace(roundID) == "" {
		h.log(r.Context(), "CancelMeeting", "error_kind", "bad_request").ErrorContext(r.Context(), "missing round id for cancellation")
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errInvalidRoundID)
		return
	}
	meetingID, ok := MeetingIDFromContext(r.Context())
	if !ok || strings.TrimSpace(meetingID) == "" {
		h.log(r.Context(), "CancelMeeting", "error_kind", "bad_request").ErrorContext(r.Context(), "missing meeting id for cancellation")
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errInvalidMeetingID)
		return
	}

	principal, _ := PrincipalFromContext(r.Context())
	logger := h.log(r.Context(), "CancelMeeting", "principal_id", principal.AccountID, "round_id", roundID, "meeting_id", meetingID)

	if err := h.service.CancelMeeting(r.Context(), application.CancelMeetingParams{
		Principal: principal,
		RoundID:   roundID,
		MeetingID: meetingID,
	}); err != nil {
		logger.ErrorContext(r.Context(), "meeting cancellation failed", "error", err, "error_kind", application.ErrorKind(err))
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	logger.InfoContext(r.Context(), "meeting cancelled")
	h.responder.writeJSON(r.Context(), w, http.StatusNoContent, nil)
}

func (h *ParticipationHandler) SaveRegistration(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	roundID, ok := RoundIDFromContext(r.Context())
	if !ok || strings.TrimSpace(roundID) == "" {
		h.log(r.Context(), "SaveRegistration", "error_kind", "bad_request").ErrorContext(r.Context(), "missing round id for registration")
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errInvalidRoundID)
		return
	}

	principal, _ := PrincipalFromContext(r.Context())

	var req registrationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log(r.Context(), "SaveRegistration", "principal_id", principal.AccountID, "round_id", roundID, "error_kind", "bad_request").ErrorContext(r.Context(), "failed to decode registration request", "error", err)
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errBadRequestBody)
		return
	}

	logger := h.log(r.Context(), "SaveRegistration", "principal_id", principal.AccountID, "round_id", roundID)

	if err := h.service.SaveRegistration(r.Context(), application.SaveRegistrationParams{
		Principal: principal,
		RoundID:   roundID,
		Input: application.RegistrationInput{
			Industry:            strings.TrimSpace(req.Industry),
			Skillsets:           trimAll(req.Skillsets),
			MenteeCapacity:      req.MenteeCapacity,
			Goal:                strings.TrimSpace(req.Goal),
			Preference:          mentorship.NextRoundPreference(strings.TrimSpace(req.Preference)),
			ContinueMenteeNames: trimAll(req.ContinueMenteeNames),
		},
	}); err != nil {
		logger.ErrorContext(r.Context(), "registration save failed", "error", err, "error_kind", application.ErrorKind(err))
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	logger.InfoContext(r.Context(), "registration saved")
	h.responder.writeJSON(r.Context(), w, http.StatusNoContent, nil)
}

func trimAll(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	out := make([]string, 0, len(values))
	for _, v := range values {
		out = append(out, strings.TrimSpace(v))
	}
	return out
}

type meetingRequest struct {
	Date        string `json:"date"`
	Time        string `json:"time"`
	Duration    int    `json:"duration"`
	PartnerName string `json:"partner_name"`
}

type registrationRequest struct {
	Industry            string   `json:"industry"`
	Skillsets           []string `json:"skillsets"`
	MenteeCapacity      int      `json:"mentee_capacity"`
	Goal                string   `json:"goal"`
	Preference          string   `json:"preference"`
	ContinueMenteeNames []string `json:"continue_mentee_names"`
}

type listParticipationsResponse struct {
	Participations []participationDTO `json:"participations"`
}

type meetingResponse struct {
	Meeting meetingDTO `json:"meeting"`
}

type participationDTO struct {
	ProgramName        string           `json:"program_name"`
	RoundID            string           `json:"round_id"`
	RoundName          string           `json:"round_name"`
	RequiredMeetings   int              `json:"required_meetings"`
	RegistrationLocked bool             `json:"registration_locked"`
	Role               string           `json:"role"`
	StartDate          string           `json:"start_date"`
	EndDate            string           `json:"end_date"`
	Status             string           `json:"status"`
	PartnerNames       []string         `json:"partner_names"`
	Meetings           []meetingDTO     `json:"meetings"`
	Registration       *registrationDTO `json:"registration,omitempty"`
}

type meetingDTO struct {
	ID           string `json:"id"`
	Date         string `json:"date"`
	Time         string `json:"time"`
	Duration     int    `json:"duration"`
	PartnerEmail string `json:"partner_email"`
	PartnerName  string `json:"partner_name"`
	Completed    bool   `json:"completed"`
}

type registrationDTO struct {
	Industry            string   `json:"industry"`
	Skillsets           []string `json:"skillsets"`
	MenteeCapacity      int      `json:"mentee_capacity,omitempty"`
	Goal                string   `json:"goal"`
	Preference          string   `json:"preference"`
	ContinueMenteeNames []string `json:"continue_mentee_names,omitempty"`
}

func toParticipationDTOs(views []application.ParticipationView) []participationDTO {
	if len(views) == 0 {
		return nil
	}
	out := make([]participationDTO, 0, len(views))
	for _, view := range views {
		out = append(out, toParticipationDTO(view))
	}
	return out
}

func toParticipationDTO(view application.ParticipationView) participationDTO {
	p := view.Participation
	dto := participationDTO{
		ProgramName:        p.ProgramName,
		RoundID:            p.RoundID,
		RoundName:          view.RoundName,
		RequiredMeetings:   view.RequiredMeetings,
		RegistrationLocked: view.RegistrationLocked,
		Role:               string(p.Role),
		StartDate:          p.StartDate,
		EndDate:            p.EndDate,
		Status:             string(p.Status),
		PartnerNames:       append([]string(nil), p.PartnerNames...),
	}
	for _, meeting := range p.Meetings {
		dto.Meetings = append(dto.Meetings, toMeetingDTO(meeting))
	}
	if p.Registration != nil {
		dto.Registration = &registrationDTO{
			Industry:            p.Registration.Industry,
			Skillsets:           append([]string(nil), p.Registration.Skillsets...),
			MenteeCapacity:      p.Registration.MenteeCapacity,
			Goal:                p.Registration.Goal,
			Preference:          string(p.Registration.Preference),
			ContinueMenteeNames: append([]string(nil), p.Registration.ContinueMenteeNames...),
		}
	}
	return dto
}

func toMeetingDTO(meeting mentorship.Meeting) meetingDTO {
	return meetingDTO{
		ID:           meeting.ID,
		Date:         meeting.Date,
		Time:         meeting.Time,
		Duration:     meeting.Duration,
		PartnerEmail: meeting.PartnerEmail,
		PartnerName:  meeting.PartnerName,
		Completed:    meeting.Completed,
	}
}
