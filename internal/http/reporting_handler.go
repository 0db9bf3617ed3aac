package http

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/circlecat/mentorship-dashboard/internal/application"
	"github.com/circlecat/mentorship-dashboard/internal/mentorship"
)

type reportingService interface {
	Overview(ctx context.Context, principal application.Principal, round string) (application.OverviewReport, error)
	Participants(ctx context.Context, principal application.Principal, round string) ([]mentorship.ParticipantInfo, error)
	UserTable(ctx context.Context, principal application.Principal, query mentorship.TableQuery) ([]mentorship.User, error)
}

type ReportingHandler struct {
	service   reportingService
	responder responder
	logger    *slog.Logger
}

func NewReportingHandler(service reportingService, logger *slog.Logger) *ReportingHandler {
	base := defaultLogger(logger)
	return &ReportingHandler{service: service, responder: newResponder(base), logger: base}
}

func (h *ReportingHandler) log(ctx context.Context, operation string, attrs ...any) *slog.Logger {
	if h == nil {
		return slog.Default()
	}
	return handlerLogger(ctx, h.logger, "ReportingHandler", operation, attrs...)
}

func (h *ReportingHandler) Overview(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	principal, _ := PrincipalFromContext(r.Context())
	round := roundFilter(r)
	logger := h.log(r.Context(), "Overview", "principal_id", principal.AccountID, "round", round)

	report, err := h.service.Overview(r.Context(), principal, round)
	if err != nil {
		logger.ErrorContext(r.Context(), "overview report failed", "error", err, "error_kind", application.ErrorKind(err))
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	logger.InfoContext(r.Context(), "overview report produced")
	h.responder.writeJSON(r.Context(), w, http.StatusOK, toOverviewDTO(report))
}

func (h *ReportingHandler) Participants(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	principal, _ := PrincipalFromContext(r.Context())
	round := roundFilter(r)
	logger := h.log(r.Context(), "Participants", "principal_id", principal.AccountID, "round", round)

	participants, err := h.service.Participants(r.Context(), principal, round)
	if err != nil {
		logger.ErrorContext(r.Context(), "participant report failed", "error", err, "error_kind", application.ErrorKind(err))
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	logger.With("result_count", len(participants)).InfoContext(r.Context(), "participants listed")
	h.responder.writeJSON(r.Context(), w, http.StatusOK, listParticipantsResponse{Participants: toParticipantDTOs(participants)})
}

func (h *ReportingHandler) UserTable(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	principal, _ := PrincipalFromContext(r.Context())
	query := tableQueryFromRequest(r)
	logger := h.log(r.Context(), "UserTable", "principal_id", principal.AccountID, "sort", string(query.SortField), "direction", string(query.SortDirection))

	users, err := h.service.UserTable(r.Context(), principal, query)
	if err != nil {
		logger.ErrorContext(r.Context(), "user table failed", "error", err, "error_kind", application.ErrorKind(err))
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	logger.With("result_count", len(users)).InfoContext(r.Context(), "user table produced")
	h.responder.writeJSON(r.Context(), w, http.StatusOK, listUsersResponse{Users: toUserRowDTOs(users)})
}

// roundFilter reads the round query parameter, defaulting to the all-rounds
// selector when absent.
func roundFilter(r *http.Request) string {
	round := strings.TrimSpace(r.URL.Query().Get("round"))
	if round == "" {
		return mentorship.RoundAll
	}
	return round
}

func tableQueryFromRequest(r *http.Request) mentorship.TableQuery {
	values := r.URL.Query()

	query := mentorship.TableQuery{
		Search:            strings.TrimSpace(values.Get("search")),
		IncludeTerminated: values.Get("include_terminated") == "true",
		SortField:         mentorship.SortField(strings.TrimSpace(values.Get("sort"))),
		SortDirection:     mentorship.SortDirection(strings.TrimSpace(values.Get("direction"))),
	}

	if raw := strings.TrimSpace(values.Get("groups")); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			if part = strings.TrimSpace(part); part != "" {
				query.Groups = append(query.Groups, mentorship.Group(part))
			}
		}
	}

	return query
}

type overviewDTO struct {
	Summary    summaryDTO       `json:"summary"`
	Categories categoryStatsDTO `json:"categories"`
	Activity   activityDTO      `json:"activity"`
}

type summaryDTO struct {
	TotalParticipants int `json:"total_participants"`
	TotalPairs        int `json:"total_pairs"`
	CompletedMeetings int `json:"completed_meetings"`
	TotalMeetingHours int `json:"total_meeting_hours"`
}

type categoryStatsDTO struct {
	InternalMentors int `json:"internal_mentors"`
	ExternalMentors int `json:"external_mentors"`
	InternalMentees int `json:"internal_mentees"`
	ExternalMentees int `json:"external_mentees"`
	TotalInternal   int `json:"total_internal"`
	TotalExternal   int `json:"total_external"`
}

type activityDTO struct {
	JiraTickets      int `json:"jira_tickets"`
	MergedCLs        int `json:"merged_cls"`
	MergedLOC        int `json:"merged_loc"`
	MeetingHours     int `json:"meeting_hours"`
	ChatMessages     int `json:"chat_messages"`
	MentorshipRounds int `json:"mentorship_rounds"`
}

func toOverviewDTO(report application.OverviewReport) overviewDTO {
	return overviewDTO{
		Summary: summaryDTO{
			TotalParticipants: report.Summary.TotalParticipants,
			TotalPairs:        report.Summary.TotalPairs,
			CompletedMeetings: report.Summary.CompletedMeetings,
			TotalMeetingHours: report.Summary.TotalMeetingHours,
		},
		Categories: categoryStatsDTO{
			InternalMentors: report.Categories.InternalMentors,
			ExternalMentors: report.Categories.ExternalMentors,
			InternalMentees: report.Categories.InternalMentees,
			ExternalMentees: report.Categories.ExternalMentees,
			TotalInternal:   report.Categories.TotalInternal,
			TotalExternal:   report.Categories.TotalExternal,
		},
		Activity: activityDTO{
			JiraTickets:      report.Activity.JiraTickets,
			MergedCLs:        report.Activity.MergedCLs,
			MergedLOC:        report.Activity.MergedLOC,
			MeetingHours:     report.Activity.MeetingHours,
			ChatMessages:     report.Activity.ChatMessages,
			MentorshipRounds: report.Activity.MentorshipRounds,
		},
	}
}

type listParticipantsResponse struct {
	Participants []participantDTO `json:"participants"`
}

type participantDTO struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	LDAP        string `json:"ldap"`
	Internal    bool   `json:"internal"`
	Mentor      bool   `json:"mentor"`
	Mentee      bool   `json:"mentee"`
	MentorCount int    `json:"mentor_count"`
	MenteeCount int    `json:"mentee_count"`
}

func toParticipantDTOs(participants []mentorship.ParticipantInfo) []participantDTO {
	if len(participants) == 0 {
		return nil
	}
	out := make([]participantDTO, 0, len(participants))
	for _, p := range participants {
		out = append(out, participantDTO{
			ID:          p.ID,
			Name:        p.Name,
			LDAP:        p.LDAP,
			Internal:    p.Internal,
			Mentor:      p.Mentor,
			Mentee:      p.Mentee,
			MentorCount: p.MentorCount,
			MenteeCount: p.MenteeCount,
		})
	}
	return out
}

type listUsersResponse struct {
	Users []userRowDTO `json:"users"`
}

type userRowDTO struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	LDAP         string `json:"ldap"`
	Role         string `json:"role"`
	Terminated   bool   `json:"terminated"`
	JiraTickets  int    `json:"jira_tickets"`
	MergedCLs    int    `json:"merged_cls"`
	MergedLOC    int    `json:"merged_loc"`
	MeetingHours int    `json:"meeting_hours"`
	ChatMessages int    `json:"chat_messages"`
	Rounds       int    `json:"rounds"`
}

func toUserRowDTOs(users []mentorship.User) []userRowDTO {
	if len(users) == 0 {
		return nil
	}
	out := make([]userRowDTO, 0, len(users))
	for _, user := range users {
		out = append(out, userRowDTO{
			ID:           user.ID,
			Name:         user.Name,
			LDAP:         user.LDAP,
			Role:         string(user.Role),
			Terminated:   user.Terminated,
			JiraTickets:  user.Metrics.JiraTickets,
			MergedCLs:    user.Metrics.MergedCLs,
			MergedLOC:    user.Metrics.MergedLOC,
			MeetingHours: user.Metrics.MeetingHours,
			ChatMessages: user.Metrics.ChatMessages,
			Rounds:       len(user.Participations),
		})
	}
	return out
}
