package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/circlecat/mentorship-dashboard/internal/application"
	"github.com/circlecat/mentorship-dashboard/internal/mentorship"
)

type profileService interface {
	GetProfile(ctx context.Context, principal application.Principal) (mentorship.Profile, error)
	UpdateBasics(ctx context.Context, principal application.Principal, input application.BasicsInput) error
	ReplaceExperience(ctx context.Context, principal application.Principal, inputs []application.ExperienceInput) error
	ReplaceEducation(ctx context.Context, principal application.Principal, inputs []application.EducationInput) error
	ReplaceTraining(ctx context.Context, principal application.Principal, inputs []application.TrainingInput) error
}

type ProfileHandler struct {
	service   profileService
	responder responder
	logger    *slog.Logger
}

func NewProfileHandler(service profileService, logger *slog.Logger) *ProfileHandler {
	base := defaultLogger(logger)
	return &ProfileHandler{service: service, responder: newResponder(base), logger: base}
}

func (h *ProfileHandler) log(ctx context.Context, operation string, attrs ...any) *slog.Logger {
	if h == nil {
		return slog.Default()
	}
	return handlerLogger(ctx, h.logger, "ProfileHandler", operation, attrs...)
}

func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	principal, _ := PrincipalFromContext(r.Context())
	logger := h.log(r.Context(), "Get", "principal_id", principal.AccountID)

	profile, err := h.service.GetProfile(r.Context(), principal)
	if err != nil {
		logger.ErrorContext(r.Context(), "profile fetch failed", "error", err, "error_kind", application.ErrorKind(err))
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	h.responder.writeJSON(r.Context(), w, http.StatusOK, profileResponse{Profile: toProfileDTO(profile)})
}

func (h *ProfileHandler) UpdateBasics(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	principal, _ := PrincipalFromContext(r.Context())

	var req basicsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log(r.Context(), "UpdateBasics", "principal_id", principal.AccountID, "error_kind", "bad_request").ErrorContext(r.Context(), "failed to decode basics request", "error", err)
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errBadRequestBody)
		return
	}

	logger := h.log(r.Context(), "UpdateBasics", "principal_id", principal.AccountID)

	input := application.BasicsInput{
		Title:   strings.TrimSpace(req.Title),
		Company: strings.TrimSpace(req.Company),
	}
	for _, email := range req.Emails {
		input.Emails = append(input.Emails, mentorship.ProfileEmail{
			Email:   strings.TrimSpace(email.Email),
			Primary: email.Primary,
		})
	}

	if err := h.service.UpdateBasics(r.Context(), principal, input); err != nil {
		logger.ErrorContext(r.Context(), "basics update failed", "error", err, "error_kind", application.ErrorKind(err))
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	logger.InfoContext(r.Context(), "profile basics updated")
	h.responder.writeJSON(r.Context(), w, http.StatusNoContent, nil)
}

func (h *ProfileHandler) ReplaceExperience(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	principal, _ := PrincipalFromContext(r.Context())

	var req experienceListRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log(r.Context(), "ReplaceExperience", "principal_id", principal.AccountID, "error_kind", "bad_request").ErrorContext(r.Context(), "failed to decode experience request", "error", err)
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errBadRequestBody)
		return
	}

	logger := h.log(r.Context(), "ReplaceExperience", "principal_id", principal.AccountID)

	inputs := make([]application.ExperienceInput, 0, len(req.Experience))
	for _, entry := range req.Experience {
		inputs = append(inputs, application.ExperienceInput{
			ID:      strings.TrimSpace(entry.ID),
			Title:   entry.Title,
			Company: entry.Company,
			Start:   entry.Start.toMonthYear(),
			End:     entry.End.toMonthYear(),
			Current: entry.Current,
		})
	}

	if err := h.service.ReplaceExperience(r.Context(), principal, inputs); err != nil {
		logger.ErrorContext(r.Context(), "experience update failed", "error", err, "error_kind", application.ErrorKind(err))
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	logger.With("entry_count", len(inputs)).InfoContext(r.Context(), "experience replaced")
	h.responder.writeJSON(r.Context(), w, http.StatusNoContent, nil)
}

func (h *ProfileHandler) ReplaceEducation(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	principal, _ := PrincipalFromContext(r.Context())

	var req educationListRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log(r.Context(), "ReplaceEducation", "principal_id", principal.AccountID, "error_kind", "bad_request").ErrorContext(r.Context(), "failed to decode education request", "error", err)
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errBadRequestBody)
		return
	}

	logger := h.log(r.Context(), "ReplaceEducation", "principal_id", principal.AccountID)

	inputs := make([]application.EducationInput, 0, len(req.Education))
	for _, entry := range req.Education {
		inputs = append(inputs, application.EducationInput{
			ID:          strings.TrimSpace(entry.ID),
			Institution: entry.Institution,
			Degree:      entry.Degree,
			Field:       entry.Field,
			Start:       entry.Start.toMonthYear(),
			End:         entry.End.toMonthYear(),
		})
	}

	if err := h.service.ReplaceEducation(r.Context(), principal, inputs); err != nil {
		logger.ErrorContext(r.Context(), "education update failed", "error", err, "error_kind", application.ErrorKind(err))
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	logger.With("entry_count", len(inputs)).InfoContext(r.Context(), "education replaced")
	h.responder.writeJSON(r.Context(), w, http.StatusNoContent, nil)
}

func (h *ProfileHandler) ReplaceTraining(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	principal, _ := PrincipalFromContext(r.Context())

	var req trainingListRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log(r.Context(), "ReplaceTraining", "principal_id", principal.AccountID, "error_kind", "bad_request").ErrorContext(r.Context(), "failed to decode training request", "error", err)
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errBadRequestBody)
		return
	}

	logger := h.log(r.Context(), "ReplaceTraining", "principal_id", principal.AccountID)

	inputs := make([]application.TrainingInput, 0, len(req.Training))
	for _, entry := range req.Training {
		inputs = append(inputs, application.TrainingInput{
			ID:        strings.TrimSpace(entry.ID),
			Name:      entry.Name,
			Status:    mentorship.TrainingStatus(strings.TrimSpace(entry.Status)),
			Completed: entry.Completed.toMonthYear(),
			Due:       entry.Due.toMonthYear(),
			Link:      entry.Link,
		})
	}

	if err := h.service.ReplaceTraining(r.Context(), principal, inputs); err != nil {
		logger.ErrorContext(r.Context(), "training update failed", "error", err, "error_kind", application.ErrorKind(err))
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	logger.With("entry_count", len(inputs)).InfoContext(r.Context(), "training replaced")
	h.responder.writeJSON(r.Context(), w, http.StatusNoContent, nil)
}

type basicsRequest struct {
	Title   string            `json:"title"`
	Company string            `json:"company"`
	Emails  []profileEmailDTO `json:"emails"`
}

type experienceListRequest struct {
	Experience []experienceDTO `json:"experience"`
}

type educationListRequest struct {
	Education []educationDTO `json:"education"`
}

type trainingListRequest struct {
	Training []trainingDTO `json:"training"`
}

type profileResponse struct {
	Profile profileDTO `json:"profile"`
}

type profileDTO struct {
	Title      string            `json:"title"`
	Company    string            `json:"company"`
	Emails     []profileEmailDTO `json:"emails"`
	Experience []experienceDTO   `json:"experience"`
	Education  []educationDTO    `json:"education"`
	Training   []trainingDTO     `json:"training"`
}

type profileEmailDTO struct {
	Email   string `json:"email"`
	Primary bool   `json:"primary"`
}

type monthYearDTO struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

func (m monthYearDTO) toMonthYear() mentorship.MonthYear {
	return mentorship.MonthYear{Month: time.Month(m.Month), Year: m.Year}
}

func toMonthYearDTO(value mentorship.MonthYear) monthYearDTO {
	return monthYearDTO{Month: int(value.Month), Year: value.Year}
}

type experienceDTO struct {
	ID      string       `json:"id"`
	Title   string       `json:"title"`
	Company string       `json:"company"`
	Start   monthYearDTO `json:"start"`
	End     monthYearDTO `json:"end"`
	Current bool         `json:"current"`
}

type educationDTO struct {
	ID          string       `json:"id"`
	Institution string       `json:"institution"`
	Degree      string       `json:"degree"`
	Field       string       `json:"field"`
	Start       monthYearDTO `json:"start"`
	End         monthYearDTO `json:"end"`
}

type trainingDTO struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	Status    string       `json:"status"`
	Completed monthYearDTO `json:"completed"`
	Due       monthYearDTO `json:"due"`
	Link      string       `json:"link,omitempty"`
}

func toProfileDTO(profile mentorship.Profile) profileDTO {
	dto := profileDTO{
		Title:   profile.Title,
		Company: profile.Company,
	}
	for _, email := range profile.Emails {
		dto.Emails = append(dto.Emails, profileEmailDTO{Email: email.Email, Primary: email.Primary})
	}
	for _, entry := range profile.Experience {
		dto.Experience = append(dto.Experience, experienceDTO{
			ID:      entry.ID,
			Title:   entry.Title,
			Company: entry.Company,
			Start:   toMonthYearDTO(entry.Start),
			End:     toMonthYearDTO(entry.End),
			Current: entry.Current,
		})
	}
	for _, entry := range profile.Education {
		dto.Education = append(dto.Education, educationDTO{
			ID:          entry.ID,
			Institution: entry.Institution,
			Degree:      entry.Degree,
			Field:       entry.Field,
			Start:       toMonthYearDTO(entry.Start),
			End:         toMonthYearDTO(entry.End),
		})
	}
	for _, entry := range profile.Training {
		dto.Training = append(dto.Training, trainingDTO{
			ID:        entry.ID,
			Name:      entry.Name,
			Status:    string(entry.Status),
			Completed: toMonthYearDTO(entry.Completed),
			Due:       toMonthYearDTO(entry.Due),
			Link:      entry.Link,
		})
	}
	return dto
}
