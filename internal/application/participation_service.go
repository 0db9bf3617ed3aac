package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/circlecat/mentorship-dashboard/internal/mentorship"
	"github.com/circlecat/mentorship-dashboard/internal/persistence"
)

// UserStore captures the dataset operations needed by the participation and
// profile services.
type UserStore interface {
	GetUser(ctx context.Context, id string) (mentorship.User, error)
	PutUser(ctx context.Context, user mentorship.User) error
}

// meetingDurations is the selectable duration set, in minutes.
var meetingDurations = map[int]bool{15: true, 30: true, 45: true, 60: true, 90: true, 120: true}

// ParticipationService operates on the caller's own mentorship
// participations: meeting scheduling and round registration.
type ParticipationService struct {
	users       UserStore
	rounds      RoundRepository
	idGenerator func() string
	now         func() time.Time
	logger      *slog.Logger
}

// NewParticipationService constructs the service with the provided dependencies.
func NewParticipationService(users UserStore, rounds RoundRepository, idGenerator func() string, now func() time.Time, logger *slog.Logger) *ParticipationService {
	if idGenerator == nil {
		idGenerator = func() string { return "" }
	}
	if now == nil {
		now = time.Now
	}
	return &ParticipationService{
		users:       users,
		rounds:      rounds,
		idGenerator: idGenerator,
		now:         now,
		logger:      defaultLogger(logger),
	}
}

func (s *ParticipationService) loggerWith(ctx context.Context, operation string, attrs ...any) *slog.Logger {
	return serviceLogger(ctx, s.logger, "ParticipationService", operation, attrs...)
}

func (s *ParticipationService) currentUser(ctx context.Context, principal Principal) (mentorship.User, error) {
	if principal.UserID == "" {
		return mentorship.User{}, ErrUnauthorized
	}
	user, err := s.users.GetUser(ctx, principal.UserID)
	if err != nil {
		if errors.Is(err, persistence.ErrNotFound) {
			return mentorship.User{}, ErrNotFound
		}
		return mentorship.User{}, err
	}
	return user, nil
}

// ListParticipations returns the caller's participations joined with round
// catalog state. The registration lock is advisory: edits after the
// registration deadline are still accepted but clients render them as
// read-updates to an already-matched round.
func (s *ParticipationService) ListParticipations(ctx context.Context, principal Principal) ([]ParticipationView, error) {
	if s == nil || s.users == nil {
		return nil, fmt.Errorf("user store not configured")
	}

	logger := s.loggerWith(ctx, "ListParticipations", "principal_id", principal.AccountID)

	user, err := s.currentUser(ctx, principal)
	if err != nil {
		logger.ErrorContext(ctx, "failed to load participations", "error", err, "error_kind", ErrorKind(err))
		return nil, err
	}

	byID := make(map[string]mentorship.Round)
	if s.rounds != nil {
		rounds, err := s.rounds.ListRounds(ctx)
		if err != nil {
			logger.ErrorContext(ctx, "failed to load round catalog", "error", err, "error_kind", ErrorKind(err))
			return nil, err
		}
		for _, r := range rounds {
			byID[r.ID] = r
		}
	}

	today := s.now().Format("2006-01-02")
	views := make([]ParticipationView, 0, len(user.Participations))
	for _, p := range user.Participations {
		view := ParticipationView{Participation: p}
		if round, ok := byID[p.RoundID]; ok {
			view.RoundName = round.Name
			view.RequiredMeetings = round.RequiredMeetings
			view.RegistrationLocked = today > round.Phases.Registration
		}
		views = append(views, view)
	}
	return views, nil
}

// ScheduleMeeting appends a meeting to the caller's active participation in
// the given round.
func (s *ParticipationService) ScheduleMeeting(ctx context.Context, params ScheduleMeetingParams) (meeting mentorship.Meeting, err error) {
	if s == nil || s.users == nil {
		err = fmt.Errorf("user store not configured")
		return
	}

	logger := s.loggerWith(ctx, "ScheduleMeeting",
		"principal_id", params.Principal.AccountID,
		"round_id", params.RoundID,
	)
	defer func() {
		if err != nil {
			logger.ErrorContext(ctx, "failed to schedule meeting", "error", err, "error_kind", ErrorKind(err))
			return
		}
		logger.With("meeting_id", meeting.ID).InfoContext(ctx, "meeting scheduled")
	}()

	var user mentorship.User
	user, err = s.currentUser(ctx, params.Principal)
	if err != nil {
		return
	}

	idx := findParticipation(user, params.RoundID)
	if idx < 0 {
		err = ErrNotFound
		return
	}
	participation := &user.Participations[idx]

	vErr := validateMeetingInput(params.Input, participation.PartnerNames)
	if vErr.HasErrors() {
		err = vErr
		return
	}
	if participation.Status != mentorship.StatusActive {
		vErr.add("roundId", "meetings can only be scheduled in an active round")
		err = vErr
		return
	}

	meeting = mentorship.Meeting{
		ID:           s.idGenerator(),
		Date:         params.Input.Date,
		Time:         params.Input.Time,
		Duration:     params.Input.Duration,
		PartnerName:  params.Input.PartnerName,
		PartnerEmail: mentorship.DeriveEmail(params.Input.PartnerName),
	}
	participation.Meetings = append(participation.Meetings, meeting)

	if err = s.users.PutUser(ctx, user); err != nil {
		meeting = mentorship.Meeting{}
		return
	}
	return
}

// CancelMeeting removes a meeting from the caller's participation in the
// given round.
func (s *ParticipationService) CancelMeeting(ctx context.Context, params CancelMeetingParams) error {
	if s == nil || s.users == nil {
		return fmt.Errorf("user store not configured")
	}

	logger := s.loggerWith(ctx, "CancelMeeting",
		"principal_id", params.Principal.AccountID,
		"round_id", params.RoundID,
		"meeting_id", params.MeetingID,
	)

	user, err := s.currentUser(ctx, params.Principal)
	if err != nil {
		logger.ErrorContext(ctx, "failed to cancel meeting", "error", err, "error_kind", ErrorKind(err))
		return err
	}

	idx := findParticipation(user, params.RoundID)
	if idx < 0 {
		logger.ErrorContext(ctx, "failed to cancel meeting", "error", ErrNotFound, "error_kind", ErrorKind(ErrNotFound))
		return ErrNotFound
	}
	participation := &user.Participations[idx]

	kept := participation.Meetings[:0]
	found := false
	for _, m := range participation.Meetings {
		if m.ID == params.MeetingID {
			found = true
			continue
		}
		kept = append(kept, m)
	}
	if !found {
		logger.ErrorContext(ctx, "failed to cancel meeting", "error", ErrNotFound, "error_kind", ErrorKind(ErrNotFound))
		return ErrNotFound
	}
	participation.Meetings = kept

	if err := s.users.PutUser(ctx, user); err != nil {
		logger.ErrorContext(ctx, "failed to cancel meeting", "error", err, "error_kind", ErrorKind(err))
		return err
	}
	logger.InfoContext(ctx, "meeting cancelled")
	return nil
}

// SaveRegistration validates and stores the registration on the caller's
// participation in the given round. Saving past the registration deadline is
// permitted; the lock is surfaced to clients through ListParticipations.
func (s *ParticipationService) SaveRegistration(ctx context.Context, params SaveRegistrationParams) error {
	if s == nil || s.users == nil {
		return fmt.Errorf("user store not configured")
	}

	logger := s.loggerWith(ctx, "SaveRegistration",
		"principal_id", params.Principal.AccountID,
		"round_id", params.RoundID,
	)

	user, err := s.currentUser(ctx, params.Principal)
	if err != nil {
		logger.ErrorContext(ctx, "failed to save registration", "error", err, "error_kind", ErrorKind(err))
		return err
	}

	idx := findParticipation(user, params.RoundID)
	if idx < 0 {
		logger.ErrorContext(ctx, "failed to save registration", "error", ErrNotFound, "error_kind", ErrorKind(ErrNotFound))
		return ErrNotFound
	}
	participation := &user.Participations[idx]

	vErr := validateRegistrationInput(params.Input, participation.Role, participation.PartnerNames)
	if vErr.HasErrors() {
		logger.ErrorContext(ctx, "failed to save registration", "error", vErr, "error_kind", ErrorKind(vErr))
		return vErr
	}

	reg := &mentorship.Registration{
		Industry:   params.Input.Industry,
		Skillsets:  append([]string(nil), params.Input.Skillsets...),
		Goal:       params.Input.Goal,
		Preference: params.Input.Preference,
	}
	if participation.Role == mentorship.Mentor {
		reg.MenteeCapacity = params.Input.MenteeCapacity
		reg.ContinueMenteeNames = append([]string(nil), params.Input.ContinueMenteeNames...)
	}
	participation.Registration = reg

	if err := s.users.PutUser(ctx, user); err != nil {
		logger.ErrorContext(ctx, "failed to save registration", "error", err, "error_kind", ErrorKind(err))
		return err
	}
	logger.InfoContext(ctx, "registration saved")
	return nil
}

func findParticipation(user mentorship.User, roundID string) int {
	for i, p := range user.Participations {
		if p.RoundID == roundID {
			return i
		}
	}
	return -1
}

func validateMeetingInput(input MeetingInput, partners []string) *ValidationError {
	vErr := &ValidationError{}

	if _, ok := parseISODate(input.Date); !ok {
		vErr.add("date", "please fill in all required fields")
	}
	if !validClockTime(input.Time) {
		vErr.add("time", "please fill in all required fields")
	}
	if !meetingDurations[input.Duration] {
		vErr.add("duration", "unsupported meeting duration")
	}

	if strings.TrimSpace(input.PartnerName) == "" {
		vErr.add("partnerName", "please fill in all required fields")
	} else if !containsName(partners, input.PartnerName) {
		vErr.add("partnerName", "selected contact not found")
	}

	return vErr
}

func validateRegistrationInput(input RegistrationInput, role mentorship.MentorshipRole, partners []string) *ValidationError {
	vErr := &ValidationError{}

	if strings.TrimSpace(input.Industry) == "" {
		if role == mentorship.Mentee {
			vErr.add("industry", "please select your industry of interest")
		} else {
			vErr.add("industry", "please select your current industry")
		}
	} else if !mentorship.ValidIndustry(input.Industry) {
		vErr.add("industry", "selected industry is not offered")
	}

	if len(input.Skillsets) == 0 {
		vErr.add("skillsets", "please select at least 1 skillset")
	} else if len(input.Skillsets) > 3 {
		vErr.add("skillsets", "maximum of 3 skillsets allowed")
	} else {
		for _, skillset := range input.Skillsets {
			if !mentorship.ValidSkillset(skillset) {
				vErr.add("skillsets", "selected skillset is not offered")
				break
			}
		}
	}

	if role == mentorship.Mentor {
		if input.MenteeCapacity <= 0 {
			vErr.add("menteeCapacity", "please select the number of mentees you can guide")
		} else if !mentorship.ValidMenteeCapacity(input.MenteeCapacity) {
			vErr.add("menteeCapacity", "mentee capacity must be between 1 and 3")
		}
	}

	if len(input.Goal) > 200 {
		vErr.add("goal", "goal description cannot exceed 200 characters")
	}

	switch input.Preference {
	case mentorship.PreferContinue, mentorship.PreferDifferent, mentorship.PreferNone, "":
	default:
		vErr.add("preference", "unknown next-round preference")
	}

	if role == mentorship.Mentor && input.Preference == mentorship.PreferContinue && len(partners) > 0 {
		if len(input.ContinueMenteeNames) == 0 {
			vErr.add("continueMenteeNames", "please select at least one mentee to continue with, or choose a different preference")
		}
		for _, name := range input.ContinueMenteeNames {
			if !containsName(partners, name) {
				vErr.add("continueMenteeNames", "selected mentee is not a current partner")
				break
			}
		}
	}

	return vErr
}

func validClockTime(value string) bool {
	_, err := time.Parse("15:04", value)
	return err == nil
}

func containsName(names []string, needle string) bool {
	for _, name := range names {
		if name == needle {
			return true
		}
	}
	return false
}
