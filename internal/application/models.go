package application

import (
	"github.com/circlecat/mentorship-dashboard/internal/mentorship"
	"github.com/circlecat/mentorship-dashboard/internal/persistence"
)

// Principal represents the authenticated account invoking a service method.
// UserID points at the dataset record the account acts as; admin accounts
// may carry no user record.
type Principal struct {
	AccountID string
	UserID    string
	IsAdmin   bool
}

// AuthenticateParams carries login input.
type AuthenticateParams struct {
	Email       string
	Password    string
	Fingerprint string
}

// AuthenticateResult is the outcome of a successful login.
type AuthenticateResult struct {
	Account persistence.Account
	Session persistence.Session
}

// RoundInput captures caller provided round fields. The ID is optional on
// creation; a fresh one is generated when absent.
type RoundInput struct {
	ID               string
	Name             string
	StartDate        string
	EndDate          string
	Status           mentorship.RoundStatus
	RequiredMeetings int
	Phases           mentorship.RoundPhases
}

// CreateRoundParams wraps the data required to create a round.
type CreateRoundParams struct {
	Principal Principal
	Input     RoundInput
}

// UpdateRoundParams wraps the data required to update an existing round.
type UpdateRoundParams struct {
	Principal Principal
	RoundID   string
	Input     RoundInput
}

// MeetingInput captures caller provided meeting fields.
type MeetingInput struct {
	Date        string
	Time        string
	Duration    int
	PartnerName string
}

// ScheduleMeetingParams wraps the data required to schedule a meeting in the
// caller's participation for one round.
type ScheduleMeetingParams struct {
	Principal Principal
	RoundID   string
	Input     MeetingInput
}

// CancelMeetingParams wraps the data required to cancel a meeting.
type CancelMeetingParams struct {
	Principal Principal
	RoundID   string
	MeetingID string
}

// RegistrationInput captures caller provided registration fields.
type RegistrationInput struct {
	Industry            string
	Skillsets           []string
	MenteeCapacity      int
	Goal                string
	Preference          mentorship.NextRoundPreference
	ContinueMenteeNames []string
}

// SaveRegistrationParams wraps the data required to save a registration on
// the caller's participation for one round.
type SaveRegistrationParams struct {
	Principal Principal
	RoundID   string
	Input     RegistrationInput
}

// ParticipationView is a participation joined with the catalog state that
// the dashboard needs alongside it.
type ParticipationView struct {
	Participation      mentorship.Participation
	RoundName          string
	RequiredMeetings   int
	RegistrationLocked bool
}

// OverviewReport bundles the admin dashboard aggregates for one round filter.
type OverviewReport struct {
	Summary    mentorship.Summary
	Categories mentorship.CategoryStats
	Activity   mentorship.ActivitySummary
}

// ExperienceInput captures one caller provided work-history entry.
type ExperienceInput struct {
	ID      string
	Title   string
	Company string
	Start   mentorship.MonthYear
	End     mentorship.MonthYear
	Current bool
}

// EducationInput captures one caller provided education entry.
type EducationInput struct {
	ID          string
	Institution string
	Degree      string
	Field       string
	Start       mentorship.MonthYear
	End         mentorship.MonthYear
}

// TrainingInput captures one caller provided training entry.
type TrainingInput struct {
	ID        string
	Name      string
	Status    mentorship.TrainingStatus
	Completed mentorship.MonthYear
	Due       mentorship.MonthYear
	Link      string
}

// BasicsInput captures the header fields of a profile.
type BasicsInput struct {
	Title   string
	Company string
	Emails  []mentorship.ProfileEmail
}
