// Package mentorship defines the domain model of the mentorship program
// demo and the pure functions that derive aggregate statistics from it.
package mentorship

import "strings"

// Role identifies the organizational role of a user.
type Role string

const (
	RoleEmployee       Role = "circlecat_employee"
	RoleIntern         Role = "circlecat_intern"
	RoleVolunteer      Role = "circlecat_volunteer"
	RoleGoogler        Role = "googler"
	RoleExternalMentee Role = "external_mentee"
	RoleAdmin          Role = "admin"
)

// internalPrefix marks roles belonging to the organization's own namespace.
const internalPrefix = "circlecat_"

// IsInternal reports whether the role belongs to the organization's own namespace.
func (r Role) IsInternal() bool {
	return strings.HasPrefix(string(r), internalPrefix)
}

// CanBeMentor reports whether the role is eligible to serve as a mentor.
func (r Role) CanBeMentor() bool {
	return r == RoleVolunteer || r == RoleGoogler
}

// MustBeMentee reports whether the role is always assigned the mentee side.
func (r Role) MustBeMentee() bool {
	return r == RoleEmployee || r == RoleIntern || r == RoleExternalMentee
}

// Valid reports whether the role is a member of the known enumeration.
func (r Role) Valid() bool {
	switch r {
	case RoleEmployee, RoleIntern, RoleVolunteer, RoleGoogler, RoleExternalMentee, RoleAdmin:
		return true
	}
	return false
}

// ParticipationStatus tracks the lifecycle of a round enrollment.
type ParticipationStatus string

const (
	StatusActive    ParticipationStatus = "active"
	StatusCompleted ParticipationStatus = "completed"
	StatusPending   ParticipationStatus = "pending"
)

// MentorshipRole identifies which side of a pairing a participation holds.
type MentorshipRole string

const (
	Mentor MentorshipRole = "mentor"
	Mentee MentorshipRole = "mentee"
)

// RoundStatus tracks whether a program round is running or finished.
type RoundStatus string

const (
	RoundActive    RoundStatus = "active"
	RoundCompleted RoundStatus = "completed"
)

// NextRoundPreference captures a participant's matching wish for the next round.
type NextRoundPreference string

const (
	PreferContinue  NextRoundPreference = "continue"
	PreferDifferent NextRoundPreference = "different"
	PreferNone      NextRoundPreference = "no-preference"
)

// ActivityMetrics is a snapshot of a user's work activity counters.
type ActivityMetrics struct {
	JiraTickets  int
	MergedCLs    int
	MergedLOC    int
	MeetingHours int
	ChatMessages int
}

// Meeting is one scheduled session inside a participation. Dates are ISO
// YYYY-MM-DD strings and times HH:MM 24-hour strings; Duration is minutes.
type Meeting struct {
	ID           string
	Date         string
	Time         string
	Duration     int
	PartnerEmail string
	PartnerName  string
	Completed    bool
}

// Industries is the fixed industry choice list offered at registration.
var Industries = []string{
	"SWE",
	"UI / UX",
	"Data Science",
	"Product Management",
}

// Skillsets is the fixed skillset choice list offered at registration.
// Registrations select between one and three entries.
var Skillsets = []string{
	"Resume/LinkedIn Profile",
	"Career Path Guidance",
	"Experience Sharing",
	"Industry Trends",
	"Technical Skills Development",
	"Soft Skills Enhancement",
	"Networking",
	"Project Management",
	"Leadership",
	"Communication Skills",
}

// MaxMenteeCapacity caps how many mentees a mentor can take in one round.
const MaxMenteeCapacity = 3

// ValidIndustry reports whether value is one of the offered industries.
func ValidIndustry(value string) bool {
	for _, industry := range Industries {
		if value == industry {
			return true
		}
	}
	return false
}

// ValidSkillset reports whether value is one of the offered skillsets.
func ValidSkillset(value string) bool {
	for _, skillset := range Skillsets {
		if value == skillset {
			return true
		}
	}
	return false
}

// ValidMenteeCapacity reports whether a mentor capacity is selectable.
func ValidMenteeCapacity(capacity int) bool {
	return capacity >= 1 && capacity <= MaxMenteeCapacity
}

// Registration is the optional sign-up payload attached to a participation.
// MenteeCapacity is set for mentors only; zero means unset.
type Registration struct {
	Industry            string
	Skillsets           []string
	MenteeCapacity      int
	Goal                string
	Preference          NextRoundPreference
	ContinueMenteeNames []string
}

// Participation is one user's enrollment in a single round. Mentors carry
// 1-3 partner names; mentees carry exactly one.
type Participation struct {
	ProgramName  string
	RoundID      string
	Role         MentorshipRole
	StartDate    string
	EndDate      string
	Status       ParticipationStatus
	PartnerNames []string
	Meetings     []Meeting
	Registration *Registration
}

// User is the root record of the demo dataset.
type User struct {
	ID             string
	Name           string
	LDAP           string
	Role           Role
	Terminated     bool
	Metrics        ActivityMetrics
	Participations []Participation
	Profile        Profile
}

// RoundPhases holds the five ordered phase deadlines of a round as ISO dates.
type RoundPhases struct {
	Registration string
	Matching     string
	InProgress   string
	Summary      string
	Completed    string
}

// Round is a global catalog entry describing one program cycle.
type Round struct {
	ID               string
	Name             string
	StartDate        string
	EndDate          string
	Status           RoundStatus
	RequiredMeetings int
	Phases           RoundPhases
}

// RoundAll selects every round when passed as a round filter.
const RoundAll = "all"

// DeriveEmail synthesizes a contact address from a display name: spaces are
// stripped, the remainder lowercased, and the company domain appended.
func DeriveEmail(name string) string {
	return strings.ToLower(strings.ReplaceAll(name, " ", "")) + "@company.com"
}

// Clone returns a deep copy of the user, detached from the receiver.
func (u User) Clone() User {
	out := u
	out.Participations = cloneParticipations(u.Participations)
	out.Profile = u.Profile.Clone()
	return out
}

func cloneParticipations(src []Participation) []Participation {
	if src == nil {
		return nil
	}
	out := make([]Participation, len(src))
	for i, p := range src {
		out[i] = p.Clone()
	}
	return out
}

// Clone returns a deep copy of the participation.
func (p Participation) Clone() Participation {
	out := p
	out.PartnerNames = append([]string(nil), p.PartnerNames...)
	if p.Meetings != nil {
		out.Meetings = make([]Meeting, len(p.Meetings))
		copy(out.Meetings, p.Meetings)
	}
	if p.Registration != nil {
		reg := *p.Registration
		reg.Skillsets = append([]string(nil), p.Registration.Skillsets...)
		reg.ContinueMenteeNames = append([]string(nil), p.Registration.ContinueMenteeNames...)
		out.Registration = &reg
	}
	return out
}
