// Package mockdata produces the randomized demo dataset the dashboard is
// seeded with: users of every role, their mentorship participations across
// the round catalog, and weekly meeting schedules.
package mockdata

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/circlecat/mentorship-dashboard/internal/mentorship"
)

// Dataset population per role.
const (
	numEmployees       = 15
	numInterns         = 10
	numVolunteers      = 8
	numGooglers        = 5
	numExternalMentees = 7
)

// Activity metric ranges, [base, base+spread).
const (
	jiraBase, jiraSpread     = 5, 50
	clsBase, clsSpread       = 3, 30
	locBase, locSpread       = 500, 5000
	hoursBase, hoursSpread   = 10, 40
	chatBase, chatSpread     = 50, 200
	minMeetings, maxMeetings = 4, 12
)

// Fixed identity of the demo's signed-in user, always the first dataset
// record.
const (
	CurrentUserID   = "current-user"
	CurrentUserName = "Current User"
	CurrentUserLDAP = "current_user"
)

// Registration prefill used for the active round.
const (
	mentorGoal = "Through this round of mentorship, I hope to help mentees improve " +
		"their technical skills and career planning awareness, while also learning " +
		"new perspectives from them."
	menteeGoal = "In this round, I hope to improve my technical interview skills, " +
		"learn about the latest industry trends, and receive guidance on career " +
		"development directions."
)

var defaultSkillsets = []string{
	"Career Path Guidance",
	"Technical Skills Development",
	"Networking",
}

// Generator builds randomized demo users. The random source and identifier
// factory are injected so tests can pin both.
type Generator struct {
	rand  *rand.Rand
	newID func() string
}

// New constructs a generator over the given source. A nil newID falls back
// to random UUIDs.
func New(src rand.Source, newID func() string) *Generator {
	if newID == nil {
		newID = uuid.NewString
	}
	return &Generator{rand: rand.New(src), newID: newID}
}

// NewSeeded constructs a deterministic generator for the given seed.
func NewSeeded(seed uint64) *Generator {
	return New(rand.NewPCG(seed, seed), nil)
}

// chance reports true with the given probability.
func (g *Generator) chance(p float64) bool {
	return g.rand.Float64() < p
}

func (g *Generator) pick(pool []string) string {
	return pool[g.rand.IntN(len(pool))]
}

// meetings synthesizes a weekly meeting series starting at startDate with
// the given partner. Completed rounds have every meeting completed; active
// rounds complete roughly 70 percent.
func (g *Generator) meetings(startDate, partnerName string, roundCompleted bool) []mentorship.Meeting {
	start, err := time.Parse("2006-01-02", startDate)
	if err != nil {
		start = time.Now().UTC()
	}

	total := g.rand.IntN(maxMeetings-minMeetings+1) + minMeetings
	out := make([]mentorship.Meeting, 0, total)

	for i := 0; i < total; i++ {
		hour := g.rand.IntN(4) + 14
		minute := "00"
		if g.chance(0.5) {
			minute = "30"
		}
		duration := 30
		if g.chance(0.5) {
			duration = 60
		}
		out = append(out, mentorship.Meeting{
			ID:           g.newID(),
			Date:         start.AddDate(0, 0, i*7).Format("2006-01-02"),
			Time:         fmt.Sprintf("%02d:%s", hour, minute),
			Duration:     duration,
			PartnerEmail: mentorship.DeriveEmail(partnerName),
			PartnerName:  partnerName,
			Completed:    roundCompleted || g.chance(0.7),
		})
	}

	return out
}

// mentorshipRole assigns the side of the pairing a user takes in one round.
// Mentee-only roles always land on the mentee side; eligible roles lean
// mentor, and viewer users are always made mentors so every demo login shows
// the mentor surfaces its role can reach.
func (g *Generator) mentorshipRole(role mentorship.Role, viewer bool) mentorship.MentorshipRole {
	if role.MustBeMentee() {
		return mentorship.Mentee
	}
	if role.CanBeMentor() {
		if viewer || g.chance(0.7) {
			return mentorship.Mentor
		}
		return mentorship.Mentee
	}
	return mentorship.Mentee
}

// partnerNames draws partners for one participation: mentors carry one to
// three mentees, mentees exactly one mentor.
func (g *Generator) partnerNames(role mentorship.MentorshipRole) []string {
	if role == mentorship.Mentor {
		n := g.rand.IntN(3) + 1
		out := make([]string, 0, n)
		for i := 0; i < n; i++ {
			out = append(out, g.pick(menteeNames))
		}
		return out
	}
	return []string{g.pick(mentorNames)}
}

// registration prefills the active-round sign-up for the given side.
func (g *Generator) registration(role mentorship.MentorshipRole) *mentorship.Registration {
	reg := &mentorship.Registration{
		Industry:  "UI / UX",
		Skillsets: append([]string(nil), defaultSkillsets...),
		Goal:      menteeGoal,
	}
	if role == mentorship.Mentor {
		reg.Industry = "SWE"
		reg.MenteeCapacity = 2
		reg.Goal = mentorGoal
	}
	return reg
}

func (g *Generator) participation(round mentorship.Round, role mentorship.MentorshipRole, withRegistration bool) mentorship.Participation {
	partners := g.partnerNames(role)
	status := mentorship.StatusCompleted
	if round.Status == mentorship.RoundActive {
		status = mentorship.StatusActive
	}

	p := mentorship.Participation{
		ProgramName:  round.Name + " Mentorship Program",
		RoundID:      round.ID,
		Role:         role,
		StartDate:    round.StartDate,
		EndDate:      round.EndDate,
		Status:       status,
		PartnerNames: partners,
		Meetings:     g.meetings(round.StartDate, partners[0], status == mentorship.StatusCompleted),
	}
	if withRegistration {
		p.Registration = g.registration(role)
	}
	return p
}

// User generates one demo user of the given role. Viewer users back the demo
// logins: they are never terminated, and when the role is mentor-eligible the
// active round always lands on the mentor side. Prior-round participation
// stays probabilistic for everyone, viewers included.
func (g *Generator) User(role mentorship.Role, viewer bool) mentorship.User {
	rounds := DefaultRounds()
	fall2024 := rounds[0]
	spring2024 := rounds[2]
	fall2023 := rounds[3]

	participations := []mentorship.Participation{
		g.participation(fall2024, g.mentorshipRole(role, viewer), true),
	}
	if g.chance(0.6) {
		participations = append(participations,
			g.participation(spring2024, g.mentorshipRole(role, viewer), false))
	}
	if g.chance(0.4) {
		participations = append(participations,
			g.participation(fall2023, g.mentorshipRole(role, viewer), false))
	}

	id := g.newID()
	user := mentorship.User{
		ID:         "user-" + id,
		Name:       g.pick(userNames),
		LDAP:       "user_" + shortID(id),
		Role:       role,
		Terminated: !viewer && g.chance(0.2),
		Metrics: mentorship.ActivityMetrics{
			JiraTickets:  g.rand.IntN(jiraSpread) + jiraBase,
			MergedCLs:    g.rand.IntN(clsSpread) + clsBase,
			MergedLOC:    g.rand.IntN(locSpread) + locBase,
			MeetingHours: g.rand.IntN(hoursSpread) + hoursBase,
			ChatMessages: g.rand.IntN(chatSpread) + chatBase,
		},
		Participations: participations,
	}

	return user
}

// Dataset generates the full demo population. The signed-in user leads with
// the fixed identity, and each role block leads with a viewer user so the
// demo login for that role is never terminated and, for eligible roles,
// always mentors the active round.
func (g *Generator) Dataset() []mentorship.User {
	me := g.User(mentorship.RoleEmployee, true)
	me.ID = CurrentUserID
	me.Name = CurrentUserName
	me.LDAP = CurrentUserLDAP

	out := make([]mentorship.User, 0, 1+numEmployees+numInterns+numVolunteers+numGooglers+numExternalMentees)
	out = append(out, me)

	blocks := []struct {
		role  mentorship.Role
		count int
	}{
		{mentorship.RoleEmployee, numEmployees},
		{mentorship.RoleIntern, numInterns},
		{mentorship.RoleVolunteer, numVolunteers},
		{mentorship.RoleGoogler, numGooglers},
		{mentorship.RoleExternalMentee, numExternalMentees},
	}
	for _, block := range blocks {
		for i := 0; i < block.count; i++ {
			out = append(out, g.User(block.role, i == 0))
		}
	}

	return out
}

// shortID condenses an identifier into the six-character suffix used for
// generated ldap handles.
func shortID(id string) string {
	cleaned := strings.Map(func(r rune) rune {
		if r == '-' {
			return -1
		}
		return r
	}, id)
	if len(cleaned) > 6 {
		cleaned = cleaned[:6]
	}
	return strings.ToLower(cleaned)
}
