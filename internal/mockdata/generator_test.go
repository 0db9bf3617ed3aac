package mockdata

import (
	"testing"
	"time"

	"github.com/circlecat/mentorship-dashboard/internal/mentorship"
)

func TestGeneratorDataset(t *testing.T) {
	t.Parallel()

	t.Run("population matches the role blocks", func(t *testing.T) {
		t.Parallel()

		users := NewSeeded(1).Dataset()
		if len(users) != 46 {
			t.Fatalf("expected 46 users, got %d", len(users))
		}

		counts := make(map[mentorship.Role]int)
		for _, u := range users {
			counts[u.Role]++
		}
		want := map[mentorship.Role]int{
			mentorship.RoleEmployee:       16,
			mentorship.RoleIntern:         10,
			mentorship.RoleVolunteer:      8,
			mentorship.RoleGoogler:        5,
			mentorship.RoleExternalMentee: 7,
		}
		for role, n := range want {
			if counts[role] != n {
				t.Fatalf("role %s: got %d users, want %d", role, counts[role], n)
			}
		}
	})

	t.Run("current user leads the dataset with the fixed identity", func(t *testing.T) {
		t.Parallel()

		users := NewSeeded(7).Dataset()
		me := users[0]
		if me.ID != CurrentUserID || me.Name != CurrentUserName || me.LDAP != CurrentUserLDAP {
			t.Fatalf("unexpected current user identity: %+v", me)
		}
		if me.Terminated {
			t.Fatalf("current user must never be terminated")
		}
		if len(me.Participations) < 1 || me.Participations[0].Status != mentorship.StatusActive {
			t.Fatalf("current user must hold an active participation, got %+v", me.Participations)
		}
	})

	t.Run("same seed reproduces the same dataset", func(t *testing.T) {
		t.Parallel()

		a := NewSeeded(42).Dataset()
		b := NewSeeded(42).Dataset()
		if len(a) != len(b) {
			t.Fatalf("dataset lengths differ: %d vs %d", len(a), len(b))
		}
		for i := range a {
			if a[i].Role != b[i].Role || a[i].Name != b[i].Name || a[i].Terminated != b[i].Terminated {
				t.Fatalf("user %d differs across identically seeded runs", i)
			}
			if len(a[i].Participations) != len(b[i].Participations) {
				t.Fatalf("user %d participation counts differ", i)
			}
		}
	})
}

func TestGeneratorRolePolicies(t *testing.T) {
	t.Parallel()

	users := NewSeeded(99).Dataset()

	for _, u := range users {
		for _, p := range u.Participations {
			if u.Role.MustBeMentee() && p.Role != mentorship.Mentee {
				t.Fatalf("%s user assigned %s side", u.Role, p.Role)
			}
			if p.Role == mentorship.Mentor && !u.Role.CanBeMentor() {
				t.Fatalf("%s user generated as mentor", u.Role)
			}

			switch p.Role {
			case mentorship.Mentor:
				if len(p.PartnerNames) < 1 || len(p.PartnerNames) > 3 {
					t.Fatalf("mentor with %d partners", len(p.PartnerNames))
				}
			case mentorship.Mentee:
				if len(p.PartnerNames) != 1 {
					t.Fatalf("mentee with %d partners", len(p.PartnerNames))
				}
			}
		}
	}
}

func TestGeneratorViewerUsers(t *testing.T) {
	t.Parallel()

	t.Run("eligible viewers always mentor the active round", func(t *testing.T) {
		t.Parallel()

		for seed := uint64(1); seed <= 50; seed++ {
			g := NewSeeded(seed)
			for _, role := range []mentorship.Role{mentorship.RoleVolunteer, mentorship.RoleGoogler} {
				viewer := g.User(role, true)
				if viewer.Participations[0].Role != mentorship.Mentor {
					t.Fatalf("seed %d: %s viewer is %s in the active round", seed, role, viewer.Participations[0].Role)
				}
				if viewer.Terminated {
					t.Fatalf("seed %d: %s viewer generated as terminated", seed, role)
				}
			}
		}
	})

	t.Run("each role block leads with its viewer", func(t *testing.T) {
		t.Parallel()

		for seed := uint64(1); seed <= 50; seed++ {
			leads := make(map[mentorship.Role]mentorship.User)
			for _, u := range NewSeeded(seed).Dataset() {
				if _, ok := leads[u.Role]; !ok {
					leads[u.Role] = u
				}
			}
			for _, role := range []mentorship.Role{mentorship.RoleVolunteer, mentorship.RoleGoogler} {
				lead := leads[role]
				if lead.Participations[0].Role != mentorship.Mentor {
					t.Fatalf("seed %d: first %s user is %s in the active round", seed, role, lead.Participations[0].Role)
				}
			}
			for role, lead := range leads {
				if lead.Terminated {
					t.Fatalf("seed %d: first %s user is terminated", seed, role)
				}
			}
		}
	})
}

func TestGeneratorParticipations(t *testing.T) {
	t.Parallel()

	users := NewSeeded(3).Dataset()

	for _, u := range users {
		if len(u.Participations) < 1 {
			t.Fatalf("user %s has no participations", u.ID)
		}

		active := u.Participations[0]
		if active.RoundID != "round-2024-fall" || active.Status != mentorship.StatusActive {
			t.Fatalf("first participation must be the active round, got %+v", active)
		}
		if active.Registration == nil {
			t.Fatalf("active participation missing registration prefill")
		}
		if active.Role == mentorship.Mentor {
			if active.Registration.Industry != "SWE" || active.Registration.MenteeCapacity != 2 {
				t.Fatalf("unexpected mentor registration: %+v", active.Registration)
			}
		} else {
			if active.Registration.Industry != "UI / UX" || active.Registration.MenteeCapacity != 0 {
				t.Fatalf("unexpected mentee registration: %+v", active.Registration)
			}
		}
		if len(active.Registration.Skillsets) != 3 {
			t.Fatalf("expected 3 prefilled skillsets, got %v", active.Registration.Skillsets)
		}

		for _, p := range u.Participations[1:] {
			if p.Status != mentorship.StatusCompleted {
				t.Fatalf("historical participation not completed: %+v", p)
			}
			if p.Registration != nil {
				t.Fatalf("historical participation carries a registration")
			}
		}
	}
}

func TestGeneratorMeetings(t *testing.T) {
	t.Parallel()

	g := NewSeeded(11)

	for i := 0; i < 50; i++ {
		meetings := g.meetings("2024-09-01", "Alice Chen", false)
		if len(meetings) < 4 || len(meetings) > 12 {
			t.Fatalf("expected 4 to 12 meetings, got %d", len(meetings))
		}

		prev, err := time.Parse("2006-01-02", meetings[0].Date)
		if err != nil {
			t.Fatalf("bad first meeting date: %v", err)
		}
		if meetings[0].Date != "2024-09-01" {
			t.Fatalf("series must start on the round start date, got %s", meetings[0].Date)
		}

		for j, m := range meetings {
			if m.PartnerEmail != "alicechen@company.com" || m.PartnerName != "Alice Chen" {
				t.Fatalf("partner not propagated: %+v", m)
			}
			if m.Duration != 30 && m.Duration != 60 {
				t.Fatalf("unexpected duration %d", m.Duration)
			}
			if len(m.Time) != 5 || (m.Time[3:] != "00" && m.Time[3:] != "30") {
				t.Fatalf("unexpected time %q", m.Time)
			}
			if m.Time < "14:00" || m.Time > "17:30" {
				t.Fatalf("meeting time outside the afternoon window: %s", m.Time)
			}
			if j > 0 {
				cur, err := time.Parse("2006-01-02", m.Date)
				if err != nil {
					t.Fatalf("bad meeting date: %v", err)
				}
				if cur.Sub(prev) != 7*24*time.Hour {
					t.Fatalf("meetings not weekly: %s then %s", prev.Format("2006-01-02"), m.Date)
				}
				prev = cur
			}
		}
	}

	completed := g.meetings("2024-03-01", "Bob Lee", true)
	for _, m := range completed {
		if !m.Completed {
			t.Fatalf("completed round left an open meeting: %+v", m)
		}
	}
}

func TestDefaultRounds(t *testing.T) {
	t.Parallel()

	rounds := DefaultRounds()
	if len(rounds) != 4 {
		t.Fatalf("expected 4 rounds, got %d", len(rounds))
	}
	if rounds[0].ID != "round-2024-fall" || rounds[0].Status != mentorship.RoundActive {
		t.Fatalf("first round must be the active fall 2024 round, got %+v", rounds[0])
	}

	active := 0
	for _, r := range rounds {
		if r.Status == mentorship.RoundActive {
			active++
		}
		if r.RequiredMeetings < 1 {
			t.Fatalf("round %s has no meeting requirement", r.ID)
		}
		phases := []string{
			r.Phases.Registration, r.Phases.Matching, r.Phases.InProgress,
			r.Phases.Summary, r.Phases.Completed,
		}
		for i := 1; i < len(phases); i++ {
			if phases[i] <= phases[i-1] {
				t.Fatalf("round %s phases out of order: %v", r.ID, phases)
			}
		}
	}
	if active != 1 {
		t.Fatalf("expected exactly one active round, got %d", active)
	}
}
