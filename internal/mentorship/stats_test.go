package mentorship

import "testing"

func statsFixture() []User {
	return []User{
		{
			ID: "u-alice", Name: "Alice", LDAP: "alice", Role: RoleVolunteer,
			Metrics: ActivityMetrics{JiraTickets: 10, MergedCLs: 5, MergedLOC: 900, MeetingHours: 12, ChatMessages: 40},
			Participations: []Participation{
				{
					RoundID: "round-2024-fall", Role: Mentor, Status: StatusActive,
					PartnerNames: []string{"Bob", "Carol"},
					Meetings: []Meeting{
						{ID: "m1", Completed: true, Duration: 30},
						{ID: "m2", Completed: true, Duration: 120},
						{ID: "m3", Completed: false, Duration: 60},
					},
				},
				{
					RoundID: "round-2024-spring", Role: Mentor, Status: StatusCompleted,
					PartnerNames: []string{"Dave"},
					Meetings:     []Meeting{{ID: "m4", Completed: true, Duration: 60}},
				},
			},
		},
		{
			ID: "u-bob", Name: "Bob", LDAP: "bob", Role: RoleEmployee,
			Metrics: ActivityMetrics{JiraTickets: 3, MergedCLs: 2, MergedLOC: 100, MeetingHours: 4, ChatMessages: 10},
			Participations: []Participation{
				{
					RoundID: "round-2024-fall", Role: Mentee, Status: StatusActive,
					PartnerNames: []string{"Alice"},
					Meetings:     []Meeting{{ID: "m5", Completed: true, Duration: 60}},
				},
			},
		},
		{
			ID: "u-eve", Name: "Eve", LDAP: "eve", Role: RoleExternalMentee,
			Participations: []Participation{
				{
					RoundID: "round-2024-fall", Role: Mentee, Status: StatusPending,
					PartnerNames: []string{"Alice"},
					Meetings:     []Meeting{{ID: "m6", Completed: true, Duration: 60}},
				},
			},
		},
		{
			ID: "u-frank", Name: "Frank", LDAP: "frank", Role: RoleGoogler,
			Participations: []Participation{
				{
					RoundID: "round-2024-spring", Role: Mentor, Status: StatusCompleted,
					PartnerNames: []string{"Grace"},
				},
				{
					RoundID: "round-2024-fall", Role: Mentee, Status: StatusActive,
					PartnerNames: []string{"Helen"},
				},
			},
		},
	}
}

func TestSummarize(t *testing.T) {
	t.Parallel()

	t.Run("counts a single round", func(t *testing.T) {
		t.Parallel()

		got := Summarize(statsFixture(), "round-2024-fall")
		want := Summary{TotalParticipants: 3, TotalPairs: 1, CompletedMeetings: 3, TotalMeetingHours: 3}
		if got != want {
			t.Fatalf("Summarize mismatch: got %+v, want %+v", got, want)
		}
	})

	t.Run("counts all rounds without double counting participants", func(t *testing.T) {
		t.Parallel()

		got := Summarize(statsFixture(), RoundAll)
		if got.TotalParticipants != 3 {
			t.Fatalf("expected 3 unique participants, got %d", got.TotalParticipants)
		}
		if got.TotalPairs != 3 {
			t.Fatalf("expected one pair per mentor participation, got %d", got.TotalPairs)
		}
		if got.CompletedMeetings != 4 || got.TotalMeetingHours != 4 {
			t.Fatalf("expected 4 completed meetings at one hour each, got %+v", got)
		}
	})

	t.Run("pending participations never contribute", func(t *testing.T) {
		t.Parallel()

		got := Summarize(statsFixture(), RoundAll)
		for _, p := range Participants(statsFixture(), RoundAll) {
			if p.ID == "u-eve" {
				t.Fatalf("pending-only participant leaked into participants: %+v", p)
			}
		}
		if got.CompletedMeetings != 4 {
			t.Fatalf("pending participation meetings counted: %+v", got)
		}
	})

	t.Run("mentee-heavy pairs still count once per mentor participation", func(t *testing.T) {
		t.Parallel()

		users := []User{{
			ID: "u1", Role: RoleVolunteer,
			Participations: []Participation{{
				RoundID: "r", Role: Mentor, Status: StatusActive,
				PartnerNames: []string{"A", "B", "C"},
			}},
		}}
		if got := Summarize(users, "r").TotalPairs; got != 1 {
			t.Fatalf("expected 1 pair for a three-mentee mentor, got %d", got)
		}
	})

	t.Run("empty input yields zero aggregates", func(t *testing.T) {
		t.Parallel()

		if got := Summarize(nil, RoundAll); got != (Summary{}) {
			t.Fatalf("expected zero summary, got %+v", got)
		}
	})
}

func TestParticipants(t *testing.T) {
	t.Parallel()

	t.Run("preserves input order and deduplicates", func(t *testing.T) {
		t.Parallel()

		got := Participants(statsFixture(), RoundAll)
		if len(got) != 3 {
			t.Fatalf("expected 3 unique participants, got %d", len(got))
		}
		for i, want := range []string{"u-alice", "u-bob", "u-frank"} {
			if got[i].ID != want {
				t.Fatalf("participant %d: got %s, want %s", i, got[i].ID, want)
			}
		}
	})

	t.Run("tracks both roles with per-role counts", func(t *testing.T) {
		t.Parallel()

		got := Participants(statsFixture(), RoundAll)
		frank := got[2]
		if !frank.Mentor || !frank.Mentee {
			t.Fatalf("expected dual-role participant, got %+v", frank)
		}
		if frank.MentorCount != 1 || frank.MenteeCount != 1 {
			t.Fatalf("unexpected role counts: %+v", frank)
		}

		alice := got[0]
		if !alice.Mentor || alice.Mentee || alice.MentorCount != 2 {
			t.Fatalf("unexpected mentor-only participant: %+v", alice)
		}
	})

	t.Run("flags internal membership by role namespace", func(t *testing.T) {
		t.Parallel()

		got := Participants(statsFixture(), "round-2024-fall")
		byID := make(map[string]ParticipantInfo, len(got))
		for _, p := range got {
			byID[p.ID] = p
		}
		if byID["u-bob"].Internal != true {
			t.Fatalf("expected employee to be internal")
		}
		if byID["u-alice"].Internal != true {
			t.Fatalf("expected volunteer to be internal")
		}
		if byID["u-frank"].Internal {
			t.Fatalf("expected googler to be external")
		}
	})
}

func TestCategorize(t *testing.T) {
	t.Parallel()

	participants := []ParticipantInfo{
		{ID: "a", Internal: true, Mentor: true},
		{ID: "b", Internal: true, Mentee: true},
		{ID: "c", Internal: false, Mentor: true, Mentee: true},
		{ID: "d", Internal: false, Mentee: true},
	}

	got := Categorize(participants)
	want := CategoryStats{
		InternalMentors: 1,
		ExternalMentors: 1,
		InternalMentees: 1,
		ExternalMentees: 2,
		TotalInternal:   2,
		TotalExternal:   2,
	}
	if got != want {
		t.Fatalf("Categorize mismatch: got %+v, want %+v", got, want)
	}
}

func TestActivityTotals(t *testing.T) {
	t.Parallel()

	got := ActivityTotals(statsFixture())
	if got.JiraTickets != 13 || got.MergedCLs != 7 || got.MergedLOC != 1000 {
		t.Fatalf("unexpected work totals: %+v", got)
	}
	if got.MeetingHours != 16 || got.ChatMessages != 50 {
		t.Fatalf("unexpected communication totals: %+v", got)
	}
	if got.MentorshipRounds != 6 {
		t.Fatalf("expected 6 participations in total, got %d", got.MentorshipRounds)
	}
}
