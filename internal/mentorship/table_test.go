package mentorship

import "testing"

func tableFixture() []User {
	return []User{
		{ID: "u1", Name: "Charlie Brown", LDAP: "cbrown", Role: RoleEmployee,
			Metrics: ActivityMetrics{JiraTickets: 20, MergedCLs: 8, MeetingHours: 30}},
		{ID: "u2", Name: "alice Smith", LDAP: "asmith", Role: RoleIntern,
			Metrics: ActivityMetrics{JiraTickets: 5, MergedCLs: 2, MeetingHours: 10}},
		{ID: "u3", Name: "Bob Jones", LDAP: "bjones", Role: RoleVolunteer,
			Metrics: ActivityMetrics{JiraTickets: 12, MergedCLs: 4, MeetingHours: 25}},
		{ID: "u4", Name: "Dana White", LDAP: "dwhite", Role: RoleEmployee, Terminated: true,
			Metrics: ActivityMetrics{JiraTickets: 40, MergedCLs: 15, MeetingHours: 50}},
		{ID: "u5", Name: "Grace Googler", LDAP: "ggoogler", Role: RoleGoogler,
			Metrics: ActivityMetrics{JiraTickets: 99, MergedCLs: 99, MeetingHours: 99}},
	}
}

func allGroups() []Group {
	return []Group{GroupEmployees, GroupInterns, GroupVolunteers}
}

func ids(users []User) []string {
	out := make([]string, len(users))
	for i, u := range users {
		out[i] = u.ID
	}
	return out
}

func assertIDs(t *testing.T, got []User, want ...string) {
	t.Helper()
	gotIDs := ids(got)
	if len(gotIDs) != len(want) {
		t.Fatalf("got %v, want %v", gotIDs, want)
	}
	for i := range want {
		if gotIDs[i] != want[i] {
			t.Fatalf("got %v, want %v", gotIDs, want)
		}
	}
}

func TestFilterUsers(t *testing.T) {
	t.Parallel()

	t.Run("excludes terminated users by default", func(t *testing.T) {
		t.Parallel()

		got := FilterUsers(tableFixture(), TableQuery{Groups: allGroups()})
		assertIDs(t, got, "u1", "u2", "u3")
	})

	t.Run("includes terminated users when requested", func(t *testing.T) {
		t.Parallel()

		got := FilterUsers(tableFixture(), TableQuery{Groups: allGroups(), IncludeTerminated: true})
		assertIDs(t, got, "u1", "u2", "u3", "u4")
	})

	t.Run("group toggles restrict by role", func(t *testing.T) {
		t.Parallel()

		got := FilterUsers(tableFixture(), TableQuery{Groups: []Group{GroupInterns, GroupVolunteers}})
		assertIDs(t, got, "u2", "u3")
	})

	t.Run("no enabled group yields an empty table", func(t *testing.T) {
		t.Parallel()

		got := FilterUsers(tableFixture(), TableQuery{IncludeTerminated: true})
		if len(got) != 0 {
			t.Fatalf("expected empty result, got %v", ids(got))
		}
	})

	t.Run("non-table roles never appear", func(t *testing.T) {
		t.Parallel()

		got := FilterUsers(tableFixture(), TableQuery{Groups: allGroups(), IncludeTerminated: true})
		for _, u := range got {
			if u.ID == "u5" {
				t.Fatalf("googler should not appear in the table")
			}
		}
	})

	t.Run("search matches ldap or name case-insensitively", func(t *testing.T) {
		t.Parallel()

		got := FilterUsers(tableFixture(), TableQuery{Groups: allGroups(), Search: "ALICE"})
		assertIDs(t, got, "u2")

		got = FilterUsers(tableFixture(), TableQuery{Groups: allGroups(), Search: "bjones"})
		assertIDs(t, got, "u3")

		got = FilterUsers(tableFixture(), TableQuery{Groups: allGroups(), Search: "nobody"})
		if len(got) != 0 {
			t.Fatalf("expected no match, got %v", ids(got))
		}
	})

	t.Run("blank search admits everyone", func(t *testing.T) {
		t.Parallel()

		got := FilterUsers(tableFixture(), TableQuery{Groups: allGroups(), Search: "   "})
		assertIDs(t, got, "u1", "u2", "u3")
	})
}

func TestSortUsers(t *testing.T) {
	t.Parallel()

	t.Run("orders names with locale collation ignoring case", func(t *testing.T) {
		t.Parallel()

		users := tableFixture()[:3]
		got := SortUsers(users, SortByName, Ascending)
		assertIDs(t, got, "u2", "u3", "u1")
	})

	t.Run("descending reverses the order", func(t *testing.T) {
		t.Parallel()

		users := tableFixture()[:3]
		got := SortUsers(users, SortByName, Descending)
		assertIDs(t, got, "u1", "u3", "u2")
	})

	t.Run("numeric fields sort by value", func(t *testing.T) {
		t.Parallel()

		users := tableFixture()[:3]
		got := SortUsers(users, SortByJiraTickets, Descending)
		assertIDs(t, got, "u1", "u3", "u2")

		got = SortUsers(users, SortByMeetingHours, Ascending)
		assertIDs(t, got, "u2", "u3", "u1")
	})

	t.Run("does not mutate its input", func(t *testing.T) {
		t.Parallel()

		users := tableFixture()[:3]
		SortUsers(users, SortByName, Ascending)
		assertIDs(t, users, "u1", "u2", "u3")
	})
}

func TestSelectUsers(t *testing.T) {
	t.Parallel()

	q := TableQuery{
		Groups:        allGroups(),
		SortField:     SortByLDAP,
		SortDirection: Descending,
	}
	got := SelectUsers(tableFixture(), q)
	assertIDs(t, got, "u1", "u3", "u2")
}

func TestNextSort(t *testing.T) {
	t.Parallel()

	t.Run("reselecting the active field flips direction", func(t *testing.T) {
		t.Parallel()

		field, dir := NextSort(SortByName, Ascending, SortByName)
		if field != SortByName || dir != Descending {
			t.Fatalf("got %s/%s, want name/desc", field, dir)
		}
		field, dir = NextSort(SortByName, Descending, SortByName)
		if field != SortByName || dir != Ascending {
			t.Fatalf("got %s/%s, want name/asc", field, dir)
		}
	})

	t.Run("selecting a new field resets to ascending", func(t *testing.T) {
		t.Parallel()

		field, dir := NextSort(SortByName, Descending, SortByMergedCLs)
		if field != SortByMergedCLs || dir != Ascending {
			t.Fatalf("got %s/%s, want mergedCLs/asc", field, dir)
		}
	})
}

func TestSortFieldValid(t *testing.T) {
	t.Parallel()

	for _, f := range []SortField{SortByLDAP, SortByName, SortByRole, SortByJiraTickets, SortByMergedCLs, SortByMeetingHours} {
		if !f.Valid() {
			t.Fatalf("expected %s to be valid", f)
		}
	}
	if SortField("salary").Valid() {
		t.Fatalf("unknown field reported valid")
	}
}
