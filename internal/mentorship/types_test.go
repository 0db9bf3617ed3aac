package mentorship

import "testing"

func TestRolePolicies(t *testing.T) {
	t.Parallel()

	cases := []struct {
		role     Role
		internal bool
		mentor   bool
		mentee   bool
	}{
		{RoleEmployee, true, false, true},
		{RoleIntern, true, false, true},
		{RoleVolunteer, true, true, false},
		{RoleGoogler, false, true, false},
		{RoleExternalMentee, false, false, true},
		{RoleAdmin, false, false, false},
	}

	for _, tc := range cases {
		if got := tc.role.IsInternal(); got != tc.internal {
			t.Fatalf("%s: IsInternal = %v, want %v", tc.role, got, tc.internal)
		}
		if got := tc.role.CanBeMentor(); got != tc.mentor {
			t.Fatalf("%s: CanBeMentor = %v, want %v", tc.role, got, tc.mentor)
		}
		if got := tc.role.MustBeMentee(); got != tc.mentee {
			t.Fatalf("%s: MustBeMentee = %v, want %v", tc.role, got, tc.mentee)
		}
		if !tc.role.Valid() {
			t.Fatalf("%s: expected valid role", tc.role)
		}
	}

	if Role("contractor").Valid() {
		t.Fatalf("unknown role reported valid")
	}
}

func TestRegistrationCatalogs(t *testing.T) {
	t.Parallel()

	if len(Industries) != 4 || len(Skillsets) != 10 {
		t.Fatalf("unexpected catalog sizes: %d industries, %d skillsets", len(Industries), len(Skillsets))
	}

	for _, industry := range Industries {
		if !ValidIndustry(industry) {
			t.Fatalf("catalog industry %q reported invalid", industry)
		}
	}
	if ValidIndustry("Technology") {
		t.Fatalf("off-catalog industry reported valid")
	}

	for _, skillset := range Skillsets {
		if !ValidSkillset(skillset) {
			t.Fatalf("catalog skillset %q reported invalid", skillset)
		}
	}
	if ValidSkillset("Basket Weaving") {
		t.Fatalf("off-catalog skillset reported valid")
	}

	for capacity := 1; capacity <= MaxMenteeCapacity; capacity++ {
		if !ValidMenteeCapacity(capacity) {
			t.Fatalf("capacity %d reported invalid", capacity)
		}
	}
	if ValidMenteeCapacity(0) || ValidMenteeCapacity(4) {
		t.Fatalf("out-of-range capacity reported valid")
	}
}

func TestDeriveEmail(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"Alice Johnson":  "alicejohnson@company.com",
		"Bob":            "bob@company.com",
		"Mary Jane Watt": "maryjanewatt@company.com",
	}
	for name, want := range cases {
		if got := DeriveEmail(name); got != want {
			t.Fatalf("DeriveEmail(%q) = %q, want %q", name, got, want)
		}
	}
}

func TestUserClone(t *testing.T) {
	t.Parallel()

	original := User{
		ID: "u1", Name: "Alice",
		Participations: []Participation{{
			RoundID:      "r1",
			PartnerNames: []string{"Bob"},
			Meetings:     []Meeting{{ID: "m1"}},
			Registration: &Registration{Skillsets: []string{"Networking"}},
		}},
		Profile: Profile{
			Emails:     []ProfileEmail{{Email: "alice@company.com", Primary: true}},
			Experience: []ExperienceEntry{{ID: "e1", Title: "SWE"}},
		},
	}

	clone := original.Clone()
	clone.Participations[0].PartnerNames[0] = "Mallory"
	clone.Participations[0].Meetings[0].ID = "changed"
	clone.Participations[0].Registration.Skillsets[0] = "changed"
	clone.Profile.Emails[0].Email = "changed"
	clone.Profile.Experience[0].Title = "changed"

	p := original.Participations[0]
	if p.PartnerNames[0] != "Bob" || p.Meetings[0].ID != "m1" {
		t.Fatalf("clone shares participation slices with the original")
	}
	if p.Registration.Skillsets[0] != "Networking" {
		t.Fatalf("clone shares registration state with the original")
	}
	if original.Profile.Emails[0].Email != "alice@company.com" {
		t.Fatalf("clone shares profile emails with the original")
	}
	if original.Profile.Experience[0].Title != "SWE" {
		t.Fatalf("clone shares profile experience with the original")
	}
}
