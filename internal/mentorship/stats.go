package mentorship

// Summary aggregates mentorship activity across a set of users for one
// round (or all rounds).
//
// TotalPairs counts each mentor-side participation once regardless of how
// many mentees the mentor carries, and TotalMeetingHours assumes one hour
// per completed meeting regardless of the recorded duration. Both match
// the dashboard's historical accounting and are kept as-is.
type Summary struct {
	TotalParticipants int
	TotalPairs        int
	CompletedMeetings int
	TotalMeetingHours int
}

// matchesRound reports whether a participation falls inside the round
// filter. RoundAll matches everything.
func matchesRound(p Participation, round string) bool {
	return round == RoundAll || p.RoundID == round
}

// countsTowardStats reports whether a participation contributes to
// aggregates. Pending enrollments are excluded.
func countsTowardStats(p Participation) bool {
	return p.Status == StatusActive || p.Status == StatusCompleted
}

// Summarize folds the users into mentorship aggregates for the given round
// identifier, which may be RoundAll. The input is not mutated; empty input
// yields all-zero aggregates.
func Summarize(users []User, round string) Summary {
	var s Summary
	seen := make(map[string]struct{})

	for _, user := range users {
		for _, p := range user.Participations {
			if !matchesRound(p, round) || !countsTowardStats(p) {
				continue
			}
			if _, ok := seen[user.ID]; !ok {
				seen[user.ID] = struct{}{}
				s.TotalParticipants++
			}
			if p.Role == Mentor {
				s.TotalPairs++
			}
			for _, m := range p.Meetings {
				if m.Completed {
					s.CompletedMeetings++
					s.TotalMeetingHours++
				}
			}
		}
	}

	return s
}

// ParticipantInfo describes one unique participant in a round, with the
// mentorship roles they held and how many participations each role covers.
type ParticipantInfo struct {
	ID          string
	Name        string
	LDAP        string
	Internal    bool
	Mentor      bool
	Mentee      bool
	MentorCount int
	MenteeCount int
}

// Participants lists each user with at least one counting participation in
// the round, preserving input order. A participant may hold both roles
// across different participations.
func Participants(users []User, round string) []ParticipantInfo {
	index := make(map[string]int)
	out := make([]ParticipantInfo, 0)

	for _, user := range users {
		for _, p := range user.Participations {
			if !matchesRound(p, round) || !countsTowardStats(p) {
				continue
			}
			i, ok := index[user.ID]
			if !ok {
				i = len(out)
				index[user.ID] = i
				out = append(out, ParticipantInfo{
					ID:       user.ID,
					Name:     user.Name,
					LDAP:     user.LDAP,
					Internal: user.Role.IsInternal(),
				})
			}
			if p.Role == Mentor {
				out[i].Mentor = true
				out[i].MentorCount++
			} else {
				out[i].Mentee = true
				out[i].MenteeCount++
			}
		}
	}

	return out
}

// CategoryStats is the internal/external by mentor/mentee cross-tab over
// unique participants.
type CategoryStats struct {
	InternalMentors int
	ExternalMentors int
	InternalMentees int
	ExternalMentees int
	TotalInternal   int
	TotalExternal   int
}

// Categorize folds participant infos into the category cross-tab. A
// participant holding both roles appears in both role buckets.
func Categorize(participants []ParticipantInfo) CategoryStats {
	var s CategoryStats
	for _, p := range participants {
		if p.Internal {
			s.TotalInternal++
			if p.Mentor {
				s.InternalMentors++
			}
			if p.Mentee {
				s.InternalMentees++
			}
		} else {
			s.TotalExternal++
			if p.Mentor {
				s.ExternalMentors++
			}
			if p.Mentee {
				s.ExternalMentees++
			}
		}
	}
	return s
}

// ActivitySummary totals work-activity counters over a set of users.
type ActivitySummary struct {
	JiraTickets      int
	MergedCLs        int
	MergedLOC        int
	MeetingHours     int
	ChatMessages     int
	MentorshipRounds int
}

// ActivityTotals sums activity metrics and participation counts across the
// given users.
func ActivityTotals(users []User) ActivitySummary {
	var s ActivitySummary
	for _, user := range users {
		s.JiraTickets += user.Metrics.JiraTickets
		s.MergedCLs += user.Metrics.MergedCLs
		s.MergedLOC += user.Metrics.MergedLOC
		s.MeetingHours += user.Metrics.MeetingHours
		s.ChatMessages += user.Metrics.ChatMessages
		s.MentorshipRounds += len(user.Participations)
	}
	return s
}
