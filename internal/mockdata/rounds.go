package mockdata

import "github.com/circlecat/mentorship-dashboard/internal/mentorship"

// DefaultRounds returns the demo round catalog: one active round, one future
// round parked as completed, and two historical rounds.
func DefaultRounds() []mentorship.Round {
	return []mentorship.Round{
		{
			ID:               "round-2024-fall",
			Name:             "Fall 2024",
			StartDate:        "2024-09-01",
			EndDate:          "2024-12-31",
			Status:           mentorship.RoundActive,
			RequiredMeetings: 8,
			Phases: mentorship.RoundPhases{
				Registration: "2024-08-15",
				Matching:     "2024-08-25",
				InProgress:   "2024-12-15",
				Summary:      "2024-12-25",
				Completed:    "2024-12-31",
			},
		},
		{
			ID:               "round-2026-spring",
			Name:             "Next Round",
			StartDate:        "2026-03-01",
			EndDate:          "2026-06-30",
			Status:           mentorship.RoundCompleted,
			RequiredMeetings: 8,
			Phases: mentorship.RoundPhases{
				Registration: "2026-02-15",
				Matching:     "2026-02-25",
				InProgress:   "2026-06-15",
				Summary:      "2026-06-25",
				Completed:    "2026-06-30",
			},
		},
		{
			ID:               "round-2024-spring",
			Name:             "Spring 2024",
			StartDate:        "2024-03-01",
			EndDate:          "2024-06-30",
			Status:           mentorship.RoundCompleted,
			RequiredMeetings: 6,
			Phases: mentorship.RoundPhases{
				Registration: "2024-02-15",
				Matching:     "2024-02-25",
				InProgress:   "2024-06-15",
				Summary:      "2024-06-25",
				Completed:    "2024-06-30",
			},
		},
		{
			ID:               "round-2023-fall",
			Name:             "Fall 2023",
			StartDate:        "2023-09-01",
			EndDate:          "2023-12-31",
			Status:           mentorship.RoundCompleted,
			RequiredMeetings: 8,
			Phases: mentorship.RoundPhases{
				Registration: "2023-08-15",
				Matching:     "2023-08-25",
				InProgress:   "2023-12-15",
				Summary:      "2023-12-25",
				Completed:    "2023-12-31",
			},
		},
	}
}
