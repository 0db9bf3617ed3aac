package mentorship

import (
	"fmt"
	"strings"
	"time"
)

// TrainingStatus tracks completion of an assigned training item.
type TrainingStatus string

const (
	TrainingDone       TrainingStatus = "done"
	TrainingInProgress TrainingStatus = "in-progress"
	TrainingToDo       TrainingStatus = "to-do"
)

// MonthYear is a coarse point in time used by profile entries. The zero
// value means "unset".
type MonthYear struct {
	Month time.Month
	Year  int
}

// IsZero reports whether the value is unset.
func (m MonthYear) IsZero() bool {
	return m.Month == 0 && m.Year == 0
}

func (m MonthYear) validate(field string) error {
	if m.IsZero() {
		return nil
	}
	if m.Month < time.January || m.Month > time.December {
		return fmt.Errorf("%s: month out of range", field)
	}
	if m.Year < 1900 || m.Year > 2200 {
		return fmt.Errorf("%s: year out of range", field)
	}
	return nil
}

// before reports whether m precedes other; unset values never precede.
func (m MonthYear) before(other MonthYear) bool {
	if m.IsZero() || other.IsZero() {
		return false
	}
	if m.Year != other.Year {
		return m.Year < other.Year
	}
	return m.Month < other.Month
}

// ProfileEmail is one contact address on a profile.
type ProfileEmail struct {
	Email   string
	Primary bool
}

// ExperienceEntry is one work-history item on a profile.
type ExperienceEntry struct {
	ID      string
	Title   string
	Company string
	Start   MonthYear
	End     MonthYear
	Current bool
}

// NewExperienceEntry validates and constructs a work-history item. Marking
// the position as current clears any end date.
func NewExperienceEntry(id, title, company string, start, end MonthYear, current bool) (ExperienceEntry, error) {
	if strings.TrimSpace(title) == "" {
		return ExperienceEntry{}, fmt.Errorf("experience: title is required")
	}
	if strings.TrimSpace(company) == "" {
		return ExperienceEntry{}, fmt.Errorf("experience: company is required")
	}
	if err := start.validate("experience start"); err != nil {
		return ExperienceEntry{}, err
	}
	if err := end.validate("experience end"); err != nil {
		return ExperienceEntry{}, err
	}
	if current {
		end = MonthYear{}
	}
	if end.before(start) {
		return ExperienceEntry{}, fmt.Errorf("experience: end precedes start")
	}
	return ExperienceEntry{
		ID:      id,
		Title:   strings.TrimSpace(title),
		Company: strings.TrimSpace(company),
		Start:   start,
		End:     end,
		Current: current,
	}, nil
}

// EducationEntry is one education item on a profile.
type EducationEntry struct {
	ID          string
	Institution string
	Degree      string
	Field       string
	Start       MonthYear
	End         MonthYear
}

// NewEducationEntry validates and constructs an education item.
func NewEducationEntry(id, institution, degree, field string, start, end MonthYear) (EducationEntry, error) {
	if strings.TrimSpace(institution) == "" {
		return EducationEntry{}, fmt.Errorf("education: institution is required")
	}
	if err := start.validate("education start"); err != nil {
		return EducationEntry{}, err
	}
	if err := end.validate("education end"); err != nil {
		return EducationEntry{}, err
	}
	if end.before(start) {
		return EducationEntry{}, fmt.Errorf("education: end precedes start")
	}
	return EducationEntry{
		ID:          id,
		Institution: strings.TrimSpace(institution),
		Degree:      strings.TrimSpace(degree),
		Field:       strings.TrimSpace(field),
		Start:       start,
		End:         end,
	}, nil
}

// TrainingEntry is one assigned training item on a profile. Completed items
// carry a completion date; open items carry a due date.
type TrainingEntry struct {
	ID        string
	Name      string
	Status    TrainingStatus
	Completed MonthYear
	Due       MonthYear
	Link      string
}

// NewTrainingEntry validates and constructs a training item.
func NewTrainingEntry(id, name string, status TrainingStatus, completed, due MonthYear, link string) (TrainingEntry, error) {
	if strings.TrimSpace(name) == "" {
		return TrainingEntry{}, fmt.Errorf("training: name is required")
	}
	switch status {
	case TrainingDone, TrainingInProgress, TrainingToDo:
	default:
		return TrainingEntry{}, fmt.Errorf("training: unknown status %q", status)
	}
	if err := completed.validate("training completed"); err != nil {
		return TrainingEntry{}, err
	}
	if err := due.validate("training due"); err != nil {
		return TrainingEntry{}, err
	}
	if status == TrainingDone && completed.IsZero() {
		return TrainingEntry{}, fmt.Errorf("training: completed date required for done status")
	}
	return TrainingEntry{
		ID:        id,
		Name:      strings.TrimSpace(name),
		Status:    status,
		Completed: completed,
		Due:       due,
		Link:      strings.TrimSpace(link),
	}, nil
}

// Profile is the ad-hoc personal page attached to a user, unrelated to the
// mentorship participation history.
type Profile struct {
	Title      string
	Company    string
	Emails     []ProfileEmail
	Experience []ExperienceEntry
	Education  []EducationEntry
	Training   []TrainingEntry
}

// Clone returns a deep copy of the profile.
func (p Profile) Clone() Profile {
	out := p
	out.Emails = append([]ProfileEmail(nil), p.Emails...)
	out.Experience = append([]ExperienceEntry(nil), p.Experience...)
	out.Education = append([]EducationEntry(nil), p.Education...)
	out.Training = append([]TrainingEntry(nil), p.Training...)
	return out
}
