package mentorship

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortField selects the column the user table is ordered by.
type SortField string

const (
	SortByLDAP         SortField = "ldap"
	SortByName         SortField = "name"
	SortByRole         SortField = "role"
	SortByJiraTickets  SortField = "jiraTickets"
	SortByMergedCLs    SortField = "mergedCLs"
	SortByMeetingHours SortField = "meetingHours"
)

// Valid reports whether the field is a member of the sortable set.
func (f SortField) Valid() bool {
	switch f {
	case SortByLDAP, SortByName, SortByRole, SortByJiraTickets, SortByMergedCLs, SortByMeetingHours:
		return true
	}
	return false
}

// SortDirection orders a sorted table ascending or descending.
type SortDirection string

const (
	Ascending  SortDirection = "asc"
	Descending SortDirection = "desc"
)

// NextSort applies the table's column-toggle rule: re-selecting the current
// field flips the direction, selecting a new field resets to ascending.
func NextSort(field SortField, direction SortDirection, selected SortField) (SortField, SortDirection) {
	if selected == field {
		if direction == Ascending {
			return field, Descending
		}
		return field, Ascending
	}
	return selected, Ascending
}

// Group identifies one of the toggleable role groups shown in the table.
type Group string

const (
	GroupEmployees  Group = "employees"
	GroupInterns    Group = "interns"
	GroupVolunteers Group = "volunteers"
)

// GroupForRole maps a role onto its table group. Roles outside the three
// internal groups are never shown in the table.
func GroupForRole(role Role) (Group, bool) {
	switch role {
	case RoleEmployee:
		return GroupEmployees, true
	case RoleIntern:
		return GroupInterns, true
	case RoleVolunteer:
		return GroupVolunteers, true
	}
	return "", false
}

// TableQuery captures the user-table filter and ordering controls.
type TableQuery struct {
	Search            string
	Groups            []Group
	IncludeTerminated bool
	SortField         SortField
	SortDirection     SortDirection
}

// hasGroup reports whether the query enables the given group.
func (q TableQuery) hasGroup(g Group) bool {
	for _, enabled := range q.Groups {
		if enabled == g {
			return true
		}
	}
	return false
}

// FilterUsers returns the users admitted by the query's group toggles,
// terminated switch, and search term, preserving input order.
func FilterUsers(users []User, q TableQuery) []User {
	search := strings.ToLower(strings.TrimSpace(q.Search))
	out := make([]User, 0, len(users))

	for _, user := range users {
		if user.Terminated && !q.IncludeTerminated {
			continue
		}
		group, ok := GroupForRole(user.Role)
		if !ok || !q.hasGroup(group) {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(user.LDAP), search) &&
			!strings.Contains(strings.ToLower(user.Name), search) {
			continue
		}
		out = append(out, user)
	}

	return out
}

// SortUsers returns a sorted copy of the users. String columns compare via
// locale collation, numeric columns by subtraction.
func SortUsers(users []User, field SortField, direction SortDirection) []User {
	out := make([]User, len(users))
	copy(out, users)

	collator := collate.New(language.English)
	less := func(a, b User) bool {
		switch field {
		case SortByLDAP:
			return collator.CompareString(a.LDAP, b.LDAP) < 0
		case SortByName:
			return collator.CompareString(a.Name, b.Name) < 0
		case SortByJiraTickets:
			return a.Metrics.JiraTickets < b.Metrics.JiraTickets
		case SortByMergedCLs:
			return a.Metrics.MergedCLs < b.Metrics.MergedCLs
		case SortByMeetingHours:
			return a.Metrics.MeetingHours < b.Metrics.MeetingHours
		default:
			return collator.CompareString(string(a.Role), string(b.Role)) < 0
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if direction == Descending {
			return less(out[j], out[i])
		}
		return less(out[i], out[j])
	})

	return out
}

// SelectUsers filters then sorts in one step, returning a fresh slice.
func SelectUsers(users []User, q TableQuery) []User {
	return SortUsers(FilterUsers(users, q), q.SortField, q.SortDirection)
}
