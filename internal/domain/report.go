package domain

// EventReport summarizes what an event creation awarded. Point totals are
// per participant and already multiplied by the number of event days.
type EventReport struct {
	Event            Event  `json:"event"`
	Days             int    `json:"days"`
	MembersCount     int    `json:"members_count"`
	MembersPoints    int    `json:"members_points"`
	Department       string `json:"department"`
	DepartmentPoints int    `json:"department_points"`
}
