package domain

// Status is the lifecycle stage of a trip. Trips start as ideated and only
// ever move forward: ideated → planned → confirmed.
type Status string

const (
	StatusIdeated   Status = "ideated"
	StatusPlanned   Status = "planned"
	StatusConfirmed Status = "confirmed"
)

// Valid reports whether s is one of the three known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusIdeated, StatusPlanned, StatusConfirmed:
		return true
	}
	return false
}
