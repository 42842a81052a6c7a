package domain

// Zone зал ресторана, в котором стоит стол
type Zone string

const (
	ZoneHall1   Zone = "hall_1"
	ZoneHall2   Zone = "hall_2"
	ZoneTerrace Zone = "terrace"
)

// Table represents a physical table in the restaurant
type Table struct {
	ID        int64
	Zone      Zone
	SeatCount int
	IsActive  bool
}

// CanSeat returns true if the table is active and fits the party
func (t *Table) CanSeat(partySize int) bool {
	return t.IsActive && t.SeatCount >= partySize
}
