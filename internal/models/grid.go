package models

// Grid is a weekly timetable laid out day by period. Cells not present in the
// nested maps are empty.
type Grid map[Day]map[Period]Slot

// NewGrid allocates an empty grid with a map per school day.
func NewGrid() Grid {
	g := make(Grid, len(Days))
	for _, d := range Days {
		g[d] = make(map[Period]Slot)
	}
	return g
}

// Slot returns the content of the cell at (day, period). Missing cells read
// as the empty slot.
func (g Grid) Slot(day Day, period Period) Slot {
	if g == nil {
		return Slot{}
	}
	return g[day][period]
}

// Set writes a slot at (day, period), allocating the day map if needed.
func (g Grid) Set(day Day, period Period, slot Slot) {
	if g[day] == nil {
		g[day] = make(map[Period]Slot)
	}
	g[day][period] = slot
}

// Clear removes the cell at (day, period).
func (g Grid) Clear(day Day, period Period) {
	if g[day] == nil {
		return
	}
	delete(g[day], period)
}

// Clone returns a deep copy of the grid.
func (g Grid) Clone() Grid {
	if g == nil {
		return nil
	}
	out := make(Grid, len(g))
	for day, periods := range g {
		cp := make(map[Period]Slot, len(periods))
		for period, slot := range periods {
			cp[period] = slot
		}
		out[day] = cp
	}
	return out
}
