package main

type ColumnRole int

const (
	RoleNormal  ColumnRole = iota
	RolePrimary            // Phase
	RoleSecondary
)

type ColumnMeta struct {
	Name     string
	Role     ColumnRole
	MinWidth int
	Weight   float64
	Width    int
}

// recordColumns is the fixed header of every records table.
func recordColumns() []ColumnMeta {
	cols := []ColumnMeta{
		{Name: "Date", Role: RoleSecondary},
		{Name: "Temperature", Role: RoleNormal},
		{Name: "Time", Role: RoleNormal},
		{Name: "Phase", Role: RolePrimary},
	}
	for i := range cols {
		cols[i].MinWidth = defaultMinWidthForRole(cols[i].Role)
		cols[i].Weight = defaultWeightForRole(cols[i].Role)
	}
	return cols
}

func defaultMinWidthForRole(r ColumnRole) int {
	switch r {
	case RolePrimary:
		return 22
	case RoleSecondary:
		return 12
	default:
		return 8
	}
}

func defaultWeightForRole(r ColumnRole) float64 {
	switch r {
	case RolePrimary:
		return 3.0
	case RoleSecondary:
		return 2.0
	default:
		return 1.0
	}
}

// layoutColumns gives each column its MinWidth and shares whatever is left
// of totalWidth by Weight.
func layoutColumns(cols []ColumnMeta, totalWidth int) []ColumnMeta {
	if totalWidth <= 0 {
		return cols
	}

	minSum := 0
	weightSum := 0.0
	for i := range cols {
		minSum += cols[i].MinWidth
		weightSum += cols[i].Weight
	}

	if minSum >= totalWidth {
		// Too tight: every column gets its minimum and the row overflows.
		for i := range cols {
			cols[i].Width = min(cols[i].MinWidth, totalWidth)
		}
		return cols
	}

	remaining := totalWidth - minSum
	for i := range cols {
		extra := 0
		if weightSum > 0 {
			extra = int(float64(remaining) * (cols[i].Weight / weightSum))
		}
		cols[i].Width = cols[i].MinWidth + extra
	}

	return cols
}
