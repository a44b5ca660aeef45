package robot

// Standard tabletop size from the task: 5x5 cells, coordinates 0..4.
const (
	TableDimMin = 0
	TableDimMax = 4
)

// Table is the rectangle of valid cells

type Table struct {
	MinX, MinY int
	MaxX, MaxY int
}

// NewTable returns the standard 5x5 tabletop.
func NewTable() Table {
	return Table{
		MinX: TableDimMin,
		MinY: TableDimMin,
		MaxX: TableDimMax,
		MaxY: TableDimMax,
	}
}

func (t Table) InBounds(x, y int) bool {
	return x >= t.MinX && x <= t.MaxX && y >= t.MinY && y <= t.MaxY
}
