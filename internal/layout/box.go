package layout

// Axis is the stacking direction of a box container.
type Axis int

const (
	// Vertical stacks children top to bottom (columns).
	Vertical Axis = iota
	// Horizontal stacks children left to right (rows).
	Horizontal
)

// Column stacks groups (or nested rows) vertically.
type Column struct {
	container
}

// NewColumn creates an empty detached column.
func NewColumn() *Column {
	c := &Column{}
	c.container = newContainer(c)
	return c
}

// Axis returns Vertical.
func (c *Column) Axis() Axis { return Vertical }

// Row stacks columns (or groups) horizontally.
type Row struct {
	container
}

// NewRow creates an empty detached row.
func NewRow() *Row {
	r := &Row{}
	r.container = newContainer(r)
	return r
}

// Axis returns Horizontal.
func (r *Row) Axis() Axis { return Horizontal }
