package app

// Editable is implemented by sims that accept cell edits from the host.
type Editable interface {
	Width() int
	ToggleCell(row, col int) error
	SetWidth(w int) error
}
