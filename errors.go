package Go_Linear

import "strconv"

// EmptyContainerError is returned when Op needs an element but the container holds none.
type EmptyContainerError struct {
	Op string
}

func (e *EmptyContainerError) Error() string {
	if e.Op == "" {
		return "container is empty"
	}
	return "container is empty: cannot " + e.Op + "."
}

// FullContainerError is returned when adding to a bounded container already holding Cap elements.
// The container is left untouched.
type FullContainerError struct {
	Cap uint
}

func (e *FullContainerError) Error() string {
	return "container is full: capacity " + strconv.FormatUint(uint64(e.Cap), 10) + " reached."
}

// InvalidPositionError is returned by positional operations given Pos outside the valid range for
// a container of Size elements.
type InvalidPositionError struct {
	Pos  int
	Size uint
}

func (e *InvalidPositionError) Error() string {
	return "invalid position " + strconv.Itoa(e.Pos) + " for size " + strconv.FormatUint(uint64(e.Size), 10) + "."
}

// InvalidExpressionError reports a malformed expression. Pos is the byte offset where the problem
// was detected, or len(Expr) if it was only detected after the scan.
type InvalidExpressionError struct {
	Expr   string
	Pos    int
	Reason string
}

func (e *InvalidExpressionError) Error() string {
	return "invalid expression " + strconv.Quote(e.Expr) + " at " + strconv.Itoa(e.Pos) + ": " + e.Reason
}
