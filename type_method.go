package cryptotax

import "fmt"

// CostBasisMethod defines the order in which open lots are selected to
// satisfy a disposal.
type CostBasisMethod int

const (
	// FIFO (First-In, First-Out) consumes the oldest lots first.
	FIFO CostBasisMethod = iota
	// LIFO (Last-In, First-Out) consumes the most recently acquired lots first.
	LIFO
	// HIFO (Highest-In, First-Out) consumes the lots with the highest unit
	// cost basis first, minimizing the realized gain.
	HIFO
)

func (m CostBasisMethod) String() string {
	switch m {
	case FIFO:
		return "fifo"
	case LIFO:
		return "lifo"
	case HIFO:
		return "hifo"
	default:
		return "unknown"
	}
}

// ParseCostBasisMethod parses a string into a CostBasisMethod.
func ParseCostBasisMethod(s string) (CostBasisMethod, error) {
	switch s {
	case "fifo":
		return FIFO, nil
	case "lifo":
		return LIFO, nil
	case "hifo":
		return HIFO, nil
	default:
		return 0, fmt.Errorf("unknown cost basis method: %q", s)
	}
}
