package valueobjects

import "fmt"

// Priority ranks a ticket from 1 (lowest) to 5 (highest).
type Priority int

const (
	MinPriority Priority = 1
	MaxPriority Priority = 5
)

func (p Priority) Int() int {
	return int(p)
}

func (p Priority) IsValid() bool {
	return p >= MinPriority && p <= MaxPriority
}

func NewPriority(n int) (Priority, error) {
	p := Priority(n)
	if !p.IsValid() {
		return 0, fmt.Errorf("invalid priority: %d (must be between %d and %d)", n, MinPriority, MaxPriority)
	}
	return p, nil
}
