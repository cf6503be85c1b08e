package pattern

import "fmt"

// Catalog is a read-only lookup of shift patterns. It is injected into the
// schedule resolver so tests can substitute fixtures.
type Catalog interface {
	Lookup(patternID string) (ShiftPattern, error)
	List() []ShiftPattern
}

type staticCatalog struct {
	byID    map[string]ShiftPattern
	ordered []ShiftPattern
}

// NewCatalog builds a catalog from authored pattern definitions, validating
// each at load time. Validation only happens here; resolution trusts the
// catalog afterwards.
func NewCatalog(patterns []ShiftPattern) (Catalog, error) {
	c := &staticCatalog{
		byID:    make(map[string]ShiftPattern, len(patterns)),
		ordered: make([]ShiftPattern, 0, len(patterns)),
	}
	for _, p := range patterns {
		if err := validatePattern(p); err != nil {
			return nil, fmt.Errorf("pattern %q: %w", p.ID, err)
		}
		if _, exists := c.byID[p.ID]; exists {
			return nil, fmt.Errorf("pattern %q: duplicate id: %w", p.ID, ErrInvalidPattern)
		}
		c.byID[p.ID] = p
		c.ordered = append(c.ordered, p)
	}
	return c, nil
}

// Lookup implements Catalog.
func (c *staticCatalog) Lookup(patternID string) (ShiftPattern, error) {
	p, ok := c.byID[patternID]
	if !ok {
		return ShiftPattern{}, ErrPatternNotFound
	}
	return p, nil
}

// List implements Catalog.
func (c *staticCatalog) List() []ShiftPattern {
	out := make([]ShiftPattern, len(c.ordered))
	copy(out, c.ordered)
	return out
}

func validatePattern(p ShiftPattern) error {
	if p.ID == "" {
		return fmt.Errorf("id is required: %w", ErrInvalidPattern)
	}
	if len(p.Cycle) == 0 {
		return fmt.Errorf("cycle must not be empty: %w", ErrInvalidPattern)
	}
	for i, slot := range p.Cycle {
		if slot.Hours < 0 || slot.Hours > 24 {
			return fmt.Errorf("slot %d: hours must be within [0,24]: %w", i, ErrInvalidPattern)
		}
		switch slot.Status {
		case SlotRest:
			if slot.Hours != 0 {
				return fmt.Errorf("slot %d: rest day must have zero hours: %w", i, ErrInvalidPattern)
			}
		case SlotWork:
			if slot.Hours <= 0 {
				return fmt.Errorf("slot %d: work day must have positive hours: %w", i, ErrInvalidPattern)
			}
		default:
			return fmt.Errorf("slot %d: unknown status %q: %w", i, slot.Status, ErrInvalidPattern)
		}
	}
	return nil
}
