package entity

// PriceTier is one symbol of the ordered price scale.
type PriceTier string

const (
	PriceTierLow      PriceTier = "$"
	PriceTierMedium   PriceTier = "$$"
	PriceTierHigh     PriceTier = "$$$"
	PriceTierVeryHigh PriceTier = "$$$$"
)

// PriceTiers returns the scale in ascending order.
func PriceTiers() []PriceTier {
	return []PriceTier{PriceTierLow, PriceTierMedium, PriceTierHigh, PriceTierVeryHigh}
}

// Level returns 1..4, or 0 for an unknown symbol.
func (p PriceTier) Level() int {
	switch p {
	case PriceTierLow:
		return 1
	case PriceTierMedium:
		return 2
	case PriceTierHigh:
		return 3
	case PriceTierVeryHigh:
		return 4
	default:
		return 0
	}
}

// IsValid checks if the PriceTier is on the scale.
func (p PriceTier) IsValid() bool {
	return p.Level() > 0
}

func (p PriceTier) String() string {
	return string(p)
}
