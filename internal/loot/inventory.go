package loot

// Wallet holds every currency counter. Copper is fractional because mining
// pays out per tick.
type Wallet struct {
	Gold       int64   `json:"gold"`
	Souls      int64   `json:"souls"`
	Divinity   int64   `json:"divinity"`
	VoidMatter int64   `json:"voidMatter"`
	Starlight  int64   `json:"starlight"`
	Keys       int64   `json:"keys"`
	Glory      int64   `json:"glory"`
	Copper     float64 `json:"copper"`
}

func (w *Wallet) counter(t Type) *int64 {
	switch t {
	case Gold:
		return &w.Gold
	case Souls:
		return &w.Souls
	case Divinity:
		return &w.Divinity
	case VoidMatter:
		return &w.VoidMatter
	case Starlight:
		return &w.Starlight
	case Keys:
		return &w.Keys
	case Glory:
		return &w.Glory
	}
	return nil
}

// Add credits drops to the wallet
func (w *Wallet) Add(drops ...Drop) {
	for _, d := range drops {
		if c := w.counter(d.Type); c != nil && d.Amount > 0 {
			*c += d.Amount
		}
	}
}

// Spend debits amount only if the balance covers it.
func (w *Wallet) Spend(t Type, amount int64) bool {
	if amount <= 0 {
		return true
	}
	c := w.counter(t)
	if c == nil || *c < amount {
		return false
	}
	*c -= amount
	return true
}

// Has checks if the wallet holds at least amount of t
func (w *Wallet) Has(t Type, amount int64) bool {
	c := w.counter(t)
	return c != nil && *c >= amount
}
