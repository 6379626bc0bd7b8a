package loot

// Type is a currency kind that can drop or be spent.
type Type string

const (
	Gold       Type = "gold"
	Souls      Type = "souls"
	Divinity   Type = "divinity"
	VoidMatter Type = "void_matter"
	Starlight  Type = "starlight"
	Keys       Type = "keys"
	Glory      Type = "glory"
)

// Drop represents a single reward
type Drop struct {
	Type   Type  `json:"type"`
	Amount int64 `json:"amount"`
}

// Roller is the randomness a table roll needs.
type Roller interface {
	Intn(n int) int
}

// Entry is one weighted outcome. Kind is free-form so the same table type
// serves currency drops and tavern class draws.
type Entry struct {
	Kind   string
	Amount int64
	Weight int
}

// Table represents a weighted table
type Table []Entry

// Pick returns one entry chosen by weight. An empty or weightless table
// returns the zero Entry.
func (t Table) Pick(r Roller) Entry {
	total := 0
	for _, e := range t {
		if e.Weight > 0 {
			total += e.Weight
		}
	}
	if total == 0 {
		return Entry{}
	}
	roll := r.Intn(total)
	current := 0
	for _, e := range t {
		if e.Weight <= 0 {
			continue
		}
		current += e.Weight
		if roll < current {
			return e
		}
	}
	return t[len(t)-1]
}

// Roll picks one entry and turns it into a currency drop.
func (t Table) Roll(r Roller) Drop {
	e := t.Pick(r)
	if e.Kind == "" {
		return Drop{}
	}
	amt := e.Amount
	if amt <= 0 {
		amt = 1
	}
	return Drop{Type: Type(e.Kind), Amount: amt}
}

// ExpeditionTable is what heroes on expedition bring back.
var ExpeditionTable = Table{
	{Kind: string(Gold), Amount: 25, Weight: 55},
	{Kind: string(Keys), Amount: 1, Weight: 20},
	{Kind: string(Starlight), Amount: 1, Weight: 15},
	{Kind: string(VoidMatter), Amount: 1, Weight: 10},
}
