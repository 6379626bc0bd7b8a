package hero

import "errors"

type Slot string

const (
	SlotWeapon    Slot = "weapon"
	SlotArmor     Slot = "armor"
	SlotAccessory Slot = "accessory"
)

var ErrInvalidSlot = errors.New("invalid equipment slot")

type Rarity string

const (
	Common    Rarity = "common"
	Rare      Rarity = "rare"
	Epic      Rarity = "epic"
	Legendary Rarity = "legendary"
)

type Rune struct {
	Stat  string  `json:"stat"`
	Value float64 `json:"value"`
}

// Item is owned by exactly one of the inventory or a hero slot.
type Item struct {
	ID      string  `json:"id"`
	Name    string  `json:"name,omitempty"`
	Type    Slot    `json:"type"`
	Stat    string  `json:"stat"`
	Value   float64 `json:"value"`
	Rarity  Rarity  `json:"rarity"`
	Sockets int     `json:"sockets"`
	Runes   []Rune  `json:"runes,omitempty"`
}

func (it Item) applyTo(s *Stats) {
	addStat(s, it.Stat, it.Value)
	for _, r := range it.Runes {
		addStat(s, r.Stat, r.Value)
	}
}

func addStat(s *Stats, stat string, v float64) {
	switch stat {
	case "attack":
		s.Attack += v
	case "defense":
		s.Defense += v
	case "magic":
		s.Magic += v
	case "speed":
		s.Speed += v
	case "maxHp":
		s.MaxHP += v
	case "maxMp":
		s.MaxMP += v
	}
}

func (e Equipment) Items() []Item {
	out := make([]Item, 0, 3)
	for _, it := range []*Item{e.Weapon, e.Armor, e.Accessory} {
		if it != nil {
			out = append(out, *it)
		}
	}
	return out
}

// Get returns the item in slot, or nil.
func (e Equipment) Get(slot Slot) (*Item, error) {
	switch slot {
	case SlotWeapon:
		return e.Weapon, nil
	case SlotArmor:
		return e.Armor, nil
	case SlotAccessory:
		return e.Accessory, nil
	}
	return nil, ErrInvalidSlot
}

// Set places it in slot and returns whatever was there before.
func (e *Equipment) Set(slot Slot, it *Item) (*Item, error) {
	var prev *Item
	switch slot {
	case SlotWeapon:
		prev, e.Weapon = e.Weapon, it
	case SlotArmor:
		prev, e.Armor = e.Armor, it
	case SlotAccessory:
		prev, e.Accessory = e.Accessory, it
	default:
		return nil, ErrInvalidSlot
	}
	return prev, nil
}

func (e Equipment) clone() Equipment {
	cp := func(it *Item) *Item {
		if it == nil {
			return nil
		}
		c := *it
		c.Runes = append([]Rune(nil), it.Runes...)
		return &c
	}
	return Equipment{Weapon: cp(e.Weapon), Armor: cp(e.Armor), Accessory: cp(e.Accessory)}
}
