package game

import (
	"fmt"
	"math"

	"github.com/AndersonAraujoX/rpg-eternal-sub000/internal/combat"
	"github.com/AndersonAraujoX/rpg-eternal-sub000/internal/hero"
	"github.com/AndersonAraujoX/rpg-eternal-sub000/internal/loot"
)

var slotStats = []struct {
	slot hero.Slot
	stat string
	name string
}{
	{hero.SlotWeapon, "attack", "Blade"},
	{hero.SlotArmor, "defense", "Mail"},
	{hero.SlotAccessory, "magic", "Charm"},
}

var rarityTable = loot.Table{
	{Kind: string(hero.Common), Weight: 70},
	{Kind: string(hero.Rare), Weight: 22},
	{Kind: string(hero.Epic), Weight: 7},
	{Kind: string(hero.Legendary), Weight: 1},
}

var rarityPower = map[hero.Rarity]float64{
	hero.Common:    1,
	hero.Rare:      1.5,
	hero.Epic:      2.25,
	hero.Legendary: 3.5,
}

var raritySockets = map[hero.Rarity]int{
	hero.Common:    0,
	hero.Rare:      1,
	hero.Epic:      2,
	hero.Legendary: 3,
}

// rollItem builds the gear a boss of the given level drops. The id is
// derived from the kill count so replays produce the same ids.
func rollItem(rng combat.RNG, bossLevel int, kills int64) hero.Item {
	kind := slotStats[rng.Intn(len(slotStats))]
	rarity := hero.Rarity(rarityTable.Pick(rng).Kind)
	value := math.Floor((2 + float64(bossLevel)/2) * rarityPower[rarity])
	return hero.Item{
		ID:      fmt.Sprintf("it_%d_%d", bossLevel, kills),
		Name:    fmt.Sprintf("%s %s", rarity, kind.name),
		Type:    kind.slot,
		Stat:    kind.stat,
		Value:   value,
		Rarity:  rarity,
		Sockets: raritySockets[rarity],
	}
}
