package game

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/AndersonAraujoX/rpg-eternal-sub000/internal/hero"
	"github.com/AndersonAraujoX/rpg-eternal-sub000/internal/loot"
	"github.com/AndersonAraujoX/rpg-eternal-sub000/internal/tavern"
	"github.com/AndersonAraujoX/rpg-eternal-sub000/internal/telemetry"
)

const (
	MinGameSpeed = 0.25
	MaxGameSpeed = 10
)

var (
	ErrUnknownHero      = errors.New("unknown hero")
	ErrUnknownItem      = errors.New("unknown item")
	ErrHeroLocked       = errors.New("hero is locked")
	ErrHeroNotDead      = errors.New("hero is not dead")
	ErrHeroUnlocked     = errors.New("hero is already unlocked")
	ErrInsufficientGold = errors.New("insufficient gold")
	ErrRosterFull       = errors.New("roster is full")
	ErrInvalidSpeed     = errors.New("invalid game speed")
	ErrNoStatPoints     = errors.New("no stat points to spend")
	ErrInvalidStat      = errors.New("invalid stat")
)

var allocatable = map[string]bool{"attack": true, "defense": true, "magic": true, "speed": true, "maxHp": true}

// mutate runs fn against a fresh copy of the state and stores the result
// only when fn succeeds.
func (e *Engine) mutate(ctx context.Context, fn func(s *State) error) (*State, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	s, err := e.State.Get(ctx)
	if err != nil {
		return nil, err
	}
	if err := fn(s); err != nil {
		return nil, err
	}
	if err := e.State.Update(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

func (e *Engine) heroAction(ctx context.Context, id string, fn func(s *State, h *hero.Hero) error) (hero.Hero, error) {
	var out hero.Hero
	_, err := e.mutate(ctx, func(s *State) error {
		i := s.Hero(id)
		if i < 0 {
			return fmt.Errorf("%w: %s", ErrUnknownHero, id)
		}
		if err := fn(s, &s.Heroes[i]); err != nil {
			return err
		}
		out = s.Heroes[i].Clone()
		return nil
	})
	return out, err
}

func (e *Engine) SetAssignment(ctx context.Context, id string, a hero.Assignment) (hero.Hero, error) {
	a, err := hero.ParseAssignment(string(a))
	if err != nil {
		return hero.Hero{}, err
	}
	h, err := e.heroAction(ctx, id, func(_ *State, h *hero.Hero) error {
		if !h.Unlocked {
			return ErrHeroLocked
		}
		h.Assignment = a
		return nil
	})
	if err == nil {
		e.record([]pendingEvent{{telemetry.EventAssignmentSet, telemetry.EventMetadata{"hero": id, "assignment": string(a)}}})
	}
	return h, err
}

// Equip moves an inventory item into its slot. Whatever the slot held goes
// back to the inventory.
func (e *Engine) Equip(ctx context.Context, heroID, itemID string) (hero.Hero, error) {
	return e.heroAction(ctx, heroID, func(s *State, h *hero.Hero) error {
		at := -1
		for i := range s.Items {
			if s.Items[i].ID == itemID {
				at = i
				break
			}
		}
		if at < 0 {
			return fmt.Errorf("%w: %s", ErrUnknownItem, itemID)
		}
		it := s.Items[at]
		prev, err := h.Equipment.Set(it.Type, &it)
		if err != nil {
			return err
		}
		s.Items = append(s.Items[:at], s.Items[at+1:]...)
		if prev != nil {
			s.Items = append(s.Items, *prev)
		}
		return nil
	})
}

func (e *Engine) Unequip(ctx context.Context, heroID string, slot hero.Slot) (hero.Hero, error) {
	return e.heroAction(ctx, heroID, func(s *State, h *hero.Hero) error {
		prev, err := h.Equipment.Set(slot, nil)
		if err != nil {
			return err
		}
		if prev != nil {
			s.Items = append(s.Items, *prev)
		}
		return nil
	})
}

// ReviveCost is what Revive charges for h.
func (e *Engine) ReviveCost(h hero.Hero) int64 {
	return e.Config.Rewards.ReviveGoldPerLevel * int64(max(1, h.Level))
}

func (e *Engine) Revive(ctx context.Context, id string) (hero.Hero, error) {
	h, err := e.heroAction(ctx, id, func(s *State, h *hero.Hero) error {
		if !h.IsDead {
			return ErrHeroNotDead
		}
		if !s.Wallet.Spend(loot.Gold, e.ReviveCost(*h)) {
			return ErrInsufficientGold
		}
		h.IsDead = false
		h.Stats.HP = h.Stats.MaxHP
		e.appendLog(s, e.Clock.Now(), "%s was revived", h.Name)
		return nil
	})
	if err == nil {
		e.record([]pendingEvent{{telemetry.EventHeroRevived, telemetry.EventMetadata{"hero": id, "source": "gold"}}})
	}
	return h, err
}

// Unlock buys one of the locked starting heroes.
func (e *Engine) Unlock(ctx context.Context, id string) (hero.Hero, error) {
	return e.heroAction(ctx, id, func(s *State, h *hero.Hero) error {
		if h.Unlocked {
			return ErrHeroUnlocked
		}
		if !s.Wallet.Spend(loot.Gold, tavern.UnlockCost(s.Hero(id))) {
			return ErrInsufficientGold
		}
		h.Unlocked = true
		e.appendLog(s, e.Clock.Now(), "%s joined the party", h.Name)
		return nil
	})
}

func (e *Engine) AllocateStatPoint(ctx context.Context, id, stat string) (hero.Hero, error) {
	if !allocatable[stat] {
		return hero.Hero{}, fmt.Errorf("%w: %s", ErrInvalidStat, stat)
	}
	return e.heroAction(ctx, id, func(_ *State, h *hero.Hero) error {
		if !h.SpendStatPoint(stat) {
			return ErrNoStatPoints
		}
		return nil
	})
}

// SummonCost is the price of the next tavern summon.
func (e *Engine) SummonCost(s *State) int64 {
	return pricing(e.Config).Cost(s.Summons)
}

func (e *Engine) Summon(ctx context.Context) (hero.Hero, error) {
	var out hero.Hero
	var cost int64
	_, err := e.mutate(ctx, func(s *State) error {
		if len(s.Heroes) >= tavern.MaxRoster {
			return ErrRosterFull
		}
		cost = e.SummonCost(s)
		if !s.Wallet.Has(loot.Gold, cost) {
			return ErrInsufficientGold
		}
		out = e.summon(s, cost, e.Clock.Now())
		return nil
	})
	if err != nil {
		return hero.Hero{}, err
	}
	e.record([]pendingEvent{{telemetry.EventHeroSummoned, telemetry.EventMetadata{"hero": out.ID, "class": out.Class, "cost": cost, "auto": false}}})
	return out, nil
}

func (e *Engine) summon(s *State, cost int64, now time.Time) hero.Hero {
	s.Wallet.Spend(loot.Gold, cost)
	h := tavern.Summon(e.RNG)
	s.Heroes = append(s.Heroes, h)
	s.Summons++
	e.appendLog(s, now, "%s the %s answered the summons", h.Name, h.Class)
	return h.Clone()
}

func (e *Engine) SetGameSpeed(ctx context.Context, speed float64) error {
	if speed < MinGameSpeed || speed > MaxGameSpeed {
		return fmt.Errorf("%w: %v", ErrInvalidSpeed, speed)
	}
	_, err := e.mutate(ctx, func(s *State) error {
		s.GameSpeed = speed
		return nil
	})
	return err
}

func (e *Engine) SetTower(ctx context.Context, active bool) error {
	_, err := e.mutate(ctx, func(s *State) error {
		s.Tower.Active = active
		return nil
	})
	return err
}

func (e *Engine) SetAutoSummon(ctx context.Context, enabled bool) error {
	_, err := e.mutate(ctx, func(s *State) error {
		s.Automation.AutoSummon = enabled
		return nil
	})
	return err
}
