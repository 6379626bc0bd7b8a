package hero

import (
	"errors"
	"fmt"
	"strings"
)

type Class string

const (
	Warrior Class = "warrior"
	Mage    Class = "mage"
	Healer  Class = "healer"
	Rogue   Class = "rogue"
	Ranger  Class = "ranger"
	Paladin Class = "paladin"
)

type Element string

const (
	Fire   Element = "fire"
	Ice    Element = "ice"
	Nature Element = "nature"
	Light  Element = "light"
	Shadow Element = "shadow"
)

// Assignment is where a hero spends its ticks.
type Assignment string

const (
	AssignCombat     Assignment = "combat"
	AssignMine       Assignment = "mine"
	AssignExpedition Assignment = "expedition"
	AssignCampfire   Assignment = "campfire"
	AssignNone       Assignment = "none"
)

var ErrInvalidAssignment = errors.New("invalid assignment")

func ParseAssignment(s string) (Assignment, error) {
	a := Assignment(strings.ToLower(strings.TrimSpace(s)))
	switch a {
	case AssignCombat, AssignMine, AssignExpedition, AssignCampfire, AssignNone:
		return a, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidAssignment, s)
}

type Stats struct {
	HP      float64 `json:"hp"`
	MaxHP   float64 `json:"maxHp"`
	MP      float64 `json:"mp"`
	MaxMP   float64 `json:"maxMp"`
	Attack  float64 `json:"attack"`
	Defense float64 `json:"defense"`
	Speed   float64 `json:"speed"`
	Magic   float64 `json:"magic"`
}

// Clamp keeps hp/mp inside [0, max].
func (s *Stats) Clamp() {
	s.HP = clamp(s.HP, 0, s.MaxHP)
	s.MP = clamp(s.MP, 0, s.MaxMP)
}

type Equipment struct {
	Weapon    *Item `json:"weapon,omitempty"`
	Armor     *Item `json:"armor,omitempty"`
	Accessory *Item `json:"accessory,omitempty"`
}

type Hero struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Class      Class      `json:"class"`
	Emoji      string     `json:"emoji"`
	Element    Element    `json:"element"`
	Level      int        `json:"level"`
	XP         int        `json:"xp"`
	MaxXP      int        `json:"maxXp"`
	StatPoints int        `json:"statPoints"`
	Stats      Stats      `json:"stats"`
	Assignment Assignment `json:"assignment"`
	Equipment  Equipment  `json:"equipment"`
	Gambits    []Gambit   `json:"gambits"`
	Skill      *Skill     `json:"skill,omitempty"`
	IsDead     bool       `json:"isDead"`
	Unlocked   bool       `json:"unlocked"`
	Fatigue    float64    `json:"fatigue"`
}

// Fighting reports whether the hero belongs in this tick's combat snapshot.
func (h Hero) Fighting() bool {
	return h.Unlocked && !h.IsDead && h.Assignment == AssignCombat
}

// EffectiveStats adds equipped item bonuses to the base stats.
func (h Hero) EffectiveStats() Stats {
	s := h.Stats
	for _, it := range h.Equipment.Items() {
		it.applyTo(&s)
	}
	return s
}

// Clone returns a copy that shares no slices or pointers with h.
func (h Hero) Clone() Hero {
	out := h
	if h.Gambits != nil {
		out.Gambits = append([]Gambit(nil), h.Gambits...)
	}
	if h.Skill != nil {
		sk := *h.Skill
		out.Skill = &sk
	}
	out.Equipment = h.Equipment.clone()
	return out
}

func CloneAll(hs []Hero) []Hero {
	if hs == nil {
		return nil
	}
	out := make([]Hero, len(hs))
	for i, h := range hs {
		out[i] = h.Clone()
	}
	return out
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
