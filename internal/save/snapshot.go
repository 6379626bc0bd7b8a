package save

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/AndersonAraujoX/rpg-eternal-sub000/internal/boss"
	"github.com/AndersonAraujoX/rpg-eternal-sub000/internal/game"
	"github.com/AndersonAraujoX/rpg-eternal-sub000/internal/hero"
)

// Version is written into every snapshot.
const Version = 1

var ErrEmpty = errors.New("save is empty")

// Snapshot is the on-disk shape of a save: the whole state, flattened, plus
// a format version.
type Snapshot struct {
	Version int `json:"version"`
	game.State
}

func Encode(s *game.State) ([]byte, error) {
	if s == nil {
		return nil, errors.New("state cannot be nil")
	}
	return json.Marshal(Snapshot{Version: Version, State: *s})
}

// Decode parses a save and backfills what older saves lack. Heroes missing
// an element, assignment, gambits or skill take them from the template at
// the same index. Corrupt input is an error and nothing is returned.
func Decode(raw []byte, templates []hero.Hero) (*game.State, error) {
	if len(raw) == 0 {
		return nil, ErrEmpty
	}
	var snap Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return nil, fmt.Errorf("decode save: %w", err)
	}
	s := &snap.State
	backfill(s, templates)
	return s, nil
}

func backfill(s *game.State, templates []hero.Hero) {
	if len(s.Heroes) == 0 {
		s.Heroes = hero.CloneAll(templates)
	}
	for i := range s.Heroes {
		h := &s.Heroes[i]
		var tpl *hero.Hero
		if i < len(templates) {
			tpl = &templates[i]
		}
		if tpl != nil {
			if h.ID == "" {
				h.ID = tpl.ID
			}
			if h.Element == "" {
				h.Element = tpl.Element
			}
			if h.Assignment == "" {
				h.Assignment = tpl.Assignment
			}
			if h.Gambits == nil {
				h.Gambits = append([]hero.Gambit(nil), tpl.Gambits...)
			}
			if h.Skill == nil && tpl.Skill != nil {
				sk := *tpl.Skill
				h.Skill = &sk
			}
		}
		if h.Assignment == "" {
			h.Assignment = hero.AssignNone
		}
		if h.Level < 1 {
			h.Level = 1
		}
		if h.MaxXP <= 0 {
			h.MaxXP = 100
		}
		h.Stats.Clamp()
	}

	if s.Boss.Level < 1 || s.Boss.Stats.MaxHP <= 0 {
		s.Boss = boss.New()
	}
	if s.GameSpeed <= 0 {
		s.GameSpeed = 1
	}
	if s.Talents == nil {
		s.Talents = map[string]int{}
	}
	if s.Constellations == nil {
		s.Constellations = map[string]int{}
	}
	if s.Cards == nil {
		s.Cards = map[string]int{}
	}
	if s.Items == nil {
		s.Items = []hero.Item{}
	}
	if s.Artifacts == nil {
		s.Artifacts = []string{}
	}
	if s.Achievements == nil {
		s.Achievements = []string{}
	}
	if s.CombatLog == nil {
		s.CombatLog = []game.LogEntry{}
	}
}
