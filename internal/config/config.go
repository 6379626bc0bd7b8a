package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Version     string           `yaml:"version" json:"version"`
	Server      ServerConfig     `yaml:"server" json:"server"`
	Save        SaveConfig       `yaml:"save" json:"save"`
	SeededRNG   SeededRNG        `yaml:"seeded_rng" json:"seeded_rng"`
	Loop        LoopConfig       `yaml:"loop" json:"loop"`
	Boss        BossConfig       `yaml:"boss" json:"boss"`
	Rewards     RewardsConfig    `yaml:"rewards" json:"rewards"`
	Combat      CombatConfig     `yaml:"combat" json:"combat"`
	Multiplier  MultiplierConfig `yaml:"multiplier" json:"multiplier"`
	Tavern      TavernConfig     `yaml:"tavern" json:"tavern"`
	Assignments AssignmentConfig `yaml:"assignments" json:"assignments"`
	Tower       TowerConfig      `yaml:"tower" json:"tower"`
	Offline     OfflineConfig    `yaml:"offline" json:"offline"`
}

type ServerConfig struct {
	Addr      string  `yaml:"addr" json:"addr"`
	RateLimit float64 `yaml:"rate_limit" json:"rate_limit"`
	RateBurst int     `yaml:"rate_burst" json:"rate_burst"`
}

type SaveConfig struct {
	Backend         string `yaml:"backend" json:"backend"`
	DataDir         string `yaml:"data_dir" json:"data_dir"`
	Slot            string `yaml:"slot" json:"slot"`
	AutosaveSeconds int    `yaml:"autosave_seconds" json:"autosave_seconds"`
}

type SeededRNG struct {
	Enabled bool  `yaml:"enabled" json:"enabled"`
	Seed    int64 `yaml:"seed" json:"seed"`
}

type LoopConfig struct {
	GameSpeed float64 `yaml:"game_speed" json:"game_speed"`
	MinTickMs int     `yaml:"min_tick_ms" json:"min_tick_ms"`
	LogSize   int     `yaml:"log_size" json:"log_size"`
}

type BossConfig struct {
	HPGrowth     float64 `yaml:"hp_growth" json:"hp_growth"`
	AttackGrowth float64 `yaml:"attack_growth" json:"attack_growth"`
}

type RewardsConfig struct {
	XPPerBossLevel     float64 `yaml:"xp_per_boss_level" json:"xp_per_boss_level"`
	GoldPerBossLevel   float64 `yaml:"gold_per_boss_level" json:"gold_per_boss_level"`
	GuildXPMult        float64 `yaml:"guild_xp_mult" json:"guild_xp_mult"`
	GuildGoldMult      float64 `yaml:"guild_gold_mult" json:"guild_gold_mult"`
	ReviveGoldPerLevel int64   `yaml:"revive_gold_per_level" json:"revive_gold_per_level"`
	ItemDropChance     float64 `yaml:"item_drop_chance" json:"item_drop_chance"`
}

type CombatConfig struct {
	BaseVariance          float64 `yaml:"base_variance" json:"base_variance"`
	CritChance            float64 `yaml:"crit_chance" json:"crit_chance"`
	CritMult              float64 `yaml:"crit_mult" json:"crit_mult"`
	UltimateMult          float64 `yaml:"ultimate_mult" json:"ultimate_mult"`
	UltimateChargePerTick float64 `yaml:"ultimate_charge_per_tick" json:"ultimate_charge_per_tick"`
}

type MultiplierConfig struct {
	SoulPct        float64 `yaml:"soul_pct" json:"soul_pct"`
	DivinityPct    float64 `yaml:"divinity_pct" json:"divinity_pct"`
	CardPct        float64 `yaml:"card_pct" json:"card_pct"`
	AchievementPct float64 `yaml:"achievement_pct" json:"achievement_pct"`
	BossDefensePct float64 `yaml:"boss_defense_pct" json:"boss_defense_pct"`
	MinMultiplier  float64 `yaml:"min_multiplier" json:"min_multiplier"`
}

type TavernConfig struct {
	BaseCost         float64 `yaml:"base_cost" json:"base_cost"`
	CostGrowth       float64 `yaml:"cost_growth" json:"cost_growth"`
	AutoSummonChance float64 `yaml:"auto_summon_chance" json:"auto_summon_chance"`
}

type AssignmentConfig struct {
	MineYieldPerSecond   float64 `yaml:"mine_yield_per_second" json:"mine_yield_per_second"`
	CampfireHealPct      float64 `yaml:"campfire_heal_pct" json:"campfire_heal_pct"`
	ExpeditionFindChance float64 `yaml:"expedition_find_chance" json:"expedition_find_chance"`
}

type TowerConfig struct {
	FloorMs float64 `yaml:"floor_ms" json:"floor_ms"`
}

type OfflineConfig struct {
	CapHours             float64 `yaml:"cap_hours" json:"cap_hours"`
	CopperPerMinerSecond float64 `yaml:"copper_per_miner_second" json:"copper_per_miner_second"`
	SecondsPerKill       float64 `yaml:"seconds_per_kill" json:"seconds_per_kill"`
	PartySize            float64 `yaml:"party_size" json:"party_size"`
}

// Default returns a fully populated configuration.
func Default() *Config {
	c := &Config{Version: "1"}
	c.ApplyDefaults()
	return c
}

func (c *Config) ApplyDefaults() {
	if c.Server.Addr == "" {
		c.Server.Addr = ":42069"
	}
	if c.Server.RateLimit == 0 {
		c.Server.RateLimit = 20
	}
	if c.Server.RateBurst == 0 {
		c.Server.RateBurst = 40
	}
	if c.Save.Backend == "" {
		c.Save.Backend = "file"
	}
	if c.Save.DataDir == "" {
		c.Save.DataDir = "data"
	}
	if c.Save.Slot == "" {
		c.Save.Slot = "default"
	}
	if c.Save.AutosaveSeconds == 0 {
		c.Save.AutosaveSeconds = 5
	}
	if c.Loop.GameSpeed == 0 {
		c.Loop.GameSpeed = 1
	}
	if c.Loop.MinTickMs == 0 {
		c.Loop.MinTickMs = 40
	}
	if c.Loop.LogSize == 0 {
		c.Loop.LogSize = 50
	}
	if c.Boss.HPGrowth == 0 {
		c.Boss.HPGrowth = 1.2
	}
	if c.Boss.AttackGrowth == 0 {
		c.Boss.AttackGrowth = 1.1
	}
	if c.Rewards.XPPerBossLevel == 0 {
		c.Rewards.XPPerBossLevel = 10
	}
	if c.Rewards.GoldPerBossLevel == 0 {
		c.Rewards.GoldPerBossLevel = 50
	}
	if c.Rewards.GuildXPMult == 0 {
		c.Rewards.GuildXPMult = 1
	}
	if c.Rewards.GuildGoldMult == 0 {
		c.Rewards.GuildGoldMult = 1
	}
	if c.Rewards.ReviveGoldPerLevel == 0 {
		c.Rewards.ReviveGoldPerLevel = 25
	}
	if c.Rewards.ItemDropChance == 0 {
		c.Rewards.ItemDropChance = 0.1
	}
	if c.Combat.BaseVariance == 0 {
		c.Combat.BaseVariance = 0.1
	}
	if c.Combat.CritChance == 0 {
		c.Combat.CritChance = 0.1
	}
	if c.Combat.CritMult == 0 {
		c.Combat.CritMult = 2
	}
	if c.Combat.UltimateMult == 0 {
		c.Combat.UltimateMult = 3
	}
	if c.Combat.UltimateChargePerTick == 0 {
		c.Combat.UltimateChargePerTick = 2
	}
	if c.Multiplier.SoulPct == 0 {
		c.Multiplier.SoulPct = 10
	}
	if c.Multiplier.DivinityPct == 0 {
		c.Multiplier.DivinityPct = 25
	}
	if c.Multiplier.CardPct == 0 {
		c.Multiplier.CardPct = 1
	}
	if c.Multiplier.AchievementPct == 0 {
		c.Multiplier.AchievementPct = 5
	}
	if c.Multiplier.BossDefensePct == 0 {
		c.Multiplier.BossDefensePct = 1
	}
	if c.Multiplier.MinMultiplier == 0 {
		c.Multiplier.MinMultiplier = 0.1
	}
	if c.Tavern.BaseCost == 0 {
		c.Tavern.BaseCost = 100
	}
	if c.Tavern.CostGrowth == 0 {
		c.Tavern.CostGrowth = 1.15
	}
	if c.Tavern.AutoSummonChance == 0 {
		c.Tavern.AutoSummonChance = 0.1
	}
	if c.Assignments.MineYieldPerSecond == 0 {
		c.Assignments.MineYieldPerSecond = 0.5
	}
	if c.Assignments.CampfireHealPct == 0 {
		c.Assignments.CampfireHealPct = 5
	}
	if c.Assignments.ExpeditionFindChance == 0 {
		c.Assignments.ExpeditionFindChance = 0.01
	}
	if c.Tower.FloorMs == 0 {
		c.Tower.FloorMs = 30_000
	}
	if c.Offline.CapHours == 0 {
		c.Offline.CapHours = 24
	}
	if c.Offline.CopperPerMinerSecond == 0 {
		c.Offline.CopperPerMinerSecond = 0.5
	}
	if c.Offline.SecondsPerKill == 0 {
		c.Offline.SecondsPerKill = 5
	}
	if c.Offline.PartySize == 0 {
		c.Offline.PartySize = 6
	}
}

func (c *Config) Validate() error {
	switch c.Save.Backend {
	case "file", "sqlite":
	default:
		return fmt.Errorf("save.backend must be file or sqlite, got %q", c.Save.Backend)
	}
	if c.Loop.GameSpeed <= 0 {
		return fmt.Errorf("loop.game_speed must be positive, got %v", c.Loop.GameSpeed)
	}
	if c.Boss.HPGrowth < 1 {
		return fmt.Errorf("boss.hp_growth must be >= 1, got %v", c.Boss.HPGrowth)
	}
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"loop.min_tick_ms", float64(c.Loop.MinTickMs)},
		{"save.autosave_seconds", float64(c.Save.AutosaveSeconds)},
		{"tower.floor_ms", c.Tower.FloorMs},
		{"offline.party_size", c.Offline.PartySize},
		{"offline.seconds_per_kill", c.Offline.SecondsPerKill},
	} {
		if f.v <= 0 {
			return fmt.Errorf("%s must be positive, got %v", f.name, f.v)
		}
	}
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"rewards.item_drop_chance", c.Rewards.ItemDropChance},
		{"combat.crit_chance", c.Combat.CritChance},
		{"tavern.auto_summon_chance", c.Tavern.AutoSummonChance},
		{"assignments.expedition_find_chance", c.Assignments.ExpeditionFindChance},
	} {
		if f.v < 0 || f.v > 1 {
			return fmt.Errorf("%s must be within [0,1], got %v", f.name, f.v)
		}
	}
	return nil
}

func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var r Config
	if err := yaml.Unmarshal(b, &r); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	r.ApplyDefaults()
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return &r, nil
}

// LoadOrDefault is Load, except a missing file yields Default().
func LoadOrDefault(path string) (*Config, error) {
	c, err := Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	return c, err
}
