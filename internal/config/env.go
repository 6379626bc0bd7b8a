package config

import (
	"os"
	"strconv"
	"strings"
)

// ApplyEnv overrides file values with RPG_* environment variables.
func (c *Config) ApplyEnv() {
	if v := os.Getenv("RPG_ADDR"); v != "" {
		c.Server.Addr = v
	}
	if v := os.Getenv("RPG_DATA_DIR"); v != "" {
		c.Save.DataDir = v
	}
	if v := strings.ToLower(os.Getenv("RPG_SAVE_BACKEND")); v != "" {
		c.Save.Backend = v
	}
	if v := os.Getenv("RPG_SAVE_SLOT"); v != "" {
		c.Save.Slot = v
	}
	if val := getEnvFloat("RPG_GAME_SPEED"); val > 0 {
		c.Loop.GameSpeed = val
	}
	if val := getEnvInt("RPG_AUTOSAVE_SECONDS"); val > 0 {
		c.Save.AutosaveSeconds = val
	}
	if v := os.Getenv("RPG_SEED"); v != "" {
		if seed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.SeededRNG.Enabled = true
			c.SeededRNG.Seed = seed
		}
	}

	// Support preset modes
	switch os.Getenv("DIFFICULTY") {
	case "casual":
		c.Rewards = Casual(c.Rewards)
	case "hard":
		c.Rewards = Hard(c.Rewards)
	}
}

func getEnvInt(key string) int {
	val := os.Getenv(key)
	if val == "" {
		return 0
	}
	num, err := strconv.Atoi(val)
	if err != nil {
		return 0
	}
	return num
}

func getEnvFloat(key string) float64 {
	val := os.Getenv(key)
	if val == "" {
		return 0
	}
	num, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return 0
	}
	return num
}
