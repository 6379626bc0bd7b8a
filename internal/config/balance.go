package config

// Casual returns more generous kill rewards
func Casual(r RewardsConfig) RewardsConfig {
	r.GuildXPMult *= 1.5
	r.GuildGoldMult *= 1.5
	r.ReviveGoldPerLevel /= 2
	return r
}

// Hard returns leaner kill rewards for experienced players
func Hard(r RewardsConfig) RewardsConfig {
	r.GuildXPMult *= 0.75
	r.GuildGoldMult *= 0.75
	r.ReviveGoldPerLevel *= 2
	return r
}
