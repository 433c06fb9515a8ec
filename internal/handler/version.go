package handler

import (
	"net/http"
	"os"
	"runtime"

	"github.com/osse101/KaleFarm_Go/internal/pow"
	"github.com/osse101/KaleFarm_Go/internal/reward"
)

// VersionInfo is the build and protocol information of the running service
type VersionInfo struct {
	Service   string    `json:"service"`
	Version   string    `json:"version"`
	GoVersion string    `json:"go_version"`
	BuildTime string    `json:"build_time,omitempty"`
	GitCommit string    `json:"git_commit,omitempty"`
	Rules     FarmRules `json:"rules"`
}

// FarmRules are the constants a client needs to solve and price work on its own
type FarmRules struct {
	MaxDifficulty  uint32 `json:"max_difficulty"`
	BaseReward     int64  `json:"base_reward"`
	PerZeroBonus   int64  `json:"per_zero_bonus"`
	SecondsPerUnit uint64 `json:"seconds_per_unit"`
}

// RulesFrom describes the reward coefficients in use
func RulesFrom(p reward.Params) FarmRules {
	return FarmRules{
		MaxDifficulty:  pow.MaxDifficulty,
		BaseReward:     p.BaseReward,
		PerZeroBonus:   p.PerZeroBonus,
		SecondsPerUnit: p.SecondsPerUnit,
	}
}

// Set with -ldflags "-X github.com/osse101/KaleFarm_Go/internal/handler.Version=..."
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unset"
)

// HandleVersion returns version information about the running service
// @Summary Version information
// @Tags health
// @Produce json
// @Success 200 {object} VersionInfo
// @Router /version [get]
func HandleVersion(serviceName string, rules FarmRules) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, VersionInfo{
			Service:   serviceName,
			Version:   getVersionInfo(),
			GoVersion: runtime.Version(),
			BuildTime: BuildTime,
			GitCommit: GitCommit,
			Rules:     rules,
		})
	}
}

// getVersionInfo prefers the linked version, then $VERSION
func getVersionInfo() string {
	if Version != "dev" && Version != "" {
		return Version
	}
	if envVersion := os.Getenv("VERSION"); envVersion != "" {
		return envVersion
	}
	return "dev"
}
