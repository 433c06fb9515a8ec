package domain

import (
	sdkmath "cosmossdk.io/math"
)

// FarmerRecord is the per-identity farming state.
// PlantedAt > 0 means the farmer has planted. Worked and Harvested only ever flip false -> true.
type FarmerRecord struct {
	Identity     string      `json:"identity"`
	Balance      sdkmath.Int `json:"balance"`
	TotalEarned  sdkmath.Int `json:"total_earned"`
	SessionIndex uint32      `json:"session_index"`
	PlantedAt    uint64      `json:"planted_at"`
	Worked       bool        `json:"worked"`
	Harvested    bool        `json:"harvested"`
	Nonce        uint64      `json:"nonce"`
	ZerosClaimed uint32      `json:"zeros_claimed"`
}

// Planted reports whether the record has been planted
func (r FarmerRecord) Planted() bool {
	return r.PlantedAt > 0
}

// Phase returns the lifecycle phase derived from the record flags
func (r FarmerRecord) Phase() FarmerPhase {
	switch {
	case r.Harvested:
		return PhaseHarvested
	case r.Worked:
		return PhaseWorked
	case r.Planted():
		return PhasePlanted
	default:
		return PhaseUnplanted
	}
}

// Status returns the (planted, worked, harvested) view of the record
func (r FarmerRecord) Status() FarmerStatus {
	return FarmerStatus{
		Planted:   r.Planted(),
		Worked:    r.Worked,
		Harvested: r.Harvested,
	}
}

// FarmState holds the global counters shared by all farmers
type FarmState struct {
	SessionCounter uint32      `json:"session_counter"`
	TotalStaked    sdkmath.Int `json:"total_staked"`
}

// NewFarmState returns a zeroed farm state
func NewFarmState() FarmState {
	return FarmState{TotalStaked: sdkmath.ZeroInt()}
}

// FarmerStatus is the boolean status triple returned by status queries
type FarmerStatus struct {
	Planted   bool `json:"planted"`
	Worked    bool `json:"worked"`
	Harvested bool `json:"harvested"`
}

// FarmerPhase is a farmer's position in the plant -> work -> harvest lifecycle
type FarmerPhase string

const (
	PhaseUnplanted FarmerPhase = "unplanted"
	PhasePlanted   FarmerPhase = "planted"
	PhaseWorked    FarmerPhase = "worked"
	PhaseHarvested FarmerPhase = "harvested"
)

// WorkChallenge is everything a solver needs to search for a nonce
type WorkChallenge struct {
	Identity     string      `json:"identity"`
	SessionIndex uint32      `json:"session_index"`
	Entropy      uint64      `json:"entropy"`
	Phase        FarmerPhase `json:"phase"`
}
