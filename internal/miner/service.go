// Package miner drives full farm cycles and per-identity background mining loops.
package miner

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	sdkmath "cosmossdk.io/math"

	"github.com/osse101/KaleFarm_Go/internal/domain"
	"github.com/osse101/KaleFarm_Go/internal/event"
	"github.com/osse101/KaleFarm_Go/internal/farm"
	"github.com/osse101/KaleFarm_Go/internal/logger"
	"github.com/osse101/KaleFarm_Go/internal/pow"
	"github.com/osse101/KaleFarm_Go/internal/worker"
)

// Service defines the mining operations layered on the farm service
type Service interface {
	// GenerateSolution searches for a nonce for identity's current challenge
	GenerateSolution(ctx context.Context, identity string, difficulty uint32) (domain.Solution, error)
	// FarmCycle runs plant, solve, work and harvest in order
	FarmCycle(ctx context.Context, identity string, stake sdkmath.Int, difficulty uint32) (domain.CycleResult, error)

	Start(ctx context.Context, opts domain.MiningOptions) error
	Stop(ctx context.Context, identity string) (domain.MiningStats, error)
	Stats(ctx context.Context, identity string) (domain.MiningStats, error)
	Shutdown(ctx context.Context) error
}

// Config holds miner tuning
type Config struct {
	MaxAttempts       uint64
	DefaultDifficulty uint32
	DefaultInterval   time.Duration
}

// DefaultConfig returns the default miner configuration
func DefaultConfig() Config {
	return Config{
		MaxAttempts:       DefaultMaxAttempts,
		DefaultDifficulty: DefaultDifficulty,
		DefaultInterval:   DefaultInterval,
	}
}

type miningState struct {
	opts     domain.MiningOptions
	stats    domain.MiningStats
	inFlight bool
}

type service struct {
	farm  farm.Service
	pool  *worker.Pool
	loops *worker.LoopRunner
	bus   event.Bus
	cfg   Config

	startNonce func() uint64
	now        func() time.Time

	mu     sync.Mutex
	miners map[string]*miningState
	closed bool
}

// NewService creates a miner. The pool must be started by the caller; Shutdown stops it.
func NewService(farmSvc farm.Service, pool *worker.Pool, bus event.Bus, cfg Config) Service {
	if cfg.MaxAttempts == 0 {
		cfg.MaxAttempts = DefaultMaxAttempts
	}
	if cfg.DefaultDifficulty == 0 {
		cfg.DefaultDifficulty = DefaultDifficulty
	}
	if cfg.DefaultInterval <= 0 {
		cfg.DefaultInterval = DefaultInterval
	}
	return &service{
		farm:       farmSvc,
		pool:       pool,
		loops:      worker.NewLoopRunner(),
		bus:        bus,
		cfg:        cfg,
		startNonce: rand.Uint64,
		now:        time.Now,
		miners:     make(map[string]*miningState),
	}
}

func (s *service) GenerateSolution(ctx context.Context, identity string, difficulty uint32) (domain.Solution, error) {
	if difficulty == 0 {
		difficulty = s.cfg.DefaultDifficulty
	}
	ch, err := s.farm.Challenge(ctx, identity)
	if err != nil {
		return domain.Solution{}, fmt.Errorf("%s: %w", ErrMsgChallengeStep, err)
	}
	return s.solve(ctx, ch, difficulty)
}

func (s *service) solve(ctx context.Context, ch domain.WorkChallenge, difficulty uint32) (domain.Solution, error) {
	return pow.Solve(ctx, pow.Challenge{
		SessionIndex: ch.SessionIndex,
		Entropy:      ch.Entropy,
		Identity:     ch.Identity,
	}, difficulty, pow.SolveOptions{
		StartNonce:  s.startNonce(),
		MaxAttempts: s.cfg.MaxAttempts,
	})
}

func (s *service) FarmCycle(ctx context.Context, identity string, stake sdkmath.Int, difficulty uint32) (domain.CycleResult, error) {
	ctx = logger.WithIdentity(ctx, identity)
	log := logger.FromContext(ctx)

	if stake.IsNil() {
		stake = sdkmath.ZeroInt()
	}
	if difficulty == 0 {
		difficulty = s.cfg.DefaultDifficulty
	}
	res := domain.CycleResult{
		Identity:   identity,
		Stake:      stake,
		Difficulty: difficulty,
		Reward:     sdkmath.ZeroInt(),
	}
	if identity == "" {
		return res, fmt.Errorf("%w: identity is required", domain.ErrInvalidInput)
	}
	if difficulty > pow.MaxDifficulty {
		return res, fmt.Errorf("%w: difficulty %d exceeds %d", domain.ErrInvalidInput, difficulty, pow.MaxDifficulty)
	}

	log.Info(LogMsgCycleStarted, "stake", stake.String(), "difficulty", difficulty)

	idx, err := s.farm.Plant(ctx, identity, stake)
	if err != nil {
		return res, fmt.Errorf("%s: %w", ErrMsgPlantStep, err)
	}
	res.SessionIndex = idx
	defer func() { s.publishCycle(ctx, res) }()

	ch, err := s.farm.Challenge(ctx, identity)
	if err != nil {
		return res, fmt.Errorf("%s: %w", ErrMsgChallengeStep, err)
	}

	claimed := difficulty
	sol, err := s.solve(ctx, ch, claimed)
	if errors.Is(err, pow.ErrNoSolution) && claimed > FallbackDifficulty {
		log.Info(LogMsgFallback, "difficulty", difficulty, "fallback", FallbackDifficulty)
		claimed = FallbackDifficulty
		sol, err = s.solve(ctx, ch, claimed)
	}
	if errors.Is(err, pow.ErrNoSolution) {
		res.Message = MsgNoSolution
		return res, nil
	}
	if err != nil {
		return res, fmt.Errorf("%s: %w", ErrMsgSolveStep, err)
	}
	res.Solved = true
	res.Solution = &sol

	ok, err := s.farm.Work(ctx, identity, sol.Nonce, claimed)
	if err != nil {
		return res, fmt.Errorf("%s: %w", ErrMsgWorkStep, err)
	}
	if !ok {
		res.Message = MsgWorkRejected
		return res, nil
	}
	res.Worked = true

	reward, err := s.farm.Harvest(ctx, identity, idx)
	if err != nil {
		return res, fmt.Errorf("%s: %w", ErrMsgHarvestStep, err)
	}
	res.Reward = reward

	switch {
	case !reward.IsPositive():
		res.Message = MsgNothingToReap
	case claimed < difficulty:
		res.Message = MsgFallbackSolved
	default:
		res.Message = MsgCycleComplete
	}

	log.Info(LogMsgCycleFinished, "session_index", idx, "reward", reward.String(), "attempts", sol.Attempts)
	return res, nil
}

func (s *service) Start(ctx context.Context, opts domain.MiningOptions) error {
	if opts.Identity == "" {
		return fmt.Errorf("%w: identity is required", domain.ErrInvalidInput)
	}
	if opts.Stake.IsNil() {
		opts.Stake = sdkmath.ZeroInt()
	}
	if opts.Difficulty == 0 {
		opts.Difficulty = s.cfg.DefaultDifficulty
	}
	if opts.Difficulty > pow.MaxDifficulty {
		return fmt.Errorf("%w: difficulty %d exceeds %d", domain.ErrInvalidInput, opts.Difficulty, pow.MaxDifficulty)
	}
	if opts.Interval <= 0 {
		opts.Interval = s.cfg.DefaultInterval
	}
	if opts.Interval < MinInterval {
		opts.Interval = MinInterval
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return domain.ErrMinerStopped
	}
	if current, ok := s.miners[opts.Identity]; ok && current.stats.Active {
		s.mu.Unlock()
		return domain.ErrAlreadyMining
	}
	state := &miningState{
		opts: opts,
		stats: domain.MiningStats{
			Identity:    opts.Identity,
			Active:      true,
			Difficulty:  opts.Difficulty,
			TotalReward: sdkmath.ZeroInt(),
			StartedAt:   s.now(),
		},
	}
	s.miners[opts.Identity] = state
	s.mu.Unlock()

	err := s.loops.Start(ctx, opts.Identity, opts.Interval, func(loopCtx context.Context) bool {
		s.tick(loopCtx, state)
		return true
	})
	if err != nil {
		s.mu.Lock()
		delete(s.miners, opts.Identity)
		s.mu.Unlock()
		switch {
		case errors.Is(err, worker.ErrLoopExists):
			return domain.ErrAlreadyMining
		case errors.Is(err, worker.ErrRunnerClosed):
			return domain.ErrMinerStopped
		}
		return err
	}

	logger.FromContext(ctx).Info(LogMsgMiningStarted, "identity", opts.Identity, "difficulty", opts.Difficulty, "interval", opts.Interval)
	return nil
}

// tick hands one cycle to the worker pool unless the previous one is still running
func (s *service) tick(ctx context.Context, state *miningState) {
	log := logger.FromContext(ctx)

	s.mu.Lock()
	if state.inFlight || !state.stats.Active {
		s.mu.Unlock()
		log.Debug(LogMsgTickSkipped, "identity", state.opts.Identity, "reason", skipReasonInFlight)
		return
	}
	state.inFlight = true
	opts := state.opts
	s.mu.Unlock()

	job := worker.JobFunc(func(jobCtx context.Context) error {
		res, err := s.FarmCycle(jobCtx, opts.Identity, opts.Stake, opts.Difficulty)
		s.record(state, res, err)
		return err
	})
	if !s.pool.TryEnqueue(job) {
		s.mu.Lock()
		state.inFlight = false
		s.mu.Unlock()
		log.Warn(LogMsgTickSkipped, "identity", opts.Identity, "reason", skipReasonQueueFull)
	}
}

func (s *service) record(state *miningState, res domain.CycleResult, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state.inFlight = false
	stats := &state.stats
	stats.Cycles++
	at := s.now()
	stats.LastCycleAt = &at
	if res.SessionIndex > 0 {
		stats.LastSessionIndex = res.SessionIndex
	}
	if res.Solution != nil && res.Solution.Zeros > stats.BestZeros {
		stats.BestZeros = res.Solution.Zeros
	}

	switch {
	case err != nil:
		stats.FailedCycles++
		stats.LastError = err.Error()
	case res.Succeeded():
		stats.SuccessfulCycles++
		stats.TotalReward = stats.TotalReward.Add(res.Reward)
		stats.LastError = ""
	default:
		stats.FailedCycles++
		stats.LastError = res.Message
	}
}

func (s *service) Stop(ctx context.Context, identity string) (domain.MiningStats, error) {
	if err := s.loops.Stop(ctx, identity); err != nil {
		if errors.Is(err, worker.ErrLoopNotFound) {
			return domain.MiningStats{}, domain.ErrNotMining
		}
		return domain.MiningStats{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	state, ok := s.miners[identity]
	if !ok {
		return domain.MiningStats{}, domain.ErrNotMining
	}
	state.stats.Active = false

	logger.FromContext(ctx).Info(LogMsgMiningStopped, "identity", identity, "cycles", state.stats.Cycles)
	return snapshot(state.stats), nil
}

// Stats returns the statistics of the current or most recent loop for identity
func (s *service) Stats(_ context.Context, identity string) (domain.MiningStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	state, ok := s.miners[identity]
	if !ok {
		return domain.MiningStats{}, domain.ErrNotMining
	}
	return snapshot(state.stats), nil
}

// Shutdown stops every loop and drains the worker pool
func (s *service) Shutdown(ctx context.Context) error {
	logger.FromContext(ctx).Info(LogMsgShutdown)

	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()

	loopErr := s.loops.Shutdown(ctx)
	poolErr := s.pool.Stop(ctx)

	s.mu.Lock()
	for _, state := range s.miners {
		state.stats.Active = false
	}
	s.mu.Unlock()

	return errors.Join(loopErr, poolErr)
}

func (s *service) publishCycle(ctx context.Context, res domain.CycleResult) {
	if s.bus == nil {
		return
	}
	var attempts uint64
	if res.Solution != nil {
		attempts = res.Solution.Attempts
	}
	evt := event.NewMinerCycleEvent(res.Identity, res.SessionIndex, res.Succeeded(), res.Reward, attempts, res.Message)
	if err := s.bus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPublishFailed, "error", err)
	}
}

func snapshot(stats domain.MiningStats) domain.MiningStats {
	if stats.LastCycleAt != nil {
		at := *stats.LastCycleAt
		stats.LastCycleAt = &at
	}
	return stats
}
