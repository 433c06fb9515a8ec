package pow

import (
	"context"
	"errors"
	"fmt"

	"github.com/osse101/KaleFarm_Go/internal/domain"
)

var (
	// ErrNoSolution is returned when the attempt budget runs out
	ErrNoSolution = errors.New(ErrMsgNoSolution)
	// ErrInvalidDifficulty is returned for difficulties no digest can reach
	ErrInvalidDifficulty = errors.New(ErrMsgInvalidDifficulty)
)

// Challenge is the fixed part of a digest that a solver searches over
type Challenge struct {
	SessionIndex uint32
	Entropy      uint64
	Identity     string
}

// SolveOptions bounds a nonce search
type SolveOptions struct {
	StartNonce  uint64
	MaxAttempts uint64
}

// Solve scans nonces from opts.StartNonce (wrapping at the top of the range)
// and returns the first one whose digest run reaches difficulty.
func Solve(ctx context.Context, ch Challenge, difficulty uint32, opts SolveOptions) (domain.Solution, error) {
	if difficulty > MaxDifficulty {
		return domain.Solution{}, fmt.Errorf("%w: %d", ErrInvalidDifficulty, difficulty)
	}

	maxAttempts := opts.MaxAttempts
	if maxAttempts == 0 {
		maxAttempts = DefaultMaxAttempts
	}

	// A non-zero session byte ends the scan before the nonce is reached,
	// so every nonce scores the same.
	if run, fixed := sessionRun(ch.SessionIndex); fixed {
		if run < difficulty {
			return domain.Solution{Attempts: 1}, fmt.Errorf("%w: session %d caps run at %d", ErrNoSolution, ch.SessionIndex, run)
		}
		digest := DeriveDigest(ch.SessionIndex, opts.StartNonce, ch.Entropy, ch.Identity)
		return domain.Solution{
			Nonce:    opts.StartNonce,
			Zeros:    run,
			Attempts: 1,
			Digest:   EncodeDigest(digest),
		}, nil
	}

	nonce := opts.StartNonce
	for attempts := uint64(1); attempts <= maxAttempts; attempts++ {
		if attempts%contextCheckInterval == 0 {
			select {
			case <-ctx.Done():
				return domain.Solution{Attempts: attempts}, ctx.Err()
			default:
			}
		}

		digest := DeriveDigest(ch.SessionIndex, nonce, ch.Entropy, ch.Identity)
		if zeros := CountLeadingZeroRun(digest); zeros >= difficulty {
			return domain.Solution{
				Nonce:    nonce,
				Zeros:    zeros,
				Attempts: attempts,
				Digest:   EncodeDigest(digest),
			}, nil
		}
		nonce++
	}

	return domain.Solution{Attempts: maxAttempts}, ErrNoSolution
}

// sessionRun scores the session prefix alone.
// fixed is true when the prefix contains a non-zero byte.
func sessionRun(sessionIndex uint32) (uint32, bool) {
	if sessionIndex == 0 {
		return 0, false
	}
	prefix := DeriveDigest(sessionIndex, 0, 0, "")[:nonceOffset]
	return CountLeadingZeroRun(prefix), true
}
