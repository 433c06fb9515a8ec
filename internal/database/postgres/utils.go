package postgres

import (
	"context"
	"crypto/sha256"
	"encoding/binary"
	"errors"
	"fmt"
	"strconv"

	sdkmath "cosmossdk.io/math"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/osse101/KaleFarm_Go/internal/repository"
)

// querier is satisfied by both *pgxpool.Pool and pgx.Tx
type querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// mapTxErr converts pgx.ErrTxClosed so repository.SafeRollback can recognise it
func mapTxErr(err error) error {
	if errors.Is(err, pgx.ErrTxClosed) {
		return repository.ErrTxClosed
	}
	return err
}

// hashIdentity creates a consistent int64 key from an identity for advisory locking
func hashIdentity(identity string) int64 {
	h := sha256.Sum256([]byte(farmerLockPrefix + identity))
	return int64(binary.BigEndian.Uint64(h[:8]) & HashMaskPositiveInt64)
}

// intToText renders a math.Int for a $n::numeric parameter
func intToText(i sdkmath.Int) string {
	if i.IsNil() {
		return "0"
	}
	return i.String()
}

// textToInt parses a numeric::text column
func textToInt(s string) (sdkmath.Int, error) {
	i, ok := sdkmath.NewIntFromString(s)
	if !ok {
		return sdkmath.Int{}, fmt.Errorf("%s: %q", ErrMsgFailedToParseNumeric, s)
	}
	return i, nil
}

func uint64ToText(v uint64) string {
	return strconv.FormatUint(v, 10)
}

func textToUint64(s string) (uint64, error) {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToParseNumeric, err)
	}
	return v, nil
}
