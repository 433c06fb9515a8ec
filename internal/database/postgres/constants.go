package postgres

// Advisory Lock Keys
const (
	// FarmStateLockKey serializes writers on the singleton farm_state row, which may not exist yet
	FarmStateLockKey int64 = 0x4B414C45

	// HashMaskPositiveInt64 keeps advisory lock keys positive
	HashMaskPositiveInt64 = 0x7FFFFFFFFFFFFFFF

	// farmerLockPrefix namespaces farmer advisory locks away from FarmStateLockKey
	farmerLockPrefix = "farmer:"
)

// Farm state row
const (
	FarmStateRowID = 1
)

// SQL Query Constants
const (
	// SQLAdvisoryLock acquires a PostgreSQL advisory transaction lock
	SQLAdvisoryLock = "SELECT pg_advisory_xact_lock($1)"

	SQLSelectFarmState = `
		SELECT session_counter, total_staked::text
		FROM farm_state
		WHERE id = $1
	`

	SQLSelectFarmStateForUpdate = SQLSelectFarmState + ` FOR UPDATE`

	SQLUpsertFarmState = `
		INSERT INTO farm_state (id, session_counter, total_staked, updated_at)
		VALUES ($1, $2, $3::numeric, NOW())
		ON CONFLICT (id) DO UPDATE
		SET session_counter = EXCLUDED.session_counter,
			total_staked = EXCLUDED.total_staked,
			updated_at = EXCLUDED.updated_at
	`

	SQLSelectFarmer = `
		SELECT identity, balance::text, total_earned::text, session_index,
			planted_at::text, worked, harvested, nonce::text, zeros_claimed
		FROM farmers
		WHERE identity = $1
	`

	SQLSelectFarmerForUpdate = SQLSelectFarmer + ` FOR UPDATE`

	SQLUpsertFarmer = `
		INSERT INTO farmers (identity, balance, total_earned, session_index,
			planted_at, worked, harvested, nonce, zeros_claimed, updated_at)
		VALUES ($1, $2::numeric, $3::numeric, $4, $5::numeric, $6, $7, $8::numeric, $9, NOW())
		ON CONFLICT (identity) DO UPDATE
		SET balance = EXCLUDED.balance,
			total_earned = EXCLUDED.total_earned,
			session_index = EXCLUDED.session_index,
			planted_at = EXCLUDED.planted_at,
			worked = EXCLUDED.worked,
			harvested = EXCLUDED.harvested,
			nonce = EXCLUDED.nonce,
			zeros_claimed = EXCLUDED.zeros_claimed,
			updated_at = EXCLUDED.updated_at
	`
)

// Error Messages - Transaction Operations
const (
	ErrMsgFailedToBeginTransaction  = "failed to begin farm transaction"
	ErrMsgFailedToCommitTransaction = "failed to commit transaction"
	ErrMsgFailedToAcquireLock       = "failed to acquire advisory lock"
)

// Error Messages - Farm Operations
const (
	ErrMsgFailedToGetFarmer    = "failed to get farmer"
	ErrMsgFailedToPutFarmer    = "failed to put farmer"
	ErrMsgFailedToGetFarmState = "failed to get farm state"
	ErrMsgFailedToPutFarmState = "failed to put farm state"
	ErrMsgFailedToParseNumeric = "failed to parse numeric column"
)
