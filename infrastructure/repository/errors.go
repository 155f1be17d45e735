package repository

import (
	"database/sql"

	"github.com/lib/pq"
	"github.com/pkg/errors"
)

var (
	// ErrStoreUnavailable is the single condition every store-layer failure
	// collapses into. Callers see the whole query operation fail; there are
	// no partial results.
	ErrStoreUnavailable = errors.New("sales store unavailable")

	// ErrNotInitialized signals an operation ran before the schema was
	// created. This is a programming error, not a runtime condition.
	ErrNotInitialized = errors.New("sales store not initialized")
)

const pqUndefinedTable = "42P01"

// classify tags a driver error so callers can match it with errors.Is
// without knowing anything about lib/pq.
func classify(err error, op string) error {
	if err == nil {
		return nil
	}
	if err == sql.ErrNoRows {
		return err
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == pqUndefinedTable {
		return errors.Wrapf(ErrNotInitialized, "%s: %v", op, err)
	}

	return errors.Wrapf(ErrStoreUnavailable, "%s: %v", op, err)
}
