package store

import (
	"context"
	"database/sql"
	"fmt"
)

// TransferFreebie hands a freebie from currentDevID to newDevID. It returns
// false and changes nothing if the freebie does not belong to currentDevID.
// All three records must exist.
func TransferFreebie(ctx context.Context, db *sql.DB, currentDevID, newDevID, freebieID int64) (bool, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if err := requireExists(ctx, tx, entityDev, currentDevID); err != nil {
		return false, err
	}
	if err := requireExists(ctx, tx, entityDev, newDevID); err != nil {
		return false, err
	}
	if err := requireExists(ctx, tx, entityFreebie, freebieID); err != nil {
		return false, err
	}

	// The ownership check and the reassignment are one statement.
	result, err := tx.ExecContext(ctx,
		`UPDATE freebies SET dev_id = ? WHERE id = ? AND dev_id = ?`,
		newDevID, freebieID, currentDevID,
	)
	if err != nil {
		return false, fmt.Errorf("transferring freebie: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("checking transfer: %w", err)
	}
	if n == 0 {
		return false, nil
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("committing transfer: %w", err)
	}
	return true, nil
}
