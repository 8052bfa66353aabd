package repository // repository defines data access for rosters

import (
	"context"      // context allows query cancellation and timeouts
	"database/sql" // sql provides DB primitives
	"errors"
	"fmt"
	"strings"

	"github.com/iliyamo/bus-seat-roster/internal/model"
)

// RosterRepo persists rosters in MySQL.  Only the current roster is
// retained: Replace deletes the previous one in the same transaction and
// Clear deletes it outright.  Passenger rows go with their roster through
// the ON DELETE CASCADE foreign key.
type RosterRepo struct {
	db *sql.DB
}

const deleteRosters = `DELETE FROM rosters`

// NewRosterRepo constructs a RosterRepo with the given DB handle.
func NewRosterRepo(db *sql.DB) *RosterRepo {
	return &RosterRepo{db: db}
}

// Replace stores r and makes it the current roster in one transaction.  A
// failed insert rolls back and the previous roster survives.
func (r *RosterRepo) Replace(ctx context.Context, ro *model.Roster) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	if _, err := tx.ExecContext(ctx, deleteRosters); err != nil {
		return fmt.Errorf("drop previous roster: %w", err)
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO rosters (id, is_current, created_at) VALUES (?, 1, ?)`,
		ro.ID, ro.CreatedAt); err != nil {
		return fmt.Errorf("insert roster: %w", err)
	}
	if err := insertPassengersTx(ctx, tx, ro.ID, ro.Passengers); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	committed = true
	return nil
}

// insertPassengersTx inserts all passengers of a roster in a single statement.
func insertPassengersTx(ctx context.Context, tx *sql.Tx, rosterID string, passengers []model.Passenger) error {
	if len(passengers) == 0 {
		return nil
	}
	var b strings.Builder
	b.WriteString(`INSERT INTO roster_passengers
		(roster_id, position, order_number, name, payment_status, location, seat_number, is_temporary) VALUES `)
	args := make([]interface{}, 0, len(passengers)*8)
	for i, p := range passengers {
		if i > 0 {
			b.WriteString(",")
		}
		b.WriteString("(?, ?, ?, ?, ?, ?, ?, ?)")
		var seat sql.NullInt64
		if p.SeatNumber != nil {
			seat = sql.NullInt64{Int64: int64(*p.SeatNumber), Valid: true}
		}
		args = append(args, rosterID, i, p.OrderNumber, p.Name, string(p.PaymentStatus), string(p.Location), seat, p.IsTemporaryAssignment)
	}
	if _, err := tx.ExecContext(ctx, b.String(), args...); err != nil {
		return fmt.Errorf("insert passengers: %w", err)
	}
	return nil
}

// Current loads the current roster with its passengers in input order.
func (r *RosterRepo) Current(ctx context.Context) (*model.Roster, error) {
	const q = `SELECT id, created_at FROM rosters WHERE is_current = 1 ORDER BY created_at DESC LIMIT 1`
	var ro model.Roster
	if err := r.db.QueryRowContext(ctx, q).Scan(&ro.ID, &ro.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRosterNotFound
		}
		return nil, err
	}

	const pq = `SELECT order_number, name, payment_status, location, seat_number, is_temporary
	            FROM roster_passengers
	            WHERE roster_id = ?
	            ORDER BY position`
	rows, err := r.db.QueryContext(ctx, pq, ro.ID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ro.Passengers = []model.Passenger{}
	for rows.Next() {
		var (
			p      model.Passenger
			status string
			loc    string
			seat   sql.NullInt64
		)
		if err := rows.Scan(&p.OrderNumber, &p.Name, &status, &loc, &seat, &p.IsTemporaryAssignment); err != nil {
			return nil, err
		}
		p.PaymentStatus = model.PaymentStatus(status)
		p.Location = model.Location(loc)
		if seat.Valid {
			p.SeatNumber = model.SeatPtr(int(seat.Int64))
		}
		ro.Passengers = append(ro.Passengers, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &ro, nil
}

// Clear deletes the current roster.  Clearing when nothing is stored is
// not an error.
func (r *RosterRepo) Clear(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, deleteRosters)
	return err
}
