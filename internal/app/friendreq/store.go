package friendreq

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"mmserver/internal/app/db"
)

// Store error sentinels. Callers classify failures with errors.Is; anything
// else coming out of the store is a database availability problem.
var (
	// ErrNotFound indicates that no friend request matched the lookup.
	ErrNotFound = errors.New("friend request not found")

	// ErrDuplicatePair indicates that a request already exists between the two
	// users, in either direction.
	ErrDuplicatePair = errors.New("friend request already exists between the users")

	// ErrUnknownUser indicates that the sender or receiver does not reference
	// an existing user.
	ErrUnknownUser = errors.New("friend request references unknown user")
)

const requestColumns = "id, sender_id, receiver_id, sent_date, status"

// Store provides access to friend request rows in PostgreSQL.
type Store struct {
	pool *pgxpool.Pool
}

// NewStore creates a friend request store backed by the given connection pool.
func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

func scanRequest(row pgx.Row) (Request, error) {
	var r Request
	var sentDate time.Time

	if err := row.Scan(&r.ID, &r.SenderID, &r.ReceiverID, &sentDate, &r.Status); err != nil {
		return Request{}, err
	}

	r.SentDate = Date(sentDate)
	return r, nil
}

// GetByID fetches the friend request with the given identifier.
func (s *Store) GetByID(ctx context.Context, id int64) (Request, error) {
	q := fmt.Sprintf(`SELECT %s FROM friend_requests WHERE id = $1`, requestColumns)

	r, err := scanRequest(s.pool.QueryRow(ctx, q, id))
	if err != nil {
		if db.IsNotFound(err) {
			return Request{}, ErrNotFound
		}
		return Request{}, fmt.Errorf("get friend request: %w", err)
	}

	return r, nil
}

// FindBetween fetches the request between the two users in either direction,
// regardless of status. ErrNotFound means no request exists for the pair.
func (s *Store) FindBetween(ctx context.Context, userA, userB int64) (Request, error) {
	q := fmt.Sprintf(`
		SELECT %s FROM friend_requests
		WHERE (sender_id = $1 AND receiver_id = $2)
		   OR (sender_id = $2 AND receiver_id = $1)`, requestColumns)

	r, err := scanRequest(s.pool.QueryRow(ctx, q, userA, userB))
	if err != nil {
		if db.IsNotFound(err) {
			return Request{}, ErrNotFound
		}
		return Request{}, fmt.Errorf("find friend request between users: %w", err)
	}

	return r, nil
}

// FindPendingBetween is FindBetween restricted to PENDING requests.
func (s *Store) FindPendingBetween(ctx context.Context, userA, userB int64) (Request, error) {
	q := fmt.Sprintf(`
		SELECT %s FROM friend_requests
		WHERE status = $3
		  AND ((sender_id = $1 AND receiver_id = $2)
		    OR (sender_id = $2 AND receiver_id = $1))`, requestColumns)

	r, err := scanRequest(s.pool.QueryRow(ctx, q, userA, userB, StatusPending))
	if err != nil {
		if db.IsNotFound(err) {
			return Request{}, ErrNotFound
		}
		return Request{}, fmt.Errorf("find pending friend request between users: %w", err)
	}

	return r, nil
}

// Create inserts a new PENDING request. The unordered-pair unique index makes
// the duplicate check atomic with the insert, so a concurrent create of the
// reverse direction surfaces as ErrDuplicatePair rather than a second row.
func (s *Store) Create(ctx context.Context, senderID, receiverID int64) (Request, error) {
	q := fmt.Sprintf(`
		INSERT INTO friend_requests (sender_id, receiver_id, status)
		VALUES ($1, $2, $3)
		RETURNING %s`, requestColumns)

	r, err := scanRequest(s.pool.QueryRow(ctx, q, senderID, receiverID, StatusPending))
	if err != nil {
		if db.IsUniqueViolation(err) {
			return Request{}, ErrDuplicatePair
		}
		if db.IsForeignKeyViolation(err) {
			return Request{}, ErrUnknownUser
		}
		return Request{}, fmt.Errorf("create friend request: %w", err)
	}

	return r, nil
}

// SetStatusIfPending performs the PENDING -> status transition as a single
// conditional update. ErrNotFound means the row was no longer PENDING (or was
// deleted) by the time the update ran; no other field is modified.
func (s *Store) SetStatusIfPending(ctx context.Context, id int64, status Status) (Request, error) {
	q := fmt.Sprintf(`
		UPDATE friend_requests
		SET status = $2
		WHERE id = $1 AND status = $3
		RETURNING %s`, requestColumns)

	r, err := scanRequest(s.pool.QueryRow(ctx, q, id, status, StatusPending))
	if err != nil {
		if db.IsNotFound(err) {
			return Request{}, ErrNotFound
		}
		return Request{}, fmt.Errorf("update friend request status: %w", err)
	}

	return r, nil
}

// Delete removes the request and returns its prior values.
func (s *Store) Delete(ctx context.Context, id int64) (Request, error) {
	q := fmt.Sprintf(`DELETE FROM friend_requests WHERE id = $1 RETURNING %s`, requestColumns)

	r, err := scanRequest(s.pool.QueryRow(ctx, q, id))
	if err != nil {
		if db.IsNotFound(err) {
			return Request{}, ErrNotFound
		}
		return Request{}, fmt.Errorf("delete friend request: %w", err)
	}

	return r, nil
}

// ListPendingBySender returns all PENDING requests sent by the user.
func (s *Store) ListPendingBySender(ctx context.Context, senderID int64) ([]Request, error) {
	return s.listPending(ctx, "sender_id", senderID)
}

// ListPendingByReceiver returns all PENDING requests addressed to the user.
func (s *Store) ListPendingByReceiver(ctx context.Context, receiverID int64) ([]Request, error) {
	return s.listPending(ctx, "receiver_id", receiverID)
}

func (s *Store) listPending(ctx context.Context, column string, userID int64) ([]Request, error) {
	q := fmt.Sprintf(`
		SELECT %s FROM friend_requests
		WHERE %s = $1 AND status = $2
		ORDER BY id`, requestColumns, column)

	rows, err := s.pool.Query(ctx, q, userID, StatusPending)
	if err != nil {
		return nil, fmt.Errorf("list pending friend requests: %w", err)
	}
	defer rows.Close()

	requests := []Request{}
	for rows.Next() {
		r, err := scanRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("scan friend request row: %w", err)
		}
		requests = append(requests, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list pending friend requests: %w", err)
	}

	return requests, nil
}
