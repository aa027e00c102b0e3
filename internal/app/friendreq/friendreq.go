/*
Package friendreq contains the friend request model, its status lifecycle, and
the PostgreSQL-backed store.

A request starts PENDING and moves to ACCEPTED or REJECTED exactly once, by
its receiver. The sender may cancel (delete) a request in any status. At most
one request exists per unordered user pair, in either direction and regardless
of status; the store enforces this with a unique index over
(LEAST(sender_id, receiver_id), GREATEST(sender_id, receiver_id)).
*/
package friendreq

import (
	"strconv"
	"time"
)

// Status is the lifecycle state of a friend request.
type Status string

const (
	// StatusPending is the initial status of every friend request.
	StatusPending Status = "PENDING"

	// StatusAccepted marks a request accepted by its receiver. Terminal for accept/reject.
	StatusAccepted Status = "ACCEPTED"

	// StatusRejected marks a request rejected by its receiver. Terminal for accept/reject.
	StatusRejected Status = "REJECTED"
)

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusAccepted, StatusRejected:
		return true
	}
	return false
}

// Terminal reports whether the accept/reject transition is no longer available.
func (s Status) Terminal() bool {
	return s == StatusAccepted || s == StatusRejected
}

// Date wraps time.Time to serialize as the ISO-8601 calendar date ("2006-01-02"),
// which is the wire format clients expect for sentDate.
type Date time.Time

const dateLayout = "2006-01-02"

// MarshalJSON renders the date as a quoted YYYY-MM-DD string.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(time.Time(d).Format(dateLayout))), nil
}

// UnmarshalJSON parses a quoted YYYY-MM-DD string.
func (d *Date) UnmarshalJSON(data []byte) error {
	raw, err := strconv.Unquote(string(data))
	if err != nil {
		return err
	}

	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		return err
	}

	*d = Date(t)
	return nil
}

// Request represents one friend request between two users.
type Request struct {
	// ID is the unique identifier of the request.
	ID int64 `json:"id"`

	// SenderID references the user who sent the request.
	SenderID int64 `json:"senderId"`

	// ReceiverID references the user the request was sent to.
	ReceiverID int64 `json:"receiverId"`

	// SentDate is the creation date. Set once, immutable.
	SentDate Date `json:"sentDate"`

	// Status is the current lifecycle state.
	Status Status `json:"status"`
}

// Pending reports whether the request can still be accepted or rejected.
func (r Request) Pending() bool {
	return r.Status == StatusPending
}
