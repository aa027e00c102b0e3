package social

import (
	"context"

	"mmserver/internal/app/friendreq"
	"mmserver/internal/app/user"
)

// fakeUsers is an in-memory UserDirectory that counts store accesses.
type fakeUsers struct {
	users map[int64]user.User
	calls int
}

func (f *fakeUsers) GetByEmail(_ context.Context, email string) (user.User, error) {
	f.calls++
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, user.ErrNotFound
}

func (f *fakeUsers) GetByID(_ context.Context, id int64) (user.User, error) {
	f.calls++
	if u, ok := f.users[id]; ok {
		return u, nil
	}
	return user.User{}, user.ErrNotFound
}

// fakeRequests is an in-memory RequestStore mirroring the semantics of the
// PostgreSQL store: unordered-pair uniqueness, conditional status updates,
// and foreign key checks against the known users.
type fakeRequests struct {
	users  *fakeUsers
	nextID int64
	reqs   map[int64]friendreq.Request
	calls  int
}

func newFakeRequests(users *fakeUsers) *fakeRequests {
	return &fakeRequests{
		users:  users,
		nextID: 1,
		reqs:   make(map[int64]friendreq.Request),
	}
}

func (f *fakeRequests) GetByID(_ context.Context, id int64) (friendreq.Request, error) {
	f.calls++
	if r, ok := f.reqs[id]; ok {
		return r, nil
	}
	return friendreq.Request{}, friendreq.ErrNotFound
}

func (f *fakeRequests) findBetween(userA, userB int64, pendingOnly bool) (friendreq.Request, error) {
	for _, r := range f.reqs {
		sameABPair := r.SenderID == userA && r.ReceiverID == userB
		sameBAPair := r.SenderID == userB && r.ReceiverID == userA
		if !sameABPair && !sameBAPair {
			continue
		}
		if pendingOnly && !r.Pending() {
			continue
		}
		return r, nil
	}
	return friendreq.Request{}, friendreq.ErrNotFound
}

func (f *fakeRequests) FindBetween(_ context.Context, userA, userB int64) (friendreq.Request, error) {
	f.calls++
	return f.findBetween(userA, userB, false)
}

func (f *fakeRequests) FindPendingBetween(_ context.Context, userA, userB int64) (friendreq.Request, error) {
	f.calls++
	return f.findBetween(userA, userB, true)
}

func (f *fakeRequests) Create(_ context.Context, senderID, receiverID int64) (friendreq.Request, error) {
	f.calls++

	if _, ok := f.users.users[receiverID]; !ok {
		return friendreq.Request{}, friendreq.ErrUnknownUser
	}

	if _, err := f.findBetween(senderID, receiverID, false); err == nil {
		return friendreq.Request{}, friendreq.ErrDuplicatePair
	}

	r := friendreq.Request{
		ID:         f.nextID,
		SenderID:   senderID,
		ReceiverID: receiverID,
		Status:     friendreq.StatusPending,
	}
	f.nextID++
	f.reqs[r.ID] = r
	return r, nil
}

func (f *fakeRequests) SetStatusIfPending(_ context.Context, id int64, status friendreq.Status) (friendreq.Request, error) {
	f.calls++

	r, ok := f.reqs[id]
	if !ok || !r.Pending() {
		return friendreq.Request{}, friendreq.ErrNotFound
	}

	r.Status = status
	f.reqs[id] = r
	return r, nil
}

func (f *fakeRequests) Delete(_ context.Context, id int64) (friendreq.Request, error) {
	f.calls++

	r, ok := f.reqs[id]
	if !ok {
		return friendreq.Request{}, friendreq.ErrNotFound
	}

	delete(f.reqs, id)
	return r, nil
}

func (f *fakeRequests) ListPendingBySender(_ context.Context, senderID int64) ([]friendreq.Request, error) {
	f.calls++

	out := []friendreq.Request{}
	for id := int64(1); id < f.nextID; id++ {
		if r, ok := f.reqs[id]; ok && r.SenderID == senderID && r.Pending() {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRequests) ListPendingByReceiver(_ context.Context, receiverID int64) ([]friendreq.Request, error) {
	f.calls++

	out := []friendreq.Request{}
	for id := int64(1); id < f.nextID; id++ {
		if r, ok := f.reqs[id]; ok && r.ReceiverID == receiverID && r.Pending() {
			out = append(out, r)
		}
	}
	return out, nil
}
