package capacity

import (
	"sync"

	"github.com/google/uuid"
)

// userLocks serializes allocation writes per (organization, user).
//
// sqlite cannot lock individual ledger rows for the duration of a
// transaction, so without this two concurrent requests could both pass the
// conflict check before either commits. The coordinator holds the lock from
// the in-transaction re-check until commit or rollback.
type userLocks struct {
	locks sync.Map
}

// lock acquires the mutex for the (organization, user) pair and returns
// the matching unlock function.
func (l *userLocks) lock(organizationID, userID uuid.UUID) func() {
	key := organizationID.String() + "/" + userID.String()

	mu, _ := l.locks.LoadOrStore(key, &sync.Mutex{})
	mutex := mu.(*sync.Mutex)
	mutex.Lock()

	return mutex.Unlock
}
