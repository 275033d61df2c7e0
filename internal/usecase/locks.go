package usecase

import "sync"

// keyedMutex serializes read-modify-write sequences on one progress
// record or one prize. Locks are never released from the map: the key
// space is bounded by active (user, program) pairs.
type keyedMutex struct {
	mus sync.Map
}

func (km *keyedMutex) Lock(key string) *sync.Mutex {
	m, _ := km.mus.LoadOrStore(key, &sync.Mutex{})
	mu := m.(*sync.Mutex)
	mu.Lock()
	return mu
}

func progressKey(userID, programID string) string {
	return userID + ":" + programID
}

func prizeKey(programID, prizeID string) string {
	return "prize:" + programID + ":" + prizeID
}
