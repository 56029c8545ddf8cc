// Package result provides helpers shared by detection result producers.
package result

import "sync"

// IDGenerator is a struct to hold a counter for generating the next
// incremental ID number
type IDGenerator struct {
	id int64
	sync.Mutex
}

// NewIDGenerator returns an IDGenerator starting from zero
func NewIDGenerator() *IDGenerator {
	return &IDGenerator{}
}

// GetNext returns the next incremental number, the first call returns 1
func (id *IDGenerator) GetNext() int64 {
	id.Lock()
	defer id.Unlock()
	id.id++
	return id.id
}

// Reset sets the counter back to zero
func (id *IDGenerator) Reset() {
	id.Lock()
	defer id.Unlock()
	id.id = 0
}
