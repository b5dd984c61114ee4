package repository

import (
	"sync"

	"sip-planner/domain"
)

// SIPRepositoryMemory is an in-memory implementation of SIPRepository.
type SIPRepositoryMemory struct {
	mu   sync.Mutex
	data []domain.SIPResult
}

// NewSIPRepositoryMemory creates a new in-memory projection repository.
func NewSIPRepositoryMemory() *SIPRepositoryMemory {
	return &SIPRepositoryMemory{
		data: []domain.SIPResult{},
	}
}

// Save stores the projection result in memory.
func (r *SIPRepositoryMemory) Save(
	input domain.SIPInput,
	result domain.SIPResult,
) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data = append(r.data, result)
	return nil
}

// Count returns how many projections have been stored.
func (r *SIPRepositoryMemory) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.data)
}
