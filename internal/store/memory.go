package store

import (
	"context"
	"sync"

	"github.com/hospitech/fcproc/internal/model"
)

// Memory is an in-memory store for tests and local development.
type Memory struct {
	mu      sync.RWMutex
	reports map[string]*model.Report
	jobs    map[string]string
}

var _ ReportStore = (*Memory)(nil)
var _ JobStore = (*Memory)(nil)

func NewMemory() *Memory {
	return &Memory{
		reports: make(map[string]*model.Report),
		jobs:    make(map[string]string),
	}
}

func (m *Memory) PutIfAbsent(_ context.Context, report *model.Report) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.reports[report.JobID]; ok {
		return ErrDuplicate
	}
	cp := *report
	m.reports[report.JobID] = &cp
	return nil
}

func (m *Memory) FANumber(_ context.Context, jobID string) (*string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	fa, ok := m.jobs[jobID]
	if !ok {
		return nil, nil
	}
	return &fa, nil
}

// SetFANumber registers the FA number returned for a job id.
func (m *Memory) SetFANumber(jobID, faNumber string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.jobs[jobID] = faNumber
}

// Report returns a copy of the stored report for a job id, or nil when absent.
func (m *Memory) Report(jobID string) *model.Report {
	m.mu.RLock()
	defer m.mu.RUnlock()

	r, ok := m.reports[jobID]
	if !ok {
		return nil
	}
	cp := *r
	return &cp
}

// Len reports how many reports have been stored.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.reports)
}
