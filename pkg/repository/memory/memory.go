package memory

import (
	"github.com/rebutly/rebutly/pkg/domain/interfaces"
)

// Memory is an in-memory Repository for development and tests.
type Memory struct {
	objection *objectionRepository
	quote     *quoteRepository
	status    *statusRepository
}

var _ interfaces.Repository = &Memory{}

func New() *Memory {
	return &Memory{
		objection: newObjectionRepository(),
		quote:     newQuoteRepository(),
		status:    newStatusRepository(),
	}
}

func (m *Memory) Objection() interfaces.ObjectionRepository {
	return m.objection
}

func (m *Memory) Quote() interfaces.QuoteRepository {
	return m.quote
}

func (m *Memory) Status() interfaces.StatusRepository {
	return m.status
}

func (m *Memory) Close() error {
	return nil
}
