package interfaces

// Repository defines the interface for data persistence
type Repository interface {
	Objection() ObjectionRepository
	Quote() QuoteRepository
	Status() StatusRepository

	Close() error
}
