package usecase

// Exports for testing

var (
	BuildObjectionListCondition   = buildObjectionListCondition
	BuildQuoteListCondition       = buildQuoteListCondition
	BuildObjectionSearchCondition = buildObjectionSearchCondition
	BuildQuoteSearchCondition     = buildQuoteSearchCondition
)

const (
	MaxListResults   = maxListResults
	MaxSearchResults = maxSearchResults
)
