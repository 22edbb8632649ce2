package repositories

// CasewardDbRepository is the single receiver for all queries against the
// caseward database; methods are grouped per entity in their own files.
type CasewardDbRepository struct{}

func NewCasewardDbRepository() *CasewardDbRepository {
	return &CasewardDbRepository{}
}
