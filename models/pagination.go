package models

// HistoryCursor restarts a history read strictly after AfterSeq. The zero
// value starts from the beginning of the ledger.
type HistoryCursor struct {
	AfterSeq int64
	Limit    int
}

const HistoryEventsPerPage = 50

func (c HistoryCursor) LimitOrDefault() int {
	if c.Limit <= 0 {
		return HistoryEventsPerPage
	}
	return c.Limit
}
