package models

// The backend talks to a single Postgres database; the schema indirection is
// kept so executors can assert they were built for the store they query.
type DatabaseSchema struct {
	Schema string
}

var DATABASE_CASEWARD_SCHEMA = DatabaseSchema{Schema: "public"}
