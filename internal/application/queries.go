package application

import "github.com/bnema/finger-cli/internal/domain"

// Entry is one unit of output, in the order it was produced: either a report
// or a query that resolved to nobody.
type Entry struct {
	Report  *domain.Report
	Missing string
}

type EmitFunc func(Entry) error

type Candidate struct {
	Login string
	Fuzzy bool
}
