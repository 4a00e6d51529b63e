package domain

// Report is the merged view of one account.
type Report struct {
	Login       string
	RealName    string
	Office      string
	OfficePhone string
	HomePhone   string
	Home        string
	Shell       string
	Terminal    string
	Host        string
	Idle        string
	LoginTime   string
	Mail        string
	Plan        string
	Project     string
	PGPKey      string
	Writable    bool
	LoggedIn    bool
}

// WriteDeniedMarker reports whether the short layout flags the terminal column.
// It requires both a denied write probe and no recorded login.
func (r Report) WriteDeniedMarker() bool {
	return !r.Writable && !r.LoggedIn
}
