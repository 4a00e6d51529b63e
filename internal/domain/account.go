package domain

import "strings"

type Account struct {
	Login string
	UID   int
	GID   int
	// Gecos is the raw comma-delimited display field: real name, office, office phone, home phone.
	Gecos string
	Home  string
	Shell string
}

type GecosInfo struct {
	RealName    string
	Office      string
	OfficePhone string
	HomePhone   string
}

// Info splits the GECOS field positionally. Missing trailing fields are empty.
func (a Account) Info() GecosInfo {
	fields := strings.SplitN(a.Gecos, ",", 5)
	field := func(i int) string {
		if i >= len(fields) {
			return ""
		}
		return strings.TrimSpace(fields[i])
	}

	return GecosInfo{
		RealName:    field(0),
		Office:      field(1),
		OfficePhone: field(2),
		HomePhone:   field(3),
	}
}

// RealName returns the first GECOS field, the part fuzzy matching runs against.
func (a Account) RealName() string {
	return a.Info().RealName
}
