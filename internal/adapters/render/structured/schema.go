package structured

import "github.com/bnema/finger-cli/internal/domain"

const currentSchemaVersion = 1

type documentSchema struct {
	Version  int          `json:"version" toml:"version"`
	Users    []userSchema `json:"users" toml:"users"`
	NotFound []string     `json:"not_found,omitempty" toml:"not_found,omitempty"`
}

type userSchema struct {
	Login       string         `json:"login" toml:"login"`
	Name        string         `json:"name" toml:"name"`
	Office      string         `json:"office,omitempty" toml:"office,omitempty"`
	OfficePhone string         `json:"office_phone,omitempty" toml:"office_phone,omitempty"`
	HomePhone   string         `json:"home_phone,omitempty" toml:"home_phone,omitempty"`
	Directory   string         `json:"directory" toml:"directory"`
	Shell       string         `json:"shell" toml:"shell"`
	Session     sessionSchema  `json:"session" toml:"session"`
	Mail        string         `json:"mail" toml:"mail"`
	Files       *personalFiles `json:"files,omitempty" toml:"files,omitempty"`
}

type sessionSchema struct {
	LoggedIn  bool   `json:"logged_in" toml:"logged_in"`
	Terminal  string `json:"terminal" toml:"terminal"`
	Host      string `json:"host,omitempty" toml:"host,omitempty"`
	LoginTime string `json:"login_time" toml:"login_time"`
	Idle      string `json:"idle" toml:"idle"`
	Writable  bool   `json:"writable" toml:"writable"`
}

type personalFiles struct {
	Plan    string `json:"plan,omitempty" toml:"plan,omitempty"`
	Project string `json:"project,omitempty" toml:"project,omitempty"`
	PGPKey  string `json:"pgp_key,omitempty" toml:"pgp_key,omitempty"`
}

func newDocument(reports []domain.Report, missing []string, withFiles bool) documentSchema {
	doc := documentSchema{
		Version:  currentSchemaVersion,
		Users:    make([]userSchema, 0, len(reports)),
		NotFound: missing,
	}

	for _, r := range reports {
		user := userSchema{
			Login:       r.Login,
			Name:        r.RealName,
			Office:      r.Office,
			OfficePhone: r.OfficePhone,
			HomePhone:   r.HomePhone,
			Directory:   r.Home,
			Shell:       r.Shell,
			Session: sessionSchema{
				LoggedIn:  r.LoggedIn,
				Terminal:  r.Terminal,
				Host:      r.Host,
				LoginTime: r.LoginTime,
				Idle:      r.Idle,
				Writable:  r.Writable,
			},
			Mail: r.Mail,
		}
		if withFiles {
			user.Files = &personalFiles{Plan: r.Plan, Project: r.Project, PGPKey: r.PGPKey}
		}
		doc.Users = append(doc.Users, user)
	}

	return doc
}
