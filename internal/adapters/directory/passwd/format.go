package passwd

import (
	"strconv"
	"strings"

	"github.com/bnema/finger-cli/internal/domain"
)

const fieldCount = 7

// ParseLine decodes one "login:x:uid:gid:gecos:home:shell" record. Blank lines,
// comments and NIS compat entries are reported as not ok.
func ParseLine(line string) (domain.Account, bool) {
	line = strings.TrimRight(line, "\r")
	if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "+") || strings.HasPrefix(line, "-") {
		return domain.Account{}, false
	}

	parts := strings.SplitN(line, ":", fieldCount)
	if len(parts) < fieldCount || parts[0] == "" {
		return domain.Account{}, false
	}

	uid, _ := strconv.Atoi(parts[2])
	gid, _ := strconv.Atoi(parts[3])

	return domain.Account{
		Login: parts[0],
		UID:   uid,
		GID:   gid,
		Gecos: parts[4],
		Home:  parts[5],
		Shell: parts[6],
	}, true
}
