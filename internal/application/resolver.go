package application

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/bnema/finger-cli/internal/ports"
)

const (
	nameSegmentSep = "-"
	nameWordSep    = " "
)

type nameEntry struct {
	realName string
	login    string
}

// NameIndex pairs every account's real name with its login, in directory order.
type NameIndex struct {
	entries []nameEntry
}

func BuildNameIndex(ctx context.Context, directory ports.AccountDirectory) (NameIndex, error) {
	var index NameIndex
	for account, err := range directory.Accounts(ctx) {
		if err != nil {
			return NameIndex{}, fmt.Errorf("index account names: %w", err)
		}

		realName := account.RealName()
		if realName == "" {
			continue
		}
		index.entries = append(index.entries, nameEntry{realName: realName, login: account.Login})
	}

	return index, nil
}

func (idx NameIndex) Len() int {
	return len(idx.entries)
}

// Match returns the logins whose real name contains query as a whole word.
// Each entry contributes at most once.
func (idx NameIndex) Match(query string) []string {
	needle := strings.ReplaceAll(query, " ", "")
	if needle == "" {
		return nil
	}

	var logins []string
	for _, entry := range idx.entries {
		if realNameMatches(entry.realName, needle) {
			logins = append(logins, entry.login)
		}
	}

	return logins
}

// realNameMatches splits "Smith - John Q Public" into "-" segments and each
// segment into words, comparing words to needle case-insensitively.
func realNameMatches(realName, needle string) bool {
	for _, segment := range strings.Split(realName, nameSegmentSep) {
		for _, word := range strings.Split(segment, nameWordSep) {
			if word == "" {
				continue
			}
			if strings.EqualFold(word, needle) {
				return true
			}
		}
	}

	return false
}

// Resolve maps a query token to candidate logins: exact login matches first,
// then real-name matches when matchNames is set.
func (s *Service) Resolve(ctx context.Context, query string, index NameIndex, matchNames bool) ([]Candidate, error) {
	var candidates []Candidate
	for account, err := range s.directory.Accounts(ctx) {
		if err != nil {
			return nil, fmt.Errorf("scan accounts for %q: %w", query, err)
		}
		if strings.EqualFold(account.Login, query) {
			candidates = append(candidates, Candidate{Login: account.Login})
		}
	}

	if !matchNames {
		return candidates, nil
	}

	for _, login := range index.Match(query) {
		candidates = append(candidates, Candidate{Login: login, Fuzzy: true})
	}

	return candidates, nil
}

func truncateQuery(query string, limit int) string {
	if limit <= 0 || len(query) <= limit {
		return query
	}

	// Never split a multi-byte rune.
	for limit > 0 && !utf8.RuneStart(query[limit]) {
		limit--
	}

	return query[:limit]
}
