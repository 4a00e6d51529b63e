package application

import (
	"context"
	"testing"

	"github.com/bnema/finger-cli/internal/domain"
	"github.com/bnema/finger-cli/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRealNameMatches(t *testing.T) {
	tests := []struct {
		name     string
		realName string
		needle   string
		want     bool
	}{
		{name: "word in second segment", realName: "Smith - John Q Public", needle: "john", want: true},
		{name: "word in first segment", realName: "Smith - John Q Public", needle: "SMITH", want: true},
		{name: "prefix is not a word", realName: "Al Johnson", needle: "john", want: false},
		{name: "segment without spaces", realName: "Anne-Marie Curie", needle: "marie", want: true},
		{name: "whole name never matches with spaces", realName: "Jane Doe", needle: "Jane Doe", want: false},
		{name: "joined words do not match", realName: "Jane Doe", needle: "janedoe", want: false},
		{name: "double spaces tolerated", realName: "Jane  Doe", needle: "doe", want: true},
		{name: "empty real name", realName: "", needle: "jane", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, realNameMatches(tt.realName, tt.needle))
		})
	}
}

func TestBuildNameIndexSkipsEmptyRealNamesWithoutShiftingLogins(t *testing.T) {
	directory := mocks.NewMockAccountDirectory(t)
	directory.EXPECT().Accounts(mock.Anything).Return(accountsSeq(
		domain.Account{Login: "root", Gecos: "root"},
		domain.Account{Login: "nobody", Gecos: ""},
		domain.Account{Login: "svc", Gecos: ",Lab,1234"},
		domain.Account{Login: "jqp", Gecos: "Smith - John Q Public"},
	))

	index, err := BuildNameIndex(context.Background(), directory)
	require.NoError(t, err)

	assert.Equal(t, 2, index.Len())
	assert.Equal(t, []string{"jqp"}, index.Match("john"))
	assert.Equal(t, []string{"root"}, index.Match("ROOT"))
	assert.Nil(t, index.Match("   "))
}

func TestResolveListsExactMatchesBeforeNameMatches(t *testing.T) {
	f := newFixture(t, jqp, john)
	index, err := BuildNameIndex(context.Background(), f.directory)
	require.NoError(t, err)

	candidates, err := f.service.Resolve(context.Background(), "John", index, true)
	require.NoError(t, err)
	assert.Equal(t, []Candidate{
		{Login: "john"},
		{Login: "jqp", Fuzzy: true},
		{Login: "john", Fuzzy: true},
	}, candidates)

	candidates, err = f.service.Resolve(context.Background(), "John", index, false)
	require.NoError(t, err)
	assert.Equal(t, []Candidate{{Login: "john"}}, candidates)
}

func TestTruncateQuery(t *testing.T) {
	assert.Equal(t, "abc", truncateQuery("abcdef", 3))
	assert.Equal(t, "abc", truncateQuery("abc", 31))
	assert.Equal(t, "abcdef", truncateQuery("abcdef", 0))
	assert.Equal(t, "jos", truncateQuery("josé", 4))
}
