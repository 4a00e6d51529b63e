package cmd

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bnema/finger-cli/internal/application"
	"github.com/bnema/finger-cli/internal/domain"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupSpinnerShowsLabelWhileRunning(t *testing.T) {
	var output bytes.Buffer
	var results fingerResults

	err := runLookupSpinner(context.Background(), &output, nil, func(ctx context.Context, emit application.EmitFunc) error {
		time.Sleep(200 * time.Millisecond)
		return emit(application.Entry{Report: &domain.Report{Login: "jdoe"}})
	}, results.add)
	require.NoError(t, err)
	assert.Contains(t, output.String(), lookupSpinnerLabel)
	require.Len(t, results.reports, 1)
	assert.Equal(t, "jdoe", results.reports[0].Login)
}

func TestLookupSpinnerReturnsLookupError(t *testing.T) {
	var output bytes.Buffer
	var results fingerResults

	err := runLookupSpinner(context.Background(), &output, nil, func(ctx context.Context, emit application.EmitFunc) error {
		return errors.New("getent failed")
	}, results.add)
	require.Error(t, err)
	assert.ErrorContains(t, err, "getent failed")
}

func TestLookupSpinnerPrintsLogLinesThroughProgram(t *testing.T) {
	var output, logs bytes.Buffer
	var results fingerResults
	logger := newLogger(&logs, logrus.InfoLevel, false)

	err := runLookupSpinner(context.Background(), &output, logger, func(ctx context.Context, emit application.EmitFunc) error {
		logger.WithField("login", "jdoe").Warn("user limit reached, skipping")
		time.Sleep(200 * time.Millisecond)
		return nil
	}, results.add)
	require.NoError(t, err)

	assert.Contains(t, output.String(), `level=warning msg="user limit reached, skipping" login=jdoe`)
	assert.Empty(t, logs.String())

	logger.Warn("after lookup")
	assert.Contains(t, logs.String(), `msg="after lookup"`)
}

func TestLookupSpinnerCountsEntries(t *testing.T) {
	m := newLookupSpinnerModel(nil)
	assert.Contains(t, m.View(), lookupSpinnerLabel)
	assert.NotContains(t, m.View(), "found")

	for _, msg := range []lookupEntryMsg{{}, {}, {missing: true}} {
		next, cmd := m.Update(msg)
		assert.Nil(t, cmd)
		m = next.(lookupSpinnerModel)
	}
	assert.Contains(t, m.View(), lookupSpinnerLabel+" 2 found, 1 not found")

	_, cmd := m.Update(lookupLogMsg("level=warning msg=x"))
	assert.NotNil(t, cmd)

	next, _ := m.Update(lookupDoneMsg{})
	assert.Empty(t, next.View())
}
