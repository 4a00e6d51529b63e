package structured

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/bnema/finger-cli/internal/domain"
	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reports() []domain.Report {
	return []domain.Report{
		{
			Login:       "jdoe",
			RealName:    "Jane Doe",
			OfficePhone: "555-123-4567",
			Home:        "/home/jdoe",
			Shell:       "/bin/bash",
			Terminal:    "pts/1",
			Host:        "10.0.0.5",
			Idle:        "2 minutes 5 seconds idle",
			LoginTime:   "Saturday, 14 February 2026 08:30:00",
			Mail:        domain.NoMail,
			Plan:        "ship it\n",
			Writable:    true,
			LoggedIn:    true,
		},
	}
}

func TestWriteJSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := Write(&buf, reports(), []string{"ghost"}, Options{Format: FormatJSON, PersonalFiles: true})
	require.NoError(t, err)

	var payload map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &payload))
	assert.EqualValues(t, 1, payload["version"])
	assert.Equal(t, []any{"ghost"}, payload["not_found"])

	users, ok := payload["users"].([]any)
	require.True(t, ok)
	require.Len(t, users, 1)

	user := users[0].(map[string]any)
	assert.Equal(t, "jdoe", user["login"])
	assert.Equal(t, "555-123-4567", user["office_phone"])
	assert.NotContains(t, user, "office")

	session := user["session"].(map[string]any)
	assert.Equal(t, true, session["logged_in"])
	assert.Equal(t, "pts/1", session["terminal"])

	files := user["files"].(map[string]any)
	assert.Equal(t, "ship it\n", files["plan"])
}

func TestWriteJSONOmitsFilesWhenDisabled(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := Write(&buf, reports(), nil, Options{Format: FormatJSON})
	require.NoError(t, err)
	assert.NotContains(t, buf.String(), `"files"`)
	assert.NotContains(t, buf.String(), `"not_found"`)
}

func TestWriteJSONEmptyUsersIsAnArray(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, nil, []string{"ghost"}, Options{Format: FormatJSON}))
	assert.Contains(t, buf.String(), `"users": []`)
}

func TestWriteTOML(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := Write(&buf, reports(), []string{"ghost"}, Options{Format: FormatTOML, PersonalFiles: true})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "[[users]]")

	var doc documentSchema
	require.NoError(t, toml.Unmarshal(buf.Bytes(), &doc))
	require.Len(t, doc.Users, 1)
	assert.Equal(t, "jdoe", doc.Users[0].Login)
	assert.Equal(t, "10.0.0.5", doc.Users[0].Session.Host)
	assert.Equal(t, []string{"ghost"}, doc.NotFound)
}

func TestWriteRejectsUnknownFormat(t *testing.T) {
	t.Parallel()

	err := Write(&bytes.Buffer{}, reports(), nil, Options{Format: "xml"})
	require.Error(t, err)
}
