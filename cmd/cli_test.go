package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFingerLongOutputForLogin(t *testing.T) {
	root := writeSystemFixture(t)

	stdout, stderr, err := executeCLI(t, root, "jdoe")
	require.NoError(t, err)
	assert.Empty(t, stderr)
	assert.Contains(t, stdout, fmt.Sprintf("Login: %-30s Name: %s\n", "jdoe", "Jane Doe"))
	assert.Contains(t, stdout, fmt.Sprintf("Office: %-28s Office Phone: %-15s Home Phone: %s\n", "Room 12", "555-123-4567", "x1234"))
	assert.Contains(t, stdout, "Never logged in.\n")
	assert.Contains(t, stdout, "Mail: Mail last read ")
	assert.Contains(t, stdout, "Plan: ship it\n")
	assert.Contains(t, stdout, "No Project.\n")
	assert.NotContains(t, stdout, "\x1b[")
}

func TestFingerMatchesRealNames(t *testing.T) {
	root := writeSystemFixture(t)

	stdout, _, err := executeCLI(t, root, "john")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Login: john ")
	assert.Contains(t, stdout, "Login: jqp ")
	assert.Less(t, strings.Index(stdout, "Login: john "), strings.Index(stdout, "Login: jqp "))
}

func TestFingerReportsEachUserOnce(t *testing.T) {
	root := writeSystemFixture(t)

	stdout, _, err := executeCLI(t, root, "jdoe", "Jane", "JDOE")
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(stdout, "Login: jdoe "))
}

func TestFingerSoftMissGoesToStderr(t *testing.T) {
	root := writeSystemFixture(t)

	stdout, stderr, err := executeCLI(t, root, "ghost", "jdoe")
	require.NoError(t, err)
	assert.Equal(t, "User not found: ghost\n", stderr)
	assert.Contains(t, stdout, "Login: jdoe ")
}

func TestFingerNoMatchFailsOnUnknownUser(t *testing.T) {
	root := writeSystemFixture(t)

	stdout, _, err := executeCLI(t, root, "-m", "jdoe", "Jane")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `user "Jane": user not found`)
	assert.Contains(t, stdout, "Login: jdoe ")
}

func TestFingerShortOutput(t *testing.T) {
	root := writeSystemFixture(t)

	stdout, _, err := executeCLI(t, root, "-s", "jdoe", "jqp")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(stdout, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, fmt.Sprintf("%-10s %-15s %-15s %-15s %-15s %-15s %s", "Login", "Name", "Idle Time", "Login Time", "Office", "Office Phone", "Tty"), lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "jdoe       Jane Doe        *               never"))
	assert.True(t, strings.HasSuffix(lines[1], "unknown*"))
	assert.True(t, strings.HasPrefix(lines[2], "jqp        Smith - John Q Public"))
}

func TestFingerLastLayoutFlagWins(t *testing.T) {
	root := writeSystemFixture(t)

	stdout, _, err := executeCLI(t, root, "-s", "-l", "jdoe")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Login: jdoe ")

	stdout, _, err = executeCLI(t, root, "-l", "-s", "jdoe")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stdout, "Login      Name"))
}

func TestFingerCombinedShorthandFlags(t *testing.T) {
	root := writeSystemFixture(t)

	stdout, stderr, err := executeCLI(t, root, "-sm", "jdoe", "Jane")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "user not found")
	assert.True(t, strings.HasPrefix(stdout, "Login      Name"))
	assert.NotContains(t, stderr, "User not found: Jane")
}

func TestFingerNoPlanSuppressesPersonalFiles(t *testing.T) {
	root := writeSystemFixture(t)

	stdout, _, err := executeCLI(t, root, "-p", "jdoe")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Login: jdoe ")
	assert.NotContains(t, stdout, "Plan")
	assert.NotContains(t, stdout, "No Project.")
}

func TestFingerJSONOutput(t *testing.T) {
	root := writeSystemFixture(t)

	stdout, stderr, err := executeCLI(t, root, "--output", "json", "jdoe", "ghost")
	require.NoError(t, err)
	assert.Empty(t, stderr)
	assert.True(t, json.Valid([]byte(stdout)))
	assert.Contains(t, stdout, `"login": "jdoe"`)
	assert.Contains(t, stdout, `"not_found": [`)
	assert.Contains(t, stdout, `"plan": "ship it\n"`)
}

func TestFingerTOMLOutput(t *testing.T) {
	root := writeSystemFixture(t)

	stdout, _, err := executeCLI(t, root, "-o", "toml", "-p", "jqp")
	require.NoError(t, err)
	assert.Contains(t, stdout, "[[users]]")
	assert.Contains(t, stdout, "jqp")
	assert.NotContains(t, stdout, "[users.files]")
}

func TestFingerRejectsUnknownOutput(t *testing.T) {
	root := writeSystemFixture(t)

	_, _, err := executeCLI(t, root, "--output", "yaml", "jdoe")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid --output "yaml"`)
}

func TestFingerWithoutArgumentsAndNoSessionsPrintsNothing(t *testing.T) {
	root := writeSystemFixture(t)

	stdout, stderr, err := executeCLI(t, root)
	require.NoError(t, err)
	assert.Empty(t, stdout)
	assert.Empty(t, stderr)
}

func TestFingerVersionFlag(t *testing.T) {
	root := writeSystemFixture(t)

	stdout, _, err := executeCLI(t, root, "--version")
	require.NoError(t, err)
	assert.Equal(t, "finger dev\n", stdout)
}

func TestFingerRejectsInvalidConfig(t *testing.T) {
	root := writeSystemFixture(t)
	t.Setenv("FINGER_DIRECTORY_SOURCE", "ldap")

	_, _, err := executeCLI(t, root, "jdoe")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load config")
}

func TestFingerReadsConfigFile(t *testing.T) {
	root := writeSystemFixture(t)

	configPath := filepath.Join(root, "finger.toml")
	require.NoError(t, os.WriteFile(configPath, []byte("[limits]\nmax_users = 1\n"), 0o644))

	stdout, _, err := executeCLI(t, root, "--config", configPath, "john")
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(stdout, "Login: "))
}

func TestFingerDebugLogsToStderr(t *testing.T) {
	root := writeSystemFixture(t)

	_, stderr, err := executeCLI(t, root, "--debug", "jdoe")
	require.NoError(t, err)
	assert.Contains(t, stderr, "level=debug")
}

func executeCLI(t *testing.T, home string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("HOME", home)

	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

// writeSystemFixture builds a fake system tree under a temp root and points the
// FINGER_* settings at it.
func writeSystemFixture(t *testing.T) string {
	t.Helper()

	root := t.TempDir()
	for _, dir := range []string{"etc", "var/run", "var/mail", "dev/pts", "home/jdoe", "home/jqp", "home/john"} {
		require.NoError(t, os.MkdirAll(filepath.Join(root, dir), 0o755))
	}

	home := func(login string) string { return filepath.Join(root, "home", login) }
	passwd := strings.Join([]string{
		"root:x:0:0:root:/root:/bin/bash",
		fmt.Sprintf("jdoe:x:1000:1000:Jane Doe,Room 12,5551234567,1234:%s:/bin/bash", home("jdoe")),
		fmt.Sprintf("jqp:x:1001:1001:Smith - John Q Public,,15551234567:%s:/bin/zsh", home("jqp")),
		fmt.Sprintf("john:x:1002:1002:John Smith:%s:/bin/sh", home("john")),
		"",
	}, "\n")

	passwdPath := filepath.Join(root, "etc", "passwd")
	require.NoError(t, os.WriteFile(passwdPath, []byte(passwd), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(home("jdoe"), ".plan"), []byte("ship it\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "var", "mail", "jdoe"), []byte("From someone\n"), 0o600))

	t.Setenv("FINGER_DIRECTORY_SOURCE", "file")
	t.Setenv("FINGER_DIRECTORY_PASSWD_PATH", passwdPath)
	t.Setenv("FINGER_SESSIONS_VAR_ROOT", filepath.Join(root, "var"))
	t.Setenv("FINGER_PROBE_DEV_ROOT", filepath.Join(root, "dev"))
	t.Setenv("FINGER_PROBE_MAIL_ROOT", filepath.Join(root, "var", "mail"))

	return root
}
