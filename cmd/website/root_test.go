package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"

	"github.com/gogetwell/website/domain/features"
	"github.com/gogetwell/website/internal/version"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRootCommand_Subcommands(t *testing.T) {
	cmd := newRootCommand()
	require.NotNil(t, cmd)

	for _, name := range []string{"serve", "migrate", "content", "version"} {
		sub, _, err := cmd.Find([]string{name})
		require.NoError(t, err, name)
		assert.Equal(t, name, sub.Name())
	}

	migrate, _, err := cmd.Find([]string{"migrate"})
	require.NoError(t, err)
	var subs []string
	for _, c := range migrate.Commands() {
		subs = append(subs, c.Name())
	}
	assert.ElementsMatch(t, []string{"up", "down", "status", "version"}, subs)
}

func TestRootCommand_Execution(t *testing.T) {
	_, err := run(t)
	assert.NoError(t, err, "root command without arguments prints help")
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "Version:    "+version.Version)
	assert.Contains(t, out, "Go version:")
}

func TestContentCommand(t *testing.T) {
	out, err := run(t, "content")
	require.NoError(t, err)

	assert.Contains(t, out, "Features:")
	assert.Contains(t, out, features.All.Label())
	assert.Contains(t, out, "FAQ entries:")
}

func TestMigrateWithoutDatabase(t *testing.T) {
	t.Setenv("POSTGRES_HOST", "")

	_, err := run(t, "migrate", "version")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database is not configured")
}

func TestServeRejectsArgs(t *testing.T) {
	_, err := run(t, "serve", "extra")
	assert.Error(t, err)
}

func TestAppGraph(t *testing.T) {
	assert.NoError(t, fx.ValidateApp(appOptions()))
}
