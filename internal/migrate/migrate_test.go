package migrate

import (
	"context"
	"io/fs"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogetwell/website/migrations"
)

func TestNewMigratorWithoutDatabase(t *testing.T) {
	m := NewMigrator(nil, slog.New(slog.DiscardHandler))
	assert.Nil(t, m)
	assert.ErrorIs(t, m.Up(context.Background()), ErrNoDatabase)

	_, err := m.Version(context.Background())
	assert.ErrorIs(t, err, ErrNoDatabase)
}

func TestEmbeddedMigrationsAreGooseFiles(t *testing.T) {
	files, err := fs.Glob(migrations.FS, "*.sql")
	require.NoError(t, err)
	require.NotEmpty(t, files)

	for _, name := range files {
		body, err := fs.ReadFile(migrations.FS, name)
		require.NoError(t, err)
		assert.Contains(t, string(body), "-- +goose Up", name)
		assert.Contains(t, string(body), "-- +goose Down", name)
		assert.True(t, strings.HasPrefix(name, "0"), name)
	}
}
