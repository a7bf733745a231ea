package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/advent/internal/adapters/config"
	"go.trai.ch/advent/internal/core/domain"
	"go.trai.ch/advent/internal/core/ports/mocks"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "advent.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	return path
}

func TestLoad_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	path := writeConfig(t, `
version: "1"
inputs: "puzzles/{{day}}.in"
cache: "tmp/answers.json"
jobs: 8
`)

	cfg, err := config.NewLoader(mocks.NewMockLogger(ctrl)).Load(path)
	require.NoError(t, err)

	assert.Equal(t, "puzzles/{{day}}.in", cfg.Inputs)
	assert.Equal(t, "tmp/answers.json", cfg.Cache)
	assert.Equal(t, 8, cfg.Jobs)
	assert.Equal(t, "puzzles/03.in", cfg.InputPath(3))
}

func TestLoad_PartialUsesDefaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	path := writeConfig(t, `cache: "answers.json"`)

	cfg, err := config.NewLoader(mocks.NewMockLogger(ctrl)).Load(path)
	require.NoError(t, err)

	defaults := domain.DefaultConfig()
	assert.Equal(t, defaults.Inputs, cfg.Inputs)
	assert.Equal(t, defaults.Jobs, cfg.Jobs)
	assert.Equal(t, "answers.json", cfg.Cache)
}

func TestLoad_MissingFile(t *testing.T) {
	ctrl := gomock.NewController(t)

	cfg, err := config.NewLoader(mocks.NewMockLogger(ctrl)).Load(filepath.Join(t.TempDir(), "advent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultConfig(), *cfg)
}

func TestLoad_InvalidYAML(t *testing.T) {
	ctrl := gomock.NewController(t)
	path := writeConfig(t, "jobs: [not a number")

	_, err := config.NewLoader(mocks.NewMockLogger(ctrl)).Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")

	zErr, ok := err.(*zerr.Error)
	require.True(t, ok, "expected *zerr.Error, got %T", err)
	assert.Equal(t, path, zErr.Metadata()["path"])
}

func TestLoad_UnsupportedVersion(t *testing.T) {
	ctrl := gomock.NewController(t)
	path := writeConfig(t, `version: "2"`)

	_, err := config.NewLoader(mocks.NewMockLogger(ctrl)).Load(path)
	require.ErrorIs(t, err, domain.ErrUnsupportedConfigVersion)

	zErr, ok := err.(*zerr.Error)
	require.True(t, ok, "expected *zerr.Error, got %T", err)
	assert.Equal(t, "2", zErr.Metadata()["version"])
}

func TestLoad_NegativeJobs(t *testing.T) {
	ctrl := gomock.NewController(t)
	path := writeConfig(t, `jobs: -1`)

	_, err := config.NewLoader(mocks.NewMockLogger(ctrl)).Load(path)
	require.Error(t, err)
}

func TestLoad_PatternWithoutPlaceholderWarns(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Warn("input pattern has no day placeholder", gomock.Any()).Times(1)

	path := writeConfig(t, `inputs: "input.txt"`)

	cfg, err := config.NewLoader(log).Load(path)
	require.NoError(t, err)
	assert.Equal(t, "input.txt", cfg.InputPath(1))
}
