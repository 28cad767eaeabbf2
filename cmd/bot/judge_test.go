package main

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	sessionRepo "github.com/KirkDiggler/judgebot/internal/repositories/session"
	boltStore "github.com/KirkDiggler/judgebot/internal/repositories/store/bolt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return out.String(), err
}

func TestJudgeCommand(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	path := filepath.Join(dir, "guilty_sinners.db")
	t.Setenv("JUDGEBOT_STORAGE_PATH", path)

	st, err := boltStore.Open(&boltStore.Config{Path: path})
	require.NoError(t, err)
	sessions, err := sessionRepo.New(&sessionRepo.Config{Store: st})
	require.NoError(t, err)

	ctx := context.Background()
	_, err = sessions.OpenSession(ctx, &sessionRepo.OpenSessionInput{UserID: 42, StartedAt: 1000})
	require.NoError(t, err)
	_, err = sessions.CloseSession(ctx, &sessionRepo.CloseSessionInput{UserID: 42, EndedAt: 4725})
	require.NoError(t, err)
	require.NoError(t, st.Close())

	out, err := runCLI(t, "judge", "42")
	require.NoError(t, err)
	assert.Equal(t, "42 has played League of Legends for 1h 2m 5s (3725 seconds)\n", out)

	out, err = runCLI(t, "judge", "7")
	require.NoError(t, err)
	assert.Equal(t, "7 has never played League of Legends\n", out)
}

func TestJudgeCommand_InvalidUser(t *testing.T) {
	chdir(t, t.TempDir())

	_, err := runCLI(t, "judge", "teemo")
	assert.ErrorContains(t, err, "invalid user ID")
}

func TestVersionCommand(t *testing.T) {
	out, err := runCLI(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "judgebot version dev\n", out)
}

func TestServeRequiresToken(t *testing.T) {
	chdir(t, t.TempDir())

	_, err := runCLI(t, "serve")
	assert.ErrorContains(t, err, "discord.token is required")
}
