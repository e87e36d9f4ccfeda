package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chess-fen/fen"
	"chess-fen/internal/verify"
)

func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestDemoCommand(t *testing.T) {
	out, _, err := runCLI(t, "demo")
	require.NoError(t, err)
	assert.Equal(t, "4k3/4p3/8/8/8/8/3P4/4K3 w KQkq - 0 1\n", out)
}

func TestEncodeCommand_Pieces(t *testing.T) {
	out, _, err := runCLI(t, "encode", "-p", "e8=k", "-p", "e1=K", "-p", "1,4=p", "-p", "d2=P")
	require.NoError(t, err)
	assert.Equal(t, "4k3/4p3/8/8/8/8/3P4/4K3 w KQkq - 0 1\n", out)
}

func TestEncodeCommand_MetadataFlags(t *testing.T) {
	out, _, err := runCLI(t, "encode", "-p", "h8=k", "-p", "f6=Q", "-p", "g6=K",
		"--color", "b", "--castling", "-", "--halfmove", "0", "--fullmove", "40", "--verify")
	require.NoError(t, err)
	assert.Equal(t, "7k/8/5QK1/8/8/8/8/8 b - - 0 40\n", out)
}

func TestEncodeCommand_ConfigDefaults(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("[position]\nactive_color = \"b\"\ncastling_rights = \"-\"\nfullmove_number = 9\n"), 0o644))

	out, _, err := runCLI(t, "--config", cfgPath, "encode", "-p", "a1=K", "-p", "a8=k")
	require.NoError(t, err)
	assert.Equal(t, "k7/8/8/8/8/8/8/K7 b - - 0 9\n", out)

	// flags beat config
	out, _, err = runCLI(t, "--config", cfgPath, "encode", "-p", "a1=K", "--color", "w")
	require.NoError(t, err)
	assert.Equal(t, "8/8/8/8/8/8/8/K7 w - - 0 9\n", out)
}

func TestEncodeCommand_PositionFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "position.toml")
	data := "en_passant = \"e3\"\nactive_color = \"b\"\npieces = [\"e8=k\", \"e1=K\", \"e4=P\", \"d4=p\"]\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	out, _, err := runCLI(t, "encode", "-f", path, "-p", "h1=R")
	require.NoError(t, err)
	assert.Equal(t, "4k3/8/8/8/3pP3/8/8/4K2R b KQkq e3 0 1\n", out)
}

func TestEncodeCommand_OutOfRange(t *testing.T) {
	out, stderr, err := runCLI(t, "encode", "-p", "8,0=Q")
	require.ErrorIs(t, err, fen.ErrOutOfRange)
	assert.Empty(t, out)
	assert.Contains(t, stderr, "encode failed")
}

func TestEncodeCommand_VerifyRejects(t *testing.T) {
	out, _, err := runCLI(t, "encode", "-p", "e8=x", "--verify")
	require.ErrorIs(t, err, verify.ErrRejected)
	assert.Empty(t, out)

	// without --verify the symbol is echoed as-is
	out, _, err = runCLI(t, "encode", "-p", "e8=x")
	require.NoError(t, err)
	assert.Equal(t, "4x3/8/8/8/8/8/8/8 w KQkq - 0 1\n", out)
}

func TestEncodeCommand_DebugLogging(t *testing.T) {
	_, stderr, err := runCLI(t, "--log-level", "debug", "encode", "-p", "e8=k")
	require.NoError(t, err)
	assert.Contains(t, stderr, "encoded position")
	assert.Contains(t, stderr, "run_id=")

	_, _, err = runCLI(t, "--log-level", "loud", "encode")
	assert.ErrorContains(t, err, "logging.level")
}

func TestBoardCommand(t *testing.T) {
	out, _, err := runCLI(t, "board", "-p", "e8=k", "-p", "e1=K")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	var rank8, rank1 string
	for _, l := range lines {
		fields := strings.Fields(strings.NewReplacer("│", " ", "|", " ").Replace(l))
		if len(fields) != 9 {
			continue
		}
		switch fields[0] {
		case "8":
			rank8 = strings.Join(fields[1:], "")
		case "1":
			rank1 = strings.Join(fields[1:], "")
		}
	}
	assert.Equal(t, "....k...", rank8)
	assert.Equal(t, "....K...", rank1)
}

func TestBoardCommand_TakesOnlyPlacementFlags(t *testing.T) {
	for _, flag := range []string{"--color", "--castling", "--en-passant", "--halfmove", "--fullmove"} {
		_, _, err := runCLI(t, "board", "-p", "e8=k", flag, "1")
		assert.ErrorContains(t, err, "unknown flag", flag)
	}

	cmd := newBoardCommand(newCommandContext(nil, nil))
	for _, name := range []string{"piece", "file"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), name)
	}
	assert.Nil(t, cmd.Flags().Lookup("color"))
}

func TestRenderBoardStartPosition(t *testing.T) {
	g, err := fen.NewGrid(fen.StartingPlacement())
	require.NoError(t, err)
	out := renderBoard(g, false)
	for _, want := range []string{"a", "h", "r", "K"} {
		assert.Contains(t, out, want)
	}
	assert.False(t, shouldColorize(&bytes.Buffer{}))
}

func TestConfigInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fengen", "config.toml")
	out, _, err := runCLI(t, "config", "init", "--path", path)
	require.NoError(t, err)
	assert.Contains(t, out, path)

	_, _, err = runCLI(t, "config", "init", "--path", path)
	assert.ErrorContains(t, err, "already exists")

	_, _, err = runCLI(t, "config", "init", "--path", path, "--overwrite")
	assert.NoError(t, err)
}
