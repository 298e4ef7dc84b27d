package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, err := runCommand(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "hashtok")
	assert.Contains(t, out, version)
}

func TestTextCommand_WordMode(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "input.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello world\nfoo\n"), 0o600))

	out, err := runCommand(t, "text", "--mode", "word", path)
	require.NoError(t, err)

	var ids [][]int
	require.NoError(t, json.Unmarshal([]byte(out), &ids))
	require.Len(t, ids, 2)
	assert.Len(t, ids[0], 2)
	assert.Len(t, ids[1], 1)
}

func TestTextCommand_UnknownMode(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "input.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello\n"), 0o600))

	_, err := runCommand(t, "text", "--mode", "bad", path)
	assert.Error(t, err)
}

func TestImageCommand(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "images.json")

	img := make([][]float64, 12)
	for i := range img {
		img[i] = make([]float64, 12)
		for j := range img[i] {
			img[i][j] = float64(i*12 + j)
		}
	}
	data, err := json.Marshal([][][]float64{img})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0o600))

	out, err := runCommand(t, "image", path, "--windowed-stride", "1")
	require.NoError(t, err)

	var ids [][][]int
	require.NoError(t, json.Unmarshal([]byte(out), &ids))
	require.Len(t, ids, 1)
	// (12-9)/1 + 1 = 4 patches per axis.
	require.Len(t, ids[0], 4)
	assert.Len(t, ids[0][0], 4)
}

func TestSignalCommand(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "signals.json")

	signal := make([]float64, 250)
	for i := range signal {
		signal[i] = float64(i%17) - 8
	}
	data, err := json.Marshal([][]float64{signal})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0o600))

	out, err := runCommand(t,
		"signal", path,
		"--windowed-window-size", "100",
		"--windowed-stride", "50",
	)
	require.NoError(t, err)

	var ids [][]int
	require.NoError(t, json.Unmarshal([]byte(out), &ids))
	require.Len(t, ids, 1)
	// ceil((250-100)/50 + 1) = 4 windows.
	assert.Len(t, ids[0], 4)
}
