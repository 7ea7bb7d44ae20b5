// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/geoct/ct"
)

const shiftPipeline = `
name = "shift"

[[step]]
matrix = [[1.0, 0.0, 10.0], [0.0, 2.0, 0.0], [0.0, 0.0, 1.0]]
`

// run executes the root command with args and returns stdout and stderr.
func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := newRootCmd()
	root.SetArgs(args)
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	err := root.Execute()

	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestProvidersCommand(t *testing.T) {
	out, _, err := run(t, "", "providers")
	require.NoError(t, err)
	for _, want := range []string{"Affine", "Exponential", "Logarithmic", "Proj4", "base (float) = 10", "source (string), required", "(plus generated parameters)"} {
		require.Contains(t, out, want)
	}
}

func TestTransformCommand(t *testing.T) {
	p := writeFile(t, "shift.toml", shiftPipeline)
	out, logs, err := run(t, "# x,y\n1,2\n-3, 0.5\n", "transform", "--pipeline", p)
	require.NoError(t, err)
	require.Equal(t, "11,4\n7,1\n", out)
	require.Contains(t, logs, "transform complete")
	require.Contains(t, logs, "points=2")

	out, _, err = run(t, out, "transform", "--pipeline", p, "--inverse", "--log-level", "warn")
	require.NoError(t, err)
	require.Equal(t, "1,2\n-3,0.5\n", out)
}

func TestTransformFiles(t *testing.T) {
	p := writeFile(t, "exp.toml", "[[step]]\nclassification = \"Exponential\"\n[step.parameters]\nbase = 2.0\n")
	in := writeFile(t, "in.csv", "0\n1\n10\n")
	dst := filepath.Join(t.TempDir(), "out.csv")
	_, _, err := run(t, "", "transform", "--pipeline", p, "--input", in, "--output", dst)
	require.NoError(t, err)
	got, err := os.ReadFile(dst)
	require.NoError(t, err)
	require.Equal(t, "1\n2\n1024\n", string(got))
}

func TestTransformCSVBatches(t *testing.T) {
	var in strings.Builder
	const n = 2*batchSize + 3
	for i := 0; i < n; i++ {
		in.WriteString("1\n")
	}
	var out bytes.Buffer
	total, err := transformCSV(ct.NewLinearTransform1D(2, 1), strings.NewReader(in.String()), &out)
	require.NoError(t, err)
	require.Equal(t, n, total)
	require.Equal(t, strings.Repeat("3\n", n), out.String())
}

func TestTransformErrors(t *testing.T) {
	p := writeFile(t, "shift.toml", shiftPipeline)

	_, _, err := run(t, "1,2\n", "transform")
	require.ErrorContains(t, err, "pipeline")

	_, logs, err := run(t, "1,2,3\n", "transform", "--pipeline", p)
	require.Error(t, err)
	require.Contains(t, logs, "transform failed")

	_, _, err = run(t, "1,abc\n", "transform", "--pipeline", p)
	require.ErrorContains(t, err, "line 1")

	_, _, err = run(t, "", "transform", "--pipeline", p, "--log-level", "loud")
	require.Error(t, err)

	_, _, err = run(t, "", "transform", "--pipeline", filepath.Join(t.TempDir(), "none.toml"))
	require.Error(t, err)

	constant := writeFile(t, "c.toml", "[[step]]\nmatrix = [[0.0, 4.0], [0.0, 1.0]]\n")
	_, _, err = run(t, "1\n", "transform", "--pipeline", constant, "--inverse")
	require.ErrorIs(t, err, ct.ErrNonInvertible)

	// a 0-dimensional pipeline has no ordinate to read
	empty := writeFile(t, "empty.toml", "[[step]]\nmatrix = [[1.0]]\n")
	_, logs, err = run(t, "5\n", "transform", "--pipeline", empty)
	require.ErrorIs(t, err, ct.ErrMismatchedDimension)
	require.Contains(t, logs, "transform failed")
	total, err := transformCSV(ct.NewLinearTransform1D(1, 0), strings.NewReader(""), &bytes.Buffer{})
	require.NoError(t, err)
	require.Zero(t, total)
}
