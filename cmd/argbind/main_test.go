package main

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"argbind/args"
)

const sigs = `
signatures:
  - name: repeat
    args:
      - name: text
        kind: string
        capacity: 8
      - name: count
        kind: integer
        type: uint8
        round: floor
        optional: true
        default: 1
      - name: opts
        kind: object
        optional: true
        properties:
          - {name: sep, kind: text, optional: true, default: ""}
  - name: write
    args:
      - {name: out, kind: handle, tag: file}
      - {name: data, kind: text, coerce: true}
`

func setup(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "sigs.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sigs), 0o644))

	return path
}

func TestRun(t *testing.T) {
	t.Parallel()

	path := setup(t)
	logger := slog.New(slog.DiscardHandler)

	tests := []struct {
		name  string
		fn    string
		exprs []string
		want  string
	}{
		{
			name:  "all arguments",
			fn:    "repeat",
			exprs: []string{`"ab"`, `3.7`, `struct(sep = "-")`},
			want:  "text = ab\ncount = 3\nopts = {sep = -}\n",
		},
		{
			name:  "defaults",
			fn:    "repeat",
			exprs: []string{`"ab"`},
			want:  "text = ab\ncount = 1\nopts = {sep = }\n",
		},
		{
			name:  "dict and none",
			fn:    "repeat",
			exprs: []string{`"a" * 2`, `None`, `{"sep": ", "}`},
			want:  "text = aa\ncount = 1\nopts = {sep = , }\n",
		},
		{
			name:  "handles",
			fn:    "write",
			exprs: []string{`handle("file", "out.txt")`, `[1, 2]`},
			want:  "out = \"out.txt\"\ndata = [1, 2]\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var out bytes.Buffer
			require.NoError(t, run(&out, logger, path, tt.fn, false, tt.exprs))
			assert.Equal(t, tt.want, out.String())
		})
	}
}

func TestRunDump(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	require.NoError(t, run(&out, slog.New(slog.DiscardHandler), setup(t), "repeat", true, []string{`"ab"`}))

	assert.Contains(t, out.String(), `Name: (string) (len=5) "count"`)
	assert.Contains(t, out.String(), `Value: (uint8) 1`)
}

func TestRunErrors(t *testing.T) {
	t.Parallel()

	path := setup(t)
	logger := slog.New(slog.DiscardHandler)

	var out bytes.Buffer

	err := run(&out, logger, path, "repeat", false, []string{`"a long text"`})
	assert.ErrorIs(t, err, args.ErrCapacityExceeded)
	assert.EqualError(t, err, "argument 0 (String): destination capacity exceeded: 11 bytes do not fit into 8")

	err = run(&out, logger, path, "repeat", false, []string{`"ab"`, `-1`})
	assert.EqualError(t, err, "argument 1 (Integer): number out of range: -1 does not fit into uint8")

	err = run(&out, logger, path, "repeat", false, nil)
	assert.ErrorIs(t, err, args.ErrMissingRequired)

	err = run(&out, logger, path, "write", false, []string{`handle("files", 1)`, `"x"`})
	assert.ErrorContains(t, err, `handle: unknown tag "files", did you mean "file"?`)

	err = run(&out, logger, path, "repeat", false, []string{`"ab`})
	assert.ErrorContains(t, err, "argument 0:")

	err = run(&out, logger, path, "rpeat", false, nil)
	assert.ErrorContains(t, err, `did you mean "repeat"?`)

	err = run(&out, logger, filepath.Join(t.TempDir(), "none.yaml"), "repeat", false, nil)
	assert.ErrorIs(t, err, os.ErrNotExist)

	broken := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(broken, []byte("signatures: [{name: f, args: [{kind: nubmer}]}]"), 0o644))

	err = run(&out, logger, broken, "f", false, nil)
	assert.ErrorContains(t, err, `[unknown_kind] unknown kind "nubmer" (did you mean number?)`)

	assert.Empty(t, out.String())
}

func TestRunExampleSignatures(t *testing.T) {
	t.Parallel()

	path := filepath.Join("..", "..", "examples", "signatures.yaml")
	logger := slog.New(slog.DiscardHandler)

	var out bytes.Buffer
	require.NoError(t, run(&out, logger, path, "open", false, []string{`"/tmp/x"`}))
	assert.Equal(t, "path = /tmp/x\nmode = r\nperm = 420\n", out.String())

	out.Reset()
	require.NoError(t, run(&out, logger, path, "read_lines", false, []string{
		`handle("file", 3)`, `(1.5, 9.2)`, `{"encoding": "latin1"}`,
	}))
	assert.Equal(t, "file = 3\nrange = {item1 = 1, item2 = 10}\nopts = {strip = true, encoding = latin1}\non_line = <nil>\n", out.String())
}
