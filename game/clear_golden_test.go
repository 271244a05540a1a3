package game

import (
	"path"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/txtar"
)

// parseBoard reads rows of '.' and digit characters.
func parseBoard(t *testing.T, data []byte) *Board {
	t.Helper()
	lines := strings.Fields(string(data))
	require.NotEmpty(t, lines)

	b := NewBoard(len(lines), len(lines[0]))
	for y, line := range lines {
		require.Len(t, line, b.cols)
		for x, ch := range line {
			if ch == '.' {
				continue
			}
			require.True(t, ch >= '1' && ch <= '9', "bad cell %q", ch)
			b.cells[y][x] = Cell(ch - '0')
		}
	}
	return b
}

func TestClearCompletedRowsGolden(t *testing.T) {
	archive, err := txtar.ParseFile("testdata/clear.txtar")
	require.NoError(t, err)

	cases := map[string]map[string][]byte{}
	var order []string
	for _, f := range archive.Files {
		name, part := path.Split(f.Name)
		name = strings.TrimSuffix(name, "/")
		if cases[name] == nil {
			cases[name] = map[string][]byte{}
			order = append(order, name)
		}
		cases[name][part] = f.Data
	}
	require.NotEmpty(t, order)

	for _, name := range order {
		files := cases[name]
		t.Run(name, func(t *testing.T) {
			before := parseBoard(t, files["before"])
			after := parseBoard(t, files["after"])
			lines, err := strconv.Atoi(strings.TrimSpace(string(files["lines"])))
			require.NoError(t, err)

			assert.Equal(t, lines, before.ClearCompletedRows())
			assert.Equal(t, after.Grid(), before.Grid())
		})
	}
}
