package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sheetregistry/internal/domain"
)

func TestPrintJSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, PrintJSON(&buf, map[string]int{"id": 1}))
	assert.Equal(t, "{\n  \"id\": 1\n}\n", buf.String())
}

func TestPrintRecordsTable(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := PrintRecordsTable(&buf, []domain.Record{
		{ID: 1, FullName: "Alice", PopulationID: "P1", Status: "active", LastUpdated: "2024-01-01T00:00:00Z"},
		{ID: 2, FullName: "Bob", PopulationID: "P2", Status: "inactive", LastUpdated: "2024-02-01T00:00:00Z"},
	})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3, "header + two rows")
	assert.Contains(t, lines[0], "ID")
	assert.Contains(t, lines[0], "FULL NAME")
	assert.Contains(t, lines[1], "Alice")
	assert.Contains(t, lines[2], "inactive")
}

func TestPrintRecordsTable_Empty(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, PrintRecordsTable(&buf, nil))
	assert.Contains(t, buf.String(), "ID")
}
