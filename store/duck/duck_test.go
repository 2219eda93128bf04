package duck

import (
	"os"
	"path/filepath"
	"testing"

	_ "github.com/marcboeker/go-duckdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	nt "searchbar/entity"
)

const sample = `{"name": "Ada Lovelace", "address": {"city": "London"}, "age": 36}
{"name": "Grace Hopper", "address": {"city": "New York"}, "age": 85}
{"name": "Alan Turing", "address": {"city": "London"}, "age": 41}
`

func writeSample(t *testing.T, name, data string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))
	return path
}

func TestDuckRecords(t *testing.T) {

	dk, err := New(nt.Discard{})
	require.NoError(t, err)
	defer dk.Close()

	path := writeSample(t, "people.ndjson", sample)
	require.NoError(t, dk.Load(path))
	assert.Equal(t, path, dk.Name())

	count, err := dk.Count()
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	records, err := dk.Records()
	require.NoError(t, err)
	require.Len(t, records, 3)

	first := records[0].(map[string]any)
	assert.Equal(t, "Ada Lovelace", first["name"])
	assert.Equal(t, map[string]any{"city": "London"}, first["address"])
	assert.Equal(t, float64(36), first["age"])

	last := records[2].(map[string]any)
	assert.Equal(t, "Alan Turing", last["name"])
}

func TestDuckReload(t *testing.T) {

	dk, err := New(nt.Discard{})
	require.NoError(t, err)
	defer dk.Close()

	require.NoError(t, dk.Load(writeSample(t, "first.ndjson", sample)))
	require.NoError(t, dk.Load(writeSample(t, "it's.ndjson", `{"name": "Barbara Liskov"}`+"\n")))

	records, err := dk.Records()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Barbara Liskov", records[0].(map[string]any)["name"])
}

func TestDuckLoadMissing(t *testing.T) {

	dk, err := New(nt.Discard{})
	require.NoError(t, err)
	defer dk.Close()

	err = dk.Load(filepath.Join(t.TempDir(), "nope.ndjson"))
	assert.Error(t, err)
	assert.Equal(t, "", dk.Name())
}
