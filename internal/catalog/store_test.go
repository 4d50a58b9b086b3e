package catalog_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"LaptopStore/internal/catalog"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "data.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadStore_BundledData(t *testing.T) {
	s, err := catalog.LoadStore(filepath.Join("..", "..", "data", "data.json"))
	require.NoError(t, err)
	assert.Equal(t, 5, s.Len())

	p, ok := s.Get(0)
	require.True(t, ok)
	assert.Equal(t, "MacBook Pro with Touch Bar", p.LaptopName)
}

func TestLoadStore_IgnoresUnknownFields(t *testing.T) {
	path := writeFile(t, `[{"id":0,"laptopName":"A","colour":"grey"},{"id":1}]`)

	s, err := catalog.LoadStore(path)
	require.NoError(t, err)
	assert.Equal(t, 2, s.Len())
}

func TestLoadStore_EmptyArray(t *testing.T) {
	s, err := catalog.LoadStore(writeFile(t, `[]`))
	require.NoError(t, err)
	assert.Equal(t, 0, s.Len())
}

func TestLoadStore_Errors(t *testing.T) {
	cases := map[string]string{
		"object":    `{"id":0}`,
		"null":      `null`,
		"truncated": `[{"id":0}`,
		"empty":     ``,
	}

	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := catalog.LoadStore(writeFile(t, body))
			assert.Error(t, err)
		})
	}

	t.Run("missing", func(t *testing.T) {
		_, err := catalog.LoadStore(filepath.Join(t.TempDir(), "nope.json"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestStore_Get(t *testing.T) {
	s := catalog.NewStore([]catalog.Product{{ID: 0}, {ID: 1}})

	_, ok := s.Get(-1)
	assert.False(t, ok)
	_, ok = s.Get(2)
	assert.False(t, ok)

	p, ok := s.Get(1)
	assert.True(t, ok)
	assert.Equal(t, 1, p.ID)
}

func TestNewStore_CopiesInput(t *testing.T) {
	in := []catalog.Product{{LaptopName: "A"}}
	s := catalog.NewStore(in)
	in[0].LaptopName = "B"

	p, _ := s.Get(0)
	assert.Equal(t, "A", p.LaptopName)
}

func TestDefaultDataPath(t *testing.T) {
	path, err := catalog.DefaultDataPath()
	require.NoError(t, err)
	assert.Equal(t, "data.json", filepath.Base(path))
	assert.Equal(t, "data", filepath.Base(filepath.Dir(path)))
}
