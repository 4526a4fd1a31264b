package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const exportCSV = `ID ARTICOLO;NOME ARTICOLO;CONTENUTO IMBALLAGGIO;QTA MULTIPLI
9530.900.260K0;9530;100;1
9530.900.260K1;9530;10;5
9530.900.260K2;9530;50;10
7001.100.000A;7001;;
`

func loadTestCatalog(t *testing.T) *Catalog {
	t.Helper()
	c := New()
	n, err := c.LoadFrom(strings.NewReader(exportCSV), "prodotti.csv", 1)
	require.NoError(t, err)
	require.Equal(t, 4, n)
	return c
}

func TestCatalog_Counts(t *testing.T) {
	c := loadTestCatalog(t)
	variants, articles := c.Counts()
	assert.Equal(t, 4, variants)
	assert.Equal(t, 2, articles)
}

func TestCatalog_Lookup(t *testing.T) {
	c := loadTestCatalog(t)

	t.Run("largest multiple dividing the quantity wins", func(t *testing.T) {
		d, ok := c.Lookup("9530", 10)
		require.True(t, ok)
		assert.Equal(t, "9530.900.260K2", d.FullID) // 10 кратно и 1, и 5, и 10
		assert.Equal(t, "K2", d.Suffix)
		assert.Equal(t, "50", d.PackageContent)
		require.NotNil(t, d.MultipleQty)
		assert.Equal(t, 10.0, *d.MultipleQty)
		assert.Equal(t, "9530", d.ArticleName)
	})

	t.Run("quantity not divisible by the bigger multiples", func(t *testing.T) {
		d, ok := c.Lookup("9530", 3)
		require.True(t, ok)
		assert.Equal(t, "9530.900.260K0", d.FullID)
	})

	t.Run("article lookup is case and spacing tolerant", func(t *testing.T) {
		_, ok := c.Lookup("  9530 ", 1)
		assert.True(t, ok)
	})

	t.Run("variant without metadata", func(t *testing.T) {
		d, ok := c.Lookup("7001", 12)
		require.True(t, ok)
		assert.Equal(t, "7001.100.000A", d.FullID)
		assert.Equal(t, "A", d.Suffix)
		assert.Empty(t, d.PackageContent)
		assert.Nil(t, d.MultipleQty)
	})

	t.Run("unknown article", func(t *testing.T) {
		_, ok := c.Lookup("0000", 1)
		assert.False(t, ok)
	})
}

func TestCatalog_LoadFromReplacesContents(t *testing.T) {
	c := loadTestCatalog(t)
	_, err := c.LoadFrom(strings.NewReader("ID ARTICOLO;NOME ARTICOLO\nAAA1;AAA\n"), "prodotti.csv", 1)
	require.NoError(t, err)
	variants, articles := c.Counts()
	assert.Equal(t, 1, variants)
	assert.Equal(t, 1, articles)
	_, ok := c.Lookup("9530", 1)
	assert.False(t, ok)
}

func TestCatalog_LoadFromRejectsGarbage(t *testing.T) {
	c := New()
	_, err := c.LoadFrom(strings.NewReader(";;\n;;\n"), "prodotti.csv", 1)
	assert.Error(t, err)
}

func TestVariantSuffix(t *testing.T) {
	tests := []struct{ in, want string }{
		{"9530.900.260K1", "K1"},
		{"7001.100.000A", "A"},
		{"ABC9", "C9"},
		{"12345", "5"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, VariantSuffix(tt.in), tt.in)
	}
}
