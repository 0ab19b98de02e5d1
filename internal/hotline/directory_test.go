package hotline

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"uxo-chatbot/internal/lexicon"
)

func newTestDirectory(t *testing.T) *Directory {
	t.Helper()
	lex, err := lexicon.Default()
	require.NoError(t, err)
	return FromLexicon(lex)
}

func TestNormalizeKey(t *testing.T) {
	cases := map[string]string{
		"Quảng Bình":        "quảng_bình",
		"quang binh":        "quang_binh",
		" QB ":              "qb",
		"Thừa Thiên - Huế":  "thừa_thiên_huế",
		"npa.quang.tri":     "npa_quang_tri",
		"npa_thua_thien_hue": "npa_thua_thien_hue",
		"":                  "",
	}
	for in, want := range cases {
		assert.Equal(t, want, NormalizeKey(in), "NormalizeKey(%q)", in)
	}
}

func TestLookup(t *testing.T) {
	d := newTestDirectory(t)

	t.Run("spelling variants resolve to one number", func(t *testing.T) {
		want := d.Lookup("Quảng Bình")
		assert.Equal(t, "1800 1741", want)
		assert.Equal(t, want, d.Lookup("quang binh"))
		assert.Equal(t, want, d.Lookup("qb"))
		assert.Equal(t, want, d.Lookup("QUẢNG BÌNH"))
	})

	t.Run("raw hotline keys", func(t *testing.T) {
		assert.Equal(t, "0901 941 941", d.Lookup("npa_quang_tri"))
		assert.Equal(t, "0901 941 941", d.Lookup("qtmac"))
		assert.Equal(t, "0988 796 120", d.Lookup("Thừa Thiên Huế"))
		assert.Equal(t, "0988 796 120", d.Lookup("hue"))
	})

	t.Run("substring fallback", func(t *testing.T) {
		assert.Equal(t, "0901 941 941", d.Lookup("tỉnh Quảng Trị"))
		assert.Equal(t, "0901 941 941", d.Lookup("khu vuc quang tri"))
	})

	t.Run("unknown region returns sentinel", func(t *testing.T) {
		assert.Equal(t, NotFoundMessage, d.Lookup("Hanoi"))
		assert.Equal(t, NotFoundMessage, d.Lookup("Hà Nội"))
		assert.Equal(t, NotFoundMessage, d.Lookup(""))
		_, ok := d.Find("Đà Nẵng")
		assert.False(t, ok)
	})
}

func TestNewSkipsEmptyEntries(t *testing.T) {
	d := New([]Entry{{Key: "", Number: "1"}, {Key: "a", Number: ""}, {Key: "Quảng Ngãi", Number: "0255"}})
	assert.Equal(t, 1, d.Len())
	assert.Equal(t, "0255", d.Lookup("quảng ngãi"))
}

func TestLookupProperties(t *testing.T) {
	d := newTestDirectory(t)
	properties := gopter.NewProperties(nil)

	properties.Property("lookup never returns empty", prop.ForAll(
		func(s string) bool {
			return d.Lookup(s) != ""
		},
		gen.AnyString(),
	))

	properties.Property("lookup ignores case and separators", prop.ForAll(
		func(s string) bool {
			return d.Lookup(s) == d.Lookup(" "+s+" ")
		},
		gen.AlphaString(),
	))

	properties.TestingRun(t)
}
