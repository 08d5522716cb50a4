package projects

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIcon_KnownTags(t *testing.T) {
	for _, tech := range []string{"HTML", "CSS", "JavaScript", "Tailwind CSS", "Firebase", "React", "Go", "HTMX", "SQLite"} {
		assert.True(t, known(tech), tech)
		assert.NotEqual(t, defaultIcon, Icon(tech), tech)
		assert.True(t, strings.HasPrefix(string(Icon(tech)), "<svg"), tech)
	}
}

func TestIcon_Fallback(t *testing.T) {
	assert.False(t, known("COBOL"))
	assert.Equal(t, defaultIcon, Icon("COBOL"))
	assert.Equal(t, defaultIcon, Icon("html"), "lookup is case sensitive")
	assert.Equal(t, defaultIcon, Icon(""))
}

func TestIcon_SameValueEveryCall(t *testing.T) {
	assert.Equal(t, Icon("React"), Icon("React"))
}

func TestCards(t *testing.T) {
	list := []Project{
		{Title: "first", Technologies: []string{"Go", "Unknown"}, GitHubLink: "https://example.com"},
		{Title: "second"},
	}

	cards := Cards(list)
	require.Len(t, cards, 2)
	assert.Equal(t, "first", cards[0].Title)
	assert.Equal(t, "second", cards[1].Title)

	require.Len(t, cards[0].Badges, 2)
	assert.Equal(t, Badge{Name: "Go", Icon: Icon("Go")}, cards[0].Badges[0])
	assert.Equal(t, defaultIcon, cards[0].Badges[1].Icon)

	assert.True(t, cards[0].HasLinks())
	assert.False(t, cards[1].HasLinks())
	assert.Empty(t, cards[1].Badges)
}

func TestCatalog(t *testing.T) {
	require.NotEmpty(t, Catalog)
	for _, p := range Catalog {
		assert.NotEmpty(t, p.Title)
		assert.NotEmpty(t, p.Description)
		assert.NotEmpty(t, p.Technologies, p.Title)
	}
}
