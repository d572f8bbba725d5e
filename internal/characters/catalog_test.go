package characters_test

import (
	"strings"
	"testing"

	"github.com/parkdui/LG-Thingo/internal/characters"
	"github.com/parkdui/LG-Thingo/internal/models"
	"github.com/stretchr/testify/require"
)

func TestCatalogRoundTrip(t *testing.T) {
	catalog := characters.NewCatalog()

	require.Len(t, catalog.Groups(), 4)
	for _, group := range catalog.Groups() {
		profiles := catalog.Group(group)
		require.Len(t, profiles, characters.SlotsPerGroup)
		for slot, profile := range profiles {
			// Every id reachable from the carousel round-trips through
			// group and slot extraction.
			require.Equal(t, profile.ID, characters.IDFor(catalog.ProductGroupOf(profile.ID), characters.SlotIndexOf(profile.ID)))
			require.Equal(t, slot, characters.SlotIndexOf(profile.ID))
			require.Equal(t, group, profile.ProductGroup)
		}
	}
}

func TestCatalogResolve(t *testing.T) {
	catalog := characters.NewCatalog()

	gramlin := catalog.Resolve("gram-0")
	require.Equal(t, "그램린", gramlin.Nickname)
	require.Equal(t, models.ProductGroupGram, gramlin.ProductGroup)
	require.NotEmpty(t, gramlin.InitialGreeting)
	require.Contains(t, gramlin.SystemPrompt, "그램린")

	tests := []struct {
		name string
		id   string
	}{
		{name: "unknown slot", id: "gram-99"},
		{name: "unknown group", id: "fridge-0"},
		{name: "malformed", id: "not a card id"},
		{name: "empty", id: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Resolution never fails, it falls back to a generic profile.
			profile := catalog.Resolve(tt.id)
			require.Equal(t, tt.id, profile.ID)
			require.NotEmpty(t, profile.Nickname)
			require.NotEmpty(t, profile.InitialGreeting)
			require.NotEmpty(t, profile.SystemPrompt)
			require.False(t, catalog.Contains(tt.id))
		})
	}

	require.Equal(t, models.ProductGroup(""), catalog.ProductGroupOf("fridge-0"))
	require.Equal(t, models.ProductGroupGram, catalog.ProductGroupOf("gram-99"))
	require.Equal(t, -1, characters.SlotIndexOf("gram"))
	require.Equal(t, -1, characters.SlotIndexOf("gram-x"))
}

func TestAssetPaths(t *testing.T) {
	require.Equal(t, "/static/images/gram.png", characters.ImagePath(models.ProductGroupGram))
	require.Equal(t, "/static/videos/xboom_success.mp4", characters.VideoPath(models.ProductGroupXboom, true))
	require.Equal(t, "/static/videos/puricare_fail.mp4", characters.VideoPath(models.ProductGroupPuriCare, false))
	require.Empty(t, characters.ImagePath(""))
	require.Empty(t, characters.VideoPath("", true))
}

func TestSystemPromptsStayServerSide(t *testing.T) {
	catalog := characters.NewCatalog()
	for _, group := range catalog.Groups() {
		for _, profile := range catalog.Group(group) {
			// Greetings are what the client sees; prompts must not leak into them.
			require.False(t, strings.Contains(profile.InitialGreeting, "입양할지"), profile.ID)
		}
	}
}
