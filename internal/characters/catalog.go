package characters

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/parkdui/LG-Thingo/internal/models"
)

// Catalog resolves character ids to their profiles. It is built once at
// startup and never mutated afterwards, so it is safe to share between
// handlers without synchronization.
type Catalog struct {
	profiles map[string]models.CharacterProfile
	groups   []models.ProductGroup
	byGroup  map[models.ProductGroup][]models.CharacterProfile
}

// SlotsPerGroup is the number of carousel cards, and therefore characters,
// per product group.
const SlotsPerGroup = 5

// NewCatalog builds the full character catalog.
func NewCatalog() *Catalog {
	catalog := Catalog{
		profiles: make(map[string]models.CharacterProfile),
		groups:   nil,
		byGroup:  make(map[models.ProductGroup][]models.CharacterProfile),
	}
	for _, profile := range seed() {
		if _, ok := catalog.byGroup[profile.ProductGroup]; !ok {
			catalog.groups = append(catalog.groups, profile.ProductGroup)
		}
		catalog.profiles[profile.ID] = profile
		catalog.byGroup[profile.ProductGroup] = append(catalog.byGroup[profile.ProductGroup], profile)
	}
	return &catalog
}

// IDFor constructs the character id for a product group and carousel slot.
func IDFor(group models.ProductGroup, slot int) string {
	return fmt.Sprintf("%s-%d", group, slot)
}

// SlotIndexOf extracts the carousel slot from a character id. It returns -1
// for malformed ids.
func SlotIndexOf(id string) int {
	dash := strings.LastIndex(id, "-")
	if dash < 0 {
		return -1
	}
	slot, err := strconv.Atoi(id[dash+1:])
	if err != nil || slot < 0 {
		return -1
	}
	return slot
}

// Resolve looks up a character profile by id. Unknown or malformed ids
// resolve to a generic fallback profile so resolution never fails.
func (c *Catalog) Resolve(id string) models.CharacterProfile {
	if profile, ok := c.profiles[id]; ok {
		return profile
	}
	return models.CharacterProfile{
		ID:              id,
		Nickname:        fallbackNickname,
		ProductGroup:    c.ProductGroupOf(id),
		InitialGreeting: fallbackGreeting,
		SystemPrompt:    fallbackPrompt,
	}
}

// ProductGroupOf extracts the product group from a character id. Unknown
// prefixes yield the empty group.
func (c *Catalog) ProductGroupOf(id string) models.ProductGroup {
	dash := strings.LastIndex(id, "-")
	if dash < 0 {
		return ""
	}
	group := models.ProductGroup(id[:dash])
	if _, ok := c.byGroup[group]; !ok {
		return ""
	}
	return group
}

// Groups lists the product groups in catalog order.
func (c *Catalog) Groups() []models.ProductGroup {
	return c.groups
}

// Group returns the characters of one product group in slot order.
func (c *Catalog) Group(group models.ProductGroup) []models.CharacterProfile {
	return c.byGroup[group]
}

// Contains reports whether the id names a concrete catalog character.
func (c *Catalog) Contains(id string) bool {
	_, ok := c.profiles[id]
	return ok
}
