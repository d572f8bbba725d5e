package models

// ProductGroup is the physical LG product line a character represents. It is
// used for asset and theme selection: several characters share one group.
type ProductGroup string

const (
	ProductGroupGram       ProductGroup = "gram"
	ProductGroupHydroTower ProductGroup = "hydrotower"
	ProductGroupPuriCare   ProductGroup = "puricare"
	ProductGroupXboom      ProductGroup = "xboom"
)

// CharacterProfile is a chat persona. Profiles are immutable and statically
// resolvable from their id.
type CharacterProfile struct {
	ID              string
	Nickname        string
	ProductGroup    ProductGroup
	InitialGreeting string
	SystemPrompt    string
}
