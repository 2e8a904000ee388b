package content

import (
	"fmt"
	"slices"
)

// MissionNames are the daily missions that need a modal before completion
type MissionNames struct {
	GratitudeDiary string `yaml:"gratitude_diary"`
	BibleReading   string `yaml:"bible_reading"`
}

// EventFruit maps a completed-fruit count to the special template planted next
type EventFruit struct {
	Condition int    `yaml:"condition"`
	Template  string `yaml:"template"`
}

// EventMission is a Christmas event mission shown in the event diary
type EventMission struct {
	Name  string `yaml:"name"`
	Label string `yaml:"label"`
	Badge string `yaml:"badge"`
}

// Messages are the user-facing alert texts
type Messages struct {
	NetworkError         string `yaml:"network_error"`
	ServerError          string `yaml:"server_error"`
	FetchFruitError      string `yaml:"fetch_fruit_error"`
	CreateFruitError     string `yaml:"create_fruit_error"`
	CompleteMissionError string `yaml:"complete_mission_error"`
	HarvestFruitError    string `yaml:"harvest_fruit_error"`
	TemplateNotFound     string `yaml:"template_not_found"`
	TestMissionError     string `yaml:"test_mission_error"`
	LoginError           string `yaml:"login_error"`
	LoginFieldsRequired  string `yaml:"login_fields_required"`
	LogoutError          string `yaml:"logout_error"`
	LogoutConfirm        string `yaml:"logout_confirm"`
	ValidationError      string `yaml:"validation_error"`
	MinLengthError       string `yaml:"min_length_error"`
	ReadNotConfirmed     string `yaml:"read_not_confirmed"`
	NotHarvestable       string `yaml:"not_harvestable"`
	MissionNotFound      string `yaml:"mission_not_found"`
	BibleFallback        string `yaml:"bible_fallback"`
	BibleFetchError      string `yaml:"bible_fetch_error"`
	InteractionError     string `yaml:"interaction_error"`
	HarvestComplete      string `yaml:"harvest_complete"`
}

// Catalog holds the static tables the pages render from
type Catalog struct {
	Missions          MissionNames   `yaml:"missions"`
	EventFruits       []EventFruit   `yaml:"event_fruits"`
	ChristmasMissions []EventMission `yaml:"christmas_missions"`
	DefaultBadge      string         `yaml:"default_badge"`
	Reactions         []string       `yaml:"reactions"`
	TopReactions      int            `yaml:"top_reactions"`
	InquiryURL        string         `yaml:"inquiry_url"`
	Messages          Messages       `yaml:"messages"`
}

// EventTemplateFor returns the special template planted after count completed fruits
func (c *Catalog) EventTemplateFor(count int) (string, bool) {
	for _, ef := range c.EventFruits {
		if ef.Condition == count {
			return ef.Template, true
		}
	}
	return "", false
}

// IsEventCount reports whether count triggers a special fruit
func (c *Catalog) IsEventCount(count int) bool {
	_, ok := c.EventTemplateFor(count)
	return ok
}

// IsReaction reports whether emoji belongs to the reaction palette
func (c *Catalog) IsReaction(emoji string) bool {
	return slices.Contains(c.Reactions, emoji)
}

// BadgeFor returns the badge classes for an event mission name
func (c *Catalog) BadgeFor(name string) string {
	for _, m := range c.ChristmasMissions {
		if m.Name == name && m.Badge != "" {
			return m.Badge
		}
	}
	return c.DefaultBadge
}

// ChristmasMissionNames returns the event mission names in display order
func (c *Catalog) ChristmasMissionNames() []string {
	names := make([]string, 0, len(c.ChristmasMissions))
	for _, m := range c.ChristmasMissions {
		names = append(names, m.Name)
	}
	return names
}

// Validate checks that the catalog can drive the pages
func (c *Catalog) Validate() error {
	if c.Missions.GratitudeDiary == "" || c.Missions.BibleReading == "" {
		return fmt.Errorf("%w: mission names must be set", ErrInvalidCatalog)
	}
	if len(c.Reactions) == 0 {
		return fmt.Errorf("%w: reaction palette is empty", ErrInvalidCatalog)
	}
	if c.TopReactions <= 0 {
		return fmt.Errorf("%w: top_reactions must be positive", ErrInvalidCatalog)
	}
	seen := make(map[int]bool, len(c.EventFruits))
	for _, ef := range c.EventFruits {
		if ef.Template == "" {
			return fmt.Errorf("%w: event fruit for count %d has no template", ErrInvalidCatalog, ef.Condition)
		}
		if seen[ef.Condition] {
			return fmt.Errorf("%w: duplicate event fruit condition %d", ErrInvalidCatalog, ef.Condition)
		}
		seen[ef.Condition] = true
	}
	for _, m := range c.ChristmasMissions {
		if m.Name == "" {
			return fmt.Errorf("%w: christmas mission without a name", ErrInvalidCatalog)
		}
	}
	return nil
}
