// Package persona builds the system instructions sent to the realtime voice
// API. The composed text layers a fixed base template, an operator-supplied
// addendum, and titled sections merged at runtime.
package persona

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
	"unicode/utf8"
)

const (
	// MaxTitleLength bounds a merged section title.
	MaxTitleLength = 120
	// MaxTextLength bounds a merged section body.
	MaxTextLength = 40000

	sectionsHeader = "# Merged Context"
)

// Section is one titled block of free text merged into the instructions.
// Sections are appended, never edited in place.
type Section struct {
	Title string `json:"title"`
	Text  string `json:"text"`
}

// Snapshot is the debug view of the composer's current state.
type Snapshot struct {
	Spice       int      `json:"spice"`
	AddendumSet bool     `json:"addendumSet"`
	Titles      []string `json:"sectionTitles"`
	Preview     string   `json:"preview"`
}

// Composer holds the mutable inputs to instruction composition. It is safe
// for concurrent use; every operation is a single critical section.
type Composer struct {
	mu       sync.Mutex
	spice    int
	addendum string
	sections []Section
}

// New creates a Composer with the given default spice level and static
// addendum. The spice level is normalised through the policy table.
func New(defaultSpice int, addendum string) *Composer {
	if _, ok := spicePolicies[defaultSpice]; !ok {
		defaultSpice = DefaultSpice
	}
	return &Composer{
		spice:    defaultSpice,
		addendum: strings.TrimSpace(addendum),
	}
}

// ParseSpice converts a query/env string into a spice level, returning
// fallback for anything unparseable or outside the table.
func ParseSpice(s string, fallback int) int {
	if _, ok := spicePolicies[fallback]; !ok {
		fallback = DefaultSpice
	}
	if s == "" {
		return fallback
	}
	level, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fallback
	}
	if _, ok := spicePolicies[level]; !ok {
		return fallback
	}
	return level
}

// DefaultLevel returns the composer's configured spice level.
func (c *Composer) DefaultLevel() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.spice
}

// Merge validates and appends sections. Entries with empty text (after
// truncation) are dropped silently; blank titles get a positional label.
// Returns how many entries were appended and the new total.
func (c *Composer) Merge(sections []Section) (added, total int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, s := range sections {
		text := truncate(strings.TrimSpace(s.Text), MaxTextLength)
		if text == "" {
			continue
		}
		title := truncate(strings.TrimSpace(s.Title), MaxTitleLength)
		if title == "" {
			title = fmt.Sprintf("Section %d", len(c.sections)+1)
		}
		c.sections = append(c.sections, Section{Title: title, Text: text})
		added++
	}
	return added, len(c.sections)
}

// Clear drops every merged section. Irreversible.
func (c *Composer) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sections = nil
}

// Compose renders the full instruction text for the given spice level:
// base template, operator addendum (when set), then each merged section as
// its own titled block in merge order.
func (c *Composer) Compose(spice int) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.composeLocked(spice)
}

// composeLocked renders the instruction text; callers must hold c.mu.
func (c *Composer) composeLocked(spice int) string {
	var b strings.Builder
	fmt.Fprintf(&b, basePersona, SpicePolicy(spice))
	b.WriteString("\n")
	b.WriteString(founderPlaybook)

	if c.addendum != "" {
		b.WriteString("\n# Operator Addendum\n")
		b.WriteString(c.addendum)
		b.WriteString("\n")
	}

	if len(c.sections) > 0 {
		b.WriteString("\n" + sectionsHeader + "\n")
		for _, s := range c.sections {
			fmt.Fprintf(&b, "\n## %s\n%s\n", s.Title, s.Text)
		}
	}
	return b.String()
}

// ComposeDefault renders the instruction text at the configured spice level.
func (c *Composer) ComposeDefault() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.composeLocked(c.spice)
}

// Snapshot reports the current composition inputs plus a truncated preview
// of the composed output. Preview and titles come from one critical section,
// so they always describe the same state.
func (c *Composer) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	preview := truncate(c.composeLocked(c.spice), 400)
	titles := make([]string, 0, len(c.sections))
	for _, s := range c.sections {
		titles = append(titles, s.Title)
	}
	return Snapshot{
		Spice:       c.spice,
		AddendumSet: c.addendum != "",
		Titles:      titles,
		Preview:     preview,
	}
}

// truncate cuts s to at most max bytes without splitting a rune.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	for max > 0 && !utf8.RuneStart(s[max]) {
		max--
	}
	return s[:max]
}
