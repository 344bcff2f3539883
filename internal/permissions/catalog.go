package permissions

import (
	_ "embed"
	"fmt"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed catalog.yaml
var rawCatalog []byte

// Release channels, from most to least stable.
const (
	ChannelStable = "stable"
	ChannelBeta   = "beta"
	ChannelDev    = "dev"
)

// Extension types a permission can apply to.
const (
	TypeExtension   = "extension"
	TypePlatformApp = "platform_app"
)

// channelRank orders channels so that a query for "beta" also returns
// permissions that already reached "stable".
var channelRank = map[string]int{
	ChannelStable: 0,
	ChannelBeta:   1,
	ChannelDev:    2,
}

// Entry describes a single permission.
type Entry struct {
	Name           string   `yaml:"name"`
	Label          string   `yaml:"label"`
	Channel        string   `yaml:"channel"`
	ExtensionTypes []string `yaml:"extension_types"`
}

// Catalog is an ordered, immutable set of permission entries.
type Catalog struct {
	entries []Entry
	index   map[string]int
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
	defaultErr     error
)

// Default returns the embedded catalog, parsed once.
func Default() (*Catalog, error) {
	defaultOnce.Do(func() {
		defaultCatalog, defaultErr = Load(rawCatalog)
	})
	return defaultCatalog, defaultErr
}

// Load parses catalog YAML. Entries must have unique, non-empty names and a
// known channel.
func Load(data []byte) (*Catalog, error) {
	var entries []Entry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parsing permission catalog: %w", err)
	}
	return New(entries)
}

// New builds a catalog from entries, keeping their order.
func New(entries []Entry) (*Catalog, error) {
	c := &Catalog{
		entries: make([]Entry, 0, len(entries)),
		index:   make(map[string]int, len(entries)),
	}
	for i, e := range entries {
		if e.Name == "" {
			return nil, fmt.Errorf("permission catalog entry %d has no name", i)
		}
		if _, dup := c.index[e.Name]; dup {
			return nil, fmt.Errorf("permission %q declared twice", e.Name)
		}
		if e.Channel == "" {
			e.Channel = ChannelStable
		}
		if _, ok := channelRank[e.Channel]; !ok {
			return nil, fmt.Errorf("permission %q: unknown channel %q", e.Name, e.Channel)
		}
		c.index[e.Name] = len(c.entries)
		c.entries = append(c.entries, e)
	}
	return c, nil
}

// Query returns the permissions available on channel for extType. An empty
// extType matches every type.
func (c *Catalog) Query(channel, extType string) (*Catalog, error) {
	rank, ok := channelRank[channel]
	if !ok {
		return nil, fmt.Errorf("unknown channel %q: expected %s, %s or %s",
			channel, ChannelStable, ChannelBeta, ChannelDev)
	}

	var kept []Entry
	for _, e := range c.entries {
		if channelRank[e.Channel] > rank {
			continue
		}
		if extType != "" && !contains(e.ExtensionTypes, extType) {
			continue
		}
		kept = append(kept, e)
	}
	return New(kept)
}

// Names returns permission names in declaration order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.entries))
	for i, e := range c.entries {
		names[i] = e.Name
	}
	return names
}

// Entries returns a copy of the catalog entries.
func (c *Catalog) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Contains reports whether name is in the catalog.
func (c *Catalog) Contains(name string) bool {
	_, ok := c.index[name]
	return ok
}

// Label returns the human-readable label for name, or name itself when the
// entry carries none.
func (c *Catalog) Label(name string) string {
	i, ok := c.index[name]
	if !ok || c.entries[i].Label == "" {
		return name
	}
	return c.entries[i].Label
}

// Len returns the number of entries.
func (c *Catalog) Len() int { return len(c.entries) }

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
