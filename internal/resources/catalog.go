package resources

import "slices"

// Kind classifies a resource. It only affects display labels.
type Kind string

const (
	KindHandbook Kind = "handbook"
	KindSite     Kind = "site"
)

// Resource describes one searchable documentation site.
type Resource struct {
	Kind   Kind   `yaml:"kind"`
	Prefix string `yaml:"prefix"` // "!" followed by one lowercase letter
	Name   string `yaml:"name"`
	URL    string `yaml:"url"` // search base URL
	Key    string `yaml:"key"` // activation key in the armed state
}

// DisplayName returns the name shown to users: handbooks read
// "Theme Handbook", sites keep their name.
func (r Resource) DisplayName() string {
	if r.Kind == KindHandbook {
		return r.Name + " Handbook"
	}
	return r.Name
}

// CommandLabel returns the palette label for the resource's search command.
func (r Resource) CommandLabel() string {
	return "Search " + r.DisplayName()
}

// Catalog is an immutable ordered list of resources.
type Catalog struct {
	resources []Resource
}

var defaultResources = []Resource{
	{Kind: KindHandbook, Prefix: "!b", Name: "Block Editor", URL: "https://developer.wordpress.org/block-editor/", Key: "b"},
	{Kind: KindHandbook, Prefix: "!t", Name: "Theme", URL: "https://developer.wordpress.org/themes/", Key: "t"},
	{Kind: KindHandbook, Prefix: "!p", Name: "Plugin", URL: "https://developer.wordpress.org/plugins/", Key: "p"},
	{Kind: KindHandbook, Prefix: "!r", Name: "REST API", URL: "https://developer.wordpress.org/rest-api/", Key: "r"},
	{Kind: KindSite, Prefix: "!l", Name: "Learn WordPress", URL: "https://learn.wordpress.org/", Key: "l"},
	{Kind: KindSite, Prefix: "!v", Name: "WordPress TV", URL: "https://wordpress.tv/", Key: "v"},
}

// Default returns the built-in catalog.
func Default() *Catalog {
	return &Catalog{resources: slices.Clone(defaultResources)}
}

// New builds a catalog from the given resources after validating them.
func New(list []Resource) (*Catalog, error) {
	c := &Catalog{resources: slices.Clone(list)}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// All returns every resource in catalog order.
func (c *Catalog) All() []Resource {
	return slices.Clone(c.resources)
}

// Len returns the number of resources.
func (c *Catalog) Len() int {
	return len(c.resources)
}

// ByKind returns the resources of the given kind, in catalog order.
func (c *Catalog) ByKind(kind Kind) []Resource {
	result := []Resource{}
	for _, r := range c.resources {
		if r.Kind == kind {
			result = append(result, r)
		}
	}
	return result
}

// ByKey returns the resource activated by key, if any.
func (c *Catalog) ByKey(key string) (Resource, bool) {
	for _, r := range c.resources {
		if r.Key == key {
			return r, true
		}
	}
	return Resource{}, false
}

// ByPrefix returns the resource with the given shortcut prefix, if any.
func (c *Catalog) ByPrefix(prefix string) (Resource, bool) {
	for _, r := range c.resources {
		if r.Prefix == prefix {
			return r, true
		}
	}
	return Resource{}, false
}
