package resources

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var (
	prefixPattern = regexp.MustCompile(`^![a-z]$`)
	keyPattern    = regexp.MustCompile(`^[a-z]$`)
)

// Validate checks a single resource descriptor.
func (r Resource) Validate() error {
	if err := validation.ValidateStruct(&r,
		validation.Field(&r.Kind, validation.Required, validation.In(KindHandbook, KindSite)),
		validation.Field(&r.Prefix, validation.Required, validation.Match(prefixPattern)),
		validation.Field(&r.Name, validation.Required),
		validation.Field(&r.URL, validation.Required, validation.By(absoluteURL)),
		validation.Field(&r.Key, validation.Required, validation.Match(keyPattern)),
	); err != nil {
		return err
	}
	if r.Prefix[1:] != r.Key {
		return fmt.Errorf("resource %q: key %q does not match prefix %q", r.Name, r.Key, r.Prefix)
	}
	return nil
}

// Validate checks every descriptor and the catalog-wide uniqueness of
// prefixes and activation keys.
func (c *Catalog) Validate() error {
	if len(c.resources) == 0 {
		return errors.New("catalog has no resources")
	}

	prefixes := make(map[string]string, len(c.resources))
	keys := make(map[string]string, len(c.resources))
	for i, r := range c.resources {
		if err := r.Validate(); err != nil {
			return fmt.Errorf("resource %d: %w", i, err)
		}
		if other, ok := prefixes[r.Prefix]; ok {
			return fmt.Errorf("prefix %q used by both %q and %q", r.Prefix, other, r.Name)
		}
		if other, ok := keys[r.Key]; ok {
			return fmt.Errorf("key %q used by both %q and %q", r.Key, other, r.Name)
		}
		prefixes[r.Prefix] = r.Name
		keys[r.Key] = r.Name
	}
	return nil
}

func absoluteURL(value any) error {
	s, _ := value.(string)
	u, err := url.Parse(s)
	if err != nil {
		return errors.New("must be a valid URL")
	}
	if u.Scheme != "http" && u.Scheme != "https" || u.Host == "" {
		return errors.New("must be an absolute http(s) URL")
	}
	return nil
}
