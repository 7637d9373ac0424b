// Package briefing holds the declarative form configurations and the form
// state engine that drives a client through one of them.
package briefing

import (
	"fmt"
	"strings"

	"github.com/cquiroga/briefing-wizard/model"
)

type DataGroup string

const (
	GroupContact DataGroup = "contact"
	GroupContent DataGroup = "content"
	GroupDesign  DataGroup = "design"
	GroupExtra   DataGroup = "extra"
)

type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type Field struct {
	ID          string    `json:"id"`
	Label       string    `json:"label"`
	Type        string    `json:"type"`
	Placeholder string    `json:"placeholder,omitempty"`
	Required    bool      `json:"required,omitempty"`
	Options     []Option  `json:"options,omitempty"`
	HelperText  string    `json:"helperText,omitempty"`
	Group       DataGroup `json:"dataGroup"`
}

type Step struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Fields      []Field `json:"fields"`
}

type Config struct {
	ID          string             `json:"id"`
	Type        model.BriefingType `json:"type"`
	Label       string             `json:"label"`
	Description string             `json:"description"`
	Steps       []Step             `json:"steps"`
	Enabled     bool               `json:"enabled"`
}

// Validate enforces the flat field-id namespace: ids must be unique across
// every step because form values live in one flat map keyed by field id.
func (c *Config) Validate() error {
	seen := map[string]string{}
	for _, s := range c.Steps {
		for _, f := range s.Fields {
			if f.ID == "" {
				return fmt.Errorf("config %s: step %s has a field without id", c.ID, s.ID)
			}
			if prev, ok := seen[f.ID]; ok {
				return fmt.Errorf("config %s: field id %q appears in steps %s and %s", c.ID, f.ID, prev, s.ID)
			}
			seen[f.ID] = s.ID
		}
	}
	return nil
}

// FieldByID looks a field up across all steps.
func (c *Config) FieldByID(id string) (Field, bool) {
	for _, s := range c.Steps {
		for _, f := range s.Fields {
			if f.ID == id {
				return f, true
			}
		}
	}
	return Field{}, false
}

var configs = map[model.BriefingType]*Config{
	model.TypeLanding: landingConfig,
}

func init() {
	for _, c := range configs {
		if err := c.Validate(); err != nil {
			panic(err)
		}
	}
}

// Get returns the configuration for a briefing type, or nil when the type is
// unknown or not yet published.
func Get(briefingType string) *Config {
	return configs[model.BriefingType(strings.ToUpper(briefingType))]
}

func Enabled() []*Config {
	var out []*Config
	for _, c := range configs {
		if c.Enabled {
			out = append(out, c)
		}
	}
	return out
}
