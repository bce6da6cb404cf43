package jsonconfig

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/luci/go-render/render"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/twitter/robotlegs/ice"
)

// Schema holds the different Implementations's the client wants to configure
type Schema map[string]Implementations

// EmptySchema returns an empty Schema, needed if you don't allow configuration
func EmptySchema() Schema {
	return map[string]Implementations{}
}

// Implementations maps the the names of implementations to the Implementation
// As a special case, "" maps to a default implementation that will not be unmarshal'ed,
// and so the Implementation will be used as-is.
type Implementations map[string]Implementation

type Implementation interface {
	// The Implementation needs to do 3 things:
	// 1) parse the JSON config
	// 2) add the relevant providers to the ice MagicBag
	// 3) print its configuration
	// 1 & 3 are handled implicitly by json.(Un)marshal
	// 2 is handled by being an ice Module
	ice.Module
}

type Configuration map[string]ice.Module

// Configuration is itself a Module, that installs each Impl as a Module
// (in Design Patterns terminology, it's a Composite)
// Options are installed in name order.
func (c Configuration) Install(bag *ice.MagicBag) {
	names := make([]string, 0, len(c))
	for name := range c {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if err := bag.InstallModule(c[name]); err != nil {
			panic(errors.Wrapf(err, "installing %v", name))
		}
	}
}

var emptyJson = []byte("{}")

func (schema Schema) Parse(text []byte) (Configuration, error) {
	var parsedConfig map[string]json.RawMessage
	if len(text) == 0 {
		text = emptyJson
	}
	err := json.Unmarshal(text, &parsedConfig)
	if err != nil {
		return nil, errors.Wrap(err, "couldn't parse top-level config")
	}
	for optionName := range parsedConfig {
		if _, ok := schema[optionName]; !ok {
			return nil, fmt.Errorf("unknown option %q in config", optionName)
		}
	}

	result := Configuration(make(map[string]ice.Module))
	// Parse each option (aka Implementations, which isn't a valid variable name)
	for optionName, impls := range schema {
		optionText := parsedConfig[optionName]
		// null is the same as leaving the option out
		if bytes.Equal(bytes.TrimSpace(optionText), []byte("null")) {
			optionText = nil
		}
		// Parse this Implementations's JSON just enough to get the type
		implName, err := parseType(optionText)
		if err != nil {
			return nil, errors.Wrapf(err, "error parsing type for Implementations %v", optionName)
		}
		impl, ok := impls[implName]
		if !ok {
			return nil, fmt.Errorf("error parsing Implementations %v: %q is not a valid Implementation", optionName, implName)
		}
		if len(optionText) > 0 {
			// Now parse it fully, with the right Implementation
			err = json.Unmarshal(optionText, &impl)
			if err != nil {
				return nil, errors.Wrapf(err, "error parsing variable %v", optionName)
			}
		}
		if impl == nil {
			return nil, fmt.Errorf("error parsing Implementations %v: no Implementation for %q", optionName, implName)
		}
		result[optionName] = impl
	}
	log.Debugf("config parsed to: %s", render.Render(result))
	return result, nil
}

// Find the type, which is simply the string value for the key "Type"
func parseType(data json.RawMessage) (string, error) {
	if len(data) == 0 {
		return "", nil
	}
	var t struct{ Type string }
	err := json.Unmarshal(data, &t)
	if err != nil {
		return "", err
	}
	return t.Type, nil
}
