package robotconfig

import (
	"io"
	"io/ioutil"
	"os"

	"github.com/twitter/robotlegs/config/jsonconfig"
	"github.com/twitter/robotlegs/ice"
)

// Where Handlers print their reactions
type OutputStdoutConfig struct {
	Type string
}

func (c *OutputStdoutConfig) Install(bag *ice.MagicBag) {
	bag.Put(c.Create)
}

func (c *OutputStdoutConfig) Create() io.Writer {
	return os.Stdout
}

type OutputStderrConfig struct {
	Type string
}

func (c *OutputStderrConfig) Install(bag *ice.MagicBag) {
	bag.Put(c.Create)
}

func (c *OutputStderrConfig) Create() io.Writer {
	return os.Stderr
}

type OutputDiscardConfig struct {
	Type string
}

func (c *OutputDiscardConfig) Install(bag *ice.MagicBag) {
	bag.Put(c.Create)
}

func (c *OutputDiscardConfig) Create() io.Writer {
	return ioutil.Discard
}

// Schema is everything robotlegs can be configured with, defaulting to printing to stdout.
func Schema() jsonconfig.Schema {
	return jsonconfig.Schema(map[string]jsonconfig.Implementations{
		"Output": {
			"stdout":  &OutputStdoutConfig{},
			"stderr":  &OutputStderrConfig{},
			"discard": &OutputDiscardConfig{},
			"":        &OutputStdoutConfig{Type: "stdout"},
		},
	})
}
