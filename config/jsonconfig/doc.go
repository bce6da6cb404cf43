/*
Jsonconfig implements configuration, reading json into an ice Module.

To use:

1) Create the Schema. List your configurable Implementations. Each Implementations
can be backed by several named Implementations.
 2. Schema.Parse parses bytes and creates a Configuration.
    a) for each Implementations, pick which Implementation by its "Type".
    b) json.Unmarshal the json into that Implementation
    c) Implementation can now be used as a Module or json.Marshal'ed to print its configuration
 3. Configuration is an ice Module that installs each Implementation

Example:
1) Create the Schema

	schema := jsonconfig.Schema(map[string]jsonconfig.Implementations{
	 "Output": {
	  "stdout": &OutputStdoutConfig{},
	  "discard": &OutputDiscardConfig{},
	  "": &OutputStdoutConfig{Type: "stdout"},
	 },
	})

2) Parse

	mod, _ := schema.Parse([]byte(`{"Output": {"Type": "discard"}}`))

3) Install the Configuration

	bag.InstallModule(mod)

An option left out of the json gets its "" Implementation as-is.
*/
package jsonconfig
