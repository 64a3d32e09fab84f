package cmd

// Options is the root for the CLI. Struct tags are interpreted by
// github.com/jessevdk/go-flags.
type Options struct {
	Schema string `short:"f" long:"schema" description:"compile-time map schema YAML/JSON location"`

	Generate *GenerateCmd `command:"generate" description:"Generate Go source of a compile-time map"`
	Layout   *LayoutCmd   `command:"layout"   description:"Print the sorted order and balanced key tree"`
	Keys     *KeysCmd     `command:"keys"     description:"Print the keys and value types of a schema"`
}

// Init instantiates the sub-command referenced by the first positional argument
// so that go-flags can populate its fields.
func (o *Options) Init(firstArg string) {
	switch firstArg {
	case "generate":
		o.Generate = &GenerateCmd{}
	case "layout":
		o.Layout = &LayoutCmd{}
	case "keys":
		o.Keys = &KeysCmd{}
	}
}
