package cmd

import (
	"context"

	"github.com/viant/hmap/static/generate"
)

// GenerateCmd writes the Go source of the schema's compile-time map.
type GenerateCmd struct {
	Output string `short:"o" long:"output" description:"output location, defaults to the schema output or stdout"`
}

func (c *GenerateCmd) Execute(_ []string) error {
	s, err := schemaSingleton()
	if err != nil {
		return err
	}
	src, err := generate.Generate(s)
	if err != nil {
		return err
	}
	output := c.Output
	if output == "" {
		output = s.Output
	}
	if output == "" {
		_, err = stdout.Write(src)
		return err
	}
	return generate.Write(context.Background(), output, src)
}
