package cmd

import (
	"context"
	"errors"
	"io"
	"os"
	"sync"

	"github.com/viant/hmap/static/schema"
)

var (
	schemaLocation string

	schemaOnce sync.Once
	schemaInst *schema.Schema
	schemaErr  error

	stdout io.Writer = os.Stdout
)

// setSchemaLocation remembers the CLI-level -f/--schema parameter so that the
// schema singleton can be loaded lazily by the executed sub-command.
func setSchemaLocation(location string) {
	schemaLocation = location
	schemaOnce = sync.Once{}
}

// schemaSingleton loads the schema only once per CLI invocation.
func schemaSingleton() (*schema.Schema, error) {
	schemaOnce.Do(func() {
		if schemaLocation == "" {
			schemaErr = errors.New("schema location is required, use -f")
			return
		}
		schemaInst, schemaErr = schema.Load(context.Background(), schemaLocation)
	})
	return schemaInst, schemaErr
}
