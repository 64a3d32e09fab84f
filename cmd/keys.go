package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/viant/hmap/internal/matcher"
	"github.com/viant/hmap/static"
)

// KeysCmd prints every key of the schema in key order.
type KeysCmd struct {
	Keys string `short:"k" long:"keys" description:"comma separated key prefixes, e.g. foo,ba*"`
	JSON bool   `long:"json" description:"print result as JSON"`
}

type keyInfo struct {
	Key   string `json:"key"`
	Type  string `json:"type"`
	Value string `json:"value,omitempty"`
}

func (c *KeysCmd) Execute(_ []string) error {
	s, err := schemaSingleton()
	if err != nil {
		return err
	}
	tree, err := s.Tree()
	if err != nil {
		return err
	}
	var keys []keyInfo
	static.Walk(tree, func(_ static.Path, node *static.Node) {
		if !matcher.MatchAny(c.Keys, node.Pair.Key) {
			return
		}
		value, _ := node.Pair.Value.(string)
		keys = append(keys, keyInfo{Key: node.Pair.Key, Type: node.Pair.Type, Value: value})
	})
	if c.JSON {
		data, err := json.MarshalIndent(keys, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(stdout, string(data))
		return nil
	}
	for _, k := range keys {
		fmt.Fprintf(stdout, "%s\t%s\t%s\n", k.Key, k.Type, k.Value)
	}
	return nil
}
