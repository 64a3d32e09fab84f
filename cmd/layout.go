package cmd

import (
	"fmt"
	"strings"

	"github.com/viant/hmap/internal/matcher"
	"github.com/viant/hmap/static"
)

// LayoutCmd prints the sorted order of the keys and where each lands in the
// balanced tree.
type LayoutCmd struct {
	Keys string `short:"k" long:"keys" description:"comma separated key prefixes, e.g. foo,ba*"`
}

func (c *LayoutCmd) Execute(_ []string) error {
	s, err := schemaSingleton()
	if err != nil {
		return err
	}
	tree, err := s.Tree()
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "%s: %d keys, depth %d\n", s.Name, tree.Len(), tree.Depth())
	static.Walk(tree, func(path static.Path, node *static.Node) {
		if !matcher.MatchAny(c.Keys, node.Pair.Key) {
			return
		}
		indent := strings.Repeat("  ", len(path))
		fmt.Fprintf(stdout, "%d\t%s%q %s\t%s\n", node.Index, indent, node.Pair.Key, node.Pair.Type, path.Selector("root"))
	})
	return nil
}
