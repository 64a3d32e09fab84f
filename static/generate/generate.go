package generate

import (
	"bytes"
	"context"
	"fmt"
	"go/format"
	"go/parser"
	"go/token"
	"strconv"
	"strings"

	"github.com/viant/afs"
	"github.com/viant/hmap/static"
	"github.com/viant/hmap/static/schema"
)

const header = "// Code generated by hmapgen. DO NOT EDIT.\n\n"

type field struct {
	pair     *schema.Pair
	accessor string
	param    string
	tag      string
	selector string
}

type node struct {
	name      string
	valueType string
	left      string
	right     string
}

// Generator renders the source of one compile-time map.
type Generator struct {
	schema   *schema.Schema
	tree     static.Tree
	declared []*field
	sorted   []*field
	nodes    []*node
}

// New validates s, builds its key tree and derives every identifier. All
// schema errors are reported here.
func New(s *schema.Schema) (*Generator, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if !token.IsIdentifier(s.Package) {
		return nil, static.NewError(static.InvalidSchema, "", fmt.Sprintf("invalid package name %q", s.Package))
	}
	if !token.IsIdentifier(s.Name) || !token.IsExported(s.Name) {
		return nil, static.NewError(static.InvalidSchema, "", fmt.Sprintf("invalid map name %q", s.Name))
	}
	for _, pair := range s.Pairs {
		if _, err := parser.ParseExpr(pair.Type); err != nil {
			return nil, static.NewError(static.InvalidSchema, pair.Key, fmt.Sprintf("invalid type %q: %v", pair.Type, err))
		}
		if pair.Value == "" {
			continue
		}
		if _, err := parser.ParseExpr(pair.Value); err != nil {
			return nil, static.NewError(static.InvalidSchema, pair.Key, fmt.Sprintf("invalid value %q: %v", pair.Value, err))
		}
	}
	tree, err := s.Tree()
	if err != nil {
		return nil, err
	}
	ret := &Generator{schema: s, tree: tree}
	if err = ret.initFields(); err != nil {
		return nil, err
	}
	ret.initNodes()
	return ret, nil
}

func (g *Generator) initFields() error {
	used := map[string]string{"Entries": ""}
	params := map[string]string{}
	byKey := map[string]*field{}
	for _, pair := range g.schema.Pairs {
		name := Name(pair.Key)
		if pair.Name != "" {
			if !token.IsIdentifier(pair.Name) {
				return static.NewError(static.InvalidSchema, pair.Key, fmt.Sprintf("invalid identifier %q", pair.Name))
			}
			name = Name(pair.Name)
		}
		accessor := name.Exported()
		if accessor == "" {
			return static.NewError(static.InvalidSchema, pair.Key, "key has no identifier, set name")
		}
		if other, ok := used[accessor]; ok {
			return static.NewError(static.IdentifierCollision, pair.Key,
				fmt.Sprintf("identifier %s is already used by %q", accessor, other))
		}
		param := name.Unexported()
		if other, ok := params[param]; ok {
			return static.NewError(static.IdentifierCollision, pair.Key,
				fmt.Sprintf("parameter %s is already used by %q", param, other))
		}
		used[accessor] = pair.Key
		params[param] = pair.Key
		_, path, err := static.Resolve(g.tree, pair.Key, pair.Type)
		if err != nil {
			return err
		}
		f := &field{
			pair:     pair,
			accessor: accessor,
			param:    param,
			tag:      g.schema.Name + accessor,
			selector: path.Selector("root") + ".value",
		}
		g.declared = append(g.declared, f)
		byKey[pair.Key] = f
	}
	static.Walk(g.tree, func(_ static.Path, n *static.Node) {
		g.sorted = append(g.sorted, byKey[n.Pair.Key])
	})
	return nil
}

func (g *Generator) initNodes() {
	static.Walk(g.tree, func(_ static.Path, n *static.Node) {
		g.nodes = append(g.nodes, &node{
			name:      g.nodeName(n),
			valueType: n.Pair.Type,
			left:      g.nodeName(n.Left),
			right:     g.nodeName(n.Right),
		})
	})
}

func (g *Generator) nodeName(tree static.Tree) string {
	n, ok := tree.(*static.Node)
	if !ok {
		return "static.Empty"
	}
	return Name(g.schema.Name).Unexported() + "Node" + strconv.Itoa(n.Index)
}

// Source returns the formatted source of the map.
func (g *Generator) Source() ([]byte, error) {
	b := &bytes.Buffer{}
	b.WriteString(header)
	g.writeHeader(b)
	g.writeTypes(b)
	g.writeConstructors(b)
	g.writeAccessors(b)
	g.writeTags(b)
	ret, err := format.Source(b.Bytes())
	if err != nil {
		return nil, fmt.Errorf("failed to format %s source: %w", g.schema.Name, err)
	}
	return ret, nil
}

func (g *Generator) writeHeader(b *bytes.Buffer) {
	fmt.Fprintf(b, "package %s\n\nimport (\n", g.schema.Package)
	b.WriteString("\t\"github.com/viant/hmap/key\"\n\t\"github.com/viant/hmap/static\"\n")
	for _, imp := range g.schema.Imports {
		b.WriteString("\t" + importSpec(imp) + "\n")
	}
	b.WriteString(")\n\n")
}

func importSpec(imp string) string {
	parts := strings.Fields(imp)
	for i, part := range parts {
		if !strings.HasPrefix(part, `"`) && i == len(parts)-1 {
			parts[i] = strconv.Quote(part)
		}
	}
	return strings.Join(parts, " ")
}

func (g *Generator) writeTypes(b *bytes.Buffer) {
	var keys []string
	for _, f := range g.sorted {
		keys = append(keys, strconv.Quote(f.pair.Key))
	}
	name := g.schema.Name
	fmt.Fprintf(b, "// %s is a compile-time map with keys %s.\n", name, strings.Join(keys, ", "))
	fmt.Fprintf(b, "type %s struct {\n\troot %s\n}\n\n", name, g.nodeName(g.tree))
	for _, n := range g.nodes {
		fmt.Fprintf(b, "type %s struct {\n\tvalue %s\n\tleft %s\n\tright %s\n}\n\n", n.name, n.valueType, n.left, n.right)
	}
}

func (g *Generator) writeConstructors(b *bytes.Buffer) {
	name := g.schema.Name
	var params, values []string
	for _, f := range g.declared {
		params = append(params, f.param+" "+f.pair.Type)
		values = append(values, f.pair.Value)
	}
	fmt.Fprintf(b, "// New%s returns a new %s holding the supplied values.\n", name, name)
	fmt.Fprintf(b, "func New%s(%s) *%s {\n\tret := &%s{}\n", name, strings.Join(params, ", "), name, name)
	for _, f := range g.declared {
		fmt.Fprintf(b, "\tret.%s = %s\n", f.selector, f.param)
	}
	b.WriteString("\treturn ret\n}\n\n")
	if !g.schema.HasDefaults() {
		return
	}
	fmt.Fprintf(b, "// Default%s returns a new %s holding the schema defaults.\n", name, name)
	fmt.Fprintf(b, "func Default%s() *%s {\n\treturn New%s(%s)\n}\n\n", name, name, name, strings.Join(values, ", "))
}

func (g *Generator) writeAccessors(b *bytes.Buffer) {
	name := g.schema.Name
	for _, f := range g.sorted {
		fmt.Fprintf(b, "// %s returns the value stored under %q.\n", f.accessor, f.pair.Key)
		fmt.Fprintf(b, "func (m *%s) %s() *%s {\n\treturn &m.%s\n}\n\n", name, f.accessor, f.pair.Type, f.selector)
	}
	b.WriteString("// Entries returns copies of the stored pairs keyed for the run-time map.\n")
	fmt.Fprintf(b, "func (m *%s) Entries() []key.Entry {\n\treturn []key.Entry{\n", name)
	for _, f := range g.sorted {
		fmt.Fprintf(b, "\t\tkey.With(%s{}.Dynamic(), m.%s),\n", f.tag, f.selector)
	}
	b.WriteString("\t}\n}\n\n")
}

func (g *Generator) writeTags(b *bytes.Buffer) {
	name := g.schema.Name
	for _, f := range g.sorted {
		text := strconv.Quote(f.pair.Key)
		typ := f.pair.Type
		fmt.Fprintf(b, "// %s is the tag of key %s.\n", f.tag, text)
		fmt.Fprintf(b, "type %s struct{}\n\n", f.tag)
		fmt.Fprintf(b, "var _ static.Tag[%s, %s] = %s{}\n\n", name, typ, f.tag)
		fmt.Fprintf(b, "func (%s) Text() string { return %s }\n\n", f.tag, text)
		fmt.Fprintf(b, "func (%s) Ref(m *%s) *%s { return &m.%s }\n\n", f.tag, name, typ, f.selector)
		fmt.Fprintf(b, "func (%s) Dynamic() key.Typed[%s] { return key.Of[%s](%s) }\n\n", f.tag, typ, typ, text)
	}
}

// Generate renders the source of the map described by s.
func Generate(s *schema.Schema) ([]byte, error) {
	g, err := New(s)
	if err != nil {
		return nil, err
	}
	return g.Source()
}

// Write uploads generated source to URL.
func Write(ctx context.Context, URL string, data []byte) error {
	fs := afs.New()
	if err := fs.Upload(ctx, schema.Normalize(URL), 0o644, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("failed to write %q: %w", URL, err)
	}
	return nil
}
