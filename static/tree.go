package static

import (
	"fmt"
	"strings"
)

// Tree is a balanced binary tree of pairs: either a *Node or Empty.
type Tree interface {
	// Len returns the number of pairs
	Len() int
	// Depth returns the number of nodes on the longest root-to-leaf path
	Depth() int
	isTree()
}

// Empty marks an absent subtree. Generated maps use it as the type of
// absent child fields.
type Empty struct{}

func (Empty) Len() int   { return 0 }
func (Empty) Depth() int { return 0 }
func (Empty) isTree()    {}

// Node holds one pair and its subtrees. Index is the position of the pair
// in sorted order.
type Node struct {
	Pair  Pair
	Index int
	Left  Tree
	Right Tree
}

func (n *Node) Len() int { return 1 + n.Left.Len() + n.Right.Len() }

func (n *Node) Depth() int { return 1 + max(n.Left.Depth(), n.Right.Depth()) }

func (n *Node) isTree() {}

// Balance assembles sorted into a balanced tree: the pair at the middle index
// becomes the node and both halves recurse.
func Balance(sorted []Pair) Tree {
	return balance(sorted, 0)
}

func balance(sorted []Pair, offset int) Tree {
	if len(sorted) == 0 {
		return Empty{}
	}
	mid := (len(sorted) - 1) / 2
	return &Node{
		Pair:  sorted[mid],
		Index: offset + mid,
		Left:  balance(sorted[:mid], offset),
		Right: balance(sorted[mid+1:], offset+mid+1),
	}
}

// Build sorts pairs, rejects duplicate keys and balances the result.
func Build(pairs []Pair) (Tree, error) {
	sorted := MergeSort(pairs)
	if err := Duplicates(sorted); err != nil {
		return nil, err
	}
	return Balance(sorted), nil
}

// Step is one branch taken while descending a tree.
type Step int

const (
	Left Step = iota
	Right
)

func (s Step) String() string {
	if s == Left {
		return "left"
	}
	return "right"
}

// Path lists the branches from the root to a node.
type Path []Step

// Selector returns the field selector of the node reached from root, e.g.
// "root.left.right".
func (p Path) Selector(root string) string {
	var b strings.Builder
	b.WriteString(root)
	for _, step := range p {
		b.WriteString(".")
		b.WriteString(step.String())
	}
	return b.String()
}

// Walk visits every node in key order.
func Walk(tree Tree, visit func(path Path, node *Node)) {
	walk(tree, nil, visit)
}

func walk(tree Tree, path Path, visit func(path Path, node *Node)) {
	node, ok := tree.(*Node)
	if !ok {
		return
	}
	walk(node.Left, append(path[:len(path):len(path)], Left), visit)
	visit(path, node)
	walk(node.Right, append(path[:len(path):len(path)], Right), visit)
}

// Resolve descends tree looking for text. A non-empty typ must equal the
// type of the matching pair; an empty typ accepts whatever type is stored.
func Resolve(tree Tree, text, typ string) (*Node, Path, error) {
	var path Path
	for {
		node, ok := tree.(*Node)
		if !ok {
			return nil, nil, NewError(UnknownKey, text, "map doesn't contain key")
		}
		switch c := strings.Compare(text, node.Pair.Key); {
		case c < 0:
			path, tree = append(path, Left), node.Left
		case c > 0:
			path, tree = append(path, Right), node.Right
		default:
			if typ != "" && typ != node.Pair.Type {
				return nil, nil, NewError(WrongValueType, text,
					fmt.Sprintf("map contains key, but it has type %s, not %s", node.Pair.Type, typ))
			}
			return node, path, nil
		}
	}
}
