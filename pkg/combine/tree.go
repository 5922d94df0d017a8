// File: pkg/combine/tree.go
package combine

import (
	"path/filepath"
	"slices"
	"strings"
)

// treeNode is a directory or file in the rendered tree.
type treeNode struct {
	name     string
	children map[string]*treeNode
}

// GenerateTree renders the given root-relative file paths as an indented tree,
// directories first and then files, each group sorted case-insensitively.
func GenerateTree(rootName string, files []string) string {
	top := &treeNode{name: rootName, children: map[string]*treeNode{}}
	for _, file := range files {
		node := top
		for _, part := range strings.Split(filepath.ToSlash(file), "/") {
			child, ok := node.children[part]
			if !ok {
				child = &treeNode{name: part, children: map[string]*treeNode{}}
				node.children[part] = child
			}
			node = child
		}
	}

	var treeBuilder strings.Builder
	treeBuilder.WriteString(rootName + "/\n")
	generateTreeRecursively(&treeBuilder, top, "")
	return treeBuilder.String()
}

// generateTreeRecursively writes the children of node with the given prefix.
func generateTreeRecursively(b *strings.Builder, node *treeNode, prefix string) {
	entries := make([]*treeNode, 0, len(node.children))
	for _, child := range node.children {
		entries = append(entries, child)
	}

	// Directories first, then files, alphabetically
	slices.SortFunc(entries, func(a, b *treeNode) int {
		if a.isDir() != b.isDir() {
			if a.isDir() {
				return -1
			}
			return 1
		}
		return strings.Compare(strings.ToLower(a.name), strings.ToLower(b.name))
	})

	for i, entry := range entries {
		connector := "├── "
		extension := "│   "
		if i == len(entries)-1 {
			connector = "└── "
			extension = "    "
		}

		if entry.isDir() {
			b.WriteString(prefix + connector + entry.name + "/\n")
			generateTreeRecursively(b, entry, prefix+extension)
		} else {
			b.WriteString(prefix + connector + entry.name + "\n")
		}
	}
}

func (n *treeNode) isDir() bool {
	return len(n.children) > 0
}
