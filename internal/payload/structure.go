// SPDX-FileCopyrightText: 2026 payloaddoc
// SPDX-License-Identifier: FSL-1.1-MIT

package payload

import (
	"bytes"
	"strings"

	"github.com/payloaddoc/payloaddoc/pkg/types"
)

// Structure is a deduplicated outline of a JSON document's shape. Array
// elements with structurally equal shapes collapse to one representative, so
// the outline stays bounded regardless of element count. Built once per
// document for rendering and then discarded.
type Structure struct {
	root      *node
	content   interface{}
	processor *FieldProcessor
}

type nodeKind int

const (
	scalarKind nodeKind = iota
	objectKind
	arrayKind
)

// node mirrors one structural position of the document. Object children are
// named and keep insertion order; array children are the deduplicated set of
// element shapes. path is the synthetic field path used to re-extract the
// node's value from the original document for type display.
type node struct {
	kind     nodeKind
	name     string
	path     string
	children []*node
}

// NewStructure decodes raw JSON content and builds its shape tree.
func NewStructure(raw []byte) (*Structure, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, ErrEmptyContent
	}
	content, err := Decode(raw)
	if err != nil {
		return nil, err
	}
	return &Structure{
		root:      newNode("", "", content),
		content:   content,
		processor: NewFieldProcessor(),
	}, nil
}

func newNode(name, parentPath string, value interface{}) *node {
	if list, ok := value.([]interface{}); ok {
		n := &node{kind: arrayKind, name: name, path: parentPath + name + wildcardSegment}
		for _, item := range list {
			child := newNode("", n.path, item)
			if !containsShape(n.children, child) {
				n.children = append(n.children, child)
			}
		}
		return n
	}

	path := parentPath
	if name != "" {
		path = parentPath + "['" + name + "']"
	}
	if obj, ok := value.(*Object); ok {
		n := &node{kind: objectKind, name: name, path: path}
		for _, key := range obj.Keys() {
			child, _ := obj.Get(key)
			n.children = append(n.children, newNode(key, n.path, child))
		}
		return n
	}
	return &node{kind: scalarKind, name: name, path: path}
}

// shapeEqual is the structural equivalence used for array-element
// deduplication: scalars are always equal, objects compare key sets with
// recursively equal child shapes, arrays compare child-shape sets.
func shapeEqual(a, b *node) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case scalarKind:
		return true
	case objectKind:
		if len(a.children) != len(b.children) {
			return false
		}
		for _, ca := range a.children {
			cb := childNamed(b, ca.name)
			if cb == nil || !shapeEqual(ca, cb) {
				return false
			}
		}
		return true
	default: // arrayKind: children are already deduplicated sets
		if len(a.children) != len(b.children) {
			return false
		}
		for _, ca := range a.children {
			if !containsShape(b.children, ca) {
				return false
			}
		}
		return true
	}
}

func childNamed(n *node, name string) *node {
	for _, child := range n.children {
		if child.name == name {
			return child
		}
	}
	return nil
}

func containsShape(nodes []*node, candidate *node) bool {
	for _, n := range nodes {
		if shapeEqual(n, candidate) {
			return true
		}
	}
	return false
}

// String renders the outline: object nodes as "{ ... }" blocks, array nodes
// as "[ ... ]" blocks, scalar nodes as their resolved field type, indented
// four spaces per nesting level.
func (s *Structure) String() string {
	var b strings.Builder
	s.render(&b, s.root, 0)
	return b.String()
}

func (s *Structure) render(b *strings.Builder, n *node, depth int) {
	indent := strings.Repeat("    ", depth)
	b.WriteString(indent)
	if n.name != "" {
		b.WriteString(n.name)
		b.WriteString(": ")
	}
	switch n.kind {
	case objectKind:
		b.WriteString("{\n")
		for _, child := range n.children {
			s.render(b, child, depth+1)
		}
		b.WriteString(indent)
		b.WriteString("}\n")
	case arrayKind:
		b.WriteString("[ \n")
		for _, child := range n.children {
			s.render(b, child, depth+1)
		}
		b.WriteString(indent)
		b.WriteString("]\n")
	default:
		b.WriteString(string(s.scalarType(n)))
		b.WriteByte('\n')
	}
}

// scalarType resolves a scalar node's type by re-extracting its synthetic
// path from the original document. A path through an array yields every
// element at that position; heterogeneous element types resolve to Varies.
func (s *Structure) scalarType(n *node) types.FieldType {
	if n.path == "" {
		// the whole document is a scalar
		return Classify(s.content)
	}
	path, err := Compile(n.path)
	if err != nil {
		return types.FieldTypeVaries
	}
	extracted, err := s.processor.Extract(path, s.content)
	if err != nil {
		return types.FieldTypeVaries
	}
	items, ok := extracted.([]interface{})
	if !ok || !path.HasWildcard() {
		return Classify(extracted)
	}
	var resolved types.FieldType
	for _, item := range items {
		itemType := Classify(item)
		if resolved == "" {
			resolved = itemType
			continue
		}
		if resolved != itemType {
			return types.FieldTypeVaries
		}
	}
	if resolved == "" {
		return types.FieldTypeVaries
	}
	return resolved
}
