package converter

import (
	"errors"
	"fmt"

	"github.com/yuin/goldmark/ast"
)

// ErrUnsupportedNode marks conversions aborted by a Markdown construct
// outside the supported subset.
var ErrUnsupportedNode = errors.New("converter: unsupported markdown node")

// UnsupportedNodeError names the node kind that aborted a conversion.
type UnsupportedNodeError struct {
	NodeKind string
}

func (e *UnsupportedNodeError) Error() string {
	if e == nil || e.NodeKind == "" {
		return ErrUnsupportedNode.Error()
	}
	return fmt.Sprintf("%s: %s", ErrUnsupportedNode.Error(), e.NodeKind)
}

func (e *UnsupportedNodeError) Unwrap() error {
	return ErrUnsupportedNode
}

func unsupported(node ast.Node) error {
	return &UnsupportedNodeError{NodeKind: node.Kind().String()}
}
