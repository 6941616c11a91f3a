// Package csv provides conversion between typed rows and Shape AST nodes.
package csv

import (
	"fmt"

	"github.com/shapestone/shape-core/pkg/ast"
)

// ToNode converts rows to Shape's unified AST.
//
// The result is an *ast.ArrayDataNode with one *ast.ObjectNode per row.
// Each property is an *ast.LiteralNode holding an int64, float64 or string
// according to the Value variant.
//
// Example:
//
//	rows := csv.Parse("name,age\nAlice,30\n", ',')
//	node := csv.ToNode(rows)
//	// node.(*ast.ArrayDataNode).Elements()[0] is the object {name: "Alice", age: 30}
func ToNode(rows []Row) ast.SchemaNode {
	// Use empty position since the rows no longer carry input offsets
	pos := ast.Position{}

	elements := make([]ast.SchemaNode, len(rows))
	for i, row := range rows {
		props := make(map[string]ast.SchemaNode, len(row))
		for key, value := range row {
			props[key] = ast.NewLiteralNode(literal(value), pos)
		}
		elements[i] = ast.NewObjectNode(props, pos)
	}
	return ast.NewArrayDataNode(elements, pos)
}

// FromLiteral converts an AST literal back to a Value.
// int64, float64 and string literals map to Integer, Float and Text; other
// Go int and float types are widened. Anything else is an error.
func FromLiteral(node *ast.LiteralNode) (Value, error) {
	if node == nil {
		return nil, fmt.Errorf("csv: nil literal node")
	}

	switch v := node.Value().(type) {
	case int64:
		return Integer(v), nil
	case int:
		return Integer(v), nil
	case int32:
		return Integer(v), nil
	case float64:
		return Float(v), nil
	case float32:
		return Float(v), nil
	case string:
		return Text(v), nil
	default:
		return nil, fmt.Errorf("csv: unsupported literal type %T", v)
	}
}

// literal returns the Go value stored in an AST literal for v.
func literal(v Value) interface{} {
	switch v := v.(type) {
	case Integer:
		return int64(v)
	case Float:
		return float64(v)
	case Text:
		return string(v)
	default:
		return nil
	}
}
