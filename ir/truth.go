package ir

// Truth reports the loose truthiness of a node. Absent (nil) and null nodes,
// zero numbers, empty strings, false and empty containers are all false.
// Embedded records are always true.
func Truth(node *Node) bool {
	if node == nil {
		return false
	}
	switch node.Type {
	case ObjectType:
		return len(node.Fields) != 0
	case ArrayType:
		return len(node.Values) != 0
	case StringType:
		return node.String != ""
	case NumberType:
		if node.Int64 != nil {
			return *node.Int64 != 0
		}
		if node.Float64 != nil {
			return *node.Float64 != 0.0
		}
		return node.Number != ""
	case BoolType:
		return node.Bool
	case RecordType:
		return node.Record != nil
	case NullType:
		return false
	default:
		panic("type")
	}
}

// Present reports whether node holds a value: it is neither nil nor null.
func Present(node *Node) bool {
	return node != nil && node.Type != NullType
}
