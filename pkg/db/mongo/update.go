// Package mongo holds shared helpers for talking to the MongoDB storage
// layer.
package mongo

import "go.mongodb.org/mongo-driver/bson"

// SetBuilder accumulates field assignments into a partial-update document
// that mutates only the supplied fields, leaving all others untouched.
// Fields appear in the built document in call order, so callers fix the
// enumeration order per resource rather than following request-body order.
type SetBuilder struct {
	fields bson.D
}

func NewSetBuilder() *SetBuilder {
	return &SetBuilder{}
}

// Set records an assignment for field. Field names need no escaping here:
// keys in the update document are never interpreted as operator syntax.
func (b *SetBuilder) Set(field string, value any) *SetBuilder {
	b.fields = append(b.fields, bson.E{Key: field, Value: value})
	return b
}

// Empty reports whether the update degenerates to a no-op.
func (b *SetBuilder) Empty() bool {
	return len(b.fields) == 0
}

func (b *SetBuilder) Len() int {
	return len(b.fields)
}

// Document produces the $set update instruction for the accumulated fields.
func (b *SetBuilder) Document() bson.M {
	return bson.M{"$set": b.fields}
}
