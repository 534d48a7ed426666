package mongo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestSetBuilder_Empty(t *testing.T) {
	b := NewSetBuilder()
	assert.True(t, b.Empty())
	assert.Equal(t, 0, b.Len())

	b.Set("name", "Alice")
	assert.False(t, b.Empty())
	assert.Equal(t, 1, b.Len())
}

func TestSetBuilder_PreservesCallOrder(t *testing.T) {
	b := NewSetBuilder()
	b.Set("name", "Alice").Set("rating", 4.5).Set("photo_url", "")

	doc := b.Document()
	fields, ok := doc["$set"].(bson.D)
	require.True(t, ok)
	require.Len(t, fields, 3)

	assert.Equal(t, "name", fields[0].Key)
	assert.Equal(t, "rating", fields[1].Key)
	assert.Equal(t, "photo_url", fields[2].Key)
}

func TestSetBuilder_ZeroValuesAreKept(t *testing.T) {
	b := NewSetBuilder()
	b.Set("rating", 0.0)
	b.Set("specialties", []string{})

	doc := b.Document()
	fields := doc["$set"].(bson.D)
	require.Len(t, fields, 2)
	assert.Equal(t, 0.0, fields[0].Value)
	assert.Equal(t, []string{}, fields[1].Value)
}
