package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func sampleProductTree(id primitive.ObjectID) map[string]any {
	return map[string]any{
		"_id":         id,
		"name":        map[string]any{"en": "Watch", "ar": "ساعة"},
		"description": map[string]any{"en": "Steel", "ar": ""},
		"basePrice":   200.0,
		"images":      []any{"a.jpg", "b.jpg"},
		"category": map[string]any{
			"name": map[string]any{"en": "Accessories", "ar": "إكسسوارات"},
			"subCategories": []any{
				map[string]any{"name": map[string]any{"en": "Men", "ar": "رجال"}},
				map[string]any{"name": map[string]any{"en": "Women", "ar": "نساء"}, "description": map[string]any{"en": "d", "ar": "و"}},
			},
		},
		"variants": []any{
			map[string]any{
				"options": []any{
					map[string]any{"label": primitive.M{"en": "Red", "ar": "أحمر"}},
				},
			},
		},
	}
}

func TestLocalizeDeepResolvesEveryLevel(t *testing.T) {
	id := primitive.NewObjectID()
	doc := sampleProductTree(id)

	got, ok := LocalizeDeep(doc, EN).(map[string]any)
	require.True(t, ok)

	assert.Equal(t, id, got["_id"])
	assert.Equal(t, "Watch", got["name"])
	assert.Equal(t, "Steel", got["description"])
	assert.Equal(t, 200.0, got["basePrice"])
	assert.Equal(t, []any{"a.jpg", "b.jpg"}, got["images"])

	category := got["category"].(map[string]any)
	assert.Equal(t, "Accessories", category["name"])
	subs := category["subCategories"].([]any)
	assert.Equal(t, "Men", subs[0].(map[string]any)["name"])
	assert.Equal(t, "d", subs[1].(map[string]any)["description"])

	option := got["variants"].([]any)[0].(map[string]any)["options"].([]any)[0].(map[string]any)
	assert.Equal(t, "Red", option["label"])
}

func TestLocalizeDeepDoesNotMutateInput(t *testing.T) {
	doc := sampleProductTree(primitive.NewObjectID())
	_ = LocalizeDeep(doc, AR)

	assert.Equal(t, map[string]any{"en": "Watch", "ar": "ساعة"}, doc["name"])
	category := doc["category"].(map[string]any)
	assert.IsType(t, map[string]any{}, category["name"])
}

func TestLocalizeDeepIdempotent(t *testing.T) {
	doc := sampleProductTree(primitive.NewObjectID())
	for _, lang := range []string{EN, AR, "fr"} {
		once := LocalizeDeep(doc, lang)
		assert.Equal(t, once, LocalizeDeep(once, lang), lang)
	}
}

func TestLocalizeDeepBSONContainers(t *testing.T) {
	doc := primitive.D{
		{Key: "title", Value: primitive.D{{Key: "en", Value: "Sale"}, {Key: "ar", Value: "تخفيض"}}},
		{Key: "tags", Value: primitive.A{primitive.M{"en": "new", "ar": "جديد"}, "plain"}},
		{Key: "productRef", Value: primitive.NilObjectID},
	}

	got := LocalizeDeep(doc, AR).(primitive.D)
	assert.Equal(t, primitive.D{
		{Key: "title", Value: "تخفيض"},
		{Key: "tags", Value: primitive.A{"جديد", "plain"}},
		{Key: "productRef", Value: primitive.NilObjectID},
	}, got)
}

func TestLocalizeDeepTypedText(t *testing.T) {
	doc := map[string]any{
		"name":  Text{EN: "Bag", AR: "حقيبة"},
		"items": []map[string]any{{"name": &Text{EN: "Strap"}}},
	}
	got := LocalizeDeep(doc, AR).(map[string]any)
	assert.Equal(t, "حقيبة", got["name"])
	assert.Equal(t, "Strap", got["items"].([]any)[0].(map[string]any)["name"])
}

func TestLocalizeDeepScalars(t *testing.T) {
	assert.Equal(t, "x", LocalizeDeep("x", EN))
	assert.Nil(t, LocalizeDeep(nil, EN))
	assert.Equal(t, 3.5, LocalizeDeep(3.5, EN))
}
