package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestTranslateFieldsAllowListOnly(t *testing.T) {
	doc := map[string]any{
		"name":        map[string]any{"en": "Lamp", "ar": "مصباح"},
		"description": map[string]any{"en": "Warm light", "ar": "ضوء دافئ"},
	}

	got := TranslateFields(doc, EN, []string{"name"}).(map[string]any)

	assert.Equal(t,
		[]any{"Lamp", map[string]any{"en": "Warm light", "ar": "ضوء دافئ"}},
		[]any{got["name"], got["description"]},
	)
	assert.Equal(t, map[string]any{"en": "Lamp", "ar": "مصباح"}, doc["name"], "input must stay untouched")
}

func TestTranslateFieldsNestedPaths(t *testing.T) {
	doc := sampleProductTree(primitive.NewObjectID())
	doc["advertisement"] = map[string]any{
		"title":              map[string]any{"en": "Summer", "ar": "صيف"},
		"description":        map[string]any{"en": "", "ar": "عرض"},
		"discountPercentage": 15.0,
	}

	paths := []string{"name", "description", "category.name", "advertisement.title", "advertisement.description"}
	got := TranslateFields(doc, EN, paths).(map[string]any)

	assert.Equal(t, "Watch", got["name"])
	assert.Equal(t, "Steel", got["description"])
	category := got["category"].(map[string]any)
	assert.Equal(t, "Accessories", category["name"])
	ad := got["advertisement"].(map[string]any)
	assert.Equal(t, "Summer", ad["title"])
	assert.Equal(t, "عرض", ad["description"])
	assert.Equal(t, 15.0, ad["discountPercentage"])

	// not listed, stays a pair
	option := got["variants"].([]any)[0].(map[string]any)["options"].([]any)[0].(map[string]any)
	assert.Equal(t, primitive.M{"en": "Red", "ar": "أحمر"}, option["label"])
}

func TestTranslateFieldsSubCategoryRule(t *testing.T) {
	doc := sampleProductTree(primitive.NewObjectID())

	got := TranslateFields(doc, AR, nil).(map[string]any)

	category := got["category"].(map[string]any)
	assert.Equal(t, map[string]any{"en": "Accessories", "ar": "إكسسوارات"}, category["name"])

	subs := category["subCategories"].([]any)
	require.Len(t, subs, 2)
	assert.Equal(t, "رجال", subs[0].(map[string]any)["name"])
	assert.Equal(t, "نساء", subs[1].(map[string]any)["name"])
	assert.Equal(t, map[string]any{"en": "d", "ar": "و"}, subs[1].(map[string]any)["description"])
}

func TestTranslateFieldsMissingPathsAreNoOps(t *testing.T) {
	doc := map[string]any{
		"name":          map[string]any{"en": "Cup", "ar": "كوب"},
		"category":      nil,
		"advertisement": "not-an-object",
	}
	paths := []string{"category.name", "advertisement.title", "missing", "missing.deeper.still", "", "name.en"}

	got := TranslateFields(doc, EN, paths).(map[string]any)
	assert.Equal(t, doc, got)
}

func TestTranslateFieldsBSONDocument(t *testing.T) {
	doc := primitive.M{
		"_id":  primitive.NewObjectID(),
		"name": primitive.D{{Key: "en", Value: "Mug"}, {Key: "ar", Value: "كوب"}},
		"category": primitive.D{
			{Key: "name", Value: primitive.M{"en": "Kitchen", "ar": "مطبخ"}},
			{Key: "subCategories", Value: primitive.A{primitive.M{"name": primitive.M{"en": "Cups", "ar": "أكواب"}}}},
		},
	}

	got := TranslateFields(doc, AR, []string{"name", "category.name"}).(primitive.M)
	assert.Equal(t, "كوب", got["name"])
	category := got["category"].(primitive.D)
	assert.Equal(t, "مطبخ", category[0].Value)
	assert.Equal(t, "أكواب", category[1].Value.(primitive.A)[0].(primitive.M)["name"])

	// original untouched
	assert.IsType(t, primitive.D{}, doc["name"])
	assert.IsType(t, primitive.M{}, doc["category"].(primitive.D)[0].Value)
}

func TestTranslateFieldsNonObject(t *testing.T) {
	list := []any{map[string]any{"name": map[string]any{"en": "x"}}}
	assert.Equal(t, list, TranslateFields(list, EN, []string{"name"}))
	assert.Equal(t, "plain", TranslateFields("plain", EN, []string{"name"}))
}
