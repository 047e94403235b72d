package i18n

import (
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TranslateFields resolves only the bilingual values named by the dotted
// paths (e.g. "category.name") in a deep copy of doc. Every other field,
// bilingual or not, is left as stored. Paths that do not exist on doc are
// skipped.
//
// Subcategories embedded under category.subCategories always get their
// "name" resolved, whether or not the caller listed it. Their descriptions
// are never touched here.
func TranslateFields(doc any, lang string, paths []string) any {
	if !isObject(doc) {
		return doc
	}
	root := clone(doc)

	for _, p := range paths {
		if p = strings.TrimSpace(p); p == "" {
			continue
		}
		translatePath(root, strings.Split(p, "."), lang)
	}

	if category, ok := get(root, "category"); ok && isObject(category) {
		if subs, ok := get(category, "subCategories"); ok {
			mapElements(subs, func(el any) any {
				return TranslateFields(el, lang, []string{"name"})
			})
		}
	}
	return root
}

func translatePath(obj any, segments []string, lang string) {
	cur := obj
	for _, seg := range segments[:len(segments)-1] {
		next, ok := get(cur, seg)
		if !ok || !isObject(next) {
			return
		}
		cur = next
	}
	last := segments[len(segments)-1]
	value, ok := get(cur, last)
	if !ok || !IsBilingual(value) {
		return
	}
	set(cur, last, Resolve(value, lang))
}

func isObject(v any) bool {
	switch v.(type) {
	case map[string]any, primitive.M, primitive.D:
		return true
	}
	return false
}

func get(obj any, key string) (any, bool) {
	switch v := obj.(type) {
	case map[string]any:
		x, ok := v[key]
		return x, ok
	case primitive.M:
		x, ok := v[key]
		return x, ok
	case primitive.D:
		for _, e := range v {
			if e.Key == key {
				return e.Value, true
			}
		}
	}
	return nil, false
}

// set replaces an existing key in place. obj must come from clone.
func set(obj any, key string, value any) {
	switch v := obj.(type) {
	case map[string]any:
		v[key] = value
	case primitive.M:
		v[key] = value
	case primitive.D:
		for i := range v {
			if v[i].Key == key {
				v[i].Value = value
				return
			}
		}
	}
}

// mapElements rewrites array elements in place. arr must come from clone.
func mapElements(arr any, fn func(any) any) {
	switch v := arr.(type) {
	case []any:
		for i := range v {
			v[i] = fn(v[i])
		}
	case primitive.A:
		for i := range v {
			v[i] = fn(v[i])
		}
	}
}
