package i18n

import "go.mongodb.org/mongo-driver/bson/primitive"

// LocalizeDeep returns a copy of doc in which every bilingual value, at any
// depth and inside objects or arrays alike, is replaced by its resolved
// string. The input is never modified.
func LocalizeDeep(doc any, lang string) any {
	if IsBilingual(doc) {
		return Resolve(doc, lang)
	}
	switch v := doc.(type) {
	case map[string]any:
		out := make(map[string]any, len(v))
		for k, x := range v {
			out[k] = LocalizeDeep(x, lang)
		}
		return out
	case primitive.M:
		out := make(primitive.M, len(v))
		for k, x := range v {
			out[k] = LocalizeDeep(x, lang)
		}
		return out
	case primitive.D:
		out := make(primitive.D, len(v))
		for i, e := range v {
			out[i] = primitive.E{Key: e.Key, Value: LocalizeDeep(e.Value, lang)}
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, x := range v {
			out[i] = LocalizeDeep(x, lang)
		}
		return out
	case primitive.A:
		out := make(primitive.A, len(v))
		for i, x := range v {
			out[i] = LocalizeDeep(x, lang)
		}
		return out
	case []map[string]any:
		out := make([]any, len(v))
		for i, x := range v {
			out[i] = LocalizeDeep(x, lang)
		}
		return out
	case []primitive.M:
		out := make([]any, len(v))
		for i, x := range v {
			out[i] = LocalizeDeep(x, lang)
		}
		return out
	}
	return doc
}

// clone deep-copies the object and array containers of a document tree.
// Leaves are shared; they are immutable for our purposes.
func clone(doc any) any {
	switch v := doc.(type) {
	case map[string]any:
		out := make(map[string]any, len(v))
		for k, x := range v {
			out[k] = clone(x)
		}
		return out
	case primitive.M:
		out := make(primitive.M, len(v))
		for k, x := range v {
			out[k] = clone(x)
		}
		return out
	case primitive.D:
		out := make(primitive.D, len(v))
		for i, e := range v {
			out[i] = primitive.E{Key: e.Key, Value: clone(e.Value)}
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, x := range v {
			out[i] = clone(x)
		}
		return out
	case primitive.A:
		out := make(primitive.A, len(v))
		for i, x := range v {
			out[i] = clone(x)
		}
		return out
	case []map[string]any:
		out := make([]any, len(v))
		for i, x := range v {
			out[i] = clone(x)
		}
		return out
	case []primitive.M:
		out := make([]any, len(v))
		for i, x := range v {
			out[i] = clone(x)
		}
		return out
	case *Text:
		if v == nil {
			return v
		}
		t := *v
		return &t
	}
	return doc
}
