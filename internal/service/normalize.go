package service

import (
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/cast"
)

// decodePage normalizes the list payloads the backend returns in several
// shapes: {<entity>: [...], total}, {items: [...], total}, a double-wrapped
// {data: {...}} or a bare array. Missing pieces degrade to an empty list and
// a zero/derived total instead of failing.
func decodePage(payload any, entityKey string) ([]map[string]any, int) {
	switch v := payload.(type) {
	case []any:
		items := toMaps(v)
		return items, len(items)
	case map[string]any:
		list, ok := listValue(v, entityKey)
		if !ok {
			switch inner := v["data"].(type) {
			case map[string]any:
				if l, innerOK := listValue(inner, entityKey); innerOK {
					list, v, ok = l, inner, true
				}
			case []any:
				list, ok = inner, true
			}
		}
		if !ok {
			return []map[string]any{}, 0
		}
		items := toMaps(list)
		total := cast.ToInt(v["total"])
		if total == 0 {
			total = len(items)
		}
		return items, total
	default:
		return []map[string]any{}, 0
	}
}

func listValue(m map[string]any, entityKey string) ([]any, bool) {
	for _, key := range []string{entityKey, "items"} {
		if arr, ok := m[key].([]any); ok {
			return arr, true
		}
	}
	return nil, false
}

func toMaps(arr []any) []map[string]any {
	out := make([]map[string]any, 0, len(arr))
	for _, item := range arr {
		if m, ok := item.(map[string]any); ok {
			out = append(out, normalizeItem(m))
		}
	}
	return out
}

// normalizeItem applies the wire-to-domain fixups shared by every entity:
// Mongo-style "_id" becomes "id", and an embedded category object collapses
// to its name (falling back to its id).
func normalizeItem(m map[string]any) map[string]any {
	if _, ok := m["id"]; !ok {
		if v, ok := m["_id"]; ok {
			m["id"] = cast.ToString(v)
		}
	}
	if cat, ok := m["category"].(map[string]any); ok {
		if name, ok := cat["name"].(string); ok && name != "" {
			m["category"] = name
		} else if id, ok := cat["id"]; ok {
			m["category"] = cast.ToString(id)
		} else if id, ok := cat["_id"]; ok {
			m["category"] = cast.ToString(id)
		}
	}
	return m
}

// decodeItems maps normalized item maps into a typed slice pointer.
func decodeItems(items []map[string]any, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		TagName:          "json",
		WeaklyTypedInput: true,
	})
	if err != nil {
		return err
	}
	return dec.Decode(items)
}

// decodeItem maps a single payload (usually a map) into a typed struct
// pointer after the shared fixups.
func decodeItem(payload any, out any) error {
	if m, ok := payload.(map[string]any); ok {
		payload = normalizeItem(m)
	}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		TagName:          "json",
		WeaklyTypedInput: true,
	})
	if err != nil {
		return err
	}
	return dec.Decode(payload)
}
