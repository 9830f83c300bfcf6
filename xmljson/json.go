package xmljson

import (
	"encoding/json"
	"sort"
)

// EmitJSON marshals root into a JSON document per the grouping rule:
// children that share a tag name are collected into one array (in
// ascending line-number order); a tag with exactly one child of that name
// becomes a single nested value (an object, or a bare string for a
// content-only element) instead of a one-element array. Go's
// encoding/json sorts a map[string]any's keys alphabetically on marshal,
// which is what gives output in tag-name order without a hand-rolled
// indenting printer.
func EmitJSON(root *Element) ([]byte, error) {
	val, err := buildValue(root)
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(val, "", "  ")
}

func buildValue(e *Element) (interface{}, error) {
	if e.hasContent() && !e.hasAttributes() && !e.hasChildren() {
		return e.Content, nil
	}

	obj := make(map[string]interface{})
	if e.hasContent() {
		obj["content"] = e.Content
	}
	for _, attr := range e.Attributes {
		obj[attr.Name] = attr.Value
	}

	sorted := make([]*Element, len(e.Children))
	copy(sorted, e.Children)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Tag != sorted[j].Tag {
			return sorted[i].Tag < sorted[j].Tag
		}
		return sorted[i].Line < sorted[j].Line
	})

	for i := 0; i < len(sorted); {
		j := i + 1
		for j < len(sorted) && sorted[j].Tag == sorted[i].Tag {
			j++
		}

		group := sorted[i:j]
		if len(group) == 1 {
			v, err := buildValue(group[0])
			if err != nil {
				return nil, err
			}
			obj[group[0].Tag] = v
		} else {
			arr := make([]interface{}, 0, len(group))
			for _, child := range group {
				v, err := buildValue(child)
				if err != nil {
					return nil, err
				}
				arr = append(arr, v)
			}
			obj[group[0].Tag] = arr
		}

		i = j
	}

	return obj, nil
}
