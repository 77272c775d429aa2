package starlarkeval

import (
	"fmt"

	"go.starlark.net/starlark"
)

// ToGo converts a starlark value to its go equivalent: nil, bool, int64,
// float64, string, []any or map[string]any.
func ToGo(value starlark.Value) (any, error) {
	switch t := value.(type) {
	case starlark.NoneType:
		return nil, nil
	case starlark.Bool:
		return bool(t), nil
	case starlark.Int:
		if val, ok := t.Int64(); ok {
			return val, nil
		}
		return nil, fmt.Errorf("int out of range: %v", t)
	case starlark.Float:
		return float64(t), nil
	case starlark.String:
		return t.GoString(), nil
	case *starlark.List:
		list := make([]any, 0, t.Len())
		for i := 0; i < t.Len(); i++ {
			item, err := ToGo(t.Index(i))
			if err != nil {
				return nil, err
			}
			list = append(list, item)
		}
		return list, nil
	case starlark.Tuple:
		list := make([]any, 0, len(t))
		for _, v := range t {
			item, err := ToGo(v)
			if err != nil {
				return nil, err
			}
			list = append(list, item)
		}
		return list, nil
	case *starlark.Dict:
		dict := make(map[string]any, t.Len())
		for _, kv := range t.Items() {
			key, ok := kv[0].(starlark.String)
			if !ok {
				return nil, fmt.Errorf("dict key must be a string, got %s", kv[0].Type())
			}
			item, err := ToGo(kv[1])
			if err != nil {
				return nil, err
			}
			dict[key.GoString()] = item
		}
		return dict, nil
	}
	return nil, fmt.Errorf("unsupported starlark value of type %s", value.Type())
}
