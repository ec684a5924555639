package utils

import (
	"fmt"
	"strings"

	"github.com/elliotchance/orderedmap/v2"
)

// OrderedMapToString converts the ordered map to a readable string, keeping insertion order.
func OrderedMapToString(m *orderedmap.OrderedMap[string, any]) string {
	if m == nil || m.Len() == 0 {
		return "[]"
	}
	var sb strings.Builder
	sb.WriteByte('[')
	for el := m.Front(); el != nil; el = el.Next() {
		if el != m.Front() {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%s=%v", el.Key, el.Value)
	}
	sb.WriteByte(']')
	return sb.String()
}

// Fields converts the ordered map into logrus fields.
func Fields(m *orderedmap.OrderedMap[string, any]) map[string]any {
	if m == nil {
		return nil
	}
	f := make(map[string]any, m.Len())
	for el := m.Front(); el != nil; el = el.Next() {
		f[el.Key] = el.Value
	}
	return f
}
