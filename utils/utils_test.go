package utils

import (
	"testing"

	"github.com/elliotchance/orderedmap/v2"
	"github.com/oomph-ac/museum/obstacle"
)

func TestOrderedMapToString(t *testing.T) {
	if s := OrderedMapToString(nil); s != "[]" {
		t.Fatalf("expected [] for nil map, got %q", s)
	}
	m := orderedmap.NewOrderedMap[string, any]()
	m.Set("floor", 1)
	m.Set("label", "Upper Gallery")
	if s := OrderedMapToString(m); s != "[floor=1, label=Upper Gallery]" {
		t.Fatalf("unexpected string %q", s)
	}
	if f := Fields(m); f["floor"] != 1 || len(f) != 2 {
		t.Fatalf("unexpected fields %v", f)
	}
}

func TestObstacleListPool(t *testing.T) {
	list := GetObstacleList()
	*list = append(*list, obstacle.Circle{Radius: 1})
	PutObstacleList(list)
	again := GetObstacleList()
	if len(*again) != 0 {
		t.Fatalf("expected empty list from pool, got %d entries", len(*again))
	}
	PutObstacleList(again)
}

func TestLoggerOrNop(t *testing.T) {
	if LoggerOrNop(nil) == nil {
		t.Fatalf("expected a logger")
	}
}
