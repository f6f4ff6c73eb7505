package inmemdb

import (
	"sort"
	"strings"

	"github.com/aulahub/academia/core"
)

func sortedKeys[V any](m map[int]V) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}

// rows copies a table into a slice ordered by id.
func rows[V any](m map[int]*V) []V {
	out := make([]V, 0, len(m))
	for _, k := range sortedKeys(m) {
		out = append(out, *m[k])
	}
	return out
}

// orderRows sorts rows in place following ordering. field returns the value of a column for a row.
func orderRows[V any](rows []V, ordering []core.DBOrdering, field func(row V, name string) interface{}) {
	if len(ordering) == 0 {
		ordering = core.DefaultOrdering
	}
	sort.SliceStable(rows, func(i, j int) bool {
		for _, ord := range ordering {
			c := compare(field(rows[i], ord.Field), field(rows[j], ord.Field))
			if c == 0 {
				continue
			}
			if ord.Ascending {
				return c < 0
			}
			return c > 0
		}
		return false
	})
}

func compare(a, b interface{}) int {
	switch va := a.(type) {
	case int:
		vb, _ := b.(int)
		return cmpOrdered(va, vb)
	case float64:
		vb, _ := b.(float64)
		return cmpOrdered(va, vb)
	case string:
		vb, _ := b.(string)
		return strings.Compare(va, vb)
	case bool:
		vb, _ := b.(bool)
		switch {
		case va == vb:
			return 0
		case !va:
			return -1
		default:
			return 1
		}
	case core.Date:
		vb, _ := b.(core.Date)
		return va.Compare(vb.Time)
	}
	return 0
}

func cmpOrdered[T int | float64](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
