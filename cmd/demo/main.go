// Command demo is a tiny runnable sanity check of the Set and Map
// facades, independent of the test suite.
package main

import (
	"fmt"
	"sort"

	"github.com/fabianbs/hashtable"
)

func main() {
	s := hashtable.NewScalarSet[int](0)
	for _, v := range []int{1, 3, 5, 7, 9, 8, 6, 3, 4, 2} {
		s.Add(v)
	}
	members := s.Slice()
	sort.Ints(members)
	fmt.Println("set:", members)

	m := hashtable.NewScalarMap[string, int](0)
	m.Set("a", 1)
	m.Set("b", 2)
	m.GetOrCompute("c", func(k string) int { return len(k) * 100 })
	m.Merge("a", 10, func(existing, seed int) int { return existing + seed })

	keys := make([]string, 0, m.Len())
	m.Range(func(k string, v int) bool {
		keys = append(keys, fmt.Sprintf("%s=%d", k, v))
		return true
	})
	sort.Strings(keys)
	fmt.Println("map:", keys)
}
