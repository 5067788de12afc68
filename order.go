// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hacksim

import (
	"strings"

	"github.com/pkg/errors"
)

// evalOrder sorts comps so that every component comes after the components
// driving its dependencies. Components with no ordering constraint between them
// keep their relative build order as much as possible.
//
// A dependency cycle is reported as an ErrCombinationalLoop listing the
// components in the cycle.
//
func evalOrder(nwires int, comps []*Component) ([]*Component, error) {
	n := len(comps)
	// drv[w] is 1 + the index of the component driving wire w, 0 if none.
	drv := make([]int32, nwires)
	for i, cp := range comps {
		for _, w := range cp.Drives {
			drv[w] = int32(i + 1)
		}
	}

	// edges from driver to dependent, as a compressed adjacency list.
	indeg := make([]int32, n)
	start := make([]int32, n+1)
	for i, cp := range comps {
		for _, d := range cp.Deps {
			if j := drv[d] - 1; j >= 0 {
				start[j+1]++
				indeg[i]++
			}
		}
	}
	for i := 0; i < n; i++ {
		start[i+1] += start[i]
	}
	edges := make([]int32, start[n])
	fill := append([]int32(nil), start[:n]...)
	for i, cp := range comps {
		for _, d := range cp.Deps {
			if j := drv[d] - 1; j >= 0 {
				edges[fill[j]] = int32(i)
				fill[j]++
			}
		}
	}

	queue := make([]int32, 0, n)
	for i := 0; i < n; i++ {
		if indeg[i] == 0 {
			queue = append(queue, int32(i))
		}
	}
	for h := 0; h < len(queue); h++ {
		j := queue[h]
		for _, k := range edges[start[j]:start[j+1]] {
			indeg[k]--
			if indeg[k] == 0 {
				queue = append(queue, k)
			}
		}
	}
	if len(queue) < n {
		return nil, loopError(comps, drv, indeg)
	}

	out := make([]*Component, n)
	for i, j := range queue {
		out[i] = comps[j]
	}
	return out, nil
}

// loopError walks back the dependencies of unsorted components until it finds
// a cycle. Every unsorted component has at least one unsorted driver.
//
func loopError(comps []*Component, drv []int32, indeg []int32) error {
	v := 0
	for i := range indeg {
		if indeg[i] > 0 {
			v = i
			break
		}
	}
	seen := make(map[int]int)
	var path []int
	for {
		if at, ok := seen[v]; ok {
			path = path[at:]
			break
		}
		seen[v] = len(path)
		path = append(path, v)
		for _, d := range comps[v].Deps {
			if u := int(drv[d]) - 1; u >= 0 && indeg[u] > 0 {
				v = u
				break
			}
		}
	}
	names := make([]string, 0, len(path)+1)
	for i := len(path) - 1; i >= 0; i-- {
		names = append(names, comps[path[i]].Name)
	}
	names = append(names, names[0])
	return errors.Wrap(ErrCombinationalLoop, strings.Join(names, " -> "))
}
