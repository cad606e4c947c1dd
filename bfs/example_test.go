package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/wordgraph/bfs"
	"github.com/katalvlaran/wordgraph/core"
)

// ExampleBFS lists the words reachable from "new", grouped by hop count.
func ExampleBFS() {
	g, _ := core.FromTokens([]string{"new", "life", "and", "new", "worlds"})

	res, err := bfs.BFS(g, "new")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for d, layer := range res.Layers() {
		fmt.Println(d, layer)
	}
	// Output:
	// 0 [new]
	// 1 [life worlds]
	// 2 [and]
}
