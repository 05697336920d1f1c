// Copyright 2017-2020 Denis Bernard <db047h@gmail.com>
//
// Permission is hereby granted, free of charge, to any person obtaining a copy of
// this software and associated documentation files (the "Software"), to deal in
// the Software without restriction, including without limitation the rights to
// use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies of
// the Software, and to permit persons to whom the Software is furnished to do so,
// subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY, FITNESS
// FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR
// COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER
// IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN
// CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.

package main

import (
	"fmt"
	"log"
	"os"

	"github.com/s-ludwig/sdlite"
	"github.com/spf13/cobra"
)

var cmdParse = &cobra.Command{
	Use:   "parse <file>",
	Short: "Parse a document and print node counts per depth",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		counts := map[int]int{}
		var walk func(n *sdlite.Node, depth int)
		walk = func(n *sdlite.Node, depth int) {
			counts[depth]++
			for _, c := range n.Children {
				walk(c, depth+1)
			}
		}

		parseErr := sdlite.Parse(data, path, func(n *sdlite.Node) error {
			walk(n, 0)
			return nil
		})

		maxDepth := 0
		for d := range counts {
			if d > maxDepth {
				maxDepth = d
			}
		}
		for d := 0; d <= maxDepth; d++ {
			fmt.Fprintf(cmd.OutOrStdout(), "depth %d: %d node(s)\n", d, counts[d])
		}

		if parseErr != nil {
			log.Printf("[parse] %s: %v\n", path, parseErr)
			fmt.Fprintf(cmd.OutOrStdout(), "error: %v\n", parseErr)
		}
		return nil
	},
}
