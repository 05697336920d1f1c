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
	"database/sql"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/s-ludwig/sdlite"
	"github.com/spf13/cobra"
	_ "modernc.org/sqlite"
)

var argsIndex struct {
	store string
}

const indexSchemaDDL = `
CREATE TABLE IF NOT EXISTS documents (
	path                 TEXT PRIMARY KEY,
	top_level_node_count INTEGER NOT NULL,
	max_depth            INTEGER NOT NULL,
	parsed_at            TEXT NOT NULL
);`

var cmdIndex = &cobra.Command{
	Use:   "index <dir>",
	Short: "Walk a directory of .sdl files and record a local index of each document",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root := args[0]

		db, err := sql.Open("sqlite", argsIndex.store)
		if err != nil {
			return err
		}
		defer db.Close()

		if _, err := db.Exec(indexSchemaDDL); err != nil {
			log.Printf("[index] failed to initialize schema\n")
			return err
		}

		return filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() || filepath.Ext(path) != ".sdl" {
				return nil
			}

			data, err := os.ReadFile(path)
			if err != nil {
				log.Printf("[index] %s: %v\n", path, err)
				return nil
			}

			count, depth := 0, 0
			var walk func(n *sdlite.Node, level int)
			walk = func(n *sdlite.Node, level int) {
				if level > depth {
					depth = level
				}
				for _, c := range n.Children {
					walk(c, level+1)
				}
			}
			parseErr := sdlite.Parse(data, path, func(n *sdlite.Node) error {
				count++
				walk(n, 0)
				return nil
			})
			if parseErr != nil {
				log.Printf("[index] %s: %v\n", path, parseErr)
				return nil
			}

			_, err = db.Exec(
				`INSERT INTO documents (path, top_level_node_count, max_depth, parsed_at)
				 VALUES (?, ?, ?, ?)
				 ON CONFLICT(path) DO UPDATE SET
					top_level_node_count = excluded.top_level_node_count,
					max_depth = excluded.max_depth,
					parsed_at = excluded.parsed_at`,
				path, count, depth, time.Now().UTC().Format(time.RFC3339))
			if err != nil {
				log.Printf("[index] %s: failed to record: %v\n", path, err)
			}
			return nil
		})
	},
}
