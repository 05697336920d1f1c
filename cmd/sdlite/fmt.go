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
	"bytes"
	"os"

	"github.com/s-ludwig/sdlite"
	"github.com/spf13/cobra"
)

var cmdFmt = &cobra.Command{
	Use:   "fmt <file>",
	Short: "Round-trip a document through Parse and Generate, printing its canonical form",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		nodes, err := sdlite.ParseAll(data, path)
		if err != nil {
			return err
		}

		var buf bytes.Buffer
		if err := sdlite.Generate(&buf, nodes, 0); err != nil {
			return err
		}

		out := buf.Bytes()
		if globalConfig != nil && globalConfig.OutputPath != "" {
			return os.WriteFile(globalConfig.OutputPath, out, 0644)
		}
		_, err = cmd.OutOrStdout().Write(out)
		return err
	},
}
