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

// Command sdlite is a small CLI around the sdlite package: parsing,
// canonical formatting, raw token dumps and a local SQLite index of
// previously parsed documents.
package main

import (
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var argsRoot struct {
	logFile string
	runID   string
}

func main() {
	log.SetFlags(log.Lshortfile | log.Ltime)
	argsRoot.runID = uuid.NewString()

	cfg, err := loadConfig()
	if err != nil {
		log.Printf("[config] %v\n", err)
	}
	globalConfig = cfg

	if err := Execute(); err != nil {
		log.Fatal(err)
	}
}

var globalConfig *config

var cmdRoot = &cobra.Command{
	Use:   "sdlite",
	Short: "Root command for the sdlite CLI",
	Long:  "Parse, format and inspect SDLang documents.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if argsRoot.logFile != "" {
			fd, err := os.OpenFile(argsRoot.logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
			if err != nil {
				return err
			}
			log.SetOutput(fd)
		}
		log.Printf("[run %s] %s\n", argsRoot.runID, cmd.Name())
		return nil
	},
}

func init() {
	cmdRoot.PersistentFlags().StringVar(&argsRoot.logFile, "log-file", "", "write log output to this file instead of stderr")

	cmdRoot.AddCommand(cmdParse)
	cmdRoot.AddCommand(cmdFmt)
	cmdRoot.AddCommand(cmdTokens)

	cmdRoot.AddCommand(cmdIndex)
	cmdIndex.Flags().StringVar(&argsIndex.store, "store", ".sdlite-index.db", "path to the index database")
}

func Execute() error {
	return cmdRoot.Execute()
}

