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
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// config holds the optional per-user settings read from ~/.sdliterc.toml.
// Every field has a usable zero value; a missing or unreadable file is not
// an error, it just means defaults apply.
type config struct {
	OutputPath      string `toml:"output_path"`
	NormalizeEOL    bool   `toml:"normalize_eol"`
	IndentCharacter string `toml:"indent_character"`
}

func defaultConfig() *config {
	return &config{IndentCharacter: "\t"}
}

// loadConfig reads ~/.sdliterc.toml if present. A missing file is not
// reported as an error; a malformed one is, so the caller can decide
// whether to log it.
func loadConfig() (*config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return defaultConfig(), nil
	}
	path := filepath.Join(home, ".sdliterc.toml")
	if _, err := os.Stat(path); err != nil {
		return defaultConfig(), nil
	}
	cfg := defaultConfig()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return defaultConfig(), err
	}
	return cfg, nil
}
