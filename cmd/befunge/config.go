// This file is part of befunge - https://github.com/db47h/befunge
//
// Copyright 2016 Denis Bernard <db047h@gmail.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"flag"
	"io"
	"os"
	"strconv"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// config holds default settings loaded with -config. Flags given on the
// command line take precedence.
type config struct {
	MaxSteps *int64 `yaml:"maxsteps"`
	Seed     *int64 `yaml:"seed"`
	Trace    *bool  `yaml:"trace"`
	NoRaw    *bool  `yaml:"noraw"`
	Debug    *bool  `yaml:"debug"`
	History  string `yaml:"history"`
}

func loadConfig(fileName string) (*config, error) {
	f, err := os.Open(fileName)
	if err != nil {
		return nil, errors.Wrap(err, "config")
	}
	defer f.Close()
	return parseConfig(f, fileName)
}

func parseConfig(r io.Reader, name string) (*config, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var cfg config
	if err := dec.Decode(&cfg); err != nil {
		if err == io.EOF {
			return &cfg, nil
		}
		return nil, errors.Wrapf(err, "config: parse %s", name)
	}
	if cfg.MaxSteps != nil && *cfg.MaxSteps < 0 {
		return nil, errors.Errorf("config: %s: maxsteps must not be negative", name)
	}
	return &cfg, nil
}

// apply sets the flags of fs that have not been set on the command line to
// the values found in cfg.
func (cfg *config) apply(fs *flag.FlagSet) {
	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	setFlag := func(name, value string) {
		if !set[name] {
			fs.Set(name, value)
		}
	}
	if cfg.MaxSteps != nil {
		setFlag("maxsteps", strconv.FormatInt(*cfg.MaxSteps, 10))
	}
	if cfg.Seed != nil {
		setFlag("seed", strconv.FormatInt(*cfg.Seed, 10))
	}
	if cfg.Trace != nil {
		setFlag("trace", strconv.FormatBool(*cfg.Trace))
	}
	if cfg.NoRaw != nil {
		setFlag("noraw", strconv.FormatBool(*cfg.NoRaw))
	}
	if cfg.Debug != nil {
		setFlag("debug", strconv.FormatBool(*cfg.Debug))
	}
	if cfg.History != "" {
		historyFile = cfg.History
	}
}
