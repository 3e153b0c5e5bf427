// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of lendr

package config

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/lendr/lendr/internal/config/data"
)

// Config is the root configuration for the application.
type Config struct {
	Lendr *Lendr `yaml:"lendr"`
	path  string
	mx    sync.RWMutex
}

// NewConfig creates a new Config with defaults, backed by path.
func NewConfig(path string) *Config {
	return &Config{
		Lendr: NewLendr(),
		path:  path,
	}
}

// Path returns the backing config file.
func (c *Config) Path() string {
	return c.path
}

// Load loads the configuration from the backing file.
// If the file doesn't exist, the current config is kept unless force is set.
func (c *Config) Load(force bool) error {
	c.mx.Lock()
	defer c.mx.Unlock()

	if _, err := os.Stat(c.path); errors.Is(err, os.ErrNotExist) {
		if !force {
			return nil
		}
		return fmt.Errorf("config file does not exist: %s", c.path)
	}

	if err := data.LoadYAML(c.path, c); err != nil {
		return fmt.Errorf("failed to load config from %s: %w", c.path, err)
	}
	if c.Lendr == nil {
		c.Lendr = NewLendr()
	}
	c.Lendr.Validate()

	return nil
}

// Save saves the configuration to the backing file.
// If force is false, only saves if the file already exists.
func (c *Config) Save(force bool) error {
	c.mx.RLock()
	defer c.mx.RUnlock()

	if c.path == "" {
		return errors.New("no config file path configured")
	}

	_, err := os.Stat(c.path)
	if !force && err != nil {
		return nil
	}

	if err := data.SaveYAML(c.path, c); err != nil {
		return fmt.Errorf("failed to save config to %s: %w", c.path, err)
	}

	return nil
}

// Refine applies CLI flags on top of the loaded settings.
func (c *Config) Refine(flags *data.Flags) error {
	c.mx.Lock()
	defer c.mx.Unlock()

	if c.Lendr == nil {
		return errors.New("config.Lendr is nil")
	}
	c.Lendr.Override(flags)
	c.Lendr.Validate()

	return nil
}
