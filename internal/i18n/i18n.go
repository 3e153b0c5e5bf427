// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of lendr

// Package i18n resolves display labels for the supported locales.
package i18n

import (
	"embed"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/ini.v1"
	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yaml
var locales embed.FS

var supported = []language.Tag{language.English, language.Spanish}

var matcher = language.NewMatcher(supported)

// Supported returns the locales with a bundled label table.
func Supported() []language.Tag {
	return supported
}

// Match picks the best supported locale for a BCP 47 tag or Accept-Language
// style list. Unparsable or empty input yields English.
func Match(locale string) language.Tag {
	if strings.TrimSpace(locale) == "" {
		return language.English
	}
	tags, _, err := language.ParseAcceptLanguage(locale)
	if err != nil || len(tags) == 0 {
		return language.English
	}
	_, idx, _ := matcher.Match(tags...)

	return supported[idx]
}

// Labels is a resolved label table for one locale.
type Labels struct {
	tag      language.Tag
	table    map[string]string
	fallback map[string]string
	printer  *message.Printer
}

// Load returns the labels of the best match for locale.
func Load(locale string) (*Labels, error) {
	tag := Match(locale)
	table, err := readTable(tag)
	if err != nil {
		return nil, err
	}
	fallback := table
	if tag != language.English {
		if fallback, err = readTable(language.English); err != nil {
			return nil, err
		}
	}

	return &Labels{
		tag:      tag,
		table:    table,
		fallback: fallback,
		printer:  message.NewPrinter(tag),
	}, nil
}

func readTable(tag language.Tag) (map[string]string, error) {
	base, _ := tag.Base()
	raw, err := locales.ReadFile("locales/" + base.String() + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("no labels for %s: %w", tag, err)
	}
	table := make(map[string]string)
	if err := yaml.Unmarshal(raw, &table); err != nil {
		return nil, fmt.Errorf("failed to decode labels for %s: %w", tag, err)
	}

	return table, nil
}

// Tag returns the resolved locale.
func (l *Labels) Tag() language.Tag {
	return l.tag
}

// T returns the label for key, falling back to English and then the key itself.
func (l *Labels) T(key string) string {
	if s, ok := l.table[key]; ok {
		return s
	}
	if s, ok := l.fallback[key]; ok {
		return s
	}
	return key
}

// Tf formats the label for key with locale-aware number formatting.
func (l *Labels) Tf(key string, args ...any) string {
	return l.printer.Sprintf(l.T(key), args...)
}

// Override applies label overrides from an INI file. Keys outside any section
// apply to every locale, a section named after a locale base applies to it only.
func (l *Labels) Override(path string) error {
	cfg, err := ini.Load(path)
	if err != nil {
		return fmt.Errorf("failed to load label overrides %s: %w", path, err)
	}

	base, _ := l.tag.Base()
	var n int
	for _, name := range []string{ini.DefaultSection, base.String()} {
		sec, err := cfg.GetSection(name)
		if err != nil {
			continue
		}
		for _, k := range sec.Keys() {
			l.table[k.Name()] = k.String()
			n++
		}
	}
	slog.Debug("Label overrides applied", "path", path, "locale", l.tag.String(), "count", n)

	return nil
}
