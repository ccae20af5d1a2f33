package guide

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/scaledown-ai/scaledown/internal/errors"
)

// ParseErrors collects multiple parse errors when loading guides from a
// directory. Individual parse failures don't prevent other guides from
// loading.
type ParseErrors struct {
	Errors []error
}

func (e *ParseErrors) Error() string {
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	return fmt.Sprintf("%d guide files failed to parse", len(e.Errors))
}

// guideFile is the YAML schema for a user-supplied guide.
type guideFile struct {
	Key     string   `yaml:"key"`
	Name    string   `yaml:"name,omitempty"`
	Source  string   `yaml:"source,omitempty"`
	URL     string   `yaml:"url,omitempty"`
	Aliases []string `yaml:"aliases,omitempty"`
	Tips    []Tip    `yaml:"tips,omitempty"`
	Rules   []struct {
		Pattern     string `yaml:"pattern"`
		Replacement string `yaml:"replacement"`
	} `yaml:"rules,omitempty"`
}

// File is a guide parsed from a YAML file, plus the aliases it registers.
type File struct {
	Key     string
	Aliases []string
	Guide   *Guide
}

// Parse parses a guide from YAML content.
func Parse(content []byte, path string) (*File, error) {
	var gf guideFile
	if err := yaml.Unmarshal(content, &gf); err != nil {
		return nil, errors.GuideInvalid(path, err.Error())
	}

	if strings.TrimSpace(gf.Key) == "" {
		return nil, errors.GuideInvalid(path, "missing key")
	}

	name := gf.Name
	if name == "" {
		name = cases.Title(language.English).String(gf.Key)
	}

	g := &Guide{
		Name:   name,
		Source: gf.Source,
		URL:    gf.URL,
		Tips:   gf.Tips,
	}

	for i, r := range gf.Rules {
		if r.Pattern == "" {
			return nil, errors.GuideInvalid(path, fmt.Sprintf("rule %d has an empty pattern", i+1))
		}
		re, err := regexp.Compile(r.Pattern)
		if err != nil {
			return nil, errors.GuideInvalid(path, fmt.Sprintf("rule %d: %v", i+1, err))
		}
		g.Rules = append(g.Rules, Rule{Pattern: re, Replacement: r.Replacement})
	}

	return &File{
		Key:     strings.ToLower(gf.Key),
		Aliases: gf.Aliases,
		Guide:   g,
	}, nil
}

// ParseFile parses a guide from a YAML file.
func ParseFile(path string) (*File, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read guide file: %w", err)
	}
	return Parse(content, path)
}

// LoadFromDirectory loads all guide files (*.yaml, *.yml) from a directory.
// Parse errors for individual files are collected in the returned ParseErrors
// but do not prevent other guides from loading.
func LoadFromDirectory(dir string) ([]*File, error) {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return nil, nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read guides directory: %w", err)
	}

	var files []*File
	var parseErrors []error

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := filepath.Ext(entry.Name())
		if ext != ".yaml" && ext != ".yml" {
			continue
		}

		file, err := ParseFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			parseErrors = append(parseErrors, err)
			continue
		}
		files = append(files, file)
	}

	if len(parseErrors) > 0 {
		return files, &ParseErrors{Errors: parseErrors}
	}

	return files, nil
}

// Build creates the catalog used for the lifetime of the process: the
// built-in guides plus any guide files found in guidesDir. User aliases
// register after the built-in table, so built-in prefix precedence is
// unchanged. An empty guidesDir means built-ins only.
func Build(guidesDir string) (*Catalog, error) {
	c := Default()
	if guidesDir == "" {
		return c, nil
	}

	files, err := LoadFromDirectory(guidesDir)
	for _, f := range files {
		c.addGuide(f.Key, f.Guide)
		for _, alias := range f.Aliases {
			c.addAlias(alias, f.Key)
		}
	}

	// Partial loads are usable; surface the parse errors alongside.
	return c, err
}
