package storage

import (
	"bytes"
	"compress/gzip"
	_ "embed"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	jsoniter "github.com/json-iterator/go"

	"github.com/schollz/multiverse/internal/types"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

//go:embed default_content.json
var defaultContent []byte

// DefaultContent returns a fresh copy of the built-in example portfolio.
func DefaultContent() *types.Content {
	c, err := decode(bytes.NewReader(defaultContent))
	if err != nil {
		// The embedded file is part of the build; failing here is a build bug.
		panic(fmt.Sprintf("embedded content: %v", err))
	}
	return c
}

// LoadContent reads portfolio content from path. Files ending in .gz are
// gunzipped first. An empty path yields the built-in content.
func LoadContent(path string) (*types.Content, error) {
	if path == "" {
		return DefaultContent(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening content: %w", err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("reading gzip %s: %w", path, err)
		}
		defer gz.Close()
		r = gz
	}

	c, err := decode(r)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	log.Printf("Loaded content from %s", path)
	return c, nil
}

func decode(r io.Reader) (*types.Content, error) {
	var c types.Content
	if err := json.NewDecoder(r).Decode(&c); err != nil {
		return nil, err
	}
	if c.Projects == nil {
		c.Projects = map[string][]types.Project{}
	}
	if c.Skills == nil {
		c.Skills = map[string][]string{}
	}
	for key := range c.Projects {
		if _, err := types.ParseTimeline(key); err != nil {
			return nil, fmt.Errorf("projects: %w", err)
		}
	}
	return &c, nil
}

// SaveContent writes c to path as indented JSON, gzipped when path ends in
// .gz. Parent directories are created.
func SaveContent(path string, c *types.Content) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating directory: %w", err)
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding content: %w", err)
	}

	if strings.HasSuffix(path, ".gz") {
		var buf bytes.Buffer
		gz := gzip.NewWriter(&buf)
		if _, err := gz.Write(data); err != nil {
			return fmt.Errorf("compressing content: %w", err)
		}
		if err := gz.Close(); err != nil {
			return fmt.Errorf("compressing content: %w", err)
		}
		data = buf.Bytes()
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	log.Printf("Saved content to %s", path)
	return nil
}
