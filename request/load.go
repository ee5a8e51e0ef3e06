// SPDX-License-Identifier: MIT

package request

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"github.com/gobwas/glob"
	"gopkg.in/yaml.v3"
)

// Decode reads a YAML stream. Every document is either one request or a
// list of requests; JSON input is accepted as YAML. Empty documents are
// skipped.
func Decode(r io.Reader) ([]Request, error) {
	dec := yaml.NewDecoder(r)

	var out []Request
	for doc := 1; ; doc++ {
		var node yaml.Node
		err := dec.Decode(&node)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("document %d: %w", doc, err)
		}
		if len(node.Content) == 0 {
			continue
		}
		root := node.Content[0]
		if root.Kind == yaml.ScalarNode && root.ShortTag() == "!!null" {
			continue
		}

		switch root.Kind {
		case yaml.MappingNode:
			var req Request
			if err := root.Decode(&req); err != nil {
				return nil, fmt.Errorf("document %d: %w", doc, err)
			}
			out = append(out, req)
		case yaml.SequenceNode:
			var reqs []Request
			if err := root.Decode(&reqs); err != nil {
				return nil, fmt.Errorf("document %d: %w", doc, err)
			}
			out = append(out, reqs...)
		default:
			return nil, fmt.Errorf("document %d: %w", doc, ErrBadDocument)
		}
	}

	return out, nil
}

// Load decodes the requests in path. Unnamed requests are called
// "<file>#<n>" after their position in the file.
func Load(path string) ([]Request, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load requests: %w", err)
	}
	defer f.Close()

	reqs, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	base := filepath.Base(path)
	for i := range reqs {
		if reqs[i].Name == "" {
			reqs[i].Name = fmt.Sprintf("%s#%d", base, i+1)
		}
	}

	return reqs, nil
}

// Match walks dir and returns the regular files whose slash-separated path
// relative to dir matches pattern, sorted. '*' stays within one directory;
// '**' crosses directories.
func Match(dir, pattern string) ([]string, error) {
	g, err := glob.Compile(pattern, '/')
	if err != nil {
		return nil, fmt.Errorf("invalid pattern '%s': %w", pattern, err)
	}

	var out []string
	err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		if g.Match(filepath.ToSlash(rel)) {
			out = append(out, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("match %s in %s: %w", pattern, dir, err)
	}
	slices.Sort(out)

	return out, nil
}

// LoadAll loads every file of Match(dir, pattern) in order.
func LoadAll(dir, pattern string) ([]Request, error) {
	paths, err := Match(dir, pattern)
	if err != nil {
		return nil, err
	}

	var out []Request
	for _, p := range paths {
		reqs, err := Load(p)
		if err != nil {
			return nil, err
		}
		out = append(out, reqs...)
	}

	return out, nil
}
