// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package batch runs a YAML file of queries through the search client
// and saves responses to disk, so a set of searches can be replayed or
// inspected without re-querying the provider.
package batch

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/ARMAND-cod-eng/answer-engine/internal/client"
	"github.com/ARMAND-cod-eng/answer-engine/pkg/types"
)

// File is the on-disk representation of a batch of queries.
type File struct {
	Queries []Query `yaml:"queries"`
}

// Query stores one query and its options in a serializable form.
type Query struct {
	Query          string   `yaml:"query"`
	MaxResults     int      `yaml:"max_results,omitempty"`
	SearchDepth    string   `yaml:"search_depth,omitempty"`
	IncludeNews    bool     `yaml:"include_news,omitempty"`
	TimeframeDays  int      `yaml:"timeframe_days,omitempty"`
	Location       string   `yaml:"location,omitempty"`
	IncludeDomains []string `yaml:"include_domains,omitempty"`
	ExcludeDomains []string `yaml:"exclude_domains,omitempty"`
}

// Options converts the stored form into client options.
func (q Query) Options() client.Options {
	return client.Options{
		IncludeNews:    q.IncludeNews,
		SearchDepth:    types.SearchDepth(q.SearchDepth),
		MaxResults:     q.MaxResults,
		IncludeDomains: q.IncludeDomains,
		ExcludeDomains: q.ExcludeDomains,
		TimeframeDays:  q.TimeframeDays,
		Location:       q.Location,
	}
}

// Load reads a batch file from disk.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading batch file: %w", err)
	}
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing batch file: %w", err)
	}
	if len(f.Queries) == 0 {
		return nil, fmt.Errorf("batch file %s contains no queries", path)
	}
	return &f, nil
}

// ResponseFile wraps a saved response with its save timestamp.
type ResponseFile struct {
	SavedAt  time.Time            `yaml:"saved_at"`
	Response types.SearchResponse `yaml:"response"`
}

// WriteResponse saves a response to a YAML file.
func WriteResponse(path string, resp *types.SearchResponse) error {
	rf := ResponseFile{SavedAt: time.Now().UTC(), Response: *resp}
	data, err := yaml.Marshal(&rf)
	if err != nil {
		return fmt.Errorf("marshaling response file: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ReadResponse loads a previously saved response file from disk.
func ReadResponse(path string) (*ResponseFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading response file: %w", err)
	}
	var rf ResponseFile
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return nil, fmt.Errorf("parsing response file: %w", err)
	}
	return &rf, nil
}

// Run executes every query in the batch sequentially, writing one
// response file per query into outDir and progress to w. A failing
// query is reported and skipped; Run returns the number of failures.
func Run(ctx context.Context, c *client.Client, f *File, outDir string, w io.Writer) (int, error) {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return 0, fmt.Errorf("creating output directory: %w", err)
	}

	failed := 0
	for i, q := range f.Queries {
		resp, err := c.Search(ctx, q.Query, q.Options())
		if err != nil {
			failed++
			fmt.Fprintf(w, "warning: query %d (%q) failed: %v\n", i+1, q.Query, err)
			continue
		}

		path := filepath.Join(outDir, fmt.Sprintf("response-%03d.yaml", i+1))
		if err := WriteResponse(path, resp); err != nil {
			return failed, err
		}
		fmt.Fprintf(w, "%3d. %-50q -> %s (%d results, %s)\n",
			i+1, q.Query, path, resp.Metadata.TotalResults, resp.Metadata.Origin)
	}
	return failed, nil
}
