// Package export writes the site as static files by rendering every route
// through the HTTP handler in-process.
package export

import (
	"context"
	"fmt"
	"io/fs"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sort"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// NotFoundFile is the page static hosts serve for unknown paths
const NotFoundFile = "404.html"

// Page is one route to render and where to write it
type Page struct {
	Path   string
	File   string
	Status int
}

// Pages lists the routes of the site for the given project slugs
func Pages(slugs []string) []Page {
	pages := []Page{{Path: "/", File: "index.html", Status: http.StatusOK}}
	for _, slug := range slugs {
		pages = append(pages, Page{
			Path:   "/projects/" + slug,
			File:   filepath.Join("projects", slug, "index.html"),
			Status: http.StatusOK,
		})
	}
	pages = append(pages, Page{Path: "/404", File: NotFoundFile, Status: http.StatusNotFound})
	return pages
}

// Exporter renders pages and copies assets into a directory
type Exporter struct {
	Handler http.Handler
	Assets  fs.FS
	Logger  *zap.Logger
	// Workers bounds concurrent page renders.
	Workers int
}

// Run writes pages and assets under dir and returns the written files, sorted
func (e *Exporter) Run(ctx context.Context, dir string, pages []Page) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}

	workers := e.Workers
	if workers <= 0 {
		workers = 4
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	written := make([]string, len(pages))
	for i, page := range pages {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if err := e.writePage(gctx, dir, page); err != nil {
				return err
			}
			written[i] = page.File
			e.Logger.Debug("exported page", zap.String("path", page.Path), zap.String("file", page.File))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	assets, err := e.copyAssets(dir)
	if err != nil {
		return nil, err
	}

	files := append(written, assets...)
	sort.Strings(files)
	return files, nil
}

func (e *Exporter) writePage(ctx context.Context, dir string, page Page) error {
	req := httptest.NewRequestWithContext(ctx, http.MethodGet, page.Path, nil)
	rec := httptest.NewRecorder()
	e.Handler.ServeHTTP(rec, req)

	if rec.Code != page.Status {
		return fmt.Errorf("render %s: status %d, want %d", page.Path, rec.Code, page.Status)
	}
	return writeFile(filepath.Join(dir, page.File), rec.Body.Bytes())
}

// copyAssets mirrors the embedded static tree under static/ and also
// places placeholder.svg at the root, where content image paths point.
func (e *Exporter) copyAssets(dir string) ([]string, error) {
	if e.Assets == nil {
		return nil, nil
	}

	var files []string
	err := fs.WalkDir(e.Assets, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		data, err := fs.ReadFile(e.Assets, path)
		if err != nil {
			return err
		}
		targets := []string{filepath.Join("static", filepath.FromSlash(path))}
		if path == "placeholder.svg" {
			targets = append(targets, path)
		}
		for _, target := range targets {
			if err := writeFile(filepath.Join(dir, target), data); err != nil {
				return err
			}
			files = append(files, target)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("copy assets: %w", err)
	}
	return files, nil
}

func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
