package promptlib

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Kind selects which library subdirectory a prompt is resolved against.
type Kind string

// The two library kinds, matching the CLI's prompt and system-prompt flags.
const (
	KindUser   Kind = "user"
	KindSystem Kind = "system"
)

const (
	entryExt       = ".txt"
	descriptionMax = 60
)

// Library resolves prompt arguments against a prompts directory.
// Library entries are cached after first read.
type Library struct {
	dir   string
	mu    sync.RWMutex
	cache map[string]string
}

// New creates a Library rooted at dir (layout: {dir}/user/*.txt and
// {dir}/system/*.txt).
func New(dir string) *Library {
	return &Library{dir: dir, cache: make(map[string]string)}
}

// Resolve turns a prompt argument into final prompt text. A value with no
// path separators and no ".txt" suffix is first tried as a library entry
// {dir}/{kind}/{value}.txt, whose contents are returned trimmed of
// surrounding whitespace. Otherwise the value is tried as a filesystem path
// (contents verbatim) and finally treated as literal text.
func (l *Library) Resolve(value string, kind Kind) (string, error) {
	if isEntryName(value) {
		key := string(kind) + ":" + value
		l.mu.RLock()
		text, ok := l.cache[key]
		l.mu.RUnlock()
		if ok {
			return text, nil
		}
		data, err := os.ReadFile(filepath.Join(l.dir, string(kind), value+entryExt))
		switch {
		case err == nil:
			text = strings.TrimSpace(string(data))
			l.mu.Lock()
			l.cache[key] = text
			l.mu.Unlock()
			return text, nil
		case !errors.Is(err, fs.ErrNotExist):
			return "", err
		}
	}
	if info, err := os.Stat(value); err == nil && info.Mode().IsRegular() {
		data, err := os.ReadFile(value)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
	return value, nil
}

// isEntryName reports whether value can name a library entry: no path
// separators and no ".txt" suffix.
func isEntryName(value string) bool {
	return value != "" &&
		!strings.ContainsAny(value, `/\`) &&
		!strings.HasSuffix(value, entryExt)
}

// Entry is one library listing entry. Description is the first line of the
// file, truncated; unreadable files simply have none.
type Entry struct {
	Name        string
	Description string
}

// Listing holds the library contents for both kinds, sorted by name.
type Listing struct {
	User   []Entry
	System []Entry
}

// List scans both kind directories concurrently and returns their entries.
// A missing directory yields an empty listing for that kind, not an error.
func (l *Library) List(ctx context.Context) (Listing, error) {
	var listing Listing
	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		entries, err := l.listKind(KindUser)
		listing.User = entries
		return err
	})
	g.Go(func() error {
		entries, err := l.listKind(KindSystem)
		listing.System = entries
		return err
	})
	if err := g.Wait(); err != nil {
		return Listing{}, err
	}
	return listing, nil
}

func (l *Library) listKind(kind Kind) ([]Entry, error) {
	dir := filepath.Join(l.dir, string(kind))
	files, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	var entries []Entry
	for _, f := range files {
		if f.IsDir() || !strings.HasSuffix(f.Name(), entryExt) {
			continue
		}
		name := strings.TrimSuffix(f.Name(), entryExt)
		entries = append(entries, Entry{
			Name:        name,
			Description: description(filepath.Join(dir, f.Name())),
		})
	}
	slices.SortFunc(entries, func(a, b Entry) int {
		return strings.Compare(a.Name, b.Name)
	})
	return entries, nil
}

// description returns the first line of the file, truncated to
// descriptionMax runes.
func description(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	line, _, _ := strings.Cut(string(data), "\n")
	line = strings.TrimSpace(line)
	runes := []rune(line)
	if len(runes) > descriptionMax {
		return string(runes[:descriptionMax])
	}
	return line
}
