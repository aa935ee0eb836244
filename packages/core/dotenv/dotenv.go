package dotenv

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/abdul-hamid-achik/envkit/packages/core/env"
	"github.com/joho/godotenv"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// DefaultFile is the file read when no path is given.
const DefaultFile = ".env"

// Loader resolves, parses and applies env files.
type Loader struct {
	fs     afero.Fs
	root   string
	store  env.Store
	logger *zap.Logger
}

type Option func(*Loader)

// WithFs replaces the OS filesystem.
func WithFs(fsys afero.Fs) Option {
	return func(l *Loader) {
		l.fs = fsys
	}
}

// WithRoot sets the directory relative paths are resolved against. When
// unset, the working directory at call time is used.
func WithRoot(dir string) Option {
	return func(l *Loader) {
		l.root = dir
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(l *Loader) {
		if logger != nil {
			l.logger = logger
		}
	}
}

func NewLoader(store env.Store, opts ...Option) *Loader {
	l := &Loader{
		fs:     afero.NewOsFs(),
		store:  store,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Resolve returns the absolute path for p, defaulting to DefaultFile.
func (l *Loader) Resolve(p string) (string, error) {
	if p == "" {
		p = DefaultFile
	}
	if filepath.IsAbs(p) {
		return filepath.Clean(p), nil
	}
	root := l.root
	if root == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("resolving working directory: %w", err)
		}
		root = wd
	}
	return filepath.Join(root, p), nil
}

// Read parses the file at p without touching the store.
func (l *Loader) Read(p string) (map[string]string, string, error) {
	path, err := l.Resolve(p)
	if err != nil {
		return nil, "", err
	}

	file, err := l.fs.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, path, &FileError{Path: path, Err: ErrFileNotFound}
		}
		return nil, path, &FileError{Path: path, Err: fmt.Errorf("cannot open env file: %w", err)}
	}
	defer file.Close()

	info, err := file.Stat()
	if err == nil && info.IsDir() {
		return nil, path, &FileError{Path: path, Err: fmt.Errorf("%w: is a directory", ErrFileNotFound)}
	}

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, path, &FileError{Path: path, Err: fmt.Errorf("cannot read env file: %w", err)}
	}

	vars, err := parseLiteral(string(data))
	if err != nil {
		return nil, path, &FileError{Path: path, Err: fmt.Errorf("%w: %v", ErrParse, err)}
	}

	l.logger.Debug("parsed env file", zap.String("path", path), zap.Int("keys", len(vars)))
	return vars, path, nil
}

// parseLiteral parses env file content without expanding $VAR or ${VAR}
// references. Syntax errors come from the raw content. Values come from a
// second pass where every '$' is swapped for a rune absent from the content.
// Empty or unsettable keys are parse errors.
func parseLiteral(content string) (map[string]string, error) {
	raw, err := godotenv.Parse(strings.NewReader(content))
	if err != nil {
		return nil, err
	}
	for k := range raw {
		if k == "" {
			return nil, errors.New("empty variable name")
		}
		if strings.ContainsAny(k, "=\x00") {
			return nil, fmt.Errorf("invalid variable name %q", k)
		}
	}

	dollar := string(unusedRune(content))
	parsed, err := godotenv.Parse(strings.NewReader(strings.ReplaceAll(content, "$", dollar)))
	if err != nil {
		return nil, err
	}

	vars := make(map[string]string, len(parsed))
	for k, v := range parsed {
		vars[k] = strings.ReplaceAll(v, dollar, "$")
	}
	return vars, nil
}

// unusedRune returns the first private-use rune that does not occur in s.
func unusedRune(s string) rune {
	r := rune(0xE000)
	for strings.ContainsRune(s, r) {
		r++
	}
	return r
}

// Load parses the file at p and writes every key into the store, replacing
// existing values. It returns the parsed variables, not the merged store.
// Nothing is written when reading or parsing fails.
func (l *Loader) Load(p string) (map[string]string, error) {
	vars, path, err := l.Read(p)
	if err != nil {
		return nil, err
	}

	for k, v := range vars {
		if err := l.store.Set(k, v); err != nil {
			return nil, &FileError{Path: path, Err: err}
		}
	}

	l.logger.Debug("loaded env file", zap.String("path", path), zap.Int("applied", len(vars)))
	return vars, nil
}

// Preload applies the file at p, keeping values already present in the
// store. A missing file is not an error. It returns the number of keys set.
func (l *Loader) Preload(p string) (int, error) {
	vars, path, err := l.Read(p)
	if err != nil {
		if errors.Is(err, ErrFileNotFound) {
			l.logger.Debug("no env file to preload", zap.String("path", path))
			return 0, nil
		}
		return 0, err
	}

	applied := 0
	for _, k := range sortedKeys(vars) {
		if _, exists := l.store.Lookup(k); exists {
			l.logger.Debug("keeping existing value", zap.String("key", k))
			continue
		}
		if err := l.store.Set(k, vars[k]); err != nil {
			return applied, &FileError{Path: path, Err: err}
		}
		applied++
	}
	return applied, nil
}
