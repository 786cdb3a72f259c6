package application

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/sirupsen/logrus"
)

// MigrationStatus describes one schema file and whether it is applied.
type MigrationStatus struct {
	Version   int64
	Source    string
	Applied   bool
	AppliedAt time.Time
}

type migrationManager struct {
	pool    *pgxpool.Pool
	logger  *logrus.Logger
	schemas []*embed.FS
}

func NewMigrationManager(pool *pgxpool.Pool, logger *logrus.Logger) MigrationManager {
	return &migrationManager{pool: pool, logger: logger}
}

func (m *migrationManager) RegisterSchema(fs ...*embed.FS) {
	m.schemas = append(m.schemas, fs...)
}

func (m *migrationManager) provider() (*goose.Provider, func() error, error) {
	if m.pool == nil {
		return nil, nil, errors.New("migrations: no database pool configured")
	}
	fsys, err := newSchemaFS(m.schemas)
	if err != nil {
		return nil, nil, err
	}
	db := stdlib.OpenDBFromPool(m.pool)
	p, err := goose.NewProvider(goose.DialectPostgres, db, fsys)
	if err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("migrations: %w", err)
	}
	return p, db.Close, nil
}

// Run applies every pending migration.
func (m *migrationManager) Run(ctx context.Context) error {
	p, closeDB, err := m.provider()
	if err != nil {
		return err
	}
	defer closeDB()

	results, err := p.Up(ctx)
	for _, r := range results {
		m.logger.WithFields(logrus.Fields{
			"version":  r.Source.Version,
			"source":   r.Source.Path,
			"duration": r.Duration,
		}).Info("migration applied")
	}
	return err
}

// Rollback reverts the most recent migration.
func (m *migrationManager) Rollback(ctx context.Context) error {
	p, closeDB, err := m.provider()
	if err != nil {
		return err
	}
	defer closeDB()

	r, err := p.Down(ctx)
	if err != nil {
		return err
	}
	m.logger.WithFields(logrus.Fields{
		"version": r.Source.Version,
		"source":  r.Source.Path,
	}).Info("migration rolled back")
	return nil
}

func (m *migrationManager) Status(ctx context.Context) ([]MigrationStatus, error) {
	p, closeDB, err := m.provider()
	if err != nil {
		return nil, err
	}
	defer closeDB()

	statuses, err := p.Status(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]MigrationStatus, 0, len(statuses))
	for _, s := range statuses {
		out = append(out, MigrationStatus{
			Version:   s.Source.Version,
			Source:    s.Source.Path,
			Applied:   s.State == goose.StateApplied,
			AppliedAt: s.AppliedAt,
		})
	}
	return out, nil
}

// schemaFS flattens the .sql files of several embedded trees into a single
// directory, which is the layout goose reads migrations from.
type schemaFS struct {
	files map[string]schemaFile
}

type schemaFile struct {
	fsys fs.FS
	path string
}

func newSchemaFS(schemas []*embed.FS) (*schemaFS, error) {
	out := &schemaFS{files: make(map[string]schemaFile)}
	for _, schema := range schemas {
		files, err := listFiles(schema, ".")
		if err != nil {
			return nil, err
		}
		for _, file := range files {
			if !strings.HasSuffix(file, ".sql") {
				continue
			}
			name := path.Base(file)
			if _, dup := out.files[name]; dup {
				return nil, fmt.Errorf("migrations: duplicate schema file %q", name)
			}
			out.files[name] = schemaFile{fsys: schema, path: file}
		}
	}
	return out, nil
}

func (s *schemaFS) Open(name string) (fs.File, error) {
	if name == "." {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrInvalid}
	}
	f, ok := s.files[name]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
	}
	return f.fsys.Open(f.path)
}

func (s *schemaFS) ReadDir(name string) ([]fs.DirEntry, error) {
	if name != "." {
		return nil, &fs.PathError{Op: "readdir", Path: name, Err: fs.ErrNotExist}
	}
	names := make([]string, 0, len(s.files))
	for n := range s.files {
		names = append(names, n)
	}
	sort.Strings(names)

	entries := make([]fs.DirEntry, 0, len(names))
	for _, n := range names {
		f := s.files[n]
		info, err := fs.Stat(f.fsys, f.path)
		if err != nil {
			return nil, err
		}
		entries = append(entries, fs.FileInfoToDirEntry(info))
	}
	return entries, nil
}
