package report

import (
	"io"
	"os"
	"path/filepath"

	"gym_page_auditor/internal/domain/models"
	"gym_page_auditor/internal/pkg/errors"

	log "github.com/sirupsen/logrus"
)

// Artifact file names written by FileSink.
const (
	JSONFile     = "gyms.json"
	CSVFile      = "gyms.csv"
	HTMLFile     = "index.html"
	MarkdownFile = "summary.md"
)

// FileSink writes every report format into one directory.
type FileSink struct {
	dir string
	log *log.Logger
}

func NewFileSink(dir string, log *log.Logger) *FileSink {
	return &FileSink{dir: dir, log: log}
}

func (s *FileSink) Dir() string {
	return s.dir
}

// WriteAll creates the directory if needed and writes gyms.json, gyms.csv, index.html and
// summary.md. It stops at the first failure.
func (s *FileSink) WriteAll(report *models.Report) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return errors.Wrap(err, `failed to create output directory`)
	}

	artifacts := []struct {
		name   string
		writer func(io.Writer) Writer
	}{
		{JSONFile, func(w io.Writer) Writer { return NewJSONWriter(w) }},
		{CSVFile, func(w io.Writer) Writer { return NewCSVWriter(w) }},
		{HTMLFile, func(w io.Writer) Writer { return NewHTMLWriter(w) }},
		{MarkdownFile, func(w io.Writer) Writer { return NewMarkdownWriter(w) }},
	}

	for _, a := range artifacts {
		path := filepath.Join(s.dir, a.name)
		n, err := writeFile(path, report, a.writer)
		if err != nil {
			s.log.WithError(err).WithField("file", path).Error(`failed to write report`)
			return errors.Wrap(err, `failed to write `+a.name)
		}
		s.log.WithFields(log.Fields{"file": path, "bytes": n}).Info(`report written`)
	}
	return nil
}

func writeFile(path string, report *models.Report, newWriter func(io.Writer) Writer) (n int, err error) {
	f, err := os.Create(path)
	if err != nil {
		return 0, err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return newWriter(f).Write(report)
}
