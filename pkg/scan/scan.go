// Package scan walks a directory tree and reports, per rule, which files the
// rule applies to and how many matches each contains.
package scan

import (
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/mwpeters/hilite/pkg/engine"
	"github.com/mwpeters/hilite/pkg/errors"
	"github.com/mwpeters/hilite/pkg/logging"
	"github.com/mwpeters/hilite/pkg/rules"
)

// Options controls a scan.
type Options struct {
	// MaxFileSize skips files larger than this many bytes. Zero means no cap.
	MaxFileSize int64
	// IncludeHidden includes dot-files and descends into dot-directories.
	IncludeHidden bool
}

// FileHits is one applicable file and its match count.
type FileHits struct {
	Path    string
	Matches int
}

// RuleReport collects the applicable files of one rule.
type RuleReport struct {
	Rule  string
	Files []FileHits
}

// Report is the result of scanning a tree.
type Report struct {
	Root    string
	Scanned int
	Skipped int
	Rules   []RuleReport
}

// TotalMatches sums match counts across all rules.
func (r *Report) TotalMatches() int {
	total := 0
	for _, rr := range r.Rules {
		for _, f := range rr.Files {
			total += f.Matches
		}
	}
	return total
}

// Scanner walks trees with a fixed rule set.
type Scanner struct {
	set    *rules.RuleSet
	opts   Options
	logger zerolog.Logger
}

// New creates a scanner.
func New(set *rules.RuleSet, opts Options) *Scanner {
	return &Scanner{
		set:    set,
		opts:   opts,
		logger: logging.GetLogger("scan"),
	}
}

// Run scans the tree rooted at root. Unreadable, oversized, and binary files
// are skipped and counted; walk errors abort the scan.
func (s *Scanner) Run(root string) (*Report, error) {
	report := &Report{Root: root}
	hits := make(map[string][]FileHits, len(s.set.Rules))

	walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return errors.Wrapf(err, errors.ErrFileAccess, "walking %s", path)
		}
		if d.IsDir() {
			if path != root && s.hidden(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		if s.hidden(d.Name()) {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			rel = path
		}

		applicable := s.set.RulesFor(rel)
		if len(applicable) == 0 {
			report.Scanned++
			return nil
		}

		text, err := engine.ReadFile(path, s.opts.MaxFileSize)
		if err != nil {
			if errors.IsErrorCode(err, errors.ErrFileTooLarge) || errors.IsErrorCode(err, errors.ErrFileBinary) {
				s.logger.Debug().Str("path", path).Err(err).Msg("Skipping file")
				report.Skipped++
				return nil
			}
			return err
		}
		report.Scanned++

		counts := s.countMatches(rel, text)
		for _, rule := range applicable {
			label := rule.Label()
			hits[label] = append(hits[label], FileHits{Path: rel, Matches: counts[label]})
		}
		return nil
	})
	if walkErr != nil {
		return nil, walkErr
	}

	// Preserve rule precedence order in the report.
	seen := make(map[string]bool)
	for _, rule := range s.set.Rules {
		label := rule.Label()
		if seen[label] {
			continue
		}
		seen[label] = true
		if files, ok := hits[label]; ok {
			report.Rules = append(report.Rules, RuleReport{Rule: label, Files: files})
		}
	}

	s.logger.Info().
		Str("root", root).
		Int("scanned", report.Scanned).
		Int("skipped", report.Skipped).
		Int("matches", report.TotalMatches()).
		Msg("Scan complete")

	return report, nil
}

func (s *Scanner) countMatches(path, text string) map[string]int {
	counts := make(map[string]int)
	for _, m := range engine.New(s.set).Matches(path, text) {
		counts[m.Rule]++
	}
	return counts
}

func (s *Scanner) hidden(name string) bool {
	return !s.opts.IncludeHidden && strings.HasPrefix(name, ".")
}
