package service

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	ignore "github.com/sabhiram/go-gitignore"

	"github.com/ludo-technologies/phishscan/domain"
	"github.com/ludo-technologies/phishscan/internal/constants"
)

// URLCollectorImpl implements the URLCollector interface. Arguments that
// name an existing file or directory are expanded into the URLs they
// contain; anything else is taken as a literal URL.
type URLCollectorImpl struct{}

// NewURLCollector creates a new URL collector
func NewURLCollector() *URLCollectorImpl {
	return &URLCollectorImpl{}
}

// CollectURLs expands the given arguments into a flat URL list.
// List files hold one URL per line; blank lines and '#' comments are
// skipped. Directories are scanned for list files matching the include
// patterns, honoring gitignore-style exclude patterns. Skipped over-long
// lines are reported as warnings.
func (c *URLCollectorImpl) CollectURLs(paths []string, recursive bool, includePatterns, excludePatterns []string) ([]string, []string, error) {
	excluded := ignore.CompileIgnoreLines(excludePatterns...)

	var urls []string
	var warnings []string
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			// Not a filesystem path: a literal URL
			urls = append(urls, path)
			continue
		}

		if !info.IsDir() {
			fileURLs, fileWarnings, err := c.readListFile(path)
			if err != nil {
				return nil, nil, err
			}
			urls = append(urls, fileURLs...)
			warnings = append(warnings, fileWarnings...)
			continue
		}

		files, err := c.collectListFiles(path, recursive, includePatterns, excluded)
		if err != nil {
			return nil, nil, err
		}
		for _, file := range files {
			fileURLs, fileWarnings, err := c.readListFile(file)
			if err != nil {
				return nil, nil, err
			}
			urls = append(urls, fileURLs...)
			warnings = append(warnings, fileWarnings...)
		}
	}

	return urls, warnings, nil
}

// IsListFile checks whether a path looks like a URL list file
func (c *URLCollectorImpl) IsListFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".txt" || ext == ".urls"
}

// readListFile reads one URL per line, skipping blanks and comments.
// Lines longer than the URL length limit are skipped with a warning.
func (c *URLCollectorImpl) readListFile(path string) ([]string, []string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, domain.NewFileNotFoundError(path, err)
	}
	defer f.Close()

	var urls []string
	var warnings []string
	lineNo := 0
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if len(line) > constants.MaxURLLength {
			warnings = append(warnings, fmt.Sprintf("%s:%d: line exceeds %d characters, skipped",
				path, lineNo, constants.MaxURLLength))
			continue
		}
		urls = append(urls, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, domain.NewInvalidInputError("failed to read URL list "+path, err)
	}

	return urls, warnings, nil
}

// collectListFiles gathers list files under dir
func (c *URLCollectorImpl) collectListFiles(dir string, recursive bool, includePatterns []string, excluded *ignore.GitIgnore) ([]string, error) {
	var files []string

	if !recursive {
		entries, err := os.ReadDir(dir)
		if err != nil {
			return nil, err
		}
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			path := filepath.Join(dir, entry.Name())
			if c.matches(path, includePatterns, excluded) {
				files = append(files, path)
			}
		}
		return files, nil
	}

	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			if path != dir && excluded != nil && excluded.MatchesPath(filepath.Base(path)) {
				return filepath.SkipDir
			}
			return nil
		}
		if c.matches(path, includePatterns, excluded) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return files, nil
}

func (c *URLCollectorImpl) matches(path string, includePatterns []string, excluded *ignore.GitIgnore) bool {
	if excluded != nil && excluded.MatchesPath(path) {
		return false
	}

	if len(includePatterns) == 0 {
		return c.IsListFile(path)
	}
	base := filepath.Base(path)
	for _, pattern := range includePatterns {
		if matched, _ := filepath.Match(pattern, base); matched {
			return true
		}
	}
	return false
}
