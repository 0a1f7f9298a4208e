package cmakecache

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/kevindugan/dependencyTree/internal/config"
)

// CacheFileName is the file name CMake gives its cache in a build tree.
const CacheFileName = "CMakeCache.txt"

const depsMarker = "_LIB_DEPENDS"

// entryRegex matches cache entries of the form NAME_LIB_DEPENDS:TYPE=VALUE.
var entryRegex = regexp.MustCompile(`^([^:\s]+)_LIB_DEPENDS:([A-Za-z]+)=(.*)$`)

// linkKeywords are the CMake keywords that may precede a library name.
var linkKeywords = map[string]bool{
	"general":   true,
	"optimized": true,
	"debug":     true,
}

// ParseError reports a cache line whose key ends in _LIB_DEPENDS but is not
// a well-formed entry.
type ParseError struct {
	Source string
	Line   int
	Text   string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d: malformed dependency entry %q", e.Source, e.Line, e.Text)
}

// ParseFile parses the cache file at path.
func ParseFile(path string) (*config.Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open CMake cache: %w", err)
	}
	defer f.Close()

	return Parse(f, path)
}

// Parse reads cache text from r. source names the input in errors and in
// Component.Source.
func Parse(r io.Reader, source string) (*config.Model, error) {
	model := config.NewModel()

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "//") || strings.HasPrefix(line, "#") {
			continue
		}
		if !isDependsKey(line) {
			continue
		}

		matches := entryRegex.FindStringSubmatch(line)
		if matches == nil {
			return nil, &ParseError{Source: source, Line: lineNo, Text: line}
		}

		model.Add(&config.Component{
			Name:       matches[1],
			DependsOn:  splitDependencies(matches[3]),
			Attributes: map[string]string{"cache_type": matches[2]},
			Source:     source,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", source, err)
	}

	return model, nil
}

// isDependsKey reports whether the entry key, the text before the first
// colon, names a link dependency list. Values that merely mention the
// marker, such as compiler flags, do not count.
func isDependsKey(line string) bool {
	key, _, found := strings.Cut(line, ":")
	return found && strings.HasSuffix(strings.TrimSpace(key), depsMarker)
}

// splitDependencies turns "general;a;general;b;" into [a b]. Link keywords
// are dropped, empty items are skipped and repeated names are kept once.
func splitDependencies(value string) []string {
	var deps []string
	seen := make(map[string]bool)

	for _, item := range strings.Split(value, ";") {
		item = strings.TrimSpace(item)
		if item == "" || linkKeywords[item] {
			continue
		}
		if seen[item] {
			continue
		}
		seen[item] = true
		deps = append(deps, item)
	}
	return deps
}
