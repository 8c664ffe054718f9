// Package loader provides functionality for loading Org files with support
// for #+INCLUDE keywords. It can recursively splice multiple files into a
// single document, handling relative paths and include cycles.
//
// The loader supports two modes of operation:
//   - Simple mode: Parses a single file with include keywords preserved as
//     ordinary keyword elements in the tree
//   - Follow mode: Recursively splices all included files into the source
//     before parsing, the way Org export does
//
// When following includes, the loader resolves relative paths from the
// directory of the file containing the include keyword and refuses cycles.
//
// Example usage:
//
//	// Load a single file without following includes
//	ldr := loader.New()
//	result, err := ldr.Load(ctx, "notes.org")
//
//	// Load with recursive include resolution
//	ldr := loader.New(loader.WithFollowIncludes())
//	result, err := ldr.Load(ctx, "notes.org")
package loader

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/robinvdvleuten/orgmode/ast"
	"github.com/robinvdvleuten/orgmode/parser"
	"github.com/robinvdvleuten/orgmode/telemetry"
)

// reInclude matches an #+INCLUDE keyword line. The first group holds the
// quoted path, the optional second group a block wrapper such as
// "src go" or "example".
var reInclude = regexp.MustCompile(`(?mi)^[ \t]*#\+INCLUDE:[ \t]+"([^"\n]+)"(?:[ \t]+(src[ \t]+\S+|example|export[ \t]+\S+))?[^\n]*$`)

// Loader handles loading and parsing of Org files with optional include
// resolution. Configure it using functional options passed to New:
//
//	ldr := New(WithFollowIncludes(), WithGranularity(parser.GranularityElement))
type Loader struct {
	// FollowIncludes determines whether #+INCLUDE keywords are spliced.
	// When false, only the named file is parsed and includes stay in the
	// tree as keyword elements.
	FollowIncludes bool

	// Granularity bounds how deep the parse descends.
	Granularity parser.Granularity

	// Environment customizes TODO keywords and list syntax. A nil
	// environment means parser defaults.
	Environment parser.Environment
}

// Option configures how files are loaded.
type Option func(*Loader)

// WithFollowIncludes configures the loader to recursively splice all
// included files into the source before parsing. Relative paths are
// resolved from the directory of the including file, and a file including
// itself (directly or through a chain) is an error.
func WithFollowIncludes() Option {
	return func(l *Loader) {
		l.FollowIncludes = true
	}
}

// WithGranularity bounds how deep the parse descends.
func WithGranularity(g parser.Granularity) Option {
	return func(l *Loader) {
		l.Granularity = g
	}
}

// WithEnvironment sets the parse environment for all loaded files.
func WithEnvironment(env parser.Environment) Option {
	return func(l *Loader) {
		l.Environment = env
	}
}

// New creates a new Loader with the given options.
func New(opts ...Option) *Loader {
	l := &Loader{
		Granularity: parser.GranularityObject,
	}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Result is a loaded document together with its file provenance.
type Result struct {
	// Document is the parsed tree.
	Document *ast.Node

	// Root is the absolute path of the root file, or the given name for
	// in-memory sources.
	Root string

	// Includes holds the absolute paths of all spliced files, in the
	// order they were first included. Empty unless FollowIncludes is set.
	Includes []string

	// Source is the text the document was parsed from. With includes
	// followed this is the spliced text, so node locations index into it.
	Source string
}

// Load reads and parses an Org file with optional include resolution.
func (l *Loader) Load(ctx context.Context, filename string) (*Result, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filename, err)
	}
	return l.LoadBytes(ctx, filename, data)
}

// LoadBytes parses in-memory content as if it were read from filename.
// Relative include paths resolve against the directory of filename.
func (l *Loader) LoadBytes(ctx context.Context, filename string, data []byte) (*Result, error) {
	timer := telemetry.RootTimerFromContext(ctx).Child(fmt.Sprintf("load %s", filepath.Base(filename)))
	defer timer.End()

	root := filename
	if abs, err := filepath.Abs(filename); err == nil {
		root = abs
	}

	source := string(data)
	result := &Result{Root: root}

	if l.FollowIncludes {
		state := &spliceState{
			visited: map[string]bool{root: true},
			seen:    make(map[string]bool),
		}
		spliced, err := state.splice(ctx, root, source)
		if err != nil {
			return nil, err
		}
		source = spliced
		result.Includes = state.order
	}

	parseTimer := timer.Child("parse")
	result.Document = parser.New(source, l.Granularity, l.Environment).Parse()
	parseTimer.End()

	result.Source = source
	return result, nil
}

// spliceState tracks visited files during recursive include resolution.
// visited holds the current include chain for cycle detection; seen and
// order record every file ever spliced, each once.
type spliceState struct {
	visited map[string]bool
	seen    map[string]bool
	order   []string
}

// splice replaces every #+INCLUDE line in source with the content of the
// named file, recursively. filename must be absolute; it anchors relative
// include paths and names the file in errors.
func (s *spliceState) splice(ctx context.Context, filename, source string) (string, error) {
	matches := reInclude.FindAllStringSubmatchIndex(source, -1)
	if len(matches) == 0 {
		return source, nil
	}

	baseDir := filepath.Dir(filename)

	var out strings.Builder
	out.Grow(len(source))
	last := 0

	for _, m := range matches {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		default:
		}

		path := source[m[2]:m[3]]
		if !filepath.IsAbs(path) {
			path = filepath.Join(baseDir, path)
		}

		pos := ast.LocatePosition(source, m[0])
		pos.Filename = filename

		if s.visited[path] {
			return "", &IncludeError{
				Pos:    pos,
				Source: source,
				Err:    fmt.Errorf("include cycle through %s", path),
			}
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return "", &IncludeError{Pos: pos, Source: source, Err: err}
		}

		s.visited[path] = true
		if !s.seen[path] {
			s.seen[path] = true
			s.order = append(s.order, path)
		}

		included, err := s.splice(ctx, path, string(data))
		if err != nil {
			return "", err
		}
		delete(s.visited, path)

		out.WriteString(source[last:m[0]])
		out.WriteString(wrapIncluded(included, blockWrapper(source, m)))
		last = lineEnd(source, m[1])
	}

	out.WriteString(source[last:])
	return out.String(), nil
}

// blockWrapper returns the block keyword following the include path, such
// as "src go" or "example", or "" for a plain splice.
func blockWrapper(source string, m []int) string {
	if m[4] < 0 {
		return ""
	}
	return strings.Join(strings.Fields(source[m[4]:m[5]]), " ")
}

// wrapIncluded wraps spliced content in a block when the include named
// one, matching what Org export does with "#+INCLUDE: "f" src go".
func wrapIncluded(content, wrapper string) string {
	if !strings.HasSuffix(content, "\n") {
		content += "\n"
	}
	if wrapper == "" {
		return content
	}

	name := strings.ToUpper(strings.Fields(wrapper)[0])
	header := "#+BEGIN_" + name
	if rest := strings.TrimSpace(wrapper[len(name):]); rest != "" {
		header += " " + rest
	}
	return header + "\n" + content + "#+END_" + name + "\n"
}

// lineEnd returns the offset just past the newline that ends the line
// containing pos, or len(source) on the last line.
func lineEnd(source string, pos int) int {
	if i := strings.IndexByte(source[pos:], '\n'); i >= 0 {
		return pos + i + 1
	}
	return len(source)
}

// IncludeError reports a failed include together with the position of the
// #+INCLUDE line that requested it.
type IncludeError struct {
	Pos    ast.Position
	Source string
	Err    error
}

func (e *IncludeError) Error() string {
	return fmt.Sprintf("%s: cannot include: %v", e.Pos, e.Err)
}

func (e *IncludeError) Unwrap() error {
	return e.Err
}

// GetPosition returns the position of the offending include line.
func (e *IncludeError) GetPosition() ast.Position {
	return e.Pos
}

// GetSource returns the content of the including file, for excerpt
// rendering.
func (e *IncludeError) GetSource() string {
	return e.Source
}
