package web

import (
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/robinvdvleuten/orgmode/doc"
)

// OutlineEntry represents one headline in the JSON outline tree.
type OutlineEntry struct {
	Level       int             `json:"level"`
	Title       string          `json:"title"`
	TodoKeyword string          `json:"todoKeyword,omitempty"`
	Priority    string          `json:"priority,omitempty"`
	Tags        []string        `json:"tags,omitempty"`
	Line        int             `json:"line"`
	Clocked     int             `json:"clockedMinutes,omitempty"`
	Children    []*OutlineEntry `json:"children,omitempty"`
}

// OutlineResponse is the JSON response structure for the outline endpoint.
type OutlineResponse struct {
	Filepath string          `json:"filepath"`
	Entries  []*OutlineEntry `json:"entries"`
}

func outlineEntries(entries []*doc.Entry) []*OutlineEntry {
	if len(entries) == 0 {
		return nil
	}

	out := make([]*OutlineEntry, 0, len(entries))
	for _, e := range entries {
		entry := &OutlineEntry{
			Level:       e.Level,
			Title:       e.Title,
			TodoKeyword: e.TodoKeyword,
			Tags:        e.Tags,
			Line:        e.Pos.Line,
			Clocked:     e.ClockedTotal,
			Children:    outlineEntries(e.Children),
		}
		if e.Priority != 0 {
			entry.Priority = string(e.Priority)
		}
		out = append(out, entry)
	}
	return out
}

// handleGetOutline handles GET requests to /api/outline.
// Returns the nested headline tree of the document.
func (s *Server) handleGetOutline(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	writeJSONResponse(w, &OutlineResponse{
		Filepath: s.rootFile,
		Entries:  outlineEntries(s.doc.Outline()),
	})
}

// TagInfo represents one tag and the headlines carrying it.
type TagInfo struct {
	Name      string `json:"name"`
	Headlines []int  `json:"headlines"` // source lines, in document order
}

// TagsResponse is the JSON response structure for the tags endpoint.
type TagsResponse struct {
	Tags []TagInfo `json:"tags"`
}

// handleGetTags handles GET requests to /api/tags.
// Returns all tags in the document, sorted alphabetically.
func (s *Server) handleGetTags(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := s.doc.Tags()
	tags := make([]TagInfo, 0, len(names))

	for _, name := range names {
		entries := s.doc.EntriesWithTag(name)
		lines := make([]int, 0, len(entries))
		for _, e := range entries {
			lines = append(lines, e.Pos.Line)
		}
		tags = append(tags, TagInfo{Name: name, Headlines: lines})
	}

	writeJSONResponse(w, &TagsResponse{Tags: tags})
}

// StatsResponse is the JSON response structure for the stats endpoint.
type StatsResponse struct {
	Headlines      int             `json:"headlines"`
	Todo           map[string]int  `json:"todo,omitempty"`
	Done           map[string]int  `json:"done,omitempty"`
	Completion     decimal.Decimal `json:"completion"`
	ClockedMinutes int             `json:"clockedMinutes"`
	ClockedHours   decimal.Decimal `json:"clockedHours"`
}

// handleGetStats handles GET requests to /api/stats.
func (s *Server) handleGetStats(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := s.doc.Stats()

	writeJSONResponse(w, &StatsResponse{
		Headlines:      stats.Headlines,
		Todo:           stats.Todo,
		Done:           stats.Done,
		Completion:     stats.Completion,
		ClockedMinutes: stats.ClockedMinutes,
		ClockedHours:   stats.ClockedHours(),
	})
}
