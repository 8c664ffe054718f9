package web

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
)

// writeJSONResponse writes a JSON response to the http.ResponseWriter.
// If encoding fails, it writes an error response.
func writeJSONResponse(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

type SourceResponse struct {
	Filepath string `json:"filepath"`
	Source   string `json:"source"`
}

// resolveFilepathFromString resolves a filepath string to an absolute path.
// If the path is empty, returns the server's root Org file.
// The resolved path is validated against the served document's file set.
func (s *Server) resolveFilepathFromString(path string) (string, error) {
	if path == "" {
		if s.inputFile == "" {
			return "", fmt.Errorf("no filepath provided and no org file configured")
		}
		return s.inputFile, nil
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("invalid filepath: %w", err)
	}

	if err := s.validateFilepath(absPath); err != nil {
		return "", err
	}

	return absPath, nil
}

// validateFilepath ensures the path refers to the root file or one of its
// includes, resolving symlinks before comparing. Anything else on disk is
// off limits, even files sitting next to the root in the same directory.
func (s *Server) validateFilepath(path string) error {
	if s.inputFile == "" {
		return nil
	}

	resolvedPath, err := filepath.EvalSymlinks(path)
	if err != nil {
		parentDir := filepath.Dir(path)
		resolvedParent, err := filepath.EvalSymlinks(parentDir)
		if err != nil {
			return fmt.Errorf("access denied: invalid path")
		}
		resolvedPath = filepath.Join(resolvedParent, filepath.Base(path))
	}

	s.mu.RLock()
	allowed := append([]string{s.rootFile}, s.includeFiles...)
	s.mu.RUnlock()

	for _, f := range allowed {
		resolved, err := filepath.EvalSymlinks(f)
		if err != nil {
			resolved = f
		}
		if resolvedPath == resolved {
			return nil
		}
	}

	return fmt.Errorf("access denied: filepath is not part of the served document")
}

// resolveFilepath extracts the filepath from the request query parameters.
// If no filepath is provided, returns the server's root Org file.
// The returned path is always absolute and validated for security.
func (s *Server) resolveFilepath(r *http.Request) (string, error) {
	filename := r.URL.Query().Get("filepath")
	return s.resolveFilepathFromString(filename)
}

// handleGetSource handles GET requests to /api/source.
// Returns the file content as JSON.
func (s *Server) handleGetSource(w http.ResponseWriter, r *http.Request) {
	filename, err := s.resolveFilepath(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	content, err := os.ReadFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			http.Error(w, "File not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to read file", http.StatusInternalServerError)
		return
	}

	writeJSONResponse(w, &SourceResponse{
		Filepath: filename,
		Source:   string(content),
	})
}

// handlePutSource handles PUT requests to /api/source.
// Writes the provided content to the file and reparses the document.
func (s *Server) handlePutSource(w http.ResponseWriter, r *http.Request) {
	var request struct {
		Filepath string `json:"filepath"`
		Source   string `json:"source"`
	}

	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	filename, err := s.resolveFilepathFromString(request.Filepath)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	// Write file first (outside lock)
	if err := os.WriteFile(filename, []byte(request.Source), 0600); err != nil {
		http.Error(w, "Failed to write file", http.StatusInternalServerError)
		return
	}

	// Reparse after save
	if err := s.reloadDocument(r.Context()); err != nil {
		http.Error(w, "Failed to reload document", http.StatusInternalServerError)
		return
	}

	writeJSONResponse(w, &SourceResponse{
		Filepath: filename,
		Source:   request.Source,
	})
}
