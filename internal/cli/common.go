package cli

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/danieljhkim/studyplan/internal/config"
	"github.com/danieljhkim/studyplan/internal/engine"
	"github.com/danieljhkim/studyplan/internal/fsops"
	"github.com/danieljhkim/studyplan/internal/hash"
	"github.com/danieljhkim/studyplan/internal/persist"
)

// newEngine creates a new engine with real implementations of all dependencies.
func newEngine() (*engine.Engine, error) {
	// Get default paths
	defaults, err := config.DefaultPaths()
	if err != nil {
		return nil, fmt.Errorf("failed to get config paths: %w", err)
	}
	paths := defaults.WithPlanFile(planFile)

	// Ensure directories exist
	if err := paths.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("failed to ensure directories: %w", err)
	}

	// Create real implementations
	fs := fsops.NewRealFS()
	if err := fs.ValidatePlanPath(paths.PlanFile); err != nil {
		return nil, err
	}
	planRepo := persist.NewFilePlanRepo(fs)
	hasher := hash.NewSHA256Hasher()

	return engine.New(planRepo, hasher, paths), nil
}

// outputJSON writes a value as indented JSON. Term names stay literal.
func outputJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// promptConfirm prompts the user for a yes/no confirmation.
func promptConfirm(in io.Reader, out io.Writer, prompt string) bool {
	_, _ = fmt.Fprintf(out, "%s (y/N): ", prompt)
	response, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && response == "" {
		return false
	}
	return isYes(response)
}

func isYes(response string) bool {
	response = strings.TrimSpace(strings.ToLower(response))
	return response == "y" || response == "yes" || response == "j" || response == "ja"
}
