package grammar

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"sort"
	"strings"
)

// EnvLanguageToolJar names the environment variable pointing at the
// LanguageTool command-line jar.
const EnvLanguageToolJar = "LANGUAGETOOL_JAR"

// LanguageTool runs the LanguageTool grammar engine as an external Java
// process.
type LanguageTool struct {
	jarPath  string
	javaPath string
	language string
}

// ltResponse mirrors the JSON emitted by languagetool-commandline --json.
type ltResponse struct {
	Matches []ltMatch `json:"matches"`
}

type ltMatch struct {
	Message      string `json:"message"`
	Offset       int    `json:"offset"`
	Length       int    `json:"length"`
	Replacements []struct {
		Value string `json:"value"`
	} `json:"replacements"`
	Rule struct {
		ID       string `json:"id"`
		Category struct {
			Name string `json:"name"`
		} `json:"category"`
	} `json:"rule"`
}

// NewLanguageTool creates a checker for the given jar path. Construction does
// not probe; call IsAvailable for that.
func NewLanguageTool(jarPath, language string) *LanguageTool {
	if language == "" {
		language = "de-DE"
	}
	return &LanguageTool{jarPath: jarPath, language: language}
}

// IsAvailable checks that the jar exists and a Java runtime is on PATH.
func (lt *LanguageTool) IsAvailable() error {
	if lt.jarPath == "" {
		return fmt.Errorf("%s is not set", EnvLanguageToolJar)
	}
	if _, err := os.Stat(lt.jarPath); err != nil {
		return fmt.Errorf("LanguageTool jar not found at %s: %w", lt.jarPath, err)
	}
	javaPath, err := exec.LookPath("java")
	if err != nil {
		return fmt.Errorf("java runtime not found in PATH: %w", err)
	}
	lt.javaPath = javaPath
	return nil
}

// Check runs the engine over the text and returns the full report, including
// a corrected version built from the first replacement of each match.
func (lt *LanguageTool) Check(ctx context.Context, text string) (*Report, error) {
	if lt.javaPath == "" {
		if err := lt.IsAvailable(); err != nil {
			return nil, err
		}
	}

	cmd := exec.CommandContext(ctx, lt.javaPath,
		"-jar", lt.jarPath,
		"--json",
		"--language", lt.language,
		"-",
	)
	cmd.Stdin = strings.NewReader(text)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("languagetool failed: %w\nOutput: %s", err, stderr.String())
	}

	var resp ltResponse
	if err := json.Unmarshal(stdout.Bytes(), &resp); err != nil {
		return nil, fmt.Errorf("failed to parse languagetool output: %w", err)
	}

	return buildReport(text, resp), nil
}

// Serve implements capability.Backend.
func (lt *LanguageTool) Serve(ctx context.Context, text string) (any, error) {
	return lt.Check(ctx, text)
}

// Name implements capability.Backend.
func (lt *LanguageTool) Name() string {
	return "languagetool"
}

func buildReport(text string, resp ltResponse) *Report {
	report := &Report{Original: text}

	for _, match := range resp.Matches {
		issue := Issue{
			Message:  match.Message,
			Offset:   match.Offset,
			Length:   match.Length,
			Category: match.Rule.Category.Name,
			RuleID:   match.Rule.ID,
		}
		for i, repl := range match.Replacements {
			if i >= 3 {
				break
			}
			issue.Replacements = append(issue.Replacements, repl.Value)
		}
		report.Issues = append(report.Issues, issue)
	}

	report.Corrected = applyReplacements(text, report.Issues)
	return report
}

// applyReplacements builds the corrected text by applying each issue's first
// replacement. Issues are applied back to front so earlier offsets stay
// valid.
func applyReplacements(text string, issues []Issue) string {
	applicable := make([]Issue, 0, len(issues))
	for _, issue := range issues {
		if len(issue.Replacements) > 0 && issue.Offset >= 0 && issue.Offset+issue.Length <= len(text) {
			applicable = append(applicable, issue)
		}
	}
	sort.Slice(applicable, func(i, j int) bool {
		return applicable[i].Offset > applicable[j].Offset
	})

	corrected := text
	for _, issue := range applicable {
		corrected = corrected[:issue.Offset] + issue.Replacements[0] + corrected[issue.Offset+issue.Length:]
	}
	return corrected
}
