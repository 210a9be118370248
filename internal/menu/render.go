package menu

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"codeberg.org/snonux/lernhelfer/internal/analysis"
	"codeberg.org/snonux/lernhelfer/internal/capability"
	"codeberg.org/snonux/lernhelfer/internal/grammar"
	"codeberg.org/snonux/lernhelfer/internal/pronunciation"
	"codeberg.org/snonux/lernhelfer/internal/store"
	"codeberg.org/snonux/lernhelfer/internal/translation"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	labelStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	warnStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3"))
	errorStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
	subtleStyle = lipgloss.NewStyle().Faint(true)
	panelStyle  = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("6")).
			Padding(0, 1)
)

func renderWelcome() string {
	return panelStyle.Render(
		titleStyle.Render("Deutsch Lernhelfer") + "\n" +
			subtleStyle.Render("A German learning helper for A1 beginners"))
}

func renderModeTitle(title string) string {
	return "\n" + titleStyle.Render(title)
}

// renderCapabilities summarizes the startup probe outcome so the user knows
// up front what runs in reduced mode.
func renderCapabilities(caps []capability.Capability) string {
	var b strings.Builder
	b.WriteString(labelStyle.Render("Capabilities:"))
	for _, c := range caps {
		b.WriteString("\n  ")
		if c.Status == capability.StatusAvailable {
			b.WriteString(fmt.Sprintf("%s: %s", c.ID, c.Status))
		} else {
			b.WriteString(warnStyle.Render(fmt.Sprintf("%s: %s", c.ID, c.Status)))
			b.WriteString(subtleStyle.Render(" (" + c.Reason + ")"))
		}
	}
	return b.String()
}

func renderDegradedWarning(c capability.Capability) string {
	return warnStyle.Render("Note: this feature runs in reduced mode.") + "\n" +
		subtleStyle.Render(c.Reason)
}

// RenderResult formats a dispatch result for one-shot output. Degraded
// results always carry the reduced-mode note.
func RenderResult(result capability.Result) string {
	return renderResult(result)
}

// renderResult formats a dispatch result by payload type.
func renderResult(result capability.Result) string {
	var body string
	switch payload := result.Payload.(type) {
	case *translation.Outcome:
		body = renderOutcome(payload)
	case *analysis.Analysis:
		body = renderAnalysis(payload)
	case *grammar.Report:
		body = renderReport(payload)
	case *pronunciation.Guidance:
		body = renderGuidance(payload)
	default:
		body = fmt.Sprintf("%v", payload)
	}

	if result.Degraded() {
		body += "\n" + warnStyle.Render(fmt.Sprintf("(served in reduced mode by %s)", result.Backend))
	}
	return body
}

func renderOutcome(o *translation.Outcome) string {
	var b strings.Builder
	b.WriteString(labelStyle.Render("Translation: "))
	b.WriteString(o.Translated)
	b.WriteString(subtleStyle.Render(fmt.Sprintf("  [%s → %s]", o.SourceLang, o.TargetLang)))

	if len(o.Explanations) > 0 {
		b.WriteString("\n" + labelStyle.Render("Word explanations:"))
		for _, ex := range o.Explanations {
			b.WriteString(fmt.Sprintf("\n  • %s: %s", ex.Word, ex.Meaning))
		}
	}
	if o.Note != "" {
		b.WriteString("\n" + subtleStyle.Render("Note: "+o.Note))
	}
	return panelStyle.Render(b.String())
}

func renderAnalysis(a *analysis.Analysis) string {
	var b strings.Builder
	b.WriteString(labelStyle.Render("Tense: "))
	b.WriteString(a.Tense)

	for _, tok := range a.Tokens {
		if tok.POS == "PUNCT" {
			continue
		}
		b.WriteString(fmt.Sprintf("\n  • %s: %s", tok.Text, analysis.POSGloss(tok.POS)))
		if tok.Gloss != "" && tok.Gloss != analysis.POSGloss(tok.POS) {
			b.WriteString(", " + tok.Gloss)
		}
		if tok.Lemma != "" && !strings.EqualFold(tok.Lemma, tok.Text) {
			b.WriteString(", lemma: " + tok.Lemma)
		}
	}
	return panelStyle.Render(b.String())
}

func renderReport(r *grammar.Report) string {
	if !r.HasChanges() {
		return labelStyle.Render("No errors found. Sehr gut!")
	}

	var b strings.Builder
	if r.Limited {
		b.WriteString(warnStyle.Render("Basic spell check only (full grammar engine unavailable)."))
		b.WriteString("\n")
	} else if r.Corrected != r.Original {
		b.WriteString(labelStyle.Render("Corrected: "))
		b.WriteString(r.Corrected)
		b.WriteString("\n")
	}

	for i, issue := range r.Issues {
		b.WriteString(fmt.Sprintf("%d. %s", i+1, issue.Message))
		if len(issue.Replacements) > 0 {
			b.WriteString(subtleStyle.Render(" → " + strings.Join(issue.Replacements, ", ")))
		}
		if i < len(r.Issues)-1 {
			b.WriteString("\n")
		}
	}
	return panelStyle.Render(b.String())
}

func renderGuidance(g *pronunciation.Guidance) string {
	var b strings.Builder
	b.WriteString(labelStyle.Render(fmt.Sprintf("Pronunciation of %q:", g.Text)))
	for _, tip := range g.Tips {
		b.WriteString("\n  • " + tip)
	}
	if g.IPA != "" {
		b.WriteString("\n\n" + labelStyle.Render("IPA breakdown:") + "\n" + g.IPA)
	}
	if g.AudioFile != "" {
		b.WriteString("\n" + subtleStyle.Render("Audio: "+g.AudioFile))
	}
	return panelStyle.Render(b.String())
}

func renderNotebook(entries []store.Entry) string {
	if len(entries) == 0 {
		return subtleStyle.Render("The notebook is still empty.")
	}

	var b strings.Builder
	b.WriteString(labelStyle.Render("Vocabulary notebook (latest first):"))
	for _, e := range entries {
		b.WriteString(fmt.Sprintf("\n  %s  %s → %s",
			e.CreatedAt.Local().Format("2006-01-02 15:04"), e.Text, e.Result))
		if e.Mode == string(capability.StatusDegraded) {
			b.WriteString(warnStyle.Render(" (reduced mode)"))
		}
	}
	return b.String()
}

// summarize produces the short notebook line for a result.
func summarize(result capability.Result) string {
	switch payload := result.Payload.(type) {
	case *translation.Outcome:
		return payload.Translated
	case *analysis.Analysis:
		return "tense: " + payload.Tense
	case *grammar.Report:
		if !payload.HasChanges() {
			return "no errors"
		}
		return fmt.Sprintf("%d issue(s)", len(payload.Issues))
	case *pronunciation.Guidance:
		if payload.IPA != "" {
			return "IPA + tips"
		}
		return fmt.Sprintf("%d tip(s)", len(payload.Tips))
	default:
		return fmt.Sprintf("%v", payload)
	}
}

// audioFile extracts the synthesized audio path from a result, if any.
func audioFile(result capability.Result) string {
	if guidance, ok := result.Payload.(*pronunciation.Guidance); ok {
		return guidance.AudioFile
	}
	return ""
}
