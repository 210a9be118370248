// Package menu implements the interactive console interface: a numbered
// action menu and one prompt loop per mode, dispatching each line of input
// through the capability registry.
package menu

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/rs/zerolog"

	"codeberg.org/snonux/lernhelfer/internal/audio"
	"codeberg.org/snonux/lernhelfer/internal/capability"
	"codeberg.org/snonux/lernhelfer/internal/store"
)

type action string

const (
	actionTranslate action = "translate"
	actionAnalyze   action = "analyze"
	actionCorrect   action = "correct"
	actionPronounce action = "pronounce"
	actionNotebook  action = "notebook"
	actionExit      action = "exit"
)

// modePrompts maps each capability-backed action to its prompt text.
var modePrompts = map[action]struct {
	capability capability.ID
	title      string
	prompt     string
}{
	actionTranslate: {
		capability.Translation,
		"Translation",
		"Text to translate (German or Chinese)",
	},
	actionAnalyze: {
		capability.Analysis,
		"Grammar analysis",
		"German sentence to analyze",
	},
	actionCorrect: {
		capability.GrammarCheck,
		"Spelling and grammar check",
		"German sentence to check",
	},
	actionPronounce: {
		capability.Pronunciation,
		"Pronunciation guide",
		"German word to look up",
	},
}

// Menu runs the interactive prompt loop.
type Menu struct {
	registry *capability.Registry
	notebook *store.Store // may be nil
	logger   zerolog.Logger
	in       io.Reader
	out      io.Writer
	autoplay bool
}

// New creates a menu over the given registry. The notebook may be nil.
func New(registry *capability.Registry, notebook *store.Store, autoplay bool, logger zerolog.Logger) *Menu {
	return &Menu{
		registry: registry,
		notebook: notebook,
		logger:   logger,
		in:       os.Stdin,
		out:      os.Stdout,
		autoplay: autoplay,
	}
}

// Run shows the menu until the user exits. It returns nil on a normal exit,
// including ctrl-c.
func (m *Menu) Run(ctx context.Context) error {
	fmt.Fprintln(m.out, renderWelcome())
	fmt.Fprintln(m.out, renderCapabilities(m.registry.Capabilities()))

	for {
		choice, err := m.selectAction()
		if err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				m.farewell()
				return nil
			}
			return fmt.Errorf("menu selection failed: %w", err)
		}

		switch choice {
		case actionExit:
			m.farewell()
			return nil
		case actionNotebook:
			m.showNotebook()
		default:
			m.runMode(ctx, choice)
		}
	}
}

func (m *Menu) selectAction() (action, error) {
	var choice action
	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[action]().
			Title("Deutsch Lernhelfer").
			Options(
				huh.NewOption("1. Translate (DE ↔ ZH)", actionTranslate),
				huh.NewOption("2. Analyze grammar", actionAnalyze),
				huh.NewOption("3. Check spelling & grammar", actionCorrect),
				huh.NewOption("4. Pronunciation guide", actionPronounce),
				huh.NewOption("5. Vocabulary notebook", actionNotebook),
				huh.NewOption("6. Exit", actionExit),
			).
			Value(&choice),
	))
	if err := form.Run(); err != nil {
		return "", err
	}
	return choice, nil
}

// runMode reads lines for one capability until the user types q. Empty input
// reprompts; backend failures are reported and do not end the mode.
func (m *Menu) runMode(ctx context.Context, choice action) {
	mode := modePrompts[choice]

	fmt.Fprintln(m.out, renderModeTitle(mode.title))
	if cap, ok := m.registry.Lookup(mode.capability); ok && cap.Status == capability.StatusDegraded {
		fmt.Fprintln(m.out, renderDegradedWarning(cap))
	}
	fmt.Fprintln(m.out, subtleStyle.Render("Enter 'q' to return to the menu."))

	scanner := bufio.NewScanner(m.in)
	for {
		fmt.Fprintf(m.out, "\n%s: ", mode.prompt)
		if !scanner.Scan() {
			return
		}
		text := strings.TrimSpace(scanner.Text())
		if strings.EqualFold(text, "q") {
			return
		}

		result, err := m.registry.Dispatch(ctx, capability.Request{
			Capability: mode.capability,
			Text:       text,
		})
		if err != nil {
			m.reportError(err)
			continue
		}

		fmt.Fprintln(m.out, renderResult(result))
		m.record(text, result)
		m.maybePlay(result)
	}
}

func (m *Menu) reportError(err error) {
	var inputErr *capability.InputError
	if errors.As(err, &inputErr) {
		fmt.Fprintln(m.out, warnStyle.Render("Please enter some text."))
		return
	}

	var backendErr *capability.BackendError
	if errors.As(err, &backendErr) {
		m.logger.Error().Err(backendErr.Err).
			Str("capability", string(backendErr.Capability)).
			Str("backend", backendErr.Backend).
			Msg("backend call failed")
		fmt.Fprintln(m.out, errorStyle.Render("The request failed: "+backendErr.Err.Error()))
		fmt.Fprintln(m.out, subtleStyle.Render("This is usually temporary. Please try again."))
		return
	}

	fmt.Fprintln(m.out, errorStyle.Render("Error: "+err.Error()))
}

func (m *Menu) record(text string, result capability.Result) {
	if m.notebook == nil {
		return
	}
	if err := m.notebook.Record(text, summarize(result), string(result.Capability), string(result.Mode)); err != nil {
		m.logger.Warn().Err(err).Msg("failed to record lookup in notebook")
	}
}

func (m *Menu) maybePlay(result capability.Result) {
	if !m.autoplay {
		return
	}
	file := audioFile(result)
	if file == "" {
		return
	}

	fmt.Fprintln(m.out, subtleStyle.Render("Playing audio..."))
	if err := audio.PlayFile(file); err != nil {
		m.logger.Warn().Err(err).Msg("audio playback failed")
		fmt.Fprintln(m.out, warnStyle.Render("Could not play audio: "+err.Error()))
	}
}

func (m *Menu) showNotebook() {
	if m.notebook == nil {
		fmt.Fprintln(m.out, warnStyle.Render("The vocabulary notebook is not available."))
		return
	}

	entries, err := m.notebook.Recent(20)
	if err != nil {
		m.logger.Error().Err(err).Msg("failed to read notebook")
		fmt.Fprintln(m.out, errorStyle.Render("Could not read the notebook: "+err.Error()))
		return
	}

	fmt.Fprintln(m.out, renderNotebook(entries))
}

func (m *Menu) farewell() {
	fmt.Fprintln(m.out, titleStyle.Render("Danke und auf Wiedersehen!"))
}
