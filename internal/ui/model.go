package ui

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/nconklindev/hitlisten/internal/config"
	apperrors "github.com/nconklindev/hitlisten/internal/errors"
	"github.com/nconklindev/hitlisten/internal/pipeline"
	"github.com/nconklindev/hitlisten/internal/report"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type state int

const (
	stateFilePicker state = iota
	stateProcessing
	stateReport
	stateError
)

type Model struct {
	cfg          *config.Config
	log          *slog.Logger
	state        state
	filepicker   filepicker.Model
	selectedFile string
	result       *pipeline.Result
	report       viewport.Model
	status       string
	err          error
	width        int
	height       int
	progress     progress.Model
	progressChan chan float64
	resultChan   chan analysisResultMsg
}

type analysisResultMsg struct {
	result *pipeline.Result
	err    error
}

type analysisCompleteMsg analysisResultMsg

type savedMsg struct {
	what string
	path string
	err  error
}

type progressMsg float64

type waitForProgressMsg struct{}

// InitialModel starts on the file picker, or straight on the analysis when
// path is set.
func InitialModel(cfg *config.Config, log *slog.Logger, path string) Model {
	fp := filepicker.New()
	fp.AllowedTypes = []string{".xlsx"}
	fp.CurrentDirectory, _ = os.Getwd()
	if raw, err := config.DataPath(cfg.Root, string(config.Raw)); err == nil {
		if info, err := os.Stat(raw); err == nil && info.IsDir() {
			fp.CurrentDirectory = raw
		}
	}

	// Set filepicker colors to match theme
	fp.Styles.Cursor = lipgloss.NewStyle().Foreground(report.Accent)
	fp.Styles.Symlink = lipgloss.NewStyle().Foreground(report.Warn)
	fp.Styles.Directory = lipgloss.NewStyle().Foreground(report.Warn)
	fp.Styles.File = lipgloss.NewStyle().Foreground(report.Neutral)
	fp.Styles.Permission = lipgloss.NewStyle().Foreground(report.Muted)
	fp.Styles.Selected = lipgloss.NewStyle().Foreground(report.Accent).Bold(true)
	fp.Styles.FileSize = lipgloss.NewStyle().Foreground(report.Muted)

	m := Model{
		cfg:        cfg,
		log:        log,
		state:      stateFilePicker,
		filepicker: fp,
		report:     viewport.New(80, 20),
		progress:   progress.New(progress.WithGradient(string(report.Accent), string(report.AccentLight))),
	}
	if path != "" {
		m.selectedFile = path
		m.state = stateProcessing
		m.progressChan = make(chan float64, 10)
		m.resultChan = make(chan analysisResultMsg, 1)
	}
	return m
}

func (m Model) Init() tea.Cmd {
	if m.state == stateProcessing {
		return m.startAnalysis()
	}
	return m.filepicker.Init()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		// Subtract space for title, subtitle, help text, and padding
		height := msg.Height - 14
		if height < 5 {
			height = 5 // Minimum height
		}
		m.filepicker.SetHeight(height)
		m.report.Width = max(msg.Width-6, 20)
		m.report.Height = max(msg.Height-10, 5)

		return m, nil

	case tea.KeyMsg:
		switch m.state {
		case stateFilePicker:
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			}

		case stateReport:
			switch msg.String() {
			case "ctrl+c", "q", "esc":
				return m, tea.Quit
			case "c":
				m.status = statusStyle.Render("Rendering chart...")
				return m, m.save("Chart", pipeline.SaveChart)
			case "x":
				m.status = statusStyle.Render("Writing workbook...")
				return m, m.save("Export", pipeline.SaveExport)
			}
			var cmd tea.Cmd
			m.report, cmd = m.report.Update(msg)
			return m, cmd

		case stateError:
			switch msg.String() {
			case "ctrl+c", "q", "enter", "esc":
				return m, tea.Quit
			}
		}

	case analysisCompleteMsg:
		if msg.err != nil {
			m.log.Error("analysis failed", "path", m.selectedFile, "code", apperrors.GetCode(msg.err), "error", msg.err)
			m.err = msg.err
			m.state = stateError
			return m, nil
		}
		m.result = msg.result
		m.report.SetContent(pipeline.Report(msg.result))
		if !msg.result.MappingFound {
			m.status = statusStyle.Render("No aggregation mapping found; groups were not aggregated.")
		}
		m.state = stateReport
		return m, nil

	case savedMsg:
		if msg.err != nil {
			m.log.Error("save failed", "what", msg.what, "error", msg.err)
			m.status = ErrorStyle.Render(fmt.Sprintf("✗ %s failed: %v", msg.what, msg.err))
			return m, nil
		}
		m.log.Info("saved", "what", msg.what, "path", msg.path)
		m.status = SuccessStyle.Render(fmt.Sprintf("✓ %s saved: %s", msg.what, msg.path))
		return m, nil

	case progress.FrameMsg:
		progressModel, cmd := m.progress.Update(msg)
		m.progress = progressModel.(progress.Model)
		return m, cmd

	case progressMsg:
		if m.state == stateProcessing {
			cmd := m.progress.SetPercent(float64(msg))
			return m, tea.Batch(cmd, waitForProgress(m.progressChan, m.resultChan))
		}
		return m, nil

	case waitForProgressMsg:
		return m, waitForProgress(m.progressChan, m.resultChan)
	}

	// Handle filepicker updates
	if m.state == stateFilePicker {
		var cmd tea.Cmd
		m.filepicker, cmd = m.filepicker.Update(msg)

		if didSelect, path := m.filepicker.DidSelectFile(msg); didSelect {
			m.selectedFile = path
			m.state = stateProcessing
			m.progressChan = make(chan float64, 10)
			m.resultChan = make(chan analysisResultMsg, 1)
			return m, m.startAnalysis()
		}

		return m, cmd
	}

	return m, nil
}

func (m Model) startAnalysis() tea.Cmd {
	// Capture for the goroutine
	cfg := m.cfg
	log := m.log
	path := m.selectedFile
	progressChan := m.progressChan
	resultChan := m.resultChan

	return tea.Batch(
		func() tea.Msg {
			go func() {
				result, err := pipeline.Run(cfg, path, log, progressChan)

				resultChan <- analysisResultMsg{result: result, err: err}

				close(progressChan)
				close(resultChan)
			}()

			return waitForProgressMsg{}
		},
		m.progress.Init(),
	)
}

func (m Model) save(what string, fn func(*config.Config, *pipeline.Result) (string, error)) tea.Cmd {
	cfg := m.cfg
	result := m.result
	return func() tea.Msg {
		path, err := fn(cfg, result)
		return savedMsg{what: what, path: path, err: err}
	}
}

func waitForProgress(progressChan chan float64, resultChan chan analysisResultMsg) tea.Cmd {
	return func() tea.Msg {
		if progressChan == nil {
			return nil
		}

		p, ok := <-progressChan
		if !ok {
			// Progress channel closed, check result
			res, ok := <-resultChan
			if ok {
				return analysisCompleteMsg(res)
			}
			return nil
		}

		return progressMsg(p)
	}
}

func (m Model) View() string {
	switch m.state {
	case stateFilePicker:
		return m.viewFilePicker()
	case stateProcessing:
		return m.viewProcessing()
	case stateReport:
		return m.viewReport()
	case stateError:
		return m.viewError()
	}
	return ""
}

func (m Model) viewFilePicker() string {
	var s strings.Builder

	s.WriteString(TitleStyle.Render("▤ Hitlisten - Group Size & Power Analysis"))
	s.WriteString("\n")
	s.WriteString(SubtitleStyle.Render("Select a Hitlisten workbook (.xlsx)"))
	s.WriteString("\n\n")
	s.WriteString(m.filepicker.View())
	s.WriteString("\n\n")
	s.WriteString(HelpStyle.Render("Press q to quit"))

	return s.String()
}

func (m Model) viewProcessing() string {
	var s strings.Builder

	s.WriteString(TitleStyle.Render("▤ Analysing..."))
	s.WriteString("\n\n")
	s.WriteString(fmt.Sprintf("Loading %s", filepath.Base(m.selectedFile)))
	s.WriteString("\n\n")
	s.WriteString(m.progress.View())

	return BoxStyle.Render(s.String())
}

func (m Model) viewReport() string {
	var s strings.Builder

	s.WriteString(TitleStyle.Render(fmt.Sprintf("✓ %s", filepath.Base(m.selectedFile))))
	s.WriteString("\n")
	s.WriteString(SubtitleStyle.Render(fmt.Sprintf("%d tables · %d groups · threshold n=%d",
		len(m.result.Tables), len(m.result.Groups), m.cfg.Analysis.Threshold)))
	s.WriteString("\n")
	s.WriteString(m.report.View())
	s.WriteString("\n")
	if m.status != "" {
		s.WriteString(m.status)
		s.WriteString("\n")
	}
	s.WriteString(HelpStyle.Render("↑/↓: scroll • c: save chart • x: export xlsx • q: quit"))

	return s.String()
}

func (m Model) viewError() string {
	var s strings.Builder

	s.WriteString(ErrorStyle.Render("✗ Error"))
	s.WriteString("\n\n")
	s.WriteString(m.err.Error())
	s.WriteString("\n\n")
	s.WriteString(HelpStyle.Render("Press any key to exit"))

	return BoxStyle.Render(s.String())
}
