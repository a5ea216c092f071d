package tui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mikevskater/sheet-todo/internal/adapter"
	"github.com/mikevskater/sheet-todo/internal/service"
	"github.com/mikevskater/sheet-todo/models"
)

const statusClearAfter = 3 * time.Second

type editorModel struct {
	ctx      context.Context
	services *service.ClientServices
	surface  *service.BufferSurface

	textarea textarea.Model
	width    int
	height   int

	loading bool
	saving  bool
	offline bool
	status  string
	errMsg  string
}

func newEditorModel(ctx context.Context, services *service.ClientServices, surface *service.BufferSurface) editorModel {
	ta := textarea.New()
	ta.Placeholder = "Start typing..."
	ta.CharLimit = 0
	ta.MaxHeight = 0
	ta.ShowLineNumbers = false
	ta.Focus()

	return editorModel{
		ctx:      ctx,
		services: services,
		surface:  surface,
		textarea: ta,
		loading:  true,
	}
}

func (m editorModel) Init() tea.Cmd {
	return tea.Batch(textarea.Blink, m.cmdOpen())
}

func (m editorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.textarea.SetWidth(msg.Width - 4)
		m.textarea.SetHeight(msg.Height - 6)
		return m, nil

	case openDoneMsg:
		m.loading = false
		if msg.err != nil {
			if errors.Is(msg.err, adapter.ErrNotConfigured) {
				m.offline = true
			} else {
				m.errMsg = fmt.Sprintf("fetch failed: %v", msg.err)
			}
		}
		m.applySurface()
		if msg.restored {
			m.status = "draft restored"
			return m, m.cmdClearStatus()
		}
		return m, nil

	case saveDoneMsg:
		m.saving = false
		if msg.err != nil {
			if errors.Is(msg.err, adapter.ErrNotConfigured) {
				m.errMsg = "cannot save: basket not configured"
			} else {
				m.errMsg = fmt.Sprintf("save failed: %v", msg.err)
			}
			return m, nil
		}
		m.status = "saved"
		m.errMsg = ""
		return m, m.cmdClearStatus()

	case revertDoneMsg:
		if msg.err != nil {
			if errors.Is(msg.err, service.ErrNoSavedContent) {
				m.errMsg = "nothing saved yet"
			} else {
				m.errMsg = fmt.Sprintf("revert failed: %v", msg.err)
			}
			return m, nil
		}
		m.applySurface()
		m.status = "reverted"
		m.errMsg = ""
		return m, m.cmdClearStatus()

	case copiedMsg:
		m.status = "copied"
		return m, m.cmdClearStatus()

	case copyFailedMsg:
		m.errMsg = fmt.Sprintf("copy failed: %v", msg.err)
		return m, nil

	case clearStatusMsg:
		m.status = ""
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.updateTextarea(msg)
	}

	switch {
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit

	case key.Matches(keyMsg, keys.save):
		if m.saving || m.loading {
			return m, nil
		}
		m.saving = true
		m.errMsg = ""
		return m, m.cmdSave()

	case key.Matches(keyMsg, keys.revert):
		if m.loading {
			return m, nil
		}
		return m, m.cmdRevert()

	case key.Matches(keyMsg, keys.copy):
		return m, m.cmdCopy()
	}

	if m.loading {
		return m, nil
	}
	return m.updateTextarea(msg)
}

// updateTextarea forwards msg to the textarea and reports the resulting
// state as a stamped edit notification.
func (m editorModel) updateTextarea(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.textarea, cmd = m.textarea.Update(msg)

	m.surface.SetText(m.textarea.Value())
	m.surface.SetCursor(models.Cursor{
		Line: m.textarea.Line() + 1,
		Col:  m.textarea.LineInfo().ColumnOffset,
	})
	m.services.Observer.Notify(m.services.Observer.Generation())

	return m, cmd
}

// applySurface writes engine-owned surface state back into the textarea.
// The write runs inside a suppression window, so the notification it emits
// is not mistaken for a user edit.
func (m *editorModel) applySurface() {
	var stamp uint64
	m.services.Observer.Programmatic(func() {
		m.textarea.SetValue(m.surface.Text())
		m.moveCursorTo(m.surface.Cursor())
		stamp = m.services.Observer.Generation()
	})
	m.services.Observer.Notify(stamp)
}

// moveCursorTo places the textarea cursor on a 1-based line and 0-based
// column. SetValue leaves the cursor at the end of the content.
func (m *editorModel) moveCursorTo(cursor models.Cursor) {
	// bubbles v1 does not export MoveToBegin; walk to the first line instead.
	for m.textarea.Line() > 0 {
		m.textarea.CursorUp()
	}
	m.textarea.SetCursor(0)
	for i := 1; i < cursor.Line; i++ {
		m.textarea.CursorDown()
	}
	m.textarea.SetCursor(cursor.Col)
}

func (m editorModel) cmdOpen() tea.Cmd {
	ctx := m.ctx
	syncer := m.services.Sync

	return func() tea.Msg {
		restored, err := syncer.Open(ctx)
		return openDoneMsg{restored: restored, err: err}
	}
}

func (m editorModel) cmdSave() tea.Cmd {
	ctx := m.ctx
	syncer := m.services.Sync

	return func() tea.Msg {
		return saveDoneMsg{err: syncer.Save(ctx)}
	}
}

func (m editorModel) cmdRevert() tea.Cmd {
	ctx := m.ctx
	syncer := m.services.Sync

	return func() tea.Msg {
		_, err := syncer.Revert(ctx)
		return revertDoneMsg{err: err}
	}
}

func (m editorModel) cmdCopy() tea.Cmd {
	text := m.textarea.Value()

	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return copyFailedMsg{err: err}
		}
		return copiedMsg{}
	}
}

func (m editorModel) cmdClearStatus() tea.Cmd {
	return tea.Tick(statusClearAfter, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

func (m editorModel) View() string {
	title := titleStyle.Render("SHEET")

	indicator := statusStyle.Render("saved")
	if m.services.Documents.Dirty() {
		indicator = dirtyStyle.Render("● unsaved")
	}
	if m.offline {
		indicator += statusStyle.Render("  (offline: basket not configured)")
	}

	header := title + "  " + indicator

	body := m.textarea.View()
	if m.loading {
		body = "Loading..."
	}

	footer := ""
	if m.errMsg != "" {
		footer += errorStyle.Render(m.errMsg) + "\n"
	}
	if m.status != "" {
		footer += statusStyle.Render(m.status) + "\n"
	}
	saveKey := "ctrl+s: save"
	if m.saving {
		saveKey = "saving..."
	}
	footer += helpStyle.Render(saveKey + " │ ctrl+r: revert │ ctrl+y: copy │ ctrl+c: quit")

	return appStyle.Render(header + "\n\n" + body + "\n\n" + footer)
}
