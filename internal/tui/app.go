package tui

import (
	"fmt"
	"os"
	"strings"
	"time"

	"vent-cli/internal/store"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type reloadTickMsg struct{}

type appModel struct {
	store store.Store
	log   *store.Log

	width  int
	height int

	msgList list.Model

	lastModTime time.Time

	// Last reload failure; the browser keeps showing the previous good
	// state until a reload succeeds.
	loadErr error
}

func Run(s store.Store, l *store.Log) error {
	m := newAppModel(s, l)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newAppModel(s store.Store, l *store.Log) appModel {
	m := appModel{
		store: s,
		log:   l,
	}
	m.msgList = newMessageList()
	m.refreshMessages()
	m.lastModTime = fileModTime(s.Path)
	return m
}

func newMessageList() list.Model {
	d := list.NewDefaultDelegate()
	l := list.New([]list.Item{}, d, 0, 0)
	l.Title = "Messages"
	l.SetShowHelp(false)
	l.SetStatusBarItemName("message", "messages")
	return l
}

func (m appModel) Init() tea.Cmd { return tickReload() }

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeList()
		return m, nil

	case reloadTickMsg:
		if m.storeChanged() {
			m.loadErr = m.reloadFromDisk()
		}
		return m, tickReload()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "r":
			// Reload so edits made from another terminal show up.
			m.loadErr = m.reloadFromDisk()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.msgList, cmd = m.msgList.Update(msg)
	return m, cmd
}

func (m appModel) View() string {
	header := lipgloss.NewStyle().
		Bold(true).
		Render(fmt.Sprintf("vent  Store=%s  %d messages", m.store.Path, len(m.log.Messages)))

	body := m.viewBody()

	footer := lipgloss.NewStyle().Faint(true).Render("r: reload  q: quit")
	if m.loadErr != nil {
		warn := lipgloss.NewStyle().Foreground(colorError).
			Render(fmt.Sprintf("load failed: %v (showing last good state)", m.loadErr))
		footer = warn + "\n" + footer
	}
	return strings.Join([]string{header, body, footer}, "\n\n")
}

func (m appModel) viewBody() string {
	bodyHeight := m.height - 6
	if bodyHeight < 8 {
		bodyHeight = 8
	}
	leftWidth := m.width / 2
	if leftWidth < 40 {
		leftWidth = 40
	}
	rightWidth := m.width - leftWidth - 2
	if rightWidth < 30 {
		rightWidth = 30
	}

	m.msgList.SetSize(leftWidth, bodyHeight)
	left := m.msgList.View()

	var detail string
	if it, ok := m.msgList.SelectedItem().(messageItem); ok {
		detail = renderMessageDetail(m.log, it.msg, rightWidth)
	} else {
		detail = lipgloss.NewStyle().Width(rightWidth).Height(bodyHeight).Render("No message selected.")
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, left, detail)
}

func (m *appModel) resizeList() {
	h := m.height - 6
	if h < 8 {
		h = 8
	}
	w := m.width / 2
	if w < 40 {
		w = 40
	}
	m.msgList.SetSize(w, h)
}

// refreshMessages shows the log newest-first while keeping the stored
// order untouched.
func (m *appModel) refreshMessages() {
	curID := 0
	if it, ok := m.msgList.SelectedItem().(messageItem); ok {
		curID = it.msg.ID
	}
	var items []list.Item
	for i := len(m.log.Messages) - 1; i >= 0; i-- {
		items = append(items, messageItem{msg: m.log.Messages[i]})
	}
	m.msgList.SetItems(items)
	if curID != 0 {
		selectMessageByID(&m.msgList, curID)
	}
}

func tickReload() tea.Cmd {
	return tea.Tick(750*time.Millisecond, func(time.Time) tea.Msg { return reloadTickMsg{} })
}

func (m *appModel) storeChanged() bool {
	return fileModTime(m.store.Path).After(m.lastModTime)
}

func fileModTime(path string) time.Time {
	st, err := os.Stat(path)
	if err != nil {
		return time.Time{}
	}
	return st.ModTime()
}

func (m *appModel) reloadFromDisk() error {
	l, err := m.store.Load()
	if err != nil {
		return err
	}
	m.log = l
	m.lastModTime = fileModTime(m.store.Path)
	m.refreshMessages()
	return nil
}

func selectMessageByID(l *list.Model, id int) {
	for i := 0; i < len(l.Items()); i++ {
		if it, ok := l.Items()[i].(messageItem); ok && it.msg.ID == id {
			l.Select(i)
			return
		}
	}
}
