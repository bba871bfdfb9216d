package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/inovacc/stele/internal/model"
)

var docStyle = lipgloss.NewStyle().Margin(1, 2)

type recordItem struct {
	record model.GraveRecord
}

func (i recordItem) Title() string {
	sync := "⨯ "
	if i.record.IsSynced {
		sync = "✓ "
	}

	names := make([]string, 0, len(i.record.People))
	for _, p := range i.record.People {
		names = append(names, p.Name)
	}

	label := strings.Join(names, ", ")
	if label == "" {
		label = "(non transcrit)"
	}

	return fmt.Sprintf("%sStèle n°%d : %s", sync, i.record.SteleNumber, label)
}

func (i recordItem) Description() string {
	desc := i.record.Condition.String()

	if i.record.AisleNumber != "" {
		desc = fmt.Sprintf("%s | Allée %s", desc, i.record.AisleNumber)
	}

	if i.record.HasCoordinates() {
		desc = fmt.Sprintf("%s | %.5f, %.5f", desc, *i.record.Lat, *i.record.Lng)
	}

	if !i.record.Timestamp.IsZero() {
		desc = fmt.Sprintf("%s | %s", desc, i.record.Timestamp.Format("2006-01-02 15:04"))
	}

	return desc
}

func (i recordItem) FilterValue() string {
	names := make([]string, 0, len(i.record.People))
	for _, p := range i.record.People {
		names = append(names, p.Name)
	}

	return fmt.Sprintf("%d %s %s", i.record.SteleNumber, i.record.AisleNumber, strings.Join(names, " "))
}

type RecordListModel struct {
	list           list.Model
	selectedRecord *model.GraveRecord
	quitting       bool
}

func (m RecordListModel) Init() tea.Cmd {
	return nil
}

func (m RecordListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h, v := docStyle.GetFrameSize()
		m.list.SetSize(msg.Width-h, msg.Height-v)

		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.quitting = true

			return m, tea.Quit

		case "enter":
			i, ok := m.list.SelectedItem().(recordItem)
			if ok {
				m.selectedRecord = &i.record
			}

			return m, tea.Quit
		}
	}

	var cmd tea.Cmd

	m.list, cmd = m.list.Update(msg)

	return m, cmd
}

func (m RecordListModel) View() string {
	if m.quitting {
		return ""
	}

	return docStyle.Render(m.list.View())
}

// GetSelectedRecord returns the record chosen with enter, or nil.
func (m RecordListModel) GetSelectedRecord() *model.GraveRecord {
	return m.selectedRecord
}

// NewRecordList builds the interactive registry list.
func NewRecordList(records []model.GraveRecord, unsyncedOnly bool) RecordListModel {
	items := make([]list.Item, 0, len(records))

	for _, rec := range records {
		if unsyncedOnly && rec.IsSynced {
			continue
		}

		items = append(items, recordItem{record: rec})
	}

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	if unsyncedOnly {
		l.Title = "Stèles non synchronisées"
	} else {
		l.Title = fmt.Sprintf("Registre (%d)", len(records))
	}

	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)

	return RecordListModel{list: l}
}
