package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-uaa/internal/adapter"
	"github.com/MKhiriev/go-uaa/internal/validators"
	"github.com/MKhiriev/go-uaa/models"
)

// Display values used when the solution has no name or version yet.
const (
	UntitledCompositeName   = "untitled-composite"
	DefaultCompositeVersion = "v1"
)

const (
	fieldName = iota
	fieldVersion
	fieldSummary
)

var fieldLabels = [...]string{
	fieldName:    "Name",
	fieldVersion: "Version",
	fieldSummary: "Summary",
}

var fieldKeys = [...]string{
	fieldName:    validators.FieldName,
	fieldVersion: validators.FieldVersion,
	fieldSummary: validators.FieldSummary,
}

// CompositeDialogModel is the Bubble Tea model of the composite solution
// dialog. It quits after a successful submit or a cancel; [Result] tells the
// two apart.
type CompositeDialogModel struct {
	ctx       context.Context
	adapter   adapter.ServerAdapter
	validator validators.Validator
	solution  models.Solution

	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
	status     string

	result *models.CompositeSolutionUpdate

	copyToClipboard func(string) error
}

// NewCompositeDialogModel pre-fills the inputs from solution.
func NewCompositeDialogModel(ctx context.Context, serverAdapter adapter.ServerAdapter, solution models.Solution) *CompositeDialogModel {
	name := solution.Name
	if name == "" {
		name = UntitledCompositeName
	}
	version := solution.Version
	if version == "" {
		version = DefaultCompositeVersion
	}

	inputs := make([]textinput.Model, len(fieldLabels))
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].CharLimit = 0
		inputs[i].Width = validators.CompositeFieldMaxLength
	}
	inputs[fieldName].SetValue(name)
	inputs[fieldVersion].SetValue(version)
	inputs[fieldSummary].SetValue(solution.Summary)
	inputs[fieldName].Focus()

	return &CompositeDialogModel{
		ctx:             ctx,
		adapter:         serverAdapter,
		validator:       validators.NewSolutionValidator(),
		solution:        solution,
		inputs:          inputs,
		copyToClipboard: clipboard.WriteAll,
	}
}

// Result returns the submitted update, or nil if the dialog was cancelled.
func (m *CompositeDialogModel) Result() *models.CompositeSolutionUpdate {
	return m.result
}

func (m *CompositeDialogModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles:
//   - [submitResultMsg]: closes the dialog on success, shows the error otherwise.
//   - esc, ctrl+c: closes the dialog with no result.
//   - tab, shift+tab: moves focus between inputs.
//   - ctrl+y: copies the solution uuid.
//   - enter: validates and submits.
//
// All other keys go to the focused input.
func (m *CompositeDialogModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(submitResultMsg); ok {
		m.submitting = false
		if result.err != nil {
			m.errMsg = humanizeError(result.err)
			return m, nil
		}
		update := result.update
		m.result = &update
		return m, tea.Quit
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.cancel):
			m.result = nil
			return m, tea.Quit
		case key.Matches(keyMsg, keys.next):
			m.focusNext()
			return m, nil
		case key.Matches(keyMsg, keys.prev):
			m.focusPrev()
			return m, nil
		case key.Matches(keyMsg, keys.copy):
			if err := m.copyToClipboard(m.solution.UUID); err != nil {
				m.errMsg = fmt.Sprintf("copy to clipboard: %v", err)
				return m, nil
			}
			m.status = "uuid copied"
			return m, nil
		case key.Matches(keyMsg, keys.submit):
			if m.submitting {
				return m, nil
			}

			update := m.toUpdate()
			if err := m.validator.Validate(m.ctx, update); err != nil {
				m.errMsg = err.Error()
				return m, nil
			}

			m.errMsg = ""
			m.status = ""
			m.submitting = true
			return m, m.cmdSubmit(update)
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *CompositeDialogModel) View() string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s %s\n\n", labelStyle.Render("UUID"), m.solution.UUID)
	for i, in := range m.inputs {
		b.WriteString(labelStyle.Render(fieldLabels[i]))
		b.WriteString(" [")
		b.WriteString(in.View())
		b.WriteString("]\n")
		if err := validators.ValidateCompositeField(fieldKeys[i], in.Value()); err != nil {
			b.WriteString(labelStyle.Render(""))
			b.WriteString(" ")
			b.WriteString(errorStyle.Render(err.Error()))
			b.WriteString("\n")
		}
	}

	if m.submitting {
		b.WriteString("\n[Saving...]")
	} else {
		b.WriteString("\n[Save]")
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render(m.status))
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
	}

	return renderPage("EDIT COMPOSITE SOLUTION", b.String(), "esc: cancel │ tab: next field │ ctrl+y: copy uuid │ enter: save")
}

func (m *CompositeDialogModel) toUpdate() models.CompositeSolutionUpdate {
	return models.CompositeSolutionUpdate{
		UUID:        m.solution.UUID,
		Name:        strings.TrimSpace(m.inputs[fieldName].Value()),
		AuthorLogin: m.solution.AuthorLogin,
		Version:     strings.TrimSpace(m.inputs[fieldVersion].Value()),
		Summary:     strings.TrimSpace(m.inputs[fieldSummary].Value()),
	}
}

// cmdSubmit echoes update back on success. The server response body is not
// read.
func (m *CompositeDialogModel) cmdSubmit(update models.CompositeSolutionUpdate) tea.Cmd {
	ctx := m.ctx
	serverAdapter := m.adapter

	return func() tea.Msg {
		err := serverAdapter.UpdateCompositeSolution(ctx, update)
		return submitResultMsg{update: update, err: err}
	}
}

func (m *CompositeDialogModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *CompositeDialogModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}
