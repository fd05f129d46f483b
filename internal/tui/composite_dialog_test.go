package tui

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-uaa/internal/adapter"
	"github.com/MKhiriev/go-uaa/internal/mock"
	"github.com/MKhiriev/go-uaa/models"
)

func newTestDialog(t *testing.T, solution models.Solution) (*CompositeDialogModel, *mock.MockServerAdapter) {
	t.Helper()

	ctrl := gomock.NewController(t)
	serverAdapter := mock.NewMockServerAdapter(ctrl)
	return NewCompositeDialogModel(context.Background(), serverAdapter, solution), serverAdapter
}

func press(m *CompositeDialogModel, k tea.KeyType) tea.Cmd {
	_, cmd := m.Update(tea.KeyMsg{Type: k})
	return cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestNewCompositeDialogModel_Prefill(t *testing.T) {
	t.Run("empty name and version get display values", func(t *testing.T) {
		m, _ := newTestDialog(t, models.Solution{UUID: "abc"})

		assert.Equal(t, UntitledCompositeName, m.inputs[fieldName].Value())
		assert.Equal(t, DefaultCompositeVersion, m.inputs[fieldVersion].Value())
		assert.Empty(t, m.inputs[fieldSummary].Value())
		assert.True(t, m.inputs[fieldName].Focused())
	})

	t.Run("existing values are kept", func(t *testing.T) {
		m, _ := newTestDialog(t, models.Solution{UUID: "abc", Name: "pipeline", Version: "v7", Summary: "nightly run"})

		assert.Equal(t, "pipeline", m.inputs[fieldName].Value())
		assert.Equal(t, "v7", m.inputs[fieldVersion].Value())
		assert.Equal(t, "nightly run", m.inputs[fieldSummary].Value())
	})
}

func TestCompositeDialog_Cancel(t *testing.T) {
	for _, k := range []tea.KeyType{tea.KeyEsc, tea.KeyCtrlC} {
		m, _ := newTestDialog(t, models.Solution{UUID: "abc"})

		cmd := press(m, k)
		assert.True(t, isQuit(cmd))
		assert.Nil(t, m.Result())
	}
}

func TestCompositeDialog_Focus(t *testing.T) {
	m, _ := newTestDialog(t, models.Solution{UUID: "abc"})

	press(m, tea.KeyTab)
	assert.Equal(t, fieldVersion, m.focus)
	press(m, tea.KeyTab)
	assert.Equal(t, fieldSummary, m.focus)
	press(m, tea.KeyTab)
	assert.Equal(t, fieldName, m.focus)
	press(m, tea.KeyShiftTab)
	assert.Equal(t, fieldSummary, m.focus)
	assert.True(t, m.inputs[fieldSummary].Focused())
	assert.False(t, m.inputs[fieldName].Focused())
}

func TestCompositeDialog_Typing(t *testing.T) {
	m, _ := newTestDialog(t, models.Solution{UUID: "abc", Name: "pipe"})
	m.inputs[fieldName].CursorEnd()

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("line")})
	assert.Equal(t, "pipeline", m.inputs[fieldName].Value())
}

func TestCompositeDialog_SubmitSuccess(t *testing.T) {
	solution := models.Solution{UUID: "abc", AuthorLogin: "jdoe", Name: "pipeline", Version: "v1"}
	m, serverAdapter := newTestDialog(t, solution)
	m.inputs[fieldVersion].SetValue(" v2 ")
	m.inputs[fieldSummary].SetValue("faster")

	want := models.CompositeSolutionUpdate{
		UUID:        "abc",
		Name:        "pipeline",
		AuthorLogin: "jdoe",
		Version:     "v2",
		Summary:     "faster",
	}
	serverAdapter.EXPECT().UpdateCompositeSolution(gomock.Any(), want).Return(nil)

	cmd := press(m, tea.KeyEnter)
	require.NotNil(t, cmd)
	assert.True(t, m.submitting)

	msg := cmd()
	assert.IsType(t, submitResultMsg{}, msg)

	// enter while in flight is ignored
	assert.Nil(t, press(m, tea.KeyEnter))

	_, cmd = m.Update(msg)
	assert.True(t, isQuit(cmd))
	require.NotNil(t, m.Result())
	assert.Equal(t, want, *m.Result())
}

func TestCompositeDialog_SubmitFailureKeepsDialogOpen(t *testing.T) {
	m, serverAdapter := newTestDialog(t, models.Solution{UUID: "abc", Name: "pipeline", Version: "v1"})
	serverAdapter.EXPECT().
		UpdateCompositeSolution(gomock.Any(), gomock.Any()).
		Return(errors.Join(adapter.ErrForbidden, errors.New("error.http.403")))

	cmd := press(m, tea.KeyEnter)
	require.NotNil(t, cmd)

	_, next := m.Update(cmd())
	assert.Nil(t, next)
	assert.False(t, m.submitting)
	assert.Nil(t, m.Result())
	assert.Contains(t, m.errMsg, "Only the author")
	assert.Contains(t, m.View(), "Only the author")
}

func TestCompositeDialog_ValidationBlocksSubmit(t *testing.T) {
	tests := []struct {
		name    string
		field   int
		value   string
		wantErr string
	}{
		{name: "empty name", field: fieldName, value: "  ", wantErr: "name is required"},
		{name: "empty version", field: fieldVersion, value: "", wantErr: "version is required"},
		{name: "too long summary", field: fieldSummary, value: strings.Repeat("a", 51), wantErr: "too long"},
		{name: "forbidden character", field: fieldName, value: "drop;table", wantErr: "not allowed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// the mock has no expectations: any submit fails the test
			m, _ := newTestDialog(t, models.Solution{UUID: "abc", Name: "pipeline", Version: "v1"})
			m.inputs[tt.field].SetValue(tt.value)

			cmd := press(m, tea.KeyEnter)
			assert.Nil(t, cmd)
			assert.False(t, m.submitting)
			assert.Contains(t, m.errMsg, tt.wantErr)
		})
	}
}

func TestCompositeDialog_CopyUUID(t *testing.T) {
	t.Run("copied", func(t *testing.T) {
		m, _ := newTestDialog(t, models.Solution{UUID: "abc-123"})
		var copied string
		m.copyToClipboard = func(s string) error {
			copied = s
			return nil
		}

		press(m, tea.KeyCtrlY)
		assert.Equal(t, "abc-123", copied)
		assert.Equal(t, "uuid copied", m.status)
	})

	t.Run("clipboard unavailable", func(t *testing.T) {
		m, _ := newTestDialog(t, models.Solution{UUID: "abc-123"})
		m.copyToClipboard = func(string) error { return errors.New("no clipboard utilities available") }

		press(m, tea.KeyCtrlY)
		assert.Contains(t, m.errMsg, "no clipboard utilities available")
	})
}

func TestCompositeDialog_View(t *testing.T) {
	m, _ := newTestDialog(t, models.Solution{UUID: "abc-123", Name: "pipeline"})
	m.inputs[fieldSummary].SetValue("bad|summary")

	view := m.View()
	assert.Contains(t, view, "abc-123")
	assert.Contains(t, view, "EDIT COMPOSITE SOLUTION")
	assert.Contains(t, view, "not allowed")
}

func TestHumanizeError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: ""},
		{name: "unauthorized", err: adapter.ErrUnauthorized, want: "Session expired, sign in again"},
		{name: "not found", err: adapter.ErrNotFound, want: "Solution not found"},
		{name: "network", err: errors.New("dial tcp 127.0.0.1:8080: connect: connection refused"), want: "Network is down or the server is unavailable"},
		{name: "other", err: errors.New("boom"), want: "boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, humanizeError(tt.err))
		})
	}
}
