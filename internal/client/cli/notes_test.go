package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/takenotes/internal/client/api"
	"github.com/iudanet/takenotes/internal/client/notes"
	"github.com/iudanet/takenotes/internal/validation"
	pkgapi "github.com/iudanet/takenotes/pkg/api"
)

func sampleNotes() []pkgapi.Note {
	return []pkgapi.Note{
		{
			ID:        "n2",
			Title:     "second",
			Content:   strings.Repeat("a", 80),
			BgColor:   "#AFDBF5",
			CreatedAt: "2024-08-06T10:00:00.000Z",
			UpdatedAt: "2024-08-06T10:00:00.000Z",
		},
		{
			ID:        "n1",
			Title:     "first",
			Content:   "Milk, eggs",
			CreatedAt: "2024-08-05T10:00:00.000Z",
			UpdatedAt: "2024-08-05T11:00:00.000Z",
		},
	}
}

func notesMock(list []pkgapi.Note, err error) *notes.ServiceMock {
	return &notes.ServiceMock{
		LoadFunc: func(ctx context.Context) ([]pkgapi.Note, error) {
			return list, err
		},
	}
}

func TestCli_List(t *testing.T) {
	term := &fakeTerminal{}
	c := &Cli{io: newMockIO(term), notesService: notesMock(sampleNotes(), nil)}

	require.NoError(t, c.Run(context.Background(), "list", nil))

	out := term.out.String()
	assert.Contains(t, out, "Found 2 note(s)")
	// порядок сервера сохраняется
	assert.Less(t, strings.Index(out, "second"), strings.Index(out, "first"))
	assert.Contains(t, out, "Color:   Uranian blue")
	assert.Contains(t, out, strings.Repeat("a", 50)+"...")
	assert.NotContains(t, out, strings.Repeat("a", 51))
	assert.Contains(t, out, "Preview: Milk, eggs")
}

func TestCli_List_Empty(t *testing.T) {
	term := &fakeTerminal{}
	c := &Cli{io: newMockIO(term), notesService: notesMock([]pkgapi.Note{}, nil)}

	require.NoError(t, c.Run(context.Background(), "list", nil))

	assert.Contains(t, term.out.String(), "No notes yet.")
	assert.Contains(t, term.out.String(), "takenotes add")
}

func TestCli_List_Errors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		contains string
	}{
		{
			name:     "unauthorized",
			err:      &api.StatusError{StatusCode: 401, Message: "Unauthorized"},
			contains: "session expired or invalid, please run 'takenotes login'",
		},
		{
			name:     "network",
			err:      fmt.Errorf("%w: %w", api.ErrNetwork, errors.New("connection refused")),
			contains: "server unreachable",
		},
		{
			name:     "malformed",
			err:      fmt.Errorf("%w: expected a JSON array", api.ErrMalformedResponse),
			contains: "unexpected response from server",
		},
		{
			name:     "server error",
			err:      &api.StatusError{StatusCode: 500, Message: "boom"},
			contains: "boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			term := &fakeTerminal{}
			c := &Cli{io: newMockIO(term), notesService: notesMock(nil, tt.err)}

			err := c.Run(context.Background(), "list", nil)

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.contains)
			assert.ErrorIs(t, err, tt.err)
			assert.Empty(t, term.out.String())
		})
	}
}

func TestCli_Get(t *testing.T) {
	term := &fakeTerminal{}
	c := &Cli{io: newMockIO(term), notesService: notesMock(sampleNotes(), nil)}

	require.NoError(t, c.Run(context.Background(), "get", []string{"n1"}))

	out := term.out.String()
	assert.Contains(t, out, "Title:   first")
	assert.Contains(t, out, "Milk, eggs")
	assert.Contains(t, out, "Updated: 2024-08-05T11:00:00.000Z")
	assert.NotContains(t, out, "second")
}

func TestCli_Get_ShowsColor(t *testing.T) {
	term := &fakeTerminal{}
	c := &Cli{io: newMockIO(term), notesService: notesMock(sampleNotes(), nil)}

	require.NoError(t, c.Run(context.Background(), "get", []string{"n2"}))

	assert.Contains(t, term.out.String(), "Color:   Uranian blue (#AFDBF5)")
}

func TestCli_Get_NotFound(t *testing.T) {
	term := &fakeTerminal{}
	c := &Cli{io: newMockIO(term), notesService: notesMock(sampleNotes(), nil)}

	err := c.Run(context.Background(), "get", []string{"missing"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "note not found with ID: missing")
}

func TestCli_Get_MissingID(t *testing.T) {
	mockNotes := notesMock(sampleNotes(), nil)
	c := &Cli{io: newMockIO(&fakeTerminal{}), notesService: mockNotes}

	err := c.Run(context.Background(), "get", nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing note ID")
	assert.Empty(t, mockNotes.LoadCalls())
}

func createMock() *notes.ServiceMock {
	return &notes.ServiceMock{
		CreateFunc: func(ctx context.Context, title, content, bgColor string) (*pkgapi.Note, error) {
			hex, err := notes.ResolveColor(bgColor)
			if err != nil {
				return nil, fmt.Errorf("%w: %v", validation.ErrInvalid, err)
			}
			return &pkgapi.Note{
				ID:        "created-1",
				Title:     title,
				Content:   content,
				BgColor:   hex,
				CreatedAt: "2024-08-06T10:00:00.000Z",
				UpdatedAt: "2024-08-06T10:00:00.000Z",
			}, nil
		},
	}
}

func TestCli_Add_Flags(t *testing.T) {
	term := &fakeTerminal{}
	mockIO := newMockIO(term)
	mockNotes := createMock()
	c := &Cli{io: mockIO, notesService: mockNotes}

	args := []string{"--title", "Groceries", "--content", "Milk, eggs", "--color", "uranian blue"}
	require.NoError(t, c.Run(context.Background(), "add", args))

	calls := mockNotes.CreateCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, "Groceries", calls[0].Title)
	assert.Equal(t, "Milk, eggs", calls[0].Content)
	assert.Equal(t, "uranian blue", calls[0].BgColor)

	assert.Empty(t, mockIO.ReadInputCalls())
	assert.Contains(t, term.out.String(), "Note created!")
	assert.Contains(t, term.out.String(), "ID:    created-1")
	assert.Contains(t, term.out.String(), "Color: #AFDBF5")
}

func TestCli_Add_Interactive(t *testing.T) {
	term := &fakeTerminal{inputs: []string{"Groceries", "Milk, eggs", "#afdbf5"}}
	mockIO := newMockIO(term)
	mockNotes := createMock()
	c := &Cli{io: mockIO, notesService: mockNotes}

	require.NoError(t, c.Run(context.Background(), "add", nil))

	assert.Len(t, mockIO.ReadInputCalls(), 3)
	calls := mockNotes.CreateCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, "Groceries", calls[0].Title)
	assert.Equal(t, "Milk, eggs", calls[0].Content)
	assert.Equal(t, "#afdbf5", calls[0].BgColor)
}

func TestCli_Add_PromptsForMissingContent(t *testing.T) {
	term := &fakeTerminal{inputs: []string{"Milk, eggs"}}
	mockIO := newMockIO(term)
	mockNotes := createMock()
	c := &Cli{io: mockIO, notesService: mockNotes}

	require.NoError(t, c.Run(context.Background(), "add", []string{"--title", "Groceries"}))

	inputCalls := mockIO.ReadInputCalls()
	require.Len(t, inputCalls, 1)
	assert.Equal(t, "Content: ", inputCalls[0].Prompt)

	calls := mockNotes.CreateCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, "Milk, eggs", calls[0].Content)
	assert.Empty(t, calls[0].BgColor)
}

func TestCli_Add_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "note.txt")
	require.NoError(t, os.WriteFile(path, []byte("line one\nline two\n"), 0o600))

	mockNotes := createMock()
	c := &Cli{io: newMockIO(&fakeTerminal{}), notesService: mockNotes}

	require.NoError(t, c.Run(context.Background(), "add", []string{"--title", "Log", "--file", path}))

	calls := mockNotes.CreateCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, "line one\nline two", calls[0].Content)
}

func TestCli_Add_BadArgs(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		contains string
	}{
		{name: "unknown flag", args: []string{"--colour", "red"}, contains: "flag provided but not defined"},
		{name: "positional", args: []string{"--title", "t", "extra"}, contains: "unexpected argument: extra"},
		{name: "content and file", args: []string{"--content", "c", "--file", "x"}, contains: "mutually exclusive"},
		{name: "help", args: []string{"-h"}, contains: "Usage: takenotes add"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockNotes := createMock()
			c := &Cli{io: newMockIO(&fakeTerminal{}), notesService: mockNotes}

			err := c.Run(context.Background(), "add", tt.args)

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.contains)
			assert.Empty(t, mockNotes.CreateCalls())
		})
	}
}

func TestCli_Add_InvalidColor(t *testing.T) {
	term := &fakeTerminal{}
	c := &Cli{io: newMockIO(term), notesService: createMock()}

	err := c.Run(context.Background(), "add", []string{"--title", "t", "--content", "c", "--color", "chartreuse"})

	require.Error(t, err)
	assert.ErrorIs(t, err, validation.ErrInvalid)
	assert.Contains(t, err.Error(), "unknown color")
	assert.NotContains(t, term.out.String(), "Note created!")
}

func TestCli_Add_Unauthorized(t *testing.T) {
	mockNotes := &notes.ServiceMock{
		CreateFunc: func(ctx context.Context, title, content, bgColor string) (*pkgapi.Note, error) {
			return nil, &api.StatusError{StatusCode: 401, Message: "Unauthorized"}
		},
	}
	c := &Cli{io: newMockIO(&fakeTerminal{}), notesService: mockNotes}

	err := c.Run(context.Background(), "add", []string{"--title", "t", "--content", "c"})

	require.Error(t, err)
	assert.ErrorIs(t, err, api.ErrUnauthorized)
	assert.Contains(t, err.Error(), "takenotes login")
}

func TestParseAddFlags_Help(t *testing.T) {
	opts, err := parseAddFlags([]string{"--help"})

	assert.Nil(t, opts)
	require.Error(t, err)
	assert.Equal(t, addUsage, err.Error())
}
