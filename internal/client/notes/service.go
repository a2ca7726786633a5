package notes

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/iudanet/takenotes/internal/client/api"
	"github.com/iudanet/takenotes/internal/validation"
	pkgapi "github.com/iudanet/takenotes/pkg/api"
)

//go:generate moq -out service_mock.go . Service

// Service is the client-side view of the user's notes
type Service interface {
	// Load fetches the notes from the server and replaces the local list.
	// Notes created while the request was in flight are kept if the server list misses them.
	Load(ctx context.Context) ([]pkgapi.Note, error)

	// Create validates and submits a note, then appends the server copy to the local list.
	// bgColor may be a palette name, a #RRGGBB value or empty.
	Create(ctx context.Context, title, content, bgColor string) (*pkgapi.Note, error)

	// Notes returns a copy of the local list
	Notes() []pkgapi.Note
}

// service хранит список заметок так же, как его показывает главный экран:
// загружается с сервера и дополняется каждой созданной в сессии заметкой
type service struct {
	apiClient *api.Client
	logger    *slog.Logger
	notes     []pkgapi.Note
	// created хранит заметки, созданные пока идет хотя бы один Load,
	// чтобы ответ со старым списком их не потерял
	created  []createdNote
	seq      uint64
	inflight int
	mu       sync.Mutex
}

type createdNote struct {
	note pkgapi.Note
	seq  uint64
}

// NewService creates a new notes service
func NewService(apiClient *api.Client, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &service{
		apiClient: apiClient,
		logger:    logger,
	}
}

func (s *service) Load(ctx context.Context) ([]pkgapi.Note, error) {
	s.mu.Lock()
	startSeq := s.seq
	s.inflight++
	s.mu.Unlock()

	notes, err := s.apiClient.GetNotes(ctx)

	s.mu.Lock()
	s.inflight--
	if err != nil {
		s.forgetCreated()
		s.mu.Unlock()
		s.logger.WarnContext(ctx, "failed to load notes", slog.Any("error", err))
		return nil, err
	}

	merged := s.mergeCreated(notes, startSeq)
	s.notes = merged
	s.forgetCreated()
	s.mu.Unlock()

	s.logger.DebugContext(ctx, "notes loaded",
		slog.Int("count", len(notes)),
		slog.Int("kept_local", len(merged)-len(notes)),
	)
	return s.Notes(), nil
}

// mergeCreated добавляет заметки, созданные после startSeq, которых еще нет в ответе сервера.
// Вызывается под mu.
func (s *service) mergeCreated(notes []pkgapi.Note, startSeq uint64) []pkgapi.Note {
	if len(s.created) == 0 {
		return notes
	}

	known := make(map[string]struct{}, len(notes))
	for _, n := range notes {
		known[n.ID] = struct{}{}
	}

	for _, c := range s.created {
		if c.seq <= startSeq {
			continue
		}
		if _, ok := known[c.note.ID]; ok {
			continue
		}
		notes = append(notes, c.note)
	}
	return notes
}

// forgetCreated очищает журнал, когда его не ждет ни один Load.
// Вызывается под mu.
func (s *service) forgetCreated() {
	if s.inflight == 0 {
		s.created = nil
	}
}

func (s *service) Create(ctx context.Context, title, content, bgColor string) (*pkgapi.Note, error) {
	req := pkgapi.CreateNoteRequest{
		Title:   title,
		Content: content,
	}

	if strings.TrimSpace(bgColor) != "" {
		hex, err := ResolveColor(bgColor)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", validation.ErrInvalid, err)
		}
		req.BgColor = &hex
	}

	if err := validation.ValidateNote(req); err != nil {
		return nil, err
	}

	note, err := s.apiClient.CreateNote(ctx, req)
	if err != nil {
		s.logger.WarnContext(ctx, "failed to create note", slog.Any("error", err))
		return nil, err
	}

	s.mu.Lock()
	s.notes = append(s.notes, *note)
	s.seq++
	if s.inflight > 0 {
		s.created = append(s.created, createdNote{note: *note, seq: s.seq})
	}
	s.mu.Unlock()

	s.logger.InfoContext(ctx, "note created", slog.String("id", note.ID))
	return note, nil
}

func (s *service) Notes() []pkgapi.Note {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]pkgapi.Note, len(s.notes))
	copy(out, s.notes)
	return out
}
