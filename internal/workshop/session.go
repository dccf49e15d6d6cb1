// Package workshop holds the single-student state machine that walks a poem
// from interests to an exported document.
package workshop

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/saulo-duarte/oficina-poemas/internal/config"
	"github.com/saulo-duarte/oficina-poemas/internal/export"
	"github.com/saulo-duarte/oficina-poemas/internal/idea"
	"github.com/saulo-duarte/oficina-poemas/internal/rhyme"
	"github.com/saulo-duarte/oficina-poemas/internal/spelling"
	"github.com/sirupsen/logrus"
)

const MinPoemLength = 10

// Session is owned by one client. Methods are safe to call from several
// goroutines but at most one backend call runs at a time; the others fail
// with ErrBusy.
type Session struct {
	ID uuid.UUID

	backend Backend

	mu            sync.Mutex
	stage         Stage
	busy          bool
	interest      string
	themes        []string
	chosenTheme   string
	ideas         []string
	poemText      string
	stats         Stats
	pendingErrors []spelling.Correction
	rhymes        []rhyme.Rhyme
	notice        string
}

func NewSession(backend Backend) *Session {
	return &Session{
		ID:      uuid.New(),
		backend: backend,
		stage:   StageInterest,
	}
}

// Snapshot is a copy of the session's view state.
type Snapshot struct {
	ID            uuid.UUID
	Stage         Stage
	Busy          bool
	Interest      string
	Themes        []string
	ChosenTheme   string
	Ideas         []string
	PoemText      string
	Stats         Stats
	PendingErrors []spelling.Correction
	Rhymes        []rhyme.Rhyme
	Notice        string
}

func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return Snapshot{
		ID:            s.ID,
		Stage:         s.stage,
		Busy:          s.busy,
		Interest:      s.interest,
		Themes:        slices.Clone(s.themes),
		ChosenTheme:   s.chosenTheme,
		Ideas:         slices.Clone(s.ideas),
		PoemText:      s.poemText,
		Stats:         s.stats,
		PendingErrors: slices.Clone(s.pendingErrors),
		Rhymes:        slices.Clone(s.rhymes),
		Notice:        s.notice,
	}
}

func (s *Session) Stage() Stage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stage
}

// begin checks the stage and claims the in-flight slot. The caller must
// release it with end, whatever the outcome of the call.
func (s *Session) begin(want Stage) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.busy {
		return s.fail(ErrBusy)
	}
	if s.stage != want {
		return s.fail(fmt.Errorf("%w: %s", ErrInvalidTransition, s.stage))
	}
	s.busy = true
	s.notice = ""
	return nil
}

func (s *Session) end() {
	s.mu.Lock()
	s.busy = false
	s.mu.Unlock()
}

// fail records err's notice. Callers hold mu.
func (s *Session) fail(err error) error {
	s.notice = UserMessage(err)
	return err
}

// backendError separates requests the server refused from assistant outages.
func backendError(err error) error {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Status >= 400 && apiErr.Status < 500 {
		return fmt.Errorf("%w: %w", ErrRejected, err)
	}
	return fmt.Errorf("%w: %w", ErrAssistantUnavailable, err)
}

func (s *Session) logger(ctx context.Context) *logrus.Entry {
	return config.WithContext(ctx).WithField("session_id", s.ID.String())
}

// SubmitInterest asks for themes and moves Interest -> Theme. Blank input and
// backend failures keep the session in Interest.
func (s *Session) SubmitInterest(ctx context.Context, interest string) error {
	interest = strings.TrimSpace(interest)
	if interest == "" {
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.stage != StageInterest {
			return s.fail(fmt.Errorf("%w: %s", ErrInvalidTransition, s.stage))
		}
		return s.fail(ErrEmptyInterest)
	}

	if err := s.begin(StageInterest); err != nil {
		return err
	}
	defer s.end()

	themes, err := s.backend.GenerateThemes(ctx, interest)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err == nil && len(themes) == 0 {
		err = errors.New("empty theme batch")
	}
	if err != nil {
		s.logger(ctx).WithError(err).Warn("Theme generation failed")
		return s.fail(backendError(err))
	}

	s.interest = interest
	s.themes = themes
	s.stage = StageTheme
	return nil
}

// SelectTheme moves Theme -> Writing and loads the ideas for theme. Idea
// failures fall back to local prompts and never block the transition.
func (s *Session) SelectTheme(ctx context.Context, theme string) error {
	theme = strings.TrimSpace(theme)
	if err := s.begin(StageTheme); err != nil {
		return err
	}
	defer s.end()

	if theme == "" {
		s.mu.Lock()
		defer s.mu.Unlock()
		return s.fail(ErrEmptyTheme)
	}

	ideas, err := s.backend.GenerateIdeas(ctx, theme)
	if err != nil {
		s.logger(ctx).WithError(err).Warn("Idea generation failed, using local prompts")
		ideas = nil
	}
	ideas = idea.Complete(theme, ideas)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.chosenTheme = theme
	s.ideas = ideas
	s.rhymes = nil
	s.stage = StageWriting
	return nil
}

// Back moves one stage backwards. Leaving Theme discards the theme batch;
// leaving Writing clears the chosen theme but keeps the batch for reuse.
func (s *Session) Back() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.busy {
		return s.fail(ErrBusy)
	}
	prev, ok := s.stage.previous()
	if !ok {
		return s.fail(fmt.Errorf("%w: %s", ErrInvalidTransition, s.stage))
	}

	switch s.stage {
	case StageTheme:
		s.themes = nil
	case StageWriting:
		s.chosenTheme = ""
		s.ideas = nil
		s.rhymes = nil
	}
	s.stage = prev
	s.notice = ""
	return nil
}

// SetPoemText replaces the poem and recomputes its statistics. Pending
// corrections are kept; stale ones simply stop matching.
func (s *Session) SetPoemText(text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stage != StageWriting {
		return s.fail(fmt.Errorf("%w: %s", ErrInvalidTransition, s.stage))
	}
	s.poemText = text
	s.stats = Derive(text)
	return nil
}

// Finish moves Writing -> Export once the poem has MinPoemLength characters.
func (s *Session) Finish() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.busy {
		return s.fail(ErrBusy)
	}
	if s.stage != StageWriting {
		return s.fail(fmt.Errorf("%w: %s", ErrInvalidTransition, s.stage))
	}
	if utf8.RuneCountInString(strings.TrimSpace(s.poemText)) < MinPoemLength {
		return s.fail(ErrPoemTooShort)
	}
	s.stage = StageExport
	s.notice = ""
	return nil
}

func (s *Session) LookupRhymes(ctx context.Context, word string) ([]rhyme.Rhyme, error) {
	word = strings.TrimSpace(word)
	if word == "" {
		s.mu.Lock()
		defer s.mu.Unlock()
		return nil, s.fail(ErrEmptyWord)
	}

	if err := s.begin(StageWriting); err != nil {
		return nil, err
	}
	defer s.end()

	s.mu.Lock()
	theme := s.chosenTheme
	s.mu.Unlock()

	rhymes, err := s.backend.FindRhymes(ctx, word, theme)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.logger(ctx).WithError(err).Warn("Rhyme lookup failed")
		return nil, s.fail(backendError(err))
	}
	rhymes = rhyme.Filter(word, rhymes)
	if len(rhymes) == 0 {
		rhymes = []rhyme.Rhyme{rhyme.NotFound}
	}
	s.rhymes = rhymes
	return slices.Clone(rhymes), nil
}

// CheckSpelling replaces the pending corrections with a fresh check of the
// current poem. An empty poem clears them without calling the backend.
func (s *Session) CheckSpelling(ctx context.Context) ([]spelling.Correction, error) {
	if err := s.begin(StageWriting); err != nil {
		return nil, err
	}
	defer s.end()

	s.mu.Lock()
	text := s.poemText
	s.mu.Unlock()

	var (
		corrections []spelling.Correction
		err         error
	)
	if strings.TrimSpace(text) != "" {
		corrections, err = s.backend.CheckSpelling(ctx, text)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.logger(ctx).WithError(err).Warn("Spelling check failed")
		return nil, s.fail(backendError(err))
	}
	s.pendingErrors = corrections
	return slices.Clone(corrections), nil
}

// ApplyCorrection substitutes suggestion for pending correction i. It reports
// whether the text changed; an applied correction leaves the pending list and
// the remaining ones keep their positions and verse numbers.
func (s *Session) ApplyCorrection(i int, suggestion string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stage != StageWriting {
		return false, s.fail(fmt.Errorf("%w: %s", ErrInvalidTransition, s.stage))
	}
	if i < 0 || i >= len(s.pendingErrors) {
		return false, s.fail(ErrNoSuchCorrection)
	}
	c := s.pendingErrors[i]
	if !slices.Contains(c.Suggestions, suggestion) {
		return false, s.fail(ErrUnknownSuggestion)
	}

	text, ok := ApplyCorrection(s.poemText, c, suggestion)
	if !ok {
		return false, nil
	}
	s.poemText = text
	s.pendingErrors = slices.Delete(s.pendingErrors, i, i+1)
	s.stats = Derive(text)
	return true, nil
}

// DismissCorrection drops pending correction i without touching the poem.
func (s *Session) DismissCorrection(i int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stage != StageWriting {
		return s.fail(fmt.Errorf("%w: %s", ErrInvalidTransition, s.stage))
	}
	if i < 0 || i >= len(s.pendingErrors) {
		return s.fail(ErrNoSuchCorrection)
	}
	s.pendingErrors = slices.Delete(s.pendingErrors, i, i+1)
	return nil
}

// SubmitExport renders the poem. The session stays in Export either way.
func (s *Session) SubmitExport(ctx context.Context, title, author string) (*export.Document, error) {
	title, author = strings.TrimSpace(title), strings.TrimSpace(author)
	if title == "" || author == "" {
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.stage != StageExport {
			return nil, s.fail(fmt.Errorf("%w: %s", ErrInvalidTransition, s.stage))
		}
		return nil, s.fail(ErrMissingExportFields)
	}

	if err := s.begin(StageExport); err != nil {
		return nil, err
	}
	defer s.end()

	s.mu.Lock()
	req := export.ExportRequest{
		Title:  title,
		Author: author,
		Text:   s.poemText,
		Theme:  s.chosenTheme,
	}
	s.mu.Unlock()

	doc, err := s.backend.Export(ctx, req)
	if err != nil {
		s.logger(ctx).WithError(err).Error("Export failed")
		s.mu.Lock()
		defer s.mu.Unlock()
		return nil, s.fail(backendError(err))
	}

	s.logger(ctx).WithField("filename", doc.Filename).Info("Poem exported")
	return doc, nil
}
