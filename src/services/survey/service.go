package survey

import (
	"context"
	"errors"
	"log"

	"Backend-Yeoun-Survey/src/models"
	"Backend-Yeoun-Survey/src/services/catalog"
)

// Submitter performs the keyed write of a finished draft.
type Submitter interface {
	Submit(ctx context.Context, sess models.Session, draft models.SurveyDraft) (*models.SurveyResponse, error)
}

// CompletionChecker reports whether a response already exists for a user.
type CompletionChecker interface {
	Exists(ctx context.Context, userID string) (bool, error)
}

type Service struct {
	drafts    DraftStore
	submitter Submitter
	checker   CompletionChecker
}

func NewService(drafts DraftStore, submitter Submitter, checker CompletionChecker) *Service {
	return &Service{drafts: drafts, submitter: submitter, checker: checker}
}

// View is what the client renders for the current step.
type View struct {
	Step               Step                      `json:"step"`
	SongIndex          *int                      `json:"songIndex,omitempty"`
	TotalSongs         int                       `json:"totalSongs"`
	CurrentSong        *models.Song              `json:"currentSong,omitempty"`
	AvailablePositions []models.DetailedPosition `json:"availablePositions,omitempty"`
	IsLastSong         bool                      `json:"isLastSong"`
	CanAdvance         bool                      `json:"canAdvance"`
	BlockedBy          string                    `json:"blockedBy,omitempty"`
	AlreadyCompleted   bool                      `json:"alreadyCompleted"`
	Draft              models.SurveyDraft        `json:"draft"`
}

func NewView(w *Wizard) *View {
	v := &View{
		Step:       w.Step(),
		TotalSongs: len(w.draft.ParticipatingSongs),
		IsLastSong: w.IsLastSong(),
		Draft:      w.Draft(),
		CanAdvance: true,
	}
	if idx, ok := w.SongIndex(); ok {
		v.SongIndex = &idx
		v.AvailablePositions = catalog.ExpandPositions(w.draft.MainPositions)
	}
	if id, ok := w.CurrentSongID(); ok {
		if song, found := catalog.FindSong(id); found {
			v.CurrentSong = &song
		}
	}
	if err := w.CheckStep(); err != nil {
		v.CanAdvance = false
		var ve *models.ValidationError
		if errors.As(err, &ve) {
			v.BlockedBy = ve.Key
		}
	}
	if w.Step() == StepComplete {
		v.CanAdvance = false
	}
	return v
}

func (s *Service) load(ctx context.Context, userID string) (*Wizard, error) {
	snap, err := s.drafts.Load(ctx, userID)
	if err != nil {
		return nil, err
	}
	if snap == nil {
		return NewWizard(), nil
	}
	return Restore(*snap), nil
}

// State returns the current wizard view for the caller.
func (s *Service) State(ctx context.Context, sess models.Session) (*View, error) {
	w, err := s.load(ctx, sess.UserID)
	if err != nil {
		return nil, err
	}
	v := NewView(w)
	if s.checker != nil {
		done, err := s.checker.Exists(ctx, sess.UserID)
		if err != nil {
			log.Printf("⚠️ [survey] completion check failed user=%s: %v", sess.UserID, err)
		}
		v.AlreadyCompleted = done
	}
	return v, nil
}

// apply loads the wizard, runs op and persists the result. A failing op
// leaves the stored draft untouched.
func (s *Service) apply(ctx context.Context, sess models.Session, op func(w *Wizard) error) (*View, error) {
	w, err := s.load(ctx, sess.UserID)
	if err != nil {
		return nil, err
	}
	if err := op(w); err != nil {
		return NewView(w), err
	}
	if err := s.drafts.Save(ctx, sess.UserID, w.Snapshot()); err != nil {
		return nil, err
	}
	return NewView(w), nil
}

func (s *Service) Advance(ctx context.Context, sess models.Session) (*View, error) {
	return s.apply(ctx, sess, (*Wizard).GatedAdvance)
}

func (s *Service) Retreat(ctx context.Context, sess models.Session) (*View, error) {
	return s.apply(ctx, sess, (*Wizard).GatedRetreat)
}

func (s *Service) NextSong(ctx context.Context, sess models.Session) (*View, error) {
	return s.apply(ctx, sess, (*Wizard).GatedAdvanceSong)
}

func (s *Service) PrevSong(ctx context.Context, sess models.Session) (*View, error) {
	return s.apply(ctx, sess, (*Wizard).GatedRetreatSong)
}

func (s *Service) SetPositions(ctx context.Context, sess models.Session, positions []models.MainPosition) (*View, error) {
	return s.apply(ctx, sess, func(w *Wizard) error {
		if w.Step() == StepComplete {
			return ErrCompleted
		}
		w.SetPositions(positions)
		return nil
	})
}

func (s *Service) SetSongs(ctx context.Context, sess models.Session, songIDs []int) (*View, error) {
	return s.apply(ctx, sess, func(w *Wizard) error {
		if w.Step() == StepComplete {
			return ErrCompleted
		}
		w.SetParticipatingSongs(songIDs)
		return nil
	})
}

func (s *Service) SetSongDetail(ctx context.Context, sess models.Session, songID int, patch DetailPatch) (*View, error) {
	return s.apply(ctx, sess, func(w *Wizard) error {
		if w.Step() == StepComplete {
			return ErrCompleted
		}
		w.SetSongDetail(songID, patch)
		return nil
	})
}

// Submit writes the draft through the submitter and only then moves the
// wizard to complete. On failure the wizard is not changed.
func (s *Service) Submit(ctx context.Context, sess models.Session) (*models.SurveyResponse, *View, error) {
	w, err := s.load(ctx, sess.UserID)
	if err != nil {
		return nil, nil, err
	}
	switch w.Step() {
	case StepComplete:
		return nil, NewView(w), ErrCompleted
	case StepDetails:
	default:
		return nil, NewView(w), ErrWrongStep
	}
	if err := w.CheckStep(); err != nil {
		return nil, NewView(w), err
	}

	resp, err := s.submitter.Submit(ctx, sess, w.Draft())
	if err != nil {
		return nil, NewView(w), err
	}

	if err := w.Complete(); err != nil {
		return nil, nil, err
	}
	if err := s.drafts.Save(ctx, sess.UserID, w.Snapshot()); err != nil {
		// the response is stored; a stale draft only affects the wizard view
		log.Printf("⚠️ [survey] failed to save completed draft user=%s: %v", sess.UserID, err)
	}
	return resp, NewView(w), nil
}

// Reset discards the caller's draft.
func (s *Service) Reset(ctx context.Context, sess models.Session) (*View, error) {
	if err := s.drafts.Delete(ctx, sess.UserID); err != nil {
		return nil, err
	}
	return NewView(NewWizard()), nil
}
