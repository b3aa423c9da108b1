package submission

import (
	"context"
	"log"
	"time"

	"Backend-Yeoun-Survey/src/i18n"
	"Backend-Yeoun-Survey/src/models"
	"Backend-Yeoun-Survey/src/services/catalog"
)

const (
	minScore = 0
	maxScore = 10

	// writeTimeout bounds the exists check and the keyed write of one submission.
	writeTimeout = 5 * time.Second
)

// Notifier receives completed submissions after the remote write succeeds.
type Notifier interface {
	Submitted(ctx context.Context, resp *models.SurveyResponse) error
}

type Service struct {
	store     Store
	mirror    Mirror
	notifiers []Notifier
	now       func() time.Time
	timeout   time.Duration
}

// NewService mirror may be nil.
func NewService(store Store, mirror Mirror, notifiers ...Notifier) *Service {
	return &Service{store: store, mirror: mirror, notifiers: notifiers, now: time.Now, timeout: writeTimeout}
}

// ValidateDraft is the authoritative check run before any write.
func ValidateDraft(draft models.SurveyDraft) error {
	if len(draft.MainPositions) == 0 {
		return models.NewValidationError("mainPositions", i18n.MsgNeedPosition)
	}
	for _, p := range draft.MainPositions {
		if !catalog.IsMainPosition(p) {
			return models.NewValidationError("mainPositions", i18n.MsgUnknownPosition)
		}
	}
	if len(draft.ParticipatingSongs) == 0 {
		return models.NewValidationError("participatingSongs", i18n.MsgNeedSong)
	}
	for _, id := range draft.ParticipatingSongs {
		if !catalog.IsActiveSong(id) {
			return models.NewValidationError("participatingSongs", i18n.MsgUnknownSong)
		}
		detail, ok := draft.SongDetails[id]
		if !ok || len(detail.SelectedPositions) == 0 {
			return models.NewValidationError("selectedPositions", i18n.MsgNeedSongPosition)
		}
		for _, p := range detail.SelectedPositions {
			if !catalog.IsDetailedPosition(p) {
				return models.NewValidationError("selectedPositions", i18n.MsgUnknownPosition)
			}
		}
		if detail.CompletionScore == nil {
			return models.NewValidationError("completionScore", i18n.MsgNeedSongScore)
		}
		if s := *detail.CompletionScore; s < minScore || s > maxScore {
			return models.NewValidationError("completionScore", i18n.MsgInvalidScore)
		}
	}
	return nil
}

// Submit validates the draft and performs the keyed write. A failed write
// returns a *PersistenceError and leaves nothing in the mirror.
func (s *Service) Submit(ctx context.Context, sess models.Session, draft models.SurveyDraft) (*models.SurveyResponse, error) {
	if err := ValidateDraft(draft); err != nil {
		return nil, err
	}

	storeCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	exists, err := s.store.Exists(storeCtx, sess.UserID)
	if err != nil {
		return nil, classify(err)
	}
	if exists {
		return nil, ErrAlreadyCompleted
	}

	now := s.now()
	resp := &models.SurveyResponse{
		UserID:             sess.UserID,
		UserName:           sess.Name,
		ProfileImage:       sess.ProfileImage,
		MainPositions:      draft.MainPositions,
		ParticipatingSongs: dedupe(draft.ParticipatingSongs),
		SongDetails:        draft.SongDetails,
		SubmittedAt:        now,
		UpdatedAt:          now,
	}
	if err := s.write(storeCtx, resp); err != nil {
		return nil, err
	}

	for _, n := range s.notifiers {
		if err := n.Submitted(ctx, resp); err != nil {
			log.Println("⚠️ Submission notifier failed:", err)
		}
	}
	log.Printf("✅ Survey submitted by %s (%d songs)", resp.UserID, len(resp.ParticipatingSongs))
	return resp, nil
}

// write stores resp remotely and then mirrors it locally.
func (s *Service) write(ctx context.Context, resp *models.SurveyResponse) error {
	if err := s.store.Put(ctx, resp); err != nil {
		perr := classify(err)
		log.Printf("❌ Survey write for %s failed: %v", resp.UserID, perr)
		return perr
	}
	if s.mirror != nil {
		if err := s.mirror.Save(ctx, resp); err != nil {
			log.Println("⚠️ Failed to mirror survey response:", err)
		}
	}
	return nil
}

func (s *Service) Exists(ctx context.Context, userID string) (bool, error) {
	return s.store.Exists(ctx, userID)
}

// Completion reports whether userID has submitted, with only the name and
// submission time of the stored response.
func (s *Service) Completion(ctx context.Context, userID string) (models.CompletionStatus, error) {
	resp, err := s.Response(ctx, userID)
	if err != nil {
		return models.CompletionStatus{}, err
	}
	if resp == nil {
		return models.CompletionStatus{IsCompleted: false}, nil
	}
	return models.CompletionStatus{
		IsCompleted: true,
		ResponseData: &models.CompletionMetadata{
			UserName:    resp.UserName,
			SubmittedAt: resp.SubmittedAt,
		},
	}, nil
}

// Response returns the stored response for userID, falling back to the
// mirror when the remote store cannot be read.
func (s *Service) Response(ctx context.Context, userID string) (*models.SurveyResponse, error) {
	resp, err := s.store.Get(ctx, userID)
	if err == nil {
		return resp, nil
	}
	if s.mirror == nil {
		return nil, classify(err)
	}
	cached, cerr := s.mirror.Load(ctx, userID)
	if cerr != nil || cached == nil {
		return nil, classify(err)
	}
	log.Printf("⚠️ Serving cached response for %s: %v", userID, err)
	return cached, nil
}

// List returns every stored response, newest first.
func (s *Service) List(ctx context.Context) ([]models.SurveyResponse, error) {
	responses, err := s.store.List(ctx)
	if err != nil {
		return nil, classify(err)
	}
	return responses, nil
}

func dedupe(ids []int) []int {
	seen := make(map[int]struct{}, len(ids))
	out := make([]int, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
