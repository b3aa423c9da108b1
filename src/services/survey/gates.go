package survey

import (
	"errors"

	"Backend-Yeoun-Survey/src/i18n"
	"Backend-Yeoun-Survey/src/models"
)

var (
	// ErrSubmitRequired: details is left forward only by a successful submission.
	ErrSubmitRequired = errors.New("survey: submit required to leave details")
	ErrWrongStep      = errors.New("survey: action not available at current step")
	ErrCompleted      = errors.New("survey: already completed")
)

// CheckStep reports whether the current step's minimum input is present.
func (w *Wizard) CheckStep() error {
	switch w.Step() {
	case StepPositions:
		if len(w.draft.MainPositions) == 0 {
			return models.NewValidationError("mainPositions", i18n.MsgNeedPosition)
		}
	case StepSongs:
		if len(w.draft.ParticipatingSongs) == 0 {
			return models.NewValidationError("participatingSongs", i18n.MsgNeedSong)
		}
	case StepDetails:
		return w.checkCurrentSong()
	}
	return nil
}

func (w *Wizard) checkCurrentSong() error {
	songID, ok := w.CurrentSongID()
	if !ok {
		return models.NewValidationError("participatingSongs", i18n.MsgNeedSong)
	}
	d := w.draft.SongDetails[songID]
	if len(d.SelectedPositions) == 0 {
		return models.NewValidationError("selectedPositions", i18n.MsgNeedSongPosition)
	}
	if d.CompletionScore == nil || *d.CompletionScore <= 0 {
		return models.NewValidationError("completionScore", i18n.MsgNeedSongScore)
	}
	return nil
}

// GatedAdvance is Advance behind the step's input check.
func (w *Wizard) GatedAdvance() error {
	if w.Step() == StepComplete {
		return ErrCompleted
	}
	if err := w.CheckStep(); err != nil {
		return err
	}
	if w.Step() == StepDetails {
		return ErrSubmitRequired
	}
	w.Advance()
	return nil
}

// GatedRetreat is Retreat, refused once the response is submitted.
func (w *Wizard) GatedRetreat() error {
	if w.Step() == StepComplete {
		return ErrCompleted
	}
	w.Retreat()
	return nil
}

// GatedAdvanceSong requires a position and score for the current song.
func (w *Wizard) GatedAdvanceSong() error {
	if w.Step() != StepDetails {
		return ErrWrongStep
	}
	if err := w.checkCurrentSong(); err != nil {
		return err
	}
	if w.IsLastSong() {
		return ErrSubmitRequired
	}
	w.AdvanceSong()
	return nil
}

func (w *Wizard) GatedRetreatSong() error {
	if w.Step() != StepDetails {
		return ErrWrongStep
	}
	w.RetreatSong()
	return nil
}

// Complete marks the wizard done after the response was stored.
func (w *Wizard) Complete() error {
	if w.Step() != StepDetails {
		return ErrWrongStep
	}
	w.Advance()
	return nil
}
