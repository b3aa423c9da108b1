// Package survey drives a participant through the survey wizard and keeps the
// per-user draft between requests.
package survey

import (
	"context"

	"github.com/looplab/fsm"

	"Backend-Yeoun-Survey/src/models"
)

type Step string

const (
	StepWelcome   Step = "welcome"
	StepPositions Step = "positions"
	StepSongs     Step = "songs"
	StepDetails   Step = "details"
	StepComplete  Step = "complete"
)

// Steps is the fixed wizard ordering.
var Steps = []Step{StepWelcome, StepPositions, StepSongs, StepDetails, StepComplete}

const (
	eventAdvance = "advance"
	eventRetreat = "retreat"
)

func stepIndex(s Step) int {
	for i, st := range Steps {
		if st == s {
			return i
		}
	}
	return -1
}

func stepEvents() fsm.Events {
	var events fsm.Events
	for i := 0; i < len(Steps)-1; i++ {
		events = append(events,
			fsm.EventDesc{Name: eventAdvance, Src: []string{string(Steps[i])}, Dst: string(Steps[i+1])},
			fsm.EventDesc{Name: eventRetreat, Src: []string{string(Steps[i+1])}, Dst: string(Steps[i])},
		)
	}
	return events
}

// detailsCursor exists only while the wizard is in the details step.
type detailsCursor struct {
	index int
}

// Wizard is the survey state: current step, the song cursor (details only)
// and the draft being built. Transitions never fail; they clamp.
type Wizard struct {
	machine *fsm.FSM
	cursor  *detailsCursor
	draft   models.SurveyDraft
}

func NewWizard() *Wizard {
	w := &Wizard{draft: emptyDraft()}
	w.machine = fsm.NewFSM(string(StepWelcome), stepEvents(), fsm.Callbacks{
		"enter_" + string(StepDetails): func(_ context.Context, e *fsm.Event) {
			idx := 0
			if e.Src == string(StepComplete) {
				idx = lastIndex(len(w.draft.ParticipatingSongs))
			}
			w.cursor = &detailsCursor{index: idx}
		},
		"leave_" + string(StepDetails): func(_ context.Context, _ *fsm.Event) {
			w.cursor = nil
		},
	})
	return w
}

func emptyDraft() models.SurveyDraft {
	return models.SurveyDraft{
		MainPositions:      []models.MainPosition{},
		ParticipatingSongs: []int{},
		SongDetails:        map[int]models.SongDetail{},
	}
}

func lastIndex(n int) int {
	if n == 0 {
		return 0
	}
	return n - 1
}

func (w *Wizard) Step() Step {
	return Step(w.machine.Current())
}

// SongIndex returns the cursor and true only while in details.
func (w *Wizard) SongIndex() (int, bool) {
	if w.cursor == nil {
		return 0, false
	}
	return w.cursor.index, true
}

func (w *Wizard) Draft() models.SurveyDraft {
	return w.draft
}

// fire ignores fsm.InvalidEventError: advance at complete and retreat at
// welcome are undefined in the graph, which is the clamp.
func (w *Wizard) fire(event string) {
	_ = w.machine.Event(context.Background(), event)
}

// Advance moves to the next step; no-op at complete.
func (w *Wizard) Advance() { w.fire(eventAdvance) }

// Retreat moves to the previous step; no-op at welcome.
func (w *Wizard) Retreat() { w.fire(eventRetreat) }

// AdvanceSong moves the cursor forward, clamped to the last song.
func (w *Wizard) AdvanceSong() {
	if w.cursor == nil {
		return
	}
	next := w.cursor.index + 1
	if last := lastIndex(len(w.draft.ParticipatingSongs)); next > last {
		next = last
	}
	w.cursor.index = next
}

// RetreatSong moves the cursor back; at the first song it leaves details
// for the songs step instead.
func (w *Wizard) RetreatSong() {
	if w.cursor == nil {
		return
	}
	if w.cursor.index == 0 {
		w.Retreat()
		return
	}
	w.cursor.index--
}

func (w *Wizard) SetPositions(positions []models.MainPosition) {
	w.draft.MainPositions = append([]models.MainPosition{}, positions...)
}

// SetParticipatingSongs replaces the song list. Details of removed songs stay
// in the draft; only listed songs are read back.
func (w *Wizard) SetParticipatingSongs(ids []int) {
	w.draft.ParticipatingSongs = append([]int{}, ids...)
	if w.cursor != nil {
		if last := lastIndex(len(ids)); w.cursor.index > last {
			w.cursor.index = last
		}
	}
}

// DetailPatch is a partial SongDetail; nil fields are left untouched.
type DetailPatch struct {
	SelectedPositions *[]models.DetailedPosition
	CompletionScore   *int
	ClearScore        bool
	Opinion           *string
}

func (w *Wizard) SetSongDetail(songID int, patch DetailPatch) {
	d, ok := w.draft.SongDetails[songID]
	if !ok {
		d = models.SongDetail{SelectedPositions: []models.DetailedPosition{}}
	}
	if patch.SelectedPositions != nil {
		d.SelectedPositions = append([]models.DetailedPosition{}, (*patch.SelectedPositions)...)
	}
	if patch.ClearScore {
		d.CompletionScore = nil
	} else if patch.CompletionScore != nil {
		score := *patch.CompletionScore
		d.CompletionScore = &score
	}
	if patch.Opinion != nil {
		d.Opinion = *patch.Opinion
	}
	if w.draft.SongDetails == nil {
		w.draft.SongDetails = map[int]models.SongDetail{}
	}
	w.draft.SongDetails[songID] = d
}

// CurrentSongID is the participating song under the cursor.
func (w *Wizard) CurrentSongID() (int, bool) {
	idx, ok := w.SongIndex()
	if !ok || idx >= len(w.draft.ParticipatingSongs) {
		return 0, false
	}
	return w.draft.ParticipatingSongs[idx], true
}

func (w *Wizard) IsLastSong() bool {
	idx, ok := w.SongIndex()
	return ok && idx == len(w.draft.ParticipatingSongs)-1
}

// Snapshot is the persisted form of a wizard.
type Snapshot struct {
	Step      Step               `json:"step"`
	SongIndex *int               `json:"songIndex,omitempty"`
	Draft     models.SurveyDraft `json:"draft"`
}

func (w *Wizard) Snapshot() Snapshot {
	s := Snapshot{Step: w.Step(), Draft: w.draft}
	if idx, ok := w.SongIndex(); ok {
		s.SongIndex = &idx
	}
	return s
}

// Restore rebuilds a wizard. Unknown steps restart at welcome and a song
// index outside details is dropped.
func Restore(s Snapshot) *Wizard {
	w := NewWizard()
	if s.Draft.MainPositions != nil {
		w.draft.MainPositions = s.Draft.MainPositions
	}
	if s.Draft.ParticipatingSongs != nil {
		w.draft.ParticipatingSongs = s.Draft.ParticipatingSongs
	}
	if s.Draft.SongDetails != nil {
		w.draft.SongDetails = s.Draft.SongDetails
	}
	if stepIndex(s.Step) < 0 {
		return w
	}
	w.machine.SetState(string(s.Step))
	if s.Step == StepDetails {
		idx := 0
		if s.SongIndex != nil && *s.SongIndex > 0 {
			idx = *s.SongIndex
		}
		if last := lastIndex(len(w.draft.ParticipatingSongs)); idx > last {
			idx = last
		}
		w.cursor = &detailsCursor{index: idx}
	}
	return w
}
