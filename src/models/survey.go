package models

import "time"

// SongDetail คำตอบราย (ผู้ใช้, เพลง)
type SongDetail struct {
	SelectedPositions []DetailedPosition `bson:"selectedPositions" json:"selectedPositions"`
	CompletionScore   *int               `bson:"completionScore" json:"completionScore"`
	Opinion           string             `bson:"opinion" json:"opinion"`
}

// SurveyResponse one document per user, keyed by the user id.
type SurveyResponse struct {
	UserID             string             `bson:"_id" json:"userId"`
	UserName           string             `bson:"userName" json:"userName"`
	ProfileImage       string             `bson:"profileImage,omitempty" json:"profileImage,omitempty"`
	MainPositions      []MainPosition     `bson:"mainPositions" json:"mainPositions"`
	ParticipatingSongs []int              `bson:"participatingSongs" json:"participatingSongs"`
	SongDetails        map[int]SongDetail `bson:"songDetails" json:"songDetails"`
	SubmittedAt        time.Time          `bson:"submittedAt" json:"submittedAt"`
	UpdatedAt          time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// SurveyDraft is the not-yet-submitted response under construction.
type SurveyDraft struct {
	MainPositions      []MainPosition     `json:"mainPositions"`
	ParticipatingSongs []int              `json:"participatingSongs"`
	SongDetails        map[int]SongDetail `json:"songDetails"`
}

// CompletionStatus is what the completion check exposes; never the answers.
type CompletionStatus struct {
	IsCompleted  bool                `json:"isCompleted"`
	ResponseData *CompletionMetadata `json:"responseData"`
}

type CompletionMetadata struct {
	UserName    string    `json:"userName"`
	SubmittedAt time.Time `json:"submittedAt"`
}

// SongStats per-song aggregate for the admin view.
type SongStats struct {
	Song           Song              `json:"song"`
	Participants   []SongParticipant `json:"participants"`
	PositionCounts map[string]int    `json:"positionCounts"`
	AverageScore   string            `json:"averageScore"`
}

type SongParticipant struct {
	UserID    string             `json:"userId"`
	UserName  string             `json:"userName"`
	Positions []DetailedPosition `json:"positions"`
	Score     *int               `json:"score"`
	Opinion   string             `json:"opinion"`
}

// SurveyOverview headline numbers on the admin view.
type SurveyOverview struct {
	Participants int    `json:"participants"`
	ActiveSongs  int    `json:"activeSongs"`
	Opinions     int    `json:"opinions"`
	AverageScore string `json:"averageScore"`
}

// AdminReport is the cached admin aggregate.
type AdminReport struct {
	Overview    SurveyOverview `json:"overview"`
	Songs       []SongStats    `json:"songs"`
	GeneratedAt time.Time      `json:"generatedAt"`
}
