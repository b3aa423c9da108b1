package admin

import (
	"fmt"
	"math"
	"strings"

	"Backend-Yeoun-Survey/src/models"
)

// ComputeSongStats aggregates responses per song. Only responses that list
// the song in participatingSongs and carry a detail for it are counted.
func ComputeSongStats(songs []models.Song, responses []models.SurveyResponse) []models.SongStats {
	out := make([]models.SongStats, 0, len(songs))
	for _, song := range songs {
		stats := models.SongStats{
			Song:           song,
			Participants:   []models.SongParticipant{},
			PositionCounts: map[string]int{},
		}
		var scores []int
		for _, resp := range responses {
			detail, ok := participation(resp, song.ID)
			if !ok {
				continue
			}
			stats.Participants = append(stats.Participants, models.SongParticipant{
				UserID:    resp.UserID,
				UserName:  resp.UserName,
				Positions: detail.SelectedPositions,
				Score:     detail.CompletionScore,
				Opinion:   detail.Opinion,
			})
			for _, p := range detail.SelectedPositions {
				stats.PositionCounts[p]++
			}
			if detail.CompletionScore != nil {
				scores = append(scores, *detail.CompletionScore)
			}
		}
		stats.AverageScore = formatAverage(scores)
		out = append(out, stats)
	}
	return out
}

// ComputeOverview counts participants, opinions and the mean score over
// every participating song.
func ComputeOverview(activeSongs int, responses []models.SurveyResponse) models.SurveyOverview {
	overview := models.SurveyOverview{Participants: len(responses), ActiveSongs: activeSongs}
	var scores []int
	for _, resp := range responses {
		for _, id := range resp.ParticipatingSongs {
			detail, ok := resp.SongDetails[id]
			if !ok {
				continue
			}
			if strings.TrimSpace(detail.Opinion) != "" {
				overview.Opinions++
			}
			if detail.CompletionScore != nil {
				scores = append(scores, *detail.CompletionScore)
			}
		}
	}
	overview.AverageScore = formatAverage(scores)
	return overview
}

func participation(resp models.SurveyResponse, songID int) (models.SongDetail, bool) {
	for _, id := range resp.ParticipatingSongs {
		if id == songID {
			detail, ok := resp.SongDetails[songID]
			return detail, ok
		}
	}
	return models.SongDetail{}, false
}

// formatAverage renders the mean with one decimal, halves rounded up.
func formatAverage(scores []int) string {
	if len(scores) == 0 {
		return "0.0"
	}
	sum := 0
	for _, s := range scores {
		sum += s
	}
	avg := float64(sum) / float64(len(scores))
	return fmt.Sprintf("%.1f", math.Round(avg*10)/10)
}
