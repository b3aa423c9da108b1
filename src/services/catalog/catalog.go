// Package catalog holds the static song list and position vocabulary.
package catalog

import (
	"Backend-Yeoun-Survey/src/models"
)

var songs = []models.Song{
	{ID: 1, Title: "Pyramid - tonado", Order: 1, IsActive: true},
	{ID: 2, Title: "Do you like F?", Order: 2, IsActive: true},
	{ID: 3, Title: "건물 사이에 피어난 장미", Order: 3, IsActive: true},
	{ID: 4, Title: "Malia civetz - broke boy", Order: 4, IsActive: true},
	{ID: 5, Title: "Jessie j - do it like a dude", Order: 5, IsActive: true},
	{ID: 6, Title: "Only wanna give it to you", Order: 6, IsActive: true},
	{ID: 7, Title: "Bang bang", Order: 7, IsActive: true},
	{ID: 8, Title: "Love theory (가스펠)", Order: 8, IsActive: true},
	{ID: 9, Title: "마이클잭슨 - man in the mirror", Order: 9, IsActive: true},
	{ID: 10, Title: "When will my life begin?", Order: 10, IsActive: true},
	{ID: 11, Title: "내 손을 잡아", Order: 11, IsActive: true},
	{ID: 12, Title: "Nothing's gonna change my love for you (+5키)", Order: 12, IsActive: true},
	{ID: 13, Title: "내게 사랑이 뭐냐고 물어본다면", Order: 13, IsActive: true},
	{ID: 14, Title: "그라데이션", Order: 14, IsActive: true},
	{ID: 15, Title: "Jessie j - flashlight (-1키)", Order: 15, IsActive: true},
	{ID: 16, Title: "눈의 꽃", Order: 16, IsActive: true},
	{ID: 17, Title: "아이와 나의바다 (듀엣) +1키(한키 올려서 F)", Order: 17, IsActive: true},
	{ID: 18, Title: "고래 (듀엣, 리무진 서비스 버전 엄지,이무진)", Order: 18, IsActive: true},
}

const (
	PositionVocal    = "보컬"
	PositionChorus   = "코러스"
	PositionGuitar   = "기타"
	PositionBass     = "베이스"
	PositionDrum     = "드럼"
	PositionKeyboard = "키보드"

	PositionGuitarAcoustic = "기타 어쿠스틱"
	PositionGuitarLead     = "기타 리드"
	PositionGuitarBacking  = "기타 백킹"
	PositionMainKeyboard   = "메인 키보드"
	PositionSecondKeyboard = "세컨 키보드"
)

var mainPositions = []models.MainPosition{
	PositionVocal, PositionChorus, PositionGuitar, PositionBass, PositionDrum, PositionKeyboard,
}

var detailedPositions = []models.DetailedPosition{
	PositionVocal,
	PositionChorus,
	PositionGuitarAcoustic,
	PositionGuitarLead,
	PositionGuitarBacking,
	PositionBass,
	PositionDrum,
	PositionMainKeyboard,
	PositionSecondKeyboard,
}

// Songs returns a copy of the full catalog in display order.
func Songs() []models.Song {
	out := make([]models.Song, len(songs))
	copy(out, songs)
	return out
}

func ActiveSongs() []models.Song {
	out := make([]models.Song, 0, len(songs))
	for _, s := range songs {
		if s.IsActive {
			out = append(out, s)
		}
	}
	return out
}

func FindSong(id int) (models.Song, bool) {
	for _, s := range songs {
		if s.ID == id {
			return s, true
		}
	}
	return models.Song{}, false
}

// IsActiveSong reports whether id names an active catalog entry.
func IsActiveSong(id int) bool {
	s, ok := FindSong(id)
	return ok && s.IsActive
}

func MainPositions() []models.MainPosition {
	return append([]models.MainPosition(nil), mainPositions...)
}

func DetailedPositions() []models.DetailedPosition {
	return append([]models.DetailedPosition(nil), detailedPositions...)
}

func IsMainPosition(p string) bool {
	for _, m := range mainPositions {
		if m == p {
			return true
		}
	}
	return false
}

func IsDetailedPosition(p string) bool {
	for _, d := range detailedPositions {
		if d == p {
			return true
		}
	}
	return false
}

// ExpandPositions maps main positions to the detailed parts offered per song.
// 기타 and 키보드 split into their sub-parts; the rest map to themselves.
func ExpandPositions(main []models.MainPosition) []models.DetailedPosition {
	out := make([]models.DetailedPosition, 0, len(main))
	for _, p := range main {
		switch p {
		case PositionGuitar:
			out = append(out, PositionGuitarAcoustic, PositionGuitarLead, PositionGuitarBacking)
		case PositionKeyboard:
			out = append(out, PositionMainKeyboard, PositionSecondKeyboard)
		default:
			out = append(out, p)
		}
	}
	return out
}
