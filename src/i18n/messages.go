// Package i18n resolves user-facing message keys into localized text.
package i18n

import "strings"

const (
	LocaleKo = "ko"
	LocaleEn = "en"
)

// message keys
const (
	MsgNeedPosition       = "survey.need_position"
	MsgNeedSong           = "survey.need_song"
	MsgNeedSongPosition   = "survey.need_song_position"
	MsgNeedSongScore      = "survey.need_song_score"
	MsgInvalidScore       = "survey.invalid_score"
	MsgUnknownSong        = "survey.unknown_song"
	MsgUnknownPosition    = "survey.unknown_position"
	MsgSubmitRequired     = "survey.submit_required"
	MsgWrongStep          = "survey.wrong_step"
	MsgAlreadyCompleted   = "survey.already_completed"
	MsgResponseNotFound   = "survey.response_not_found"
	MsgPersistPermission  = "persist.permission"
	MsgPersistUnavailable = "persist.unavailable"
	MsgPersistTimeout     = "persist.timeout"
	MsgPersistOther       = "persist.other"
	MsgAuthExpiredCode    = "auth.expired_code"
	MsgAuthMisconfigured  = "auth.client_misconfigured"
	MsgAuthRedirect       = "auth.redirect_mismatch"
	MsgAuthUpstream       = "auth.upstream"
	MsgAuthDuplicateCode  = "auth.duplicate_code"
	MsgAuthMissingCode    = "auth.missing_code"
	MsgAuthInvalidProfile = "auth.invalid_profile"
	MsgAuthInvalidState   = "auth.invalid_state"
	MsgAuthRequired       = "auth.required"
	MsgAdminRequired      = "admin.required"
	MsgAdminIDRequired    = "admin.admin_id_required"
	MsgTargetRequired     = "admin.target_required"
	MsgTargetNotFound     = "admin.target_not_found"
	MsgPromoted           = "admin.promoted"
	MsgInvalidInput       = "common.invalid_input"
	MsgInternal           = "common.internal"
)

var catalog = map[string]map[string]string{
	LocaleKo: {
		MsgNeedPosition:       "포지션을 하나 이상 선택해주세요.",
		MsgNeedSong:           "참여할 곡을 하나 이상 선택해주세요.",
		MsgNeedSongPosition:   "이 곡에서 맡을 포지션을 선택해주세요.",
		MsgNeedSongScore:      "완성도 점수를 선택해주세요.",
		MsgInvalidScore:       "완성도 점수는 0에서 10 사이여야 합니다.",
		MsgUnknownSong:        "존재하지 않는 곡입니다.",
		MsgUnknownPosition:    "알 수 없는 포지션입니다.",
		MsgSubmitRequired:     "마지막 곡입니다. 설문을 제출해주세요.",
		MsgWrongStep:          "현재 단계에서는 할 수 없는 작업입니다.",
		MsgAlreadyCompleted:   "이미 설문을 완료하셨습니다.",
		MsgResponseNotFound:   "제출된 설문이 없습니다.",
		MsgPersistPermission:  "저장 권한이 없습니다. 다시 로그인한 후 시도해주세요.",
		MsgPersistUnavailable: "네트워크 연결을 확인한 후 다시 시도해주세요.",
		MsgPersistTimeout:     "요청 시간이 초과되었습니다. 다시 시도해주세요.",
		MsgPersistOther:       "설문 제출 중 오류가 발생했습니다. 다시 시도해주세요.",
		MsgAuthExpiredCode:    "인가 코드가 만료되었거나 잘못되었습니다. 다시 로그인해주세요.",
		MsgAuthMisconfigured:  "카카오 앱 설정에 문제가 있습니다.",
		MsgAuthRedirect:       "리다이렉트 URI가 일치하지 않습니다.",
		MsgAuthUpstream:       "카카오 로그인에 문제가 발생했습니다.",
		MsgAuthDuplicateCode:  "이미 처리된 인가 코드입니다.",
		MsgAuthMissingCode:    "인가 코드가 필요합니다.",
		MsgAuthInvalidProfile: "유효하지 않은 카카오 사용자 정보입니다.",
		MsgAuthInvalidState:   "로그인 요청이 만료되었습니다. 다시 로그인해주세요.",
		MsgAuthRequired:       "로그인이 필요합니다.",
		MsgAdminRequired:      "관리자 권한이 필요합니다.",
		MsgAdminIDRequired:    "관리자 ID가 필요합니다.",
		MsgTargetRequired:     "대상 사용자 ID가 필요합니다.",
		MsgTargetNotFound:     "대상 사용자를 찾을 수 없습니다.",
		MsgPromoted:           "관리자 권한이 부여되었습니다.",
		MsgInvalidInput:       "잘못된 요청입니다.",
		MsgInternal:           "처리 중 오류가 발생했습니다.",
	},
	LocaleEn: {
		MsgNeedPosition:       "Select at least one position.",
		MsgNeedSong:           "Select at least one song.",
		MsgNeedSongPosition:   "Select your position for this song.",
		MsgNeedSongScore:      "Pick a completion score.",
		MsgInvalidScore:       "Completion score must be between 0 and 10.",
		MsgUnknownSong:        "Unknown song.",
		MsgUnknownPosition:    "Unknown position.",
		MsgSubmitRequired:     "This is the last song. Submit the survey.",
		MsgWrongStep:          "This action is not available at the current step.",
		MsgAlreadyCompleted:   "You have already completed the survey.",
		MsgResponseNotFound:   "No submitted survey was found.",
		MsgPersistPermission:  "Permission denied while saving. Sign in again and retry.",
		MsgPersistUnavailable: "Check your network connection and retry.",
		MsgPersistTimeout:     "The request timed out. Please retry.",
		MsgPersistOther:       "Something went wrong while submitting. Please retry.",
		MsgAuthExpiredCode:    "The authorization code expired or is invalid. Please sign in again.",
		MsgAuthMisconfigured:  "The Kakao app is misconfigured.",
		MsgAuthRedirect:       "The redirect URI does not match.",
		MsgAuthUpstream:       "Kakao sign-in failed.",
		MsgAuthDuplicateCode:  "This authorization code was already used.",
		MsgAuthMissingCode:    "An authorization code is required.",
		MsgAuthInvalidProfile: "The Kakao profile payload is invalid.",
		MsgAuthInvalidState:   "The sign-in request expired or was already used. Please sign in again.",
		MsgAuthRequired:       "Sign-in required.",
		MsgAdminRequired:      "Administrator permission required.",
		MsgAdminIDRequired:    "Administrator id is required.",
		MsgTargetRequired:     "Target user id is required.",
		MsgTargetNotFound:     "Target user not found.",
		MsgPromoted:           "Administrator permission granted.",
		MsgInvalidInput:       "Invalid request.",
		MsgInternal:           "An internal error occurred.",
	},
}

var defaultLocale = LocaleKo

var supported = []string{LocaleKo, LocaleEn}

// SetDefault changes the fallback locale; unknown values are ignored.
func SetDefault(locale string) {
	if _, ok := catalog[locale]; ok {
		defaultLocale = locale
	}
}

func Default() string { return defaultLocale }

// Localize returns the message for key, falling back to the default locale
// and finally to the key itself.
func Localize(locale, key string) string {
	if msgs, ok := catalog[locale]; ok {
		if m, ok := msgs[key]; ok {
			return m
		}
	}
	if m, ok := catalog[defaultLocale][key]; ok {
		return m
	}
	return key
}

// DetermineLocale picks the first supported locale from the query value, then
// the Accept-Language header.
func DetermineLocale(query, acceptLanguage string) string {
	if l := normalize(query); isSupported(l) {
		return l
	}
	for _, part := range strings.Split(acceptLanguage, ",") {
		tag := strings.TrimSpace(strings.SplitN(part, ";", 2)[0])
		if l := normalize(tag); isSupported(l) {
			return l
		}
	}
	return defaultLocale
}

func normalize(tag string) string {
	tag = strings.ToLower(strings.TrimSpace(tag))
	if i := strings.IndexAny(tag, "-_"); i > 0 {
		tag = tag[:i]
	}
	return tag
}

func isSupported(l string) bool {
	for _, s := range supported {
		if s == l {
			return true
		}
	}
	return false
}
