package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"golang.org/x/oauth2"

	"Backend-Yeoun-Survey/src/models"
)

const (
	ProviderKakao = "kakao"
	anonymousName = "익명"

	kakaoAuthURL     = "https://kauth.kakao.com/oauth/authorize"
	kakaoTokenURL    = "https://kauth.kakao.com/oauth/token"
	kakaoUserInfoURL = "https://kapi.kakao.com/v2/user/me"
)

// KakaoEndpoint sends client credentials in the form body as Kakao expects.
var KakaoEndpoint = oauth2.Endpoint{
	AuthURL:   kakaoAuthURL,
	TokenURL:  kakaoTokenURL,
	AuthStyle: oauth2.AuthStyleInParams,
}

type KakaoConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURI  string
	// overridable for tests
	Endpoint    oauth2.Endpoint
	UserInfoURL string
}

// KakaoUser is the subset of /v2/user/me this service reads.
type KakaoUser struct {
	ID           int64           `json:"id" validate:"required,gt=0"`
	Properties   KakaoProperties `json:"properties"`
	KakaoAccount KakaoAccount    `json:"kakao_account"`
}

type KakaoProperties struct {
	Nickname       string `json:"nickname"`
	ProfileImage   string `json:"profile_image" validate:"omitempty,url"`
	ThumbnailImage string `json:"thumbnail_image" validate:"omitempty,url"`
}

type KakaoAccount struct {
	Email   string        `json:"email" validate:"omitempty,email"`
	Profile *KakaoProfile `json:"profile"`
}

type KakaoProfile struct {
	Nickname        string `json:"nickname"`
	ProfileImageURL string `json:"profile_image_url" validate:"omitempty,url"`
}

// ToUser maps the provider profile onto the local user record.
func (k KakaoUser) ToUser() models.User {
	kakaoID := strconv.FormatInt(k.ID, 10)

	name := k.Properties.Nickname
	image := k.Properties.ProfileImage
	if p := k.KakaoAccount.Profile; p != nil {
		if name == "" {
			name = p.Nickname
		}
		if image == "" {
			image = p.ProfileImageURL
		}
	}
	if name == "" {
		name = anonymousName
	}

	return models.User{
		ID:           "kakao_" + kakaoID,
		Name:         name,
		Email:        k.KakaoAccount.Email,
		ProfileImage: image,
		Provider:     ProviderKakao,
		KakaoID:      kakaoID,
	}
}

type KakaoClient struct {
	oauth       *oauth2.Config
	userInfoURL string
	validate    *validator.Validate
}

func NewKakaoClient(cfg KakaoConfig) *KakaoClient {
	endpoint := cfg.Endpoint
	if endpoint.TokenURL == "" {
		endpoint = KakaoEndpoint
	}
	userInfo := cfg.UserInfoURL
	if userInfo == "" {
		userInfo = kakaoUserInfoURL
	}
	return &KakaoClient{
		oauth: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURI,
			Endpoint:     endpoint,
		},
		userInfoURL: userInfo,
		validate:    validator.New(),
	}
}

func (k *KakaoClient) AuthCodeURL(state string) string {
	return k.oauth.AuthCodeURL(state)
}

// Exchange trades an authorization code for a provider token. redirectURI
// overrides the configured one when set; it must match the authorize call.
func (k *KakaoClient) Exchange(ctx context.Context, code, redirectURI string) (*oauth2.Token, error) {
	if k.oauth.ClientID == "" {
		return nil, &AuthError{Kind: KindMisconfigured, Detail: "client id not configured"}
	}

	var opts []oauth2.AuthCodeOption
	if redirectURI != "" {
		opts = append(opts, oauth2.SetAuthURLParam("redirect_uri", redirectURI))
	}
	token, err := k.oauth.Exchange(ctx, code, opts...)
	if err != nil {
		return nil, classifyExchange(err)
	}
	return token, nil
}

// FetchUser reads and validates the user-info payload.
func (k *KakaoClient) FetchUser(ctx context.Context, token *oauth2.Token) (*KakaoUser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, k.userInfoURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded;charset=utf-8")

	resp, err := k.oauth.Client(ctx, token).Do(req)
	if err != nil {
		return nil, &AuthError{Kind: KindUpstream, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &AuthError{Kind: KindUpstream, Err: err}
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &AuthError{Kind: KindUpstream, Detail: fmt.Sprintf("user info status %d", resp.StatusCode)}
	}

	return k.ParseUser(body)
}

// ParseUser decodes and validates a raw user-info payload.
func (k *KakaoClient) ParseUser(body []byte) (*KakaoUser, error) {
	var user KakaoUser
	if err := json.Unmarshal(body, &user); err != nil {
		return nil, &AuthError{Kind: KindInvalidProfile, Err: err}
	}
	if err := k.validate.Struct(user); err != nil {
		return nil, &AuthError{Kind: KindInvalidProfile, Err: err}
	}
	return &user, nil
}
