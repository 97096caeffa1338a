package authService

import (
	"LittleSteps/internal/api/auth"
	"LittleSteps/internal/entity"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

func MakeUserData(user entity.User) map[string]interface{} {
	return map[string]interface{}{
		"id":    user.ID,
		"email": user.Email,
		"name":  user.Name,
	}
}

func makeProfileTimestamp(t time.Time) string {
	return t.Format(time.RFC3339)
}

func fetchGoogleUserInfo(accessToken string) (auth.GoogleUserInfo, error) {
	resp, err := http.Get("https://www.googleapis.com/oauth2/v2/userinfo?access_token=" + url.QueryEscape(accessToken))
	if err != nil {
		return auth.GoogleUserInfo{}, err
	}
	defer func(body io.ReadCloser) {
		if err := body.Close(); err != nil {
			fmt.Printf("Error closing body: %v", err)
		}
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return auth.GoogleUserInfo{}, fmt.Errorf("google userinfo returned %d", resp.StatusCode)
	}

	var info auth.GoogleUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return auth.GoogleUserInfo{}, err
	}

	return info, nil
}
