package domain

import (
	"strings"
	"unicode/utf8"
)

type Identity struct {
	ID       string
	Name     string
	Username string
	Bio      string
	ImageURL string
}

// Handle returns the "@username" form used wherever an author is displayed.
func (i Identity) Handle() string {
	return "@" + i.Username
}

func (i Identity) Initial() string {
	source := strings.TrimSpace(i.Name)
	if source == "" {
		source = strings.TrimSpace(i.Username)
	}
	if source == "" {
		return "U"
	}

	r, _ := utf8.DecodeRuneInString(source)
	return strings.ToUpper(string(r))
}

// AvatarURL resolves ImageURL against the asset host. Absolute URLs are kept as-is.
func (i Identity) AvatarURL(assetBaseURL string) string {
	imageURL := strings.TrimSpace(i.ImageURL)
	if imageURL == "" {
		return ""
	}
	if strings.HasPrefix(imageURL, "http") {
		return imageURL
	}

	return strings.TrimRight(assetBaseURL, "/") + "/assets/" + imageURL
}
