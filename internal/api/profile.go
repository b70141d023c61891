package api

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"time"

	"github.com/sheshape/shapecli/internal/profile"
)

// Profile is the stored profile as the backend returns it.
type Profile struct {
	profile.SetupRequest

	ID               int64      `json:"id"`
	ProfileImageURL  string     `json:"profileImageUrl,omitempty"`
	ProfileCompleted bool       `json:"profileCompleted"`
	CreatedAt        *time.Time `json:"createdAt,omitempty"`
	UpdatedAt        *time.Time `json:"updatedAt,omitempty"`
}

// SetupProfile submits the composed onboarding payload.
func (c *Client) SetupProfile(ctx context.Context, req profile.SetupRequest) error {
	return c.request(ctx, http.MethodPost, "/api/users/profile/setup", req, nil)
}

// GetProfile fetches the current user's stored profile.
func (c *Client) GetProfile(ctx context.Context) (*Profile, error) {
	var p Profile
	if err := c.request(ctx, http.MethodGet, "/api/users/profile", nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// UploadProfileImage sends the staged image as a multipart form and returns
// the URL the backend stored it under.
func (c *Client) UploadProfileImage(ctx context.Context, filename, mimeType string, data []byte) (string, error) {
	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="image"; filename=%q`, filename))
	header.Set("Content-Type", mimeType)
	part, err := form.CreatePart(header)
	if err != nil {
		return "", fmt.Errorf("building upload form: %w", err)
	}
	if _, err := part.Write(data); err != nil {
		return "", fmt.Errorf("building upload form: %w", err)
	}
	if err := form.Close(); err != nil {
		return "", fmt.Errorf("building upload form: %w", err)
	}

	var resp struct {
		ImageURL string `json:"imageUrl"`
	}
	err = c.do(ctx, http.MethodPost, "/api/uploads/profile-image", form.FormDataContentType(), &buf, &resp)
	if err != nil {
		return "", err
	}
	return resp.ImageURL, nil
}
