package rest

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"

	"github.com/bnema/chirp/internal/domain"
)

func (c *Client) Login(ctx context.Context, form domain.LoginForm) (string, error) {
	req, err := jsonRequest(http.MethodPost, "/user/login", loginRequest{Username: form.Username, Password: form.Password})
	if err != nil {
		return "", err
	}

	var resp envelope[tokenJSON]
	if err := c.do(ctx, req, &resp); err != nil {
		return "", fmt.Errorf("login: %w", err)
	}

	return resp.Data.Token, nil
}

func (c *Client) Register(ctx context.Context, form domain.RegisterForm) error {
	req, err := jsonRequest(http.MethodPost, "/user/register", registerRequest{Name: form.Name, Username: form.Username, Password: form.Password})
	if err != nil {
		return err
	}

	if err := c.do(ctx, req, nil); err != nil {
		return fmt.Errorf("register: %w", err)
	}

	return nil
}

// Me is single-shot: a failure invalidates the session rather than being retried.
func (c *Client) Me(ctx context.Context) (domain.Identity, error) {
	var resp envelope[*userJSON]
	if err := c.do(ctx, request{method: http.MethodGet, path: "/user/me"}, &resp); err != nil {
		return domain.Identity{}, fmt.Errorf("get current user: %w", err)
	}
	if resp.Data == nil {
		return domain.Identity{}, fmt.Errorf("get current user: %w", &domain.APIError{Status: http.StatusUnauthorized, Message: "empty identity"})
	}

	return resp.Data.toDomain(), nil
}

func (c *Client) GetUser(ctx context.Context, username string) (domain.Identity, error) {
	var resp envelope[userJSON]
	req := request{method: http.MethodGet, path: "/user/" + url.PathEscape(username), idempotent: true}
	if err := c.do(ctx, req, &resp); err != nil {
		return domain.Identity{}, fmt.Errorf("get user %s: %w", username, err)
	}

	return resp.Data.toDomain(), nil
}

func (c *Client) UpdateProfile(ctx context.Context, form domain.ProfileForm) (domain.Identity, error) {
	body, contentType, err := profileMultipart(form)
	if err != nil {
		return domain.Identity{}, err
	}

	var resp envelope[userJSON]
	req := request{method: http.MethodPatch, path: "/user/update", body: body, contentType: contentType}
	if err := c.do(ctx, req, &resp); err != nil {
		return domain.Identity{}, fmt.Errorf("update profile: %w", err)
	}

	return resp.Data.toDomain(), nil
}

func (c *Client) ListPosts(ctx context.Context, page domain.PageRequest) (domain.PostPage, error) {
	return c.listPosts(ctx, "/post", page)
}

func (c *Client) ListUserPosts(ctx context.Context, username string, page domain.PageRequest) (domain.PostPage, error) {
	return c.listPosts(ctx, "/user/"+url.PathEscape(username)+"/posts", page)
}

func (c *Client) listPosts(ctx context.Context, path string, page domain.PageRequest) (domain.PostPage, error) {
	if err := page.Validate(); err != nil {
		return domain.PostPage{}, err
	}

	var resp envelope[[]postJSON]
	req := request{method: http.MethodGet, path: path, query: pageQuery(page), idempotent: true}
	if err := c.do(ctx, req, &resp); err != nil {
		return domain.PostPage{}, fmt.Errorf("list posts page %d: %w", page.Page, err)
	}

	meta := resp.Meta.toDomain()
	if meta.Page == 0 {
		meta.Page = page.Page
	}
	if meta.PerPage == 0 {
		meta.PerPage = page.PerPage
	}

	return domain.PostPage{Posts: postsToDomain(resp.Data), Meta: meta}, nil
}

func (c *Client) GetPost(ctx context.Context, id domain.PostID, page domain.PageRequest) (domain.PostDetail, error) {
	var resp envelope[postJSON]
	req := request{method: http.MethodGet, path: "/post/" + id.String(), query: pageQuery(page), idempotent: true}
	if err := c.do(ctx, req, &resp); err != nil {
		return domain.PostDetail{}, fmt.Errorf("get post %s: %w", id, err)
	}

	post := resp.Data.toDomain()
	return domain.PostDetail{Post: post, Replies: post.Replies}, nil
}

func (c *Client) CreatePost(ctx context.Context, text string, parentID *domain.PostID) error {
	payload := postRequest{Text: text}
	if parentID != nil {
		parent := int64(*parentID)
		payload.ParentID = &parent
	}

	req, err := jsonRequest(http.MethodPost, "/post", payload)
	if err != nil {
		return err
	}

	return c.do(ctx, req, nil)
}

func (c *Client) UpdatePost(ctx context.Context, id domain.PostID, text string) error {
	req, err := jsonRequest(http.MethodPut, "/post/"+id.String(), postRequest{Text: text})
	if err != nil {
		return err
	}

	return c.do(ctx, req, nil)
}

func (c *Client) DeletePost(ctx context.Context, id domain.PostID) error {
	return c.do(ctx, request{method: http.MethodDelete, path: "/post/" + id.String()}, nil)
}

func (c *Client) Like(ctx context.Context, id domain.PostID) error {
	return c.do(ctx, request{method: http.MethodPut, path: "/likes/" + id.String()}, nil)
}

func (c *Client) Unlike(ctx context.Context, id domain.PostID) error {
	return c.do(ctx, request{method: http.MethodDelete, path: "/likes/" + id.String()}, nil)
}

func profileMultipart(form domain.ProfileForm) ([]byte, string, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	if err := writer.WriteField("name", form.Name); err != nil {
		return nil, "", fmt.Errorf("write name field: %w", err)
	}
	if form.Bio != "" {
		if err := writer.WriteField("bio", form.Bio); err != nil {
			return nil, "", fmt.Errorf("write bio field: %w", err)
		}
	}
	if form.ImagePath != "" {
		if err := attachImage(writer, form.ImagePath); err != nil {
			return nil, "", err
		}
	}

	if err := writer.Close(); err != nil {
		return nil, "", fmt.Errorf("close multipart body: %w", err)
	}

	return buf.Bytes(), writer.FormDataContentType(), nil
}

func attachImage(writer *multipart.Writer, path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open profile image: %w", err)
	}
	defer file.Close()

	part, err := writer.CreateFormFile("image", filepath.Base(path))
	if err != nil {
		return fmt.Errorf("create image part: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return fmt.Errorf("copy profile image: %w", err)
	}

	return nil
}
