package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"

	"cinetix/model"
)

// MovieParams carries the writable movie fields for create and update.
type MovieParams struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	PosterUrl   string `json:"poster_url"`
	Genre       string `json:"genre"`
	ReleaseDate string `json:"release_date"`
}

// ListMovies fetches one catalog page. The backend has shipped both a bare
// array and a paginated envelope for this endpoint; the result is always the
// canonical envelope shape.
func (c *Client) ListMovies(ctx context.Context, page int, perPage int) (model.MovieList, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 10
	}
	path := fmt.Sprintf("/movies?page=%d&per_page=%d", page, perPage)

	var raw json.RawMessage
	if err := c.do(ctx, http.MethodGet, path, nil, &raw); err != nil {
		return model.MovieList{}, err
	}
	return normalizeMovieList(raw)
}

// SearchMovies queries by genre and/or title. Both filters are optional.
func (c *Client) SearchMovies(ctx context.Context, genre string, title string) ([]model.Movie, error) {
	params := url.Values{}
	if genre != "" {
		params.Set("genre", genre)
	}
	if title != "" {
		params.Set("title", title)
	}
	path := "/movies/search"
	if encoded := params.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var raw json.RawMessage
	if err := c.do(ctx, http.MethodGet, path, nil, &raw); err != nil {
		return nil, err
	}
	list, err := normalizeMovieList(raw)
	if err != nil {
		return nil, err
	}
	return list.Movies, nil
}

func (c *Client) GetMovie(ctx context.Context, id int) (model.Movie, error) {
	if id <= 0 {
		return model.Movie{}, errors.New("movie id is required")
	}
	var movie model.Movie
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/movies/%d", id), nil, &movie); err != nil {
		return model.Movie{}, err
	}
	return movie, nil
}

func (c *Client) CreateMovie(ctx context.Context, params MovieParams) (model.Movie, error) {
	var movie model.Movie
	if err := c.do(ctx, http.MethodPost, "/movies", params, &movie); err != nil {
		return model.Movie{}, err
	}
	return movie, nil
}

func (c *Client) UpdateMovie(ctx context.Context, id int, params MovieParams) (model.Movie, error) {
	if id <= 0 {
		return model.Movie{}, errors.New("movie id is required")
	}
	var movie model.Movie
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/movies/%d", id), params, &movie); err != nil {
		return model.Movie{}, err
	}
	return movie, nil
}

func (c *Client) DeleteMovie(ctx context.Context, id int) error {
	if id <= 0 {
		return errors.New("movie id is required")
	}
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/movies/%d", id), nil, nil)
}

// UploadPoster sends a poster image as multipart form data and returns the
// reference URL the backend stored it under.
func (c *Client) UploadPoster(ctx context.Context, filename string, content io.Reader) (string, error) {
	if filename == "" {
		return "", errors.New("poster filename is required")
	}

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return "", fmt.Errorf("create multipart form: %w", err)
	}
	if _, err := io.Copy(part, content); err != nil {
		return "", fmt.Errorf("read poster content: %w", err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("finish multipart form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/upload-poster", &buf)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	var res struct {
		Url string `json:"url"`
	}
	if err := c.send(req, &res); err != nil {
		return "", err
	}
	if res.Url == "" {
		return "", errors.New("upload response missing poster url")
	}
	return res.Url, nil
}

func normalizeMovieList(raw json.RawMessage) (model.MovieList, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return model.MovieList{TotalPages: 1, CurrentPage: 1}, nil
	}

	if trimmed[0] == '[' {
		var movies []model.Movie
		if err := json.Unmarshal(trimmed, &movies); err != nil {
			return model.MovieList{}, fmt.Errorf("decode movie list: %w", err)
		}
		return model.MovieList{Movies: movies, TotalPages: 1, CurrentPage: 1}, nil
	}

	var list model.MovieList
	if err := json.Unmarshal(trimmed, &list); err != nil {
		return model.MovieList{}, fmt.Errorf("decode movie list: %w", err)
	}
	if list.TotalPages < 1 {
		list.TotalPages = 1
	}
	if list.CurrentPage < 1 {
		list.CurrentPage = 1
	}
	return list, nil
}
