package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"cinetix/model"
)

const (
	appDir        = "cinetix"
	movieCacheTTL = 5 * time.Minute
)

type cacheEnvelope[T any] struct {
	UpdatedAt time.Time `json:"updated_at"`
	Data      T         `json:"data"`
}

type sessionFile struct {
	Token string `json:"token"`
}

type configFile struct {
	ApiUrl string `json:"api_url"`
}

// LoadToken returns the persisted bearer token, or "" when none is stored.
func LoadToken() (string, error) {
	path, err := configPath("session.json")
	if err != nil {
		return "", err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", err
	}
	var session sessionFile
	if err := json.Unmarshal(data, &session); err != nil {
		return "", errors.New("invalid session file format")
	}
	return session.Token, nil
}

func SaveToken(token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return errors.New("token is required")
	}
	path, err := configPath("session.json")
	if err != nil {
		return err
	}
	return writeJSON(path, sessionFile{Token: token})
}

// ClearToken removes the persisted token. Missing files are not an error so
// logout stays unconditional.
func ClearToken() error {
	path, err := configPath("session.json")
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// LoadBaseURL returns the persisted backend base URL override, or "" when
// the default should be used.
func LoadBaseURL() (string, error) {
	path, err := configPath("config.json")
	if err != nil {
		return "", err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", err
	}
	var config configFile
	if err := json.Unmarshal(data, &config); err != nil {
		return "", errors.New("invalid config file format")
	}
	return config.ApiUrl, nil
}

func SaveBaseURL(apiURL string) error {
	apiURL = strings.TrimSpace(apiURL)
	if apiURL == "" {
		return errors.New("api url is required")
	}
	path, err := configPath("config.json")
	if err != nil {
		return err
	}
	return writeJSON(path, configFile{ApiUrl: apiURL})
}

// LoadMoviePage returns a cached catalog page and whether it is still fresh.
func LoadMoviePage(page int) (model.MovieList, bool, error) {
	path, err := cachePath(fmt.Sprintf("movies_p%d.json", page))
	if err != nil {
		return model.MovieList{}, false, err
	}
	cache, err := loadCache[model.MovieList](path)
	if err != nil {
		return model.MovieList{}, false, err
	}
	if cache.UpdatedAt.IsZero() {
		return cache.Data, false, nil
	}
	return cache.Data, time.Since(cache.UpdatedAt) <= movieCacheTTL, nil
}

func SaveMoviePage(page int, list model.MovieList) error {
	path, err := cachePath(fmt.Sprintf("movies_p%d.json", page))
	if err != nil {
		return err
	}
	return saveCache(path, list)
}

// PatchCachedMovie applies a local write to the cached catalog pages so the
// list reflects the change before the next full fetch reconciles it. The
// patch is eventually consistent, not authoritative: it touches only pages
// already on disk and leaves their timestamps alone so the TTL still expires.
func PatchCachedMovie(movie model.Movie) error {
	return patchMoviePages(func(list model.MovieList) model.MovieList {
		for i, existing := range list.Movies {
			if existing.Id == movie.Id {
				list.Movies[i] = movie
				return list
			}
		}
		list.Movies = append([]model.Movie{movie}, list.Movies...)
		return list
	})
}

// DropCachedMovie removes a deleted movie from any cached page.
func DropCachedMovie(id int) error {
	return patchMoviePages(func(list model.MovieList) model.MovieList {
		kept := list.Movies[:0]
		for _, existing := range list.Movies {
			if existing.Id != id {
				kept = append(kept, existing)
			}
		}
		list.Movies = kept
		return list
	})
}

func patchMoviePages(apply func(model.MovieList) model.MovieList) error {
	dir, err := cacheDir()
	if err != nil {
		return err
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasPrefix(name, "movies_p") || !strings.HasSuffix(name, ".json") {
			continue
		}
		path := filepath.Join(dir, name)
		cache, err := loadCache[model.MovieList](path)
		if err != nil {
			continue
		}
		cache.Data = apply(cache.Data)
		payload, err := json.MarshalIndent(cache, "", "  ")
		if err != nil {
			return err
		}
		if err := os.WriteFile(path, payload, 0o644); err != nil {
			return err
		}
	}
	return nil
}

func loadCache[T any](path string) (cacheEnvelope[T], error) {
	var cache cacheEnvelope[T]
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cache, nil
		}
		return cache, err
	}
	if err := json.Unmarshal(data, &cache); err != nil {
		return cache, err
	}
	return cache, nil
}

func saveCache[T any](path string, data T) error {
	cache := cacheEnvelope[T]{
		UpdatedAt: time.Now(),
		Data:      data,
	}
	return writeJSON(path, cache)
}

func writeJSON(path string, value any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	payload, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, payload, 0o644)
}

func configPath(name string) (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, appDir, name), nil
}

func cacheDir() (string, error) {
	dir, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, appDir), nil
}

func cachePath(name string) (string, error) {
	dir, err := cacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, name), nil
}
