package store

import (
	"testing"

	"cinetix/model"
)

func setTestDirs(t *testing.T) {
	t.Helper()
	root := t.TempDir()
	t.Setenv("HOME", root)
	t.Setenv("XDG_CONFIG_HOME", root)
	t.Setenv("XDG_CACHE_HOME", root)
}

func TestToken_RoundTrip(t *testing.T) {
	setTestDirs(t)

	token, err := LoadToken()
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if token != "" {
		t.Fatalf("expected no token, got %q", token)
	}

	if err := SaveToken("abc.def.ghi"); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	token, err = LoadToken()
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if token != "abc.def.ghi" {
		t.Fatalf("unexpected token %q", token)
	}

	if err := ClearToken(); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	token, err = LoadToken()
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if token != "" {
		t.Fatalf("expected token cleared, got %q", token)
	}

	if err := ClearToken(); err != nil {
		t.Fatalf("expected nil error on repeated clear, got %v", err)
	}
}

func TestSaveToken_Empty(t *testing.T) {
	setTestDirs(t)
	if err := SaveToken("  "); err == nil {
		t.Fatal("expected error for empty token")
	}
}

func TestBaseURL_RoundTrip(t *testing.T) {
	setTestDirs(t)

	url, err := LoadBaseURL()
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if url != "" {
		t.Fatalf("expected no override, got %q", url)
	}

	if err := SaveBaseURL("https://api.example.com"); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	url, err = LoadBaseURL()
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if url != "https://api.example.com" {
		t.Fatalf("unexpected url %q", url)
	}
}

func TestPatchCachedMovie_UpsertAndDrop(t *testing.T) {
	setTestDirs(t)

	list := model.MovieList{
		Movies:      []model.Movie{{Id: 1, Title: "Alien"}, {Id: 2, Title: "Blade Runner"}},
		TotalPages:  1,
		CurrentPage: 1,
	}
	if err := SaveMoviePage(1, list); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	if err := PatchCachedMovie(model.Movie{Id: 2, Title: "Blade Runner (Final Cut)"}); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if err := PatchCachedMovie(model.Movie{Id: 3, Title: "Contact"}); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	cached, fresh, err := LoadMoviePage(1)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if !fresh {
		t.Fatal("expected cache to still be fresh")
	}
	if len(cached.Movies) != 3 {
		t.Fatalf("expected 3 movies, got %d", len(cached.Movies))
	}
	if cached.Movies[0].Id != 3 {
		t.Fatalf("expected new movie prepended, got %+v", cached.Movies)
	}
	var updated string
	for _, movie := range cached.Movies {
		if movie.Id == 2 {
			updated = movie.Title
		}
	}
	if updated != "Blade Runner (Final Cut)" {
		t.Fatalf("expected patched title, got %q", updated)
	}

	if err := DropCachedMovie(1); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	cached, _, err = LoadMoviePage(1)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	for _, movie := range cached.Movies {
		if movie.Id == 1 {
			t.Fatalf("expected movie 1 dropped, got %+v", cached.Movies)
		}
	}
}

func TestLoadMoviePage_MissingIsStale(t *testing.T) {
	setTestDirs(t)

	cached, fresh, err := LoadMoviePage(4)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if fresh {
		t.Fatal("expected missing cache to be stale")
	}
	if len(cached.Movies) != 0 {
		t.Fatalf("expected empty page, got %+v", cached)
	}
}
