package panels

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/depeter/panelreel/internal/config"
	"github.com/depeter/panelreel/internal/jellyfin"
)

type fakeLibrary struct {
	views    []jellyfin.MediaItem
	latest   map[string][]jellyfin.MediaItem
	viewsErr error
	asked    string
	limit    int
}

func (f *fakeLibrary) GetViews() ([]jellyfin.MediaItem, error) { return f.views, f.viewsErr }

func (f *fakeLibrary) GetLatestMedia(parentID string, limit int) ([]jellyfin.MediaItem, error) {
	f.asked, f.limit = parentID, limit
	return f.latest[parentID], nil
}

func (f *fakeLibrary) GetPosterURL(id string) string { return "http://img/" + id }

func TestStaticLoad(t *testing.T) {
	ps, err := Static{Labels: config.DefaultLabels}.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(ps) != 5 || ps[0].Label != "The dreamer" || ps[4].Label != "The content creator" {
		t.Fatalf("panels=%v", Labels(ps))
	}
	if ps[3].ID != "3" {
		t.Fatalf("id=%q want 3", ps[3].ID)
	}
	if _, err := (Static{}).Load(context.Background()); !errors.Is(err, ErrNoPanels) {
		t.Fatalf("empty static err=%v", err)
	}
}

func TestJellyfinPicksNamedLibrary(t *testing.T) {
	lib := &fakeLibrary{
		views: []jellyfin.MediaItem{{ID: "m", Name: "Movies"}, {ID: "s", Name: "Shows"}},
		latest: map[string][]jellyfin.MediaItem{
			"s": {{ID: "1", Name: "Severance", Year: 2022}, {ID: "2", Name: "Andor"}},
		},
	}
	ps, err := Jellyfin{Client: lib, Library: "Shows", Limit: 7}.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if lib.asked != "s" || lib.limit != 7 {
		t.Fatalf("asked=%q limit=%d", lib.asked, lib.limit)
	}
	if len(ps) != 2 || ps[0].Label != "Severance (2022)" || ps[1].Label != "Andor" {
		t.Fatalf("labels=%v", Labels(ps))
	}
	if ps[0].ImageURL != "http://img/1" {
		t.Fatalf("image=%q", ps[0].ImageURL)
	}
}

func TestJellyfinDefaultsToFirstLibrary(t *testing.T) {
	lib := &fakeLibrary{
		views:  []jellyfin.MediaItem{{ID: "m", Name: "Movies"}},
		latest: map[string][]jellyfin.MediaItem{"m": {{ID: "9", Name: "Heat"}}},
	}
	if _, err := (Jellyfin{Client: lib}).Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if lib.asked != "m" || lib.limit != 20 {
		t.Fatalf("asked=%q limit=%d", lib.asked, lib.limit)
	}
}

func TestJellyfinErrors(t *testing.T) {
	lib := &fakeLibrary{views: []jellyfin.MediaItem{{ID: "m", Name: "Movies"}}}
	_, err := Jellyfin{Client: lib, Library: "Music"}.Load(context.Background())
	if err == nil || !strings.Contains(err.Error(), `"Music"`) {
		t.Fatalf("missing library err=%v", err)
	}
	if _, err := (Jellyfin{Client: lib}).Load(context.Background()); !errors.Is(err, ErrNoPanels) {
		t.Fatalf("empty library err=%v", err)
	}
	if _, err := (Jellyfin{Client: &fakeLibrary{}}).Load(context.Background()); !errors.Is(err, ErrNoPanels) {
		t.Fatalf("no views err=%v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := (Jellyfin{Client: lib}).Load(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("cancelled err=%v", err)
	}
}

func TestFallback(t *testing.T) {
	down := &fakeLibrary{viewsErr: errors.New("connection refused")}
	src := Fallback{
		Primary:   Jellyfin{Client: down},
		Secondary: Static{Labels: []string{"a", "b"}},
	}
	ps, err := src.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := strings.Join(Labels(ps), ","); got != "a,b" {
		t.Fatalf("labels=%s", got)
	}
}

func TestFromConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	if _, ok := FromConfig(cfg).(Static); !ok {
		t.Fatalf("default source is not static")
	}
	cfg.Panels.Source = config.SourceJellyfin
	cfg.Jellyfin.URL = "jf.example.org"
	fb, ok := FromConfig(cfg).(Fallback)
	if !ok {
		t.Fatalf("jellyfin source not wrapped in a fallback")
	}
	if fb.Name() != "jellyfin" || fb.Secondary.Name() != "static" {
		t.Fatalf("names %s/%s", fb.Name(), fb.Secondary.Name())
	}
}
