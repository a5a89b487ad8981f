package panels

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"

	"github.com/depeter/panelreel/internal/config"
	"github.com/depeter/panelreel/internal/jellyfin"
)

// Panel is one carousel card. Label is shown as-is; ImageURL is optional
// artwork.
type Panel struct {
	ID       string
	Label    string
	Detail   string
	ImageURL string
}

// ErrNoPanels is returned by sources that produced nothing to show.
var ErrNoPanels = errors.New("no panels")

// Source produces the panel list once at start-up.
type Source interface {
	Load(ctx context.Context) ([]Panel, error)
	Name() string
}

// Static serves a fixed list of labels.
type Static struct {
	Labels []string
}

func (s Static) Name() string { return "static" }

func (s Static) Load(ctx context.Context) ([]Panel, error) {
	if len(s.Labels) == 0 {
		return nil, ErrNoPanels
	}
	out := make([]Panel, len(s.Labels))
	for i, l := range s.Labels {
		out[i] = Panel{ID: strconv.Itoa(i), Label: l}
	}
	return out, nil
}

// Library is the part of the Jellyfin client the source uses.
type Library interface {
	GetViews() ([]jellyfin.MediaItem, error)
	GetLatestMedia(parentID string, limit int) ([]jellyfin.MediaItem, error)
	GetPosterURL(itemID string) string
}

// Jellyfin turns the latest items of one library into panels.
type Jellyfin struct {
	Client  Library
	Library string // view name; empty picks the first view
	Limit   int
}

func (j Jellyfin) Name() string { return "jellyfin" }

func (j Jellyfin) Load(ctx context.Context) ([]Panel, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	views, err := j.Client.GetViews()
	if err != nil {
		return nil, err
	}
	parentID, err := pickView(views, j.Library)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	limit := j.Limit
	if limit <= 0 {
		limit = 20
	}
	items, err := j.Client.GetLatestMedia(parentID, limit)
	if err != nil {
		return nil, err
	}
	out := make([]Panel, 0, len(items))
	for _, it := range items {
		p := Panel{ID: it.ID, Label: it.Name, Detail: it.Overview}
		if it.Year > 0 {
			p.Label = fmt.Sprintf("%s (%d)", it.Name, it.Year)
		}
		if it.ID != "" {
			p.ImageURL = j.Client.GetPosterURL(it.ID)
		}
		out = append(out, p)
	}
	if len(out) == 0 {
		return nil, ErrNoPanels
	}
	return out, nil
}

func pickView(views []jellyfin.MediaItem, name string) (string, error) {
	if len(views) == 0 {
		return "", fmt.Errorf("jellyfin: %w: server has no libraries", ErrNoPanels)
	}
	if name == "" {
		return views[0].ID, nil
	}
	for _, v := range views {
		if v.Name == name {
			return v.ID, nil
		}
	}
	return "", fmt.Errorf("jellyfin: library %q not found", name)
}

// Fallback tries Primary and falls back to Secondary when it fails.
type Fallback struct {
	Primary   Source
	Secondary Source
}

func (f Fallback) Name() string { return f.Primary.Name() }

func (f Fallback) Load(ctx context.Context) ([]Panel, error) {
	ps, err := f.Primary.Load(ctx)
	if err == nil {
		return ps, nil
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	log.Printf("Panel source %s failed, using %s: %v", f.Primary.Name(), f.Secondary.Name(), err)
	return f.Secondary.Load(ctx)
}

// FromConfig builds the source described by cfg. Jellyfin sources always
// fall back to the configured labels.
func FromConfig(cfg *config.Config) Source {
	static := Static{Labels: cfg.Panels.Labels}
	if cfg.Panels.Source != config.SourceJellyfin {
		return static
	}
	client := jellyfin.NewClient(cfg.Jellyfin.URL)
	client.SetToken(cfg.Jellyfin.Token, cfg.Jellyfin.UserID)
	return Fallback{
		Primary:   Jellyfin{Client: client, Library: cfg.Panels.Library, Limit: cfg.Panels.Limit},
		Secondary: static,
	}
}

// Labels extracts the display strings.
func Labels(ps []Panel) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.Label
	}
	return out
}
