package jellyfin

import (
	"net/url"
	"strings"
	"testing"
)

func TestNormalizeURL(t *testing.T) {
	cases := map[string]string{
		"media.local:8096":           "https://media.local:8096",
		" http://media.local:8096/ ": "http://media.local:8096",
		"https://jf.example.org//":   "https://jf.example.org",
	}
	for in, want := range cases {
		if got := normalizeURL(in); got != want {
			t.Fatalf("normalizeURL(%q)=%q want %q", in, got, want)
		}
	}
}

func TestPosterURL(t *testing.T) {
	c := NewClient("http://media.local:8096/")
	got := c.GetPosterURL("abc def")
	u, err := url.Parse(got)
	if err != nil {
		t.Fatalf("parse %q: %v", got, err)
	}
	if u.Path != "/Items/abc def/Images/Primary" {
		t.Fatalf("path=%q", u.Path)
	}
	if !strings.Contains(got, "/Items/abc%20def/") {
		t.Fatalf("item id not escaped: %q", got)
	}
	q := u.Query()
	if q.Get("maxWidth") != "280" || q.Get("maxHeight") != "420" || q.Get("quality") != "90" {
		t.Fatalf("query=%v", q)
	}
}

func TestImageURLOmitsZeroBounds(t *testing.T) {
	c := NewClient("https://jf.example.org")
	got := c.GetImageURL("x", ImageBackdrop, 0, 0)
	if got != "https://jf.example.org/Items/x/Images/Backdrop?quality=90" {
		t.Fatalf("got %q", got)
	}
}

func TestSetToken(t *testing.T) {
	c := NewClient("jf.example.org")
	c.SetToken("tok", "user-1")
	if c.Token() != "tok" || c.UserID() != "user-1" {
		t.Fatalf("token=%q user=%q", c.Token(), c.UserID())
	}
	if c.ServerURL() != "https://jf.example.org" {
		t.Fatalf("server=%q", c.ServerURL())
	}
	if !strings.Contains(authHeader(), `Client="PanelReel"`) {
		t.Fatalf("auth header %q", authHeader())
	}
}
