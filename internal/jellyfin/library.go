package jellyfin

import (
	"fmt"

	jellyfin "github.com/sj14/jellyfin-go/api"
)

// MediaItem is the slice of a Jellyfin item a panel is built from.
type MediaItem struct {
	ID       string
	Name     string
	Type     string // Movie, Series, CollectionFolder, ...
	Year     int
	Overview string
}

// GetViews returns the user's media libraries (Movies, TV Shows, Music, etc.)
func (c *Client) GetViews() ([]MediaItem, error) {
	result, resp, err := c.api.UserViewsAPI.GetUserViews(c.ctx).UserId(c.userID).Execute()
	if err != nil {
		return nil, fmt.Errorf("get views: %w (status: %s)", err, respStatus(resp))
	}
	return convertItems(result.Items), nil
}

// GetLatestMedia returns the latest items in a library.
func (c *Client) GetLatestMedia(parentID string, limit int) ([]MediaItem, error) {
	req := c.api.UserLibraryAPI.GetLatestMedia(c.ctx).
		UserId(c.userID).
		Limit(int32(limit)).
		Fields([]jellyfin.ItemFields{jellyfin.ITEMFIELDS_OVERVIEW}).
		EnableImageTypes([]jellyfin.ImageType{jellyfin.IMAGETYPE_PRIMARY}).
		ImageTypeLimit(1)
	if parentID != "" {
		req = req.ParentId(parentID)
	}
	items, resp, err := req.Execute()
	if err != nil {
		return nil, fmt.Errorf("get latest: %w (status: %s)", err, respStatus(resp))
	}
	return convertItems(items), nil
}

func convertItems(items []jellyfin.BaseItemDto) []MediaItem {
	result := make([]MediaItem, 0, len(items))
	for i := range items {
		result = append(result, convertBaseItemDto(&items[i]))
	}
	return result
}

func convertBaseItemDto(item *jellyfin.BaseItemDto) MediaItem {
	mi := MediaItem{}
	if item.Id != nil {
		mi.ID = *item.Id
	}
	mi.Name = item.GetName()
	if item.Type != nil {
		mi.Type = string(*item.Type)
	}
	mi.Year = int(item.GetProductionYear())
	mi.Overview = item.GetOverview()
	return mi
}
