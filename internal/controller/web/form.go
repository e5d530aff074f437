package web

import (
	"strconv"

	"webby.dev/backend/internal/core/property"
)

// PropertyForm is the body of create and update. An empty name passes here and
// is skipped by the handlers.
type PropertyForm struct {
	Name string `form:"name" json:"name" validate:"max=255"`
}

type propertyView struct {
	ID      int64
	Name    string
	URL     string
	EditURL string
}

func toView(p *property.Model, _ int) propertyView {
	url := "/property/" + strconv.FormatInt(p.ID, 10)
	return propertyView{
		ID:      p.ID,
		Name:    p.Name,
		URL:     url,
		EditURL: url + "/edit",
	}
}
