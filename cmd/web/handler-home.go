package main

import (
	"net/http"

	"github.com/parkdui/LG-Thingo/internal/characters"
	"github.com/parkdui/LG-Thingo/internal/models"
)

type groupCard struct {
	Group       models.ProductGroup
	DisplayName string
	ImagePath   string
}

type homeTemplateData struct {
	BaseTemplateData

	Groups []groupCard
}

func (app *application) home(w http.ResponseWriter, r *http.Request) {
	groups := app.catalog.Groups()
	cards := make([]groupCard, 0, len(groups))
	for _, group := range groups {
		cards = append(cards, groupCard{
			Group:       group,
			DisplayName: characters.GroupDisplayName(group),
			ImagePath:   characters.ImagePath(group),
		})
	}

	data := homeTemplateData{
		BaseTemplateData: newBaseTemplateData(r),
		Groups:           cards,
	}

	app.render(w, r, http.StatusOK, "home", data)
}
