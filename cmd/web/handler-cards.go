package main

import (
	"net/http"

	"github.com/parkdui/LG-Thingo/internal/characters"
	"github.com/parkdui/LG-Thingo/internal/models"
)

type characterCard struct {
	ID        string
	Nickname  string
	ImagePath string
}

type cardsTemplateData struct {
	BaseTemplateData

	DisplayName string
	Characters  []characterCard
}

func (app *application) cards(w http.ResponseWriter, r *http.Request) {
	group := models.ProductGroup(r.PathValue("productGroup"))
	profiles := app.catalog.Group(group)
	if len(profiles) == 0 {
		app.notFound(w, r)
		return
	}

	cards := make([]characterCard, 0, len(profiles))
	for _, profile := range profiles {
		cards = append(cards, characterCard{
			ID:        profile.ID,
			Nickname:  profile.Nickname,
			ImagePath: characters.ImagePath(group),
		})
	}

	data := cardsTemplateData{
		BaseTemplateData: newBaseTemplateData(r),
		DisplayName:      characters.GroupDisplayName(group),
		Characters:       cards,
	}

	app.render(w, r, http.StatusOK, "cards", data)
}
