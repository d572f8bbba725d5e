package main

import (
	"net/http"

	"github.com/parkdui/LG-Thingo/internal/characters"
	"github.com/parkdui/LG-Thingo/internal/models"
	"github.com/parkdui/LG-Thingo/internal/verdict"
)

type resultTemplateData struct {
	BaseTemplateData

	IsSuccess    bool
	Message      string
	VideoPath    string
	ProductGroup models.ProductGroup
}

// result grades the handed-off transcript and shows the adoption verdict.
// Arriving here without a transcript grades an empty one, which fails.
func (app *application) result(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	cardID := r.PathValue("cardId")

	transcript, err := app.transcripts.LoadFinished(ctx, cardID)
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	outcome := verdict.Classify(transcript)
	group := app.catalog.ProductGroupOf(cardID)

	data := resultTemplateData{
		BaseTemplateData: newBaseTemplateData(r),
		IsSuccess:        outcome.IsSuccess,
		Message:          outcome.Message,
		VideoPath:        characters.VideoPath(group, outcome.IsSuccess),
		ProductGroup:     group,
	}

	app.render(w, r, http.StatusOK, "result", data)
}
