package main

import (
	"fmt"
	"html/template"
	"net/http"

	"github.com/donseba/go-htmx"
	"github.com/parkdui/LG-Thingo/internal/characters"
	"github.com/parkdui/LG-Thingo/internal/conversation"
	"github.com/parkdui/LG-Thingo/internal/errors"
	"github.com/parkdui/LG-Thingo/internal/models"
	"github.com/parkdui/LG-Thingo/internal/ssr"
)

// suggestedQuestions are the canned prompts offered on the chat view. They go
// through the same message operation as typed input.
var suggestedQuestions = []string{
	"네가 선호하는 공간은?",
	"어떤 무드가 좋아?",
	"어떤 주인을 원해?",
}

type renderedMessage struct {
	Role string
	HTML template.HTML
}

type chatTemplateData struct {
	BaseTemplateData

	CharacterID        string
	Nickname           string
	ImagePath          string
	Messages           []renderedMessage
	RemainingTurns     int
	LimitReached       bool
	CanFinish          bool
	SuggestedQuestions []string
}

func (app *application) chatTemplateData(r *http.Request, sess *conversation.Session) (chatTemplateData, error) {
	profile := app.catalog.Resolve(sess.CharacterID)

	messages := make([]renderedMessage, 0, len(sess.Transcript))
	for _, turn := range sess.Transcript {
		var html template.HTML
		if turn.Role == models.RoleAssistant {
			var err error
			if html, err = ssr.RenderMessage(turn.Content); err != nil {
				return chatTemplateData{}, errors.Wrap(err, "render assistant message")
			}
		} else {
			html = template.HTML(template.HTMLEscapeString(turn.Content)) //nolint:gosec // escaped right above.
		}
		messages = append(messages, renderedMessage{Role: string(turn.Role), HTML: html})
	}

	return chatTemplateData{
		BaseTemplateData:   newBaseTemplateData(r),
		CharacterID:        sess.CharacterID,
		Nickname:           profile.Nickname,
		ImagePath:          characters.ImagePath(profile.ProductGroup),
		Messages:           messages,
		RemainingTurns:     sess.RemainingTurns(),
		LimitReached:       sess.LimitReached(),
		CanFinish:          sess.CanRequestTransition(),
		SuggestedQuestions: suggestedQuestions,
	}, nil
}

// chatView shows the conversation with a character, seeding a fresh session
// with the character's greeting on the first visit.
func (app *application) chatView(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	cardID := r.PathValue("cardId")

	sess, err := app.transcripts.LoadLive(ctx, cardID)
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	if sess == nil {
		sess = conversation.New(app.catalog.Resolve(cardID))
		if err = app.transcripts.SaveLive(ctx, sess); err != nil {
			app.serverError(w, r, err)
			return
		}
	}

	data, err := app.chatTemplateData(r, sess)
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	app.render(w, r, http.StatusOK, "chat", data)
}

// chatMessage accepts one user turn, obtains the assistant reply, and brings
// the conversation forward. When the reply spends the turn budget the
// transcript is handed off to the result stage right away.
func (app *application) chatMessage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	cardID := r.PathValue("cardId")
	h := app.htmx.NewHandler(w, r)

	if err := r.ParseForm(); err != nil {
		app.clientError(w, r, http.StatusBadRequest)
		return
	}
	message := r.PostForm.Get("message")

	sess, err := app.transcripts.LoadLive(ctx, cardID)
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	if sess == nil {
		sess = conversation.New(app.catalog.Resolve(cardID))
	}

	if err = sess.AppendUserTurn(message); err != nil {
		if errors.Is(err, conversation.ErrRejectedInput) {
			// The input was dropped and the session is unchanged, so show
			// the conversation as it stands.
			app.renderConversation(w, r, h, sess)
			return
		}
		app.serverError(w, r, err)
		return
	}

	text := app.replies.ReplyOrFallback(ctx, cardID, sess.Transcript)
	sess.ReceiveAssistantTurn(text)

	if sess.LimitReached() {
		if err = app.handOffToResult(r, sess); err != nil {
			app.serverError(w, r, err)
			return
		}
		app.redirect(w, r, h, fmt.Sprintf("/chat/%s/result", cardID))
		return
	}

	if err = app.transcripts.SaveLive(ctx, sess); err != nil {
		app.serverError(w, r, err)
		return
	}
	app.renderConversation(w, r, h, sess)
}

// chatFinish hands the transcript off to the result stage on the user's
// request. Below the engagement floor the request is refused.
func (app *application) chatFinish(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	cardID := r.PathValue("cardId")
	h := app.htmx.NewHandler(w, r)

	sess, err := app.transcripts.LoadLive(ctx, cardID)
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	if sess == nil || !sess.CanRequestTransition() {
		app.clientError(w, r, http.StatusBadRequest)
		return
	}

	if err = app.handOffToResult(r, sess); err != nil {
		app.serverError(w, r, err)
		return
	}
	app.redirect(w, r, h, fmt.Sprintf("/chat/%s/result", cardID))
}

// handOffToResult moves the session to its terminal state and persists the
// transcript for the result stage. The live session is gone afterwards, so a
// later visit to the chat view starts over.
func (app *application) handOffToResult(r *http.Request, sess *conversation.Session) error {
	ctx := r.Context()
	if err := sess.RequestTransition(); err != nil {
		return errors.Wrap(err, "request transition")
	}
	if err := app.transcripts.SaveFinished(ctx, sess.CharacterID, sess.Transcript); err != nil {
		return errors.Wrap(err, "save finished transcript")
	}
	app.transcripts.DropLive(ctx, sess.CharacterID)
	return nil
}

// renderConversation swaps the conversation fragment for htmx requests and
// falls back to the redirect-after-post pattern for plain form submissions.
func (app *application) renderConversation(w http.ResponseWriter, r *http.Request, h *htmx.Handler, sess *conversation.Session) {
	if !h.IsHxRequest() {
		http.Redirect(w, r, "/chat/"+sess.CharacterID, http.StatusSeeOther)
		return
	}
	data, err := app.chatTemplateData(r, sess)
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	app.renderTemplate(w, r, http.StatusOK, "chat", "messages", data)
}

func (app *application) redirect(w http.ResponseWriter, r *http.Request, h *htmx.Handler, path string) {
	if h.IsHxRequest() {
		h.Redirect(path)
		h.WriteHeader(http.StatusOK)
		return
	}
	http.Redirect(w, r, path, http.StatusSeeOther)
}
