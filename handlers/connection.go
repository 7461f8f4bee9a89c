package handlers

import (
	"net/http"

	"github.com/kova98/redditgrow.api/data"
	"github.com/kova98/redditgrow.api/models"
)

type ConnectionHandler struct {
	store ConnectionStore
}

func NewConnectionHandler(store ConnectionStore) *ConnectionHandler {
	return &ConnectionHandler{store}
}

func (h *ConnectionHandler) GetConnection(w http.ResponseWriter, r *http.Request) Result {
	user := UserFrom(r.Context())

	conn, err := h.store.Get(r.Context(), user.ID)
	if err != nil {
		return InternalError(err, "get connection: ")
	}
	if conn == nil {
		return Ok(models.ConnectionResponse{Connected: false})
	}

	redditUser := connectionUser(*conn)
	return Ok(models.ConnectionResponse{Connected: true, User: &redditUser})
}

func (h *ConnectionHandler) DeleteConnection(w http.ResponseWriter, r *http.Request) Result {
	user := UserFrom(r.Context())

	if err := h.store.Clear(r.Context(), user.ID); err != nil {
		return InternalError(err, "clear connection: ")
	}

	return NoContent()
}

func connectionUser(conn data.RedditConnection) models.RedditUser {
	return models.RedditUser{
		ID:           conn.RedditID,
		Username:     conn.Username,
		Karma:        conn.Karma,
		LinkKarma:    conn.LinkKarma,
		CommentKarma: conn.CommentKarma,
		CreatedUTC:   conn.RedditCreatedUTC,
	}
}
