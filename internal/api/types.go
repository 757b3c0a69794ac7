package api

import "encoding/json"

// wire types for the Fraude REST API

// Session is a conversation thread as reported by the server.
type Session struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	CreatedAt string `json:"created_at"`
	IsActive  bool   `json:"is_active,omitempty"`
	Username  string `json:"username,omitempty"` // admin listing only
}

// the service serializes session ids as JSON numbers (autoincrement
// primary keys); they decode to strings internally
func (s *Session) UnmarshalJSON(data []byte) error {
	type alias Session
	aux := struct {
		ID json.RawMessage `json:"id"`
		*alias
	}{alias: (*alias)(s)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	s.ID = decodeID(aux.ID)
	return nil
}

// accepts a number or a string id, normalized to a string; anything
// else reads as absent
func decodeID(raw json.RawMessage) string {
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String()
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}

	return ""
}

// Message is a stored chat message. Sender is "user" or "bot".
type Message struct {
	Sender  string `json:"sender"`
	Content string `json:"content"`
	Mode    string `json:"mode,omitempty"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token    string `json:"token"`
	Redirect string `json:"redirect,omitempty"`
}

type registerRequest struct {
	Email           string `json:"email"`
	Username        string `json:"username"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

type listSessionsResponse struct {
	Sessions []Session `json:"sessions"`
}

type createSessionRequest struct {
	Title string `json:"title"`
}

type createSessionResponse struct {
	SessionID string `json:"session_id"`
	Title     string `json:"title"`
}

func (r *createSessionResponse) UnmarshalJSON(data []byte) error {
	aux := struct {
		SessionID json.RawMessage `json:"session_id"`
		Title     string          `json:"title"`
	}{}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	r.SessionID = decodeID(aux.SessionID)
	r.Title = aux.Title
	return nil
}

type listMessagesResponse struct {
	Messages []Message `json:"messages"`
}

type sendMessageRequest struct {
	Content   string `json:"content"`
	SessionID string `json:"session_id"`
	Mode      string `json:"mode,omitempty"`
}

// SendResult is the reply to a message send.
type SendResult struct {
	Reply        string `json:"chatbot_reply"`
	SessionTitle string `json:"session_title,omitempty"`
	Mode         string `json:"mode,omitempty"`
}

// AdminPage is one page of the admin session listing.
type AdminPage struct {
	Sessions   []Session `json:"sessions"`
	Page       int       `json:"page"`
	TotalPages int       `json:"total_pages"`
}

type errorResponse struct {
	Error string `json:"error"`
}
