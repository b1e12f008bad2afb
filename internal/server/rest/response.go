package rest

// ErrorResponse is the body of every failed request. Each error path emits
// one: a caught failure must never leave the client without a response.
type ErrorResponse struct {
	Error string `json:"error"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type TokenPairResponse struct {
	Message      string `json:"message"`
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

type AccessTokenResponse struct {
	AccessToken string `json:"accessToken"`
}

type EntryPayload struct {
	Date    string `json:"date"`
	Content string `json:"content"`
}

type EntriesResponse struct {
	Entries []EntryPayload `json:"entries"`
}

type EntryResponse struct {
	Entry EntryPayload `json:"entry"`
}
