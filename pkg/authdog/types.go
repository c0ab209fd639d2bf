package authdog

import (
	"encoding/json"
	"time"
)

// Payload is the decoded user-info body, returned exactly as the server sent it.
type Payload map[string]any

// Decode projects the payload onto v using its JSON field tags.
func (p Payload) Decode(v any) error {
	raw, err := json.Marshal(p)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, v)
}

// UserInfoResponse is the typed form of a successful /v1/userinfo reply.
type UserInfoResponse struct {
	Meta    Meta    `json:"meta"`
	Session Session `json:"session"`
	User    User    `json:"user"`
}

// Meta carries the API status code and message of the reply.
type Meta struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Session describes the lifetime left on the token's session.
type Session struct {
	RemainingSeconds int `json:"remainingSeconds"`
}

// User is the authenticated identity. Optional attributes are pointers.
type User struct {
	ID                string         `json:"id"`
	ExternalID        string         `json:"externalId"`
	UserName          string         `json:"userName"`
	DisplayName       string         `json:"displayName"`
	NickName          *string        `json:"nickName"`
	ProfileURL        *string        `json:"profileUrl"`
	Title             *string        `json:"title"`
	UserType          *string        `json:"userType"`
	PreferredLanguage *string        `json:"preferredLanguage"`
	Locale            string         `json:"locale"`
	Timezone          *string        `json:"timezone"`
	Active            bool           `json:"active"`
	Names             Names          `json:"names"`
	Photos            []Photo        `json:"photos"`
	PhoneNumbers      []any          `json:"phoneNumbers"`
	Addresses         []any          `json:"addresses"`
	Emails            []Email        `json:"emails"`
	Verifications     []Verification `json:"verifications"`
	Provider          string         `json:"provider"`
	CreatedAt         *time.Time     `json:"createdAt"`
	UpdatedAt         string         `json:"updatedAt"`
	EnvironmentID     string         `json:"environmentId"`
}

// Names holds the structured parts of the user's name.
type Names struct {
	ID              string  `json:"id"`
	Formatted       *string `json:"formatted"`
	FamilyName      string  `json:"familyName"`
	GivenName       string  `json:"givenName"`
	MiddleName      *string `json:"middleName"`
	HonorificPrefix *string `json:"honorificPrefix"`
	HonorificSuffix *string `json:"honorificSuffix"`
}

// Photo is a profile picture reference.
type Photo struct {
	ID    string `json:"id"`
	Value string `json:"value"`
	Type  string `json:"type"`
}

// Email is an address attached to the user; Type is optional.
type Email struct {
	ID    string  `json:"id"`
	Value string  `json:"value"`
	Type  *string `json:"type"`
}

// Verification records whether an email address has been verified.
type Verification struct {
	ID        string     `json:"id"`
	Email     string     `json:"email"`
	Verified  bool       `json:"verified"`
	CreatedAt *time.Time `json:"createdAt"`
	UpdatedAt string     `json:"updatedAt"`
}

// errorBody is the shape of known 500 replies.
type errorBody struct {
	Error string `json:"error"`
}
