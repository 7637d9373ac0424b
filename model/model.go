package model

import (
	"encoding/json"
	"time"
)

type BriefingType string

const (
	TypeLanding      BriefingType = "LANDING"
	TypeWebComercial BriefingType = "WEB_COMERCIAL"
	TypeEcommerce    BriefingType = "ECOMMERCE"
)

func ValidType(t string) bool {
	switch BriefingType(t) {
	case TypeLanding, TypeWebComercial, TypeEcommerce:
		return true
	}
	return false
}

type Status string

const (
	StatusNuevo      Status = "nuevo"
	StatusRevisado   Status = "revisado"
	StatusEnProgreso Status = "en_progreso"
	StatusCompletado Status = "completado"
)

func ValidStatus(s string) bool {
	switch Status(s) {
	case StatusNuevo, StatusRevisado, StatusEnProgreso, StatusCompletado:
		return true
	}
	return false
}

// Briefing is the persisted record. The four data buckets are stored as
// serialized JSON text; only Status and Summary are mutable after creation.
type Briefing struct {
	ID          string       `json:"id"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
	Status      Status       `json:"status"`
	Type        BriefingType `json:"type"`
	ClientName  string       `json:"clientName"`
	ClientEmail string       `json:"clientEmail"`
	Summary     string       `json:"summary"`

	ContactData json.RawMessage `json:"contactData"`
	ContentData json.RawMessage `json:"contentData"`
	DesignData  json.RawMessage `json:"designData"`
	ExtraData   json.RawMessage `json:"extraData"`
}

// SubmissionPayload is the wire format posted by the briefing wizard.
type SubmissionPayload struct {
	Type        string         `json:"type"`
	ClientName  string         `json:"clientName"`
	ClientEmail string         `json:"clientEmail"`
	ContactData map[string]any `json:"contactData"`
	ContentData map[string]any `json:"contentData"`
	DesignData  map[string]any `json:"designData"`
	ExtraData   map[string]any `json:"extraData"`
}

// Data deserializes the record's buckets into a renderer view.
func (b Briefing) Data() (BriefingData, error) {
	data := BriefingData{
		Type:        string(b.Type),
		ClientName:  b.ClientName,
		ClientEmail: b.ClientEmail,
	}
	for _, bucket := range []struct {
		raw  json.RawMessage
		dest *map[string]any
	}{
		{b.ContactData, &data.Contact},
		{b.ContentData, &data.Content},
		{b.DesignData, &data.Design},
		{b.ExtraData, &data.Extra},
	} {
		if len(bucket.raw) == 0 {
			*bucket.dest = map[string]any{}
			continue
		}
		if err := json.Unmarshal(bucket.raw, bucket.dest); err != nil {
			return BriefingData{}, err
		}
	}
	return data, nil
}

// BriefingData is the sanitized view handed to document renderers and email
// templates.
type BriefingData struct {
	Type        string
	ClientName  string
	ClientEmail string
	Contact     map[string]any
	Content     map[string]any
	Design      map[string]any
	Extra       map[string]any
}

// BusinessName returns the client's business name when present, falling back
// to the client name. Used for document file names and email subjects.
func (d BriefingData) BusinessName() string {
	if v, ok := d.Contact["businessName"].(string); ok && v != "" {
		return v
	}
	return d.ClientName
}
