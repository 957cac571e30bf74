package model

import (
	"time"

	"github.com/google/uuid"
)

// ObjectionID is a UUID-based identifier for Objection
type ObjectionID string

// NewObjectionID generates a new UUID v4 ObjectionID
func NewObjectionID() ObjectionID {
	return ObjectionID(uuid.New().String())
}

// ResponseID is a UUID-based identifier for ObjectionResponse
type ResponseID string

// NewResponseID generates a new UUID v4 ResponseID
func NewResponseID() ResponseID {
	return ResponseID(uuid.New().String())
}

// ObjectionResponse is a suggested rebuttal text owned by its parent Objection.
// It is immutable once created; replacing an objection's response list always
// produces fresh ObjectionResponse values.
type ObjectionResponse struct {
	ID        ResponseID `json:"id"`
	Text      string     `json:"text"`
	CreatedAt time.Time  `json:"created_at"`
}

// NewObjectionResponse wraps a plain rebuttal text into a response with a
// fresh ID and creation timestamp.
func NewObjectionResponse(text string, now time.Time) ObjectionResponse {
	return ObjectionResponse{
		ID:        NewResponseID(),
		Text:      text,
		CreatedAt: now,
	}
}

// Objection is a sales objection with its suggested rebuttals.
type Objection struct {
	ID         ObjectionID         `json:"id"`
	Title      string              `json:"title"`
	Responses  []ObjectionResponse `json:"responses"`
	Category   string              `json:"category,omitempty"`
	Tags       []string            `json:"tags"`
	IsFavorite bool                `json:"is_favorite"`
	UsageCount int                 `json:"usage_count"`
	CreatedAt  time.Time           `json:"created_at"`
	UpdatedAt  time.Time           `json:"updated_at"`
}

// ObjectionInput is the caller-supplied portion of a new Objection. ID,
// timestamps, usage count and favorite flag are always system-assigned.
type ObjectionInput struct {
	Title     string
	Responses []string
	Category  string
	Tags      []string
}

// NewObjection constructs an Objection from caller input, wrapping each plain
// response text and assigning defaults.
func NewObjection(input ObjectionInput, now time.Time) *Objection {
	responses := make([]ObjectionResponse, 0, len(input.Responses))
	for _, text := range input.Responses {
		responses = append(responses, NewObjectionResponse(text, now))
	}

	tags := input.Tags
	if tags == nil {
		tags = []string{}
	}

	return &Objection{
		ID:         NewObjectionID(),
		Title:      input.Title,
		Responses:  responses,
		Category:   input.Category,
		Tags:       tags,
		IsFavorite: false,
		UsageCount: 0,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// FieldValues implements FieldValuer for filter evaluation.
func (o *Objection) FieldValues(f Field) []any {
	switch f {
	case FieldTitle:
		return []any{o.Title}
	case FieldCategory:
		return []any{o.Category}
	case FieldFavorite:
		return []any{o.IsFavorite}
	case FieldTags:
		values := make([]any, 0, len(o.Tags))
		for _, tag := range o.Tags {
			values = append(values, tag)
		}
		return values
	case FieldResponseText:
		values := make([]any, 0, len(o.Responses))
		for _, resp := range o.Responses {
			values = append(values, resp.Text)
		}
		return values
	default:
		return nil
	}
}

// ObjectionPatch is a partial update. A nil field means "not supplied" and is
// left untouched; there is no way to clear a field by sending null.
type ObjectionPatch struct {
	Title      *string
	Responses  *[]string
	Category   *string
	Tags       *[]string
	IsFavorite *bool
}

// FieldChange is a single field mutation to apply to a stored document.
type FieldChange struct {
	Field Field
	Value any
}

// Changes expands the patch into the minimal field set to apply. Response
// texts are re-wrapped into fresh ObjectionResponse values, discarding prior
// response identities. UpdatedAt is always refreshed, even for an empty patch.
func (p *ObjectionPatch) Changes(now time.Time) []FieldChange {
	var changes []FieldChange

	if p.Title != nil {
		changes = append(changes, FieldChange{Field: FieldTitle, Value: *p.Title})
	}
	if p.Responses != nil {
		responses := make([]ObjectionResponse, 0, len(*p.Responses))
		for _, text := range *p.Responses {
			responses = append(responses, NewObjectionResponse(text, now))
		}
		changes = append(changes, FieldChange{Field: FieldResponses, Value: responses})
	}
	if p.Category != nil {
		changes = append(changes, FieldChange{Field: FieldCategory, Value: *p.Category})
	}
	if p.Tags != nil {
		changes = append(changes, FieldChange{Field: FieldTags, Value: *p.Tags})
	}
	if p.IsFavorite != nil {
		changes = append(changes, FieldChange{Field: FieldFavorite, Value: *p.IsFavorite})
	}

	changes = append(changes, FieldChange{Field: FieldUpdatedAt, Value: now})
	return changes
}
