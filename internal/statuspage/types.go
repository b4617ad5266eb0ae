// Copyright 2025 The simple-statuspage-subscriber-lister Authors
//
// Use of this source code is governed by an MIT-style license that can be
// found in the LICENSE file.

package statuspage

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Component represents a monitored unit on a status page. GroupID is empty
// when the component does not belong to a component group. Group is true
// when the component is itself a group.
type Component struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	GroupID     string `json:"group_id,omitempty"`
	Group       bool   `json:"group,omitempty"`
	Description string `json:"description,omitempty"`
	Status      string `json:"status,omitempty"`
}

// Subscriber represents an entity registered to receive notifications.
// Targets holds the ids the subscriber is subscribed to: component and
// component group ids, or the page id for a whole-page subscription.
type Subscriber struct {
	ID           string   `json:"id"`
	Mode         string   `json:"mode"`
	Email        string   `json:"email,omitempty"`
	PhoneNumber  string   `json:"phone_number,omitempty"`
	PhoneCountry string   `json:"phone_country,omitempty"`
	Endpoint     string   `json:"endpoint,omitempty"`
	CreatedAt    string   `json:"created_at,omitempty"`
	Targets      []string `json:"targets"`
}

// Subscriber modes as reported by the API.
const (
	ModeEmail   = "email"
	ModeSMS     = "sms"
	ModeWebhook = "webhook"
)

// Contact returns the address notifications are delivered to.
func (s Subscriber) Contact() string {
	phone := s.PhoneNumber
	if phone != "" && s.PhoneCountry != "" {
		phone = s.PhoneCountry + " " + phone
	}

	switch s.Mode {
	case ModeEmail:
		if s.Email != "" {
			return s.Email
		}
	case ModeSMS:
		if phone != "" {
			return phone
		}
	case ModeWebhook:
		if s.Endpoint != "" {
			return s.Endpoint
		}
	}

	for _, c := range []string{s.Email, phone, s.Endpoint} {
		if c != "" {
			return c
		}
	}
	return s.ID
}

// componentJSON is the wire form of a component. Pointers distinguish a
// missing field from an empty one.
type componentJSON struct {
	ID          *string `json:"id"`
	Name        *string `json:"name"`
	GroupID     *string `json:"group_id"`
	Group       bool    `json:"group"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
}

// subscriberJSON is the wire form of a subscriber.
type subscriberJSON struct {
	ID           *string       `json:"id"`
	Mode         *string       `json:"mode"`
	Email        *string       `json:"email"`
	PhoneNumber  *string       `json:"phone_number"`
	PhoneCountry *string       `json:"phone_country"`
	Endpoint     *string       `json:"endpoint"`
	CreatedAt    *string       `json:"created_at"`
	Components   componentRefs `json:"components"`
}

// componentRefs decodes a subscriber's component list, which holds plain
// ids; objects carrying an "id" are accepted as well.
type componentRefs []string

func (r *componentRefs) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	refs := make(componentRefs, 0, len(raw))
	for _, item := range raw {
		var id string
		if err := json.Unmarshal(item, &id); err == nil {
			refs = append(refs, id)
			continue
		}

		var obj struct {
			ID string `json:"id"`
		}
		if err := json.Unmarshal(item, &obj); err != nil {
			return fmt.Errorf("invalid component reference %s", item)
		}
		refs = append(refs, obj.ID)
	}
	*r = refs
	return nil
}

var (
	errMissingID   = errors.New("missing required field \"id\"")
	errMissingName = errors.New("missing required field \"name\"")
)

func str(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func (w componentJSON) toComponent() (Component, error) {
	if strings.TrimSpace(str(w.ID)) == "" {
		return Component{}, errMissingID
	}
	if w.Name == nil {
		return Component{}, errMissingName
	}
	return Component{
		ID:          *w.ID,
		Name:        *w.Name,
		GroupID:     str(w.GroupID),
		Group:       w.Group,
		Description: str(w.Description),
		Status:      str(w.Status),
	}, nil
}

// toSubscriber converts the wire form. A subscriber without a component
// list is subscribed to the whole page.
func (w subscriberJSON) toSubscriber(pageID string) (Subscriber, error) {
	if strings.TrimSpace(str(w.ID)) == "" {
		return Subscriber{}, errMissingID
	}

	var targets []string
	for _, id := range w.Components {
		if id != "" {
			targets = append(targets, id)
		}
	}
	if len(targets) == 0 {
		targets = []string{pageID}
	}

	return Subscriber{
		ID:           *w.ID,
		Mode:         str(w.Mode),
		Email:        str(w.Email),
		PhoneNumber:  str(w.PhoneNumber),
		PhoneCountry: str(w.PhoneCountry),
		Endpoint:     str(w.Endpoint),
		CreatedAt:    str(w.CreatedAt),
		Targets:      targets,
	}, nil
}
