package model

import (
	"encoding/json"
	"time"
)

// The API has historically emitted both "_id" and "id" for the record
// identifier depending on the endpoint. Decoding accepts either; "id" is
// canonical and "_id" is only a fallback.

// Category groups services, prices or products under one section.
type Category struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Slug      string `json:"slug"`
	Section   string `json:"section"`
	SortOrder int    `json:"sortOrder"`
}

func (c *Category) UnmarshalJSON(data []byte) error {
	type alias Category
	aux := struct {
		*alias
		LegacyID string `json:"_id"`
	}{alias: (*alias)(c)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if c.ID == "" {
		c.ID = aux.LegacyID
	}
	return nil
}

// Service is a salon treatment presented in the catalog.
type Service struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	Image       string `json:"image"`
	CategoryID  string `json:"categoryId"`
}

func (s *Service) UnmarshalJSON(data []byte) error {
	type alias Service
	aux := struct {
		*alias
		LegacyID string `json:"_id"`
	}{alias: (*alias)(s)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if s.ID == "" {
		s.ID = aux.LegacyID
	}
	return nil
}

// Price is a single tariff line attached to a service.
type Price struct {
	ID        string  `json:"id"`
	Title     string  `json:"title"`
	Price     float64 `json:"price"`
	ServiceID string  `json:"serviceId"`
	SortOrder int     `json:"sortOrder"`
}

func (p *Price) UnmarshalJSON(data []byte) error {
	type alias Price
	aux := struct {
		*alias
		LegacyID string `json:"_id"`
	}{alias: (*alias)(p)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if p.ID == "" {
		p.ID = aux.LegacyID
	}
	return nil
}

// PriceGroup is the /prices/grouped projection: one service with its
// tariff lines, ready for display.
type PriceGroup struct {
	Service Service `json:"service"`
	Prices  []Price `json:"prices"`
}

// Product is a retail item sold by the salon.
type Product struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Slug        string  `json:"slug"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Code        string  `json:"code"`
	Brand       string  `json:"brand"`
	CategoryID  string  `json:"categoryId"`
	Image       string  `json:"image"`
}

func (p *Product) UnmarshalJSON(data []byte) error {
	type alias Product
	aux := struct {
		*alias
		LegacyID string `json:"_id"`
	}{alias: (*alias)(p)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if p.ID == "" {
		p.ID = aux.LegacyID
	}
	return nil
}

// Work is a portfolio entry: an image attached to a service.
type Work struct {
	ID        string    `json:"id"`
	Image     string    `json:"image"`
	ServiceID string    `json:"serviceId"`
	CreatedAt time.Time `json:"createdAt"`
}

func (w *Work) UnmarshalJSON(data []byte) error {
	type alias Work
	aux := struct {
		*alias
		LegacyID string `json:"_id"`
	}{alias: (*alias)(w)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if w.ID == "" {
		w.ID = aux.LegacyID
	}
	return nil
}

// Master is a staff directory entry.
type Master struct {
	ID         string `json:"id"`
	FullName   string `json:"fullName"`
	Speciality string `json:"speciality"`
	Image      string `json:"image"`
}

func (m *Master) UnmarshalJSON(data []byte) error {
	type alias Master
	aux := struct {
		*alias
		LegacyID string `json:"_id"`
	}{alias: (*alias)(m)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if m.ID == "" {
		m.ID = aux.LegacyID
	}
	return nil
}
