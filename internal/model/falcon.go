// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import "time"

// Falcon is a falcon listing held by the remote gateway.
type Falcon struct {
	ID          string     `json:"id"`
	NameAr      string     `json:"name_ar"`
	Category    string     `json:"category"`
	Description string     `json:"description"`
	Price       float64    `json:"price"`
	ImageURL    string     `json:"image_url"`
	CreatedAt   *time.Time `json:"created_at,omitempty"`
}

// FalconInput is the JSON payload sent in the "data" part of a create request.
type FalconInput struct {
	NameAr      string  `json:"name_ar"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

// Upload is an image file bound to a draft.
type Upload struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Size returns the upload size in bytes.
func (u *Upload) Size() int64 {
	if u == nil {
		return 0
	}
	return int64(len(u.Data))
}
