// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package content

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"strings"

	"github.com/olegiv/merwah-go/internal/model"
	"github.com/olegiv/merwah-go/internal/notify"
)

// Falcon notifications.
var (
	FalconsLoadFailed = notify.Notification{
		Title:       "Error",
		Description: "Failed to load falcons",
		Variant:     notify.VariantDestructive,
	}
	falconCreateFailed = notify.Notification{
		Title:       "Error",
		Description: "Failed to add falcon",
		Variant:     notify.VariantDestructive,
	}
	falconCreated = notify.Notification{
		Title:       "Success",
		Description: "Falcon added successfully",
	}
)

const invalidPriceMessage = "Price must be a non-negative number"

// FalconGateway persists falcons.
type FalconGateway interface {
	CreateFalcon(ctx context.Context, in model.FalconInput, image *model.Upload) (model.Falcon, error)
}

// PreviewFunc renders a displayable preview of an uploaded image.
type PreviewFunc func(u *model.Upload) (string, error)

// FalconForm is the create form for falcon listings. Unlike the other
// content types it carries an image upload.
type FalconForm struct {
	*Form[FalconDraft]
	preview PreviewFunc
}

// NewFalconForm creates a falcon form that posts to gw and appends the
// created falcon to store.
func NewFalconForm(store *Collection[model.Falcon], gw FalconGateway, preview PreviewFunc) *FalconForm {
	form := NewForm(FormConfig[FalconDraft]{
		RequiredMessage: "All fields are required",
		Submit: func(ctx context.Context, out Outlet, d FalconDraft, _ model.Status) (bool, error) {
			price, err := parsePrice(d.Price)
			if err != nil {
				out.Notify(notify.Notification{
					Title:       "Validation Error",
					Description: invalidPriceMessage,
					Variant:     notify.VariantDestructive,
				})
				return false, err
			}

			falcon, err := gw.CreateFalcon(ctx, model.FalconInput{
				NameAr:      d.NameAr,
				Category:    d.Category,
				Description: d.Description,
				Price:       price,
			}, d.Image)
			if err != nil {
				slog.Warn("failed to add falcon", "category", model.ActivityFalcon, "name", d.NameAr, "error", err)
				out.Notify(falconCreateFailed)
				return false, fmt.Errorf("creating falcon: %w", err)
			}

			store.Append(falcon)
			out.Notify(falconCreated)
			out.Navigate(FalconsPath)
			return true, nil
		},
	})
	return &FalconForm{Form: form, preview: preview}
}

// ChooseFile binds u as the falcon image and derives its preview.
// A nil upload clears both.
func (f *FalconForm) ChooseFile(u *model.Upload) error {
	if u == nil {
		f.Mutate(func(d *FalconDraft) {
			d.Image = nil
			d.Preview = ""
		})
		return nil
	}

	preview := ""
	if f.preview != nil {
		p, err := f.preview(u)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrUnsupportedImage, err)
		}
		preview = p
	}

	f.Mutate(func(d *FalconDraft) {
		d.Image = u
		d.Preview = preview
	})
	return nil
}

func parsePrice(s string) (float64, error) {
	price, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || price < 0 || math.IsNaN(price) || math.IsInf(price, 0) {
		return 0, &ValidationError{Fields: []string{"price"}, Reason: invalidPriceMessage}
	}
	return price, nil
}
