// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import "time"

// News categories.
var NewsCategories = []string{"Conservation", "Events", "Culture", "Research", "Training"}

// Story categories.
var StoryCategories = []string{"Traditional", "Coming of Age", "Folklore", "Adventure", "Historical", "Modern"}

// Fatwa categories.
var FatwaCategories = []string{"Training", "Competition", "Breeding", "Hunting", "Care", "Trading", "Ethics"}

// Scholars is the roster of scholars who may issue a fatwa.
var Scholars = []string{
	"Sheikh Abdullah Al-Mansouri",
	"Dr. Muhammad Al-Falahi",
	"Sheikh Omar Al-Quraishi",
	"Dr. Ahmad Al-Najdi",
	"Sheikh Khalid Al-Thani",
}

// NewsArticle is a published or drafted news item.
type NewsArticle struct {
	ID       int64
	Title    string
	Excerpt  string
	Content  string
	Category string
	Status   Status
	Date     time.Time
	Views    int
	Image    string
}

// Story is a falconry tale.
type Story struct {
	ID       int64
	Title    string
	Excerpt  string
	Content  string
	Category string
	Status   Status
	Date     time.Time
	Views    int
	Likes    int
	Image    string
}

// Fatwa is a ruling issued by a scholar in answer to a question.
type Fatwa struct {
	ID       int64
	Title    string
	Question string
	Answer   string
	Evidence string
	Category string
	Scholar  string
	Status   Status
	Date     time.Time
	Views    int
}
