// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import "time"

// SingletonID is the fixed row id used by single-instance content sections.
const SingletonID = 1

// HeroSection is the landing hero block. Exactly one row, id 1.
type HeroSection struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	Role            string    `json:"role"`
	HeroContent     string    `json:"hero_content"`
	ResumeURL       *string   `json:"resume_url,omitempty"`
	ContactEmail    string    `json:"contact_email"`
	ProfileImageURL *string   `json:"profile_image_url,omitempty"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// AboutSection is the about block. Exactly one row, id 1.
type AboutSection struct {
	ID              int64     `json:"id"`
	AboutText       string    `json:"about_text"`
	ProfileImageURL *string   `json:"profile_image_url,omitempty"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// ContactInfo holds contact details. Exactly one row, id 1.
type ContactInfo struct {
	ID           int64     `json:"id"`
	Address      string    `json:"address"`
	PhoneNo      string    `json:"phone_no"`
	Email        string    `json:"email"`
	LinkedInURL  *string   `json:"linkedin_url,omitempty"`
	GithubURL    *string   `json:"github_url,omitempty"`
	InstagramURL *string   `json:"instagram_url,omitempty"`
	TwitterURL   *string   `json:"twitter_url,omitempty"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// PersonalInfo holds the owner's profile details. Exactly one row, id 1.
type PersonalInfo struct {
	ID              int64     `json:"id"`
	FullName        string    `json:"full_name"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone"`
	LinkedInURL     *string   `json:"linkedin_url,omitempty"`
	GitHubURL       *string   `json:"github_url,omitempty"`
	ResumeURL       *string   `json:"resume_url,omitempty"`
	Tagline         string    `json:"tagline"`
	About           string    `json:"about"`
	ProfileImageURL *string   `json:"profile_image_url,omitempty"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// Technology is a single entry in the technology grid.
type Technology struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	IconURL   *string   `json:"icon_url,omitempty"`
	SortOrder int64     `json:"sort_order"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// Experience is a work history entry. Technologies is stored as a JSON
// array in a text column and decoded at the store boundary.
type Experience struct {
	ID           int64     `json:"id"`
	Year         string    `json:"year"`
	Role         string    `json:"role"`
	Company      string    `json:"company"`
	Description  string    `json:"description"`
	Technologies []string  `json:"technologies"`
	SortOrder    int64     `json:"sort_order"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Project is a portfolio project entry.
type Project struct {
	ID           int64     `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	ImageURL     *string   `json:"image_url,omitempty"`
	Technologies []string  `json:"technologies"`
	LiveURL      *string   `json:"live_url,omitempty"`
	GithubURL    *string   `json:"github_url,omitempty"`
	SortOrder    int64     `json:"sort_order"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// AISection statuses.
const (
	AIStatusPlanned    = "Planned"
	AIStatusInProgress = "In Progress"
	AIStatusCompleted  = "Completed"
)

// AISection is a generative-AI learning/roadmap block. Technologies and
// ProgressItems are optional JSON list columns: a nil slice maps to a NULL
// column and back.
type AISection struct {
	ID            int64     `json:"id"`
	Title         string    `json:"title"`
	Content       string    `json:"content"`
	SectionType   string    `json:"section_type"` // Course, Roadmap, Vision
	Status        *string   `json:"status,omitempty"`
	Technologies  []string  `json:"technologies,omitempty"`
	ProgressItems []string  `json:"progress_items,omitempty"`
	SortOrder     int64     `json:"sort_order"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Skill is a single entry in the skills list.
type Skill struct {
	ID               int64     `json:"id"`
	Name             string    `json:"name"`
	Category         string    `json:"category"`
	ProficiencyLevel int64     `json:"proficiency_level"`
	IconURL          *string   `json:"icon_url,omitempty"`
	SortOrder        int64     `json:"sort_order"`
	IsActive         bool      `json:"is_active"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
