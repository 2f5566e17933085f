// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"time"

	"github.com/olegiv/portfolio-go/internal/model"
)

// Singleton sections live at a fixed row id. Reads return sql.ErrNoRows
// until the first write; writes replace the whole row and stamp updated_at.

// GetHeroSection returns the hero section, or sql.ErrNoRows if never written.
func (q *Queries) GetHeroSection(ctx context.Context) (model.HeroSection, error) {
	var h model.HeroSection
	err := q.db.QueryRowContext(ctx, `
		SELECT id, name, role, hero_content, resume_url, contact_email, profile_image_url, updated_at
		FROM hero_section WHERE id = ?`, model.SingletonID,
	).Scan(&h.ID, &h.Name, &h.Role, &h.HeroContent, &h.ResumeURL, &h.ContactEmail, &h.ProfileImageURL, &h.UpdatedAt)
	return h, err
}

// UpsertHeroSection replaces the hero section row and returns it as stored.
func (q *Queries) UpsertHeroSection(ctx context.Context, h model.HeroSection) (model.HeroSection, error) {
	h.ID = model.SingletonID
	h.UpdatedAt = time.Now().UTC()
	_, err := q.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO hero_section (id, name, role, hero_content, resume_url, contact_email, profile_image_url, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		h.ID, h.Name, h.Role, h.HeroContent, h.ResumeURL, h.ContactEmail, h.ProfileImageURL, h.UpdatedAt,
	)
	return h, err
}

// GetAboutSection returns the about section, or sql.ErrNoRows if never written.
func (q *Queries) GetAboutSection(ctx context.Context) (model.AboutSection, error) {
	var a model.AboutSection
	err := q.db.QueryRowContext(ctx, `
		SELECT id, about_text, profile_image_url, updated_at
		FROM about_section WHERE id = ?`, model.SingletonID,
	).Scan(&a.ID, &a.AboutText, &a.ProfileImageURL, &a.UpdatedAt)
	return a, err
}

// UpsertAboutSection replaces the about section row and returns it as stored.
func (q *Queries) UpsertAboutSection(ctx context.Context, a model.AboutSection) (model.AboutSection, error) {
	a.ID = model.SingletonID
	a.UpdatedAt = time.Now().UTC()
	_, err := q.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO about_section (id, about_text, profile_image_url, updated_at)
		VALUES (?, ?, ?, ?)`,
		a.ID, a.AboutText, a.ProfileImageURL, a.UpdatedAt,
	)
	return a, err
}

// GetContactInfo returns the contact info, or sql.ErrNoRows if never written.
func (q *Queries) GetContactInfo(ctx context.Context) (model.ContactInfo, error) {
	var c model.ContactInfo
	err := q.db.QueryRowContext(ctx, `
		SELECT id, address, phone_no, email, linkedin_url, github_url, instagram_url, twitter_url, updated_at
		FROM contact_info WHERE id = ?`, model.SingletonID,
	).Scan(&c.ID, &c.Address, &c.PhoneNo, &c.Email, &c.LinkedInURL, &c.GithubURL, &c.InstagramURL, &c.TwitterURL, &c.UpdatedAt)
	return c, err
}

// UpsertContactInfo replaces the contact info row and returns it as stored.
func (q *Queries) UpsertContactInfo(ctx context.Context, c model.ContactInfo) (model.ContactInfo, error) {
	c.ID = model.SingletonID
	c.UpdatedAt = time.Now().UTC()
	_, err := q.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO contact_info (id, address, phone_no, email, linkedin_url, github_url, instagram_url, twitter_url, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		c.ID, c.Address, c.PhoneNo, c.Email, c.LinkedInURL, c.GithubURL, c.InstagramURL, c.TwitterURL, c.UpdatedAt,
	)
	return c, err
}

// GetPersonalInfo returns the personal info, or sql.ErrNoRows if never written.
func (q *Queries) GetPersonalInfo(ctx context.Context) (model.PersonalInfo, error) {
	var p model.PersonalInfo
	err := q.db.QueryRowContext(ctx, `
		SELECT id, full_name, email, phone, linkedin_url, github_url, resume_url, tagline, about, profile_image_url, updated_at
		FROM personal_info WHERE id = ?`, model.SingletonID,
	).Scan(&p.ID, &p.FullName, &p.Email, &p.Phone, &p.LinkedInURL, &p.GitHubURL, &p.ResumeURL, &p.Tagline, &p.About, &p.ProfileImageURL, &p.UpdatedAt)
	return p, err
}

// UpsertPersonalInfo replaces the personal info row and returns it as stored.
func (q *Queries) UpsertPersonalInfo(ctx context.Context, p model.PersonalInfo) (model.PersonalInfo, error) {
	p.ID = model.SingletonID
	p.UpdatedAt = time.Now().UTC()
	_, err := q.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO personal_info (id, full_name, email, phone, linkedin_url, github_url, resume_url, tagline, about, profile_image_url, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.FullName, p.Email, p.Phone, p.LinkedInURL, p.GitHubURL, p.ResumeURL, p.Tagline, p.About, p.ProfileImageURL, p.UpdatedAt,
	)
	return p, err
}
