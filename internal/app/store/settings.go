package store

import (
	"context"

	"github.com/dccc/clubportal/internal/app/models"
)

// FooterSettings returns the singleton site footer content
func (s *Store) FooterSettings(ctx context.Context) models.FooterSettings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.footer
}

// UpdateFooterSettings replaces the site footer content
func (s *Store) UpdateFooterSettings(ctx context.Context, settings models.FooterSettings) (err error) {
	defer func() { observe("UpdateFooterSettings", err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.footer = settings
	s.persist(ctx, keyFooter, s.footer)
	return nil
}

// defaultFooterSettings is the footer content used until an admin
// configures it.
func defaultFooterSettings() models.FooterSettings {
	return models.FooterSettings{
		Contact: models.ContactInfo{
			Address: "Dhaka City College, Dhanmondi, Dhaka",
			Email:   "contact@dccc.club",
			Phone:   "+880 1700-000000",
		},
		Social: models.SocialLinks{
			Facebook:  "https://facebook.com/dcccclub",
			Twitter:   "https://twitter.com/dcccclub",
			Instagram: "https://instagram.com/dcccclub",
		},
	}
}
