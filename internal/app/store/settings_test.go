package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dccc/clubportal/internal/app/models"
	"github.com/dccc/clubportal/internal/kvstore"
)

func TestFooterSettingsDefaultUntilConfigured(t *testing.T) {
	kv := kvstore.NewMemoryStore()
	s := newTestStore(t, kv, testTime)
	ctx := context.Background()

	require.Equal(t, defaultFooterSettings(), s.FooterSettings(ctx))

	custom := models.FooterSettings{
		Contact: models.ContactInfo{
			Address: "New clubroom, 3rd floor",
			Email:   "hello@dccc.club",
		},
		Social: models.SocialLinks{Facebook: "https://facebook.com/dccc"},
	}
	require.NoError(t, s.UpdateFooterSettings(ctx, custom))
	require.Equal(t, custom, s.FooterSettings(ctx))

	// The configured footer survives a restart.
	s = newTestStore(t, kv, testTime)
	require.Equal(t, custom, s.FooterSettings(ctx))
}
