package config_test

import (
	"context"
	"sponsorship/config"
	"sponsorship/domain"
	"sponsorship/testutil"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGettersFallBackToDefaults(t *testing.T) {
	for _, key := range []string{"HTTP_HOST", "HTTP_PORT", "CONTEXT_TIMEOUT", "UPLOAD_DIR", "RATE_LIMIT_MAX", "BODY_LIMIT_MB"} {
		t.Setenv(key, "")
	}

	assert.Equal(t, "0.0.0.0:8000", config.GetFiberListenAddress())
	assert.Equal(t, 10*time.Second, config.GetContextTimeout())
	assert.Equal(t, "./uploads", config.GetUploadDir())
	assert.Equal(t, 120, config.GetRateLimitMax())
	assert.Equal(t, 10*1024*1024, config.GetBodyLimit())
}

func TestGettersReadEnvironment(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("CONTEXT_TIMEOUT", "3")
	t.Setenv("RATE_LIMIT_MAX", "not-a-number")
	t.Setenv("BODY_LIMIT_MB", "2")

	assert.Equal(t, "9090", config.GetFiberHttpPort())
	assert.Equal(t, 3*time.Second, config.GetContextTimeout())
	assert.Equal(t, 120, config.GetRateLimitMax())
	assert.Equal(t, 2*1024*1024, config.GetFiberConfig().BodyLimit)
}

func TestMigrateCreatesEveryTable(t *testing.T) {
	db := testutil.NewDB(t)

	for _, model := range []interface{}{
		&domain.User{}, &domain.Child{}, &domain.Sponsor{}, &domain.Policy{}, &domain.ContactMessage{},
		&domain.ChildProfilePicture{}, &domain.ChildProgress{}, &domain.SponsorDeparture{},
		&domain.ChildSponsorship{}, &domain.PolicyRead{}, &domain.ChildCorrespondence{}, &domain.ChildIncident{},
		&domain.Profile{},
	} {
		assert.True(t, db.Migrator().HasTable(model), "%T", model)
	}
	assert.True(t, db.Migrator().HasIndex(&domain.ChildSponsorship{}, "idx_sponsor_child"))
	assert.True(t, db.Migrator().HasIndex(&domain.PolicyRead{}, "idx_user_policy"))
}

func TestNewGoMailerNeedsSender(t *testing.T) {
	t.Setenv("EMAIL_SENDER", "")
	_, err := config.NewGoMailer()
	assert.Error(t, err)

	t.Setenv("EMAIL_SENDER", "office@example.org")
	mailer, err := config.NewGoMailer()
	require.NoError(t, err)
	assert.NotNil(t, mailer)
}

func TestLogMailerNeverFails(t *testing.T) {
	err := config.LogMailer{}.SendContactConfirmation(context.Background(), &domain.ContactMessage{ID: 1, Email: "a@example.org"})
	assert.NoError(t, err)
}
