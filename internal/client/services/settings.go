package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/smarttraffic/internal/client/models"
	"github.com/dmitrijs2005/smarttraffic/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/smarttraffic/internal/common"
	"github.com/dmitrijs2005/smarttraffic/internal/dbx"
)

// SettingsKey is the metadata key holding the settings document.
const SettingsKey = "settings"

type SettingsService interface {
	Get(ctx context.Context) (models.Settings, error)
	Toggle(ctx context.Context, name string) (models.Settings, error)
	Reset(ctx context.Context) error
}

// SettingsDB is a database handle that can also start transactions.
type SettingsDB interface {
	dbx.DBTX
	dbx.Beginner
}

type settingsService struct {
	mu sync.Mutex
	db SettingsDB
}

func NewSettingsService(db SettingsDB) SettingsService {
	return &settingsService{db: db}
}

// Get returns the stored settings, or models.DefaultSettings when none exist.
func (s *settingsService) Get(ctx context.Context) (models.Settings, error) {
	return loadSettings(ctx, metadata.NewSQLiteRepository(s.db))
}

// Toggle flips the named setting and persists the result. The read and the
// write share one transaction.
func (s *settingsService) Toggle(ctx context.Context, name string) (models.Settings, error) {
	flip, err := settingFlipper(name)
	if err != nil {
		return models.Settings{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var st models.Settings
	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)

		cur, err := loadSettings(ctx, repo)
		if err != nil {
			return err
		}
		flip(&cur)

		if err := metadata.StoreJSON(ctx, repo, SettingsKey, cur); err != nil {
			return err
		}
		st = cur
		return nil
	})
	if err != nil {
		return models.Settings{}, err
	}
	return st, nil
}

// Reset drops stored settings so Get returns defaults again.
func (s *settingsService) Reset(ctx context.Context) error {
	return metadata.NewSQLiteRepository(s.db).Delete(ctx, SettingsKey)
}

func loadSettings(ctx context.Context, repo metadata.Repository) (models.Settings, error) {
	st := models.DefaultSettings()
	if _, err := metadata.LoadJSON(ctx, repo, SettingsKey, &st); err != nil {
		return models.Settings{}, err
	}
	return st, nil
}

func settingFlipper(name string) (func(*models.Settings), error) {
	switch name {
	case models.SettingDarkMode:
		return func(st *models.Settings) { st.DarkMode = !st.DarkMode }, nil
	case models.SettingNotifications:
		return func(st *models.Settings) { st.Notifications = !st.Notifications }, nil
	case models.SettingLocationServices:
		return func(st *models.Settings) { st.LocationServices = !st.LocationServices }, nil
	default:
		return nil, fmt.Errorf("%w: unknown setting %q", common.ErrValidation, name)
	}
}
