package storage

import (
	"errors"
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/kartosangel/Solana-Raffle/internal/logger"
	"github.com/kartosangel/Solana-Raffle/internal/raffle"
)

// Slug is a registry row mirroring the slug list the program config tracks.
type Slug struct {
	Value string `gorm:"primaryKey"`
}

type SqliteStorage struct {
	db *gorm.DB
}

func NewSqliteStorage(path string) (*SqliteStorage, error) {

	logger.Debug("initializing database...")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	err = db.AutoMigrate(
		&raffle.ProgramConfig{},
		&raffle.Raffler{},
		&raffle.Raffle{},
		&raffle.RandomnessRequest{},
		&Slug{},
	)
	if err != nil {
		return nil, fmt.Errorf("migrate database: %w", err)
	}

	return &SqliteStorage{
		db: db,
	}, nil
}

func (s *SqliteStorage) InitProgramConfig(config *raffle.ProgramConfig) error {
	var count int64
	if err := s.db.Model(&raffle.ProgramConfig{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return raffle.ErrConfigExists
	}
	config.ID = 1
	return s.db.Create(config).Error
}

func (s *SqliteStorage) GetProgramConfig() (*raffle.ProgramConfig, error) {
	var config raffle.ProgramConfig
	err := s.db.First(&config, 1).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, raffle.ErrConfigNotInitialized
	}
	if err != nil {
		return nil, err
	}
	return &config, nil
}

func (s *SqliteStorage) UpdateProgramConfig(config *raffle.ProgramConfig) error {
	config.ID = 1
	return s.db.Save(config).Error
}

func (s *SqliteStorage) SlugExists(slug string) (bool, error) {
	var count int64
	err := s.db.Model(&Slug{}).Where("value = ?", slug).Count(&count).Error
	return count > 0, err
}

func (s *SqliteStorage) AddSlug(slug string) error {
	return s.db.Create(&Slug{Value: slug}).Error
}

func (s *SqliteStorage) SetSlugs(slugs []string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&Slug{}).Error; err != nil {
			return err
		}
		for _, slug := range slugs {
			if err := tx.Create(&Slug{Value: slug}).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *SqliteStorage) CreateRaffler(raffler *raffle.Raffler) error {
	return s.db.Create(raffler).Error
}

func (s *SqliteStorage) GetRaffler(id string) (*raffle.Raffler, error) {
	var raffler raffle.Raffler
	err := s.db.Where("id = ?", id).First(&raffler).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, raffle.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &raffler, nil
}

func (s *SqliteStorage) GetRafflerByAuthority(authority string) (*raffle.Raffler, error) {
	var raffler raffle.Raffler
	err := s.db.Where("authority = ?", authority).First(&raffler).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, raffle.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &raffler, nil
}

func (s *SqliteStorage) GetRafflerBySlug(slug string) (*raffle.Raffler, error) {
	var raffler raffle.Raffler
	err := s.db.Where("slug = ?", slug).First(&raffler).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, raffle.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &raffler, nil
}

func (s *SqliteStorage) UpdateRaffler(raffler *raffle.Raffler) error {
	return s.db.Save(raffler).Error
}

func (s *SqliteStorage) DeleteRaffler(id string) error {
	return s.db.Where("id = ?", id).Delete(&raffle.Raffler{}).Error
}

func (s *SqliteStorage) CreateRaffle(r *raffle.Raffle) error {
	return s.db.Create(r).Error
}

func (s *SqliteStorage) GetRaffle(id string) (*raffle.Raffle, error) {
	var r raffle.Raffle
	err := s.db.Where("id = ?", id).First(&r).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, raffle.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func (s *SqliteStorage) ListRaffles(rafflerID string) ([]*raffle.Raffle, error) {
	var raffles []*raffle.Raffle
	err := s.db.Where("raffler_id = ?", rafflerID).Find(&raffles).Error
	if err != nil {
		return nil, err
	}
	return raffles, nil
}

func (s *SqliteStorage) UpdateRaffle(r *raffle.Raffle) error {
	return s.db.Save(r).Error
}

func (s *SqliteStorage) DeleteRaffle(id string) error {
	return s.db.Where("id = ?", id).Delete(&raffle.Raffle{}).Error
}

func (s *SqliteStorage) CreateRandomnessRequest(request *raffle.RandomnessRequest) error {
	return s.db.Create(request).Error
}

func (s *SqliteStorage) GetPendingRandomnessRequests() ([]*raffle.RandomnessRequest, error) {
	var requests []*raffle.RandomnessRequest
	err := s.db.Where("settled = ?", false).Find(&requests).Error
	if err != nil {
		return nil, err
	}
	return requests, nil
}

func (s *SqliteStorage) SettleRandomnessRequest(handle string) error {
	return s.db.Model(&raffle.RandomnessRequest{}).
		Where("handle = ?", handle).
		Update("settled", true).Error
}
