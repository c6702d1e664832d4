package store

import (
	"context"
	"errors"
	"factboard/internal/models"

	"gorm.io/gorm"
)

// ErrNotFound is returned when an operation addresses an id that no
// fact carries.
var ErrNotFound = errors.New("fact not found")

// FactStore owns all Fact records. Every read and write in the service
// goes through here.
type FactStore struct {
	db *gorm.DB
}

func NewFactStore(db *gorm.DB) *FactStore {
	return &FactStore{db: db}
}

// ListAll returns every fact in primary-key order, so repeated reads
// see the same order absent mutation.
func (s *FactStore) ListAll(ctx context.Context) ([]models.Fact, error) {
	facts := make([]models.Fact, 0)
	if err := s.db.WithContext(ctx).Order("id ASC").Find(&facts).Error; err != nil {
		return nil, err
	}
	return facts, nil
}

// ListByCategory returns the facts whose category equals the argument
// exactly. An unknown category is an empty result, not an error.
func (s *FactStore) ListByCategory(ctx context.Context, category string) ([]models.Fact, error) {
	facts := make([]models.Fact, 0)
	if err := s.db.WithContext(ctx).Where("category = ?", category).Order("id ASC").Find(&facts).Error; err != nil {
		return nil, err
	}
	return facts, nil
}

func (s *FactStore) GetByID(ctx context.Context, id uint) (*models.Fact, error) {
	var fact models.Fact
	if err := s.db.WithContext(ctx).First(&fact, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &fact, nil
}

// Create validates the input, persists a new fact with a fresh id and
// zeroed counters, and returns the stored record. Nothing is written
// when validation fails.
func (s *FactStore) Create(ctx context.Context, input models.FactInput) (*models.Fact, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	fact := models.Fact{
		Text:     input.Text,
		Source:   input.Source,
		Category: input.Category,
	}
	if err := s.db.WithContext(ctx).Create(&fact).Error; err != nil {
		return nil, err
	}
	return &fact, nil
}

// IncrementVote bumps exactly one counter by one in a single UPDATE, so
// concurrent votes on the same record are never lost. A zero row count
// means the id does not exist; voting never creates a record.
func (s *FactStore) IncrementVote(ctx context.Context, id uint, kind models.VoteKind) (*models.Fact, error) {
	col := kind.Column()
	res := s.db.WithContext(ctx).Model(&models.Fact{}).
		Where("id = ?", id).
		UpdateColumn(col, gorm.Expr(col+" + ?", 1))
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return s.GetByID(ctx, id)
}

// Count reports how many facts exist.
func (s *FactStore) Count(ctx context.Context) (int64, error) {
	var n int64
	err := s.db.WithContext(ctx).Model(&models.Fact{}).Count(&n).Error
	return n, err
}
