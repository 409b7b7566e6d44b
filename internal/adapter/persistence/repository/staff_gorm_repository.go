package repository

import (
	"context"
	"log"
	"os"
	"time"

	"nyumbanii_maintenance/internal/domain/entities"
	"nyumbanii_maintenance/internal/usecase/interfaces"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// staffModel is the relational row behind the staff directory.
type staffModel struct {
	ID        string `gorm:"primaryKey;size:64"`
	Name      string `gorm:"size:255;not null"`
	UserID    string `gorm:"size:64;index"`
	Role      string `gorm:"size:64"`
	Email     string `gorm:"size:255"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (staffModel) TableName() string {
	return "staff"
}

// StaffGormRepository resolves staff members from a gorm database (postgres or sqlite).
type StaffGormRepository struct {
	db *gorm.DB
}

var _ interfaces.IStaffDirectory = (*StaffGormRepository)(nil)

func NewStaffGormRepository(db *gorm.DB) *StaffGormRepository {
	return &StaffGormRepository{db: db}
}

func (r *StaffGormRepository) Migrate(ctx context.Context) error {
	if err := r.db.WithContext(ctx).AutoMigrate(&staffModel{}); err != nil {
		return errors.Wrap(err, "migrate staff table")
	}
	return nil
}

func (r *StaffGormRepository) Lookup(ctx context.Context, staffID string) (entities.Staff, error) {
	var m staffModel
	err := r.db.WithContext(ctx).Where("id = ?", staffID).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.Staff{}, nil
	}
	if err != nil {
		return entities.Staff{}, errors.Wrapf(err, "lookup staff %s", staffID)
	}
	return entities.Staff{
		ID:     m.ID,
		Name:   m.Name,
		UserID: m.UserID,
		Role:   m.Role,
		Email:  m.Email,
	}, nil
}

// Upsert inserts the members or overwrites the ones that already exist.
func (r *StaffGormRepository) Upsert(ctx context.Context, staff []entities.Staff) (int, error) {
	if len(staff) == 0 {
		return 0, nil
	}
	rows := make([]staffModel, 0, len(staff))
	for _, s := range staff {
		if s.ID == "" {
			return 0, errors.Errorf("staff %q has no id", s.Name)
		}
		rows = append(rows, staffModel{ID: s.ID, Name: s.Name, UserID: s.UserID, Role: s.Role, Email: s.Email})
	}

	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "user_id", "role", "email", "updated_at"}),
	}).Create(&rows).Error
	if err != nil {
		return 0, errors.Wrap(err, "upsert staff")
	}
	log.Printf("[staff][repository] upserted count=%d", len(rows))
	return len(rows), nil
}

type staffSeedFile struct {
	Staff []struct {
		ID     string `yaml:"id"`
		Name   string `yaml:"name"`
		UserID string `yaml:"user_id"`
		Role   string `yaml:"role"`
		Email  string `yaml:"email"`
	} `yaml:"staff"`
}

// LoadStaffSeed reads a YAML file with a top-level "staff" list.
func LoadStaffSeed(path string) ([]entities.Staff, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read staff seed %s", path)
	}
	var f staffSeedFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, errors.Wrapf(err, "parse staff seed %s", path)
	}

	out := make([]entities.Staff, 0, len(f.Staff))
	for _, s := range f.Staff {
		out = append(out, entities.Staff{ID: s.ID, Name: s.Name, UserID: s.UserID, Role: s.Role, Email: s.Email})
	}
	return out, nil
}
