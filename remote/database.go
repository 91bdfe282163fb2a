package remote

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"academy/models"
)

// Database is the gorm-backed Backend. Writes are upsert-by-id; there is no
// version check, concurrent saves race with last-write-wins semantics.
type Database struct {
	db *gorm.DB
}

func NewDatabase(db *gorm.DB) *Database {
	return &Database{db: db}
}

// Migrate creates or updates every collection the services write to.
func (d *Database) Migrate() error {
	return d.db.AutoMigrate(
		&models.Course{},
		&models.Profile{},
		&models.Settings{},
		&models.PageBlock{},
		&models.Comment{},
		&models.ProgressRecord{},
		&models.WebhookSubscription{},
	)
}

func (d *Database) upsert(ctx context.Context, value interface{}) error {
	return d.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(value).Error
}

func (d *Database) ListCourses(ctx context.Context) ([]models.Course, error) {
	var courses []models.Course
	err := d.db.WithContext(ctx).Order("created_at desc").Find(&courses).Error
	return courses, err
}

func (d *Database) UpsertCourse(ctx context.Context, course models.Course) error {
	return d.upsert(ctx, &course)
}

func (d *Database) DeleteCourse(ctx context.Context, id string) error {
	return d.db.WithContext(ctx).Delete(&models.Course{}, "id = ?", id).Error
}

func (d *Database) ListProfiles(ctx context.Context) ([]models.Profile, error) {
	var profiles []models.Profile
	err := d.db.WithContext(ctx).Find(&profiles).Error
	return profiles, err
}

func (d *Database) UpsertProfile(ctx context.Context, profile models.Profile) error {
	return d.upsert(ctx, &profile)
}

func (d *Database) DeleteProfile(ctx context.Context, id string) error {
	return d.db.WithContext(ctx).Delete(&models.Profile{}, "id = ?", id).Error
}

func (d *Database) GetSettings(ctx context.Context) (models.Settings, error) {
	var settings models.Settings
	err := d.db.WithContext(ctx).First(&settings).Error
	return settings, err
}

func (d *Database) SaveSettings(ctx context.Context, settings models.Settings) error {
	if settings.ID == 0 {
		settings.ID = 1
	}
	return d.upsert(ctx, &settings)
}

func (d *Database) ListBlocks(ctx context.Context) ([]models.PageBlock, error) {
	var blocks []models.PageBlock
	err := d.db.WithContext(ctx).Order("position asc").Find(&blocks).Error
	return blocks, err
}

// ReplaceBlocks stores the page composition wholesale; block order comes
// from the caller.
func (d *Database) ReplaceBlocks(ctx context.Context, blocks []models.PageBlock) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.PageBlock{}).Error; err != nil {
			return err
		}
		if len(blocks) == 0 {
			return nil
		}
		return tx.Create(&blocks).Error
	})
}

func (d *Database) ListComments(ctx context.Context, lessonID string) ([]models.Comment, error) {
	var comments []models.Comment
	err := d.db.WithContext(ctx).
		Where("lesson_id = ?", lessonID).
		Order("timestamp asc").
		Find(&comments).Error
	return comments, err
}

func (d *Database) ListAllComments(ctx context.Context) ([]models.Comment, error) {
	var comments []models.Comment
	err := d.db.WithContext(ctx).Order("timestamp asc").Find(&comments).Error
	return comments, err
}

func (d *Database) UpsertComment(ctx context.Context, comment models.Comment) error {
	return d.upsert(ctx, &comment)
}

func (d *Database) DeleteComment(ctx context.Context, id string) error {
	return d.db.WithContext(ctx).Delete(&models.Comment{}, "id = ?", id).Error
}

func (d *Database) ListProgress(ctx context.Context, userID string) ([]models.ProgressRecord, error) {
	var records []models.ProgressRecord
	err := d.db.WithContext(ctx).Where("user_id = ?", userID).Find(&records).Error
	return records, err
}

func (d *Database) UpsertProgress(ctx context.Context, record models.ProgressRecord) error {
	return d.upsert(ctx, &record)
}

func (d *Database) ListWebhooks(ctx context.Context) ([]models.WebhookSubscription, error) {
	var subs []models.WebhookSubscription
	err := d.db.WithContext(ctx).Order("created_at asc").Find(&subs).Error
	return subs, err
}

func (d *Database) UpsertWebhook(ctx context.Context, sub models.WebhookSubscription) error {
	return d.upsert(ctx, &sub)
}

func (d *Database) DeleteWebhook(ctx context.Context, id string) error {
	return d.db.WithContext(ctx).Delete(&models.WebhookSubscription{}, "id = ?", id).Error
}

// IsNotFound reports whether err is the backend's missing-row error.
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
