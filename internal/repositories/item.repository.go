package repositories

import (
	"context"
	"time"
	"upkeep/internal/database"
	"upkeep/internal/logger"
	. "upkeep/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	USER_ITEMS_CACHE_PREFIX = "user_items"
	USER_ITEMS_CACHE_EXPIRY = 24 * time.Hour
)

type ItemRepository interface {
	GetByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*Item, error)
	GetByID(ctx context.Context, tx *gorm.DB, userID, itemID uuid.UUID) (*Item, error)
	Create(ctx context.Context, tx *gorm.DB, item *Item) error
	Update(ctx context.Context, tx *gorm.DB, userID, itemID uuid.UUID, updated *Item) error
	Delete(ctx context.Context, tx *gorm.DB, userID, itemID uuid.UUID) error
	DeleteByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) error
	ClearUserItemCache(ctx context.Context, userID uuid.UUID)
}

type itemRepository struct {
	cache database.CacheClient
}

func NewItemRepository(cache database.CacheClient) ItemRepository {
	return &itemRepository{
		cache: cache,
	}
}

func (r *itemRepository) GetByUser(
	ctx context.Context,
	tx *gorm.DB,
	userID uuid.UUID,
) ([]*Item, error) {
	log := logger.NewWithContext(ctx, "itemRepository").Function("GetByUser")

	var cached []*Item
	found, err := database.NewCacheBuilder(r.cache, userID.String()).
		WithContext(ctx).
		WithHash(USER_ITEMS_CACHE_PREFIX).
		Get(&cached)
	if err != nil {
		log.Warn("failed to get user items from cache", "userID", userID, "error", err)
	}

	if found {
		return cached, nil
	}

	items, err := gorm.G[*Item](tx).
		Where(Item{UserID: userID}).
		Order("created_at DESC").
		Find(ctx)
	if err != nil {
		return nil, log.Err("failed to get user items", err, "userID", userID)
	}

	err = database.NewCacheBuilder(r.cache, userID.String()).
		WithContext(ctx).
		WithHash(USER_ITEMS_CACHE_PREFIX).
		WithStruct(items).
		WithTTL(USER_ITEMS_CACHE_EXPIRY).
		Set()
	if err != nil {
		log.Warn("failed to set user items in cache", "userID", userID, "error", err)
	}

	return items, nil
}

func (r *itemRepository) GetByID(
	ctx context.Context,
	tx *gorm.DB,
	userID, itemID uuid.UUID,
) (*Item, error) {
	log := logger.NewWithContext(ctx, "itemRepository").Function("GetByID")

	var item Item
	if err := tx.WithContext(ctx).
		Preload("Tasks").
		Where("id = ? AND user_id = ?", itemID, userID).
		First(&item).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, gorm.ErrRecordNotFound
		}
		return nil, log.Err("failed to get item", err, "itemID", itemID, "userID", userID)
	}

	return &item, nil
}

func (r *itemRepository) Create(ctx context.Context, tx *gorm.DB, item *Item) error {
	log := logger.NewWithContext(ctx, "itemRepository").Function("Create")

	if err := tx.WithContext(ctx).Create(item).Error; err != nil {
		return log.Err("failed to create item", err, "userID", item.UserID, "name", item.Name)
	}

	r.ClearUserItemCache(ctx, item.UserID)

	return nil
}

func (r *itemRepository) Update(
	ctx context.Context,
	tx *gorm.DB,
	userID, itemID uuid.UUID,
	updated *Item,
) error {
	log := logger.NewWithContext(ctx, "itemRepository").Function("Update")

	result := tx.WithContext(ctx).
		Model(&Item{}).
		Where("id = ? AND user_id = ?", itemID, userID).
		Updates(updated)
	if result.Error != nil {
		return log.Err("failed to update item", result.Error, "itemID", itemID, "userID", userID)
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.ClearUserItemCache(ctx, userID)

	return nil
}

func (r *itemRepository) Delete(
	ctx context.Context,
	tx *gorm.DB,
	userID, itemID uuid.UUID,
) error {
	log := logger.NewWithContext(ctx, "itemRepository").Function("Delete")

	result := tx.WithContext(ctx).
		Where("id = ? AND user_id = ?", itemID, userID).
		Delete(&Item{})
	if result.Error != nil {
		return log.Err("failed to delete item", result.Error, "itemID", itemID, "userID", userID)
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.ClearUserItemCache(ctx, userID)

	return nil
}

func (r *itemRepository) DeleteByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) error {
	log := logger.NewWithContext(ctx, "itemRepository").Function("DeleteByUser")

	if err := tx.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&Item{}).Error; err != nil {
		return log.Err("failed to delete user items", err, "userID", userID)
	}

	r.ClearUserItemCache(ctx, userID)

	return nil
}

func (r *itemRepository) ClearUserItemCache(ctx context.Context, userID uuid.UUID) {
	log := logger.NewWithContext(ctx, "itemRepository").Function("ClearUserItemCache")

	err := database.NewCacheBuilder(r.cache, userID.String()).
		WithContext(ctx).
		WithHash(USER_ITEMS_CACHE_PREFIX).
		Delete()
	if err != nil {
		log.Warn("failed to clear user item cache", "userID", userID, "error", err)
	}
}
