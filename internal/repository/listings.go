package repository

import (
	"context"
	"strings"

	"kejaspace/internal/domain"

	"github.com/google/uuid"
)

/* ---------- PROPERTIES ---------- */

func (s *DatabaseStorage) GetProperties(ctx context.Context, f PropertyFilters) ([]domain.Property, error) {
	q := s.db.WithContext(ctx).Model(&propertyRow{})

	if f.Type != "" {
		q = q.Where("type = ?", f.Type)
	}
	if f.Featured != nil {
		q = q.Where("featured = ?", *f.Featured)
	}

	var rows []propertyRow
	if err := q.Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}

	props := make([]domain.Property, 0, len(rows))
	for _, m := range rows {
		props = append(props, *toDomainProperty(m))
	}
	return props, nil
}

func (s *DatabaseStorage) GetProperty(ctx context.Context, id string) (*domain.Property, error) {
	var m propertyRow
	tx := s.db.WithContext(ctx).Where("id = ?", id).First(&m)
	if tx.Error != nil {
		if isNotFound(tx.Error) {
			return nil, nil
		}
		return nil, tx.Error
	}
	return toDomainProperty(m), nil
}

// SearchProperties matches the query against title and location,
// case-insensitive, then applies the compound filters.
func (s *DatabaseStorage) SearchProperties(ctx context.Context, query string, f PropertySearch) ([]domain.Property, error) {
	q := s.db.WithContext(ctx).Model(&propertyRow{})

	if query != "" {
		pattern := "%" + strings.ToLower(query) + "%"
		q = q.Where("LOWER(title) LIKE ? OR LOWER(location) LIKE ?", pattern, pattern)
	}
	if f.Type != "" {
		q = q.Where("type = ?", f.Type)
	}
	if f.MinPrice > 0 {
		q = q.Where("price >= ?", f.MinPrice)
	}
	if f.MaxPrice > 0 {
		q = q.Where("price <= ?", f.MaxPrice)
	}
	if f.Location != "" {
		q = q.Where("LOWER(location) LIKE ?", "%"+strings.ToLower(f.Location)+"%")
	}
	if f.MinBedrooms > 0 {
		q = q.Where("bedrooms >= ?", f.MinBedrooms)
	}

	var rows []propertyRow
	if err := q.Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}

	props := make([]domain.Property, 0, len(rows))
	for _, m := range rows {
		props = append(props, *toDomainProperty(m))
	}
	return props, nil
}

func (s *DatabaseStorage) GetPropertiesByLandlord(ctx context.Context, landlordName string) ([]domain.Property, error) {
	var rows []propertyRow
	err := s.db.WithContext(ctx).
		Where("managed_by = ? AND landlord_name = ?", string(domain.ManagedByLandlord), landlordName).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	props := make([]domain.Property, 0, len(rows))
	for _, m := range rows {
		props = append(props, *toDomainProperty(m))
	}
	return props, nil
}

func (s *DatabaseStorage) CreateProperty(ctx context.Context, p *domain.Property) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	m := toPropertyRow(p)
	tx := s.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*p = *toDomainProperty(m)
	return nil
}

func (s *DatabaseStorage) UpdateProperty(ctx context.Context, p *domain.Property) error {
	m := toPropertyRow(p)
	tx := s.db.WithContext(ctx).Save(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*p = *toDomainProperty(m)
	return nil
}

func (s *DatabaseStorage) DeleteProperty(ctx context.Context, id string) error {
	return s.db.WithContext(ctx).Where("id = ?", id).Delete(&propertyRow{}).Error
}

/* ---------- MARKETPLACE ITEMS ---------- */

func (s *DatabaseStorage) GetMarketplaceItems(ctx context.Context) ([]domain.MarketplaceItem, error) {
	var rows []marketplaceItemRow
	err := s.db.WithContext(ctx).Order("created_at DESC").Find(&rows).Error
	if err != nil {
		return nil, err
	}

	items := make([]domain.MarketplaceItem, 0, len(rows))
	for _, m := range rows {
		items = append(items, *toDomainMarketplaceItem(m))
	}
	return items, nil
}

func (s *DatabaseStorage) GetMarketplaceItem(ctx context.Context, id string) (*domain.MarketplaceItem, error) {
	var m marketplaceItemRow
	tx := s.db.WithContext(ctx).Where("id = ?", id).First(&m)
	if tx.Error != nil {
		if isNotFound(tx.Error) {
			return nil, nil
		}
		return nil, tx.Error
	}
	return toDomainMarketplaceItem(m), nil
}

func (s *DatabaseStorage) CreateMarketplaceItem(ctx context.Context, i *domain.MarketplaceItem) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	m := toMarketplaceItemRow(i)
	tx := s.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*i = *toDomainMarketplaceItem(m)
	return nil
}

/* ---------- MOVING SERVICES ---------- */

func (s *DatabaseStorage) GetMovingServices(ctx context.Context) ([]domain.MovingService, error) {
	var rows []movingServiceRow
	err := s.db.WithContext(ctx).Order("rating DESC").Find(&rows).Error
	if err != nil {
		return nil, err
	}

	services := make([]domain.MovingService, 0, len(rows))
	for _, m := range rows {
		services = append(services, *toDomainMovingService(m))
	}
	return services, nil
}

func (s *DatabaseStorage) GetMovingService(ctx context.Context, id string) (*domain.MovingService, error) {
	var m movingServiceRow
	tx := s.db.WithContext(ctx).Where("id = ?", id).First(&m)
	if tx.Error != nil {
		if isNotFound(tx.Error) {
			return nil, nil
		}
		return nil, tx.Error
	}
	return toDomainMovingService(m), nil
}

func (s *DatabaseStorage) CreateMovingService(ctx context.Context, svc *domain.MovingService) error {
	if svc.ID == "" {
		svc.ID = uuid.NewString()
	}
	m := toMovingServiceRow(svc)
	tx := s.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*svc = *toDomainMovingService(m)
	return nil
}
