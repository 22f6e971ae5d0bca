package catalog

import (
	"context"

	"kejaspace/internal/domain"
	"kejaspace/internal/repository"
)

type Service struct {
	store repository.Storage
}

func NewService(store repository.Storage) *Service {
	return &Service{store: store}
}

/* ---------- READS ---------- */

func (s *Service) GetProperties(ctx context.Context, f repository.PropertyFilters) ([]domain.Property, error) {
	return s.store.GetProperties(ctx, f)
}

func (s *Service) GetProperty(ctx context.Context, id string) (*domain.Property, error) {
	return s.store.GetProperty(ctx, id)
}

func (s *Service) SearchProperties(ctx context.Context, query string, f repository.PropertySearch) ([]domain.Property, error) {
	return s.store.SearchProperties(ctx, query, f)
}

func (s *Service) GetMarketplaceItems(ctx context.Context) ([]domain.MarketplaceItem, error) {
	return s.store.GetMarketplaceItems(ctx)
}

func (s *Service) GetMarketplaceItem(ctx context.Context, id string) (*domain.MarketplaceItem, error) {
	return s.store.GetMarketplaceItem(ctx, id)
}

func (s *Service) GetMovingServices(ctx context.Context) ([]domain.MovingService, error) {
	return s.store.GetMovingServices(ctx)
}

func (s *Service) GetMovingService(ctx context.Context, id string) (*domain.MovingService, error) {
	return s.store.GetMovingService(ctx, id)
}

/* ---------- PROPERTY MANAGEMENT ---------- */

func (s *Service) CreateProperty(ctx context.Context, req CreatePropertyRequest) (*domain.Property, error) {
	if !domain.IsValidPropertyType(req.Type) {
		return nil, ErrInvalidType
	}
	switch domain.PriceType(req.PriceType) {
	case domain.PricePerMonth, domain.PricePerNight:
	default:
		return nil, ErrInvalidPriceType
	}

	mgmt, err := managementFromRequest(req)
	if err != nil {
		return nil, err
	}

	p := &domain.Property{
		Title:      req.Title,
		Location:   req.Location,
		Price:      req.Price,
		PriceType:  domain.PriceType(req.PriceType),
		Bedrooms:   req.Bedrooms,
		Bathrooms:  req.Bathrooms,
		Area:       req.Area,
		Image:      req.Image,
		Type:       domain.PropertyType(req.Type),
		Featured:   req.Featured,
		Management: mgmt,
	}

	if err := s.store.CreateProperty(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) UpdateProperty(ctx context.Context, id string, req UpdatePropertyRequest) (*domain.Property, error) {
	p, err := s.store.GetProperty(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}

	if req.Title != nil {
		p.Title = *req.Title
	}
	if req.Location != nil {
		p.Location = *req.Location
	}
	if req.Price != nil && *req.Price > 0 {
		p.Price = *req.Price
	}
	if req.PriceType != nil {
		switch domain.PriceType(*req.PriceType) {
		case domain.PricePerMonth, domain.PricePerNight:
			p.PriceType = domain.PriceType(*req.PriceType)
		default:
			return nil, ErrInvalidPriceType
		}
	}
	if req.Bedrooms != nil && *req.Bedrooms >= 0 {
		p.Bedrooms = *req.Bedrooms
	}
	if req.Bathrooms != nil && *req.Bathrooms >= 0 {
		p.Bathrooms = *req.Bathrooms
	}
	if req.Area != nil && *req.Area >= 0 {
		p.Area = *req.Area
	}
	if req.Image != nil {
		p.Image = *req.Image
	}
	if req.Type != nil {
		if !domain.IsValidPropertyType(*req.Type) {
			return nil, ErrInvalidType
		}
		p.Type = domain.PropertyType(*req.Type)
	}
	if req.Featured != nil {
		p.Featured = *req.Featured
	}
	if req.ManagedBy != nil {
		mgmt, err := managementFromUpdate(req)
		if err != nil {
			return nil, err
		}
		p.Management = mgmt
	}

	if err := s.store.UpdateProperty(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) DeleteProperty(ctx context.Context, id string) error {
	return s.store.DeleteProperty(ctx, id)
}

func (s *Service) GetPropertiesByLandlord(ctx context.Context, name string) ([]domain.Property, error) {
	return s.store.GetPropertiesByLandlord(ctx, name)
}

// managementFromRequest builds the tagged variant from the flat wire
// fields; the pair belonging to the other kind is ignored.
func managementFromRequest(req CreatePropertyRequest) (domain.Management, error) {
	switch domain.ManagedByKind(req.ManagedBy) {
	case "":
		return domain.Management{}, nil
	case domain.ManagedByLandlord:
		return domain.Management{
			Kind:     domain.ManagedByLandlord,
			Name:     req.LandlordName,
			Verified: req.LandlordVerified,
		}, nil
	case domain.ManagedByAgency:
		return domain.Management{
			Kind:     domain.ManagedByAgency,
			Name:     req.AgencyName,
			Verified: req.AgencyVerified,
		}, nil
	}
	return domain.Management{}, ErrInvalidManagedBy
}

func managementFromUpdate(req UpdatePropertyRequest) (domain.Management, error) {
	kind := domain.ManagedByKind(*req.ManagedBy)
	switch kind {
	case "":
		return domain.Management{}, nil
	case domain.ManagedByLandlord:
		m := domain.Management{Kind: kind}
		if req.LandlordName != nil {
			m.Name = *req.LandlordName
		}
		if req.LandlordVerified != nil {
			m.Verified = *req.LandlordVerified
		}
		return m, nil
	case domain.ManagedByAgency:
		m := domain.Management{Kind: kind}
		if req.AgencyName != nil {
			m.Name = *req.AgencyName
		}
		if req.AgencyVerified != nil {
			m.Verified = *req.AgencyVerified
		}
		return m, nil
	}
	return domain.Management{}, ErrInvalidManagedBy
}
