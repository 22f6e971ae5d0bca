package repository

import (
	"encoding/json"
	"time"

	"kejaspace/internal/domain"
)

type userRow struct {
	ID       int64  `gorm:"column:id;primaryKey;autoIncrement"`
	Username string `gorm:"column:username;uniqueIndex;not null"`
	Password string `gorm:"column:password;not null"`
}

func (userRow) TableName() string { return "users" }

func toDomainUser(m userRow) *domain.User {
	return &domain.User{ID: m.ID, Username: m.Username, Password: m.Password}
}

type accountRow struct {
	ID           string    `gorm:"column:id;primaryKey"`
	Email        string    `gorm:"column:email;uniqueIndex;not null"`
	PasswordHash string    `gorm:"column:password_hash;not null"`
	CreatedAt    time.Time `gorm:"column:created_at"`
}

func (accountRow) TableName() string { return "accounts" }

func toDomainAccount(m accountRow) *domain.Account {
	return &domain.Account{
		ID:           m.ID,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		CreatedAt:    m.CreatedAt,
	}
}

type userProfileRow struct {
	ID        string    `gorm:"column:id;primaryKey"`
	FullName  string    `gorm:"column:full_name;not null"`
	Phone     *string   `gorm:"column:phone"`
	AvatarURL *string   `gorm:"column:avatar_url"`
	UserType  string    `gorm:"column:user_type;not null"`
	Verified  bool      `gorm:"column:verified"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (userProfileRow) TableName() string { return "user_profiles" }

func toDomainProfile(m userProfileRow) *domain.UserProfile {
	var phone, avatar string
	if m.Phone != nil {
		phone = *m.Phone
	}
	if m.AvatarURL != nil {
		avatar = *m.AvatarURL
	}
	return &domain.UserProfile{
		ID:        m.ID,
		FullName:  m.FullName,
		Phone:     phone,
		AvatarURL: avatar,
		UserType:  domain.UserType(m.UserType),
		Verified:  m.Verified,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func toProfileRow(p *domain.UserProfile) userProfileRow {
	return userProfileRow{
		ID:        p.ID,
		FullName:  p.FullName,
		Phone:     nullableString(p.Phone),
		AvatarURL: nullableString(p.AvatarURL),
		UserType:  string(p.UserType),
		Verified:  p.Verified,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

type propertyRow struct {
	ID               string    `gorm:"column:id;primaryKey"`
	Title            string    `gorm:"column:title;not null"`
	Location         string    `gorm:"column:location;not null"`
	Price            float64   `gorm:"column:price;not null"`
	PriceType        string    `gorm:"column:price_type;not null"`
	Rating           float64   `gorm:"column:rating"`
	Reviews          int       `gorm:"column:reviews"`
	Bedrooms         float64   `gorm:"column:bedrooms"`
	Bathrooms        float64   `gorm:"column:bathrooms"`
	Area             int       `gorm:"column:area"`
	Image            string    `gorm:"column:image;not null"`
	Type             string    `gorm:"column:type;not null;index"`
	Featured         bool      `gorm:"column:featured;index"`
	ManagedBy        *string   `gorm:"column:managed_by"`
	LandlordName     *string   `gorm:"column:landlord_name"`
	LandlordVerified bool      `gorm:"column:landlord_verified"`
	AgencyName       *string   `gorm:"column:agency_name"`
	AgencyVerified   bool      `gorm:"column:agency_verified"`
	CreatedAt        time.Time `gorm:"column:created_at;index"`
	UpdatedAt        time.Time `gorm:"column:updated_at"`
}

func (propertyRow) TableName() string { return "properties" }

func toDomainProperty(m propertyRow) *domain.Property {
	p := &domain.Property{
		ID:        m.ID,
		Title:     m.Title,
		Location:  m.Location,
		Price:     m.Price,
		PriceType: domain.PriceType(m.PriceType),
		Rating:    m.Rating,
		Reviews:   m.Reviews,
		Bedrooms:  m.Bedrooms,
		Bathrooms: m.Bathrooms,
		Area:      m.Area,
		Image:     m.Image,
		Type:      domain.PropertyType(m.Type),
		Featured:  m.Featured,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}

	if m.ManagedBy != nil {
		mgmt := domain.Management{Kind: domain.ManagedByKind(*m.ManagedBy)}
		switch mgmt.Kind {
		case domain.ManagedByLandlord:
			if m.LandlordName != nil {
				mgmt.Name = *m.LandlordName
			}
			mgmt.Verified = m.LandlordVerified
		case domain.ManagedByAgency:
			if m.AgencyName != nil {
				mgmt.Name = *m.AgencyName
			}
			mgmt.Verified = m.AgencyVerified
		}
		p.Management = mgmt
	}

	return p
}

func toPropertyRow(p *domain.Property) propertyRow {
	m := propertyRow{
		ID:        p.ID,
		Title:     p.Title,
		Location:  p.Location,
		Price:     p.Price,
		PriceType: string(p.PriceType),
		Rating:    p.Rating,
		Reviews:   p.Reviews,
		Bedrooms:  p.Bedrooms,
		Bathrooms: p.Bathrooms,
		Area:      p.Area,
		Image:     p.Image,
		Type:      string(p.Type),
		Featured:  p.Featured,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}

	if !p.Management.IsZero() {
		kind := string(p.Management.Kind)
		m.ManagedBy = &kind
		switch p.Management.Kind {
		case domain.ManagedByLandlord:
			m.LandlordName = nullableString(p.Management.Name)
			m.LandlordVerified = p.Management.Verified
		case domain.ManagedByAgency:
			m.AgencyName = nullableString(p.Management.Name)
			m.AgencyVerified = p.Management.Verified
		}
	}

	return m
}

type marketplaceItemRow struct {
	ID        string    `gorm:"column:id;primaryKey"`
	Title     string    `gorm:"column:title;not null"`
	Price     float64   `gorm:"column:price;not null"`
	Condition string    `gorm:"column:condition;not null"`
	Location  string    `gorm:"column:location;not null"`
	Image     string    `gorm:"column:image;not null"`
	Category  string    `gorm:"column:category;not null;index"`
	CreatedAt time.Time `gorm:"column:created_at;index"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (marketplaceItemRow) TableName() string { return "marketplace_items" }

func toDomainMarketplaceItem(m marketplaceItemRow) *domain.MarketplaceItem {
	return &domain.MarketplaceItem{
		ID:        m.ID,
		Title:     m.Title,
		Price:     m.Price,
		Condition: m.Condition,
		Location:  m.Location,
		Image:     m.Image,
		Category:  m.Category,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func toMarketplaceItemRow(i *domain.MarketplaceItem) marketplaceItemRow {
	return marketplaceItemRow{
		ID:        i.ID,
		Title:     i.Title,
		Price:     i.Price,
		Condition: i.Condition,
		Location:  i.Location,
		Image:     i.Image,
		Category:  i.Category,
		CreatedAt: i.CreatedAt,
		UpdatedAt: i.UpdatedAt,
	}
}

type movingServiceRow struct {
	ID         string    `gorm:"column:id;primaryKey"`
	Name       string    `gorm:"column:name;not null"`
	Rating     float64   `gorm:"column:rating;index"`
	Reviews    int       `gorm:"column:reviews"`
	Location   string    `gorm:"column:location;not null"`
	Services   string    `gorm:"column:services;not null"`
	PriceRange string    `gorm:"column:price_range;not null"`
	Verified   bool      `gorm:"column:verified"`
	Image      string    `gorm:"column:image;not null"`
	CreatedAt  time.Time `gorm:"column:created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at"`
}

func (movingServiceRow) TableName() string { return "moving_services" }

func toDomainMovingService(m movingServiceRow) *domain.MovingService {
	services := []string{}
	if m.Services != "" {
		// Tolerate rows written before the column was populated.
		_ = json.Unmarshal([]byte(m.Services), &services)
	}
	return &domain.MovingService{
		ID:         m.ID,
		Name:       m.Name,
		Rating:     m.Rating,
		Reviews:    m.Reviews,
		Location:   m.Location,
		Services:   services,
		PriceRange: m.PriceRange,
		Verified:   m.Verified,
		Image:      m.Image,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

func toMovingServiceRow(s *domain.MovingService) movingServiceRow {
	services := s.Services
	if services == nil {
		services = []string{}
	}
	encoded, _ := json.Marshal(services)
	return movingServiceRow{
		ID:         s.ID,
		Name:       s.Name,
		Rating:     s.Rating,
		Reviews:    s.Reviews,
		Location:   s.Location,
		Services:   string(encoded),
		PriceRange: s.PriceRange,
		Verified:   s.Verified,
		Image:      s.Image,
		CreatedAt:  s.CreatedAt,
		UpdatedAt:  s.UpdatedAt,
	}
}

type bookingRow struct {
	ID            string    `gorm:"column:id;primaryKey"`
	UserID        string    `gorm:"column:user_id;not null;index"`
	PropertyID    string    `gorm:"column:property_id;not null;index"`
	CheckInDate   time.Time `gorm:"column:check_in_date;not null"`
	CheckOutDate  time.Time `gorm:"column:check_out_date;not null"`
	TotalPrice    float64   `gorm:"column:total_price;not null"`
	Status        string    `gorm:"column:status;not null"`
	PaymentStatus string    `gorm:"column:payment_status;not null"`
	CreatedAt     time.Time `gorm:"column:created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at"`
}

func (bookingRow) TableName() string { return "bookings" }

func toDomainBooking(m bookingRow) *domain.Booking {
	return &domain.Booking{
		ID:            m.ID,
		UserID:        m.UserID,
		PropertyID:    m.PropertyID,
		CheckInDate:   m.CheckInDate,
		CheckOutDate:  m.CheckOutDate,
		TotalPrice:    m.TotalPrice,
		Status:        domain.BookingStatus(m.Status),
		PaymentStatus: domain.PaymentStatus(m.PaymentStatus),
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func toBookingRow(b *domain.Booking) bookingRow {
	return bookingRow{
		ID:            b.ID,
		UserID:        b.UserID,
		PropertyID:    b.PropertyID,
		CheckInDate:   b.CheckInDate,
		CheckOutDate:  b.CheckOutDate,
		TotalPrice:    b.TotalPrice,
		Status:        string(b.Status),
		PaymentStatus: string(b.PaymentStatus),
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}

type movingBookingRow struct {
	ID             string    `gorm:"column:id;primaryKey"`
	UserID         string    `gorm:"column:user_id;not null;index"`
	ServiceID      string    `gorm:"column:service_id;not null;index"`
	BookingDate    time.Time `gorm:"column:booking_date;not null"`
	FromAddress    string    `gorm:"column:from_address;not null"`
	ToAddress      string    `gorm:"column:to_address;not null"`
	EstimatedPrice float64   `gorm:"column:estimated_price;not null"`
	Status         string    `gorm:"column:status;not null"`
	PaymentStatus  string    `gorm:"column:payment_status;not null"`
	CreatedAt      time.Time `gorm:"column:created_at"`
	UpdatedAt      time.Time `gorm:"column:updated_at"`
}

func (movingBookingRow) TableName() string { return "moving_bookings" }

func toDomainMovingBooking(m movingBookingRow) *domain.MovingBooking {
	return &domain.MovingBooking{
		ID:             m.ID,
		UserID:         m.UserID,
		ServiceID:      m.ServiceID,
		BookingDate:    m.BookingDate,
		FromAddress:    m.FromAddress,
		ToAddress:      m.ToAddress,
		EstimatedPrice: m.EstimatedPrice,
		Status:         domain.BookingStatus(m.Status),
		PaymentStatus:  domain.PaymentStatus(m.PaymentStatus),
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

func toMovingBookingRow(b *domain.MovingBooking) movingBookingRow {
	return movingBookingRow{
		ID:             b.ID,
		UserID:         b.UserID,
		ServiceID:      b.ServiceID,
		BookingDate:    b.BookingDate,
		FromAddress:    b.FromAddress,
		ToAddress:      b.ToAddress,
		EstimatedPrice: b.EstimatedPrice,
		Status:         string(b.Status),
		PaymentStatus:  string(b.PaymentStatus),
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	}
}

type reviewRow struct {
	ID                string    `gorm:"column:id;primaryKey"`
	UserID            string    `gorm:"column:user_id;not null;index"`
	PropertyID        *string   `gorm:"column:property_id;index"`
	MarketplaceItemID *string   `gorm:"column:marketplace_item_id;index"`
	MovingServiceID   *string   `gorm:"column:moving_service_id;index"`
	Rating            int       `gorm:"column:rating;not null"`
	Comment           *string   `gorm:"column:comment"`
	CreatedAt         time.Time `gorm:"column:created_at"`
	UpdatedAt         time.Time `gorm:"column:updated_at"`
}

func (reviewRow) TableName() string { return "reviews" }

func toDomainReview(m reviewRow) *domain.Review {
	var comment string
	if m.Comment != nil {
		comment = *m.Comment
	}
	return &domain.Review{
		ID:                m.ID,
		UserID:            m.UserID,
		PropertyID:        m.PropertyID,
		MarketplaceItemID: m.MarketplaceItemID,
		MovingServiceID:   m.MovingServiceID,
		Rating:            m.Rating,
		Comment:           comment,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

func toReviewRow(r *domain.Review) reviewRow {
	return reviewRow{
		ID:                r.ID,
		UserID:            r.UserID,
		PropertyID:        r.PropertyID,
		MarketplaceItemID: r.MarketplaceItemID,
		MovingServiceID:   r.MovingServiceID,
		Rating:            r.Rating,
		Comment:           nullableString(r.Comment),
		CreatedAt:         r.CreatedAt,
		UpdatedAt:         r.UpdatedAt,
	}
}

type conversationRow struct {
	ID             string    `gorm:"column:id;primaryKey"`
	Participant1ID string    `gorm:"column:participant1_id;not null;index"`
	Participant2ID string    `gorm:"column:participant2_id;not null;index"`
	CreatedAt      time.Time `gorm:"column:created_at"`
	UpdatedAt      time.Time `gorm:"column:updated_at"`
}

func (conversationRow) TableName() string { return "conversations" }

func toDomainConversation(m conversationRow) *domain.Conversation {
	return &domain.Conversation{
		ID:             m.ID,
		Participant1ID: m.Participant1ID,
		Participant2ID: m.Participant2ID,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

type messageRow struct {
	ID             string    `gorm:"column:id;primaryKey"`
	ConversationID string    `gorm:"column:conversation_id;not null;index"`
	SenderID       string    `gorm:"column:sender_id;not null"`
	Content        string    `gorm:"column:content;not null"`
	Read           bool      `gorm:"column:read"`
	CreatedAt      time.Time `gorm:"column:created_at"`
}

func (messageRow) TableName() string { return "messages" }

func toDomainMessage(m messageRow) *domain.Message {
	return &domain.Message{
		ID:             m.ID,
		ConversationID: m.ConversationID,
		SenderID:       m.SenderID,
		Content:        m.Content,
		Read:           m.Read,
		CreatedAt:      m.CreatedAt,
	}
}

func nullableString(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}
