package database

import (
	"context"

	"eventsite/internal/domain"
	"eventsite/internal/domain/entities"
	"eventsite/internal/ports/output"
)

var (
	_ output.AddressRepository = (*PartnerRepository)(nil)
	_ output.ViewerRepository  = (*PartnerRepository)(nil)
)

// PartnerRepository reads partners both as event addresses and as the
// identity behind a user. Reads are not filtered by viewer.
type PartnerRepository struct {
	db DBTX
}

func NewPartnerRepository(db DBTX) *PartnerRepository {
	return &PartnerRepository{db: db}
}

func (r *PartnerRepository) FindByID(ctx context.Context, id uint) (*entities.Address, error) {
	var (
		a     entities.Address
		rowID int64
	)
	err := conn(ctx, r.db).QueryRow(ctx, `
		SELECT id, name, street, city, zip, country FROM partners WHERE id = $1`, int64(id),
	).Scan(&rowID, &a.Name, &a.Street, &a.City, &a.Zip, &a.Country)
	if err != nil {
		return nil, notFound(err, domain.ErrAddressNotFound)
	}
	a.ID = uint(rowID)
	return &a, nil
}

func (r *PartnerRepository) FindByUserID(ctx context.Context, userID uint) (*entities.Viewer, error) {
	var (
		v                entities.Viewer
		rowID, partnerID int64
	)
	err := conn(ctx, r.db).QueryRow(ctx, `
		SELECT u.id, p.id, p.name, p.email, u.locale
		FROM users u JOIN partners p ON p.id = u.partner_id
		WHERE u.id = $1`, int64(userID),
	).Scan(&rowID, &partnerID, &v.Name, &v.Email, &v.Locale)
	if err != nil {
		return nil, notFound(err, domain.ErrViewerNotFound)
	}
	v.UserID = uint(rowID)
	v.PartnerID = uint(partnerID)
	return &v, nil
}
