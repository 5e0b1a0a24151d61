package repository

import (
	"context"
	"time"

	"ifuut-api/internal/domain/ownerrequest"
	"ifuut-api/internal/infra"
	"ifuut-api/internal/infra/db"
	"ifuut-api/internal/infra/repository/converter"
	"ifuut-api/internal/pkg/pgconv"
)

type OwnerRequestRepository struct {
	db db.DBTX
}

func NewOwnerRequestRepository(db db.DBTX) *OwnerRequestRepository {
	return &OwnerRequestRepository{db: db}
}

func (r *OwnerRequestRepository) Create(ctx context.Context, req *ownerrequest.OwnerRequest) (int64, []int64, error) {
	b := req.Business()
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO owner_requests (user_id, business_name, business_address, contact_phone,
			contact_email, description, created_at, status, admin_notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`,
		req.UserID(), b.Name, b.Address, b.ContactPhone, b.ContactEmail, b.Description,
		req.CreatedAt(), req.Status().String(), req.AdminNotes(),
	).Scan(&id)
	if err != nil {
		return 0, nil, infra.WrapRepoErr("failed to create owner request", err)
	}

	subIDs := make([]int64, 0, len(req.SubVenues()))
	for _, sv := range req.SubVenues() {
		var subID int64
		args := append([]any{id}, converter.SubVenueParams(sv)...)
		err := r.db.QueryRow(ctx, `
			INSERT INTO owner_request_quadras (owner_request_id, nome, tipo, capacidade, surface_type,
				pile_height_mm, infill_type, infill_depth_mm, shockpad_present, last_replacement_date,
				maintenance_frequency, surface_condition_rating, certifications, notes)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
			RETURNING id`, args...,
		).Scan(&subID)
		if err != nil {
			return 0, nil, infra.WrapRepoErr("failed to create owner request quadra", err)
		}
		sv.SetID(subID)
		subIDs = append(subIDs, subID)
	}
	return id, subIDs, nil
}

func (r *OwnerRequestRepository) AddImage(ctx context.Context, img ownerrequest.Image) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO owner_request_images (owner_request_id, quadra_id, image, uploaded_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id`,
		pgconv.Int8FromPtr(img.OwnerRequestID), pgconv.Int8FromPtr(img.QuadraID), img.Key, img.UploadedAt,
	).Scan(&id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to add owner request image", err)
	}
	return id, nil
}

func (r *OwnerRequestRepository) LockByID(ctx context.Context, id int64) (*ownerrequest.OwnerRequest, error) {
	var (
		userID     int64
		b          ownerrequest.BusinessInfo
		status     string
		adminNotes string
		createdAt  time.Time
	)
	err := r.db.QueryRow(ctx, `
		SELECT user_id, business_name, business_address, contact_phone, contact_email,
			description, created_at, status, admin_notes
		FROM owner_requests WHERE id = $1
		FOR UPDATE`, id,
	).Scan(&userID, &b.Name, &b.Address, &b.ContactPhone, &b.ContactEmail,
		&b.Description, &createdAt, &status, &adminNotes)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("owner request not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock owner request", err)
	}

	rows, err := r.db.Query(ctx, `
		SELECT id, nome, tipo, capacidade, surface_type, pile_height_mm, infill_type,
			infill_depth_mm, shockpad_present, last_replacement_date, maintenance_frequency,
			surface_condition_rating, certifications, notes
		FROM owner_request_quadras WHERE owner_request_id = $1
		ORDER BY id`, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load owner request quadras", err)
	}
	defer rows.Close()

	var subVenues []*ownerrequest.SubVenue
	for rows.Next() {
		var sv converter.SubVenueRow
		if err := rows.Scan(sv.Dest()...); err != nil {
			return nil, infra.WrapRepoErr("failed to scan owner request quadra", err)
		}
		subVenues = append(subVenues, converter.SubVenueFromRow(sv))
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate owner request quadras", err)
	}

	return ownerrequest.Reconstruct(id, userID, b, ownerrequest.Status(status), adminNotes,
		createdAt, subVenues, nil), nil
}

func (r *OwnerRequestRepository) UpdateStatus(ctx context.Context, id int64, status ownerrequest.Status) error {
	tag, err := r.db.Exec(ctx, `UPDATE owner_requests SET status = $2 WHERE id = $1`, id, status.String())
	if err != nil {
		return infra.WrapRepoErr("failed to update owner request status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("owner request not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *OwnerRequestRepository) UpdateAdminNotes(ctx context.Context, id int64, notes string) error {
	tag, err := r.db.Exec(ctx, `UPDATE owner_requests SET admin_notes = $2 WHERE id = $1`, id, notes)
	if err != nil {
		return infra.WrapRepoErr("failed to update owner request notes", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("owner request not found", nil, infra.KindNotFound)
	}
	return nil
}
