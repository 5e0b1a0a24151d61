package readstore

import (
	"context"

	"ifuut-api/internal/infra"
	"ifuut-api/internal/infra/db"
	"ifuut-api/internal/pkg/pgconv"
	"ifuut-api/internal/usecase/queries"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const ownerRequestSelect = `SELECT r.id, r.user_id, u.username, u.tipo,
	r.business_name, r.business_address, r.contact_phone, r.contact_email, r.description,
	r.created_at, r.status, r.admin_notes
	FROM owner_requests r JOIN users u ON u.id = r.user_id`

const subVenueSelect = `SELECT id, owner_request_id, nome, tipo, capacidade, surface_type,
	pile_height_mm, infill_type, infill_depth_mm, shockpad_present, last_replacement_date,
	maintenance_frequency, surface_condition_rating, certifications, notes
	FROM owner_request_quadras
	WHERE owner_request_id = ANY($1)
	ORDER BY id`

const imageSelect = `SELECT i.id, i.owner_request_id, i.quadra_id, i.image, i.uploaded_at
	FROM owner_request_images i
	LEFT JOIN owner_request_quadras q ON q.id = i.quadra_id
	WHERE i.owner_request_id = ANY($1) OR q.owner_request_id = ANY($1)
	ORDER BY i.id`

type OwnerRequestReadStore struct {
	db db.DBTX
}

func NewOwnerRequestReadStore(db db.DBTX) *OwnerRequestReadStore {
	return &OwnerRequestReadStore{db: db}
}

func (r *OwnerRequestReadStore) FindByID(ctx context.Context, id int64) (*queries.OwnerRequestView, error) {
	row := r.db.QueryRow(ctx, ownerRequestSelect+` WHERE r.id = $1`, id)
	v, err := scanOwnerRequest(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("owner request not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find owner request", err)
	}
	if err := r.attachChildren(ctx, []*queries.OwnerRequestView{v}); err != nil {
		return nil, err
	}
	return v, nil
}

func (r *OwnerRequestReadStore) List(ctx context.Context, filter queries.OwnerRequestFilter) ([]*queries.OwnerRequestView, error) {
	var w where
	if filter.UserID != nil {
		w.add("r.user_id = " + w.arg(*filter.UserID))
	}
	if filter.Status != "" {
		w.add("r.status = " + w.arg(filter.Status))
	}
	w.search(filter.Search, "r.business_name", "u.username", "r.contact_email", "r.contact_phone")
	sql := ownerRequestSelect + w.String() + ` ORDER BY r.created_at DESC, r.id DESC` + w.limit(filter.Limit)

	rows, err := r.db.Query(ctx, sql, w.args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list owner requests", err)
	}
	defer rows.Close()

	out := []*queries.OwnerRequestView{}
	for rows.Next() {
		v, err := scanOwnerRequest(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan owner request", err)
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate owner requests", err)
	}
	if err := r.attachChildren(ctx, out); err != nil {
		return nil, err
	}
	return out, nil
}

// attachChildren loads sub-venues and images for all requests with two queries.
func (r *OwnerRequestReadStore) attachChildren(ctx context.Context, reqs []*queries.OwnerRequestView) error {
	if len(reqs) == 0 {
		return nil
	}
	ids := make([]int64, len(reqs))
	byID := make(map[int64]*queries.OwnerRequestView, len(reqs))
	for i, v := range reqs {
		ids[i] = v.ID
		byID[v.ID] = v
		v.Quadras = []queries.SubVenueView{}
		v.Images = []queries.ImageView{}
	}

	// sub-venue id -> (request, index in request.Quadras)
	type slot struct {
		req *queries.OwnerRequestView
		idx int
	}
	subVenues := map[int64]slot{}

	rows, err := r.db.Query(ctx, subVenueSelect, ids)
	if err != nil {
		return infra.WrapRepoErr("failed to load owner request quadras", err)
	}
	for rows.Next() {
		sv, requestID, err := scanSubVenue(rows)
		if err != nil {
			rows.Close()
			return infra.WrapRepoErr("failed to scan owner request quadra", err)
		}
		req := byID[requestID]
		req.Quadras = append(req.Quadras, *sv)
		subVenues[sv.ID] = slot{req: req, idx: len(req.Quadras) - 1}
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return infra.WrapRepoErr("failed to iterate owner request quadras", err)
	}

	rows, err = r.db.Query(ctx, imageSelect, ids)
	if err != nil {
		return infra.WrapRepoErr("failed to load owner request images", err)
	}
	defer rows.Close()
	for rows.Next() {
		var (
			img        queries.ImageView
			requestID  pgtype.Int8
			subVenueID pgtype.Int8
		)
		if err := rows.Scan(&img.ID, &requestID, &subVenueID, &img.Key, &img.UploadedAt); err != nil {
			return infra.WrapRepoErr("failed to scan owner request image", err)
		}
		if subVenueID.Valid {
			if s, ok := subVenues[subVenueID.Int64]; ok {
				s.req.Quadras[s.idx].Images = append(s.req.Quadras[s.idx].Images, img)
			}
			continue
		}
		if requestID.Valid {
			if req, ok := byID[requestID.Int64]; ok {
				req.Images = append(req.Images, img)
			}
		}
	}
	if err := rows.Err(); err != nil {
		return infra.WrapRepoErr("failed to iterate owner request images", err)
	}
	return nil
}

func scanOwnerRequest(row pgx.Row) (*queries.OwnerRequestView, error) {
	var v queries.OwnerRequestView
	if err := row.Scan(&v.ID, &v.UserID, &v.Username, &v.UserTipo,
		&v.BusinessName, &v.BusinessAddress, &v.ContactPhone, &v.ContactEmail, &v.Description,
		&v.CreatedAt, &v.Status, &v.AdminNotes); err != nil {
		return nil, err
	}
	return &v, nil
}

func scanSubVenue(row pgx.Row) (*queries.SubVenueView, int64, error) {
	var (
		v                             queries.SubVenueView
		requestID                     int64
		capacidade, pile, depth, rate pgtype.Int4
		replaced                      pgtype.Date
	)
	if err := row.Scan(&v.ID, &requestID, &v.Nome, &v.Tipo, &capacidade, &v.SurfaceType,
		&pile, &v.InfillType, &depth, &v.ShockpadPresent, &replaced,
		&v.MaintenanceFrequency, &rate, &v.Certifications, &v.Notes); err != nil {
		return nil, 0, err
	}
	v.Capacidade = pgconv.Int32PtrFromPgtype(capacidade)
	v.PileHeightMM = pgconv.Int32PtrFromPgtype(pile)
	v.InfillDepthMM = pgconv.Int32PtrFromPgtype(depth)
	v.SurfaceConditionRating = pgconv.Int32PtrFromPgtype(rate)
	v.LastReplacementDate = pgconv.DatePtrFromPgtype(replaced)
	v.Images = []queries.ImageView{}
	return &v, requestID, nil
}
