package ownerrequest

import (
	"errors"
	"net/mail"
	"strings"
	"time"

	"ifuut-api/internal/domain/quadra"
)

var (
	ErrBusinessNameRequired = errors.New("business_name is required")
	ErrBusinessFieldTooLong = errors.New("business field exceeds its maximum length")
	ErrInvalidContactEmail  = errors.New("contact_email must be a valid email address")
	ErrRequesterRequired    = errors.New("user is required")
)

const (
	MaxBusinessNameLength    = 255
	MaxBusinessAddressLength = 400
	MaxContactPhoneLength    = 50
	MaxContactEmailLength    = 254
)

type BusinessInfo struct {
	Name         string
	Address      string
	ContactPhone string
	ContactEmail string
	Description  string
}

func (b BusinessInfo) validate() (BusinessInfo, error) {
	b.Name = strings.TrimSpace(b.Name)
	b.Address = strings.TrimSpace(b.Address)
	b.ContactPhone = strings.TrimSpace(b.ContactPhone)
	b.ContactEmail = strings.TrimSpace(b.ContactEmail)
	if b.Name == "" {
		return b, ErrBusinessNameRequired
	}
	if tooLong(b.Name, MaxBusinessNameLength) ||
		tooLong(b.Address, MaxBusinessAddressLength) ||
		tooLong(b.ContactPhone, MaxContactPhoneLength) ||
		tooLong(b.ContactEmail, MaxContactEmailLength) {
		return b, ErrBusinessFieldTooLong
	}
	if b.ContactEmail != "" {
		addr, err := mail.ParseAddress(b.ContactEmail)
		if err != nil || addr.Address != b.ContactEmail {
			return b, ErrInvalidContactEmail
		}
	}
	return b, nil
}

// OwnerRequest is a user's application to become a venue owner.
type OwnerRequest struct {
	id         int64
	userID     int64
	business   BusinessInfo
	status     Status
	adminNotes string
	createdAt  time.Time
	subVenues  []*SubVenue
	images     []Image
}

func NewOwnerRequest(userID int64, business BusinessInfo, subVenues []*SubVenue, now time.Time) (*OwnerRequest, error) {
	if userID <= 0 {
		return nil, ErrRequesterRequired
	}
	b, err := business.validate()
	if err != nil {
		return nil, err
	}
	return &OwnerRequest{
		userID:    userID,
		business:  b,
		status:    StatusPending,
		createdAt: now,
		subVenues: subVenues,
	}, nil
}

func Reconstruct(id, userID int64, business BusinessInfo, status Status, adminNotes string, createdAt time.Time,
	subVenues []*SubVenue, images []Image) *OwnerRequest {
	return &OwnerRequest{
		id:         id,
		userID:     userID,
		business:   business,
		status:     status,
		adminNotes: adminNotes,
		createdAt:  createdAt,
		subVenues:  subVenues,
		images:     images,
	}
}

func (r *OwnerRequest) MarkPaid() error {
	return r.transition(StatusPaid)
}

func (r *OwnerRequest) Reject() error {
	return r.transition(StatusRejected)
}

// ApprovalPlan lists what approving a request produces: the promoted user and one venue per sub-venue.
type ApprovalPlan struct {
	OwnerUserID int64
	Quadras     []*quadra.Quadra
}

func (r *OwnerRequest) Approve() (*ApprovalPlan, error) {
	if !r.status.CanTransitionTo(StatusApproved) {
		return nil, ErrTransitionDenied
	}
	plan := &ApprovalPlan{OwnerUserID: r.userID}
	for _, sv := range r.subVenues {
		q, err := sv.ToQuadra(r.userID, r.business.Address)
		if err != nil {
			return nil, err
		}
		plan.Quadras = append(plan.Quadras, q)
	}
	r.status = StatusApproved
	return plan, nil
}

func (r *OwnerRequest) SetAdminNotes(notes string) {
	r.adminNotes = notes
}

func (r *OwnerRequest) VisibleTo(actorID int64, isStaff bool) bool {
	return isStaff || r.userID == actorID
}

func (r *OwnerRequest) transition(next Status) error {
	if !r.status.CanTransitionTo(next) {
		return ErrTransitionDenied
	}
	r.status = next
	return nil
}

func (r *OwnerRequest) ID() int64              { return r.id }
func (r *OwnerRequest) UserID() int64          { return r.userID }
func (r *OwnerRequest) Business() BusinessInfo { return r.business }
func (r *OwnerRequest) Status() Status         { return r.status }
func (r *OwnerRequest) AdminNotes() string     { return r.adminNotes }
func (r *OwnerRequest) CreatedAt() time.Time   { return r.createdAt }
func (r *OwnerRequest) SubVenues() []*SubVenue { return r.subVenues }
func (r *OwnerRequest) Images() []Image        { return r.images }
