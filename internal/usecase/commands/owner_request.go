package commands

import (
	"context"
	"fmt"
	"sort"
	"time"

	"ifuut-api/internal/domain/ownerrequest"
	reqdto "ifuut-api/internal/handler/dto/request"
	"ifuut-api/internal/infra/storage"
	"ifuut-api/internal/pkg/clock"
	"ifuut-api/internal/pkg/errs"
	"ifuut-api/internal/usecase/shared"
)

var ErrOwnerRequestNotFound = errs.Mark(errs.New("owner request not found"), errs.ErrOwnerRequestNotFound)

type OwnerRequestCommands interface {
	// Submit stores the request with its sub-venues and images in one transaction.
	Submit(ctx context.Context, actor *shared.Actor, req reqdto.OwnerRequestRequest) (int64, error)
}

type ownerRequestCommandsImpl struct {
	uow     shared.UnitOfWork
	images  shared.ImageStorage
	counts  shared.CountsInvalidator
	metrics shared.Metrics
	clock   clock.Clock
}

func NewOwnerRequestCommands(
	uow shared.UnitOfWork,
	images shared.ImageStorage,
	counts shared.CountsInvalidator,
	metrics shared.Metrics,
	clk clock.Clock,
) OwnerRequestCommands {
	return &ownerRequestCommandsImpl{
		uow:     uow,
		images:  images,
		counts:  counts,
		metrics: metrics,
		clock:   clk,
	}
}

// storedUploads tracks blob keys written before the transaction, grouped by owner.
type storedUploads struct {
	request   []string
	subVenues map[int][]string
	all       []string
}

func (uc *ownerRequestCommandsImpl) Submit(ctx context.Context, actor *shared.Actor, req reqdto.OwnerRequestRequest) (int64, error) {
	if err := requireActor(actor); err != nil {
		return 0, err
	}

	now := uc.clock.Now()
	or, err := req.ToDomain(actor.UserID, now)
	if err != nil {
		return 0, err
	}

	uploads, err := uc.storeUploads(ctx, req, now)
	if err != nil {
		return 0, err
	}

	var id int64
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		created, subVenueIDs, derr := tx.OwnerRequests().Create(ctx, or)
		if derr != nil {
			return derr
		}
		id = created

		for _, key := range uploads.request {
			img, derr := ownerrequest.NewRequestImage(created, key, now)
			if derr != nil {
				return derr
			}
			if _, derr = tx.OwnerRequests().AddImage(ctx, img); derr != nil {
				return derr
			}
		}
		for idx, keys := range uploads.subVenues {
			for _, key := range keys {
				img, derr := ownerrequest.NewSubVenueImage(subVenueIDs[idx], key, now)
				if derr != nil {
					return derr
				}
				if _, derr = tx.OwnerRequests().AddImage(ctx, img); derr != nil {
					return derr
				}
			}
		}
		return nil
	})
	if err != nil {
		discardImages(ctx, uc.images, uploads.all)
		return 0, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	uc.metrics.OwnerRequestSubmitted(len(uploads.all))
	invalidateCounts(ctx, uc.counts)
	return id, nil
}

func (uc *ownerRequestCommandsImpl) storeUploads(ctx context.Context, req reqdto.OwnerRequestRequest, now time.Time) (*storedUploads, error) {
	out := &storedUploads{subVenues: make(map[int][]string, len(req.QuadraImages))}

	store := func(field string, u shared.Upload) (string, error) {
		key, err := storeImage(ctx, uc.images, storage.PrefixOwnerRequests, field, u, now)
		if err != nil {
			discardImages(ctx, uc.images, out.all)
			return "", err
		}
		out.all = append(out.all, key)
		return key, nil
	}

	for _, u := range req.Images {
		key, err := store("images", u)
		if err != nil {
			return nil, err
		}
		out.request = append(out.request, key)
	}

	indexes := make([]int, 0, len(req.QuadraImages))
	for idx := range req.QuadraImages {
		indexes = append(indexes, idx)
	}
	sort.Ints(indexes)
	for _, idx := range indexes {
		for _, u := range req.QuadraImages[idx] {
			key, err := store(fmt.Sprintf("quadra_%d_images", idx), u)
			if err != nil {
				return nil, err
			}
			out.subVenues[idx] = append(out.subVenues[idx], key)
		}
	}
	return out, nil
}
