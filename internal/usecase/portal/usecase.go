// Package portal composes the cache, the upstream client and the record
// normalizer into the data the portal pages display.
package portal

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"golang.org/x/sync/singleflight"

	"github.com/studentportal/portal/internal/cache"
	"github.com/studentportal/portal/internal/entity"
	"github.com/studentportal/portal/internal/entity/dto/v1"
	"github.com/studentportal/portal/internal/upstream"
	"github.com/studentportal/portal/internal/usecase/records"
	"github.com/studentportal/portal/pkg/logger"
)

// UseCase -.
type UseCase struct {
	upstream    Upstream
	cache       *cache.Cache
	log         logger.Interface
	currentYear string
	flight      singleflight.Group
}

var _ Feature = (*UseCase)(nil)

// New -.
func New(u Upstream, c *cache.Cache, log logger.Interface, currentYear string) *UseCase {
	return &UseCase{
		upstream:    u,
		cache:       c,
		log:         log,
		currentYear: currentYear,
	}
}

// GetEnrollment decodes the dias cookie and picks the enrollment the pages
// are scoped to.
func (uc *UseCase) GetEnrollment(_ context.Context, id entity.Identity) (entity.Enrollment, error) {
	return uc.enrollment("GetEnrollment", id)
}

// GetExamNotes returns the user's notes for the selected enrollment split
// by semester and sitting.
func (uc *UseCase) GetExamNotes(ctx context.Context, id entity.Identity) (dto.Semesters, error) {
	if err := uc.requireToken("GetExamNotes", id); err != nil {
		return nil, err
	}

	dia, err := uc.enrollment("GetExamNotes", id)
	if err != nil {
		return nil, err
	}

	diaID := strconv.Itoa(dia.ID)

	return cached(ctx, uc, userKey(id, cache.MakeNotesKey, diaID), cache.ClassShort, func(ctx context.Context) (dto.Semesters, error) {
		var recs []entity.CourseRecord

		if err := uc.upstream.FetchJSON(ctx, upstream.EndpointNotes, upstream.NotesPath(dia.ID), id.Token, &recs); err != nil {
			return nil, uc.failed(id, upstream.EndpointNotes, err)
		}

		semesters, err := records.PartitionBySemester(recs)
		if err != nil {
			return nil, uc.failed(id, upstream.EndpointNotes, err)
		}

		return semesters, nil
	})
}

// GetGroups returns the period -> {group, section} mapping for the selected enrollment.
func (uc *UseCase) GetGroups(ctx context.Context, id entity.Identity) (dto.GroupSections, error) {
	if err := uc.requireToken("GetGroups", id); err != nil {
		return dto.GroupSections{}, err
	}

	dia, err := uc.enrollment("GetGroups", id)
	if err != nil {
		return dto.GroupSections{}, err
	}

	diaID := strconv.Itoa(dia.ID)

	return cached(ctx, uc, userKey(id, cache.MakeGroupsKey, diaID), cache.ClassShort, func(ctx context.Context) (dto.GroupSections, error) {
		var recs []entity.GroupRecord

		if err := uc.upstream.FetchJSON(ctx, upstream.EndpointGroups, upstream.GroupsPath(dia.ID), id.Token, &recs); err != nil {
			return dto.GroupSections{}, uc.failed(id, upstream.EndpointGroups, err)
		}

		groups, err := records.FoldGroups(recs)
		if err != nil {
			return dto.GroupSections{}, uc.failed(id, upstream.EndpointGroups, err)
		}

		return groups, nil
	})
}

// GetProfileImage -.
func (uc *UseCase) GetProfileImage(ctx context.Context, id entity.Identity) (dto.Binary, error) {
	if err := uc.requireToken("GetProfileImage", id); err != nil {
		return dto.Binary{}, err
	}

	if id.UUID == "" {
		return dto.Binary{}, ErrMissingCredential.Wrap("GetProfileImage", "uuid")
	}

	return uc.binary(ctx, id, upstream.EndpointProfileImage, cache.MakeProfileImageKey(id.UUID, cache.TokenFingerprint(id.Token)), upstream.ProfileImagePath(id.UUID))
}

// GetLogo -.
func (uc *UseCase) GetLogo(ctx context.Context, id entity.Identity) (dto.Binary, error) {
	if err := uc.requireToken("GetLogo", id); err != nil {
		return dto.Binary{}, err
	}

	if id.EtabID == "" {
		return dto.Binary{}, ErrMissingCredential.Wrap("GetLogo", "EtabId")
	}

	return uc.binary(ctx, id, upstream.EndpointLogo, cache.MakeLogoKey(id.EtabID), upstream.LogoPath(id.EtabID))
}

// Invalidate drops the cached notes and groups of the selected enrollment.
func (uc *UseCase) Invalidate(_ context.Context, id entity.Identity) error {
	if err := uc.requireToken("Invalidate", id); err != nil {
		return err
	}

	dia, err := uc.enrollment("Invalidate", id)
	if err != nil {
		return err
	}

	if id.UserID != "" {
		cache.InvalidateUserCache(uc.cache, id.UserID, strconv.Itoa(dia.ID), cache.TokenFingerprint(id.Token))
	}

	return nil
}

func (uc *UseCase) binary(ctx context.Context, id entity.Identity, endpoint upstream.Endpoint, key, path string) (dto.Binary, error) {
	return cached(ctx, uc, key, cache.ClassStatic, func(ctx context.Context) (dto.Binary, error) {
		body, err := uc.upstream.Fetch(ctx, endpoint, path, id.Token)
		if err != nil {
			return dto.Binary{}, uc.failed(id, endpoint, err)
		}

		return dto.Binary{ContentType: http.DetectContentType(body), Data: body}, nil
	})
}

func (uc *UseCase) requireToken(call string, id entity.Identity) error {
	if id.HasToken() {
		return nil
	}

	return ErrAuthMissing.Wrap(call, "id.HasToken", nil)
}

func (uc *UseCase) enrollment(call string, id entity.Identity) (entity.Enrollment, error) {
	if id.Dias == "" {
		return entity.Enrollment{}, ErrMissingCredential.Wrap(call, "dias")
	}

	dias, err := records.DecodeEnrollments(id.Dias)
	if err != nil {
		uc.log.Error(err, "user", id.UserID, "token", id.RedactedToken(), "call", call)

		return entity.Enrollment{}, err
	}

	dia, ok := records.SelectEnrollment(dias, uc.currentYear)
	if !ok {
		return entity.Enrollment{}, ErrMissingCredential.Wrap(call, "dias")
	}

	return dia, nil
}

// failed logs err with the caller's identity and returns it unchanged.
func (uc *UseCase) failed(id entity.Identity, endpoint upstream.Endpoint, err error) error {
	if errors.Is(err, context.Canceled) {
		uc.log.Debug("caller went away", "user", id.UserID, "endpoint", string(endpoint))

		return err
	}

	uc.log.Error(err, "user", id.UserID, "token", id.RedactedToken(), "endpoint", string(endpoint))

	return err
}

// userKey returns "" when the user is unknown, which disables caching. The
// key is bound to the token so another token never reads this entry.
func userKey(id entity.Identity, mk func(userID, diaID, fingerprint string) string, diaID string) string {
	if id.UserID == "" {
		return ""
	}

	return mk(id.UserID, diaID, cache.TokenFingerprint(id.Token))
}

// cached serves key from the cache or loads it once for all concurrent
// callers. The shared load is detached from any single caller's
// cancellation; the upstream ceiling still bounds it.
func cached[T any](ctx context.Context, uc *UseCase, key string, class cache.Class, load func(context.Context) (T, error)) (T, error) {
	if key == "" {
		return load(ctx)
	}

	if v, ok := uc.cache.Get(key); ok {
		if typed, ok := v.(T); ok {
			return typed, nil
		}
	}

	shared := context.WithoutCancel(ctx)

	ch := uc.flight.DoChan(key, func() (interface{}, error) {
		v, err := load(shared)
		if err != nil {
			return v, err
		}

		uc.cache.Set(key, v, uc.cache.TTLFor(class))

		return v, nil
	})

	select {
	case <-ctx.Done():
		var zero T

		return zero, ctx.Err()
	case res := <-ch:
		v, _ := res.Val.(T)

		return v, res.Err
	}
}
