package portal

import (
	"context"

	"github.com/studentportal/portal/internal/entity"
	"github.com/studentportal/portal/internal/entity/dto/v1"
	"github.com/studentportal/portal/internal/upstream"
)

type (
	// Upstream is the academic-records API client.
	Upstream interface {
		Fetch(ctx context.Context, endpoint upstream.Endpoint, path, authToken string) ([]byte, error)
		FetchJSON(ctx context.Context, endpoint upstream.Endpoint, path, authToken string, out interface{}) error
	}

	// Feature is what the HTTP layer needs from the portal.
	Feature interface {
		GetEnrollment(ctx context.Context, id entity.Identity) (entity.Enrollment, error)
		GetExamNotes(ctx context.Context, id entity.Identity) (dto.Semesters, error)
		GetGroups(ctx context.Context, id entity.Identity) (dto.GroupSections, error)
		GetProfileImage(ctx context.Context, id entity.Identity) (dto.Binary, error)
		GetLogo(ctx context.Context, id entity.Identity) (dto.Binary, error)
		Invalidate(ctx context.Context, id entity.Identity) error
	}
)
