package postapp

import (
	"context"
	"fmt"

	postEntity "yoripe/internal/core/post"
	userEntity "yoripe/internal/core/user"

	"yoripe/internal/apperrors"
	"yoripe/internal/core/policy"
	postPort "yoripe/internal/ports/post"

	"github.com/gofrs/uuid"
)

// PageSize is the fixed listing page size.
const PageSize = 10

// PostService orchestrates authorize -> store -> DTO for the posts resource.
// Instance operations resolve the target first, so a missing post surfaces
// as Not Found before any policy decision.
type PostService struct {
	PostRepository postPort.PostRepository
}

func NewPostService(repo postPort.PostRepository) *PostService {
	return &PostService{PostRepository: repo}
}

func (s *PostService) ListPosts(ctx context.Context, actor *userEntity.User, page int) (*postPort.Page, error) {
	if !policy.AllowPost(actor, policy.ActionList, nil) {
		return nil, apperrors.ErrForbidden
	}

	if page < 1 {
		page = 1
	}

	posts, total, err := s.PostRepository.List(ctx, (page-1)*PageSize, PageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}

	items := make([]*postPort.PostDTO, 0, len(posts))
	for _, p := range posts {
		items = append(items, toDTO(p))
	}

	return &postPort.Page{
		Items:   items,
		Page:    page,
		PerPage: PageSize,
		Total:   total,
	}, nil
}

// CreatePost stamps the actor as both owner and last updater; client-supplied
// values for either never reach this path.
func (s *PostService) CreatePost(ctx context.Context, actor *userEntity.User, in postPort.CreatePostInput) (*postPort.PostDTO, error) {
	if !policy.AllowPost(actor, policy.ActionCreate, nil) {
		return nil, apperrors.ErrForbidden
	}

	p := &postEntity.Post{
		ID:        uuid.Must(uuid.NewV4()),
		Title:     in.Title,
		Content:   in.Content,
		Status:    in.Status,
		UserID:    actor.ID,
		UpdatedBy: actor.ID,
	}

	created, err := s.PostRepository.Create(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	return toDTO(created), nil
}

func (s *PostService) GetPost(ctx context.Context, actor *userEntity.User, id string) (*postPort.PostDTO, error) {
	p, err := s.PostRepository.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !policy.AllowPost(actor, policy.ActionView, p) {
		return nil, apperrors.ErrForbidden
	}

	return toDTO(p), nil
}

// UpdatePost applies only the supplied fields, stamps the actor as last
// updater and reloads the row so derived fields are current.
func (s *PostService) UpdatePost(ctx context.Context, actor *userEntity.User, id string, in postPort.UpdatePostInput) (*postPort.PostDTO, error) {
	p, err := s.PostRepository.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !policy.AllowPost(actor, policy.ActionUpdate, p) {
		return nil, apperrors.ErrForbidden
	}

	// Supplied fields follow the create rules; omitted fields stay as stored.
	var violations []apperrors.FieldViolation
	if in.Title != nil && *in.Title == "" {
		violations = append(violations, apperrors.FieldViolation{Field: "title", Message: "The title field is required."})
	}
	if in.Content != nil && *in.Content == "" {
		violations = append(violations, apperrors.FieldViolation{Field: "content", Message: "The content field is required."})
	}
	if len(violations) > 0 {
		return nil, &apperrors.ValidationError{Violations: violations}
	}

	if in.Title != nil {
		p.Title = *in.Title
	}
	if in.Content != nil {
		p.Content = *in.Content
	}
	if in.Status != nil {
		p.Status = *in.Status
	}
	p.UpdatedBy = actor.ID

	if err := s.PostRepository.Update(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to update post: %w", err)
	}

	updated, err := s.PostRepository.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return toDTO(updated), nil
}

// DeletePost removes the row outright and returns the pre-deletion values.
func (s *PostService) DeletePost(ctx context.Context, actor *userEntity.User, id string) (*postPort.PostDTO, error) {
	p, err := s.PostRepository.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !policy.AllowPost(actor, policy.ActionDelete, p) {
		return nil, apperrors.ErrForbidden
	}

	removed := toDTO(p)

	if err := s.PostRepository.Delete(ctx, id); err != nil {
		return nil, fmt.Errorf("failed to delete post: %w", err)
	}

	return removed, nil
}

func toDTO(p *postEntity.Post) *postPort.PostDTO {
	return &postPort.PostDTO{
		ID:        p.ID.String(),
		Title:     p.Title,
		Content:   p.Content,
		Status:    p.Status,
		UserID:    p.UserID.String(),
		UpdatedBy: p.UpdatedBy.String(),
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
