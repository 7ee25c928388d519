package forum

import (
	"context"
	"errors"
	"strings"

	"dollshop-backend/internal/domain"
	commentrepo "dollshop-backend/internal/repository/comment"
	postrepo "dollshop-backend/internal/repository/post"
)

// ErrWrongPassword is returned when a secret post's password does not match.
var ErrWrongPassword = errors.New("wrong password")

type postRepo interface {
	Create(ctx context.Context, p domain.Post) (*domain.Post, error)
	GetByID(ctx context.Context, id int64) (*domain.Post, error)
	ListByBoard(ctx context.Context, boardID int64) ([]domain.Post, error)
	Page(ctx context.Context, boardID int64, skip, take int) ([]domain.Post, error)
	IncrementHit(ctx context.Context, id int64) error
	Update(ctx context.Context, id int64, in postrepo.UpdateInput) error
	SetState(ctx context.Context, id int64, state bool) error
	Delete(ctx context.Context, id int64) error
}

type commentRepo interface {
	Create(ctx context.Context, c domain.Comment) (*domain.Comment, error)
	GetByID(ctx context.Context, id int64) (*domain.Comment, error)
	ListByPost(ctx context.Context, postID int64) ([]domain.Comment, error)
	CountByPost(ctx context.Context, postID int64) (int, error)
	Update(ctx context.Context, id int64, c domain.Comment) error
	Delete(ctx context.Context, id int64) error
}

// Service covers boards, posts and comments. A post's state flag tracks
// whether it has at least one comment, maintained on comment writes.
type Service struct {
	posts    postRepo
	comments commentRepo
}

func New(posts postrepo.Repository, comments commentrepo.Repository) *Service {
	return &Service{posts: posts, comments: comments}
}

// PostInput carries post create/update payloads. Password only matters for
// secret posts.
type PostInput struct {
	BoardID  int64  `json:"boardId" binding:"required"`
	Title    string `json:"title" binding:"required"`
	Content  string `json:"content" binding:"required"`
	Secret   bool   `json:"secret"`
	Password string `json:"password"`
	Image    string `json:"image"`
}

// CommentInput carries comment create/update payloads.
type CommentInput struct {
	PostID  int64  `json:"postId" binding:"required"`
	Content string `json:"content" binding:"required"`
}

func (in PostInput) validate() (pw *string, err error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, domain.Invalid("title required")
	}
	if strings.TrimSpace(in.Content) == "" {
		return nil, domain.Invalid("content required")
	}
	if in.Secret {
		p := strings.TrimSpace(in.Password)
		if p == "" {
			return nil, domain.Invalid("secret posts need a password")
		}
		pw = &p
	}
	return pw, nil
}

// WritePost creates a post authored by the given user.
func (s *Service) WritePost(ctx context.Context, writer int64, in PostInput) (*domain.Post, error) {
	pw, err := in.validate()
	if err != nil {
		return nil, err
	}
	return s.posts.Create(ctx, domain.Post{
		Writer:   writer,
		BoardID:  in.BoardID,
		Title:    strings.TrimSpace(in.Title),
		Password: pw,
		Content:  in.Content,
		Secret:   in.Secret,
		Image:    in.Image,
	})
}

// ViewPost fetches a post and bumps its hit counter. Secret posts require
// the password unless the viewer wrote them.
func (s *Service) ViewPost(ctx context.Context, id, viewer int64, password string) (*domain.Post, error) {
	p, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.Secret && p.Writer != viewer {
		if p.Password == nil || *p.Password != password {
			return nil, ErrWrongPassword
		}
	}
	if err := s.posts.IncrementHit(ctx, id); err != nil {
		return nil, err
	}
	p.Hit++
	return p, nil
}

func (s *Service) ListPosts(ctx context.Context, boardID int64) ([]domain.Post, error) {
	return s.posts.ListByBoard(ctx, boardID)
}

// PagePosts returns one page of a board, newest first.
func (s *Service) PagePosts(ctx context.Context, boardID int64, page, size int) ([]domain.Post, error) {
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = 10
	}
	return s.posts.Page(ctx, boardID, (page-1)*size, size)
}

// UpdatePost rewrites a post. Only the author may edit.
func (s *Service) UpdatePost(ctx context.Context, id, writer int64, in PostInput) (*domain.Post, error) {
	pw, err := in.validate()
	if err != nil {
		return nil, err
	}
	existing, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing.Writer != writer {
		return nil, domain.ErrNotFound
	}
	err = s.posts.Update(ctx, id, postrepo.UpdateInput{
		Writer:   writer,
		Title:    strings.TrimSpace(in.Title),
		Password: pw,
		Content:  in.Content,
		Secret:   in.Secret,
		Image:    in.Image,
	})
	if err != nil {
		return nil, err
	}
	return s.posts.GetByID(ctx, id)
}

// DeletePost removes a post. Only the author may delete.
func (s *Service) DeletePost(ctx context.Context, id, writer int64) error {
	existing, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.Writer != writer {
		return domain.ErrNotFound
	}
	return s.posts.Delete(ctx, id)
}

// WriteComment adds a comment and marks the post as answered.
func (s *Service) WriteComment(ctx context.Context, writer int64, in CommentInput) (*domain.Comment, error) {
	if strings.TrimSpace(in.Content) == "" {
		return nil, domain.Invalid("content required")
	}
	if _, err := s.posts.GetByID(ctx, in.PostID); err != nil {
		return nil, err
	}
	c, err := s.comments.Create(ctx, domain.Comment{
		Writer:  writer,
		PostID:  in.PostID,
		Content: in.Content,
	})
	if err != nil {
		return nil, err
	}
	if err := s.posts.SetState(ctx, in.PostID, true); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Service) ListComments(ctx context.Context, postID int64) ([]domain.Comment, error) {
	return s.comments.ListByPost(ctx, postID)
}

func (s *Service) GetComment(ctx context.Context, id int64) (*domain.Comment, error) {
	return s.comments.GetByID(ctx, id)
}

// UpdateComment rewrites a comment's content. Only the author may edit.
func (s *Service) UpdateComment(ctx context.Context, id, writer int64, content string) (*domain.Comment, error) {
	if strings.TrimSpace(content) == "" {
		return nil, domain.Invalid("content required")
	}
	existing, err := s.comments.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing.Writer != writer {
		return nil, domain.ErrNotFound
	}
	existing.Content = content
	if err := s.comments.Update(ctx, id, *existing); err != nil {
		return nil, err
	}
	return s.comments.GetByID(ctx, id)
}

// DeleteComment removes a comment and clears the post's answered flag when
// it was the last one.
func (s *Service) DeleteComment(ctx context.Context, id, writer int64) error {
	existing, err := s.comments.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.Writer != writer {
		return domain.ErrNotFound
	}
	if err := s.comments.Delete(ctx, id); err != nil {
		return err
	}
	remaining, err := s.comments.CountByPost(ctx, existing.PostID)
	if err != nil {
		return err
	}
	if remaining == 0 {
		return s.posts.SetState(ctx, existing.PostID, false)
	}
	return nil
}
