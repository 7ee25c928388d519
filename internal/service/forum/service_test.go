package forum

import (
	"context"
	"errors"
	"testing"

	"dollshop-backend/internal/domain"
	postrepo "dollshop-backend/internal/repository/post"
)

type memoryPostRepo struct {
	posts  map[int64]*domain.Post
	nextID int64
}

func newMemoryPostRepo() *memoryPostRepo {
	return &memoryPostRepo{posts: make(map[int64]*domain.Post)}
}

func (r *memoryPostRepo) Create(_ context.Context, p domain.Post) (*domain.Post, error) {
	r.nextID++
	p.ID = r.nextID
	clone := p
	r.posts[p.ID] = &clone
	return &p, nil
}

func (r *memoryPostRepo) GetByID(_ context.Context, id int64) (*domain.Post, error) {
	p, ok := r.posts[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	clone := *p
	return &clone, nil
}

func (r *memoryPostRepo) ListByBoard(_ context.Context, boardID int64) ([]domain.Post, error) {
	var out []domain.Post
	for _, p := range r.posts {
		if p.BoardID == boardID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *memoryPostRepo) Page(_ context.Context, boardID int64, _, _ int) ([]domain.Post, error) {
	return r.ListByBoard(context.Background(), boardID)
}

func (r *memoryPostRepo) IncrementHit(_ context.Context, id int64) error {
	p, ok := r.posts[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.Hit++
	return nil
}

func (r *memoryPostRepo) Update(_ context.Context, id int64, in postrepo.UpdateInput) error {
	p, ok := r.posts[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.Title = in.Title
	p.Password = in.Password
	p.Content = in.Content
	p.Secret = in.Secret
	p.Image = in.Image
	return nil
}

func (r *memoryPostRepo) SetState(_ context.Context, id int64, state bool) error {
	p, ok := r.posts[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.State = state
	return nil
}

func (r *memoryPostRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.posts[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.posts, id)
	return nil
}

type memoryCommentRepo struct {
	comments map[int64]*domain.Comment
	nextID   int64
}

func newMemoryCommentRepo() *memoryCommentRepo {
	return &memoryCommentRepo{comments: make(map[int64]*domain.Comment)}
}

func (r *memoryCommentRepo) Create(_ context.Context, c domain.Comment) (*domain.Comment, error) {
	r.nextID++
	c.ID = r.nextID
	clone := c
	r.comments[c.ID] = &clone
	return &c, nil
}

func (r *memoryCommentRepo) GetByID(_ context.Context, id int64) (*domain.Comment, error) {
	c, ok := r.comments[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	clone := *c
	return &clone, nil
}

func (r *memoryCommentRepo) ListByPost(_ context.Context, postID int64) ([]domain.Comment, error) {
	var out []domain.Comment
	for _, c := range r.comments {
		if c.PostID == postID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *memoryCommentRepo) CountByPost(_ context.Context, postID int64) (int, error) {
	n := 0
	for _, c := range r.comments {
		if c.PostID == postID {
			n++
		}
	}
	return n, nil
}

func (r *memoryCommentRepo) Update(_ context.Context, id int64, c domain.Comment) error {
	existing, ok := r.comments[id]
	if !ok {
		return domain.ErrNotFound
	}
	existing.Content = c.Content
	return nil
}

func (r *memoryCommentRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.comments[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.comments, id)
	return nil
}

func newTestService() (*Service, *memoryPostRepo, *memoryCommentRepo) {
	posts := newMemoryPostRepo()
	comments := newMemoryCommentRepo()
	return &Service{posts: posts, comments: comments}, posts, comments
}

func TestWritePost_SecretNeedsPassword(t *testing.T) {
	svc, _, _ := newTestService()
	_, err := svc.WritePost(context.Background(), 1, PostInput{BoardID: 1, Title: "t", Content: "c", Secret: true})
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected invalid input for secret post without password, got %v", err)
	}
}

func TestViewPost_IncrementsHit(t *testing.T) {
	ctx := context.Background()
	svc, posts, _ := newTestService()
	p, err := svc.WritePost(ctx, 1, PostInput{BoardID: 1, Title: "t", Content: "c"})
	if err != nil {
		t.Fatalf("write post: %v", err)
	}

	viewed, err := svc.ViewPost(ctx, p.ID, 2, "")
	if err != nil {
		t.Fatalf("view post: %v", err)
	}
	if viewed.Hit != 1 {
		t.Fatalf("expected hit 1, got %d", viewed.Hit)
	}
	stored, _ := posts.GetByID(ctx, p.ID)
	if stored.Hit != 1 {
		t.Fatalf("expected stored hit 1, got %d", stored.Hit)
	}
}

func TestViewPost_SecretGate(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService()
	p, err := svc.WritePost(ctx, 1, PostInput{BoardID: 1, Title: "t", Content: "c", Secret: true, Password: "1234"})
	if err != nil {
		t.Fatalf("write post: %v", err)
	}

	if _, err := svc.ViewPost(ctx, p.ID, 2, "0000"); !errors.Is(err, ErrWrongPassword) {
		t.Fatalf("expected ErrWrongPassword, got %v", err)
	}
	if _, err := svc.ViewPost(ctx, p.ID, 2, "1234"); err != nil {
		t.Fatalf("view with correct password: %v", err)
	}
	// The author skips the password check.
	if _, err := svc.ViewPost(ctx, p.ID, 1, ""); err != nil {
		t.Fatalf("author view: %v", err)
	}
}

func TestUpdatePost_OnlyAuthor(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService()
	p, err := svc.WritePost(ctx, 1, PostInput{BoardID: 1, Title: "t", Content: "c"})
	if err != nil {
		t.Fatalf("write post: %v", err)
	}
	if _, err := svc.UpdatePost(ctx, p.ID, 2, PostInput{BoardID: 1, Title: "x", Content: "y"}); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for non-author edit, got %v", err)
	}
	if _, err := svc.UpdatePost(ctx, p.ID, 1, PostInput{BoardID: 1, Title: "x", Content: "y"}); err != nil {
		t.Fatalf("author edit: %v", err)
	}
}

func TestCommentLifecycle_TogglesPostState(t *testing.T) {
	ctx := context.Background()
	svc, posts, _ := newTestService()
	p, err := svc.WritePost(ctx, 1, PostInput{BoardID: 1, Title: "t", Content: "c"})
	if err != nil {
		t.Fatalf("write post: %v", err)
	}

	c1, err := svc.WriteComment(ctx, 2, CommentInput{PostID: p.ID, Content: "first"})
	if err != nil {
		t.Fatalf("write comment: %v", err)
	}
	c2, err := svc.WriteComment(ctx, 3, CommentInput{PostID: p.ID, Content: "second"})
	if err != nil {
		t.Fatalf("write second comment: %v", err)
	}

	stored, _ := posts.GetByID(ctx, p.ID)
	if !stored.State {
		t.Fatalf("expected post state true after comments")
	}

	if err := svc.DeleteComment(ctx, c1.ID, 2); err != nil {
		t.Fatalf("delete first comment: %v", err)
	}
	stored, _ = posts.GetByID(ctx, p.ID)
	if !stored.State {
		t.Fatalf("expected post state still true with one comment left")
	}

	if err := svc.DeleteComment(ctx, c2.ID, 3); err != nil {
		t.Fatalf("delete second comment: %v", err)
	}
	stored, _ = posts.GetByID(ctx, p.ID)
	if stored.State {
		t.Fatalf("expected post state false after last comment removed")
	}
}

func TestDeleteComment_OnlyAuthor(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService()
	p, _ := svc.WritePost(ctx, 1, PostInput{BoardID: 1, Title: "t", Content: "c"})
	c, _ := svc.WriteComment(ctx, 2, CommentInput{PostID: p.ID, Content: "first"})

	if err := svc.DeleteComment(ctx, c.ID, 9); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for non-author delete, got %v", err)
	}
}
