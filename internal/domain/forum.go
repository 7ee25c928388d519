package domain

import "time"

// Board is one of the predefined forums (product inquiries, Q&A, reviews).
type Board struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Post belongs to a board. State flips to true while the post has at least
// one comment ("has response"). Secret posts carry a short password.
type Post struct {
	ID         int64     `json:"id"`
	Writer     int64     `json:"writer"`
	BoardID    int64     `json:"boardId"`
	Title      string    `json:"title"`
	Password   *string   `json:"-"`
	Content    string    `json:"content"`
	Hit        int       `json:"hit"`
	State      bool      `json:"state"`
	Secret     bool      `json:"secret"`
	Image      string    `json:"image,omitempty"`
	WriterName string    `json:"writerName,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

type Comment struct {
	ID        int64     `json:"id"`
	Writer    int64     `json:"writer"`
	PostID    int64     `json:"postId"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
