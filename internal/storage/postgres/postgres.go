// Package postgres is implementation of storage interface.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"

	"github.com/Decentr-net/chronicle/internal/entities"
	"github.com/Decentr-net/chronicle/internal/storage"
)

var log = logrus.WithField("layer", "storage").WithField("package", "postgres")

type pg struct {
	ext sqlx.ExtContext
}

type userDTO struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	Email     string    `db:"email"`
	CreatedAt time.Time `db:"created_at"`
}

type profileDTO struct {
	UserID         string  `db:"user_id"`
	Bio            *string `db:"bio"`
	Website        *string `db:"website"`
	Location       *string `db:"location"`
	Avatar         *string `db:"avatar"`
	FollowersCount uint32  `db:"followers_count"`
	FollowingCount uint32  `db:"following_count"`
	PostsCount     uint32  `db:"posts_count"`
}

type postDTO struct {
	ID            string         `db:"id"`
	Title         string         `db:"title"`
	Content       string         `db:"content"`
	Excerpt       string         `db:"excerpt"`
	AuthorID      string         `db:"author_id"`
	Published     bool           `db:"published"`
	Tags          pq.StringArray `db:"tags"`
	LikesCount    uint32         `db:"likes_count"`
	CommentsCount uint32         `db:"comments_count"`
	CreatedAt     time.Time      `db:"created_at"`
}

type commentDTO struct {
	ID        string    `db:"id"`
	PostID    string    `db:"post_id"`
	AuthorID  string    `db:"author_id"`
	Content   string    `db:"content"`
	ParentID  *string   `db:"parent_id"`
	CreatedAt time.Time `db:"created_at"`
}

type likeDTO struct {
	ID        string    `db:"id"`
	PostID    string    `db:"post_id"`
	UserID    string    `db:"user_id"`
	CreatedAt time.Time `db:"created_at"`
}

type followDTO struct {
	ID          string    `db:"id"`
	FollowerID  string    `db:"follower_id"`
	FollowingID string    `db:"following_id"`
	CreatedAt   time.Time `db:"created_at"`
}

// New creates new instance of pg.
func New(db *sql.DB) storage.Storage {
	return pg{
		ext: sqlx.NewDb(db, "postgres"),
	}
}

func (s pg) Ping(ctx context.Context) error {
	db, ok := s.ext.(*sqlx.DB)
	if !ok {
		return nil
	}

	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("failed to ping: %w", err)
	}

	return nil
}

func (s pg) GetUser(ctx context.Context, id string) (*entities.User, error) {
	var u userDTO

	if err := sqlx.GetContext(ctx, s.ext, &u, `
			SELECT id, name, email, created_at FROM users WHERE id = $1
		`, id,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}

		return nil, fmt.Errorf("failed to query: %w", err)
	}

	return toUser(&u), nil
}

func (s pg) ListUsers(ctx context.Context) ([]*entities.User, error) {
	var uu []*userDTO

	if err := sqlx.SelectContext(ctx, s.ext, &uu, `SELECT id, name, email, created_at FROM users`); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	out := make([]*entities.User, len(uu))
	for i, v := range uu {
		out[i] = toUser(v)
	}

	return out, nil
}

func (s pg) SetUserName(ctx context.Context, id string, name string) error {
	return s.execOne(ctx, `UPDATE users SET name=$2 WHERE id=$1`, id, name)
}

func (s pg) GetProfile(ctx context.Context, userID string) (*entities.UserProfile, error) {
	var p profileDTO

	if err := sqlx.GetContext(ctx, s.ext, &p, `
			SELECT user_id, bio, website, location, avatar, followers_count, following_count, posts_count
			FROM user_profiles
			WHERE user_id = $1
		`, userID,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}

		return nil, fmt.Errorf("failed to query: %w", err)
	}

	return &entities.UserProfile{
		UserID:         p.UserID,
		Bio:            p.Bio,
		Website:        p.Website,
		Location:       p.Location,
		Avatar:         p.Avatar,
		FollowersCount: p.FollowersCount,
		FollowingCount: p.FollowingCount,
		PostsCount:     p.PostsCount,
	}, nil
}

func (s pg) CreateProfile(ctx context.Context, p *entities.UserProfile) error {
	profile := profileDTO{
		UserID:         p.UserID,
		Bio:            p.Bio,
		Website:        p.Website,
		Location:       p.Location,
		Avatar:         p.Avatar,
		FollowersCount: p.FollowersCount,
		FollowingCount: p.FollowingCount,
		PostsCount:     p.PostsCount,
	}

	if _, err := sqlx.NamedExecContext(ctx, s.ext,
		`
			INSERT INTO user_profiles(user_id, bio, website, location, avatar, followers_count, following_count, posts_count)
			VALUES(:user_id, :bio, :website, :location, :avatar, :followers_count, :following_count, :posts_count)
		`, profile,
	); err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	return nil
}

func (s pg) UpdateProfileInfo(ctx context.Context, userID string, info entities.ProfileInfo) error {
	return s.execOne(ctx,
		`UPDATE user_profiles SET bio=$2, website=$3, location=$4, avatar=$5 WHERE user_id=$1`,
		userID, info.Bio, info.Website, info.Location, info.Avatar,
	)
}

func (s pg) SetProfileCounter(ctx context.Context, userID string, c storage.ProfileCounter, value uint32) error {
	var column string
	switch c {
	case storage.FollowersCounter, storage.FollowingCounter, storage.PostsCounter:
		column = string(c)
	default:
		return fmt.Errorf("unknown profile counter %q", c)
	}

	return s.execOne(ctx, fmt.Sprintf(`UPDATE user_profiles SET %s=$2 WHERE user_id=$1`, column), userID, value)
}

func (s pg) CreatePost(ctx context.Context, p *entities.Post) error {
	post := postDTO{
		ID:            p.ID,
		Title:         p.Title,
		Content:       p.Content,
		Excerpt:       p.Excerpt,
		AuthorID:      p.AuthorID,
		Published:     p.Published,
		Tags:          pq.StringArray(nonNilStrings(p.Tags)),
		LikesCount:    p.LikesCount,
		CommentsCount: p.CommentsCount,
		CreatedAt:     p.CreatedAt.UTC(),
	}

	if _, err := sqlx.NamedExecContext(ctx, s.ext,
		`
			INSERT INTO posts(id, title, content, excerpt, author_id, published, tags, likes_count, comments_count, created_at)
			VALUES(:id, :title, :content, :excerpt, :author_id, :published, :tags, :likes_count, :comments_count, :created_at)
		`, post,
	); err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	return nil
}

func (s pg) GetPost(ctx context.Context, id string) (*entities.Post, error) {
	var p postDTO

	if err := sqlx.GetContext(ctx, s.ext, &p, `
			SELECT id, title, content, excerpt, author_id, published, tags, likes_count, comments_count, created_at
			FROM posts
			WHERE id = $1
		`, id,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}

		return nil, fmt.Errorf("failed to query: %w", err)
	}

	return toPost(&p), nil
}

func (s pg) UpdatePost(ctx context.Context, id string, c entities.PostContent) error {
	return s.execOne(ctx,
		`UPDATE posts SET title=$2, content=$3, excerpt=$4, published=$5, tags=$6 WHERE id=$1`,
		id, c.Title, c.Content, c.Excerpt, c.Published, pq.StringArray(nonNilStrings(c.Tags)),
	)
}

func (s pg) DeletePost(ctx context.Context, id string) error {
	return s.execOne(ctx, `DELETE FROM posts WHERE id=$1`, id)
}

func (s pg) ListPosts(ctx context.Context, p *storage.ListPostsParams) ([]*entities.Post, error) {
	query := `
		SELECT id, title, content, excerpt, author_id, published, tags, likes_count, comments_count, created_at
		FROM posts
		WHERE TRUE
	`
	args := make([]interface{}, 0, 3)

	if p.Published != nil {
		args = append(args, *p.Published)
		query += fmt.Sprintf(" AND published = $%d", len(args))
	}

	if p.AuthorID != nil {
		args = append(args, *p.AuthorID)
		query += fmt.Sprintf(" AND author_id = $%d", len(args))
	}

	query += " ORDER BY created_at DESC, id DESC"

	if p.Limit > 0 {
		args = append(args, p.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	var pp []*postDTO

	if err := sqlx.SelectContext(ctx, s.ext, &pp, query, args...); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	out := make([]*entities.Post, len(pp))
	for i, v := range pp {
		out[i] = toPost(v)
	}

	return out, nil
}

func (s pg) SetPostCounter(ctx context.Context, id string, c storage.PostCounter, value uint32) error {
	var column string
	switch c {
	case storage.LikesCounter, storage.CommentsCounter:
		column = string(c)
	default:
		return fmt.Errorf("unknown post counter %q", c)
	}

	return s.execOne(ctx, fmt.Sprintf(`UPDATE posts SET %s=$2 WHERE id=$1`, column), id, value)
}

func (s pg) CreateComment(ctx context.Context, c *entities.Comment) error {
	comment := commentDTO{
		ID:        c.ID,
		PostID:    c.PostID,
		AuthorID:  c.AuthorID,
		Content:   c.Content,
		ParentID:  c.ParentID,
		CreatedAt: c.CreatedAt.UTC(),
	}

	if _, err := sqlx.NamedExecContext(ctx, s.ext,
		`
			INSERT INTO comments(id, post_id, author_id, content, parent_id, created_at)
			VALUES(:id, :post_id, :author_id, :content, :parent_id, :created_at)
		`, comment,
	); err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	return nil
}

func (s pg) GetComment(ctx context.Context, id string) (*entities.Comment, error) {
	var c commentDTO

	if err := sqlx.GetContext(ctx, s.ext, &c, `
			SELECT id, post_id, author_id, content, parent_id, created_at FROM comments WHERE id = $1
		`, id,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}

		return nil, fmt.Errorf("failed to query: %w", err)
	}

	return toComment(&c), nil
}

func (s pg) DeleteComment(ctx context.Context, id string) error {
	return s.execOne(ctx, `DELETE FROM comments WHERE id=$1`, id)
}

func (s pg) ListComments(ctx context.Context, postID string) ([]*entities.Comment, error) {
	var cc []*commentDTO

	if err := sqlx.SelectContext(ctx, s.ext, &cc, `
			SELECT id, post_id, author_id, content, parent_id, created_at
			FROM comments
			WHERE post_id = $1
			ORDER BY created_at ASC, id ASC
		`, postID,
	); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	out := make([]*entities.Comment, len(cc))
	for i, v := range cc {
		out[i] = toComment(v)
	}

	return out, nil
}

func (s pg) DeleteCommentsByPost(ctx context.Context, postID string) error {
	res, err := s.ext.ExecContext(ctx, `DELETE FROM comments WHERE post_id=$1`, postID)
	if err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	if c, _ := res.RowsAffected(); c > 0 {
		log.WithField("post_id", postID).WithField("count", c).Debug("comments deleted")
	}

	return nil
}

func (s pg) CreateLike(ctx context.Context, l *entities.Like) error {
	if _, err := s.ext.ExecContext(ctx,
		`INSERT INTO likes(id, post_id, user_id, created_at) VALUES($1, $2, $3, $4)`,
		l.ID, l.PostID, l.UserID, l.CreatedAt.UTC(),
	); err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	return nil
}

func (s pg) GetLike(ctx context.Context, postID, userID string) (*entities.Like, error) {
	var l likeDTO

	if err := sqlx.GetContext(ctx, s.ext, &l, `
			SELECT id, post_id, user_id, created_at FROM likes WHERE post_id = $1 AND user_id = $2 LIMIT 1
		`, postID, userID,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}

		return nil, fmt.Errorf("failed to query: %w", err)
	}

	return &entities.Like{
		ID:        l.ID,
		PostID:    l.PostID,
		UserID:    l.UserID,
		CreatedAt: l.CreatedAt,
	}, nil
}

func (s pg) DeleteLike(ctx context.Context, id string) error {
	return s.execOne(ctx, `DELETE FROM likes WHERE id=$1`, id)
}

func (s pg) DeleteLikesByPost(ctx context.Context, postID string) error {
	if _, err := s.ext.ExecContext(ctx, `DELETE FROM likes WHERE post_id=$1`, postID); err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	return nil
}

func (s pg) CreateFollow(ctx context.Context, f *entities.Follow) error {
	if _, err := s.ext.ExecContext(ctx,
		`INSERT INTO follows(id, follower_id, following_id, created_at) VALUES($1, $2, $3, $4)`,
		f.ID, f.FollowerID, f.FollowingID, f.CreatedAt.UTC(),
	); err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	return nil
}

func (s pg) GetFollow(ctx context.Context, followerID, followingID string) (*entities.Follow, error) {
	var f followDTO

	if err := sqlx.GetContext(ctx, s.ext, &f, `
			SELECT id, follower_id, following_id, created_at
			FROM follows
			WHERE follower_id = $1 AND following_id = $2
			LIMIT 1
		`, followerID, followingID,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}

		return nil, fmt.Errorf("failed to query: %w", err)
	}

	return toFollow(&f), nil
}

func (s pg) DeleteFollow(ctx context.Context, id string) error {
	return s.execOne(ctx, `DELETE FROM follows WHERE id=$1`, id)
}

func (s pg) ListFollowing(ctx context.Context, followerID string) ([]*entities.Follow, error) {
	var ff []*followDTO

	if err := sqlx.SelectContext(ctx, s.ext, &ff, `
			SELECT id, follower_id, following_id, created_at
			FROM follows
			WHERE follower_id = $1
			ORDER BY created_at ASC, id ASC
		`, followerID,
	); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	out := make([]*entities.Follow, len(ff))
	for i, v := range ff {
		out[i] = toFollow(v)
	}

	return out, nil
}

// nolint:gochecknoglobals
var recountQueries = []struct {
	name  string
	query string
	dst   func(d *storage.Drift) *int64
}{
	{
		name: "post likes",
		query: `
			UPDATE posts p SET likes_count = c.n
			FROM (SELECT pp.id, COUNT(l.id) AS n FROM posts pp LEFT JOIN likes l ON l.post_id = pp.id GROUP BY pp.id) c
			WHERE p.id = c.id AND p.likes_count <> c.n
		`,
		dst: func(d *storage.Drift) *int64 { return &d.PostLikes },
	},
	{
		name: "post comments",
		query: `
			UPDATE posts p SET comments_count = c.n
			FROM (SELECT pp.id, COUNT(cm.id) AS n FROM posts pp LEFT JOIN comments cm ON cm.post_id = pp.id GROUP BY pp.id) c
			WHERE p.id = c.id AND p.comments_count <> c.n
		`,
		dst: func(d *storage.Drift) *int64 { return &d.PostComments },
	},
	{
		name: "profile posts",
		query: `
			UPDATE user_profiles up SET posts_count = c.n
			FROM (SELECT u.user_id, COUNT(p.id) AS n FROM user_profiles u LEFT JOIN posts p ON p.author_id = u.user_id GROUP BY u.user_id) c
			WHERE up.user_id = c.user_id AND up.posts_count <> c.n
		`,
		dst: func(d *storage.Drift) *int64 { return &d.ProfilePosts },
	},
	{
		name: "profile followers",
		query: `
			UPDATE user_profiles up SET followers_count = c.n
			FROM (SELECT u.user_id, COUNT(f.id) AS n FROM user_profiles u LEFT JOIN follows f ON f.following_id = u.user_id GROUP BY u.user_id) c
			WHERE up.user_id = c.user_id AND up.followers_count <> c.n
		`,
		dst: func(d *storage.Drift) *int64 { return &d.ProfileFollowers },
	},
	{
		name: "profile following",
		query: `
			UPDATE user_profiles up SET following_count = c.n
			FROM (SELECT u.user_id, COUNT(f.id) AS n FROM user_profiles u LEFT JOIN follows f ON f.follower_id = u.user_id GROUP BY u.user_id) c
			WHERE up.user_id = c.user_id AND up.following_count <> c.n
		`,
		dst: func(d *storage.Drift) *int64 { return &d.ProfileFollowing },
	},
}

func (s pg) RecountCounters(ctx context.Context) (*storage.Drift, error) {
	var d storage.Drift

	for _, v := range recountQueries {
		res, err := s.ext.ExecContext(ctx, v.query)
		if err != nil {
			return nil, fmt.Errorf("failed to recount %s: %w", v.name, err)
		}

		n, err := res.RowsAffected()
		if err != nil {
			return nil, fmt.Errorf("failed to get affected rows for %s: %w", v.name, err)
		}

		*v.dst(&d) = n
	}

	return &d, nil
}

func (s pg) execOne(ctx context.Context, query string, args ...interface{}) error {
	res, err := s.ext.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	if c, _ := res.RowsAffected(); c == 0 {
		return storage.ErrNotFound
	}

	return nil
}

func toUser(u *userDTO) *entities.User {
	return &entities.User{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}

func toPost(p *postDTO) *entities.Post {
	return &entities.Post{
		ID:            p.ID,
		Title:         p.Title,
		Content:       p.Content,
		Excerpt:       p.Excerpt,
		AuthorID:      p.AuthorID,
		Published:     p.Published,
		Tags:          []string(p.Tags),
		LikesCount:    p.LikesCount,
		CommentsCount: p.CommentsCount,
		CreatedAt:     p.CreatedAt,
	}
}

func toComment(c *commentDTO) *entities.Comment {
	return &entities.Comment{
		ID:        c.ID,
		PostID:    c.PostID,
		AuthorID:  c.AuthorID,
		Content:   c.Content,
		ParentID:  c.ParentID,
		CreatedAt: c.CreatedAt,
	}
}

func toFollow(f *followDTO) *entities.Follow {
	return &entities.Follow{
		ID:          f.ID,
		FollowerID:  f.FollowerID,
		FollowingID: f.FollowingID,
		CreatedAt:   f.CreatedAt,
	}
}

func nonNilStrings(s []string) []string {
	if s == nil {
		return []string{}
	}

	return s
}
