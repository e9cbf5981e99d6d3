package impl

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Decentr-net/chronicle/internal/entities"
	"github.com/Decentr-net/chronicle/internal/service"
	"github.com/Decentr-net/chronicle/internal/storage"
)

const searchLimit = 10

// profileOrZero returns the user's profile or a zero one without creating it.
func (s srv) profileOrZero(ctx context.Context, userID string) (*entities.UserProfile, error) {
	p, err := s.s.GetProfile(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return &entities.UserProfile{UserID: userID}, nil
		}

		return nil, fmt.Errorf("failed to get profile of %s: %w", userID, err)
	}

	return p, nil
}

func (s srv) GetUserProfile(ctx context.Context, userID string) (*entities.UserWithProfile, error) {
	u, err := s.s.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, nil
		}

		return nil, fmt.Errorf("failed to get user on storage side: %w", err)
	}

	p, err := s.profileOrZero(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &entities.UserWithProfile{
		User:    *u,
		Profile: *p,
	}, nil
}

func (s srv) UpdateUserName(ctx context.Context, name string) error {
	user, err := actor(ctx)
	if err != nil {
		return err
	}

	if err := s.s.SetUserName(ctx, user, name); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("%w: user %s", service.ErrNotFound, user)
		}

		return fmt.Errorf("failed to set user name on storage side: %w", err)
	}

	return nil
}

// UpdateProfile replaces profile's info fields. The profile is created with zero counters when missing.
func (s srv) UpdateProfile(ctx context.Context, info entities.ProfileInfo) error {
	user, err := actor(ctx)
	if err != nil {
		return err
	}

	if _, err := s.s.GetProfile(ctx, user); err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("failed to get profile on storage side: %w", err)
		}

		if err := s.s.CreateProfile(ctx, &entities.UserProfile{
			UserID:   user,
			Bio:      info.Bio,
			Website:  info.Website,
			Location: info.Location,
			Avatar:   info.Avatar,
		}); err != nil {
			return fmt.Errorf("failed to create profile on storage side: %w", err)
		}

		return nil
	}

	if err := s.s.UpdateProfileInfo(ctx, user, info); err != nil {
		return fmt.Errorf("failed to update profile on storage side: %w", err)
	}

	return nil
}

// SearchUsers scans all users and returns first matches by name or email in storage order.
func (s srv) SearchUsers(ctx context.Context, query string) ([]*entities.UserWithProfile, error) {
	if strings.TrimSpace(query) == "" {
		return []*entities.UserWithProfile{}, nil
	}

	users, err := s.s.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users on storage side: %w", err)
	}

	query = strings.ToLower(query)

	matched := make([]*entities.User, 0, searchLimit)
	for _, u := range users {
		if len(matched) == searchLimit {
			break
		}

		if strings.Contains(strings.ToLower(u.Name), query) || strings.Contains(strings.ToLower(u.Email), query) {
			matched = append(matched, u)
		}
	}

	return s.withProfiles(ctx, matched)
}
