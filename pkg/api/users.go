package api

import (
	"context"
	"net/http"
	"net/url"

	"fabu/pkg/models"
)

// User CRUD. Nothing in the budget flow depends on these; they mirror the
// store's /users surface for account management.

func (c *Client) Users(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := c.do(ctx, http.MethodGet, "/users", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *Client) User(ctx context.Context, id string) (models.User, error) {
	if err := requireID("userId", id); err != nil {
		return models.User{}, err
	}
	var u models.User
	if err := c.do(ctx, http.MethodGet, "/users/"+url.PathEscape(id), nil, &u); err != nil {
		return models.User{}, err
	}
	return u, nil
}

func (c *Client) CreateUser(ctx context.Context, u models.User) (models.User, error) {
	var created models.User
	if err := c.do(ctx, http.MethodPost, "/users", u, &created); err != nil {
		return models.User{}, err
	}
	return created, nil
}

func (c *Client) UpdateUser(ctx context.Context, id string, u models.User) (models.User, error) {
	if err := requireID("userId", id); err != nil {
		return models.User{}, err
	}
	var updated models.User
	if err := c.do(ctx, http.MethodPut, "/users/"+url.PathEscape(id), u, &updated); err != nil {
		return models.User{}, err
	}
	return updated, nil
}

func (c *Client) DeleteUser(ctx context.Context, id string) error {
	if err := requireID("userId", id); err != nil {
		return err
	}
	return c.do(ctx, http.MethodDelete, "/users/"+url.PathEscape(id), nil, nil)
}
