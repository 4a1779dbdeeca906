package accountsdk

import (
	"context"
	"net/http"
	"net/url"
)

// Session is an authenticated handle bound to one session token. It is safe
// for concurrent use.
type Session struct {
	client *SDKClient
	token  string
}

// Token returns the bearer token backing the session.
func (s *Session) Token() string { return s.token }

// User returns the caller's profile.
func (s *Session) User(ctx context.Context) (*User, error) {
	resp, err := s.client.doRequest(ctx, http.MethodGet, BasePath+"/user", nil, s.token)
	if err != nil {
		return nil, err
	}

	var out UserResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out.User, nil
}

// UpdateUser changes the non-empty fields of req and returns the new profile.
func (s *Session) UpdateUser(ctx context.Context, req UpdateUserRequest) (*User, error) {
	resp, err := s.client.doRequest(ctx, http.MethodPut, BasePath+"/update/user", req, s.token)
	if err != nil {
		return nil, err
	}

	var out UpdateUserResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out.User, nil
}

// DeleteUser removes the caller's account. The session is useless afterwards.
func (s *Session) DeleteUser(ctx context.Context) error {
	resp, err := s.client.doRequest(ctx, http.MethodDelete, BasePath+"/delete/user", nil, s.token)
	if err != nil {
		return err
	}
	return decodeJSON(resp, nil, http.StatusOK)
}

// AddFavorite appends countryID to the caller's favorites. Adding a country
// twice returns ErrFavoriteExists.
func (s *Session) AddFavorite(ctx context.Context, countryID string) error {
	resp, err := s.client.doRequest(ctx, http.MethodPut, BasePath+"/add/favorites",
		FavoriteRequest{CountryID: countryID}, s.token)
	if err != nil {
		return err
	}
	return decodeJSON(resp, nil, http.StatusOK)
}

// Favorites lists the caller's favorites. The result is never nil.
func (s *Session) Favorites(ctx context.Context) ([]string, error) {
	resp, err := s.client.doRequest(ctx, http.MethodGet, BasePath+"/favorites", nil, s.token)
	if err != nil {
		return nil, err
	}

	var out FavoritesResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	if out.Favorites == nil {
		out.Favorites = []string{}
	}
	return out.Favorites, nil
}

// RemoveFavorite drops countryID from the caller's favorites.
func (s *Session) RemoveFavorite(ctx context.Context, countryID string) error {
	resp, err := s.client.doRequest(ctx, http.MethodDelete, BasePath+"/remove/favorites",
		FavoriteRequest{CountryID: countryID}, s.token)
	if err != nil {
		return err
	}
	return decodeJSON(resp, nil, http.StatusOK)
}

// RemoveFavoriteByQuery is RemoveFavorite for clients that cannot send a body
// with DELETE; the id travels in the countryId query parameter.
func (s *Session) RemoveFavoriteByQuery(ctx context.Context, countryID string) error {
	path := BasePath + "/remove/favorites?" + url.Values{"countryId": {countryID}}.Encode()
	resp, err := s.client.doRequest(ctx, http.MethodDelete, path, nil, s.token)
	if err != nil {
		return err
	}
	return decodeJSON(resp, nil, http.StatusOK)
}
