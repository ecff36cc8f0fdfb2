// File: internal/gateway/accounts.go
package gateway

import (
	"context"
	"fmt"
)

// LoginRequest carries credentials to the upstream auth endpoint.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest carries a new account to the upstream auth endpoint.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

// Login authenticates against the commerce core and returns the account.
func (c *Client) Login(ctx context.Context, req LoginRequest) (*Account, error) {
	env, err := c.post(ctx, "/auth/login", req)
	if err != nil {
		return nil, err
	}
	var account Account
	if err := env.DecodeInto(&account, "user"); err != nil {
		return nil, fmt.Errorf("login response: %w", err)
	}
	return &account, nil
}

// Register creates an account upstream and returns it.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*Account, error) {
	env, err := c.post(ctx, "/auth/register", req)
	if err != nil {
		return nil, err
	}
	var account Account
	if err := env.DecodeInto(&account, "user"); err != nil {
		return nil, fmt.Errorf("register response: %w", err)
	}
	return &account, nil
}

// GetProfile fetches the user's profile.
func (c *Client) GetProfile(ctx context.Context, userID string) (*Profile, error) {
	env, err := c.get(ctx, "/profile", userQuery(userID))
	if err != nil {
		return nil, err
	}
	var profile Profile
	if err := env.DecodeInto(&profile, "profile"); err != nil {
		return nil, fmt.Errorf("profile response: %w", err)
	}
	return &profile, nil
}

// UpdateProfile replaces the user's profile.
func (c *Client) UpdateProfile(ctx context.Context, userID string, profile Profile) error {
	body := struct {
		UserID string `json:"userId"`
		Profile
	}{UserID: userID, Profile: profile}
	_, err := c.put(ctx, "/profile", body)
	return err
}

// ListAddresses fetches the user's delivery addresses.
func (c *Client) ListAddresses(ctx context.Context, userID string) ([]Address, error) {
	env, err := c.get(ctx, "/addresses", userQuery(userID))
	if err != nil {
		return nil, err
	}
	var addresses []Address
	if raw, ok := env.Payload("addresses"); ok {
		if err := decodeList(raw, &addresses); err != nil {
			return nil, fmt.Errorf("addresses response: %w", err)
		}
	}
	return addresses, nil
}

// CreateAddress stores a new delivery address and returns it with its ID.
func (c *Client) CreateAddress(ctx context.Context, userID string, address Address) (*Address, error) {
	body := struct {
		UserID string `json:"userId"`
		Address
	}{UserID: userID, Address: address}
	env, err := c.post(ctx, "/addresses", body)
	if err != nil {
		return nil, err
	}
	var created Address
	if err := env.DecodeInto(&created, "address"); err != nil {
		return nil, fmt.Errorf("create address response: %w", err)
	}
	return &created, nil
}

// UpdateAddress replaces an existing delivery address.
func (c *Client) UpdateAddress(ctx context.Context, userID, addressID string, address Address) error {
	body := struct {
		UserID string `json:"userId"`
		Address
	}{UserID: userID, Address: address}
	_, err := c.put(ctx, "/addresses/"+addressID, body)
	return err
}

// DeleteAddress removes a delivery address.
func (c *Client) DeleteAddress(ctx context.Context, userID, addressID string) error {
	_, err := c.delete(ctx, "/addresses/"+addressID, userQuery(userID))
	return err
}

// RequestTwoFactorCode asks the upstream to send an SMS code to phone.
func (c *Client) RequestTwoFactorCode(ctx context.Context, userID, phone string) error {
	_, err := c.post(ctx, "/two-factor/request-code", map[string]string{
		"userId": userID,
		"phone":  phone,
	})
	return err
}

// VerifyTwoFactorCode submits the SMS code for verification.
func (c *Client) VerifyTwoFactorCode(ctx context.Context, userID, code string) error {
	_, err := c.post(ctx, "/two-factor/verify", map[string]string{
		"userId": userID,
		"code":   code,
	})
	return err
}

// DisableTwoFactor turns off two-factor enrollment upstream.
func (c *Client) DisableTwoFactor(ctx context.Context, userID string) error {
	_, err := c.post(ctx, "/two-factor/disable", map[string]string{
		"userId": userID,
	})
	return err
}
