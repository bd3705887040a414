package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/shopkeeper/internal/client/models"
	"github.com/dmitrijs2005/shopkeeper/internal/common"
)

// Users fetches the directory and prints it.
func (a *App) Users(ctx context.Context) error {
	if err := a.directory.Refresh(ctx); err != nil {
		a.log.Warn(ctx, "directory fetch failed", "error", err)
	}
	a.printUsers(a.directory.Visible())
	return nil
}

// Search filters the last fetched directory. An empty query shows the full
// list again.
func (a *App) Search(ctx context.Context, q string) error {
	a.printUsers(a.directory.Search(q))
	return nil
}

func (a *App) printUsers(users []models.User) {
	if len(users) == 0 {
		fmt.Fprintln(a.out, "No users")
		return
	}
	for _, u := range users {
		fmt.Fprintln(a.out, u)
	}
}

// AddUser prompts for a new user and creates it.
func (a *App) AddUser(ctx context.Context) error {
	var nu models.NewUser
	var err error

	if nu.Name, err = getSimpleText(a.reader, "Name", a.out); err != nil {
		return err
	}
	if nu.Email, err = getSimpleText(a.reader, "Email", a.out); err != nil {
		return err
	}
	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}
	nu.Password = string(password)
	// clears the input buffer only; nu.Password still holds the secret
	common.WipeByteArray(password)
	if nu.Avatar, err = getSimpleText(a.reader, "Avatar URL (optional)", a.out); err != nil {
		return err
	}

	err = a.directory.Create(ctx, nu)
	switch {
	case err == nil:
		fmt.Fprintln(a.out, "User created successfully")
	case errors.Is(err, common.ErrValidation):
		fmt.Fprintln(a.out, "Please fill in all required fields")
	default:
		a.log.Warn(ctx, "create user failed", "error", err)
		fmt.Fprintln(a.out, "Failed to create user")
	}
	return err
}
