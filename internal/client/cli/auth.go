package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/shopkeeper/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for credentials and signs in through the session. Every
// failure is reported with the same generic message; the error is returned
// for the caller's benefit only.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}
	// clears the input buffer only; the string copy below lives on
	defer common.WipeByteArray(password)

	if err := a.session.LoginUser(ctx, email, string(password)); err != nil {
		a.log.Info(ctx, "login unsuccessful", "error", err)
		fmt.Fprintln(a.out, "Incorrect credentials")
		return err
	}

	fmt.Fprintf(a.out, "Welcome, %s!\n", a.session.UserName())
	return nil
}

// Logout clears the session. It cannot fail.
func (a *App) Logout(ctx context.Context) error {
	a.session.LogoutUser(ctx)
	fmt.Fprintln(a.out, "Logged out")
	return nil
}

// WhoAmI prints the signed-in user and, when the token is a JWT, its
// subject and expiry.
func (a *App) WhoAmI(ctx context.Context) error {
	if !a.session.IsAuthenticated() {
		fmt.Fprintln(a.out, "Not logged in")
		return nil
	}

	fmt.Fprintf(a.out, "Logged in as %s\n", a.session.UserName())
	if c, ok := a.session.Claims(); ok {
		if c.Subject != "" {
			fmt.Fprintf(a.out, "  user id:    %s\n", c.Subject)
		}
		if !c.ExpiresAt.IsZero() {
			fmt.Fprintf(a.out, "  expires at: %s\n", c.ExpiresAt.Local().Format(time.RFC1123))
		}
	}
	return nil
}
