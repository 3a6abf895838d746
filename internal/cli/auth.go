package cli

import (
	"context"
	"os"

	"plantcal/internal/common"
)

// getSimpleText, getMultiline and getPassword are indirections used to
// facilitate testing. They point to interactive input helpers and can be
// swapped in tests.
var getSimpleText = GetSimpleText
var getMultiline = GetMultiline
var getPassword = GetPassword

// Register prompts the user for a username, email address and password and
// creates the local profile. Calendar and reminder commands stay locked until
// this succeeds.
//
// The password byte slice is securely wiped before returning. Any I/O or
// service error is reported to the user and returned unchanged.
func (a *App) Register(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	emailAddr, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.profiles.Register(ctx, username, emailAddr, string(password)); err != nil {
		printlnFn("Error:", err.Error())
		return err
	}

	profile, err := a.profiles.Current(ctx)
	if err != nil {
		return err
	}
	a.user = profile

	printlnFn("Success!")
	return nil
}

// Logout removes the stored profile and locks the calendar commands again.
func (a *App) Logout(ctx context.Context) error {
	if err := a.profiles.Logout(ctx); err != nil {
		printlnFn("Error:", err.Error())
		return err
	}
	a.user = nil
	printlnFn("Logged out")
	return nil
}
