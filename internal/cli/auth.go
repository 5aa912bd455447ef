package cli

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/dmitrijs2005/birthdaybook/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// register prompts for name, email and password and creates a new account.
// On success the user is logged in immediately; the session-changed event
// published by the auth service makes the store load the (empty) collections.
func (a *App) register(ctx context.Context) {
	name, err := getSimpleText(a.reader, "Enter your name", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}
	defer common.WipeByteArray(password)

	user, err := a.authService.Register(ctx, name, email, password)
	if err != nil {
		log.Printf("Registration unsuccessfull: %s", err.Error())
		return
	}

	a.user = user
	fmt.Println("Success!")
}

// login prompts for credentials and authenticates. The password is wiped
// before returning.
func (a *App) login(ctx context.Context) {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}
	defer common.WipeByteArray(password)

	user, err := a.authService.Login(ctx, email, password)
	if err != nil {
		log.Printf("Login unsuccessfull: %s", err.Error())
		return
	}

	a.user = user
	log.Printf("Login successfull")
}

// logout drops the persisted session; the store discards its in-memory
// collections in response to the session-changed event.
func (a *App) logout(ctx context.Context) {
	if err := a.authService.Logout(ctx); err != nil {
		log.Printf("error: %v", err)
		return
	}
	a.user = nil
}
