package cli

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/dmitrijs2005/birthdaybook/internal/models"
)

// promptClientData collects and validates the client form fields.
func (a *App) promptClientData() (*models.ClientData, error) {
	name, err := getSimpleText(a.reader, "Enter name", os.Stdout)
	if err != nil {
		return nil, err
	}
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return nil, err
	}
	phone, err := getSimpleText(a.reader, "Enter phone", os.Stdout)
	if err != nil {
		return nil, err
	}
	birthdate, err := getSimpleText(a.reader, "Enter birthdate (YYYY-MM-DD)", os.Stdout)
	if err != nil {
		return nil, err
	}

	if err := validateClientInput(name, email, phone, birthdate); err != nil {
		return nil, err
	}
	d, err := models.ParseDate(birthdate)
	if err != nil {
		return nil, err
	}

	return &models.ClientData{Name: name, Email: email, Phone: phone, Birthdate: d}, nil
}

func (a *App) addClient(ctx context.Context) {
	data, err := a.promptClientData()
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

	c, err := a.store.AddClient(ctx, *data)
	if err != nil {
		log.Printf("error adding client: %v", err)
		return
	}
	if c == nil {
		fmt.Println("Please log in first")
		return
	}
	fmt.Printf("Added client %s (%s)\n", c.Name, c.Id)
}

func (a *App) editClient(ctx context.Context, id string) {
	if _, ok := a.store.ClientById(id); !ok {
		fmt.Println("Client not found:", id)
		return
	}

	data, err := a.promptClientData()
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

	if err := a.store.UpdateClient(ctx, id, *data); err != nil {
		log.Printf("error updating client: %v", err)
		return
	}
	fmt.Println("Updated", id)
}

func (a *App) deleteClient(ctx context.Context, id string) {
	if err := a.store.DeleteClient(ctx, id); err != nil {
		log.Printf("error deleting client: %v", err)
		return
	}
	fmt.Println("Deleted", id)
}

func (a *App) listClients(term string) {
	clients := a.store.SearchClients(term)
	if len(clients) == 0 {
		fmt.Println("No clients found")
		return
	}
	for _, c := range clients {
		fmt.Printf("%s  %-20s  %-25s  %-15s  %s\n",
			c.Id, c.Name, c.Email, c.Phone, c.Birthdate)
	}
}
