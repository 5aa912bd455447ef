package cli

import (
	"context"
	"fmt"
	"log"

	"github.com/dmitrijs2005/birthdaybook/internal/models"
)

func (a *App) sendMessage(ctx context.Context, clientID string) {
	m, err := a.store.SendBirthdayMessage(ctx, clientID)
	if err != nil {
		log.Printf("error sending message: %v", err)
		return
	}
	if m == nil {
		fmt.Println("Please log in first")
		return
	}
	fmt.Printf("Message %s sent to client %s\n", m.Id, m.ClientId)
}

func (a *App) markViewed(ctx context.Context, messageID string) {
	if err := a.store.MarkAsViewed(ctx, messageID); err != nil {
		log.Printf("error: %v", err)
		return
	}
	fmt.Println("Marked as viewed:", messageID)
}

func (a *App) markClicked(ctx context.Context, messageID string) {
	if err := a.store.MarkAsClicked(ctx, messageID); err != nil {
		log.Printf("error: %v", err)
		return
	}
	fmt.Println("Marked as clicked:", messageID)
}

func (a *App) monthlyMessages() {
	msgs := a.store.MonthlyMessages()
	if len(msgs) == 0 {
		fmt.Println("No messages this month")
		return
	}
	for _, m := range msgs {
		a.printMessage(m)
	}
}

func (a *App) recentMessages() {
	msgs := a.store.RecentMessages(10)
	if len(msgs) == 0 {
		fmt.Println("No messages yet")
		return
	}
	for _, m := range msgs {
		a.printMessage(m)
	}
}

func (a *App) printMessage(m models.BirthdayMessage) {
	name := "(deleted client)"
	if c, ok := a.store.ClientById(m.ClientId); ok {
		name = c.Name
	}
	fmt.Printf("%s  %s  %-20s  viewed=%-5v clicked=%v\n",
		m.Id, m.SentDate.Format("2006-01-02 15:04"), name, m.Viewed, m.Clicked)
}
