package cli

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"
)

func (a *App) getStatus() string {
	if a.user == nil {
		return ""
	}
	return fmt.Sprintf("(%s) ", a.user.Name)
}

func (a *App) Root(ctx context.Context) {

	log.Println("Welcome to BirthdayBook CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Printf("bbook %s> ", a.getStatus())
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				fmt.Println("Available commands: (l)ist [term], add, edit <id>, del <id>, " +
					"send <clientId>, viewed <messageId>, clicked <messageId>, " +
					"today, month, messages, recent, stats, logout, exit")
			} else {
				fmt.Println("Available commands: register, login, exit")
			}

		case "register":
			a.register(ctx)
		case "login":
			a.login(ctx)
		case "logout":
			a.logout(ctx)
		case "add":
			a.addClient(ctx)
		case "edit":
			if len(args) == 0 {
				fmt.Println("Usage: edit <id>")
				continue
			}
			a.editClient(ctx, args[0])
		case "del":
			if len(args) == 0 {
				fmt.Println("Usage: del <id>")
				continue
			}
			a.deleteClient(ctx, args[0])
		case "l", "list":
			a.listClients(strings.Join(args, " "))
		case "send":
			if len(args) == 0 {
				fmt.Println("Usage: send <clientId>")
				continue
			}
			a.sendMessage(ctx, args[0])
		case "viewed":
			if len(args) == 0 {
				fmt.Println("Usage: viewed <messageId>")
				continue
			}
			a.markViewed(ctx, args[0])
		case "clicked":
			if len(args) == 0 {
				fmt.Println("Usage: clicked <messageId>")
				continue
			}
			a.markClicked(ctx, args[0])
		case "today":
			a.todaysBirthdays()
		case "month":
			a.monthBirthdays()
		case "messages":
			a.monthlyMessages()
		case "recent":
			a.recentMessages()
		case "stats":
			a.stats()
		case "exit", "quit":
			fmt.Println("Bye!")
			return
		default:
			fmt.Println("Unknown command:", cmd)
		}
	}

}
