package cli

import "fmt"

func (a *App) todaysBirthdays() {
	clients := a.store.TodaysBirthdays()
	if len(clients) == 0 {
		fmt.Println("No birthdays today")
		return
	}
	fmt.Println("Birthdays today:")
	for _, c := range clients {
		fmt.Printf("  %s  %s (%s)\n", c.Id, c.Name, c.Birthdate)
	}
}

func (a *App) monthBirthdays() {
	clients := a.store.MonthBirthdays()
	if len(clients) == 0 {
		fmt.Println("No birthdays this month")
		return
	}
	fmt.Println("Birthdays this month:")
	for _, c := range clients {
		fmt.Printf("  %s  %s (%s)\n", c.Id, c.Name, c.Birthdate)
	}
}

func (a *App) stats() {
	totals := a.store.EngagementTotals()
	fmt.Printf("Messages: %d total, %d viewed, %d clicked\n",
		totals.Total, totals.Viewed, totals.Clicked)
	fmt.Printf("View rate: %d%%   Click rate: %d%%\n", a.store.ViewRate(), a.store.ClickRate())

	byDay := a.store.MessagesByDay()
	if len(byDay) == 0 {
		return
	}
	fmt.Println("This month by day:")
	for _, d := range byDay {
		fmt.Printf("  day %2d: sent=%d viewed=%d clicked=%d\n", d.Day, d.Sent, d.Viewed, d.Clicked)
	}
}
