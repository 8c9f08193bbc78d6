package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/Thanaphat465415241003/book-tracker-app/internal/client/api"
	"github.com/Thanaphat465415241003/book-tracker-app/internal/client/credentials"
	"github.com/Thanaphat465415241003/book-tracker-app/internal/core/entity"
	"github.com/Thanaphat465415241003/book-tracker-app/internal/infrastructure/cache"
)

const usage = `booktrack — клиент трекера книг

Usage:
  booktrack register <email> <password>
  booktrack login <email> <password>
  booktrack logout
  booktrack profile
  booktrack set-goal <n>
  booktrack list [-status not_read|reading|finished]
  booktrack add -title <t> -author <a> [-status s] [-publisher p] [-category c]
  booktrack update <id> [-title t] [-author a] [-status s] [-publisher p] [-category c]
  booktrack delete <id>
  booktrack progress
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	store, err := credentials.NewStore()
	if err != nil {
		fatal(err)
	}

	baseURL := os.Getenv("BOOKTRACK_API_URL")
	if baseURL == "" {
		baseURL = "http://localhost:5000"
	}

	client := api.NewClient(baseURL, store, cache.NewInMemoryCache())
	ctx := context.Background()

	switch os.Args[1] {
	case "register":
		requireArgs(4)
		resp, err := client.Register(ctx, os.Args[2], os.Args[3])
		if err != nil {
			fatal(err)
		}
		fmt.Printf("registered %s (%s)\n", resp.Email, resp.ID)

	case "login":
		requireArgs(4)
		resp, err := client.Login(ctx, os.Args[2], os.Args[3])
		if err != nil {
			fatal(err)
		}
		fmt.Printf("logged in as %s\n", resp.Email)

	case "logout":
		if err := client.SignOut(); err != nil {
			fatal(err)
		}
		fmt.Println("logged out")

	case "profile":
		user, err := client.Profile(ctx)
		if err != nil {
			fatal(err)
		}
		fmt.Printf("%s <%s>\n", user.Name, user.Email)
		if user.Bio != "" {
			fmt.Println(user.Bio)
		}
		fmt.Printf("reading goal: %d\n", user.ReadingGoal)

	case "set-goal":
		requireArgs(3)
		goal, err := strconv.Atoi(os.Args[2])
		if err != nil {
			fatal(fmt.Errorf("goal must be a number: %w", err))
		}
		if _, err := client.UpdateProfile(ctx, entity.ProfilePatch{ReadingGoal: &goal}); err != nil {
			fatal(err)
		}
		fmt.Printf("reading goal set to %d\n", goal)

	case "list":
		fs := flag.NewFlagSet("list", flag.ExitOnError)
		status := fs.String("status", "", "filter by status")
		fs.Parse(os.Args[2:])

		books, err := client.ListBooks(ctx)
		if err != nil {
			fatal(err)
		}
		if *status != "" {
			books = api.FilterByStatus(books, entity.BookStatus(*status))
		}
		for _, b := range books {
			fmt.Printf("%s  %-10s  %q by %s\n", b.ID, api.StatusLabel(b.Status), b.Title, b.Author)
		}

	case "add":
		fs := flag.NewFlagSet("add", flag.ExitOnError)
		title := fs.String("title", "", "book title")
		author := fs.String("author", "", "book author")
		status := fs.String("status", "", "reading status")
		publisher := fs.String("publisher", "", "publisher")
		category := fs.String("category", "", "category")
		fs.Parse(os.Args[2:])

		book, err := client.AddBook(ctx, entity.CreateBookRequest{
			Title:     *title,
			Author:    *author,
			Status:    entity.BookStatus(*status),
			Publisher: *publisher,
			Category:  *category,
		})
		if err != nil {
			fatal(err)
		}
		fmt.Printf("added %q (%s)\n", book.Title, book.ID)

	case "update":
		requireArgs(3)
		id := os.Args[2]

		fs := flag.NewFlagSet("update", flag.ExitOnError)
		title := fs.String("title", "", "book title")
		author := fs.String("author", "", "book author")
		status := fs.String("status", "", "reading status")
		publisher := fs.String("publisher", "", "publisher")
		category := fs.String("category", "", "category")
		fs.Parse(os.Args[3:])

		// в патч попадают только явно переданные флаги
		var patch entity.BookPatch
		fs.Visit(func(f *flag.Flag) {
			switch f.Name {
			case "title":
				patch.Title = title
			case "author":
				patch.Author = author
			case "status":
				s := entity.BookStatus(*status)
				patch.Status = &s
			case "publisher":
				patch.Publisher = publisher
			case "category":
				patch.Category = category
			}
		})

		book, err := client.UpdateBook(ctx, id, patch)
		if err != nil {
			fatal(err)
		}
		fmt.Printf("updated %q, status %s\n", book.Title, book.Status)

	case "delete":
		requireArgs(3)
		if err := client.DeleteBook(ctx, os.Args[2]); err != nil {
			fatal(err)
		}
		fmt.Println("deleted")

	case "progress":
		user, err := client.Profile(ctx)
		if err != nil {
			fatal(err)
		}
		books, err := client.ListBooks(ctx)
		if err != nil {
			fatal(err)
		}
		p := api.GoalProgress(books, user.ReadingGoal)
		fmt.Printf("finished %d of %d (%d%%)\n", p.Finished, p.Goal, p.Percent)

	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
}

func requireArgs(n int) {
	if len(os.Args) < n {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "error:", err)
	os.Exit(1)
}
